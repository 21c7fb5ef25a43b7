package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/penwyp/go-course-roadmap/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the command tree with the given stdin and arguments. Logs go
// to a temp dir so tests never touch the home directory.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("COURSE_ROADMAP_LOG_FILE", filepath.Join(t.TempDir(), "logs", "app.log"))
	t.Cleanup(util.CloseLogger)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected func(string) string
	}{
		{
			name:  "home directory expansion",
			input: "~/test/path",
			expected: func(home string) string {
				return filepath.Join(home, "test/path")
			},
		},
		{
			name:  "absolute path unchanged",
			input: "/absolute/path",
			expected: func(home string) string {
				return "/absolute/path"
			},
		},
		{
			name:  "relative path converted to absolute",
			input: "relative/path",
			expected: func(home string) string {
				abs, _ := filepath.Abs("relative/path")
				return abs
			},
		},
	}

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			expected := tt.expected(home)
			assert.Equal(t, expected, result)
		})
	}
}

func TestEnsureDir(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test", "nested", "dir")

	err := ensureDir(testDir)
	assert.NoError(t, err)

	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Existing directories are fine
	assert.NoError(t, ensureDir(testDir))
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "recommend")
	assert.Contains(t, names, "roadmap")
	assert.NotNil(t, cmd.PersistentFlags().Lookup("api-url"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("timeout"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestSetupCreatesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "app.log")
	t.Setenv("COURSE_ROADMAP_LOG_FILE", logFile)
	t.Cleanup(util.CloseLogger)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"roadmap", "--empty", "--save-delay", "0"})
	cmd.SetIn(strings.NewReader("quit\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Dir(logFile))
	assert.NoError(t, err)
}

func TestSetupRejectsBadAPIURL(t *testing.T) {
	_, _, err := runCLI(t, "", "recommend", "golang", "--api-url", "ftp://example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme must be http or https")
}

func TestSetupRejectsBadEnvironment(t *testing.T) {
	t.Setenv("COURSE_ROADMAP_TIMEOUT", "not-a-duration")

	_, _, err := runCLI(t, "", "recommend", "golang")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
