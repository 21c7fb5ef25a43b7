package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultSaveDelay, cfg.SaveDelay)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COURSE_ROADMAP_API_URL", "https://recs.example.com/api")
	t.Setenv("COURSE_ROADMAP_TIMEOUT", "5s")
	t.Setenv("COURSE_ROADMAP_SAVE_DELAY", "0s")
	t.Setenv("COURSE_ROADMAP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://recs.example.com/api", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, time.Duration(0), cfg.SaveDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("COURSE_ROADMAP_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero value gets defaults", cfg: Config{}},
		{name: "ftp scheme", cfg: Config{APIURL: "ftp://host"}, wantErr: "scheme"},
		{name: "no host", cfg: Config{APIURL: "http://"}, wantErr: "missing host"},
		{name: "negative timeout", cfg: Config{Timeout: -time.Second}, wantErr: "timeout"},
		{name: "negative save delay", cfg: Config{SaveDelay: -time.Millisecond}, wantErr: "save delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, DefaultAPIURL, tt.cfg.APIURL)
				assert.Equal(t, DefaultTimeout, tt.cfg.Timeout)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
