package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-course-roadmap/internal/config"
	"github.com/penwyp/go-course-roadmap/internal/util"
	"github.com/spf13/cobra"
)

// app carries the resolved configuration from the root command to its
// subcommands
type app struct {
	cfg *config.Config

	// Flags shared by every subcommand
	debug   bool
	apiURL  string
	timeout time.Duration
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "go-course-roadmap",
		Short: "Course recommendations and learning roadmaps in the terminal",
		Long: `go-course-roadmap searches Udemy, Coursera and YouTube recommendations for a topic
and helps you lay out a learning roadmap as a milestone timeline.

Configuration is read from the environment (a .env file in the working directory
is loaded first) and can be overridden with flags:
  COURSE_ROADMAP_API_URL     recommendation service base URL
  COURSE_ROADMAP_TIMEOUT     request timeout (e.g. 10s)
  COURSE_ROADMAP_SAVE_DELAY  simulated roadmap save time (e.g. 1500ms)
  COURSE_ROADMAP_LOG_LEVEL   debug, info, warn or error
  COURSE_ROADMAP_LOG_FILE    log file path

Examples:
  go-course-roadmap recommend machine learning
  go-course-roadmap recommend golang --output json --limit 3
  go-course-roadmap recommend rust --source udemy,youtube
  go-course-roadmap roadmap`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false,
		"Enable debug mode (logs mirrored to stderr)")
	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "",
		"Recommendation service base URL (overrides COURSE_ROADMAP_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0,
		"Request timeout (overrides COURSE_ROADMAP_TIMEOUT)")

	rootCmd.AddCommand(newRecommendCmd(a))
	rootCmd.AddCommand(newRoadmapCmd(a))

	return rootCmd
}

// Execute runs the CLI until it finishes or is interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer util.CloseLogger()

	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = a.apiURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logFile := expandPath(cfg.LogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLogger(cfg.LogLevel, logFile, a.debug); err != nil {
		return err
	}

	util.LogDebugf("Running %s with api=%s timeout=%v", cmd.CommandPath(), cfg.APIURL, cfg.Timeout)
	return nil
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
