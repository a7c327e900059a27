package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/branding"
	"github.com/winkty-official/winkty-ui-sub001/internal/config"
	"github.com/winkty-official/winkty-ui-sub001/internal/logging"
	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	configFile   string
	logLevel     string
	logFormat    string
	manifestPath string
)

// state is loaded once per invocation by the root PersistentPreRunE.
var state struct {
	cfg      *config.Config
	settings *config.Settings
	logger   *slog.Logger
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` packages UI component sources into a registry that a
component installer can fetch from, and installs registry components into projects.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadState,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Project config file (default ./"+config.DefaultFileName()+")")
	pf.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "", "Log format (text, json)")
	pf.StringVar(&manifestPath, "manifest", "", "Registry manifest file (default: the built-in catalog)")
}

func loadState(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	s, err := cfg.Settings()
	if err != nil {
		return err
	}

	level, format := s.Log.Level, s.Log.Format
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		format = logFormat
	}
	if _, err := logging.ParseLevel(level); err != nil {
		return err
	}
	if format != logging.FormatText && format != logging.FormatJSON {
		return fmt.Errorf("unknown log format %q: must be text or json", format)
	}
	if cmd.Flags().Changed("manifest") {
		s.Manifest = manifestPath
	}

	logger := logging.New(level, format, cmd.ErrOrStderr())
	state.cfg = cfg
	state.settings = s
	state.logger = logger

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))
	return nil
}

// loadManifest returns the configured manifest, or the built-in catalog
// when none is configured.
func loadManifest() (*manifest.Manifest, error) {
	if state.settings == nil || state.settings.Manifest == "" {
		return manifest.Default()
	}
	return manifest.ParseFile(state.settings.Manifest)
}

// Execute runs the root command with build info injected via ldflags.
// SIGINT and SIGTERM cancel the command context.
func Execute(version, commit, date string) (err error) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("unexpected failure", "panic", r)
			err = errors.New("unexpected internal error")
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}
