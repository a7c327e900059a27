package cli

import (
	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/logging"
	"github.com/winkty-official/winkty-ui-sub001/internal/server"
)

var (
	serveAddr string
	serveDir  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built registry over HTTP",
	Long: `Serve exposes the build output at /r/<name>.json and /registry.json, with
/healthz and Prometheus metrics at /metrics. Run "build" first.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default serve.addr)")
	serveCmd.Flags().StringVar(&serveDir, "dir", "", "Registry directory to serve (default serve.dir, then build.dest)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.Config{
		Addr:   state.settings.Serve.Addr,
		Dir:    state.settings.Serve.Dir,
		Logger: logging.FromContext(cmd.Context()),
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("dir") {
		cfg.Dir = serveDir
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(cmd.Context())
}
