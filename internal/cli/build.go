package cli

import (
	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/logging"
	"github.com/winkty-official/winkty-ui-sub001/internal/packager"
)

var (
	buildSource      string
	buildDest        string
	buildConcurrency int
)

var buildCmd = &cobra.Command{
	Use:   "build [names...]",
	Short: "Build registry item JSON files from the manifest",
	Long: `Build writes <dest>/<name>.json for each manifest component, embedding the
content of every file it lists, and a registry.json index of the built items.
With no names, every component is built.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildSource, "source", "", "Root that component file paths are relative to (default build.source)")
	buildCmd.Flags().StringVar(&buildDest, "dest", "", "Output directory (default build.dest)")
	buildCmd.Flags().IntVar(&buildConcurrency, "concurrency", 0, "Build up to N components at once (default copy.concurrency)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	m, err := loadManifest()
	if err != nil {
		return err
	}

	bs := state.settings.Build
	opts := packager.Options{
		SourceDir:   bs.Source,
		DestDir:     bs.Dest,
		Concurrency: state.settings.Copy.Concurrency,
	}
	if cmd.Flags().Changed("source") {
		opts.SourceDir = buildSource
	}
	if cmd.Flags().Changed("dest") {
		opts.DestDir = buildDest
	}
	if cmd.Flags().Changed("concurrency") {
		opts.Concurrency = buildConcurrency
	}

	p := packager.New(opts, logging.FromContext(cmd.Context()))
	summary, err := p.Build(cmd.Context(), m, packager.BuildOptions{Names: args})
	if summary != nil {
		summary.Print(cmd.OutOrStdout())
	}
	return err
}
