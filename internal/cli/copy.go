package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/logging"
	"github.com/winkty-official/winkty-ui-sub001/internal/packager"
)

var (
	copySource      string
	copyDest        string
	copyExt         string
	copyConcurrency int
)

var copyCmd = &cobra.Command{
	Use:   "copy [names...]",
	Short: "Copy component sources into the registry directory",
	Long: `Copy <source>/<name><ext> to <dest>/<name><ext> for each component.

Names default to copy.components from the project config, then to every
component in the manifest. Missing sources are reported and skipped; the
command fails only when the destination directory cannot be created.`,
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().StringVar(&copySource, "source", "", "Source directory (default copy.source)")
	copyCmd.Flags().StringVar(&copyDest, "dest", "", "Destination directory (default copy.dest)")
	copyCmd.Flags().StringVar(&copyExt, "ext", "", "File extension appended to names (default copy.ext)")
	copyCmd.Flags().IntVar(&copyConcurrency, "concurrency", 0, "Copy up to N components at once (default copy.concurrency)")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	cs := state.settings.Copy
	opts := packager.Options{
		SourceDir:   cs.Source,
		DestDir:     cs.Dest,
		Ext:         cs.Ext,
		Concurrency: cs.Concurrency,
	}
	if cmd.Flags().Changed("source") {
		opts.SourceDir = copySource
	}
	if cmd.Flags().Changed("dest") {
		opts.DestDir = copyDest
	}
	if cmd.Flags().Changed("ext") {
		opts.Ext = copyExt
	}
	if cmd.Flags().Changed("concurrency") {
		if copyConcurrency < 0 {
			return fmt.Errorf("--concurrency must not be negative")
		}
		opts.Concurrency = copyConcurrency
	}

	names := args
	if len(names) == 0 {
		names = cs.Components
	}
	if len(names) == 0 {
		m, err := loadManifest()
		if err != nil {
			return err
		}
		names = m.Names()
	}

	p := packager.New(opts, logging.FromContext(cmd.Context()))
	summary, err := p.Copy(cmd.Context(), names)
	if err != nil {
		return err
	}
	summary.Print(cmd.OutOrStdout())
	return nil
}
