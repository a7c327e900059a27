package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configKeysCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage project settings",
	Long: `Read and write project settings stored in ./` + config.DefaultFileName() + `.
Every key can also be set through the environment, e.g. WINKTY_COPY_DEST.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		path := configFile
		if path == "" {
			path = state.cfg.File()
		}
		if err := config.Set(path, key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		for _, k := range config.Keys() {
			if k == key {
				fmt.Fprintln(cmd.OutOrStdout(), state.cfg.Get(key))
				return nil
			}
		}
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(config.Keys(), ", "))
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range config.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}
