package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bee/internal/config"
)

var flagConfigPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning YAML",
	Long: `Print the built-in tuning file. Save it as the user config to tweak
physics, pillars, clouds, sound and difficulty:

  bee config > "$(bee config --path)"`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if flagConfigPath {
			fmt.Println(config.UserConfigPath())
			return nil
		}
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigPath, "path", false, "Print where the user config file is read from")
}
