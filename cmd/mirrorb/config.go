package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirrorb/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration YAML. Save it to
~/.mirrorb/configs/mirrorb.yaml or ./configs/mirrorb.yaml to customize.

Examples:
  mirrorb config > ~/.mirrorb/configs/mirrorb.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}
