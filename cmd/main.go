package cmd

import (
	"github.com/netrixframework/proptest/config"
	"github.com/spf13/cobra"
)

// RootCmd returns the root cobra command of the proptest tool
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proptest",
		Short: "Property based testing engine with choice sequence shrinking",
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVarP(&config.ConfigPath, "config", "c", "config.json", "Config file path")
	cmd.AddCommand(ExamplesCmd())
	return cmd
}
