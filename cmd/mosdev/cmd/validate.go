// Package cmd implements CLI commands for the MOS device manager.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a device launch file",
	Long: `Load the configuration, then parse and enrich the device launch file
without writing the summary. Malformed lines are reported with their line
number.`,
	Args: noPositionalArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate executes the validate command logic.
func runValidate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	manager, err := newManager(cfg, nil, logger)
	if err != nil {
		return err
	}

	set, err := manager.Collect()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "launch file OK: %s (%d device(s) under %s)\n",
		cfg.Input.Launcher, set.Count(), cfg.Input.BasePath)
	return nil
}
