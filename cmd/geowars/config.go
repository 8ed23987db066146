package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/geowars/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying
--config and --difficulty, as YAML. Redirect it to a file to start
a custom config:

  geowars config > ~/.geowars/configs/geowars.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	logger, _ := newLogger(false)
	cfg := loadConfig(logger)

	data, err := config.Marshal(cfg)
	if err != nil {
		return fail("render config", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
