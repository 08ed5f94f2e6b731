package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fuzzydate/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}

		path := filepath.Join(dir, config.ConfigFileName)
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}

		written, err := config.CreateDefaultConfig()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", written)

		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  "Print the configuration file merged with defaults and command line flags.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(s.cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}

		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}
