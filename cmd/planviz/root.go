package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/planviz/planviz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "planviz",
	Short: "Project chart renderer",
	Long:  `Renders Gantt charts, milestone timelines, and work breakdown structures from CSV project tables.`,
}

// Global flags
var (
	jsonOutput bool
	configPath string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default ~/.planviz/config.toml)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitGeneralError)
	}
}

// loadConfig resolves the effective configuration: an explicit --config path,
// the global config file, or the built-in defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadGlobal()
}
