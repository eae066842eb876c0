package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jumptake/backend/config"
)

const (
	app = "jumptake"
)

var rootCmd = &cobra.Command{
	Use:          app,
	Short:        "jumptake parses resumes into candidate profiles and matches them with jobs",
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// loadDotEnv reads a local .env file when present. A missing file is fine.
func loadDotEnv() {
	_ = godotenv.Load()
}

// loadConfig reads the environment and applies the logging flags on top.
func loadConfig() *config.Config {
	cfg := config.Load()
	if viper.GetBool("debug") {
		cfg.Debug = true
	}
	if viper.GetBool("json") {
		cfg.LogJSON = true
	}
	return cfg
}
