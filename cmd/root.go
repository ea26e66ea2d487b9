package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/interference/internal/config"
	"github.com/abhisek/interference/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "interference",
	Short: "Find out what is interfering with progress",
	Long: "Interference Detector: a 25-question self-assessment that maps answers onto six\n" +
		"interference patterns and reports the dominant one when the evidence is strong enough.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (applied after the user config)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log at debug level")
	rootCmd.PersistentFlags().String("log-file", "", "Path to the log file (overrides INTERFERENCE_LOG_FILE)")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration from files, environment and flags, in
// increasing priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.Log.File = p
	}
	return cfg, nil
}

// newLogger builds the file logger for cfg. The caller must Sync it.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	return logger, nil
}
