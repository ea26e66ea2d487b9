package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/interference/internal/app"
)

// runApp loads configuration, sets up logging, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.String("version", version),
		zap.Strings("config_sources", cfg.Sources),
		zap.Bool("allow_back", cfg.UI.AllowBack))

	err = app.Run(app.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Error("program exited with error", zap.Error(err))
	}
	return err
}
