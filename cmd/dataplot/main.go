package main

import (
	"os"

	"dataplot/internal/app"
	"dataplot/internal/config"
	"dataplot/internal/logger"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dataplot",
		Short:        "simple data plot framework",
		Version:      app.AppVersion,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cfg *config.Config) error {
	log := logger.NewConsoleLogger(cfg.LogLevel)

	if cfg.Server {
		log.Info("running data plot in server mode now ... (just a dummy)", nil)
		return nil
	}

	log.Info("running data plot in GUI mode", nil)

	fyneApp := fyneapp.NewWithID(app.AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})

	application := app.NewApplication(fyneApp, cfg, log)
	application.Run()
	return nil
}
