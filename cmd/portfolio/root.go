package main

import (
	"github.com/spf13/cobra"

	"github.com/Rohancherukuri/portfolio/internal/config"
	"github.com/Rohancherukuri/portfolio/internal/content"
	"github.com/Rohancherukuri/portfolio/internal/logger"
	"github.com/Rohancherukuri/portfolio/internal/theme"
)

type rootFlags struct {
	content   string
	logLevel  string
	logFormat string
}

// app is what every subcommand shares once the root pre-run has loaded the
// environment and built the logger.
type app struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Render and serve a single-page personal portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("content") {
				cfg.ContentPath = flags.content
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flags.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = flags.logFormat
			}

			log, err := logger.New(logger.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), "")
		},
	}

	cmd.PersistentFlags().StringVar(&flags.content, "content", "", "YAML profile to render instead of the built-in one (env PORTFOLIO_CONTENT)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logger.FormatJSON, "Log format: json or console (env LOG_FORMAT)")

	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newPaletteCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// site loads the profile and applies its palette overrides to the default
// theme.
func (a *app) site() (theme.Theme, content.Profile, error) {
	p, err := content.Load(a.cfg.ContentPath)
	if err != nil {
		return theme.Theme{}, content.Profile{}, err
	}
	th, err := p.Theme(theme.Default())
	if err != nil {
		return theme.Theme{}, content.Profile{}, err
	}

	source := a.cfg.ContentPath
	if source == "" {
		source = "built-in"
	}
	a.log.WithFields(map[string]any{"content": source, "name": p.Name}).Debug("content loaded")
	return th, p, nil
}
