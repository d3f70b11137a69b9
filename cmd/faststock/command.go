package main

import (
	"context"
	"errors"
	"io"

	"github.com/rogerio-castellano/faststock/internal/config"
	"github.com/rogerio-castellano/faststock/internal/i18n"
	"github.com/rogerio-castellano/faststock/internal/menu"
	"github.com/rogerio-castellano/faststock/internal/repo"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// CLI flags that override config keys.
var (
	stringFlagKeys = map[string]string{
		"locale":    config.KeyLocale,
		"log-level": config.KeyLogLevel,
	}
	boolFlagKeys = map[string]string{
		"clear-screen": config.KeyClearScreen,
		"pause":        config.KeyPause,
	}
)

func newCommand(logger *logrus.Logger, in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "faststock",
		Usage:  "manage an in-memory product inventory from a text menu",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML, TOML or JSON config file",
			},
			&cli.StringFlag{
				Name:  "locale",
				Usage: "menu language (en, pt-BR)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "clear-screen",
				Usage: "clear the terminal between screens",
			},
			&cli.BoolFlag{
				Name:  "pause",
				Usage: "wait for Enter after every action",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			overrides := map[string]any{}
			for name, key := range stringFlagKeys {
				if cmd.IsSet(name) {
					overrides[key] = cmd.String(name)
				}
			}
			for name, key := range boolFlagKeys {
				if cmd.IsSet(name) {
					overrides[key] = cmd.Bool(name)
				}
			}

			cfg, err := config.Load(cmd.String("config"), overrides)
			if err != nil {
				return err
			}
			tag, err := cfg.Language()
			if err != nil {
				return err
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			logger.WithFields(logrus.Fields{
				"locale":    tag.String(),
				"log_level": level.String(),
			}).Debug("configuration loaded")

			m := menu.New(
				repo.NewInMemoryProductRepository(),
				in,
				out,
				i18n.NewPrinter(tag),
				logger,
				menu.Options{ClearScreen: cfg.ClearScreen, Pause: cfg.Pause},
			)
			if err := m.Run(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					logger.Debug("interrupted")
					return nil
				}
				return err
			}
			return nil
		},
	}
}
