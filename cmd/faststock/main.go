// Command faststock runs the interactive inventory menu.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(logger, os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil {
		logger.WithError(err).Error("faststock stopped")
		stop()
		os.Exit(1)
	}
}
