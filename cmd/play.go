package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/rl-demos/taxi-v3-demo/player"
	"github.com/spf13/cobra"
)

func PlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "play",
		Long: "Play one episode in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			driver, err := newDriver()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			p := player.NewPlayer(driver, time.Duration(delayMs)*time.Millisecond)
			if _, err := p.Play(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
