package cmd

import (
	"time"

	"github.com/rl-demos/taxi-v3-demo/server"
	"github.com/spf13/cobra"
)

func ServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:  "serve",
		Long: "Serve the interactive web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			driver, err := newDriver()
			if err != nil {
				return err
			}
			sim := server.NewSimulation(driver, time.Duration(delayMs)*time.Millisecond)
			return sim.Serve(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "Address to serve the UI on")
	return cmd
}
