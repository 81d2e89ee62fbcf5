package cmd

import (
	"fmt"

	"github.com/rl-demos/taxi-v3-demo/explorer"
	"github.com/rl-demos/taxi-v3-demo/policies"
	"github.com/rl-demos/taxi-v3-demo/taxi"
	"github.com/rl-demos/taxi-v3-demo/types"
	"github.com/spf13/cobra"
)

var (
	tableFile string
	seed      int64
	delayMs   int
	softmax   bool
	temp      float64
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use: "taxi-demo",
	}
	rootCommand.PersistentFlags().StringVarP(&tableFile, "table", "t", "q_table.json", "Path to the pre-trained policy table (JSON)")
	rootCommand.PersistentFlags().Int64Var(&seed, "seed", 0, "Environment seed, 0 for time-based")
	rootCommand.PersistentFlags().IntVar(&delayMs, "delay", 100, "Delay between steps in milliseconds")
	rootCommand.PersistentFlags().BoolVar(&softmax, "softmax", false, "Sample actions softmax-weighted instead of greedily")
	rootCommand.PersistentFlags().Float64Var(&temp, "temperature", 1.0, "Softmax temperature")
	// adding the subcommands here
	rootCommand.AddCommand(ServeCommand())
	rootCommand.AddCommand(PlayCommand())
	rootCommand.AddCommand(HeatmapCommand())
	rootCommand.AddCommand(explorer.ExploreCommand())
	return rootCommand
}

// newDriver loads the table and wires the environment, selector and driver
// from the persistent flags.
func newDriver() (*types.Driver, error) {
	table, err := policies.ReadTable(tableFile)
	if err != nil {
		return nil, err
	}
	if table.NumStates() != taxi.NumStates || table.NumActions() != taxi.NumActions {
		return nil, fmt.Errorf("table shape %dx%d does not match the taxi state space %dx%d",
			table.NumStates(), table.NumActions(), taxi.NumStates, taxi.NumActions)
	}

	env := taxi.NewEnv()
	if seed != 0 {
		env.Seed(seed)
	}

	var selector types.ActionSelector = table
	if softmax {
		s := policies.NewSoftmaxSelector(table, temp)
		if seed != 0 {
			s.Seed(uint64(seed))
		}
		selector = s
	}
	return types.NewDriver(env, selector), nil
}
