package explorer

import (
	"fmt"

	"github.com/rl-demos/taxi-v3-demo/policies"
	"github.com/rl-demos/taxi-v3-demo/taxi"
	"github.com/rl-demos/taxi-v3-demo/types"
	"github.com/spf13/cobra"
)

type Explorer struct {
	TableFile string

	Table *policies.Table
}

// Create an explorer over a loaded policy table
func NewExplorer(tableFile string) (*Explorer, error) {
	table, err := policies.ReadTable(tableFile)
	if err != nil {
		return nil, err
	}
	if table.NumStates() != taxi.NumStates || table.NumActions() != taxi.NumActions {
		return nil, fmt.Errorf("table shape %dx%d does not match the taxi state space %dx%d",
			table.NumStates(), table.NumActions(), taxi.NumStates, taxi.NumActions)
	}
	return &Explorer{
		TableFile: tableFile,
		Table:     table,
	}, nil
}

// newDriver builds a fresh seeded playback driver for trace walking
func (e *Explorer) newDriver(seed int64) *types.Driver {
	env := taxi.NewEnv()
	if seed != 0 {
		env.Seed(seed)
	}
	return types.NewDriver(env, e.Table)
}

// Example invocation - ./taxi-demo explore q_table.json
func ExploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "explore [table_file]",
		Long: "Explore the choices of the policy table interactively",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := NewExplorer(args[0])
			if err != nil {
				return err
			}

			exp.Interact()
			return nil
		},
	}
}
