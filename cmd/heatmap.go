package cmd

import (
	"fmt"

	"github.com/rl-demos/taxi-v3-demo/analysis"
	"github.com/spf13/cobra"
)

func HeatmapCommand() *cobra.Command {
	var episodes int
	var savePath string

	cmd := &cobra.Command{
		Use:  "heatmap",
		Long: "Run episodes and save visit heatmap and reward plots",
		RunE: func(cmd *cobra.Command, args []string) error {
			driver, err := newDriver()
			if err != nil {
				return err
			}

			grid, results, err := analysis.Collect(driver, episodes)
			if err != nil {
				return err
			}
			if err := analysis.SavePlots(savePath, grid, results); err != nil {
				return err
			}
			if err := analysis.SaveSummary(savePath, results); err != nil {
				return err
			}
			fmt.Printf("Saved plots for %d episodes to %s\n", episodes, savePath)
			return nil
		},
	}
	cmd.Flags().IntVarP(&episodes, "episodes", "e", 100, "Number of episodes to run")
	cmd.Flags().StringVarP(&savePath, "save", "s", "results", "Directory to save the plots in")
	return cmd
}
