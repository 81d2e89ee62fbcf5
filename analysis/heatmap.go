package analysis

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/rl-demos/taxi-v3-demo/taxi"
	"github.com/rl-demos/taxi-v3-demo/types"
	"github.com/rl-demos/taxi-v3-demo/util"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// VisitGrid counts how often the taxi occupied each cell across episodes.
type VisitGrid struct {
	Visits [taxi.Rows][taxi.Cols]int
}

var _ plotter.GridXYZ = &VisitGrid{}

func (g *VisitGrid) Dims() (int, int) {
	return taxi.Cols, taxi.Rows
}

func (g *VisitGrid) Z(c, r int) float64 {
	// plot rows grow upward, the grid grows downward
	return float64(g.Visits[taxi.Rows-1-r][c])
}

func (g *VisitGrid) X(c int) float64 {
	return float64(c)
}

func (g *VisitGrid) Y(r int) float64 {
	return float64(r)
}

func (g *VisitGrid) Min() float64 {
	return 0.0
}

func (g *VisitGrid) Max() float64 {
	max := 0
	for _, row := range g.Visits {
		for _, count := range row {
			if count > max {
				max = count
			}
		}
	}
	return float64(max)
}

// Result of a single analyzed episode
type EpisodeResult struct {
	TotalReward float64
	Steps       int
	Terminated  bool
}

// Collect drives the given number of episodes and gathers cell visits and
// per-episode outcomes.
func Collect(driver *types.Driver, episodes int) (*VisitGrid, []EpisodeResult, error) {
	grid := &VisitGrid{}
	results := make([]EpisodeResult, episodes)
	for i := 0; i < episodes; i++ {
		episode := driver.Reset()
		row, col, _, _ := taxi.Decode(episode.State)
		grid.Visits[row][col] += 1

		final, err := driver.Run(context.Background(), 0, func(e types.EpisodeState) {
			r, c, _, _ := taxi.Decode(e.State)
			grid.Visits[r][c] += 1
		})
		if err != nil {
			return nil, nil, err
		}
		results[i] = EpisodeResult{
			TotalReward: final.TotalReward,
			Steps:       final.Steps,
			Terminated:  final.Terminated,
		}
	}
	return grid, results, nil
}

// SavePlots writes the visit heatmap and the per-episode reward curve as
// PNG files under the given directory.
func SavePlots(savePath string, grid *VisitGrid, results []EpisodeResult) error {
	if _, err := os.Stat(savePath); err != nil {
		os.Mkdir(savePath, os.ModePerm)
	}

	p := plot.New()
	p.Title.Text = "Taxi cell visits"
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row"
	p.Add(plotter.NewHeatMap(grid, palette.Heat(20, 1)))
	if err := p.Save(6*vg.Inch, 6*vg.Inch, path.Join(savePath, "visits.png")); err != nil {
		return fmt.Errorf("error saving heatmap: %w", err)
	}

	p = plot.New()
	p.Title.Text = "Episode rewards"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Total reward"
	points := make(plotter.XYs, len(results))
	for i, result := range results {
		points[i] = plotter.XY{
			X: float64(i),
			Y: result.TotalReward,
		}
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("error building reward line: %w", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	if err := p.Save(8*vg.Inch, 4*vg.Inch, path.Join(savePath, "rewards.png")); err != nil {
		return fmt.Errorf("error saving reward plot: %w", err)
	}
	return nil
}

// SaveSummary writes a plain-text per-episode summary next to the plots.
func SaveSummary(savePath string, results []EpisodeResult) error {
	lines := make([]string, 0, len(results)+1)
	successes := 0
	for i, result := range results {
		outcome := "truncated"
		if result.Terminated {
			outcome = "terminated"
			successes += 1
		}
		lines = append(lines, fmt.Sprintf("episode %d: reward %.1f, steps %d, %s", i, result.TotalReward, result.Steps, outcome))
	}
	lines = append(lines, fmt.Sprintf("finished %d/%d episodes", successes, len(results)))
	return util.WriteLines(path.Join(savePath, "summary.txt"), lines...)
}
