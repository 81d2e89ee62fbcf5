package player

import (
	"context"
	"fmt"
	"time"

	"github.com/gosuri/uilive"
	"github.com/rl-demos/taxi-v3-demo/taxi"
	"github.com/rl-demos/taxi-v3-demo/types"
)

// Player animates one episode in the terminal, redrawing the frame in place
// after every transition.
type Player struct {
	driver *types.Driver
	delay  time.Duration

	writer *uilive.Writer
}

func NewPlayer(driver *types.Driver, delay time.Duration) *Player {
	return &Player{
		driver: driver,
		delay:  delay,
		writer: uilive.New(),
	}
}

// Play resets the driver and runs the episode to completion, honoring ctx
// cancellation between steps.
func (p *Player) Play(ctx context.Context) (types.EpisodeState, error) {
	episode := p.driver.Reset()
	p.draw(episode)

	final, err := p.driver.Run(ctx, p.delay, func(e types.EpisodeState) {
		p.draw(e)
	})
	if err != nil {
		return final, err
	}

	// the whole buffer is rewritten on flush, so the summary goes out
	// together with the last frame
	if final.Terminated {
		fmt.Fprintf(p.writer, "%sEpisode finished successfully in %d steps, total reward %.1f\n", p.driver.Render(), final.Steps, final.TotalReward)
	} else {
		fmt.Fprintf(p.writer, "%sEpisode truncated after %d steps, total reward %.1f\n", p.driver.Render(), final.Steps, final.TotalReward)
	}
	p.writer.Flush()
	return final, nil
}

func (p *Player) draw(e types.EpisodeState) {
	fmt.Fprintf(p.writer, "%sStep: %d  Last action: %s (%.1f)  Total reward: %.1f\n",
		p.driver.Render(), e.Steps, taxi.ActionName(e.LastAction), e.LastReward, e.TotalReward)
	p.writer.Flush()
}
