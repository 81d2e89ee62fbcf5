package types

import (
	"context"
	"errors"
	"time"
)

// ErrEpisodeFinished signals that a step was requested on a terminated or
// truncated episode. Advisory, the episode state is left untouched.
var ErrEpisodeFinished = errors.New("episode already finished")

// EpisodeState is the bookkeeping of one episode. Created on reset,
// updated exactly once per step, replaced on the next reset.
type EpisodeState struct {
	State       int     `json:"state"`
	TotalReward float64 `json:"total_reward"`
	Steps       int     `json:"steps"`
	Terminated  bool    `json:"terminated"`
	Truncated   bool    `json:"truncated"`
	// LastAction is -1 until the first step of the episode
	LastAction int     `json:"last_action"`
	LastReward float64 `json:"last_reward"`
}

// Finished reports whether the episode reached a terminal or truncated state.
func (e EpisodeState) Finished() bool {
	return e.Terminated || e.Truncated
}

// Driver steps an environment under the control of an action selector,
// tracking episode bookkeeping. One driver owns one environment at a time.
type Driver struct {
	environment Environment
	selector    ActionSelector
	episode     EpisodeState
}

// Instantiates a new Driver and resets the environment
func NewDriver(environment Environment, selector ActionSelector) *Driver {
	d := &Driver{
		environment: environment,
		selector:    selector,
	}
	d.Reset()
	return d
}

// Reset starts a fresh episode, discarding all prior bookkeeping.
func (d *Driver) Reset() EpisodeState {
	state, _ := d.environment.Reset()
	d.episode = EpisodeState{
		State:      state,
		LastAction: -1,
	}
	return d.episode
}

// Step performs exactly one transition. On a finished episode it is a no-op
// and returns the unchanged state together with ErrEpisodeFinished.
func (d *Driver) Step() (EpisodeState, error) {
	if d.episode.Finished() {
		return d.episode, ErrEpisodeFinished
	}
	action := d.selector.SelectAction(d.episode.State)
	result := d.environment.Step(action)

	d.episode.State = result.State
	d.episode.TotalReward += result.Reward
	d.episode.Steps += 1
	d.episode.Terminated = result.Terminated
	d.episode.Truncated = result.Truncated
	d.episode.LastAction = action
	d.episode.LastReward = result.Reward
	return d.episode, nil
}

// Run steps the episode to completion. The observer, if set, is called after
// every transition so the caller can render intermediate frames. The delay is
// the yield point between steps; cancellation of ctx is honored between any
// two steps. There is no internal step cap, termination relies on the
// environment reporting terminated or truncated.
func (d *Driver) Run(ctx context.Context, delay time.Duration, observe func(EpisodeState)) (EpisodeState, error) {
	for !d.episode.Finished() {
		select {
		case <-ctx.Done():
			return d.episode, ctx.Err()
		default:
		}
		episode, err := d.Step()
		if err != nil {
			return episode, err
		}
		if observe != nil {
			observe(episode)
		}
		if delay > 0 && !episode.Finished() {
			select {
			case <-ctx.Done():
				return d.episode, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return d.episode, nil
}

// State returns a snapshot of the current episode bookkeeping.
func (d *Driver) State() EpisodeState {
	return d.episode
}

// Render returns the environment's current frame.
func (d *Driver) Render() string {
	return d.environment.Render()
}
