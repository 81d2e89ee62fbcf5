package types

// Info carries auxiliary data from reset and step calls.
// Opaque to the driver, forwarded to the presentation layer as-is.
type Info map[string]interface{}

// StepResult is the outcome of a single environment transition.
type StepResult struct {
	State      int     `json:"state"`
	Reward     float64 `json:"reward"`
	Terminated bool    `json:"terminated"`
	Truncated  bool    `json:"truncated"`
	Info       Info    `json:"-"`
}

// Environment that the driver steps through
type Environment interface {
	// Reset called at the start of each episode
	Reset() (int, Info)
	// Step applies the action and advances the environment
	Step(action int) StepResult
	// Render returns the current frame
	// Format is opaque to the driver, whatever the consumer displays
	Render() string
}

// ActionSelector picks an action for a discrete state
type ActionSelector interface {
	SelectAction(state int) int
}
