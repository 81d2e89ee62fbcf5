package taxi

import (
	"math/rand"
	"time"

	"github.com/rl-demos/taxi-v3-demo/types"
)

const (
	Rows = 5
	Cols = 5

	// 25 taxi cells x 5 passenger locations (4 depots + in-taxi) x 4 destinations
	NumStates  = 500
	NumActions = 6

	// passenger location index meaning "riding in the taxi"
	InTaxi = 4

	// episodes are truncated past this many steps
	MaxEpisodeSteps = 200
)

const (
	ActionSouth = iota
	ActionNorth
	ActionEast
	ActionWest
	ActionPickup
	ActionDropoff
)

var actionNames = [NumActions]string{"South", "North", "East", "West", "Pickup", "Dropoff"}

// ActionName returns the human-readable name of an action, "None" for -1.
func ActionName(action int) string {
	if action < 0 || action >= NumActions {
		return "None"
	}
	return actionNames[action]
}

type cell struct {
	Row int
	Col int
}

// the four depots, in passenger/destination index order
var depots = [4]cell{
	{0, 0}, // R
	{0, 4}, // G
	{4, 0}, // Y
	{4, 3}, // B
}

var depotNames = [4]string{"R", "G", "Y", "B"}

// DepotName returns the letter of a depot index, "Taxi" for the in-taxi index.
func DepotName(loc int) string {
	if loc == InTaxi {
		return "Taxi"
	}
	if loc < 0 || loc > 3 {
		return "?"
	}
	return depotNames[loc]
}

// the canonical map; cell (r, c) sits at layout[r+1][2*c+1] and the
// separator to its east at layout[r+1][2*c+2], ':' meaning passable
var layout = [Rows + 2]string{
	"+---------+",
	"|R: | : :G|",
	"| : | : : |",
	"| : : : : |",
	"| | : | : |",
	"|Y| : |B: |",
	"+---------+",
}

// Encode packs a taxi position, passenger location and destination into the
// single discrete state index.
func Encode(row, col, passenger, destination int) int {
	return ((row*Cols+col)*5+passenger)*4 + destination
}

// Decode unpacks a discrete state index.
func Decode(state int) (row, col, passenger, destination int) {
	destination = state % 4
	state /= 4
	passenger = state % 5
	state /= 5
	col = state % Cols
	row = state / Cols
	return
}

// Env is the Taxi-v3 gridworld: pick the passenger up at their depot, drive
// through the walls' gaps and drop them at the destination depot.
type Env struct {
	rand *rand.Rand

	taxi        cell
	passenger   int
	destination int
	steps       int
}

var _ types.Environment = &Env{}

func NewEnv() *Env {
	return &Env{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed makes subsequent resets reproducible.
func (e *Env) Seed(seed int64) {
	e.rand = rand.New(rand.NewSource(seed))
}

// Reset samples a fresh initial state: uniform taxi cell, passenger waiting
// at one of the four depots, destination a different depot.
func (e *Env) Reset() (int, types.Info) {
	e.taxi = cell{Row: e.rand.Intn(Rows), Col: e.rand.Intn(Cols)}
	e.passenger = e.rand.Intn(4)
	e.destination = e.rand.Intn(3)
	if e.destination >= e.passenger {
		e.destination += 1
	}
	e.steps = 0
	return e.state(), types.Info{"action_mask": e.actionMask()}
}

// Step applies the action. Movement into a wall leaves the taxi in place,
// illegal pickup and dropoff cost -10, every step costs -1 and a successful
// dropoff earns +20 and terminates the episode.
func (e *Env) Step(action int) types.StepResult {
	reward := -1.0
	terminated := false

	switch action {
	case ActionSouth:
		if e.taxi.Row < Rows-1 {
			e.taxi.Row += 1
		}
	case ActionNorth:
		if e.taxi.Row > 0 {
			e.taxi.Row -= 1
		}
	case ActionEast:
		if layout[e.taxi.Row+1][2*e.taxi.Col+2] == ':' {
			e.taxi.Col += 1
		}
	case ActionWest:
		if layout[e.taxi.Row+1][2*e.taxi.Col] == ':' {
			e.taxi.Col -= 1
		}
	case ActionPickup:
		if e.passenger < InTaxi && e.taxi == depots[e.passenger] {
			e.passenger = InTaxi
		} else {
			reward = -10.0
		}
	case ActionDropoff:
		if e.passenger == InTaxi && e.taxi == depots[e.destination] {
			e.passenger = e.destination
			reward = 20.0
			terminated = true
		} else if e.passenger == InTaxi && e.atDepot() >= 0 {
			// dropping the passenger at the wrong depot is legal, just unhelpful
			e.passenger = e.atDepot()
		} else {
			reward = -10.0
		}
	}

	e.steps += 1
	// the step cap reports truncation even when the same step terminates
	truncated := e.steps >= MaxEpisodeSteps

	return types.StepResult{
		State:      e.state(),
		Reward:     reward,
		Terminated: terminated,
		Truncated:  truncated,
		Info:       types.Info{"action_mask": e.actionMask()},
	}
}

func (e *Env) state() int {
	return Encode(e.taxi.Row, e.taxi.Col, e.passenger, e.destination)
}

func (e *Env) atDepot() int {
	for i, d := range depots {
		if e.taxi == d {
			return i
		}
	}
	return -1
}

// actionMask marks which actions change the state from the current cell
func (e *Env) actionMask() [NumActions]bool {
	var mask [NumActions]bool
	mask[ActionSouth] = e.taxi.Row < Rows-1
	mask[ActionNorth] = e.taxi.Row > 0
	mask[ActionEast] = layout[e.taxi.Row+1][2*e.taxi.Col+2] == ':'
	mask[ActionWest] = layout[e.taxi.Row+1][2*e.taxi.Col] == ':'
	mask[ActionPickup] = e.passenger < InTaxi && e.taxi == depots[e.passenger]
	mask[ActionDropoff] = e.passenger == InTaxi && e.atDepot() >= 0
	return mask
}
