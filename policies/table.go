package policies

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Table holds pre-trained action values indexed by [state][action].
// Immutable once constructed.
type Table struct {
	values [][]float64
}

// NewTable validates the raw values and wraps them. Every state row must
// have the same non-zero number of actions.
func NewTable(values [][]float64) (*Table, error) {
	if len(values) == 0 {
		return nil, errors.New("table has no states")
	}
	numActions := len(values[0])
	if numActions == 0 {
		return nil, errors.New("table has no actions")
	}
	for s, row := range values {
		if len(row) != numActions {
			return nil, fmt.Errorf("state %d has %d actions, expected %d", s, len(row), numActions)
		}
	}
	return &Table{values: values}, nil
}

// ReadTable loads a table from a JSON file holding a 2-D array of values.
// A missing file surfaces as a wrapped os.ErrNotExist.
func ReadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading table file: %w", err)
	}
	values := make([][]float64, 0)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("error parsing table file: %w", err)
	}
	return NewTable(values)
}

func (t *Table) NumStates() int {
	return len(t.values)
}

func (t *Table) NumActions() int {
	return len(t.values[0])
}

// Row returns a copy of the action values for the state.
func (t *Table) Row(state int) []float64 {
	t.checkState(state)
	row := make([]float64, len(t.values[state]))
	copy(row, t.values[state])
	return row
}

// SelectAction returns the greedy action for the state. Ties go to the
// lowest-indexed action, which keeps playback reproducible. A state outside
// the table's range is an internal-consistency bug and panics, it is never
// clamped or wrapped.
func (t *Table) SelectAction(state int) int {
	t.checkState(state)
	row := t.values[state]
	best := 0
	for a := 1; a < len(row); a++ {
		if row[a] > row[best] {
			best = a
		}
	}
	return best
}

func (t *Table) checkState(state int) {
	if state < 0 || state >= len(t.values) {
		panic(fmt.Sprintf("state %d out of table range [0, %d)", state, len(t.values)))
	}
}
