package policies

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftmaxSelector samples actions with probability proportional to the
// exponentiated action values. A playback alternative to the greedy
// selector, useful to see the agent deviate from its best-known path.
type SoftmaxSelector struct {
	table       *Table
	temperature float64
	rand        rand.Source
}

func NewSoftmaxSelector(table *Table, temperature float64) *SoftmaxSelector {
	return &SoftmaxSelector{
		table:       table,
		temperature: temperature,
		rand:        rand.NewSource(uint64(time.Now().UnixNano())),
	}
}

// Seed replaces the sampling source, for reproducible playback.
func (s *SoftmaxSelector) Seed(seed uint64) {
	s.rand = rand.NewSource(seed)
}

func (s *SoftmaxSelector) SelectAction(state int) int {
	vals := s.table.Row(state)

	// shift by the max value so the exponentials stay finite
	maxVal := vals[0]
	for _, v := range vals {
		if v > maxVal {
			maxVal = v
		}
	}

	sum := float64(0)
	weights := make([]float64, len(vals))
	for i, val := range vals {
		exp := math.Exp((val - maxVal) / s.temperature)
		weights[i] = exp
		sum += exp
	}
	for i, w := range weights {
		weights[i] = w / sum
	}
	i, ok := sampleuv.NewWeighted(weights, s.rand).Take()
	if !ok {
		return s.table.SelectAction(state)
	}
	return i
}
