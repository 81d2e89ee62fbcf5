package taxi

import (
	"fmt"
	"strings"
)

// Render draws the current frame as text. The taxi is marked 'T' while
// empty and '@' while carrying the passenger; a legend underneath names the
// passenger location and the destination.
func (e *Env) Render() string {
	lines := make([][]byte, len(layout))
	for i, row := range layout {
		lines[i] = []byte(row)
	}

	marker := byte('T')
	if e.passenger == InTaxi {
		marker = '@'
	}
	lines[e.taxi.Row+1][2*e.taxi.Col+1] = marker

	var b strings.Builder
	for _, line := range lines {
		b.Write(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Passenger: %s  Destination: %s\n", DepotName(e.passenger), DepotName(e.destination))
	return b.String()
}
