package taxi

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for state := 0; state < NumStates; state++ {
		row, col, passenger, destination := Decode(state)
		if Encode(row, col, passenger, destination) != state {
			t.Fatalf("state %d does not round trip", state)
		}
	}
}

func TestResetInitialStates(t *testing.T) {
	env := NewEnv()
	env.Seed(1)
	for i := 0; i < 200; i++ {
		state, _ := env.Reset()
		_, _, passenger, destination := Decode(state)
		if passenger == InTaxi {
			t.Fatalf("reset placed the passenger in the taxi")
		}
		if passenger == destination {
			t.Fatalf("reset placed passenger and destination at the same depot")
		}
	}
}

func TestResetDeterministicUnderSeed(t *testing.T) {
	a := NewEnv()
	a.Seed(7)
	b := NewEnv()
	b.Seed(7)
	for i := 0; i < 50; i++ {
		sa, _ := a.Reset()
		sb, _ := b.Reset()
		if sa != sb {
			t.Fatalf("seeded resets diverged at iteration %d: %d vs %d", i, sa, sb)
		}
	}
}

// place the env in a known configuration
func (e *Env) set(row, col, passenger, destination int) {
	e.taxi = cell{Row: row, Col: col}
	e.passenger = passenger
	e.destination = destination
	e.steps = 0
}

func TestWallBlocksMovement(t *testing.T) {
	env := NewEnv()
	// the wall east of (0, 1)
	env.set(0, 1, 0, 1)
	result := env.Step(ActionEast)
	row, col, _, _ := Decode(result.State)
	if row != 0 || col != 1 {
		t.Errorf("taxi moved through a wall to (%d, %d)", row, col)
	}
	if result.Reward != -1 {
		t.Errorf("expected step reward -1, got %f", result.Reward)
	}

	// the open corridor east of (2, 1)
	env.set(2, 1, 0, 1)
	result = env.Step(ActionEast)
	row, col, _, _ = Decode(result.State)
	if row != 2 || col != 2 {
		t.Errorf("taxi failed to move east, at (%d, %d)", row, col)
	}
}

func TestBoundaryClamping(t *testing.T) {
	env := NewEnv()
	env.set(0, 0, 0, 1)
	result := env.Step(ActionNorth)
	row, col, _, _ := Decode(result.State)
	if row != 0 || col != 0 {
		t.Errorf("taxi left the grid to (%d, %d)", row, col)
	}
}

func TestPickupAndDropoff(t *testing.T) {
	env := NewEnv()
	// taxi on the R depot with the passenger waiting there, destination G
	env.set(0, 0, 0, 1)

	result := env.Step(ActionPickup)
	_, _, passenger, _ := Decode(result.State)
	if passenger != InTaxi {
		t.Fatalf("pickup at the passenger depot failed")
	}
	if result.Reward != -1 {
		t.Errorf("expected pickup reward -1, got %f", result.Reward)
	}

	// dropoff away from any depot is illegal
	env.taxi = cell{Row: 2, Col: 2}
	result = env.Step(ActionDropoff)
	if result.Reward != -10 {
		t.Errorf("expected illegal dropoff reward -10, got %f", result.Reward)
	}
	if result.Terminated {
		t.Errorf("illegal dropoff must not terminate the episode")
	}

	// dropoff at the destination depot G
	env.taxi = cell{Row: 0, Col: 4}
	result = env.Step(ActionDropoff)
	if result.Reward != 20 {
		t.Errorf("expected dropoff reward 20, got %f", result.Reward)
	}
	if !result.Terminated {
		t.Errorf("successful dropoff must terminate the episode")
	}
}

func TestIllegalPickup(t *testing.T) {
	env := NewEnv()
	// passenger waits at G, taxi sits on R
	env.set(0, 0, 1, 2)
	result := env.Step(ActionPickup)
	if result.Reward != -10 {
		t.Errorf("expected illegal pickup reward -10, got %f", result.Reward)
	}
	_, _, passenger, _ := Decode(result.State)
	if passenger != 1 {
		t.Errorf("illegal pickup moved the passenger to %d", passenger)
	}
}

func TestWrongDepotDropoff(t *testing.T) {
	env := NewEnv()
	// carrying the passenger, on depot Y, destination B
	env.set(4, 0, InTaxi, 3)
	result := env.Step(ActionDropoff)
	if result.Reward != -1 {
		t.Errorf("expected wrong-depot dropoff reward -1, got %f", result.Reward)
	}
	_, _, passenger, _ := Decode(result.State)
	if passenger != 2 {
		t.Errorf("expected passenger left at depot Y (2), got %d", passenger)
	}
}

func TestTruncationAtStepLimit(t *testing.T) {
	env := NewEnv()
	env.set(2, 2, 0, 1)
	last := env.Step(ActionSouth)
	for i := 1; i < MaxEpisodeSteps; i++ {
		if last.Truncated {
			t.Fatalf("truncated early at step %d", i)
		}
		last = env.Step(ActionSouth)
	}
	if !last.Truncated {
		t.Errorf("episode not truncated after %d steps", MaxEpisodeSteps)
	}
}

func TestRenderMarksTaxi(t *testing.T) {
	env := NewEnv()
	env.set(2, 2, 0, 1)
	frame := env.Render()
	if !strings.Contains(frame, "T") {
		t.Errorf("empty taxi not marked in frame:\n%s", frame)
	}

	env.passenger = InTaxi
	frame = env.Render()
	if !strings.Contains(frame, "@") {
		t.Errorf("carrying taxi not marked in frame:\n%s", frame)
	}
	if !strings.Contains(frame, "Passenger: Taxi") {
		t.Errorf("legend missing passenger location:\n%s", frame)
	}
}

func TestTerminationAtStepLimitAlsoTruncates(t *testing.T) {
	env := NewEnv()
	// carrying the passenger on the destination depot, one step before the cap
	env.set(0, 4, InTaxi, 1)
	env.steps = MaxEpisodeSteps - 1
	result := env.Step(ActionDropoff)
	if !result.Terminated {
		t.Fatalf("dropoff at the destination must terminate: %+v", result)
	}
	if !result.Truncated {
		t.Errorf("reaching the step cap must report truncation even on a terminating step")
	}
}
