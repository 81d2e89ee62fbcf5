package policies

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSelectActionGreedy(t *testing.T) {
	table, err := NewTable([][]float64{
		{0.5, -1.0, 2.5},
		{-3.0, -1.0, -2.0},
	})
	if err != nil {
		t.Fatalf("unexpected table error: %v", err)
	}
	if a := table.SelectAction(0); a != 2 {
		t.Errorf("expected action 2 for state 0, got %d", a)
	}
	if a := table.SelectAction(1); a != 1 {
		t.Errorf("expected action 1 for state 1, got %d", a)
	}
}

func TestSelectActionTieBreak(t *testing.T) {
	table, err := NewTable([][]float64{{2.0, 5.0, 5.0, 1.0}})
	if err != nil {
		t.Fatalf("unexpected table error: %v", err)
	}
	if a := table.SelectAction(0); a != 1 {
		t.Errorf("tie must break to the lowest index, expected 1, got %d", a)
	}
}

func TestSelectActionDeterministic(t *testing.T) {
	table, err := NewTable([][]float64{{1.0, 0.0}, {0.0, 1.0}})
	if err != nil {
		t.Fatalf("unexpected table error: %v", err)
	}
	for i := 0; i < 100; i++ {
		if a := table.SelectAction(1); a != 1 {
			t.Fatalf("selection changed between calls, got %d", a)
		}
	}
}

func TestSelectActionOutOfRangePanics(t *testing.T) {
	table, _ := NewTable([][]float64{{1.0, 2.0}})
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range state")
		}
	}()
	table.SelectAction(1)
}

func TestNewTableRejectsRaggedRows(t *testing.T) {
	if _, err := NewTable([][]float64{{1.0, 2.0}, {1.0}}); err == nil {
		t.Errorf("expected error for ragged rows")
	}
	if _, err := NewTable([][]float64{}); err == nil {
		t.Errorf("expected error for empty table")
	}
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "no_such_table.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestReadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	if err := os.WriteFile(path, []byte(`[[1.0, 2.0], [3.0, 0.5]]`), 0644); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}
	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if table.NumStates() != 2 || table.NumActions() != 2 {
		t.Errorf("incorrect table shape: %dx%d", table.NumStates(), table.NumActions())
	}
	if a := table.SelectAction(1); a != 0 {
		t.Errorf("expected action 0 for state 1, got %d", a)
	}
}

func TestSoftmaxSelectorStaysInRange(t *testing.T) {
	table, _ := NewTable([][]float64{{1.0, 3.0, 2.0}})
	selector := NewSoftmaxSelector(table, 1.0)
	selector.Seed(42)
	for i := 0; i < 100; i++ {
		a := selector.SelectAction(0)
		if a < 0 || a >= 3 {
			t.Fatalf("sampled action %d out of range", a)
		}
	}
}
