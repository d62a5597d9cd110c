package flocking

import (
	"errors"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

func TestWorld_AddFlock(t *testing.T) {
	w := NewWorld()
	f, err := w.AddFlock("red", defaultFlock)
	if err != nil {
		t.Fatalf("AddFlock: %v", err)
	}
	if f.ID != "red" || f.Params != defaultFlock || len(f.Members) != 0 {
		t.Errorf("unexpected flock %+v", f)
	}

	if _, err := w.AddFlock("red", defaultFlock); !errors.Is(err, ErrDuplicateFlock) {
		t.Errorf("second AddFlock(red) error = %v; want ErrDuplicateFlock", err)
	}

	got, ok := w.Flock("red")
	if !ok || got != f {
		t.Errorf("Flock(red) = %v, %v", got, ok)
	}
	if _, ok := w.Flock("blue"); ok {
		t.Error("Flock(blue) should not exist")
	}
}

func TestWorld_AddAgent(t *testing.T) {
	w := NewWorld()
	if _, err := w.AddAgent("ghost", Agent{}); !errors.Is(err, ErrUnknownFlock) {
		t.Fatalf("AddAgent to unknown flock error = %v; want ErrUnknownFlock", err)
	}

	red, _ := w.AddFlock("red", defaultFlock)
	blue, _ := w.AddFlock("blue", defaultFlock)

	order := []FlockID{"red", "blue", "red", "red", "blue"}
	for i, id := range order {
		idx, err := w.AddAgent(id, Agent{ID: 99, Flock: "ignored", Position: geometry.Vector2D{X: float64(i)}})
		if err != nil {
			t.Fatalf("AddAgent(%s): %v", id, err)
		}
		if idx != i {
			t.Errorf("AddAgent returned index %d; want %d", idx, i)
		}
	}

	if w.Len() != len(order) {
		t.Errorf("Len = %d; want %d", w.Len(), len(order))
	}

	wantRed := []int{0, 2, 3}
	wantBlue := []int{1, 4}
	if len(red.Members) != len(wantRed) || len(blue.Members) != len(wantBlue) {
		t.Fatalf("members red=%v blue=%v", red.Members, blue.Members)
	}
	for i, idx := range wantRed {
		if red.Members[i] != idx {
			t.Errorf("red.Members = %v; want %v", red.Members, wantRed)
		}
		a := w.Agent(idx)
		if a.ID != AgentID(i) || a.Flock != "red" {
			t.Errorf("agent %d = %+v; want id %d in red", idx, a, i)
		}
	}
	for i, idx := range wantBlue {
		if blue.Members[i] != idx {
			t.Errorf("blue.Members = %v; want %v", blue.Members, wantBlue)
		}
		if a := w.Agent(idx); a.ID != AgentID(i) || a.Flock != "blue" {
			t.Errorf("agent %d = %+v; want id %d in blue", idx, a, i)
		}
	}

	if len(w.Flocks()) != 2 || w.Flocks()[0] != red || w.Flocks()[1] != blue {
		t.Errorf("Flocks() not in creation order: %v", w.Flocks())
	}
}
