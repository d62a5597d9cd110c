package flocking

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFlock   = errors.New("unknown flock")
	ErrDuplicateFlock = errors.New("flock already exists")
)

// World is the arena of agents plus the ordered list of flocks grouping them.
// Flocks refer to their members by arena index, agents refer to their flock by
// id, so there is no pointer cycle between the two.
//
// The host creates flocks and agents; the simulation only reads and writes
// position, velocity and heading of existing agents.
type World struct {
	agents []Agent
	flocks []*Flock
	byID   map[FlockID]int
}

// NewWorld creates an empty arena.
func NewWorld() *World {
	return &World{
		agents: make([]Agent, 0),
		flocks: make([]*Flock, 0),
		byID:   make(map[FlockID]int),
	}
}

// AddFlock registers a new, empty flock.
func (w *World) AddFlock(id FlockID, params FlockParams) (*Flock, error) {
	if _, ok := w.byID[id]; ok {
		return nil, fmt.Errorf("add flock %q: %w", id, ErrDuplicateFlock)
	}
	f := &Flock{ID: id, Params: params}
	w.byID[id] = len(w.flocks)
	w.flocks = append(w.flocks, f)
	return f, nil
}

// AddAgent appends an agent to the arena as a member of flock id.
// The agent's ID and Flock fields are assigned here; its index in the arena
// is returned.
func (w *World) AddAgent(id FlockID, a Agent) (int, error) {
	i, ok := w.byID[id]
	if !ok {
		return -1, fmt.Errorf("add agent to %q: %w", id, ErrUnknownFlock)
	}
	f := w.flocks[i]

	a.ID = f.nextID
	a.Flock = f.ID
	f.nextID++

	idx := len(w.agents)
	w.agents = append(w.agents, a)
	f.Members = append(f.Members, idx)
	return idx, nil
}

// Flock returns the flock registered under id.
func (w *World) Flock(id FlockID) (*Flock, bool) {
	i, ok := w.byID[id]
	if !ok {
		return nil, false
	}
	return w.flocks[i], true
}

// Flocks returns the flocks in creation order.
func (w *World) Flocks() []*Flock { return w.flocks }

// Agent returns a pointer into the arena; it stays valid until the next AddAgent.
func (w *World) Agent(idx int) *Agent { return &w.agents[idx] }

// Agents exposes the arena. Renderers read it after a tick completes.
func (w *World) Agents() []Agent { return w.agents }

// Len is the number of agents in the arena.
func (w *World) Len() int { return len(w.agents) }
