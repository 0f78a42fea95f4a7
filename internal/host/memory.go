// Package host provides the in-memory host adapter. The game-side
// integration pushes what it currently shows for each actor and the
// engine reads it back through the state.Host interface.
package host

import (
	"sync"

	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/state"
)

type actorView struct {
	data  appearance.CharacterData
	visor bool
}

// Memory stores the latest reported view of every actor. It is safe for
// concurrent use and never blocks readers for long.
type Memory struct {
	mu     sync.RWMutex
	actors map[appearance.ActorIdentifier]actorView
}

var _ state.Host = (*Memory)(nil)

// NewMemory creates an empty host view
func NewMemory() *Memory {
	return &Memory{
		actors: make(map[appearance.ActorIdentifier]actorView),
	}
}

// Report records what the host currently shows for an actor
func (m *Memory) Report(id appearance.ActorIdentifier, data appearance.CharacterData, visor bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actors[id] = actorView{data: data, visor: visor}
}

// Remove forgets an actor, making it unavailable
func (m *Memory) Remove(id appearance.ActorIdentifier) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.actors[id]; !ok {
		return false
	}
	delete(m.actors, id)
	return true
}

// ReadActorSnapshot implements state.Host
func (m *Memory) ReadActorSnapshot(id appearance.ActorIdentifier) (appearance.CharacterData, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	view, ok := m.actors[id]
	return view.data, ok
}

// ReadVisorState implements state.Host. Unknown actors report false.
func (m *Memory) ReadVisorState(id appearance.ActorIdentifier) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.actors[id].visor
}
