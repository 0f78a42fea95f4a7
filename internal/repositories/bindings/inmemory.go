package bindings

import (
	"context"
	"sync"

	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[appearance.ActorIdentifier]Binding
	clock clock.Clock
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository. A nil clock uses the
// real one.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[appearance.ActorIdentifier]Binding),
		clock: c,
	}
}

// Bind sets the design bound to an actor
func (r *InMemoryRepository) Bind(_ context.Context, input BindInput) (*BindOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}
	if input.DesignID == "" {
		return nil, errors.InvalidArgument(errDesignIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := &BindOutput{}
	if previous, ok := r.store[input.Actor]; ok {
		out.Replaced = previous.DesignID
	}
	b := Binding{Actor: input.Actor, DesignID: input.DesignID, BoundAt: r.clock.Now()}
	r.store[input.Actor] = b
	out.Binding = &b

	return out, nil
}

// Get returns the binding of an actor
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.store[input.Actor]
	if !ok {
		return nil, notBound(input.Actor)
	}

	return &GetOutput{Binding: &b}, nil
}

// Unbind removes the binding of an actor
func (r *InMemoryRepository) Unbind(_ context.Context, input UnbindInput) (*UnbindOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[input.Actor]; !ok {
		return nil, notBound(input.Actor)
	}
	delete(r.store, input.Actor)

	return &UnbindOutput{}, nil
}

// List returns every binding ordered by actor
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*Binding, 0, len(r.store))
	for _, b := range r.store {
		b := b
		list = append(list, &b)
	}
	sortBindings(list)

	return &ListOutput{Bindings: list}, nil
}
