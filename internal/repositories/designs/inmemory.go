package designs

import (
	"context"
	"sync"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/pkg/clock"
	"github.com/KirkDiggler/glamour-api/internal/pkg/idgen"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*design.StoredDesign
	clock clock.Clock
	idGen idgen.Generator
}

var _ Repository = (*InMemoryRepository)(nil)

// InMemoryConfig contains optional dependencies for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
	IDGen idgen.Generator
}

// NewInMemory creates a new in-memory repository. A nil config uses the
// real clock and UUID identifiers.
func NewInMemory(cfg *InMemoryConfig) *InMemoryRepository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewUUID(DesignIDPrefix)
	}

	return &InMemoryRepository{
		store: make(map[string]*design.StoredDesign),
		clock: c,
		idGen: gen,
	}
}

// Create stores a new design
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateForWrite(input.Design, false); err != nil {
		return nil, err
	}

	d := normalize(input.Design)
	if d.ID == "" {
		d.ID = r.idGen.Generate()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[d.ID]; exists {
		return nil, errors.AlreadyExistsf("design with ID %s already exists", d.ID)
	}

	now := r.clock.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	r.store[d.ID] = d

	return &CreateOutput{Design: clone(d)}, nil
}

// Get retrieves a design by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDesignIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("design with ID %s not found", input.ID)
	}

	return &GetOutput{Design: clone(d)}, nil
}

// Update replaces an existing design
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateForWrite(input.Design, true); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.store[input.Design.ID]
	if !exists {
		return nil, errors.NotFoundf("design with ID %s not found", input.Design.ID)
	}
	if err := checkProtected(existing, input.Design); err != nil {
		return nil, err
	}

	d := normalize(input.Design)
	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = r.clock.Now()
	r.store[d.ID] = d

	return &UpdateOutput{Design: clone(d)}, nil
}

// Delete removes a design
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDesignIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("design with ID %s not found", input.ID)
	}
	if existing.WriteProtected {
		return nil, errors.WriteProtected(input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns every design ordered by name, then ID
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*design.StoredDesign, 0, len(r.store))
	for _, d := range r.store {
		list = append(list, clone(d))
	}
	sortDesigns(list)

	return &ListOutput{Designs: list}, nil
}
