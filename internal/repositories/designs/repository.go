// Package designs defines the interface for stored design persistence
package designs

//go:generate mockgen -destination=mock/mock_repository.go -package=designsmock github.com/KirkDiggler/glamour-api/internal/repositories/designs Repository

import (
	"cmp"
	"context"
	"slices"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/errors"
)

const (
	// Error messages
	errDesignNil     = "design cannot be nil"
	errDesignIDEmpty = "design ID cannot be empty"
	errNameEmpty     = "design name cannot be empty"
)

// Repository defines the interface for stored design persistence.
// Write-protected designs cannot be deleted and their content cannot be
// changed; only the protection flag itself may be updated.
type Repository interface {
	// Create stores a new design. An empty ID is generated.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a design by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the design doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing design
	// Returns errors.NotFound if the design doesn't exist
	// Returns errors.FailedPrecondition (WRITE_PROTECTED) for protected content
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a design by ID
	// Returns errors.NotFound if the design doesn't exist
	// Returns errors.FailedPrecondition (WRITE_PROTECTED) for protected designs
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every design ordered by name, then ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a design
type CreateInput struct {
	Design *design.StoredDesign
}

// CreateOutput defines the output for creating a design
type CreateOutput struct {
	Design *design.StoredDesign
}

// GetInput defines the input for getting a design
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a design
type GetOutput struct {
	Design *design.StoredDesign
}

// UpdateInput defines the input for updating a design
type UpdateInput struct {
	Design *design.StoredDesign
}

// UpdateOutput defines the output for updating a design
type UpdateOutput struct {
	Design *design.StoredDesign
}

// DeleteInput defines the input for deleting a design
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a design
type DeleteOutput struct{}

// ListInput defines the input for listing designs
type ListInput struct{}

// ListOutput defines the output for listing designs
type ListOutput struct {
	Designs []*design.StoredDesign
}

func validateForWrite(d *design.StoredDesign, requireID bool) error {
	if d == nil {
		return errors.InvalidArgument(errDesignNil)
	}
	if requireID && d.ID == "" {
		return errors.InvalidArgument(errDesignIDEmpty)
	}
	if d.Name == "" {
		return errors.InvalidArgument(errNameEmpty)
	}
	return nil
}

// checkProtected rejects an update that would alter a protected design.
// Clearing or setting the flag alone is allowed.
func checkProtected(existing, next *design.StoredDesign) error {
	if !existing.WriteProtected {
		return nil
	}
	if sameContent(existing, next) {
		return nil
	}
	return errors.WriteProtected(existing.ID)
}

func sameContent(a, b *design.StoredDesign) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	sa, sb := a.State(), b.State()
	sa.WriteProtected, sb.WriteProtected = false, false
	return sa == sb
}

func clone(d *design.StoredDesign) *design.StoredDesign {
	c := *d
	return &c
}

func sortDesigns(list []*design.StoredDesign) {
	slices.SortFunc(list, func(a, b *design.StoredDesign) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// normalize drops appearance data outside the design's mask, matching what
// a round trip through the snapshot code would keep
func normalize(d *design.StoredDesign) *design.StoredDesign {
	n := design.FromState(d.State())
	n.ID = d.ID
	n.Name = d.Name
	n.Description = d.Description
	n.WriteProtected = d.WriteProtected
	n.CreatedAt = d.CreatedAt
	n.UpdatedAt = d.UpdatedAt
	return n
}
