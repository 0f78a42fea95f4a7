package glamour

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/repositories/bindings"
	"github.com/KirkDiggler/glamour-api/internal/repositories/designs"
	"github.com/KirkDiggler/glamour-api/internal/state"
)

// BoundDesignSource resolves actor bindings to stored designs for the
// tracker
type BoundDesignSource struct {
	bindings bindings.Repository
	designs  designs.Repository
}

var _ state.BoundDesigns = (*BoundDesignSource)(nil)

// NewBoundDesignSource creates a source over the binding and design
// repositories
func NewBoundDesignSource(bindingRepo bindings.Repository, designRepo designs.Repository) *BoundDesignSource {
	return &BoundDesignSource{bindings: bindingRepo, designs: designRepo}
}

// BoundDesign implements state.BoundDesigns. A binding whose design was
// deleted counts as no binding.
func (s *BoundDesignSource) BoundDesign(ctx context.Context, id appearance.ActorIdentifier) (design.Design, bool, error) {
	b, err := s.bindings.Get(ctx, bindings.GetInput{Actor: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	out, err := s.designs.Get(ctx, designs.GetInput{ID: b.Binding.DesignID})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.WarnContext(ctx, "bound design no longer exists",
				"actor", id.String(),
				"design_id", b.Binding.DesignID)
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to load design bound to %s", id)
	}

	return out.Design, true, nil
}
