// Package bindings stores which stored design each actor is bound to.
// Bound designs are applied automatically while auto designs are enabled.
package bindings

//go:generate mockgen -destination=mock/mock_repository.go -package=bindingsmock github.com/KirkDiggler/glamour-api/internal/repositories/bindings Repository

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
)

const (
	// Error messages
	errActorInvalid  = "actor identifier is invalid"
	errDesignIDEmpty = "design ID cannot be empty"
)

// Binding links an actor to a stored design
type Binding struct {
	Actor    appearance.ActorIdentifier
	DesignID string
	BoundAt  time.Time
}

// Repository defines the interface for actor binding persistence. An actor
// has at most one binding; binding again replaces it.
type Repository interface {
	// Bind sets the design bound to an actor
	// Returns errors.InvalidArgument for invalid actors or empty design IDs
	// Returns errors.Internal for storage failures
	Bind(ctx context.Context, input BindInput) (*BindOutput, error)

	// Get returns the binding of an actor
	// Returns errors.NotFound if the actor is not bound
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Unbind removes the binding of an actor
	// Returns errors.NotFound if the actor is not bound
	Unbind(ctx context.Context, input UnbindInput) (*UnbindOutput, error)

	// List returns every binding ordered by actor
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// BindInput defines the input for binding an actor
type BindInput struct {
	Actor    appearance.ActorIdentifier
	DesignID string
}

// BindOutput defines the output for binding an actor
type BindOutput struct {
	Binding *Binding
	// Replaced is the design ID of the previous binding, if any
	Replaced string
}

// GetInput defines the input for getting a binding
type GetInput struct {
	Actor appearance.ActorIdentifier
}

// GetOutput defines the output for getting a binding
type GetOutput struct {
	Binding *Binding
}

// UnbindInput defines the input for removing a binding
type UnbindInput struct {
	Actor appearance.ActorIdentifier
}

// UnbindOutput defines the output for removing a binding
type UnbindOutput struct{}

// ListInput defines the input for listing bindings
type ListInput struct{}

// ListOutput defines the output for listing bindings
type ListOutput struct {
	Bindings []*Binding
}

func validateActor(actor appearance.ActorIdentifier) error {
	if !actor.IsValid() {
		return errors.InvalidArgument(errActorInvalid)
	}
	return nil
}

func notBound(actor appearance.ActorIdentifier) error {
	return errors.NotFoundf("actor %s has no bound design", actor)
}

func sortBindings(list []*Binding) {
	slices.SortFunc(list, func(a, b *Binding) int {
		return cmp.Compare(a.Actor.String(), b.Actor.String())
	})
}
