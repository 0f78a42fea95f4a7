package state

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
)

//go:generate mockgen -destination=mock/mock_collaborators.go -package=statemock github.com/KirkDiggler/glamour-api/internal/state Host,Settings,Redrawer,BoundDesigns

// Host reads actor state from the game client. Both calls must be cheap
// and must not block.
type Host interface {
	// ReadActorSnapshot returns false when the actor is not available
	ReadActorSnapshot(id appearance.ActorIdentifier) (appearance.CharacterData, bool)
	ReadVisorState(id appearance.ActorIdentifier) bool
}

// Settings gates the engine. Values are read on every call and never changed.
type Settings interface {
	// Enabled turns Sync and Apply into no-ops when false. Actors tracked
	// while disabled are seeded by the first enabled Sync.
	Enabled() bool
	SkipInvalidCustomizations() bool
	RestrictedGearProtection() bool
	// AutoDesigns applies the design bound to an actor when it is tracked
	// and after drift
	AutoDesigns() bool
	// AutoRedrawEquip requests a redraw for equipment changes as well
	AutoRedrawEquip() bool
}

// Redrawer asks the host to fully redraw an actor when a change cannot be
// applied in place
type Redrawer interface {
	RequestRedraw(ctx context.Context, entity core.Entity, reason string) error
}

// BoundDesigns resolves the design an actor is bound to. It returns false
// when the actor has no binding.
type BoundDesigns interface {
	BoundDesign(ctx context.Context, id appearance.ActorIdentifier) (design.Design, bool, error)
}
