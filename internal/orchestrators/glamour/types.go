package glamour

import (
	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/repositories/bindings"
)

// ActorState is a point-in-time copy of a tracked actor
type ActorState struct {
	Actor    appearance.ActorIdentifier
	Data     appearance.CharacterData
	Baseline appearance.CharacterData
	Toggles  appearance.ToggleFlag
	Changed  appearance.FieldSet
	Fixed    appearance.FieldSet
	// Code is the full snapshot code of the intended state
	Code string

	NeedsRedraw  bool
	RedrawReason string
}

// ReportActorInput carries what the host currently shows for an actor
type ReportActorInput struct {
	Actor appearance.ActorIdentifier
	Data  appearance.CharacterData
	Visor bool
}

// ReportActorOutput defines the response for reporting an actor
type ReportActorOutput struct {
	// NewlyTracked is true when the report started tracking the actor
	NewlyTracked bool
	Drift        design.DriftReport
	State        *ActorState
}

// UntrackActorInput defines the request for untracking an actor
type UntrackActorInput struct {
	Actor appearance.ActorIdentifier
}

// UntrackActorOutput defines the response for untracking an actor
type UntrackActorOutput struct {
	Removed bool
}

// GetActorStateInput defines the request for reading an actor
type GetActorStateInput struct {
	Actor appearance.ActorIdentifier
}

// GetActorStateOutput defines the response for reading an actor
type GetActorStateOutput struct {
	State *ActorState
}

// ListActorsInput defines the request for listing tracked actors
type ListActorsInput struct{}

// ListActorsOutput defines the response for listing tracked actors
type ListActorsOutput struct {
	Actors []appearance.ActorIdentifier
}

// ApplyDesignInput names the design to apply. Exactly one of DesignID
// and Code must be set.
type ApplyDesignInput struct {
	Actor    appearance.ActorIdentifier
	DesignID string
	Code     string
}

// ApplyDesignOutput defines the response for applying a design
type ApplyDesignOutput struct {
	Result design.ApplyResult
	State  *ActorState
}

// SetLockInput selects fields to lock or unlock
type SetLockInput struct {
	Actor     appearance.ActorIdentifier
	Customize []appearance.CustomizeIndex
	Equip     []appearance.EquipSlot
	Locked    bool
}

// SetLockOutput defines the response for changing locks
type SetLockOutput struct {
	State *ActorState
}

// ReleaseFieldsInput selects overrides to hand back to the host
type ReleaseFieldsInput struct {
	Actor     appearance.ActorIdentifier
	Customize []appearance.CustomizeIndex
	Equip     []appearance.EquipSlot
}

// ReleaseFieldsOutput defines the response for releasing fields
type ReleaseFieldsOutput struct {
	State *ActorState
}

// ActorEdit is a set of field changes. Armor and weapon entries change
// the item only; dyes are set through Stains.
type ActorEdit struct {
	Customize map[appearance.CustomizeIndex]byte
	Armor     map[appearance.EquipSlot]appearance.Armor
	MainHand  *appearance.Weapon
	OffHand   *appearance.Weapon
	Stains    map[appearance.EquipSlot]appearance.StainID
	Toggles   map[appearance.ToggleFlag]bool
}

// IsEmpty reports whether the edit changes nothing
func (e ActorEdit) IsEmpty() bool {
	return len(e.Customize) == 0 && len(e.Armor) == 0 && e.MainHand == nil &&
		e.OffHand == nil && len(e.Stains) == 0 && len(e.Toggles) == 0
}

// EditActorInput defines the request for editing an actor. Force edits
// locked fields as a user would.
type EditActorInput struct {
	Actor appearance.ActorIdentifier
	Edit  ActorEdit
	Force bool
}

// EditActorOutput defines the response for editing an actor
type EditActorOutput struct {
	State *ActorState
}

// SaveDesignInput defines the request for saving a design. A design
// without an ID, or with an unknown ID, is created.
type SaveDesignInput struct {
	Design *design.StoredDesign
}

// SaveDesignOutput defines the response for saving a design
type SaveDesignOutput struct {
	Design  *design.StoredDesign
	Created bool
}

// CaptureDesignInput defines the request for saving an actor's intended
// state as a new design
type CaptureDesignInput struct {
	Actor       appearance.ActorIdentifier
	Name        string
	Description string
}

// CaptureDesignOutput defines the response for capturing a design
type CaptureDesignOutput struct {
	Design *design.StoredDesign
}

// GetDesignInput defines the request for getting a design
type GetDesignInput struct {
	ID string
}

// GetDesignOutput defines the response for getting a design
type GetDesignOutput struct {
	Design *design.StoredDesign
}

// ListDesignsInput defines the request for listing designs
type ListDesignsInput struct{}

// ListDesignsOutput defines the response for listing designs
type ListDesignsOutput struct {
	Designs []*design.StoredDesign
}

// DeleteDesignInput defines the request for deleting a design
type DeleteDesignInput struct {
	ID string
}

// DeleteDesignOutput defines the response for deleting a design
type DeleteDesignOutput struct{}

// BindDesignInput binds a stored design to an actor. Binding again
// replaces the previous design.
type BindDesignInput struct {
	Actor    appearance.ActorIdentifier
	DesignID string
}

// BindDesignOutput defines the response for binding a design
type BindDesignOutput struct {
	Binding  *bindings.Binding
	Replaced string
}

// UnbindDesignInput defines the request for removing an actor's binding
type UnbindDesignInput struct {
	Actor appearance.ActorIdentifier
}

// UnbindDesignOutput defines the response for removing a binding
type UnbindDesignOutput struct{}

// ListBindingsInput defines the request for listing bindings
type ListBindingsInput struct{}

// ListBindingsOutput defines the response for listing bindings
type ListBindingsOutput struct {
	Bindings []*bindings.Binding
}
