package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/glamour-api/internal/errors"
)

// Wire messages travel as google.protobuf.Struct. Field names are the JSON
// tags below; enum-like values (customization fields, slots, toggles) use
// their lower snake case names.

// ArmorMessage is an armor piece on the wire
type ArmorMessage struct {
	Set     uint16 `json:"set"`
	Variant uint8  `json:"variant"`
	Stain   uint8  `json:"stain,omitempty"`
}

// WeaponMessage is a weapon on the wire
type WeaponMessage struct {
	Set     uint16 `json:"set"`
	Type    uint16 `json:"type"`
	Variant uint16 `json:"variant"`
	Stain   uint8  `json:"stain,omitempty"`
}

// CharacterMessage is the full appearance of an actor
type CharacterMessage struct {
	ModelID   uint32                  `json:"model_id"`
	Customize map[string]uint8        `json:"customize,omitempty"`
	Equipment map[string]ArmorMessage `json:"equipment,omitempty"`
	MainHand  WeaponMessage           `json:"main_hand"`
	OffHand   WeaponMessage           `json:"off_hand"`
}

// FieldSetMessage names selected fields
type FieldSetMessage struct {
	Customize []string `json:"customize,omitempty"`
	Equip     []string `json:"equip,omitempty"`
	Toggles   []string `json:"toggles,omitempty"`
}

// ActorStateMessage is the engine's view of a tracked actor
type ActorStateMessage struct {
	Actor        string           `json:"actor"`
	Data         CharacterMessage `json:"data"`
	Baseline     CharacterMessage `json:"baseline"`
	Toggles      []string         `json:"toggles,omitempty"`
	Changed      FieldSetMessage  `json:"changed"`
	Fixed        FieldSetMessage  `json:"fixed"`
	Code         string           `json:"code"`
	NeedsRedraw  bool             `json:"needs_redraw"`
	RedrawReason string           `json:"redraw_reason,omitempty"`
}

// DesignMessage is a stored design. Appearance and mask travel in Code.
// WriteProtected overrides the flag carried by Code when set.
type DesignMessage struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Code           string `json:"code"`
	WriteProtected *bool  `json:"write_protected,omitempty"`
	CreatedAt      int64  `json:"created_at,omitempty"`
	UpdatedAt      int64  `json:"updated_at,omitempty"`
}

// ReportActorRequest carries what the host shows for an actor
type ReportActorRequest struct {
	Actor string           `json:"actor"`
	Data  CharacterMessage `json:"data"`
	Visor bool             `json:"visor"`
}

// DriftMessage lists what a report changed
type DriftMessage struct {
	Absorbed     FieldSetMessage `json:"absorbed"`
	Locked       FieldSetMessage `json:"locked"`
	ModelChanged bool            `json:"model_changed"`
	VisorChanged bool            `json:"visor_changed"`
}

// ReportActorResponse is returned by ReportActor
type ReportActorResponse struct {
	NewlyTracked bool              `json:"newly_tracked"`
	Drift        DriftMessage      `json:"drift"`
	State        ActorStateMessage `json:"state"`
}

// ListActorsResponse is returned by ListActors
type ListActorsResponse struct {
	Actors []string `json:"actors"`
}

// ApplyDesignRequest names a stored design or carries a code
type ApplyDesignRequest struct {
	Actor    string `json:"actor"`
	DesignID string `json:"design_id,omitempty"`
	Code     string `json:"code,omitempty"`
}

// ApplyResultMessage reports what an apply did
type ApplyResultMessage struct {
	Changed          FieldSetMessage `json:"changed"`
	Locked           FieldSetMessage `json:"locked"`
	Rejected         []string        `json:"rejected,omitempty"`
	SkippedCustomize bool            `json:"skipped_customize"`
}

// ApplyDesignResponse is returned by ApplyDesign
type ApplyDesignResponse struct {
	Result ApplyResultMessage `json:"result"`
	State  ActorStateMessage  `json:"state"`
}

// SetLockRequest locks or unlocks fields
type SetLockRequest struct {
	Actor     string   `json:"actor"`
	Customize []string `json:"customize,omitempty"`
	Equip     []string `json:"equip,omitempty"`
	Locked    bool     `json:"locked"`
}

// ReleaseFieldsRequest hands fields back to the host
type ReleaseFieldsRequest struct {
	Actor     string   `json:"actor"`
	Customize []string `json:"customize,omitempty"`
	Equip     []string `json:"equip,omitempty"`
}

// EditActorRequest changes fields of a tracked actor
type EditActorRequest struct {
	Actor     string                  `json:"actor"`
	Force     bool                    `json:"force"`
	Customize map[string]uint8        `json:"customize,omitempty"`
	Armor     map[string]ArmorMessage `json:"armor,omitempty"`
	MainHand  *WeaponMessage          `json:"main_hand,omitempty"`
	OffHand   *WeaponMessage          `json:"off_hand,omitempty"`
	Stains    map[string]uint8        `json:"stains,omitempty"`
	Toggles   map[string]bool         `json:"toggles,omitempty"`
}

// SaveDesignRequest creates or updates a stored design
type SaveDesignRequest struct {
	Design DesignMessage `json:"design"`
}

// SaveDesignResponse is returned by SaveDesign
type SaveDesignResponse struct {
	Design  DesignMessage `json:"design"`
	Created bool          `json:"created"`
}

// CaptureDesignRequest saves an actor's intended state as a design
type CaptureDesignRequest struct {
	Actor       string `json:"actor"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListDesignsResponse is returned by ListDesigns
type ListDesignsResponse struct {
	Designs []DesignMessage `json:"designs"`
}

// BindingMessage is a design bound to an actor
type BindingMessage struct {
	Actor    string `json:"actor"`
	DesignID string `json:"design_id"`
	BoundAt  int64  `json:"bound_at,omitempty"`
}

// BindDesignRequest binds a stored design to an actor
type BindDesignRequest struct {
	Actor    string `json:"actor"`
	DesignID string `json:"design_id"`
}

// BindDesignResponse is returned by BindDesign. Replaced names the design
// the actor was bound to before, if any.
type BindDesignResponse struct {
	Binding  BindingMessage `json:"binding"`
	Replaced string         `json:"replaced,omitempty"`
}

// ListBindingsResponse is returned by ListBindings
type ListBindingsResponse struct {
	Bindings []BindingMessage `json:"bindings"`
}

// ToStruct encodes a message as a protobuf Struct
func ToStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal message")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrap(err, "failed to build struct")
	}
	return out, nil
}

// FromStruct decodes a protobuf Struct into a message
func FromStruct(in *structpb.Struct, v any) error {
	if in == nil {
		return errors.InvalidArgument("request body is required")
	}
	raw, err := protojson.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "failed to read struct")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request body")
	}
	return nil
}
