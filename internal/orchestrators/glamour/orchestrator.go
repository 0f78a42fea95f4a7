// Package glamour implements the service that fronts the appearance engine.
// It serializes every tracker access, feeds host reports into drift
// absorption and bridges stored designs to tracked actors.
package glamour

//go:generate mockgen -destination=mock/mock_service.go -package=glamourmock github.com/KirkDiggler/glamour-api/internal/orchestrators/glamour Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/repositories/bindings"
	"github.com/KirkDiggler/glamour-api/internal/repositories/designs"
	"github.com/KirkDiggler/glamour-api/internal/state"
)

// Service defines the operations exposed to the transport layer
type Service interface {
	// Actor state
	ReportActor(ctx context.Context, input *ReportActorInput) (*ReportActorOutput, error)
	UntrackActor(ctx context.Context, input *UntrackActorInput) (*UntrackActorOutput, error)
	GetActorState(ctx context.Context, input *GetActorStateInput) (*GetActorStateOutput, error)
	ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error)

	// Actor edits
	ApplyDesign(ctx context.Context, input *ApplyDesignInput) (*ApplyDesignOutput, error)
	SetLock(ctx context.Context, input *SetLockInput) (*SetLockOutput, error)
	ReleaseFields(ctx context.Context, input *ReleaseFieldsInput) (*ReleaseFieldsOutput, error)
	EditActor(ctx context.Context, input *EditActorInput) (*EditActorOutput, error)

	// Stored designs
	SaveDesign(ctx context.Context, input *SaveDesignInput) (*SaveDesignOutput, error)
	CaptureDesign(ctx context.Context, input *CaptureDesignInput) (*CaptureDesignOutput, error)
	GetDesign(ctx context.Context, input *GetDesignInput) (*GetDesignOutput, error)
	ListDesigns(ctx context.Context, input *ListDesignsInput) (*ListDesignsOutput, error)
	DeleteDesign(ctx context.Context, input *DeleteDesignInput) (*DeleteDesignOutput, error)

	// Auto designs
	BindDesign(ctx context.Context, input *BindDesignInput) (*BindDesignOutput, error)
	UnbindDesign(ctx context.Context, input *UnbindDesignInput) (*UnbindDesignOutput, error)
	ListBindings(ctx context.Context, input *ListBindingsInput) (*ListBindingsOutput, error)
}

// HostView is the host adapter the service pushes reports into
type HostView interface {
	state.Host
	Report(id appearance.ActorIdentifier, data appearance.CharacterData, visor bool)
	Remove(id appearance.ActorIdentifier) bool
}

// Config holds the dependencies for the glamour orchestrator
type Config struct {
	Host       HostView
	Tracker    *state.Tracker
	DesignRepo designs.Repository
	// BindingRepo holds the designs bound to actors. The tracker reads the
	// same bindings through a BoundDesignSource.
	BindingRepo bindings.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Host == nil {
		vb.RequiredField("Host")
	}
	if c.Tracker == nil {
		vb.RequiredField("Tracker")
	}
	if c.DesignRepo == nil {
		vb.RequiredField("DesignRepo")
	}
	if c.BindingRepo == nil {
		vb.RequiredField("BindingRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	// mu guards tracker and keeps host reports ordered with their sync
	mu      sync.Mutex
	host    HostView
	tracker  *state.Tracker
	repo     designs.Repository
	bindings bindings.Repository
}

// NewOrchestrator creates a new glamour orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		host:     cfg.Host,
		tracker:  cfg.Tracker,
		repo:     cfg.DesignRepo,
		bindings: cfg.BindingRepo,
	}, nil
}

func (o *orchestrator) ReportActor(ctx context.Context, input *ReportActorInput) (*ReportActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.host.Report(input.Actor, input.Data, input.Visor)

	output := &ReportActorOutput{}
	active, tracked := o.tracker.Get(input.Actor)
	if !tracked {
		var err error
		active, err = o.tracker.Track(ctx, input.Actor)
		if err != nil {
			return nil, err
		}
		output.NewlyTracked = true
	} else {
		drift, err := o.tracker.Sync(ctx, input.Actor)
		if err != nil {
			return nil, err
		}
		output.Drift = drift
	}

	output.State = snapshot(active)
	return output, nil
}

func (o *orchestrator) UntrackActor(ctx context.Context, input *UntrackActorInput) (*UntrackActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	removed := o.tracker.Untrack(ctx, input.Actor)
	o.host.Remove(input.Actor)

	return &UntrackActorOutput{Removed: removed}, nil
}

func (o *orchestrator) GetActorState(_ context.Context, input *GetActorStateInput) (*GetActorStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	active, err := o.tracked(input.Actor)
	if err != nil {
		return nil, err
	}

	return &GetActorStateOutput{State: snapshot(active)}, nil
}

func (o *orchestrator) ListActors(_ context.Context, _ *ListActorsInput) (*ListActorsOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &ListActorsOutput{Actors: o.tracker.IDs()}, nil
}

func (o *orchestrator) ApplyDesign(ctx context.Context, input *ApplyDesignInput) (*ApplyDesignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}
	if (input.DesignID == "") == (input.Code == "") {
		return nil, errors.InvalidArgument("exactly one of design ID and code is required")
	}

	source, err := o.resolveDesign(ctx, input.DesignID, input.Code)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	active, err := o.tracked(input.Actor)
	if err != nil {
		return nil, err
	}

	result, err := o.tracker.Apply(ctx, input.Actor, source)
	if err != nil {
		return nil, err
	}

	return &ApplyDesignOutput{Result: result, State: snapshot(active)}, nil
}

func (o *orchestrator) SetLock(ctx context.Context, input *SetLockInput) (*SetLockOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}
	if err := validateFields(input.Customize, input.Equip); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	active, err := o.tracked(input.Actor)
	if err != nil {
		return nil, err
	}

	for _, i := range input.Customize {
		active.SetFixedCustomize(i, input.Locked)
	}
	for _, slot := range input.Equip {
		active.SetFixedEquip(slot, input.Locked)
	}

	slog.InfoContext(ctx, "actor locks changed",
		"actor", input.Actor.String(),
		"locked", input.Locked,
		"customize", len(input.Customize),
		"equip", len(input.Equip))

	return &SetLockOutput{State: snapshot(active)}, nil
}

func (o *orchestrator) ReleaseFields(ctx context.Context, input *ReleaseFieldsInput) (*ReleaseFieldsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}
	if err := validateFields(input.Customize, input.Equip); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	active, err := o.tracked(input.Actor)
	if err != nil {
		return nil, err
	}

	cp := active.Checkpoint()
	for _, i := range input.Customize {
		if err := active.ReleaseCustomize(i); err != nil {
			active.Rollback(cp)
			return nil, err
		}
	}
	for _, slot := range input.Equip {
		if err := active.ReleaseEquip(slot); err != nil {
			active.Rollback(cp)
			return nil, err
		}
	}
	o.tracker.RequestRedrawIfNeeded(ctx, input.Actor)

	return &ReleaseFieldsOutput{State: snapshot(active)}, nil
}

func (o *orchestrator) EditActor(ctx context.Context, input *EditActorInput) (*EditActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}
	if input.Edit.IsEmpty() {
		return nil, errors.InvalidArgument("edit is empty")
	}
	if err := validateEdit(input.Edit); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	active, err := o.tracked(input.Actor)
	if err != nil {
		return nil, err
	}

	var target design.Design = active
	if input.Force {
		target = active.Forced()
	}
	cp := active.Checkpoint()
	if err := applyEdit(target, input.Edit); err != nil {
		active.Rollback(cp)
		return nil, errors.Wrapf(err, "failed to edit %s", input.Actor)
	}
	o.tracker.RequestRedrawIfNeeded(ctx, input.Actor)

	return &EditActorOutput{State: snapshot(active)}, nil
}

func (o *orchestrator) SaveDesign(ctx context.Context, input *SaveDesignInput) (*SaveDesignOutput, error) {
	if input == nil || input.Design == nil {
		return nil, errors.InvalidArgument("design is required")
	}

	if input.Design.ID != "" {
		_, err := o.repo.Get(ctx, designs.GetInput{ID: input.Design.ID})
		switch {
		case err == nil:
			out, err := o.repo.Update(ctx, designs.UpdateInput{Design: input.Design})
			if err != nil {
				return nil, err
			}
			return &SaveDesignOutput{Design: out.Design}, nil
		case !errors.IsNotFound(err):
			return nil, err
		}
	}

	out, err := o.repo.Create(ctx, designs.CreateInput{Design: input.Design})
	if err != nil {
		return nil, err
	}

	return &SaveDesignOutput{Design: out.Design, Created: true}, nil
}

func (o *orchestrator) CaptureDesign(ctx context.Context, input *CaptureDesignInput) (*CaptureDesignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	o.mu.Lock()
	active, err := o.tracked(input.Actor)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	captured := design.FromState(active.ExportState())
	o.mu.Unlock()

	captured.Name = input.Name
	captured.Description = input.Description

	out, err := o.repo.Create(ctx, designs.CreateInput{Design: captured})
	if err != nil {
		return nil, err
	}

	return &CaptureDesignOutput{Design: out.Design}, nil
}

func (o *orchestrator) GetDesign(ctx context.Context, input *GetDesignInput) (*GetDesignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.repo.Get(ctx, designs.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetDesignOutput{Design: out.Design}, nil
}

func (o *orchestrator) ListDesigns(ctx context.Context, _ *ListDesignsInput) (*ListDesignsOutput, error) {
	out, err := o.repo.List(ctx, designs.ListInput{})
	if err != nil {
		return nil, err
	}

	return &ListDesignsOutput{Designs: out.Designs}, nil
}

func (o *orchestrator) DeleteDesign(ctx context.Context, input *DeleteDesignInput) (*DeleteDesignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.repo.Delete(ctx, designs.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	return &DeleteDesignOutput{}, nil
}

func (o *orchestrator) BindDesign(ctx context.Context, input *BindDesignInput) (*BindDesignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}
	if input.DesignID == "" {
		return nil, errors.InvalidArgument("design ID is required")
	}

	if _, err := o.repo.Get(ctx, designs.GetInput{ID: input.DesignID}); err != nil {
		return nil, err
	}

	out, err := o.bindings.Bind(ctx, bindings.BindInput{Actor: input.Actor, DesignID: input.DesignID})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "design bound",
		"actor", input.Actor.String(),
		"design_id", input.DesignID,
		"replaced", out.Replaced)

	return &BindDesignOutput{Binding: out.Binding, Replaced: out.Replaced}, nil
}

func (o *orchestrator) UnbindDesign(ctx context.Context, input *UnbindDesignInput) (*UnbindDesignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	if _, err := o.bindings.Unbind(ctx, bindings.UnbindInput{Actor: input.Actor}); err != nil {
		return nil, err
	}

	return &UnbindDesignOutput{}, nil
}

func (o *orchestrator) ListBindings(ctx context.Context, _ *ListBindingsInput) (*ListBindingsOutput, error) {
	out, err := o.bindings.List(ctx, bindings.ListInput{})
	if err != nil {
		return nil, err
	}

	return &ListBindingsOutput{Bindings: out.Bindings}, nil
}

// tracked must be called with mu held
func (o *orchestrator) tracked(id appearance.ActorIdentifier) (*design.ActiveDesign, error) {
	active, ok := o.tracker.Get(id)
	if !ok {
		return nil, errors.NotFoundf("actor %s is not tracked", id)
	}
	return active, nil
}

func (o *orchestrator) resolveDesign(ctx context.Context, id, code string) (*design.StoredDesign, error) {
	if code != "" {
		return design.FromCode(code)
	}

	out, err := o.repo.Get(ctx, designs.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Design, nil
}

func validateActor(id appearance.ActorIdentifier) error {
	if !id.IsValid() {
		return errors.InvalidArgumentf("invalid actor identifier %q", id.String())
	}
	return nil
}

func validateFields(customize []appearance.CustomizeIndex, equip []appearance.EquipSlot) error {
	vb := errors.NewValidationBuilder()
	if len(customize) == 0 && len(equip) == 0 {
		vb.Field("Fields", "at least one field is required")
	}
	for _, i := range customize {
		if !i.Valid() {
			vb.Fieldf("Customize", "unknown field %d", uint8(i))
		}
	}
	for _, slot := range equip {
		if !slot.Valid() {
			vb.Fieldf("Equip", "unknown slot %d", uint8(slot))
		}
	}
	return vb.Build()
}

func validateEdit(edit ActorEdit) error {
	vb := errors.NewValidationBuilder()
	for i := range edit.Customize {
		if !i.Valid() {
			vb.Fieldf("Customize", "unknown field %d", uint8(i))
		}
	}
	for slot := range edit.Armor {
		if !slot.IsArmor() {
			vb.Fieldf("Armor", "%s is not an armor slot", slot)
		}
	}
	for slot := range edit.Stains {
		if !slot.Valid() {
			vb.Fieldf("Stains", "unknown slot %d", uint8(slot))
		}
	}
	for toggle := range edit.Toggles {
		if toggle == 0 || toggle&^appearance.ToggleFlagAll != 0 || len(toggle.Toggles()) != 1 {
			vb.Fieldf("Toggles", "unknown toggle %d", uint8(toggle))
		}
	}
	return vb.Build()
}

// applyEdit writes an edit in canonical order and stops at the first
// error. Callers roll back the fields written before it.
func applyEdit(target design.Design, edit ActorEdit) error {
	for _, i := range appearance.AllCustomizeIndices() {
		if v, ok := edit.Customize[i]; ok {
			if err := target.SetCustomize(i, v); err != nil {
				return err
			}
		}
	}
	for _, slot := range appearance.ArmorSlots() {
		if armor, ok := edit.Armor[slot]; ok {
			if err := target.UpdateArmor(slot, armor); err != nil {
				return err
			}
		}
	}
	if edit.MainHand != nil {
		if err := target.UpdateMainhand(*edit.MainHand); err != nil {
			return err
		}
	}
	if edit.OffHand != nil {
		if err := target.UpdateOffhand(*edit.OffHand); err != nil {
			return err
		}
	}
	for _, slot := range appearance.EquipFlagAll.Slots() {
		if stain, ok := edit.Stains[slot]; ok {
			if err := target.SetStain(slot, stain); err != nil {
				return err
			}
		}
	}
	for _, toggle := range appearance.ToggleFlagAll.Toggles() {
		if v, ok := edit.Toggles[toggle]; ok {
			if err := target.SetToggle(toggle, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func snapshot(active *design.ActiveDesign) *ActorState {
	redraw, reason := active.NeedsRedraw()
	return &ActorState{
		Actor:        active.Identifier(),
		Data:         active.Data(),
		Baseline:     active.Baseline(),
		Toggles:      active.Toggles(),
		Changed:      active.Changed(),
		Fixed:        active.Fixed(),
		Code:         active.Export(),
		NeedsRedraw:  redraw,
		RedrawReason: reason,
	}
}
