package design

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/glamour-api/internal/codec"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
)

// EntityType is returned by ActiveDesign.GetType
const EntityType = "active_design"

type writeMode int

const (
	// writeNormal honors locks and the gear guard
	writeNormal writeMode = iota
	// writeForced ignores locks but still runs the gear guard
	writeForced
	// writeAbsorb copies what the host already shows
	writeAbsorb
)

// ActiveDesignConfig holds the inputs for NewActiveDesign
type ActiveDesignConfig struct {
	Identifier appearance.ActorIdentifier
	// Snapshot is the actor as the host currently shows it. Nil means the
	// actor is detached and every field stays at its zero value.
	Snapshot *appearance.CharacterData
	Visor    bool
	// Guard is consulted by the armor mutators. Nil allows everything.
	Guard GearGuard
}

// Validate ensures the config is usable
func (c *ActiveDesignConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if !c.Identifier.IsValid() {
		vb.Field("identifier", "must be a valid actor identifier")
	}
	return vb.Build()
}

// DriftReport describes what one Initialize pass found
type DriftReport struct {
	// Absorbed are fields whose new live value was taken over
	Absorbed appearance.FieldSet
	// Locked are fixed fields whose baseline moved underneath them.
	// Their current value is kept and should be reasserted on the actor.
	Locked       appearance.FieldSet
	ModelChanged bool
	VisorChanged bool
}

// HasDrift reports whether anything moved
func (r DriftReport) HasDrift() bool {
	return !r.Absorbed.IsEmpty() || !r.Locked.IsEmpty() || r.ModelChanged || r.VisorChanged
}

// ActiveDesign is the live state of one tracked actor. It holds the last
// observed snapshot (the baseline), the state the engine wants the actor to
// show, and per-field Changed and Fixed flags.
//
// An ActiveDesign is not safe for concurrent use.
type ActiveDesign struct {
	identifier appearance.ActorIdentifier
	guard      GearGuard

	data     appearance.CharacterData
	baseline appearance.CharacterData

	changedCustomize appearance.CustomizeFlag
	fixedCustomize   appearance.CustomizeFlag
	changedEquip     appearance.EquipFlag
	fixedEquip       appearance.EquipFlag

	toggles appearance.ToggleFlag
}

var (
	_ Design      = (*ActiveDesign)(nil)
	_ core.Entity = (*ActiveDesign)(nil)
)

// NewActiveDesign binds the identifier, absorbs the snapshot and then
// clears every Changed flag, since nothing has diverged yet.
func NewActiveDesign(cfg *ActiveDesignConfig) (*ActiveDesign, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid active design config")
	}

	a := &ActiveDesign{
		identifier: cfg.Identifier,
		guard:      cfg.Guard,
	}
	if cfg.Snapshot != nil {
		a.Initialize(*cfg.Snapshot, cfg.Visor)
	}
	a.changedCustomize = 0
	a.changedEquip = 0

	return a, nil
}

// Identifier returns the actor this design is bound to
func (a *ActiveDesign) Identifier() appearance.ActorIdentifier {
	return a.identifier
}

// GetID implements core.Entity
func (a *ActiveDesign) GetID() string {
	return a.identifier.String()
}

// GetType implements core.Entity
func (a *ActiveDesign) GetType() string {
	return EntityType
}

// Data returns the state the engine wants the actor to show
func (a *ActiveDesign) Data() appearance.CharacterData {
	return a.data
}

// Baseline returns the last observed live snapshot
func (a *ActiveDesign) Baseline() appearance.CharacterData {
	return a.baseline
}

// Toggles returns the current toggle values
func (a *ActiveDesign) Toggles() appearance.ToggleFlag {
	return a.toggles
}

// Initialize diffs a live snapshot against the baseline. Customization is
// processed first, then armor in canonical order, then main hand, off hand
// and visor. A field that moved has its baseline updated; if it is not
// fixed its current value follows the host and it is marked Changed.
//
// Absorption skips the gear guard since the host already shows the item.
func (a *ActiveDesign) Initialize(live appearance.CharacterData, visor bool) DriftReport {
	var report DriftReport

	if a.baseline.ModelID != live.ModelID {
		a.baseline.ModelID = live.ModelID
		a.data.ModelID = live.ModelID
		report.ModelChanged = true
	}

	for _, idx := range appearance.AllCustomizeIndices() {
		v := live.Customize.Get(idx)
		if a.baseline.Customize.Get(idx) == v {
			continue
		}
		a.baseline.Customize.Set(idx, v)
		if a.fixedCustomize.Has(idx) {
			report.Locked.Customize = report.Locked.Customize.With(idx)
			continue
		}
		_ = a.setCustomize(idx, v, writeAbsorb)
		report.Absorbed.Customize = report.Absorbed.Customize.With(idx)
	}

	for _, slot := range appearance.ArmorSlots() {
		armor := live.Armor(slot)
		if a.baseline.Armor(slot) == armor {
			continue
		}
		a.baseline.SetArmor(slot, armor)
		if a.fixedEquip.Has(slot) {
			report.Locked.Equip = report.Locked.Equip.With(slot)
			continue
		}
		_ = a.updateArmor(slot, armor, writeAbsorb)
		_ = a.setStain(slot, armor.Stain, writeAbsorb)
		report.Absorbed.Equip = report.Absorbed.Equip.With(slot)
	}

	for _, slot := range []appearance.EquipSlot{appearance.SlotMainHand, appearance.SlotOffHand} {
		w := live.Weapon(slot)
		if a.baseline.Weapon(slot) == w {
			continue
		}
		a.baseline.SetWeapon(slot, w)
		if a.fixedEquip.Has(slot) {
			report.Locked.Equip = report.Locked.Equip.With(slot)
			continue
		}
		_ = a.updateWeapon(slot, w, writeAbsorb)
		_ = a.setStain(slot, w.Stain, writeAbsorb)
		report.Absorbed.Equip = report.Absorbed.Equip.With(slot)
	}

	if a.toggles.Has(appearance.ToggleVisorToggled) != visor {
		a.toggles = a.toggles.Set(appearance.ToggleVisorToggled, visor)
		report.VisorChanged = true
	}

	return report
}

// Seed absorbs the first snapshot of an actor that was tracked before the
// host could show it. Fields taken from the host are not marked Changed.
func (a *ActiveDesign) Seed(live appearance.CharacterData, visor bool) DriftReport {
	report := a.Initialize(live, visor)
	a.changedCustomize &^= report.Absorbed.Customize
	a.changedEquip &^= report.Absorbed.Equip
	return report
}

// Customize implements Design
func (a *ActiveDesign) Customize(i appearance.CustomizeIndex) byte {
	return a.data.Customize.Get(i)
}

// SetCustomize implements Design. Fixed fields return a lock conflict.
func (a *ActiveDesign) SetCustomize(i appearance.CustomizeIndex, v byte) error {
	return a.setCustomize(i, v, writeNormal)
}

// Armor implements Design
func (a *ActiveDesign) Armor(slot appearance.EquipSlot) appearance.Armor {
	return a.data.Armor(slot)
}

// UpdateArmor implements Design. The dye is kept.
func (a *ActiveDesign) UpdateArmor(slot appearance.EquipSlot, armor appearance.Armor) error {
	return a.updateArmor(slot, armor, writeNormal)
}

// MainHand implements Design
func (a *ActiveDesign) MainHand() appearance.Weapon {
	return a.data.MainHand
}

// UpdateMainhand implements Design. The dye is kept.
func (a *ActiveDesign) UpdateMainhand(w appearance.Weapon) error {
	return a.updateWeapon(appearance.SlotMainHand, w, writeNormal)
}

// OffHand implements Design
func (a *ActiveDesign) OffHand() appearance.Weapon {
	return a.data.OffHand
}

// UpdateOffhand implements Design. The dye is kept.
func (a *ActiveDesign) UpdateOffhand(w appearance.Weapon) error {
	return a.updateWeapon(appearance.SlotOffHand, w, writeNormal)
}

// Stain implements Design
func (a *ActiveDesign) Stain(slot appearance.EquipSlot) appearance.StainID {
	return a.data.Stain(slot)
}

// SetStain implements Design
func (a *ActiveDesign) SetStain(slot appearance.EquipSlot, stain appearance.StainID) error {
	return a.setStain(slot, stain, writeNormal)
}

// Toggle implements Design
func (a *ActiveDesign) Toggle(t appearance.ToggleFlag) bool {
	return a.toggles.Has(t)
}

// SetToggle implements Design. Toggles have no lock.
func (a *ActiveDesign) SetToggle(t appearance.ToggleFlag, v bool) error {
	if t == 0 || t&^appearance.ToggleFlagAll != 0 {
		return errors.InvalidArgumentf("unknown toggle %d", uint8(t))
	}
	a.toggles = a.toggles.Set(t, v)
	return nil
}

// ApplyMask implements Design. A live actor carries every field.
func (a *ActiveDesign) ApplyMask() appearance.FieldSet {
	return appearance.FieldSetAll
}

// Forced returns a view whose setters ignore Fixed locks. It is meant for
// edits the user makes directly. The gear guard still applies.
func (a *ActiveDesign) Forced() Design {
	return forced{a}
}

// SetFixedCustomize locks or unlocks a customization field
func (a *ActiveDesign) SetFixedCustomize(i appearance.CustomizeIndex, fixed bool) {
	a.fixedCustomize = a.fixedCustomize.Set(i, fixed)
}

// SetFixedEquip locks or unlocks a slot, weapons included
func (a *ActiveDesign) SetFixedEquip(slot appearance.EquipSlot, fixed bool) {
	a.fixedEquip = a.fixedEquip.Set(slot, fixed)
}

// IsFixedCustomize reports whether a customization field is locked
func (a *ActiveDesign) IsFixedCustomize(i appearance.CustomizeIndex) bool {
	return a.fixedCustomize.Has(i)
}

// IsChangedCustomize reports whether the engine last set a customization field
func (a *ActiveDesign) IsChangedCustomize(i appearance.CustomizeIndex) bool {
	return a.changedCustomize.Has(i)
}

// IsFixedEquip reports whether a slot is locked
func (a *ActiveDesign) IsFixedEquip(slot appearance.EquipSlot) bool {
	return a.fixedEquip.Has(slot)
}

// IsChangedEquip reports whether the engine last set a slot
func (a *ActiveDesign) IsChangedEquip(slot appearance.EquipSlot) bool {
	return a.changedEquip.Has(slot)
}

// Changed returns every Changed flag
func (a *ActiveDesign) Changed() appearance.FieldSet {
	return appearance.FieldSet{Customize: a.changedCustomize, Equip: a.changedEquip}
}

// Fixed returns every Fixed flag
func (a *ActiveDesign) Fixed() appearance.FieldSet {
	return appearance.FieldSet{Customize: a.fixedCustomize, Equip: a.fixedEquip}
}

// ReleaseCustomize gives a field back to the host: the baseline value is
// restored and the Changed flag cleared. Fixed fields return a lock conflict.
func (a *ActiveDesign) ReleaseCustomize(i appearance.CustomizeIndex) error {
	if !i.Valid() {
		return errors.InvalidArgumentf("unknown customization field %d", uint8(i))
	}
	if a.fixedCustomize.Has(i) {
		return errors.LockConflict(i.String())
	}
	a.data.Customize.Set(i, a.baseline.Customize.Get(i))
	a.changedCustomize = a.changedCustomize.Without(i)
	return nil
}

// ReleaseEquip gives a slot back to the host, dye included
func (a *ActiveDesign) ReleaseEquip(slot appearance.EquipSlot) error {
	if !slot.Valid() {
		return errors.InvalidArgumentf("unknown slot %d", uint8(slot))
	}
	if a.fixedEquip.Has(slot) {
		return errors.LockConflict(slot.String())
	}
	if slot.IsWeapon() {
		a.data.SetWeapon(slot, a.baseline.Weapon(slot))
	} else {
		a.data.SetArmor(slot, a.baseline.Armor(slot))
	}
	a.changedEquip = a.changedEquip.Without(slot)
	return nil
}

// Checkpoint holds the editable state of an ActiveDesign. Locks and the
// baseline are not part of it since edits never touch them.
type Checkpoint struct {
	data             appearance.CharacterData
	changedCustomize appearance.CustomizeFlag
	changedEquip     appearance.EquipFlag
	toggles          appearance.ToggleFlag
}

// Checkpoint captures the current values and Changed flags
func (a *ActiveDesign) Checkpoint() Checkpoint {
	return Checkpoint{
		data:             a.data,
		changedCustomize: a.changedCustomize,
		changedEquip:     a.changedEquip,
		toggles:          a.toggles,
	}
}

// Rollback restores the state captured by Checkpoint
func (a *ActiveDesign) Rollback(cp Checkpoint) {
	a.data = cp.data
	a.changedCustomize = cp.changedCustomize
	a.changedEquip = cp.changedEquip
	a.toggles = cp.toggles
}

// NeedsRedraw reports whether bringing the actor from its baseline to the
// intended state needs a full redraw, and why
func (a *ActiveDesign) NeedsRedraw() (bool, string) {
	return NeedsRedraw(&a.baseline, &a.data)
}

// NeedsEquipRedraw reports whether the intended equipment differs from what
// the host shows, and which slots
func (a *ActiveDesign) NeedsEquipRedraw() (bool, string) {
	return NeedsEquipRedraw(&a.baseline, &a.data)
}

// ExportState returns the full state with every mask set
func (a *ActiveDesign) ExportState() codec.State {
	return codec.State{
		Data:    a.data,
		Mask:    appearance.FieldSetAll,
		Toggles: a.toggles,
		Alpha:   codec.DefaultAlpha,
	}
}

// Export encodes the full state as a snapshot string
func (a *ActiveDesign) Export() string {
	return codec.Encode(a.ExportState())
}

func (a *ActiveDesign) setCustomize(i appearance.CustomizeIndex, v byte, mode writeMode) error {
	if !i.Valid() {
		return errors.InvalidArgumentf("unknown customization field %d", uint8(i))
	}
	if mode == writeNormal && a.fixedCustomize.Has(i) {
		return errors.LockConflict(i.String())
	}
	a.data.Customize.Set(i, v)
	a.changedCustomize = a.changedCustomize.With(i)
	return nil
}

func (a *ActiveDesign) updateArmor(slot appearance.EquipSlot, armor appearance.Armor, mode writeMode) error {
	if !slot.IsArmor() {
		return errors.InvalidArgumentf("%s is not an armor slot", slot)
	}
	if mode == writeNormal && a.fixedEquip.Has(slot) {
		return errors.LockConflict(slot.String())
	}
	next := a.data.Armor(slot)
	next.Set = armor.Set
	next.Variant = armor.Variant
	if mode != writeAbsorb && a.guard != nil {
		if !a.guard.Allowed(slot, next, a.data.Customize.Race(), a.data.Customize.Gender()) {
			return errors.RestrictedGear(slot.String(), next.String()).
				WithMeta("actor", a.identifier.String())
		}
	}
	a.data.SetArmor(slot, next)
	a.changedEquip = a.changedEquip.With(slot)
	return nil
}

func (a *ActiveDesign) updateWeapon(slot appearance.EquipSlot, w appearance.Weapon, mode writeMode) error {
	if !slot.IsWeapon() {
		return errors.InvalidArgumentf("%s is not a weapon slot", slot)
	}
	if mode == writeNormal && a.fixedEquip.Has(slot) {
		return errors.LockConflict(slot.String())
	}
	w.Stain = a.data.Weapon(slot).Stain
	a.data.SetWeapon(slot, w)
	a.changedEquip = a.changedEquip.With(slot)
	return nil
}

func (a *ActiveDesign) setStain(slot appearance.EquipSlot, stain appearance.StainID, mode writeMode) error {
	if !slot.Valid() {
		return errors.InvalidArgumentf("unknown slot %d", uint8(slot))
	}
	if mode == writeNormal && a.fixedEquip.Has(slot) {
		return errors.LockConflict(slot.String())
	}
	a.data.SetStain(slot, stain)
	a.changedEquip = a.changedEquip.With(slot)
	return nil
}

// forced is the lock-bypassing view returned by ActiveDesign.Forced
type forced struct {
	*ActiveDesign
}

func (f forced) SetCustomize(i appearance.CustomizeIndex, v byte) error {
	return f.setCustomize(i, v, writeForced)
}

func (f forced) UpdateArmor(slot appearance.EquipSlot, armor appearance.Armor) error {
	return f.updateArmor(slot, armor, writeForced)
}

func (f forced) UpdateMainhand(w appearance.Weapon) error {
	return f.updateWeapon(appearance.SlotMainHand, w, writeForced)
}

func (f forced) UpdateOffhand(w appearance.Weapon) error {
	return f.updateWeapon(appearance.SlotOffHand, w, writeForced)
}

func (f forced) SetStain(slot appearance.EquipSlot, stain appearance.StainID) error {
	return f.setStain(slot, stain, writeForced)
}
