package design

import (
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
)

// identityFields imply a different body. With SkipInvalidCustomizations a
// source that disagrees with the target on any of them has its whole
// customization group skipped.
var identityFields = []appearance.CustomizeIndex{
	appearance.CustomizeRace,
	appearance.CustomizeClan,
	appearance.CustomizeGender,
	appearance.CustomizeFace,
}

// ApplyOptions tunes a single Apply pass
type ApplyOptions struct {
	SkipInvalidCustomizations bool
}

// ApplyResult reports what an Apply pass did
type ApplyResult struct {
	// Changed lists fields whose value on the target actually changed
	Changed appearance.FieldSet
	// Locked lists fields skipped because they are fixed on the target
	Locked appearance.FieldSet
	// Rejected lists slots the gear guard refused
	Rejected appearance.EquipFlag
	// SkippedCustomize is set when the customization group was skipped
	SkippedCustomize bool
}

// Apply copies every field selected by source.ApplyMask onto target using
// the normal mutators: customization in field order, then slots in
// canonical order, then toggles. Lock conflicts and gear rejections skip
// the field and are recorded in the result. Any other error stops the
// pass and is returned with what was applied so far.
func Apply(target, source Design, opts ApplyOptions) (ApplyResult, error) {
	var result ApplyResult
	mask := source.ApplyMask()

	if mask.Customize != 0 && opts.SkipInvalidCustomizations && conflictsIdentity(target, source, mask.Customize) {
		result.SkippedCustomize = true
	} else {
		for _, idx := range mask.Customize.Indices() {
			before := target.Customize(idx)
			if err := target.SetCustomize(idx, source.Customize(idx)); err != nil {
				if errors.IsLockConflict(err) {
					result.Locked.Customize = result.Locked.Customize.With(idx)
					continue
				}
				return result, errors.Wrapf(err, "failed to apply %s", idx)
			}
			if target.Customize(idx) != before {
				result.Changed.Customize = result.Changed.Customize.With(idx)
			}
		}
	}

	for _, slot := range mask.Equip.Slots() {
		changed, err := applySlot(target, source, slot)
		switch {
		case errors.IsLockConflict(err):
			result.Locked.Equip = result.Locked.Equip.With(slot)
			continue
		case errors.IsRestrictedGear(err):
			result.Rejected = result.Rejected.With(slot)
			continue
		case err != nil:
			return result, errors.Wrapf(err, "failed to apply %s", slot)
		}
		if changed {
			result.Changed.Equip = result.Changed.Equip.With(slot)
		}
	}

	for _, t := range mask.Toggles.Toggles() {
		before := target.Toggle(t)
		if err := target.SetToggle(t, source.Toggle(t)); err != nil {
			return result, errors.Wrapf(err, "failed to apply %s", t)
		}
		if target.Toggle(t) != before {
			result.Changed.Toggles |= t
		}
	}

	return result, nil
}

func applySlot(target, source Design, slot appearance.EquipSlot) (bool, error) {
	if slot.IsWeapon() {
		before := weapon(target, slot)
		if err := updateWeapon(target, slot, weapon(source, slot)); err != nil {
			return false, err
		}
		if err := target.SetStain(slot, source.Stain(slot)); err != nil {
			return weapon(target, slot) != before, err
		}
		return weapon(target, slot) != before, nil
	}

	before := target.Armor(slot)
	if err := target.UpdateArmor(slot, source.Armor(slot)); err != nil {
		return false, err
	}
	if err := target.SetStain(slot, source.Stain(slot)); err != nil {
		return target.Armor(slot) != before, err
	}
	return target.Armor(slot) != before, nil
}

// conflictsIdentity reports whether source applies an identity field whose
// value differs from the target's current one
func conflictsIdentity(target, source Design, mask appearance.CustomizeFlag) bool {
	for _, idx := range identityFields {
		if mask.Has(idx) && source.Customize(idx) != target.Customize(idx) {
			return true
		}
	}
	return false
}
