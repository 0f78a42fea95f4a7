// Package design holds the appearance state engine: the Design capability
// shared by stored templates and live actors, the ActiveDesign reconciler
// that absorbs host drift, and Apply, which merges one design onto another
// while honoring locks.
package design

import (
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
)

// Design is the read/write surface shared by a StoredDesign and an
// ActiveDesign. Apply works only through this interface.
//
// UpdateArmor and the weapon updaters change the item and leave the dye
// alone; SetStain changes only the dye.
type Design interface {
	Customize(i appearance.CustomizeIndex) byte
	SetCustomize(i appearance.CustomizeIndex, v byte) error

	Armor(slot appearance.EquipSlot) appearance.Armor
	UpdateArmor(slot appearance.EquipSlot, armor appearance.Armor) error

	MainHand() appearance.Weapon
	UpdateMainhand(weapon appearance.Weapon) error
	OffHand() appearance.Weapon
	UpdateOffhand(weapon appearance.Weapon) error

	Stain(slot appearance.EquipSlot) appearance.StainID
	SetStain(slot appearance.EquipSlot, stain appearance.StainID) error

	Toggle(t appearance.ToggleFlag) bool
	SetToggle(t appearance.ToggleFlag, v bool) error

	// ApplyMask selects the fields this design carries when used as a source
	ApplyMask() appearance.FieldSet
}

// weapon reads a weapon slot through the interface
func weapon(d Design, slot appearance.EquipSlot) appearance.Weapon {
	if slot == appearance.SlotMainHand {
		return d.MainHand()
	}
	return d.OffHand()
}

// updateWeapon writes a weapon slot through the interface
func updateWeapon(d Design, slot appearance.EquipSlot, w appearance.Weapon) error {
	if slot == appearance.SlotMainHand {
		return d.UpdateMainhand(w)
	}
	return d.UpdateOffhand(w)
}
