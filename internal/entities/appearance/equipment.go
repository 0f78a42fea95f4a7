package appearance

import (
	"fmt"
	"strings"
)

// EquipSlot identifies an armor slot or one of the two weapon pseudo-slots
type EquipSlot uint8

// Equipment slots in canonical processing order. The ten armor slots come
// first and are the only ones stored in CharacterData.Equipment.
const (
	SlotHead EquipSlot = iota
	SlotBody
	SlotHands
	SlotLegs
	SlotFeet
	SlotEars
	SlotNeck
	SlotWrists
	SlotRightFinger
	SlotLeftFinger
	SlotMainHand
	SlotOffHand

	// NumArmorSlots is the number of armor slots
	NumArmorSlots = int(SlotLeftFinger) + 1
	// NumEquipSlots includes the main hand and off hand pseudo-slots
	NumEquipSlots = int(SlotOffHand) + 1
)

var slotNames = [NumEquipSlots]string{
	"head",
	"body",
	"hands",
	"legs",
	"feet",
	"ears",
	"neck",
	"wrists",
	"right_finger",
	"left_finger",
	"main_hand",
	"off_hand",
}

// Valid reports whether the slot is known
func (s EquipSlot) Valid() bool {
	return int(s) < NumEquipSlots
}

// IsArmor reports whether the slot holds armor rather than a weapon
func (s EquipSlot) IsArmor() bool {
	return int(s) < NumArmorSlots
}

// IsWeapon reports whether the slot is the main hand or off hand
func (s EquipSlot) IsWeapon() bool {
	return s == SlotMainHand || s == SlotOffHand
}

// String returns the snake_case name used in design files and APIs
func (s EquipSlot) String() string {
	if !s.Valid() {
		return fmt.Sprintf("slot(%d)", uint8(s))
	}
	return slotNames[s]
}

// ParseEquipSlot resolves a slot name as returned by String
func ParseEquipSlot(name string) (EquipSlot, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range slotNames {
		if n == name {
			return EquipSlot(i), nil
		}
	}
	return 0, fmt.Errorf("unknown equipment slot %q", name)
}

// ArmorSlots returns the ten armor slots in canonical order
func ArmorSlots() []EquipSlot {
	out := make([]EquipSlot, NumArmorSlots)
	for i := range out {
		out[i] = EquipSlot(i)
	}
	return out
}

// StainID identifies a dye
type StainID uint8

// Armor is an equipped armor piece and its dye
type Armor struct {
	Set     uint16  `json:"set"`
	Variant uint8   `json:"variant"`
	Stain   StainID `json:"stain"`
}

// SameItem reports whether a and other show the same model, ignoring dye
func (a Armor) SameItem(other Armor) bool {
	return a.Set == other.Set && a.Variant == other.Variant
}

// String returns a compact description for logs
func (a Armor) String() string {
	return fmt.Sprintf("%d-%d/%d", a.Set, a.Variant, a.Stain)
}

// Weapon is an equipped weapon and its dye
type Weapon struct {
	Set     uint16  `json:"set"`
	Type    uint16  `json:"type"`
	Variant uint16  `json:"variant"`
	Stain   StainID `json:"stain"`
}

// SameItem reports whether w and other show the same model, ignoring dye
func (w Weapon) SameItem(other Weapon) bool {
	return w.Set == other.Set && w.Type == other.Type && w.Variant == other.Variant
}

// String returns a compact description for logs
func (w Weapon) String() string {
	return fmt.Sprintf("%d-%d-%d/%d", w.Set, w.Type, w.Variant, w.Stain)
}
