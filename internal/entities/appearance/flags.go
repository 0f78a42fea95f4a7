package appearance

import (
	"math/bits"
	"strings"
)

// CustomizeFlag is a bit-vector over CustomizeIndex
type CustomizeFlag uint32

// CustomizeFlagAll has a bit set for every customization field
const CustomizeFlagAll CustomizeFlag = 1<<NumCustomize - 1

// Has reports whether the bit for i is set
func (f CustomizeFlag) Has(i CustomizeIndex) bool {
	return f&(1<<i) != 0
}

// With returns f with the bit for i set
func (f CustomizeFlag) With(i CustomizeIndex) CustomizeFlag {
	return f | 1<<i
}

// Without returns f with the bit for i cleared
func (f CustomizeFlag) Without(i CustomizeIndex) CustomizeFlag {
	return f &^ (1 << i)
}

// Set returns f with the bit for i set to v
func (f CustomizeFlag) Set(i CustomizeIndex, v bool) CustomizeFlag {
	if v {
		return f.With(i)
	}
	return f.Without(i)
}

// Count returns the number of set bits
func (f CustomizeFlag) Count() int {
	return bits.OnesCount32(uint32(f))
}

// Indices returns the set fields in wire order
func (f CustomizeFlag) Indices() []CustomizeIndex {
	var out []CustomizeIndex
	for i := 0; i < NumCustomize; i++ {
		if f.Has(CustomizeIndex(i)) {
			out = append(out, CustomizeIndex(i))
		}
	}
	return out
}

// String lists the set fields by name
func (f CustomizeFlag) String() string {
	idx := f.Indices()
	names := make([]string, len(idx))
	for i, c := range idx {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}

// EquipFlag is a bit-vector over EquipSlot, weapons included
type EquipFlag uint16

// EquipFlagAll has a bit set for every slot
const EquipFlagAll EquipFlag = 1<<NumEquipSlots - 1

// Has reports whether the bit for s is set
func (f EquipFlag) Has(s EquipSlot) bool {
	return f&(1<<s) != 0
}

// With returns f with the bit for s set
func (f EquipFlag) With(s EquipSlot) EquipFlag {
	return f | 1<<s
}

// Without returns f with the bit for s cleared
func (f EquipFlag) Without(s EquipSlot) EquipFlag {
	return f &^ (1 << s)
}

// Set returns f with the bit for s set to v
func (f EquipFlag) Set(s EquipSlot, v bool) EquipFlag {
	if v {
		return f.With(s)
	}
	return f.Without(s)
}

// Count returns the number of set bits
func (f EquipFlag) Count() int {
	return bits.OnesCount16(uint16(f))
}

// Slots returns the set slots in canonical order
func (f EquipFlag) Slots() []EquipSlot {
	var out []EquipSlot
	for i := 0; i < NumEquipSlots; i++ {
		if f.Has(EquipSlot(i)) {
			out = append(out, EquipSlot(i))
		}
	}
	return out
}

// String lists the set slots by name
func (f EquipFlag) String() string {
	slots := f.Slots()
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.String()
	}
	return strings.Join(names, ",")
}

// ToggleFlag is a bit-vector over the four visibility toggles
type ToggleFlag uint8

// Visibility toggles
const (
	ToggleWet ToggleFlag = 1 << iota
	ToggleHatVisible
	ToggleVisorToggled
	ToggleWeaponVisible

	// ToggleFlagAll has every toggle bit set
	ToggleFlagAll = ToggleWet | ToggleHatVisible | ToggleVisorToggled | ToggleWeaponVisible
)

var toggleNames = []struct {
	flag ToggleFlag
	name string
}{
	{ToggleWet, "wet"},
	{ToggleHatVisible, "hat_visible"},
	{ToggleVisorToggled, "visor_toggled"},
	{ToggleWeaponVisible, "weapon_visible"},
}

// Has reports whether every bit in t is set
func (f ToggleFlag) Has(t ToggleFlag) bool {
	return t != 0 && f&t == t
}

// Set returns f with the bits in t set to v
func (f ToggleFlag) Set(t ToggleFlag, v bool) ToggleFlag {
	if v {
		return f | t
	}
	return f &^ t
}

// Toggles returns the individual toggle bits set in f
func (f ToggleFlag) Toggles() []ToggleFlag {
	var out []ToggleFlag
	for _, t := range toggleNames {
		if f.Has(t.flag) {
			out = append(out, t.flag)
		}
	}
	return out
}

// String lists the set toggles by name
func (f ToggleFlag) String() string {
	var names []string
	for _, t := range toggleNames {
		if f.Has(t.flag) {
			names = append(names, t.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseToggle resolves a single toggle name
func ParseToggle(name string) (ToggleFlag, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range toggleNames {
		if t.name == name {
			return t.flag, true
		}
	}
	return 0, false
}

// FieldSet groups one flag of each kind. It is used for apply masks,
// apply results and drift reports.
type FieldSet struct {
	Customize CustomizeFlag `json:"customize"`
	Equip     EquipFlag     `json:"equip"`
	Toggles   ToggleFlag    `json:"toggles"`
}

// FieldSetAll selects every field
var FieldSetAll = FieldSet{
	Customize: CustomizeFlagAll,
	Equip:     EquipFlagAll,
	Toggles:   ToggleFlagAll,
}

// IsEmpty reports whether no field is selected
func (s FieldSet) IsEmpty() bool {
	return s.Customize == 0 && s.Equip == 0 && s.Toggles == 0
}

// Union returns the fields selected in either s or other
func (s FieldSet) Union(other FieldSet) FieldSet {
	return FieldSet{
		Customize: s.Customize | other.Customize,
		Equip:     s.Equip | other.Equip,
		Toggles:   s.Toggles | other.Toggles,
	}
}
