package appearance

// CharacterData is the full observable appearance of one actor
type CharacterData struct {
	ModelID   uint32               `json:"model_id"`
	Customize Customize            `json:"customize"`
	Equipment [NumArmorSlots]Armor `json:"equipment"`
	MainHand  Weapon               `json:"main_hand"`
	OffHand   Weapon               `json:"off_hand"`
}

// Armor returns the piece in an armor slot. Weapon slots return the zero value.
func (d *CharacterData) Armor(slot EquipSlot) Armor {
	if !slot.IsArmor() {
		return Armor{}
	}
	return d.Equipment[slot]
}

// SetArmor replaces the piece in an armor slot. Weapon slots are ignored.
func (d *CharacterData) SetArmor(slot EquipSlot, armor Armor) {
	if slot.IsArmor() {
		d.Equipment[slot] = armor
	}
}

// Weapon returns the weapon in the main hand or off hand
func (d *CharacterData) Weapon(slot EquipSlot) Weapon {
	switch slot {
	case SlotMainHand:
		return d.MainHand
	case SlotOffHand:
		return d.OffHand
	default:
		return Weapon{}
	}
}

// SetWeapon replaces the weapon in the main hand or off hand
func (d *CharacterData) SetWeapon(slot EquipSlot, weapon Weapon) {
	switch slot {
	case SlotMainHand:
		d.MainHand = weapon
	case SlotOffHand:
		d.OffHand = weapon
	}
}

// Stain returns the dye of any slot
func (d *CharacterData) Stain(slot EquipSlot) StainID {
	if slot.IsWeapon() {
		return d.Weapon(slot).Stain
	}
	return d.Armor(slot).Stain
}

// SetStain changes the dye of any slot without touching the item
func (d *CharacterData) SetStain(slot EquipSlot, stain StainID) {
	switch {
	case slot.IsArmor():
		d.Equipment[slot].Stain = stain
	case slot == SlotMainHand:
		d.MainHand.Stain = stain
	case slot == SlotOffHand:
		d.OffHand.Stain = stain
	}
}

// EquipDiff returns the slots whose item or dye differ between d and other
func (d *CharacterData) EquipDiff(other *CharacterData) EquipFlag {
	var f EquipFlag
	for i := 0; i < NumArmorSlots; i++ {
		if d.Equipment[i] != other.Equipment[i] {
			f = f.With(EquipSlot(i))
		}
	}
	if d.MainHand != other.MainHand {
		f = f.With(SlotMainHand)
	}
	if d.OffHand != other.OffHand {
		f = f.With(SlotOffHand)
	}
	return f
}

// Masked returns a copy of d keeping only the fields selected by the masks.
// ModelID is always kept.
func (d CharacterData) Masked(customize CustomizeFlag, equip EquipFlag) CharacterData {
	out := CharacterData{
		ModelID:   d.ModelID,
		Customize: d.Customize.Masked(customize),
	}
	for i := 0; i < NumArmorSlots; i++ {
		if equip.Has(EquipSlot(i)) {
			out.Equipment[i] = d.Equipment[i]
		}
	}
	if equip.Has(SlotMainHand) {
		out.MainHand = d.MainHand
	}
	if equip.Has(SlotOffHand) {
		out.OffHand = d.OffHand
	}
	return out
}
