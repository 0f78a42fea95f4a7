package design

import (
	"time"

	"github.com/KirkDiggler/glamour-api/internal/codec"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
)

// StoredDesign is a named target appearance. Only the fields selected by
// Mask are carried onto an actor when the design is applied.
type StoredDesign struct {
	ID          string
	Name        string
	Description string

	Data    appearance.CharacterData
	Mask    appearance.FieldSet
	Toggles appearance.ToggleFlag

	WriteProtected bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

var _ Design = (*StoredDesign)(nil)

// FromCode builds an unnamed design from a snapshot string
func FromCode(code string) (*StoredDesign, error) {
	state, err := codec.Decode(code)
	if err != nil {
		return nil, err
	}
	return FromState(state), nil
}

// FromState builds an unnamed design from a decoded snapshot
func FromState(state codec.State) *StoredDesign {
	state = state.Normalized()
	return &StoredDesign{
		Data:           state.Data,
		Mask:           state.Mask,
		Toggles:        state.Toggles,
		WriteProtected: state.WriteProtected,
	}
}

// State returns the design as a codec state
func (d *StoredDesign) State() codec.State {
	return codec.State{
		Data:           d.Data,
		Mask:           d.Mask,
		Toggles:        d.Toggles,
		WriteProtected: d.WriteProtected,
		Alpha:          codec.DefaultAlpha,
	}.Normalized()
}

// Code encodes the design as a snapshot string
func (d *StoredDesign) Code() string {
	return codec.Encode(d.State())
}

// Customize implements Design
func (d *StoredDesign) Customize(i appearance.CustomizeIndex) byte {
	return d.Data.Customize.Get(i)
}

// SetCustomize implements Design. The field is added to the mask.
func (d *StoredDesign) SetCustomize(i appearance.CustomizeIndex, v byte) error {
	if err := d.writable(); err != nil {
		return err
	}
	if !i.Valid() {
		return errors.InvalidArgumentf("unknown customization field %d", uint8(i))
	}
	d.Data.Customize.Set(i, v)
	d.Mask.Customize = d.Mask.Customize.With(i)
	return nil
}

// Armor implements Design
func (d *StoredDesign) Armor(slot appearance.EquipSlot) appearance.Armor {
	return d.Data.Armor(slot)
}

// UpdateArmor implements Design
func (d *StoredDesign) UpdateArmor(slot appearance.EquipSlot, armor appearance.Armor) error {
	if err := d.writable(); err != nil {
		return err
	}
	if !slot.IsArmor() {
		return errors.InvalidArgumentf("%s is not an armor slot", slot)
	}
	armor.Stain = d.Data.Armor(slot).Stain
	d.Data.SetArmor(slot, armor)
	d.Mask.Equip = d.Mask.Equip.With(slot)
	return nil
}

// MainHand implements Design
func (d *StoredDesign) MainHand() appearance.Weapon {
	return d.Data.MainHand
}

// UpdateMainhand implements Design
func (d *StoredDesign) UpdateMainhand(w appearance.Weapon) error {
	return d.updateWeapon(appearance.SlotMainHand, w)
}

// OffHand implements Design
func (d *StoredDesign) OffHand() appearance.Weapon {
	return d.Data.OffHand
}

// UpdateOffhand implements Design
func (d *StoredDesign) UpdateOffhand(w appearance.Weapon) error {
	return d.updateWeapon(appearance.SlotOffHand, w)
}

// Stain implements Design
func (d *StoredDesign) Stain(slot appearance.EquipSlot) appearance.StainID {
	return d.Data.Stain(slot)
}

// SetStain implements Design
func (d *StoredDesign) SetStain(slot appearance.EquipSlot, stain appearance.StainID) error {
	if err := d.writable(); err != nil {
		return err
	}
	if !slot.Valid() {
		return errors.InvalidArgumentf("unknown slot %d", uint8(slot))
	}
	d.Data.SetStain(slot, stain)
	d.Mask.Equip = d.Mask.Equip.With(slot)
	return nil
}

// Toggle implements Design
func (d *StoredDesign) Toggle(t appearance.ToggleFlag) bool {
	return d.Toggles.Has(t)
}

// SetToggle implements Design. The toggle is added to the mask.
func (d *StoredDesign) SetToggle(t appearance.ToggleFlag, v bool) error {
	if err := d.writable(); err != nil {
		return err
	}
	if t == 0 || t&^appearance.ToggleFlagAll != 0 {
		return errors.InvalidArgumentf("unknown toggle %d", uint8(t))
	}
	d.Toggles = d.Toggles.Set(t, v)
	d.Mask.Toggles |= t
	return nil
}

// ApplyMask implements Design
func (d *StoredDesign) ApplyMask() appearance.FieldSet {
	return d.Mask
}

func (d *StoredDesign) updateWeapon(slot appearance.EquipSlot, w appearance.Weapon) error {
	if err := d.writable(); err != nil {
		return err
	}
	w.Stain = d.Data.Weapon(slot).Stain
	d.Data.SetWeapon(slot, w)
	d.Mask.Equip = d.Mask.Equip.With(slot)
	return nil
}

func (d *StoredDesign) writable() error {
	if d.WriteProtected {
		return errors.WriteProtected(d.ID)
	}
	return nil
}
