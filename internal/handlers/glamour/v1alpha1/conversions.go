package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/orchestrators/glamour"
	"github.com/KirkDiggler/glamour-api/internal/repositories/bindings"
)

func parseActor(s string) (appearance.ActorIdentifier, error) {
	if s == "" {
		return appearance.ActorIdentifier{}, errors.InvalidArgument("actor is required")
	}
	id, err := appearance.ParseActorIdentifier(s)
	if err != nil {
		return appearance.ActorIdentifier{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid actor")
	}
	return id, nil
}

func parseSlot(name string) (appearance.EquipSlot, error) {
	slot, err := appearance.ParseEquipSlot(name)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid slot")
	}
	return slot, nil
}

func parseCustomize(name string) (appearance.CustomizeIndex, error) {
	idx, err := appearance.ParseCustomizeIndex(name)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid customization field")
	}
	return idx, nil
}

func parseToggle(name string) (appearance.ToggleFlag, error) {
	t, ok := appearance.ParseToggle(name)
	if !ok {
		return 0, errors.InvalidArgumentf("unknown toggle %q", name)
	}
	return t, nil
}

func parseFields(customize, equip []string) ([]appearance.CustomizeIndex, []appearance.EquipSlot, error) {
	indices := make([]appearance.CustomizeIndex, 0, len(customize))
	for _, name := range customize {
		idx, err := parseCustomize(name)
		if err != nil {
			return nil, nil, err
		}
		indices = append(indices, idx)
	}
	slots := make([]appearance.EquipSlot, 0, len(equip))
	for _, name := range equip {
		slot, err := parseSlot(name)
		if err != nil {
			return nil, nil, err
		}
		slots = append(slots, slot)
	}
	return indices, slots, nil
}

func armorToMessage(a appearance.Armor) ArmorMessage {
	return ArmorMessage{Set: a.Set, Variant: a.Variant, Stain: uint8(a.Stain)}
}

func armorFromMessage(m ArmorMessage) appearance.Armor {
	return appearance.Armor{Set: m.Set, Variant: m.Variant, Stain: appearance.StainID(m.Stain)}
}

func weaponToMessage(w appearance.Weapon) WeaponMessage {
	return WeaponMessage{Set: w.Set, Type: w.Type, Variant: w.Variant, Stain: uint8(w.Stain)}
}

func weaponFromMessage(m WeaponMessage) appearance.Weapon {
	return appearance.Weapon{Set: m.Set, Type: m.Type, Variant: m.Variant, Stain: appearance.StainID(m.Stain)}
}

// CharacterToMessage converts appearance data to its wire form. Zero
// customization values and empty armor slots are omitted.
func CharacterToMessage(d appearance.CharacterData) CharacterMessage {
	msg := CharacterMessage{
		ModelID:   d.ModelID,
		Customize: make(map[string]uint8),
		Equipment: make(map[string]ArmorMessage),
		MainHand:  weaponToMessage(d.MainHand),
		OffHand:   weaponToMessage(d.OffHand),
	}
	for _, idx := range appearance.AllCustomizeIndices() {
		if v := d.Customize.Get(idx); v != 0 {
			msg.Customize[idx.String()] = v
		}
	}
	for _, slot := range appearance.ArmorSlots() {
		if a := d.Armor(slot); a != (appearance.Armor{}) {
			msg.Equipment[slot.String()] = armorToMessage(a)
		}
	}
	return msg
}

// CharacterFromMessage converts the wire form back to appearance data
func CharacterFromMessage(msg CharacterMessage) (appearance.CharacterData, error) {
	d := appearance.CharacterData{
		ModelID:  msg.ModelID,
		MainHand: weaponFromMessage(msg.MainHand),
		OffHand:  weaponFromMessage(msg.OffHand),
	}
	for name, v := range msg.Customize {
		idx, err := parseCustomize(name)
		if err != nil {
			return appearance.CharacterData{}, err
		}
		d.Customize.Set(idx, v)
	}
	for name, a := range msg.Equipment {
		slot, err := parseSlot(name)
		if err != nil {
			return appearance.CharacterData{}, err
		}
		if !slot.IsArmor() {
			return appearance.CharacterData{}, errors.InvalidArgumentf("%s is not an armor slot", slot)
		}
		d.SetArmor(slot, armorFromMessage(a))
	}
	return d, nil
}

func togglesToNames(t appearance.ToggleFlag) []string {
	var names []string
	for _, flag := range t.Toggles() {
		names = append(names, flag.String())
	}
	return names
}

func equipToNames(f appearance.EquipFlag) []string {
	var names []string
	for _, slot := range f.Slots() {
		names = append(names, slot.String())
	}
	return names
}

func fieldSetToMessage(s appearance.FieldSet) FieldSetMessage {
	msg := FieldSetMessage{
		Equip:   equipToNames(s.Equip),
		Toggles: togglesToNames(s.Toggles),
	}
	for _, idx := range s.Customize.Indices() {
		msg.Customize = append(msg.Customize, idx.String())
	}
	return msg
}

func stateToMessage(st *glamour.ActorState) ActorStateMessage {
	if st == nil {
		return ActorStateMessage{}
	}
	return ActorStateMessage{
		Actor:        st.Actor.String(),
		Data:         CharacterToMessage(st.Data),
		Baseline:     CharacterToMessage(st.Baseline),
		Toggles:      togglesToNames(st.Toggles),
		Changed:      fieldSetToMessage(st.Changed),
		Fixed:        fieldSetToMessage(st.Fixed),
		Code:         st.Code,
		NeedsRedraw:  st.NeedsRedraw,
		RedrawReason: st.RedrawReason,
	}
}

func driftToMessage(r design.DriftReport) DriftMessage {
	return DriftMessage{
		Absorbed:     fieldSetToMessage(r.Absorbed),
		Locked:       fieldSetToMessage(r.Locked),
		ModelChanged: r.ModelChanged,
		VisorChanged: r.VisorChanged,
	}
}

func applyResultToMessage(r design.ApplyResult) ApplyResultMessage {
	return ApplyResultMessage{
		Changed:          fieldSetToMessage(r.Changed),
		Locked:           fieldSetToMessage(r.Locked),
		Rejected:         equipToNames(r.Rejected),
		SkippedCustomize: r.SkippedCustomize,
	}
}

// DesignToMessage converts a stored design to its wire form
func DesignToMessage(d *design.StoredDesign) DesignMessage {
	protected := d.WriteProtected
	msg := DesignMessage{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		Code:           d.Code(),
		WriteProtected: &protected,
	}
	if !d.CreatedAt.IsZero() {
		msg.CreatedAt = d.CreatedAt.Unix()
	}
	if !d.UpdatedAt.IsZero() {
		msg.UpdatedAt = d.UpdatedAt.Unix()
	}
	return msg
}

func bindingToMessage(b *bindings.Binding) BindingMessage {
	msg := BindingMessage{Actor: b.Actor.String(), DesignID: b.DesignID}
	if !b.BoundAt.IsZero() {
		msg.BoundAt = b.BoundAt.Unix()
	}
	return msg
}

// DesignFromMessage converts the wire form to a stored design. An empty
// code yields a design that applies nothing. Without an explicit
// WriteProtected the protection decoded from the code is kept.
func DesignFromMessage(msg DesignMessage) (*design.StoredDesign, error) {
	d := &design.StoredDesign{}
	if msg.Code != "" {
		decoded, err := design.FromCode(msg.Code)
		if err != nil {
			return nil, err
		}
		d = decoded
	}
	d.ID = msg.ID
	d.Name = msg.Name
	d.Description = msg.Description
	if msg.WriteProtected != nil {
		d.WriteProtected = *msg.WriteProtected
	}
	if msg.CreatedAt != 0 {
		d.CreatedAt = time.Unix(msg.CreatedAt, 0).UTC()
	}
	if msg.UpdatedAt != 0 {
		d.UpdatedAt = time.Unix(msg.UpdatedAt, 0).UTC()
	}
	return d, nil
}

func editFromRequest(req EditActorRequest) (glamour.ActorEdit, error) {
	var edit glamour.ActorEdit

	if len(req.Customize) > 0 {
		edit.Customize = make(map[appearance.CustomizeIndex]byte, len(req.Customize))
		for name, v := range req.Customize {
			idx, err := parseCustomize(name)
			if err != nil {
				return edit, err
			}
			edit.Customize[idx] = v
		}
	}
	if len(req.Armor) > 0 {
		edit.Armor = make(map[appearance.EquipSlot]appearance.Armor, len(req.Armor))
		for name, a := range req.Armor {
			slot, err := parseSlot(name)
			if err != nil {
				return edit, err
			}
			edit.Armor[slot] = armorFromMessage(a)
		}
	}
	if req.MainHand != nil {
		w := weaponFromMessage(*req.MainHand)
		edit.MainHand = &w
	}
	if req.OffHand != nil {
		w := weaponFromMessage(*req.OffHand)
		edit.OffHand = &w
	}
	if len(req.Stains) > 0 {
		edit.Stains = make(map[appearance.EquipSlot]appearance.StainID, len(req.Stains))
		for name, v := range req.Stains {
			slot, err := parseSlot(name)
			if err != nil {
				return edit, err
			}
			edit.Stains[slot] = appearance.StainID(v)
		}
	}
	if len(req.Toggles) > 0 {
		edit.Toggles = make(map[appearance.ToggleFlag]bool, len(req.Toggles))
		for name, v := range req.Toggles {
			t, err := parseToggle(name)
			if err != nil {
				return edit, err
			}
			edit.Toggles[t] = v
		}
	}

	return edit, nil
}
