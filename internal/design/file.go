package design

import (
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
)

// designFile is the YAML form of a StoredDesign. Only listed fields end up
// in the apply mask. A code, when present, is decoded first and the listed
// fields are layered on top.
//
//	name: Summer
//	customize:
//	  hairstyle: 12
//	equipment:
//	  head: {set: 6012, variant: 1, stain: 3}
//	  main_hand: {set: 2001, type: 12, variant: 3}
//	toggles:
//	  hat_visible: false
type designFile struct {
	Name           string              `yaml:"name"`
	Description    string              `yaml:"description,omitempty"`
	WriteProtected bool                `yaml:"write_protected,omitempty"`
	Code           string              `yaml:"code,omitempty"`
	ModelID        uint32              `yaml:"model_id,omitempty"`
	Customize      map[string]uint8    `yaml:"customize,omitempty"`
	Equipment      map[string]fileItem `yaml:"equipment,omitempty"`
	Toggles        map[string]bool     `yaml:"toggles,omitempty"`
}

type fileItem struct {
	Set     uint16 `yaml:"set"`
	Type    uint16 `yaml:"type,omitempty"`
	Variant uint16 `yaml:"variant"`
	Stain   uint8  `yaml:"stain,omitempty"`
}

// ParseFile reads a design from YAML
func ParseFile(r io.Reader) (*StoredDesign, error) {
	var file designFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("design file is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse design file")
	}

	d := &StoredDesign{}
	if file.Code != "" {
		decoded, err := FromCode(file.Code)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode design code")
		}
		d = decoded
	}
	protected := d.WriteProtected || file.WriteProtected
	d.WriteProtected = false
	d.Name = file.Name
	d.Description = file.Description
	if file.ModelID != 0 {
		d.Data.ModelID = file.ModelID
	}

	for name, v := range file.Customize {
		idx, err := appearance.ParseCustomizeIndex(name)
		if err != nil {
			return nil, errors.InvalidArgumentf("customize: %v", err)
		}
		_ = d.SetCustomize(idx, v)
	}

	for name, item := range file.Equipment {
		slot, err := appearance.ParseEquipSlot(name)
		if err != nil {
			return nil, errors.InvalidArgumentf("equipment: %v", err)
		}
		if slot.IsWeapon() {
			d.Data.SetWeapon(slot, appearance.Weapon{
				Set:     item.Set,
				Type:    item.Type,
				Variant: item.Variant,
				Stain:   appearance.StainID(item.Stain),
			})
		} else {
			if item.Variant > math.MaxUint8 {
				return nil, errors.InvalidArgumentf("equipment: %s variant %d out of range", slot, item.Variant)
			}
			d.Data.SetArmor(slot, appearance.Armor{
				Set:     item.Set,
				Variant: uint8(item.Variant),
				Stain:   appearance.StainID(item.Stain),
			})
		}
		d.Mask.Equip = d.Mask.Equip.With(slot)
	}

	for name, v := range file.Toggles {
		t, ok := appearance.ParseToggle(name)
		if !ok {
			return nil, errors.InvalidArgumentf("toggles: unknown toggle %q", name)
		}
		_ = d.SetToggle(t, v)
	}

	d.WriteProtected = protected
	return d, nil
}

// LoadFile reads a design from a YAML file on disk
func LoadFile(path string) (*StoredDesign, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open design file %s", path)
	}
	defer func() { _ = f.Close() }()

	return ParseFile(f)
}

// MarshalFile renders the design in the YAML form read by ParseFile.
// Only masked fields are written.
func (d *StoredDesign) MarshalFile() ([]byte, error) {
	file := designFile{
		Name:           d.Name,
		Description:    d.Description,
		WriteProtected: d.WriteProtected,
		ModelID:        d.Data.ModelID,
	}

	for _, idx := range d.Mask.Customize.Indices() {
		if file.Customize == nil {
			file.Customize = make(map[string]uint8)
		}
		file.Customize[idx.String()] = d.Data.Customize.Get(idx)
	}

	for _, slot := range d.Mask.Equip.Slots() {
		if file.Equipment == nil {
			file.Equipment = make(map[string]fileItem)
		}
		if slot.IsWeapon() {
			w := d.Data.Weapon(slot)
			file.Equipment[slot.String()] = fileItem{Set: w.Set, Type: w.Type, Variant: w.Variant, Stain: uint8(w.Stain)}
			continue
		}
		a := d.Data.Armor(slot)
		file.Equipment[slot.String()] = fileItem{Set: a.Set, Variant: uint16(a.Variant), Stain: uint8(a.Stain)}
	}

	for _, t := range d.Mask.Toggles.Toggles() {
		if file.Toggles == nil {
			file.Toggles = make(map[string]bool)
		}
		file.Toggles[t.String()] = d.Toggles.Has(t)
	}

	out, err := yaml.Marshal(&file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render design file")
	}
	return out, nil
}
