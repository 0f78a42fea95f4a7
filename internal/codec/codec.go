// Package codec packs a full appearance state into the portable snapshot
// string used for import, export and stored designs.
//
// Layout of format version 1, little endian, 97 bytes:
//
//	off size
//	0    1   version
//	1    1   toggle values (low nibble), toggle apply bits (high nibble)
//	2    1   bit 0 write protected, other bits reserved
//	3    2   equip mask, 12 bits
//	5    4   customize mask, 26 bits
//	9    4   model id
//	13   26  customize bytes
//	39   7   main hand: set u16, type u16, variant u16, stain u8
//	46   7   off hand
//	53   40  armor slots in canonical order: set u16, variant u8, stain u8
//	93   4   alpha float32
//
// Fields outside the masks are written as zero and must decode as zero.
package codec

import (
	"encoding/base64"
	"encoding/binary"
	"math"

	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
)

const (
	// Version is the format version written by Marshal
	Version byte = 1

	// Size is the length of a version 1 blob in bytes
	Size = 97

	offToggles   = 1
	offMisc      = 2
	offEquipMask = 3
	offCustMask  = 5
	offModelID   = 9
	offCustomize = 13
	offMainHand  = 39
	offOffHand   = 46
	offArmor     = 53
	offAlpha     = 93

	armorSize = 4

	miscWriteProtected = 0x01
)

// DefaultAlpha is written when a State leaves Alpha unset
const DefaultAlpha float32 = 1

// State is everything carried by an encoded snapshot
type State struct {
	Data appearance.CharacterData
	// Mask selects the fields that are included. Customize and Equip mask the
	// data, Toggles marks which toggle values are meaningful.
	Mask           appearance.FieldSet
	Toggles        appearance.ToggleFlag
	WriteProtected bool
	Alpha          float32
}

// Normalized returns the state as it will look after a round trip: data and
// toggle values outside the mask are zeroed and a zero Alpha becomes DefaultAlpha.
func (s State) Normalized() State {
	s.Data = s.Data.Masked(s.Mask.Customize, s.Mask.Equip)
	s.Toggles &= s.Mask.Toggles
	if s.Alpha == 0 {
		s.Alpha = DefaultAlpha
	}
	return s
}

// Encode returns the base64 text form of the state
func Encode(s State) string {
	return base64.StdEncoding.EncodeToString(Marshal(s))
}

// Decode parses the base64 text form produced by Encode
func Decode(text string) (State, error) {
	if text == "" {
		return State{}, errors.DecodeFailed("empty snapshot")
	}
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return State{}, errors.DecodeFailed("snapshot is not valid base64: %v", err)
	}
	return Unmarshal(raw)
}

// Marshal packs the state into its binary form
func Marshal(s State) []byte {
	s = s.Normalized()
	buf := make([]byte, Size)
	le := binary.LittleEndian

	buf[0] = Version
	buf[offToggles] = byte(s.Toggles) | byte(s.Mask.Toggles)<<4
	if s.WriteProtected {
		buf[offMisc] |= miscWriteProtected
	}
	le.PutUint16(buf[offEquipMask:], uint16(s.Mask.Equip))
	le.PutUint32(buf[offCustMask:], uint32(s.Mask.Customize))
	le.PutUint32(buf[offModelID:], s.Data.ModelID)
	copy(buf[offCustomize:offCustomize+appearance.NumCustomize], s.Data.Customize[:])

	putWeapon(buf[offMainHand:], s.Data.MainHand)
	putWeapon(buf[offOffHand:], s.Data.OffHand)
	for i, armor := range s.Data.Equipment {
		putArmor(buf[offArmor+i*armorSize:], armor)
	}

	le.PutUint32(buf[offAlpha:], math.Float32bits(s.Alpha))
	return buf
}

// Unmarshal parses the binary form. Unknown versions, wrong sizes, reserved
// bits and data outside the masks are rejected; nothing is partially parsed.
func Unmarshal(raw []byte) (State, error) {
	if len(raw) == 0 {
		return State{}, errors.DecodeFailed("empty snapshot")
	}
	if raw[0] != Version {
		return State{}, errors.DecodeFailed("unsupported snapshot version %d", raw[0]).
			WithMeta("version", int(raw[0]))
	}
	if len(raw) != Size {
		return State{}, errors.DecodeFailed("snapshot has %d bytes, expected %d", len(raw), Size)
	}

	le := binary.LittleEndian
	var s State

	s.Toggles = appearance.ToggleFlag(raw[offToggles] & 0x0F)
	s.Mask.Toggles = appearance.ToggleFlag(raw[offToggles] >> 4)
	if s.Toggles&^s.Mask.Toggles != 0 {
		return State{}, errors.DecodeFailed("toggle values set without apply bits")
	}

	misc := raw[offMisc]
	if misc&^miscWriteProtected != 0 {
		return State{}, errors.DecodeFailed("reserved flag bits set: %#02x", misc)
	}
	s.WriteProtected = misc&miscWriteProtected != 0

	s.Mask.Equip = appearance.EquipFlag(le.Uint16(raw[offEquipMask:]))
	if s.Mask.Equip&^appearance.EquipFlagAll != 0 {
		return State{}, errors.DecodeFailed("equip mask has unknown slots: %#04x", uint16(s.Mask.Equip))
	}
	s.Mask.Customize = appearance.CustomizeFlag(le.Uint32(raw[offCustMask:]))
	if s.Mask.Customize&^appearance.CustomizeFlagAll != 0 {
		return State{}, errors.DecodeFailed("customize mask has unknown fields: %#08x", uint32(s.Mask.Customize))
	}

	s.Data.ModelID = le.Uint32(raw[offModelID:])
	copy(s.Data.Customize[:], raw[offCustomize:offCustomize+appearance.NumCustomize])
	s.Data.MainHand = readWeapon(raw[offMainHand:])
	s.Data.OffHand = readWeapon(raw[offOffHand:])
	for i := range s.Data.Equipment {
		s.Data.Equipment[i] = readArmor(raw[offArmor+i*armorSize:])
	}
	s.Alpha = math.Float32frombits(le.Uint32(raw[offAlpha:]))

	if s.Data != s.Data.Masked(s.Mask.Customize, s.Mask.Equip) {
		return State{}, errors.DecodeFailed("snapshot carries data outside its masks")
	}

	return s, nil
}

func putWeapon(b []byte, w appearance.Weapon) {
	le := binary.LittleEndian
	le.PutUint16(b[0:], w.Set)
	le.PutUint16(b[2:], w.Type)
	le.PutUint16(b[4:], w.Variant)
	b[6] = byte(w.Stain)
}

func readWeapon(b []byte) appearance.Weapon {
	le := binary.LittleEndian
	return appearance.Weapon{
		Set:     le.Uint16(b[0:]),
		Type:    le.Uint16(b[2:]),
		Variant: le.Uint16(b[4:]),
		Stain:   appearance.StainID(b[6]),
	}
}

func putArmor(b []byte, a appearance.Armor) {
	binary.LittleEndian.PutUint16(b[0:], a.Set)
	b[2] = a.Variant
	b[3] = byte(a.Stain)
}

func readArmor(b []byte) appearance.Armor {
	return appearance.Armor{
		Set:     binary.LittleEndian.Uint16(b[0:]),
		Variant: b[2],
		Stain:   appearance.StainID(b[3]),
	}
}
