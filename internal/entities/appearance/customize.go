// Package appearance holds the value types that describe how an actor looks:
// customization bytes, equipped armor and weapons, and the bitset flags used to
// track which of those fields were changed or locked.
package appearance

import (
	"fmt"
	"strings"
)

// CustomizeIndex identifies one byte of an actor's customization data.
type CustomizeIndex uint8

// Customization fields in wire order
const (
	CustomizeRace CustomizeIndex = iota
	CustomizeGender
	CustomizeBodyType
	CustomizeHeight
	CustomizeClan
	CustomizeFace
	CustomizeHairstyle
	CustomizeHighlights
	CustomizeSkinColor
	CustomizeEyeColorRight
	CustomizeHairColor
	CustomizeHighlightsColor
	CustomizeFacialFeatures
	CustomizeTattooColor
	CustomizeEyebrows
	CustomizeEyeColorLeft
	CustomizeNose
	CustomizeJaw
	CustomizeMouth
	CustomizeLipColor
	CustomizeMuscleMass
	CustomizeTailShape
	CustomizeBustSize
	CustomizeFacePaint
	CustomizeFacePaintColor
	CustomizeSmallIris

	// NumCustomize is the number of customization fields
	NumCustomize = int(CustomizeSmallIris) + 1
)

var customizeNames = [NumCustomize]string{
	"race",
	"gender",
	"body_type",
	"height",
	"clan",
	"face",
	"hairstyle",
	"highlights",
	"skin_color",
	"eye_color_right",
	"hair_color",
	"highlights_color",
	"facial_features",
	"tattoo_color",
	"eyebrows",
	"eye_color_left",
	"nose",
	"jaw",
	"mouth",
	"lip_color",
	"muscle_mass",
	"tail_shape",
	"bust_size",
	"face_paint",
	"face_paint_color",
	"small_iris",
}

// Valid reports whether the index names a known customization field
func (i CustomizeIndex) Valid() bool {
	return int(i) < NumCustomize
}

// String returns the snake_case name used in design files and APIs
func (i CustomizeIndex) String() string {
	if !i.Valid() {
		return fmt.Sprintf("customize(%d)", uint8(i))
	}
	return customizeNames[i]
}

// ParseCustomizeIndex resolves a field name as returned by String
func ParseCustomizeIndex(name string) (CustomizeIndex, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range customizeNames {
		if n == name {
			return CustomizeIndex(i), nil
		}
	}
	return 0, fmt.Errorf("unknown customization field %q", name)
}

// AllCustomizeIndices returns every customization field in wire order
func AllCustomizeIndices() []CustomizeIndex {
	out := make([]CustomizeIndex, NumCustomize)
	for i := range out {
		out[i] = CustomizeIndex(i)
	}
	return out
}

// Race is the value stored in the CustomizeRace byte
type Race uint8

// Playable races
const (
	RaceUnknown Race = iota
	RaceHyur
	RaceElezen
	RaceLalafell
	RaceMiqote
	RaceRoegadyn
	RaceAuRa
	RaceHrothgar
	RaceViera
)

var raceNames = map[Race]string{
	RaceUnknown:  "unknown",
	RaceHyur:     "hyur",
	RaceElezen:   "elezen",
	RaceLalafell: "lalafell",
	RaceMiqote:   "miqote",
	RaceRoegadyn: "roegadyn",
	RaceAuRa:     "au_ra",
	RaceHrothgar: "hrothgar",
	RaceViera:    "viera",
}

func (r Race) String() string {
	if n, ok := raceNames[r]; ok {
		return n
	}
	return fmt.Sprintf("race(%d)", uint8(r))
}

// ParseRace resolves a race name as returned by String
func ParseRace(name string) (Race, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range raceNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown race %q", name)
}

// Gender is the value stored in the CustomizeGender byte
type Gender uint8

// Genders
const (
	GenderMale Gender = iota
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return fmt.Sprintf("gender(%d)", uint8(g))
	}
}

// ParseGender resolves "male" or "female"
func ParseGender(name string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	default:
		return 0, fmt.Errorf("unknown gender %q", name)
	}
}

// Customize is the fixed-width customization block of an actor
type Customize [NumCustomize]byte

// Get returns the value of a single field. Unknown fields read as zero.
func (c Customize) Get(i CustomizeIndex) byte {
	if !i.Valid() {
		return 0
	}
	return c[i]
}

// Set updates a single field. Writes to unknown fields are dropped.
func (c *Customize) Set(i CustomizeIndex, v byte) {
	if !i.Valid() {
		return
	}
	c[i] = v
}

// Race returns the race byte as a typed value
func (c Customize) Race() Race {
	return Race(c[CustomizeRace])
}

// Gender returns the gender byte as a typed value
func (c Customize) Gender() Gender {
	return Gender(c[CustomizeGender])
}

// Diff returns the set of fields that differ between c and other
func (c Customize) Diff(other Customize) CustomizeFlag {
	var f CustomizeFlag
	for i := range c {
		if c[i] != other[i] {
			f = f.With(CustomizeIndex(i))
		}
	}
	return f
}

// Masked returns a copy with every field outside mask zeroed
func (c Customize) Masked(mask CustomizeFlag) Customize {
	var out Customize
	for i := range c {
		if mask.Has(CustomizeIndex(i)) {
			out[i] = c[i]
		}
	}
	return out
}
