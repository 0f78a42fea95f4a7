package design

import (
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_gear_guard.go -package=designmock github.com/KirkDiggler/glamour-api/internal/design GearGuard

// GearGuard decides whether an armor piece may be worn by an actor of the
// given race and gender
type GearGuard interface {
	Allowed(slot appearance.EquipSlot, armor appearance.Armor, race appearance.Race, gender appearance.Gender) bool
}

// GearRule restricts one item to a set of races and genders. A Variant of
// zero matches every variant of the set. Empty Races or Genders allow any.
type GearRule struct {
	Slot    appearance.EquipSlot
	Set     uint16
	Variant uint8
	Races   []appearance.Race
	Genders []appearance.Gender
}

func (r GearRule) matches(slot appearance.EquipSlot, armor appearance.Armor) bool {
	return r.Slot == slot && r.Set == armor.Set && (r.Variant == 0 || r.Variant == armor.Variant)
}

func (r GearRule) allows(race appearance.Race, gender appearance.Gender) bool {
	if len(r.Races) > 0 && !slices.Contains(r.Races, race) {
		return false
	}
	if len(r.Genders) > 0 && !slices.Contains(r.Genders, gender) {
		return false
	}
	return true
}

// RestrictedGear is a GearGuard backed by a rule table. Items without a
// rule are always allowed.
type RestrictedGear struct {
	rules []GearRule
}

// NewRestrictedGear creates a guard from rules
func NewRestrictedGear(rules ...GearRule) *RestrictedGear {
	return &RestrictedGear{rules: rules}
}

// Allowed implements GearGuard. Every matching rule must allow the actor.
func (g *RestrictedGear) Allowed(slot appearance.EquipSlot, armor appearance.Armor, race appearance.Race, gender appearance.Gender) bool {
	if g == nil {
		return true
	}
	for _, rule := range g.rules {
		if rule.matches(slot, armor) && !rule.allows(race, gender) {
			return false
		}
	}
	return true
}

// Rules returns a copy of the rule table
func (g *RestrictedGear) Rules() []GearRule {
	return append([]GearRule(nil), g.rules...)
}

type gearFile struct {
	Rules []gearFileRule `yaml:"rules"`
}

type gearFileRule struct {
	Slot    string   `yaml:"slot"`
	Set     uint16   `yaml:"set"`
	Variant uint8    `yaml:"variant"`
	Races   []string `yaml:"races"`
	Genders []string `yaml:"genders"`
}

// ParseRestrictedGear reads a YAML rule table:
//
//	rules:
//	  - slot: body
//	    set: 6012
//	    genders: [female]
//	    races: [viera, miqote]
func ParseRestrictedGear(r io.Reader) (*RestrictedGear, error) {
	var file gearFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse restricted gear")
	}

	rules := make([]GearRule, 0, len(file.Rules))
	for i, fr := range file.Rules {
		slot, err := appearance.ParseEquipSlot(fr.Slot)
		if err != nil {
			return nil, errors.InvalidArgumentf("rule %d: %v", i, err)
		}
		if !slot.IsArmor() {
			return nil, errors.InvalidArgumentf("rule %d: %s is not an armor slot", i, slot)
		}
		rule := GearRule{Slot: slot, Set: fr.Set, Variant: fr.Variant}
		for _, name := range fr.Races {
			race, err := appearance.ParseRace(name)
			if err != nil {
				return nil, errors.InvalidArgumentf("rule %d: %v", i, err)
			}
			rule.Races = append(rule.Races, race)
		}
		for _, name := range fr.Genders {
			gender, err := appearance.ParseGender(name)
			if err != nil {
				return nil, errors.InvalidArgumentf("rule %d: %v", i, err)
			}
			rule.Genders = append(rule.Genders, gender)
		}
		rules = append(rules, rule)
	}

	return NewRestrictedGear(rules...), nil
}

// LoadRestrictedGear reads a YAML rule table from disk
func LoadRestrictedGear(path string) (*RestrictedGear, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open restricted gear file %s", path)
	}
	defer func() { _ = f.Close() }()

	return ParseRestrictedGear(f)
}
