package testutils

import (
	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
)

const (
	// TestPlayerName is the default player fixture name
	TestPlayerName = "Alphinaud Leveilleur"
	// TestHomeWorld is the default player fixture world
	TestHomeWorld uint16 = 73
)

// TestActor returns the default player identifier
func TestActor() appearance.ActorIdentifier {
	return appearance.PlayerID(TestPlayerName, TestHomeWorld)
}

// CreateTestCharacterData returns an elezen with a full set of gear
func CreateTestCharacterData() appearance.CharacterData {
	var data appearance.CharacterData
	data.Customize.Set(appearance.CustomizeRace, byte(appearance.RaceElezen))
	data.Customize.Set(appearance.CustomizeGender, byte(appearance.GenderMale))
	data.Customize.Set(appearance.CustomizeClan, 1)
	data.Customize.Set(appearance.CustomizeFace, 2)
	data.Customize.Set(appearance.CustomizeHairstyle, 6)
	data.Customize.Set(appearance.CustomizeHairColor, 40)

	for i, slot := range appearance.ArmorSlots() {
		data.SetArmor(slot, appearance.Armor{
			Set:     uint16(6000 + i),
			Variant: 1,
			Stain:   appearance.StainID(i),
		})
	}
	data.MainHand = appearance.Weapon{Set: 2101, Type: 1, Variant: 1, Stain: 3}
	data.OffHand = appearance.Weapon{Set: 2151, Type: 1, Variant: 1}

	return data
}

// CreateTestStoredDesign returns a named design carrying a hairstyle, a
// head piece and the hat toggle
func CreateTestStoredDesign(name string) *design.StoredDesign {
	d := &design.StoredDesign{Name: name, Description: "test design"}
	_ = d.SetCustomize(appearance.CustomizeHairstyle, 12)
	_ = d.UpdateArmor(appearance.SlotHead, appearance.Armor{Set: 6120, Variant: 2})
	_ = d.SetStain(appearance.SlotHead, 17)
	_ = d.SetToggle(appearance.ToggleHatVisible, true)
	return d
}
