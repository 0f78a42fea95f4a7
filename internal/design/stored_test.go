package design_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/glamour-api/internal/codec"
	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
)

func TestStoredDesign_SettersExtendMask(t *testing.T) {
	d := &design.StoredDesign{}

	require.NoError(t, d.SetCustomize(appearance.CustomizeEyebrows, 3))
	require.NoError(t, d.UpdateArmor(appearance.SlotLegs, itemB))
	require.NoError(t, d.SetStain(appearance.SlotLegs, 8))
	require.NoError(t, d.UpdateOffhand(appearance.Weapon{Set: 1, Type: 2, Variant: 3}))
	require.NoError(t, d.SetToggle(appearance.ToggleWet, false))

	mask := d.ApplyMask()
	assert.Equal(t, appearance.CustomizeFlag(0).With(appearance.CustomizeEyebrows), mask.Customize)
	assert.Equal(t, appearance.EquipFlag(0).With(appearance.SlotLegs).With(appearance.SlotOffHand), mask.Equip)
	assert.Equal(t, appearance.ToggleWet, mask.Toggles)
	assert.False(t, d.Toggle(appearance.ToggleWet))
	assert.Equal(t, appearance.Armor{Set: itemB.Set, Variant: itemB.Variant, Stain: 8}, d.Armor(appearance.SlotLegs))
}

func TestStoredDesign_WriteProtected(t *testing.T) {
	d := &design.StoredDesign{ID: "design_7", WriteProtected: true}

	for name, err := range map[string]error{
		"customize": d.SetCustomize(appearance.CustomizeRace, 1),
		"armor":     d.UpdateArmor(appearance.SlotHead, itemA),
		"main hand": d.UpdateMainhand(appearance.Weapon{Set: 1}),
		"stain":     d.SetStain(appearance.SlotHead, 1),
		"toggle":    d.SetToggle(appearance.ToggleHatVisible, true),
	} {
		assert.True(t, errors.IsWriteProtected(err), name)
	}
	assert.True(t, d.ApplyMask().IsEmpty())
}

func TestStoredDesign_CodeRoundTrip(t *testing.T) {
	d := &design.StoredDesign{Name: "ignored by the code"}
	require.NoError(t, d.SetCustomize(appearance.CustomizeHairstyle, 14))
	require.NoError(t, d.UpdateArmor(appearance.SlotHead, itemC))
	require.NoError(t, d.UpdateMainhand(appearance.Weapon{Set: 2001, Type: 12, Variant: 3}))
	require.NoError(t, d.SetToggle(appearance.ToggleHatVisible, true))

	back, err := design.FromCode(d.Code())
	require.NoError(t, err)

	assert.Equal(t, d.Data, back.Data)
	assert.Equal(t, d.Mask, back.Mask)
	assert.Equal(t, d.Toggles, back.Toggles)
	assert.Empty(t, back.Name)

	_, err = design.FromCode("AgAA")
	assert.True(t, errors.IsDecodeFailed(err))
}

func TestFromState_Normalizes(t *testing.T) {
	var data appearance.CharacterData
	data.SetArmor(appearance.SlotHead, itemA)
	data.SetArmor(appearance.SlotBody, itemB)

	d := design.FromState(codec.State{
		Data:           data,
		Mask:           appearance.FieldSet{Equip: appearance.EquipFlag(0).With(appearance.SlotHead)},
		WriteProtected: true,
	})

	assert.Equal(t, itemA, d.Armor(appearance.SlotHead))
	assert.Zero(t, d.Armor(appearance.SlotBody))
	assert.True(t, d.WriteProtected)
}

func TestParseFile(t *testing.T) {
	src := `
name: Summer
description: beach day
customize:
  hairstyle: 12
  eyebrows: 2
equipment:
  head: {set: 6012, variant: 1, stain: 3}
  main_hand: {set: 2001, type: 12, variant: 3}
toggles:
  hat_visible: false
`
	d, err := design.ParseFile(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "Summer", d.Name)
	assert.Equal(t, "beach day", d.Description)
	assert.Equal(t, byte(12), d.Customize(appearance.CustomizeHairstyle))
	assert.Equal(t, appearance.Armor{Set: 6012, Variant: 1, Stain: 3}, d.Armor(appearance.SlotHead))
	assert.Equal(t, appearance.Weapon{Set: 2001, Type: 12, Variant: 3}, d.MainHand())
	assert.Equal(t, appearance.ToggleHatVisible, d.Mask.Toggles)
	assert.Equal(t, 2, d.Mask.Customize.Count())
	assert.Equal(t, 2, d.Mask.Equip.Count())

	t.Run("round trips through MarshalFile", func(t *testing.T) {
		out, err := d.MarshalFile()
		require.NoError(t, err)

		back, err := design.ParseFile(strings.NewReader(string(out)))
		require.NoError(t, err)
		assert.Equal(t, d.Data, back.Data)
		assert.Equal(t, d.Mask, back.Mask)
		assert.Equal(t, d.Name, back.Name)
	})

	t.Run("layers fields on a code", func(t *testing.T) {
		base := &design.StoredDesign{}
		require.NoError(t, base.UpdateArmor(appearance.SlotFeet, itemD))
		base.WriteProtected = true

		d, err := design.ParseFile(strings.NewReader("name: layered\ncode: " + base.Code() + "\ncustomize:\n  nose: 4\n"))
		require.NoError(t, err)
		assert.Equal(t, itemD, d.Armor(appearance.SlotFeet))
		assert.Equal(t, byte(4), d.Customize(appearance.CustomizeNose))
		assert.True(t, d.WriteProtected)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		for name, src := range map[string]string{
			"empty":         "",
			"unknown field": "customize:\n  wings: 1\n",
			"unknown slot":  "equipment:\n  tail: {set: 1, variant: 1}\n",
			"armor variant": "equipment:\n  head: {set: 1, variant: 300}\n",
			"toggle":        "toggles:\n  glow: true\n",
			"bad code":      "code: AAAA\n",
		} {
			_, err := design.ParseFile(strings.NewReader(src))
			assert.True(t, errors.IsInvalidArgument(err), name)
		}
	})
}

func TestParseRestrictedGear(t *testing.T) {
	src := `
rules:
  - slot: body
    set: 7000
    genders: [male]
  - slot: head
    set: 8000
    variant: 2
    races: [viera, hrothgar]
`
	guard, err := design.ParseRestrictedGear(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, guard.Rules(), 2)

	body := appearance.Armor{Set: 7000, Variant: 1}
	assert.True(t, guard.Allowed(appearance.SlotBody, body, appearance.RaceHyur, appearance.GenderMale))
	assert.False(t, guard.Allowed(appearance.SlotBody, body, appearance.RaceHyur, appearance.GenderFemale))

	assert.True(t, guard.Allowed(appearance.SlotHead, appearance.Armor{Set: 8000, Variant: 1}, appearance.RaceHyur, appearance.GenderMale))
	assert.False(t, guard.Allowed(appearance.SlotHead, appearance.Armor{Set: 8000, Variant: 2}, appearance.RaceHyur, appearance.GenderMale))
	assert.True(t, guard.Allowed(appearance.SlotHead, appearance.Armor{Set: 8000, Variant: 2}, appearance.RaceViera, appearance.GenderMale))

	var none *design.RestrictedGear
	assert.True(t, none.Allowed(appearance.SlotBody, body, appearance.RaceHyur, appearance.GenderFemale))

	_, err = design.ParseRestrictedGear(strings.NewReader("rules:\n  - slot: main_hand\n    set: 1\n"))
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = design.ParseRestrictedGear(strings.NewReader("rules:\n  - slot: body\n    races: [dragon]\n"))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNeedsRedraw(t *testing.T) {
	var base appearance.CharacterData
	base.Customize.Set(appearance.CustomizeRace, byte(appearance.RaceHyur))

	testCases := []struct {
		name   string
		mutate func(d *appearance.CharacterData)
		redraw bool
	}{
		{name: "no change", mutate: func(d *appearance.CharacterData) {}},
		{name: "model id", mutate: func(d *appearance.CharacterData) { d.ModelID = 5 }, redraw: true},
		{name: "race", mutate: func(d *appearance.CharacterData) { d.Customize.Set(appearance.CustomizeRace, 2) }, redraw: true},
		{name: "clan", mutate: func(d *appearance.CharacterData) { d.Customize.Set(appearance.CustomizeClan, 2) }, redraw: true},
		{name: "gender", mutate: func(d *appearance.CharacterData) { d.Customize.Set(appearance.CustomizeGender, 1) }, redraw: true},
		{name: "body type", mutate: func(d *appearance.CharacterData) { d.Customize.Set(appearance.CustomizeBodyType, 3) }, redraw: true},
		{name: "hairstyle", mutate: func(d *appearance.CharacterData) { d.Customize.Set(appearance.CustomizeHairstyle, 3) }},
		{name: "armor", mutate: func(d *appearance.CharacterData) { d.SetArmor(appearance.SlotBody, itemA) }},
		{name: "dye", mutate: func(d *appearance.CharacterData) { d.SetStain(appearance.SlotMainHand, 4) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			to := base
			tc.mutate(&to)
			redraw, reason := design.NeedsRedraw(&base, &to)
			assert.Equal(t, tc.redraw, redraw)
			assert.Equal(t, tc.redraw, reason != "")
		})
	}
}
