package v1alpha1_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/handlers/glamour/v1alpha1"
	"github.com/KirkDiggler/glamour-api/internal/testutils"
)

func TestCharacterMessage(t *testing.T) {
	data := testutils.CreateTestCharacterData()

	msg := v1alpha1.CharacterToMessage(data)
	assert.Equal(t, uint8(appearance.RaceElezen), msg.Customize["race"])
	assert.NotContains(t, msg.Customize, "height", "zero values are omitted")
	assert.Equal(t, v1alpha1.ArmorMessage{Set: 6001, Variant: 1, Stain: 1}, msg.Equipment["body"])
	assert.Equal(t, v1alpha1.WeaponMessage{Set: 2101, Type: 1, Variant: 1, Stain: 3}, msg.MainHand)

	back, err := v1alpha1.CharacterFromMessage(msg)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestCharacterFromMessage_Errors(t *testing.T) {
	_, err := v1alpha1.CharacterFromMessage(v1alpha1.CharacterMessage{
		Customize: map[string]uint8{"horns": 1},
	})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = v1alpha1.CharacterFromMessage(v1alpha1.CharacterMessage{
		Equipment: map[string]v1alpha1.ArmorMessage{"off_hand": {Set: 1}},
	})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDesignMessage(t *testing.T) {
	d := testutils.CreateTestStoredDesign("Evening")
	d.ID = "dsg_4"
	d.CreatedAt = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	msg := v1alpha1.DesignToMessage(d)
	assert.Equal(t, "dsg_4", msg.ID)
	assert.Zero(t, msg.UpdatedAt)

	back, err := v1alpha1.DesignFromMessage(msg)
	require.NoError(t, err)
	assert.Equal(t, d.Code(), back.Code())
	assert.Equal(t, d.CreatedAt, back.CreatedAt)
	assert.True(t, back.UpdatedAt.IsZero())

	d.WriteProtected = true
	code := d.Code()
	kept, err := v1alpha1.DesignFromMessage(v1alpha1.DesignMessage{Name: "Evening", Code: code})
	require.NoError(t, err)
	assert.True(t, kept.WriteProtected)

	off := false
	cleared, err := v1alpha1.DesignFromMessage(v1alpha1.DesignMessage{Name: "Evening", Code: code, WriteProtected: &off})
	require.NoError(t, err)
	assert.False(t, cleared.WriteProtected)

	empty, err := v1alpha1.DesignFromMessage(v1alpha1.DesignMessage{Name: "blank"})
	require.NoError(t, err)
	assert.True(t, empty.ApplyMask().IsEmpty())
}

func TestStructBridge(t *testing.T) {
	in := v1alpha1.SetLockRequest{Actor: "npc:3", Equip: []string{"legs"}, Locked: true}

	st, err := v1alpha1.ToStruct(in)
	require.NoError(t, err)
	assert.Equal(t, "npc:3", st.GetFields()["actor"].GetStringValue())

	var out v1alpha1.SetLockRequest
	require.NoError(t, v1alpha1.FromStruct(st, &out))
	assert.Equal(t, in, out)

	assert.True(t, errors.IsInvalidArgument(v1alpha1.FromStruct(nil, &out)))
}
