package host_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/host"
)

func TestMemory(t *testing.T) {
	m := host.NewMemory()
	id := appearance.NpcID(1001)

	_, ok := m.ReadActorSnapshot(id)
	assert.False(t, ok)
	assert.False(t, m.ReadVisorState(id))

	var data appearance.CharacterData
	data.SetArmor(appearance.SlotHead, appearance.Armor{Set: 1, Variant: 1})
	m.Report(id, data, true)

	got, ok := m.ReadActorSnapshot(id)
	require.True(t, ok)
	assert.Equal(t, data, got)
	assert.True(t, m.ReadVisorState(id))

	assert.True(t, m.Remove(id))
	assert.False(t, m.Remove(id))
	_, ok = m.ReadActorSnapshot(id)
	assert.False(t, ok)
}

func TestMemory_Concurrent(t *testing.T) {
	m := host.NewMemory()
	var wg sync.WaitGroup

	for i := 1; i <= 20; i++ {
		wg.Add(2)
		id := appearance.NpcID(uint32(i))
		go func() {
			defer wg.Done()
			m.Report(id, appearance.CharacterData{ModelID: 1}, false)
		}()
		go func() {
			defer wg.Done()
			m.ReadActorSnapshot(id)
		}()
	}
	wg.Wait()

	for i := 1; i <= 20; i++ {
		_, ok := m.ReadActorSnapshot(appearance.NpcID(uint32(i)))
		assert.True(t, ok)
	}
}
