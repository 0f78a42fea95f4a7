package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/glamour-api/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("dsg").Generate()
	require.True(t, strings.HasPrefix(id, "dsg_"))

	suffix := strings.TrimPrefix(id, "dsg_")
	assert.Len(t, suffix, 32)
	assert.NotContains(t, suffix, "-")
	_, err := uuid.Parse(suffix)
	assert.NoError(t, err)

	assert.NotEqual(t, id, idgen.NewUUID("dsg").Generate())
	assert.Len(t, idgen.NewUUID("").Generate(), 32)
}

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("dsg")
	assert.Equal(t, "dsg_1", g.Generate())
	assert.Equal(t, "dsg_2", g.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

func TestSequentialGenerator_Concurrent(t *testing.T) {
	g := idgen.NewSequential("")
	seen := sync.Map{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(g.Generate(), true)
			assert.False(t, dup)
		}()
	}
	wg.Wait()

	assert.Equal(t, "51", g.Generate())
}
