// Package idgen generates stored design identifiers of the form
// <prefix>_<suffix>. An empty prefix yields the bare suffix.
package idgen

import (
	"encoding/hex"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

func join(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	return prefix + "_" + suffix
}

// UUIDGenerator issues random identifiers. The UUID is written as 32 hex
// digits without dashes.
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a random generator
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate implements Generator
func (g *UUIDGenerator) Generate() string {
	id := uuid.New()
	return join(g.prefix, hex.EncodeToString(id[:]))
}

// SequentialGenerator issues prefix_1, prefix_2, ... for tests. It is safe
// for concurrent use.
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a sequential generator starting at 1
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate implements Generator
func (g *SequentialGenerator) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}
