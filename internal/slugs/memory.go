package slugs

import (
	"fmt"
	"math/rand"
)

// MemoryAllocator generates slugs using process-local randomness, retrying
// until isTaken reports the candidate is free. It is the default
// allocator and requires no external dependency.
type MemoryAllocator struct {
	rnd *rand.Rand
}

// NewMemoryAllocator constructs a MemoryAllocator seeded from seed (pass a
// value derived from process start time; tests can pass a fixed seed for
// determinism).
func NewMemoryAllocator(seed int64) *MemoryAllocator {
	return &MemoryAllocator{rnd: rand.New(rand.NewSource(seed))}
}

func (a *MemoryAllocator) Generate(isTaken func(slug string) bool) string {
	for {
		slug := fmt.Sprintf("%s-%s", adjectives[a.rnd.Intn(len(adjectives))], nouns[a.rnd.Intn(len(nouns))])
		if !isTaken(slug) {
			return slug
		}
	}
}
