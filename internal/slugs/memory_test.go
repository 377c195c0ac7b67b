package slugs

import "testing"

func TestMemoryAllocatorAvoidsTakenSlugs(t *testing.T) {
	a := NewMemoryAllocator(42)

	taken := map[string]bool{}
	for i := 0; i < 20; i++ {
		slug := a.Generate(func(s string) bool { return taken[s] })
		if taken[slug] {
			t.Fatalf("Generate returned an already-taken slug: %s", slug)
		}
		taken[slug] = true
	}
}

func TestMemoryAllocatorFormat(t *testing.T) {
	a := NewMemoryAllocator(1)
	slug := a.Generate(func(string) bool { return false })

	dashes := 0
	for _, c := range slug {
		if c == '-' {
			dashes++
		}
	}
	if dashes != 1 {
		t.Fatalf("expected exactly one '-' separator in slug %q", slug)
	}
}
