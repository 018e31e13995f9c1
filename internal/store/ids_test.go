package store

import (
	"regexp"
	"testing"

	"asciitree-cli/internal/model"
)

func TestNewID_Format(t *testing.T) {
	re := regexp.MustCompile(`^node-[a-z2-7]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := NewID()
		if !re.MatchString(id) {
			t.Fatalf("unexpected id format: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id: %q", id)
		}
		seen[id] = true
	}
}

func TestNextID_AvoidsExisting(t *testing.T) {
	tr := New([]model.Node{{ID: "node-aaaaaaaa", Name: "x"}})
	for i := 0; i < 50; i++ {
		if id := tr.NextID(); tr.Has(id) {
			t.Fatalf("NextID returned an existing id %q", id)
		}
	}
}
