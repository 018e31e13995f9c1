package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"sync/atomic"
)

const nodeIDPrefix = "node"

var fallbackSeq atomic.Uint64

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32 (lowercase, no padding).
// 8 chars base32 ~= 40 bits (~1 trillion) of space.
func newRandomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

// NewID returns a fresh node id. It does not check for collisions; use
// NextID when a tree is at hand.
func NewID() string {
	id, err := newRandomID(nodeIDPrefix)
	if err != nil {
		// crypto/rand failing is extremely unlikely; keep ids unique anyway.
		return fmt.Sprintf("%s-seq%d", nodeIDPrefix, fallbackSeq.Add(1))
	}
	return id
}

// NextID returns an id not used by any node of t.
func (t *Tree) NextID() string {
	for i := 0; i < 10; i++ {
		id := NewID()
		if !t.Has(id) {
			return id
		}
	}
	// Extremely unlikely fallback
	for {
		id := fmt.Sprintf("%s-seq%d", nodeIDPrefix, fallbackSeq.Add(1))
		if !t.Has(id) {
			return id
		}
	}
}
