package model

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindUnset  Kind = ""
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

var ErrInvalidKind = errors.New("invalid node kind")

// ParseKind normalizes user input into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "unset":
		return KindUnset, nil
	case "file", "f":
		return KindFile, nil
	case "folder", "dir", "directory", "d":
		return KindFolder, nil
	default:
		return KindUnset, ErrInvalidKind
	}
}

// Node is one entry of the flat, parent-linked tree.
// A nil ParentID marks a root; a collection may hold several roots.
type Node struct {
	ID       string  `json:"id" yaml:"id"`
	ParentID *string `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Name     string  `json:"name" yaml:"name"`
	Kind     Kind    `json:"type,omitempty" yaml:"type,omitempty"`
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.ParentID == nil
}

// Parent returns the parent id or "" for roots.
func (n Node) Parent() string {
	if n.ParentID == nil {
		return ""
	}
	return *n.ParentID
}

// HasParent reports whether n's parent is id.
// An empty id matches roots.
func (n Node) HasParent(id string) bool {
	if n.ParentID == nil {
		return id == ""
	}
	return *n.ParentID == id
}

// SameParent reports whether a and b are siblings.
func SameParent(a, b Node) bool {
	if a.ParentID == nil || b.ParentID == nil {
		return a.ParentID == nil && b.ParentID == nil
	}
	return *a.ParentID == *b.ParentID
}

// StrPtr returns a pointer to a copy of s.
func StrPtr(s string) *string {
	return &s
}

// Snapshot is an immutable copy of a node collection at one point in time.
type Snapshot []Node

// Clone deep-copies nodes. ParentID pointers are never shared with the source.
func Clone(nodes []Node) Snapshot {
	if nodes == nil {
		return Snapshot{}
	}
	out := make(Snapshot, len(nodes))
	for i, n := range nodes {
		out[i] = n
		if n.ParentID != nil {
			out[i].ParentID = StrPtr(*n.ParentID)
		}
	}
	return out
}

// Equal reports whether two collections hold the same nodes in the same order.
func Equal(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Name != b[i].Name || a[i].Kind != b[i].Kind {
			return false
		}
		if !SameParent(a[i], b[i]) {
			return false
		}
	}
	return true
}
