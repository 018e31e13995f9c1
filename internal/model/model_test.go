package model

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"":          KindUnset,
		"file":      KindFile,
		" File ":    KindFile,
		"folder":    KindFolder,
		"directory": KindFolder,
		"d":         KindFolder,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("ParseKind(%q): unexpected err: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %q; want %q", in, got, want)
		}
	}
	if _, err := ParseKind("symlink"); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind; got %v", err)
	}
}

func TestClone_DoesNotShareParentPointers(t *testing.T) {
	src := []Node{
		{ID: "r", Name: "Root"},
		{ID: "a", ParentID: StrPtr("r"), Name: "A"},
	}
	snap := Clone(src)
	*src[1].ParentID = "changed"
	src[0].Name = "Renamed"

	if snap[0].Name != "Root" {
		t.Fatalf("expected name copy; got %q", snap[0].Name)
	}
	if snap[1].Parent() != "r" {
		t.Fatalf("expected parent pointer copy; got %q", snap[1].Parent())
	}
	if Clone(nil) == nil {
		t.Fatalf("expected empty non-nil snapshot for nil input")
	}
}

func TestEqualAndSameParent(t *testing.T) {
	a := []Node{{ID: "r", Name: "Root"}, {ID: "a", ParentID: StrPtr("r"), Name: "A"}}
	b := Clone(a)
	if !Equal(a, b) {
		t.Fatalf("expected clone to be equal")
	}
	b[1].ParentID = nil
	if Equal(a, b) {
		t.Fatalf("expected parent change to break equality")
	}
	if !SameParent(a[0], b[1]) {
		t.Fatalf("two roots are siblings")
	}
	if !a[0].HasParent("") || a[1].HasParent("") || !a[1].HasParent("r") {
		t.Fatalf("HasParent mismatch")
	}
}
