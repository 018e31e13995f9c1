package store

import (
	"errors"
	"sort"
	"testing"

	"asciitree-cli/internal/model"
)

func TestValidate(t *testing.T) {
	if err := Validate(fixture().Nodes); err != nil {
		t.Fatalf("expected fixture to be valid; got %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Fatalf("expected empty collection to be valid; got %v", err)
	}
	if err := Validate(Sample()); err != nil {
		t.Fatalf("expected sample to be valid; got %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	err := Validate([]model.Node{{ID: "", Name: "x"}})
	if !errors.Is(err, ErrEmptyID) {
		t.Fatalf("expected ErrEmptyID; got %v", err)
	}

	err = Validate([]model.Node{{ID: "a"}, {ID: "a"}})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID; got %v", err)
	}

	err = Validate([]model.Node{{ID: "a", ParentID: p("ghost")}})
	var dangling DanglingParentError
	if !errors.As(err, &dangling) || dangling.ID != "a" || dangling.ParentID != "ghost" {
		t.Fatalf("expected DanglingParentError; got %v", err)
	}

	err = Validate([]model.Node{{ID: "a", ParentID: p("a")}})
	var cyc CycleError
	if !errors.As(err, &cyc) || len(cyc.IDs) != 1 {
		t.Fatalf("expected self cycle; got %v", err)
	}

	err = Validate([]model.Node{
		{ID: "r"},
		{ID: "a", ParentID: p("c")},
		{ID: "b", ParentID: p("a")},
		{ID: "c", ParentID: p("b")},
	})
	if !errors.As(err, &cyc) {
		t.Fatalf("expected CycleError; got %v", err)
	}
	sort.Strings(cyc.IDs)
	if len(cyc.IDs) != 3 || cyc.IDs[0] != "a" || cyc.IDs[2] != "c" {
		t.Fatalf("unexpected cycle members: %v", cyc.IDs)
	}
}
