package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	want := []string{"config", "format", "tui"}
	if got := Topics(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Topics() = %v; want %v", got, want)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" Format ")
	if !ok || !strings.Contains(body, "└── Root") {
		t.Fatalf("expected format topic; got ok=%v", ok)
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("expected unknown topic to be missing")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("expected empty topic to be missing")
	}
}
