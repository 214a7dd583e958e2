package view

import (
	"strings"
	"testing"
)

func TestStyle_MergeLikeSpread(t *testing.T) {
	base := Style{{"color", "red"}, {"padding", "1rem"}}
	got := base.Merge(Style{{"color", "blue"}, {"margin", "0"}})

	want := "color: blue; padding: 1rem; margin: 0"
	if got.String() != want {
		t.Fatalf("got %q want %q", got.String(), want)
	}
	if base.String() != "color: red; padding: 1rem" {
		t.Fatalf("merge mutated base: %q", base.String())
	}
}

func TestInputStyle(t *testing.T) {
	if s := inputStyle(false).String(); strings.Contains(s, "border-color") {
		t.Fatalf("unexpected border-color in %q", s)
	}
	if s := inputStyle(true).String(); !strings.Contains(s, "border-color: #A67C00") {
		t.Fatalf("missing focused border-color in %q", s)
	}
	if s := buttonStyle(true).String(); !strings.Contains(s, "background-color: #855f00") {
		t.Fatalf("missing hovered background in %q", s)
	}
}
