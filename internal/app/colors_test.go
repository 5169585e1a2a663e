package app

import (
	"testing"

	"chromalife/pkg/core"
)

func TestParseColorNames(t *testing.T) {
	cases := []struct {
		in   string
		want core.Color
	}{
		{"white", core.Color{R: 255, G: 255, B: 255}},
		{"RED", core.Color{R: 255}},
		{" navy ", core.Color{B: 128}},
		{"orange", core.Color{R: 255, G: 165}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseColorTriple(t *testing.T) {
	got, err := ParseColor("12, 200,7")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if (got != core.Color{R: 12, G: 200, B: 7}) {
		t.Fatalf("ParseColor triple = %v", got)
	}
}

func TestParseColorRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "chartreuse-ish", "1,2", "300,0,0", "a,b,c"} {
		if _, err := ParseColor(in); err == nil {
			t.Fatalf("ParseColor(%q) should fail", in)
		}
	}
}
