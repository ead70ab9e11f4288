package main

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/goose-world/internal/world"
)

func TestTokensDocListsEveryToken(t *testing.T) {
	tokens, err := world.TokenCatalogue()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	doc := generateTokensDoc(tokens)
	rows := strings.Count(doc.Content, "\n| 119")
	if rows != len(tokens.All()) {
		t.Fatalf("rows = %d, want %d", rows, len(tokens.All()))
	}
	if !strings.Contains(doc.Content, "| Golden Bell | progression | victory |") {
		t.Fatalf("golden bell row missing:\n%s", doc.Content)
	}
}

func TestOptionsDoc(t *testing.T) {
	doc := generateOptionsDoc()
	if !strings.Contains(doc.Content, "| `starting_area` | random | garden, high_street, back_gardens, pub, random |") {
		t.Fatalf("starting_area row missing:\n%s", doc.Content)
	}
}

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"  a|b ": "a\\|b",
		"x\ny":   "x<br>y",
		"   ":    "",
	}
	for in, want := range cases {
		if got := escape(in); got != want {
			t.Fatalf("escape(%q) = %q, want %q", in, got, want)
		}
	}
}
