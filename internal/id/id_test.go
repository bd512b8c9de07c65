package id_test

import (
	"strings"
	"testing"

	"github.com/quisqueya-quiz/backend/internal/id"
)

func TestGenerateID_LengthAndCharset(t *testing.T) {
	got := id.GenerateID(16)
	if len(got) != 16 {
		t.Fatalf("expected 16 chars, got %d", len(got))
	}
	for _, r := range got {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz0123456789", r) {
			t.Fatalf("unexpected character %q in id %q", r, got)
		}
	}
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got := id.GenerateID(16)
		if seen[got] {
			t.Fatalf("duplicate id generated: %s", got)
		}
		seen[got] = true
	}
}

func TestSessionID(t *testing.T) {
	tests := []struct {
		player string
		prefix string
	}{
		{"Ana", "ana-"},
		{"Jean Pierre", "jean-pierre-"},
		{"???", "player-"},
	}

	for _, tt := range tests {
		got := id.SessionID(tt.player)
		if !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("SessionID(%q) = %q, expected prefix %q", tt.player, got, tt.prefix)
		}
	}
}
