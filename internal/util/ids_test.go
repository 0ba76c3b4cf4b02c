package util

import (
	"strings"
	"testing"
)

const nanoidAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

func TestNewRequestID(t *testing.T) {
	tests := []struct {
		name string
	}{
		{"FirstDraw"},
		{"SecondDraw"},
		{"ThirdDraw"},
	}

	seen := map[string]bool{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id := NewRequestID()
			if len(id) != requestIDLength {
				t.Fatalf("len(NewRequestID()) = %d, want %d", len(id), requestIDLength)
			}
			for _, r := range id {
				if !strings.ContainsRune(nanoidAlphabet, r) {
					t.Fatalf("NewRequestID() = %q contains invalid rune %q", id, r)
				}
			}
			if seen[id] {
				t.Fatalf("NewRequestID() returned duplicate %q", id)
			}
			seen[id] = true
		})
	}
}
