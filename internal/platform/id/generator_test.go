package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestInviteCodeGenerator_NewCode(t *testing.T) {
	t.Parallel()

	gen := NewInviteCodeGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := gen.NewCode()
		if err != nil {
			t.Fatalf("new code: %v", err)
		}
		if len(code) != InviteCodeLength {
			t.Fatalf("unexpected length: %q", code)
		}
		for _, r := range code {
			if !strings.ContainsRune(InviteCodeAlphabet, r) {
				t.Fatalf("unexpected character %q in %q", r, code)
			}
		}
		seen[code] = struct{}{}
	}
	if len(seen) < 190 {
		t.Fatalf("codes look far from random: %d unique of 200", len(seen))
	}
}

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	value, err := NewUUIDGenerator().NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if _, err := uuid.Parse(value); err != nil {
		t.Fatalf("expected uuid, got %q: %v", value, err)
	}
}
