package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(fmt.Errorf("get weekly lineup: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to match")
	}
	if isNotFound(errors.New("pq: relation weekly_lineups does not exist")) {
		t.Fatalf("expected unrelated error to be ignored")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("insert league: %w", &pq.Error{
		Code:       "23505",
		Constraint: "fantasy_leagues_invite_code_key",
	})

	t.Run("matches any unique violation", func(t *testing.T) {
		if !isUniqueViolation(err, "") {
			t.Fatalf("expected unique violation")
		}
	})

	t.Run("matches by constraint", func(t *testing.T) {
		if !isUniqueViolation(err, "invite_code") {
			t.Fatalf("expected invite code constraint to match")
		}
	})

	t.Run("ignores other constraints", func(t *testing.T) {
		if isUniqueViolation(err, "team_name") {
			t.Fatalf("expected other constraint to be ignored")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "23503"}, "") {
			t.Fatalf("expected foreign key violation to be ignored")
		}
	})
}

func TestDecodeJSON_NullLeavesTarget(t *testing.T) {
	t.Parallel()

	out := map[string]int{"kept": 1}
	if err := decodeJSON([]byte("null"), &out); err != nil {
		t.Fatalf("decode null: %v", err)
	}
	if out["kept"] != 1 {
		t.Fatalf("expected target untouched, got %+v", out)
	}

	var slots []weeklySlotDocument
	if err := decodeJSON([]byte(`[{"id":"s1","position":"G","isStarter":true,"x":1.5}]`), &slots); err != nil {
		t.Fatalf("decode slots: %v", err)
	}
	if len(slots) != 1 || !slots[0].IsStarter || slots[0].X != 1.5 {
		t.Fatalf("unexpected slots: %+v", slots)
	}
}
