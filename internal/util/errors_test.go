package util_test

import (
	"fmt"
	"testing"

	"weather-advisor/internal/util"
)

func TestHasCodeThroughWrap(t *testing.T) {
	err := fmt.Errorf("geocode: %w", util.NotFound("no result for \"Atlantis\""))
	if !util.HasCode(err, util.CodeNotFound) {
		t.Fatalf("expected not_found code through wrap, got %v", err)
	}
	if util.HasCode(err, util.CodeUpstream) {
		t.Fatalf("unexpected upstream code")
	}
	if util.HasCode(fmt.Errorf("plain"), util.CodeNotFound) {
		t.Fatalf("plain error must not carry a code")
	}
}

func TestAppErrorMessage(t *testing.T) {
	if got := util.BadInput("location kosong").Error(); got != "bad_input: location kosong" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := (util.AppError{Message: "x"}).Error(); got != "x" {
		t.Fatalf("unexpected message without code: %q", got)
	}
}

func TestNewRunIDUnique(t *testing.T) {
	a, b := util.NewRunID(), util.NewRunID()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty IDs, got %q and %q", a, b)
	}
}
