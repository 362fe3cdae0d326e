package mherr

import "testing"

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Detail == "changed" {
		t.Errorf("Expected immutable error with detail not equal to 'changed', got '%s'", e.Detail)
	}
	if changedE.Detail != "changed" {
		t.Errorf("Expected immutable error with detail equal to 'changed', got '%s'", changedE.Detail)
	}
}

func TestWithExtrasCopies(t *testing.T) {
	e := New(400, "CONFLICT", "conflict")
	withExtras := e.WithExtras(Extras{"activity": "Chess Club"})
	if e.Extras != nil {
		t.Errorf("Expected original error to carry no extras, got '%v'", e.Extras)
	}
	if withExtras.Extras == nil {
		t.Error("Expected derived error to carry extras, got nil")
	}
}
