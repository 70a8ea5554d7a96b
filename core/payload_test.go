package core

import (
	"errors"
	"testing"
)

func TestPayload_DataInLeavesValueUnchanged(t *testing.T) {
	p, err := NewPayload(100)
	if err != nil {
		t.Fatalf("NewPayload: %v", err)
	}

	if got := p.DataIn(); got != 100 {
		t.Fatalf("DataIn = %d, want 100", got)
	}
	if got := p.DataIn(); got != 100 {
		t.Fatalf("repeated DataIn = %d, want 100", got)
	}
}

func TestPayload_DataOutMutateSemantics(t *testing.T) {
	p, err := NewPayload(100)
	if err != nil {
		t.Fatalf("NewPayload: %v", err)
	}

	// mutate=false returns the derived size without touching the stored one.
	out, err := p.DataOut(0.9, false)
	if err != nil {
		t.Fatalf("DataOut(mutate=false): %v", err)
	}
	if out != 90 {
		t.Errorf("derived size = %d, want 90", out)
	}
	if got := p.DataIn(); got != 100 {
		t.Errorf("stored size after mutate=false = %d, want 100", got)
	}

	// mutate=true replaces the stored value.
	out, err = p.DataOut(0.9, true)
	if err != nil {
		t.Fatalf("DataOut(mutate=true): %v", err)
	}
	if out != 90 {
		t.Errorf("scaled size = %d, want 90", out)
	}
	if got := p.DataIn(); got != 90 {
		t.Errorf("stored size after mutate=true = %d, want 90", got)
	}
}

func TestPayload_NeverGoesNegative(t *testing.T) {
	if _, err := NewPayload(-1); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("NewPayload(-1) err = %v, want ErrInvalidConfiguration", err)
	}

	p, err := NewPayload(10)
	if err != nil {
		t.Fatalf("NewPayload: %v", err)
	}
	if _, err := p.DataOut(-2, true); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("DataOut with negative factor err = %v, want ErrInvalidConfiguration", err)
	}
	if got := p.DataIn(); got != 10 {
		t.Fatalf("failed DataOut mutated payload to %d, want 10", got)
	}
}
