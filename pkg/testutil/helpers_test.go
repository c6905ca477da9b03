package testutil

import "testing"

func TestFields(t *testing.T) {
	fields := Fields("principal", "1000", "rate", "13", "dangling")

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields["principal"] != "1000" || fields["rate"] != "13" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if _, ok := fields["dangling"]; ok {
		t.Error("expected trailing name without value to be ignored")
	}
}

func TestForm(t *testing.T) {
	form := Form("expression", "2+3*4")

	if got := form.Get("expression"); got != "2+3*4" {
		t.Errorf("expected expression 2+3*4, got %q", got)
	}
	if encoded := form.Encode(); encoded != "expression=2%2B3%2A4" {
		t.Errorf("unexpected encoding %q", encoded)
	}
}

func TestLogger(t *testing.T) {
	logger := Logger(t)
	if logger == nil {
		t.Fatal("expected a logger")
	}
	logger.Debug("test logger works")
}
