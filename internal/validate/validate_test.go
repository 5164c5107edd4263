package validate

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name@example.com", "x+tag@domain.org"}
	for _, e := range valid {
		if err := Email(e); err != nil {
			t.Errorf("Email(%q) = %v, want nil", e, err)
		}
	}

	invalid := []string{"", "plain", "@no-local.com", "spaces in@mail.com", "no-at.com"}
	for _, e := range invalid {
		if err := Email(e); err == nil {
			t.Errorf("Email(%q) = nil, want error", e)
		}
	}
}

func TestPhone(t *testing.T) {
	// Empty phone is allowed, it is an optional field
	if err := Phone(""); err != nil {
		t.Errorf("Phone(\"\") = %v, want nil", err)
	}

	valid := []string{"+9779841000000", "9841000000", "+1 555 0100"}
	for _, p := range valid {
		if err := Phone(p); err != nil {
			t.Errorf("Phone(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"0123", "abc", "+0984", "98410000001234567890"}
	for _, p := range invalid {
		if err := Phone(p); err == nil {
			t.Errorf("Phone(%q) = nil, want error", p)
		}
	}
}

func TestDate(t *testing.T) {
	valid := []string{"2024-01-01", "2024-12-31", "2025-06-15"}
	for _, d := range valid {
		if err := Date(d); err != nil {
			t.Errorf("Date(%q) = %v, want nil", d, err)
		}
	}

	invalid := []string{"", "2024/01/01", "01-01-2024", "2024-1-1", "2024-13-01", "2024-01-32", "not-a-date"}
	for _, d := range invalid {
		if err := Date(d); err == nil {
			t.Errorf("Date(%q) = nil, want error", d)
		}
	}
}

func TestRequired(t *testing.T) {
	if err := Required("name", "Parlad"); err != nil {
		t.Errorf("Required = %v, want nil", err)
	}
	for _, v := range []string{"", "   ", "\t"} {
		if err := Required("name", v); err == nil {
			t.Errorf("Required(%q) = nil, want error", v)
		}
	}
}

func TestAmount(t *testing.T) {
	for _, a := range []float64{0, 0.01, 500, 1200.50} {
		if err := Amount("debit", a); err != nil {
			t.Errorf("Amount(%v) = %v, want nil", a, err)
		}
	}
	if err := Amount("debit", -1); err == nil {
		t.Error("Amount(-1) = nil, want error")
	}
}
