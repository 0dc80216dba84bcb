package models

import "testing"

func TestParseApplicationStatusFailsSafe(t *testing.T) {
	for _, status := range ApplicationStatuses {
		if got := ParseApplicationStatus(string(status)); got != status {
			t.Fatalf("got %s want %s", got, status)
		}
	}
	for _, bad := range []string{"", "APPROVED", "phase_one_approved", "garbage"} {
		if got := ParseApplicationStatus(bad); got != StatusPhaseOnePending {
			t.Fatalf("%q: expected PHASE_ONE_PENDING, got %s", bad, got)
		}
	}
}

func TestApplicationStatusScan(t *testing.T) {
	var s ApplicationStatus
	if err := s.Scan([]byte("ASSIGNED")); err != nil || s != StatusAssigned {
		t.Fatalf("unexpected scan result %s %v", s, err)
	}
	if err := s.Scan("NOT_A_STATUS"); err != nil || s != StatusPhaseOnePending {
		t.Fatalf("unexpected scan result %s %v", s, err)
	}
	if err := s.Scan(nil); err != nil || s != StatusPhaseOnePending {
		t.Fatalf("unexpected scan result %s %v", s, err)
	}
	if err := s.Scan(42); err == nil {
		t.Fatalf("expected error for integer column")
	}
}

func TestGenderScanDefaultsUnknownToMale(t *testing.T) {
	var g Gender
	if err := g.Scan([]byte("X")); err != nil || g != GenderMale {
		t.Fatalf("unexpected scan result %s %v", g, err)
	}
	if err := g.Scan(nil); err != nil || g != "" {
		t.Fatalf("unexpected scan result %q %v", g, err)
	}
}

func TestCollegeScanIgnoresUnknown(t *testing.T) {
	var c College
	if err := c.Scan("UNKNOWN_SCHOOL"); err != nil || c != "" {
		t.Fatalf("unexpected scan result %q %v", c, err)
	}
	if err := c.Scan("BUSINESS_ECONOMICS"); err != nil || c.Acronym() != "CBE" {
		t.Fatalf("unexpected scan result %q %v", c, err)
	}
}
