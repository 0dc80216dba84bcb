package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// ApplicationStatus is the persisted literal name of a dorm application's state.
type ApplicationStatus string

const (
	StatusPhaseOnePending  ApplicationStatus = "PHASE_ONE_PENDING"
	StatusPhaseOneApproved ApplicationStatus = "PHASE_ONE_APPROVED"
	StatusPhaseOneDeclined ApplicationStatus = "PHASE_ONE_DECLINED"
	StatusPhaseOneResubmit ApplicationStatus = "PHASE_ONE_RESUBMIT"
	StatusPhaseTwoPending  ApplicationStatus = "PHASE_TWO_PENDING"
	StatusPhaseTwoApproved ApplicationStatus = "PHASE_TWO_APPROVED"
	StatusPhaseTwoDeclined ApplicationStatus = "PHASE_TWO_DECLINED"
	StatusAssigned         ApplicationStatus = "ASSIGNED"
)

// ApplicationStatuses lists every status in logical progression order.
var ApplicationStatuses = []ApplicationStatus{
	StatusPhaseOnePending,
	StatusPhaseOneApproved,
	StatusPhaseOneDeclined,
	StatusPhaseOneResubmit,
	StatusPhaseTwoPending,
	StatusPhaseTwoApproved,
	StatusPhaseTwoDeclined,
	StatusAssigned,
}

// IsValid reports whether s is one of the eight known statuses.
func (s ApplicationStatus) IsValid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) String() string {
	return string(s)
}

// LookupApplicationStatus resolves an exact status name.
func LookupApplicationStatus(name string) (ApplicationStatus, bool) {
	status := ApplicationStatus(strings.TrimSpace(name))
	return status, status.IsValid()
}

// ParseApplicationStatus never fails: unknown or empty values fall back to
// PHASE_ONE_PENDING.
func ParseApplicationStatus(name string) ApplicationStatus {
	if status, ok := LookupApplicationStatus(name); ok {
		return status
	}
	return StatusPhaseOnePending
}

// Scan implements sql.Scanner.
func (s *ApplicationStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = StatusPhaseOnePending
	case []byte:
		*s = ParseApplicationStatus(string(v))
	case string:
		*s = ParseApplicationStatus(v)
	default:
		return fmt.Errorf("unsupported status type %T", value)
	}
	return nil
}

// Value implements driver.Valuer.
func (s ApplicationStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return string(StatusPhaseOnePending), nil
	}
	return string(s), nil
}
