package workflow

import "dorm-management-api/models"

// Gate decides which steps are open for an application. A nil application
// is never eligible.
type Gate interface {
	CanFillPhaseTwo(app *models.DormApplication) bool
	IsReadyForAssignment(app *models.DormApplication) bool
}

// PermissiveGate is the current policy. Assignment is allowed once Phase Two
// has been submitted, even before it is approved.
type PermissiveGate struct{}

func (PermissiveGate) CanFillPhaseTwo(app *models.DormApplication) bool {
	return app != nil && app.Status == models.StatusPhaseOneApproved
}

func (PermissiveGate) IsReadyForAssignment(app *models.DormApplication) bool {
	if app == nil {
		return false
	}
	return app.Status == models.StatusPhaseTwoApproved || app.Status == models.StatusPhaseTwoPending
}

// StrictGate only allows assignment after Phase Two is approved.
type StrictGate struct {
	PermissiveGate
}

func (StrictGate) IsReadyForAssignment(app *models.DormApplication) bool {
	return app != nil && app.Status == models.StatusPhaseTwoApproved
}
