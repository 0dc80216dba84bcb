package workflow

import (
	"strings"

	"dorm-management-api/models"
)

// Action is a staff or system request that moves an application to a new status.
type Action string

const (
	ActionApprovePhaseOne Action = "approvePhaseOne"
	ActionDeclinePhaseOne Action = "declinePhaseOne"
	ActionRequestResubmit Action = "requestResubmit"
	ActionApprovePhaseTwo Action = "approvePhaseTwo"
	ActionDeclinePhaseTwo Action = "declinePhaseTwo"
	ActionAssign          Action = "assign"
)

var transitionTable = map[Action]models.ApplicationStatus{
	ActionApprovePhaseOne: models.StatusPhaseOneApproved,
	ActionDeclinePhaseOne: models.StatusPhaseOneDeclined,
	ActionRequestResubmit: models.StatusPhaseOneResubmit,
	ActionApprovePhaseTwo: models.StatusPhaseTwoApproved,
	ActionDeclinePhaseTwo: models.StatusPhaseTwoDeclined,
	ActionAssign:          models.StatusAssigned,
}

// TargetStatus returns the status action leads to. The current status is not
// consulted: any action is accepted from any state, and the only failure is
// an unknown action.
func TargetStatus(current models.ApplicationStatus, action Action) (models.ApplicationStatus, bool) {
	target, ok := transitionTable[action]
	return target, ok
}

// ParseAction matches an action name case-insensitively.
func ParseAction(name string) (Action, bool) {
	name = strings.TrimSpace(name)
	for action := range transitionTable {
		if strings.EqualFold(string(action), name) {
			return action, true
		}
	}
	return "", false
}
