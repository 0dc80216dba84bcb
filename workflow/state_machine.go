package workflow

import (
	"fmt"
	"time"

	"dorm-management-api/models"
)

// Transition describes one applied status change.
type Transition struct {
	From  models.ApplicationStatus
	To    models.ApplicationStatus
	Note  string
	Entry models.ResponseEntry
}

// StateMachine is the only place that writes an application's status, note
// and history.
type StateMachine struct {
	now func() time.Time
}

// NewStateMachine uses now as its clock; nil means time.Now.
func NewStateMachine(now func() time.Time) *StateMachine {
	if now == nil {
		now = time.Now
	}
	return &StateMachine{now: now}
}

// ChangeStatus sets the status, replaces the admin note and appends today's
// entry to the history. Repeating the current status still appends.
func (m *StateMachine) ChangeStatus(app *models.DormApplication, newStatus models.ApplicationStatus, note string) Transition {
	from := app.Status
	app.Status = newStatus
	app.AdminNote = note
	entry := app.ResponseHistory.Append(newStatus, m.now())
	return Transition{From: from, To: newStatus, Note: note, Entry: entry}
}

// Apply maps action through the transition table and changes the status.
func (m *StateMachine) Apply(app *models.DormApplication, action Action, note string) (Transition, error) {
	target, ok := TargetStatus(app.Status, action)
	if !ok {
		return Transition{}, fmt.Errorf("unknown action %q", action)
	}
	return m.ChangeStatus(app, target, note), nil
}

func (m *StateMachine) ApprovePhaseOne(app *models.DormApplication, note string) Transition {
	return m.ChangeStatus(app, transitionTable[ActionApprovePhaseOne], note)
}

func (m *StateMachine) DeclinePhaseOne(app *models.DormApplication, note string) Transition {
	return m.ChangeStatus(app, transitionTable[ActionDeclinePhaseOne], note)
}

func (m *StateMachine) RequestResubmit(app *models.DormApplication, note string) Transition {
	return m.ChangeStatus(app, transitionTable[ActionRequestResubmit], note)
}

func (m *StateMachine) ApprovePhaseTwo(app *models.DormApplication, note string) Transition {
	return m.ChangeStatus(app, transitionTable[ActionApprovePhaseTwo], note)
}

func (m *StateMachine) DeclinePhaseTwo(app *models.DormApplication, note string) Transition {
	return m.ChangeStatus(app, transitionTable[ActionDeclinePhaseTwo], note)
}

// AssignBuilding records the building on the student and, when the student
// has an application, moves it to ASSIGNED with an empty note. A nil app only
// updates the student and yields a nil transition.
func (m *StateMachine) AssignBuilding(student *models.Student, app *models.DormApplication, building string) *Transition {
	student.AssignedBuilding = &building
	if app == nil {
		return nil
	}
	t := m.ChangeStatus(app, transitionTable[ActionAssign], "")
	return &t
}

// SubmitPhaseOne puts a new or existing application back to
// PHASE_ONE_PENDING. Student submissions are not staff responses, so nothing
// is appended to the history and the submitted date is kept.
func (m *StateMachine) SubmitPhaseOne(app *models.DormApplication) {
	app.Status = models.StatusPhaseOnePending
}

// SubmitPhaseTwo marks the Phase Two details as awaiting verification.
func (m *StateMachine) SubmitPhaseTwo(app *models.DormApplication) {
	app.Status = models.StatusPhaseTwoPending
}

// Open starts a new application for student in PHASE_ONE_PENDING, dated
// today with an empty history.
func (m *StateMachine) Open(id string, student *models.Student) *models.DormApplication {
	return models.NewDormApplication(id, student, m.now())
}
