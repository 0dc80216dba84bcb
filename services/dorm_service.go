package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"dorm-management-api/models"
	"dorm-management-api/workflow"

	"github.com/google/uuid"
)

// DormService owns the application lifecycle. Every status change goes
// through its state machine and is persisted before the call returns.
type DormService struct {
	students  StudentStore
	apps      ApplicationStore
	messenger Messenger
	machine   *workflow.StateMachine
	gate      workflow.Gate
	newID     func() string
}

// NewDormService wires the service. A nil machine uses the wall clock, a nil
// gate is the permissive policy and a nil messenger disables resubmit notices.
func NewDormService(students StudentStore, apps ApplicationStore, messenger Messenger, machine *workflow.StateMachine, gate workflow.Gate) *DormService {
	if machine == nil {
		machine = workflow.NewStateMachine(nil)
	}
	if gate == nil {
		gate = workflow.PermissiveGate{}
	}
	return &DormService{
		students:  students,
		apps:      apps,
		messenger: messenger,
		machine:   machine,
		gate:      gate,
		newID:     uuid.NewString,
	}
}

// Gate exposes the eligibility policy in use.
func (s *DormService) Gate() workflow.Gate {
	return s.gate
}

// SubmitPhaseOne stores the Phase One fields on the student and creates the
// application, or puts the existing one back to PHASE_ONE_PENDING.
func (s *DormService) SubmitPhaseOne(ctx context.Context, student *models.Student, in PhaseOneInput) (*models.DormApplication, error) {
	if student == nil {
		return nil, ErrStudentNotFound
	}
	in, err := in.Normalize()
	if err != nil {
		return nil, err
	}

	student.SponsorshipType = in.Sponsorship
	student.Residency = in.Residency
	student.City = models.StringPtr(in.City)
	student.Subcity = models.StringPtr(in.Subcity)
	student.Woreda = models.StringPtr(in.Woreda)
	student.DisabilityInfo = models.StringPtr(in.DisabilityInfo)
	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	app, err := s.apps.FindByStudent(ctx, student)
	if err != nil {
		return nil, err
	}
	if app != nil {
		from := app.Status
		s.machine.SubmitPhaseOne(app)
		if err := s.apps.Update(ctx, app); err != nil {
			return nil, err
		}
		log.Printf("application %s: %s -> %s (phase one resubmitted by %s)", app.ID, from, app.Status, student.StudentID)
		return app, nil
	}

	app = s.machine.Open(s.newID(), student)
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, err
	}
	log.Printf("application %s: created for %s", app.ID, student.StudentID)
	return app, nil
}

// SubmitPhaseTwo stores the Phase Two fields on the student. Without an
// application it returns (nil, nil) after saving the student.
func (s *DormService) SubmitPhaseTwo(ctx context.Context, student *models.Student, in PhaseTwoInput) (*models.DormApplication, error) {
	if student == nil {
		return nil, ErrStudentNotFound
	}
	in, err := in.Normalize(student.SponsorshipType)
	if err != nil {
		return nil, err
	}

	student.EmergencyContactName = models.StringPtr(in.EmergencyContactName)
	student.EmergencyContactPhone = models.StringPtr(in.EmergencyContactPhone)
	student.TransactionID = models.StringPtr(in.TransactionID)
	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	app, err := s.apps.FindByStudent(ctx, student)
	if err != nil || app == nil {
		return nil, err
	}
	from := app.Status
	s.machine.SubmitPhaseTwo(app)
	if err := s.apps.Update(ctx, app); err != nil {
		return nil, err
	}
	log.Printf("application %s: %s -> %s (phase two submitted)", app.ID, from, app.Status)
	return app, nil
}

// ApplicationForStudent returns the student's application or nil.
func (s *DormService) ApplicationForStudent(ctx context.Context, student *models.Student) (*models.DormApplication, error) {
	return s.apps.FindByStudent(ctx, student)
}

// Application loads one application with its student.
func (s *DormService) Application(ctx context.Context, id string) (*models.DormApplication, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

func (s *DormService) persist(ctx context.Context, app *models.DormApplication, t workflow.Transition) error {
	if err := s.apps.Update(ctx, app); err != nil {
		return err
	}
	log.Printf("application %s: %s -> %s", app.ID, t.From, t.To)
	return nil
}

// ChangeStatus sets any status with a note and records it in the history.
func (s *DormService) ChangeStatus(ctx context.Context, app *models.DormApplication, status models.ApplicationStatus, note string) error {
	return s.persist(ctx, app, s.machine.ChangeStatus(app, status, note))
}

func (s *DormService) ApprovePhaseOne(ctx context.Context, app *models.DormApplication, note string) error {
	return s.persist(ctx, app, s.machine.ApprovePhaseOne(app, note))
}

func (s *DormService) DeclinePhaseOne(ctx context.Context, app *models.DormApplication, note string) error {
	return s.persist(ctx, app, s.machine.DeclinePhaseOne(app, note))
}

func (s *DormService) RequestResubmit(ctx context.Context, app *models.DormApplication, note string) error {
	return s.persist(ctx, app, s.machine.RequestResubmit(app, note))
}

func (s *DormService) ApprovePhaseTwo(ctx context.Context, app *models.DormApplication, note string) error {
	return s.persist(ctx, app, s.machine.ApprovePhaseTwo(app, note))
}

func (s *DormService) DeclinePhaseTwo(ctx context.Context, app *models.DormApplication, note string) error {
	return s.persist(ctx, app, s.machine.DeclinePhaseTwo(app, note))
}

// ApplyAction loads the application and applies a named review action.
// Assignment additionally needs a building and must pass the gate.
func (s *DormService) ApplyAction(ctx context.Context, id string, action workflow.Action, note, building string) (*models.DormApplication, error) {
	app, err := s.Application(ctx, id)
	if err != nil {
		return nil, err
	}
	if action == workflow.ActionAssign {
		if !s.gate.IsReadyForAssignment(app) {
			return nil, ErrNotReadyForAssignment
		}
		if err := s.assign(ctx, app.Student, app, building); err != nil {
			return nil, err
		}
		return app, nil
	}
	t, err := s.machine.Apply(app, action, note)
	if err != nil {
		return nil, invalid(err.Error())
	}
	if err := s.persist(ctx, app, t); err != nil {
		return nil, err
	}
	return app, nil
}

// AssignBuilding records the building on the student and, when the student
// has an application, marks it ASSIGNED. A student without an application
// only gets the building.
func (s *DormService) AssignBuilding(ctx context.Context, student *models.Student, building string) error {
	if student == nil {
		return ErrStudentNotFound
	}
	app, err := s.apps.FindByStudent(ctx, student)
	if err != nil {
		return err
	}
	return s.assign(ctx, student, app, building)
}

func (s *DormService) assign(ctx context.Context, student *models.Student, app *models.DormApplication, building string) error {
	if student == nil {
		return ErrStudentNotFound
	}
	building = strings.TrimSpace(building)
	if building == "" {
		return invalid("Building is required")
	}

	t := s.machine.AssignBuilding(student, app, building)
	if err := s.students.Update(ctx, student); err != nil {
		return err
	}
	if t == nil {
		log.Printf("student %s: building %s recorded without application", student.StudentID, building)
		return nil
	}
	return s.persist(ctx, app, *t)
}

// CanFillPhaseTwo looks up the student's application and asks the gate.
func (s *DormService) CanFillPhaseTwo(ctx context.Context, student *models.Student) (bool, error) {
	app, err := s.apps.FindByStudent(ctx, student)
	if err != nil {
		return false, err
	}
	return s.gate.CanFillPhaseTwo(app), nil
}

func (s *DormService) IsReadyForAssignment(app *models.DormApplication) bool {
	return s.gate.IsReadyForAssignment(app)
}

// ListApplications fetches every application and returns the filtered,
// sorted view staff work from.
func (s *DormService) ListApplications(ctx context.Context, criteria workflow.Criteria) ([]*models.DormApplication, error) {
	apps, err := s.apps.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return workflow.Filter(apps, criteria), nil
}

// DeleteApplication removes an application outside the normal workflow.
func (s *DormService) DeleteApplication(ctx context.Context, id string) error {
	app, err := s.Application(ctx, id)
	if err != nil {
		return err
	}
	if err := s.apps.Delete(ctx, app); err != nil {
		return err
	}
	log.Printf("application %s: deleted", app.ID)
	return nil
}

// Students lists all students, or only those in building when it is set.
func (s *DormService) Students(ctx context.Context, building string) ([]models.Student, error) {
	if building = strings.TrimSpace(building); building != "" {
		return s.students.FindByBuilding(ctx, building)
	}
	return s.students.FindAll(ctx)
}

// StudentByStudentID looks a student up by registration number.
func (s *DormService) StudentByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.students.FindByStudentID(ctx, strings.TrimSpace(studentID))
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

func (s *DormService) StudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

func (s *DormService) StudentByUsername(ctx context.Context, username string) (*models.Student, error) {
	student, err := s.students.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

// UpdateStudentBuilding is the staff edit of the building field alone. It
// does not touch the application; use AssignBuilding for that.
func (s *DormService) UpdateStudentBuilding(ctx context.Context, id, building string) (*models.Student, error) {
	student, err := s.StudentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	student.AssignedBuilding = models.StringPtr(strings.TrimSpace(building))
	if err := s.students.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("update building: %w", err)
	}
	return student, nil
}
