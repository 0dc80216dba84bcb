package services

import (
	"context"
	"errors"
	"testing"

	"dorm-management-api/models"
	"dorm-management-api/workflow"
)

func newTestDormService(students *memStudents, apps *memApps, messenger Messenger, gate workflow.Gate) *DormService {
	svc := NewDormService(students, apps, messenger, workflow.NewStateMachine(clockAt(2025, 2, 10)), gate)
	svc.newID = sequentialIDs("app")
	return svc
}

func outsideAddisInput() PhaseOneInput {
	return PhaseOneInput{
		Sponsorship: models.SponsorshipSelf,
		Residency:   models.ResidencyOutsideAddis,
		City:        " Adama ",
		Subcity:     "Bole",
		Woreda:      "3",
	}
}

func TestSubmitPhaseOneCreatesPendingApplication(t *testing.T) {
	student := &models.Student{ID: "stu-1", Username: "abebe", StudentID: "UGR/1234/15"}
	students := newMemStudents(student)
	apps := newMemApps()
	svc := newTestDormService(students, apps, nil, nil)

	app, err := svc.SubmitPhaseOne(context.Background(), student, outsideAddisInput())
	if err != nil {
		t.Fatalf("SubmitPhaseOne returned error: %v", err)
	}
	if app.ID != "app-1" || app.Status != models.StatusPhaseOnePending {
		t.Fatalf("unexpected application %+v", app)
	}
	if len(app.ResponseHistory) != 0 {
		t.Fatalf("expected empty history, got %v", app.ResponseHistory)
	}
	if app.SubmittedDateString() != "10/02/2025" {
		t.Fatalf("unexpected submitted date %s", app.SubmittedDateString())
	}
	if models.StringValue(student.City) != "Adama" || student.SponsorshipType != models.SponsorshipSelf {
		t.Fatalf("phase one fields not stored on student: %+v", student)
	}
	if student.DisabilityInfo != nil {
		t.Fatalf("blank disability info should stay nil")
	}
	if students.updates != 1 || len(apps.byID) != 1 {
		t.Fatalf("expected one student update and one saved application")
	}
}

func TestSubmitPhaseOneReusesExistingApplication(t *testing.T) {
	student := &models.Student{ID: "stu-1", StudentID: "UGR/1234/15"}
	existing := &models.DormApplication{ID: "app-old", StudentRef: "stu-1", Status: models.StatusPhaseOneResubmit, AdminNote: "fix city"}
	existing.ResponseHistory.Append(models.StatusPhaseOneResubmit, clockAt(2025, 2, 1)())
	apps := newMemApps(existing)
	svc := newTestDormService(newMemStudents(student), apps, nil, nil)

	app, err := svc.SubmitPhaseOne(context.Background(), student, outsideAddisInput())
	if err != nil {
		t.Fatalf("SubmitPhaseOne returned error: %v", err)
	}
	if app.ID != "app-old" || len(apps.byID) != 1 {
		t.Fatalf("expected the existing application to be reused")
	}
	if app.Status != models.StatusPhaseOnePending {
		t.Fatalf("expected PHASE_ONE_PENDING, got %s", app.Status)
	}
	if len(app.ResponseHistory) != 1 {
		t.Fatalf("resubmission must not touch the history, got %v", app.ResponseHistory)
	}
}

func TestSubmitPhaseOneAddisRules(t *testing.T) {
	student := &models.Student{ID: "stu-1"}
	svc := newTestDormService(newMemStudents(student), newMemApps(), nil, nil)
	ctx := context.Background()

	in := PhaseOneInput{Sponsorship: models.SponsorshipGovernment, Residency: models.ResidencyAddisAbaba, Subcity: "Arada", Woreda: "11"}
	if _, err := svc.SubmitPhaseOne(ctx, student, in); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected woreda range error, got %v", err)
	}

	in.Woreda = "10"
	in.City = "Somewhere else"
	if _, err := svc.SubmitPhaseOne(ctx, student, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if models.StringValue(student.City) != "Addis Ababa" {
		t.Fatalf("expected city forced to Addis Ababa, got %q", models.StringValue(student.City))
	}
}

func TestPhaseOneValidationMessages(t *testing.T) {
	cases := []struct {
		in   PhaseOneInput
		want string
	}{
		{PhaseOneInput{Residency: models.ResidencyOutsideAddis}, "Sponsorship and Residency are required"},
		{PhaseOneInput{Sponsorship: models.SponsorshipSelf, Residency: models.ResidencyAddisAbaba}, "Please select subcity and woreda"},
		{PhaseOneInput{Sponsorship: models.SponsorshipSelf, Residency: models.ResidencyOutsideAddis, City: "Adama"}, "City, Subcity and Woreda are required"},
		{PhaseOneInput{Sponsorship: models.SponsorshipSelf, Residency: models.ResidencyOutsideAddis, City: "Adama", Subcity: "X", Woreda: "abc"}, "Woreda must be a valid positive number"},
		{PhaseOneInput{Sponsorship: models.SponsorshipSelf, Residency: models.ResidencyOutsideAddis, City: "Adama", Subcity: "X", Woreda: "0"}, "Woreda must be a positive number"},
	}
	for _, tc := range cases {
		_, err := tc.in.Normalize()
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Message != tc.want {
			t.Fatalf("expected %q, got %v", tc.want, err)
		}
	}
}

func TestSubmitPhaseTwoWithoutApplicationIsNoOp(t *testing.T) {
	student := &models.Student{ID: "stu-1", SponsorshipType: models.SponsorshipGovernment}
	students := newMemStudents(student)
	apps := newMemApps()
	svc := newTestDormService(students, apps, nil, nil)

	app, err := svc.SubmitPhaseTwo(context.Background(), student, PhaseTwoInput{EmergencyContactName: "Almaz", EmergencyContactPhone: "0911"})
	if err != nil || app != nil {
		t.Fatalf("expected silent no-op, got %v %v", app, err)
	}
	if students.updates != 1 || apps.updates != 0 {
		t.Fatalf("expected only the student to be saved")
	}
}

func TestSubmitPhaseTwoRequiresTransactionForSelfSponsored(t *testing.T) {
	student := &models.Student{ID: "stu-1", SponsorshipType: models.SponsorshipSelf}
	svc := newTestDormService(newMemStudents(student), newMemApps(), nil, nil)

	_, err := svc.SubmitPhaseTwo(context.Background(), student, PhaseTwoInput{EmergencyContactName: "Almaz", EmergencyContactPhone: "0911"})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Message != "Transaction ID is required for self-sponsored students" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestLifecycleThroughService(t *testing.T) {
	ctx := context.Background()
	student := &models.Student{ID: "stu-1", Username: "abebe", StudentID: "UGR/1234/15", DisplayName: "Abebe"}
	apps := newMemApps()
	svc := newTestDormService(newMemStudents(student), apps, nil, nil)

	app, err := svc.SubmitPhaseOne(ctx, student, outsideAddisInput())
	if err != nil {
		t.Fatalf("SubmitPhaseOne: %v", err)
	}
	if ok, _ := svc.CanFillPhaseTwo(ctx, student); ok {
		t.Fatalf("phase two must be closed while pending")
	}

	if err := svc.ApprovePhaseOne(ctx, app, "ok"); err != nil {
		t.Fatalf("ApprovePhaseOne: %v", err)
	}
	if app.AdminNote != "ok" || app.ResponseHistory.Encode() != "10/02/2025_PHASE_ONE_APPROVED" {
		t.Fatalf("unexpected state after approval: %q %q", app.AdminNote, app.ResponseHistory.Encode())
	}
	if ok, _ := svc.CanFillPhaseTwo(ctx, student); !ok {
		t.Fatalf("phase two should be open after approval")
	}

	if _, err := svc.SubmitPhaseTwo(ctx, student, PhaseTwoInput{EmergencyContactName: "Almaz", EmergencyContactPhone: "0911", TransactionID: "TX1"}); err != nil {
		t.Fatalf("SubmitPhaseTwo: %v", err)
	}
	if app.Status != models.StatusPhaseTwoPending || !svc.IsReadyForAssignment(app) {
		t.Fatalf("expected pending phase two ready for assignment, got %s", app.Status)
	}

	if err := svc.AssignBuilding(ctx, student, "Block A"); err != nil {
		t.Fatalf("AssignBuilding: %v", err)
	}
	if student.Building() != "Block A" || app.Status != models.StatusAssigned {
		t.Fatalf("unexpected assignment result %q %s", student.Building(), app.Status)
	}
	if len(app.ResponseHistory) != 2 || app.AdminNote != "" {
		t.Fatalf("expected second history entry and cleared note, got %v %q", app.ResponseHistory, app.AdminNote)
	}
}

func TestAssignBuildingWithoutApplicationOnlyUpdatesStudent(t *testing.T) {
	student := &models.Student{ID: "stu-1"}
	students := newMemStudents(student)
	apps := newMemApps()
	svc := newTestDormService(students, apps, nil, nil)

	if err := svc.AssignBuilding(context.Background(), student, "Block C"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if student.Building() != "Block C" || apps.updates != 0 {
		t.Fatalf("expected only the student to change")
	}
}

func TestApplyActionAssignConsultsGate(t *testing.T) {
	student := &models.Student{ID: "stu-1"}
	app := &models.DormApplication{ID: "app-1", StudentRef: "stu-1", Status: models.StatusPhaseTwoPending, Student: student}
	ctx := context.Background()

	strict := newTestDormService(newMemStudents(student), newMemApps(app), nil, workflow.StrictGate{})
	if _, err := strict.ApplyAction(ctx, "app-1", workflow.ActionAssign, "", "Block A"); !errors.Is(err, ErrNotReadyForAssignment) {
		t.Fatalf("strict gate should refuse, got %v", err)
	}

	permissive := newTestDormService(newMemStudents(student), newMemApps(app), nil, nil)
	if _, err := permissive.ApplyAction(ctx, "app-1", workflow.ActionAssign, "", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected building required, got %v", err)
	}
	got, err := permissive.ApplyAction(ctx, "app-1", workflow.ActionAssign, "", "Block A")
	if err != nil || got.Status != models.StatusAssigned {
		t.Fatalf("expected assignment, got %v %v", got, err)
	}
}

func TestApplyActionReviewAndMissing(t *testing.T) {
	app := &models.DormApplication{ID: "app-1", StudentRef: "stu-1", Status: models.StatusPhaseOnePending}
	apps := newMemApps(app)
	svc := newTestDormService(newMemStudents(), apps, nil, nil)
	ctx := context.Background()

	got, err := svc.ApplyAction(ctx, "app-1", workflow.ActionApprovePhaseTwo, "skip ahead", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.StatusPhaseTwoApproved || apps.updates != 1 {
		t.Fatalf("expected unguarded jump to PHASE_TWO_APPROVED, got %s", got.Status)
	}
	if _, err := svc.ApplyAction(ctx, "nope", workflow.ActionApprovePhaseOne, "", ""); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
	if _, err := svc.ApplyAction(ctx, "app-1", workflow.Action("archive"), "", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for unknown action, got %v", err)
	}
}

func TestListApplicationsFiltersAndSorts(t *testing.T) {
	male := &models.Student{ID: "s1", Gender: models.GenderMale}
	female := &models.Student{ID: "s2", Gender: models.GenderFemale}
	d1, _ := models.ParseDate("15/01/2025")
	d2, _ := models.ParseDate("01/01/2025")
	a1 := &models.DormApplication{ID: "a1", Status: models.StatusPhaseOnePending, SubmittedDate: &d1, Student: male}
	a2 := &models.DormApplication{ID: "a2", Status: models.StatusPhaseOnePending, SubmittedDate: &d2, Student: male}
	a3 := &models.DormApplication{ID: "a3", Status: models.StatusPhaseOnePending, SubmittedDate: &d2, Student: female}
	svc := newTestDormService(newMemStudents(), newMemApps(a1, a2, a3), nil, nil)

	got, err := svc.ListApplications(context.Background(), workflow.Criteria{Gender: models.GenderMale})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a2" || got[1].ID != "a1" {
		t.Fatalf("unexpected list %v", got)
	}
}

func TestDeleteApplication(t *testing.T) {
	apps := newMemApps(&models.DormApplication{ID: "a1"})
	svc := newTestDormService(newMemStudents(), apps, nil, nil)

	if err := svc.DeleteApplication(context.Background(), "a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps.deleted) != 1 {
		t.Fatalf("expected delete to reach the store")
	}
	if err := svc.DeleteApplication(context.Background(), "a1"); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestStudentLookups(t *testing.T) {
	building := "Block B"
	s1 := &models.Student{ID: "s1", StudentID: "UGR/0001/15", AssignedBuilding: &building}
	s2 := &models.Student{ID: "s2", StudentID: "UGR/0002/15"}
	svc := newTestDormService(newMemStudents(s1, s2), newMemApps(), nil, nil)
	ctx := context.Background()

	if got, _ := svc.Students(ctx, "Block B"); len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("unexpected building filter result %v", got)
	}
	if got, _ := svc.Students(ctx, ""); len(got) != 2 {
		t.Fatalf("expected all students")
	}
	if _, err := svc.StudentByStudentID(ctx, "UGR/9999/15"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	updated, err := svc.UpdateStudentBuilding(ctx, "s2", " Block D ")
	if err != nil || updated.Building() != "Block D" {
		t.Fatalf("unexpected update result %v %v", updated, err)
	}
}
