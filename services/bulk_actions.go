package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"dorm-management-api/models"
)

const maxNoticeLength = 80

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// BulkResult reports what a bulk review action did. Skipped holds one line
// per application left untouched.
type BulkResult struct {
	Affected int      `json:"affected"`
	Skipped  []string `json:"skipped"`
	Message  string   `json:"message"`
}

func (r *BulkResult) skip(app *models.DormApplication) {
	name := app.ID
	if app.Student != nil && app.Student.DisplayName != "" {
		name = app.Student.DisplayName
	}
	r.Skipped = append(r.Skipped, fmt.Sprintf("%s (%s)", name, app.Status))
}

func (s *DormService) selected(ctx context.Context, ids []string) ([]*models.DormApplication, error) {
	if len(ids) == 0 {
		return nil, ErrNothingSelected
	}
	apps, err := s.apps.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, ErrApplicationNotFound
	}
	return apps, nil
}

// BulkApprove approves Phase One for applications still in Phase One and
// Phase Two for those pending or declined in Phase Two.
func (s *DormService) BulkApprove(ctx context.Context, ids []string, note string) (*BulkResult, error) {
	apps, err := s.selected(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := &BulkResult{}
	for _, app := range apps {
		switch app.Status {
		case models.StatusPhaseOnePending, models.StatusPhaseOneDeclined, models.StatusPhaseOneResubmit:
			err = s.ApprovePhaseOne(ctx, app, note)
		case models.StatusPhaseTwoPending, models.StatusPhaseTwoDeclined:
			err = s.ApprovePhaseTwo(ctx, app, note)
		default:
			res.skip(app)
			continue
		}
		if err != nil {
			return res, err
		}
		res.Affected++
	}
	res.Message = fmt.Sprintf("Approved %d applications", res.Affected)
	return res, nil
}

// BulkDecline declines in whichever phase the application currently is.
func (s *DormService) BulkDecline(ctx context.Context, ids []string, note string) (*BulkResult, error) {
	apps, err := s.selected(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := &BulkResult{}
	for _, app := range apps {
		switch app.Status {
		case models.StatusPhaseOnePending, models.StatusPhaseOneApproved, models.StatusPhaseOneResubmit:
			err = s.DeclinePhaseOne(ctx, app, note)
		case models.StatusPhaseTwoPending, models.StatusPhaseTwoApproved:
			err = s.DeclinePhaseTwo(ctx, app, note)
		default:
			res.skip(app)
			continue
		}
		if err != nil {
			return res, err
		}
		res.Affected++
	}
	res.Message = fmt.Sprintf("Declined %d applications", res.Affected)
	return res, nil
}

// ResubmitNotice is the message queued to a student asked to resubmit.
func ResubmitNotice(reason string) string {
	msg := lineBreaks.ReplaceAllString("Resubmit required: "+reason, " ")
	if runes := []rune(msg); len(runes) > maxNoticeLength {
		msg = string(runes[:maxNoticeLength-3]) + "..."
	}
	return msg
}

// BulkRequestResubmit sends Phase One applications back with reason as the
// note and queues a notice to each student from sender.
func (s *DormService) BulkRequestResubmit(ctx context.Context, ids []string, reason, sender string) (*BulkResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrNoteRequired
	}
	apps, err := s.selected(ctx, ids)
	if err != nil {
		return nil, err
	}
	notice := ResubmitNotice(reason)
	res := &BulkResult{}
	for _, app := range apps {
		switch app.Status {
		case models.StatusPhaseOnePending, models.StatusPhaseOneDeclined, models.StatusPhaseOneApproved:
		default:
			res.skip(app)
			continue
		}
		if err := s.RequestResubmit(ctx, app, reason); err != nil {
			return res, err
		}
		res.Affected++
		if s.messenger == nil || app.Student == nil {
			continue
		}
		if _, err := s.messenger.Send(ctx, sender, app.Student.Username, notice); err != nil {
			log.Printf("application %s: resubmit notice to %s failed: %v", app.ID, app.Student.Username, err)
		}
	}
	res.Message = fmt.Sprintf("Requested %d student(s) to resubmit. Messages sent.", res.Affected)
	return res, nil
}

// BulkAssign assigns building to every selected application the gate marks
// ready and lists the rest.
func (s *DormService) BulkAssign(ctx context.Context, ids []string, building string) (*BulkResult, error) {
	building = strings.TrimSpace(building)
	if len(ids) == 0 || building == "" {
		return nil, invalid("Select applications and enter building")
	}
	apps, err := s.selected(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := &BulkResult{}
	for _, app := range apps {
		if !s.gate.IsReadyForAssignment(app) || app.Student == nil {
			res.skip(app)
			continue
		}
		if err := s.assign(ctx, app.Student, app, building); err != nil {
			return res, err
		}
		res.Affected++
	}

	switch {
	case res.Affected > 0 && len(res.Skipped) == 0:
		res.Message = fmt.Sprintf("Assigned %d student(s) to %s", res.Affected, building)
	case res.Affected > 0:
		res.Message = fmt.Sprintf("Assigned %d student(s) to %s. Could not assign %d student(s) - Phase 2 not completed", res.Affected, building, len(res.Skipped))
	default:
		res.Message = "No students were assigned. Selected students have not completed Phase 2"
	}
	return res, nil
}
