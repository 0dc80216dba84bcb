package models

import (
	"encoding/json"
	"time"
)

// DormApplication is the single housing request a student owns.
type DormApplication struct {
	ID              string            `gorm:"primaryKey;column:id" json:"id"`
	StudentRef      string            `gorm:"column:studentId;uniqueIndex" json:"student_ref"`
	Status          ApplicationStatus `gorm:"column:status;type:varchar(32)" json:"status"`
	AdminNote       string            `gorm:"column:adminNote" json:"admin_note"`
	SubmittedDate   *time.Time        `gorm:"column:submittedDate;type:date" json:"-"`
	ResponseHistory ResponseHistory   `gorm:"column:responseHistory;type:text" json:"response_history"`

	// Relations
	Student *Student `gorm:"foreignKey:StudentRef;references:ID" json:"student,omitempty"`
}

func (DormApplication) TableName() string {
	return "dorm_applications"
}

// NewDormApplication starts a Phase One application dated on the day of now.
func NewDormApplication(id string, student *Student, now time.Time) *DormApplication {
	submitted := Today(now)
	app := &DormApplication{
		ID:              id,
		Status:          StatusPhaseOnePending,
		SubmittedDate:   &submitted,
		ResponseHistory: ResponseHistory{},
		Student:         student,
	}
	if student != nil {
		app.StudentRef = student.ID
	}
	return app
}

// SubmittedDateString is the dd/MM/yyyy form of SubmittedDate, or "" when unset.
func (a *DormApplication) SubmittedDateString() string {
	return FormatDatePtr(a.SubmittedDate)
}

// LatestResponse returns the most recent history token, or "".
func (a *DormApplication) LatestResponse() string {
	return a.ResponseHistory.LatestString()
}

// MarshalJSON exposes the submitted date in its dd/MM/yyyy form.
func (a DormApplication) MarshalJSON() ([]byte, error) {
	type alias DormApplication
	return json.Marshal(struct {
		alias
		SubmittedDate  string `json:"submitted_date,omitempty"`
		LatestResponse string `json:"latest_response,omitempty"`
	}{
		alias:          alias(a),
		SubmittedDate:  a.SubmittedDateString(),
		LatestResponse: a.LatestResponse(),
	})
}
