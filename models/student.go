package models

// Student is the applicant. Optional attributes stay nil until Phase One or
// Phase Two fills them in.
type Student struct {
	ID                    string          `gorm:"primaryKey;column:id" json:"id"`
	Username              string          `gorm:"column:username;unique" json:"username"`
	Password              string          `gorm:"column:password" json:"-"`
	Role                  Role            `gorm:"column:role;type:varchar(32)" json:"role"`
	DisplayName           string          `gorm:"column:displayName" json:"display_name"`
	StudentID             string          `gorm:"column:studentId;unique" json:"student_id"`
	Email                 *string         `gorm:"column:email" json:"email,omitempty"`
	Gender                Gender          `gorm:"column:gender;type:varchar(32)" json:"gender,omitempty"`
	College               College         `gorm:"column:college;type:varchar(32)" json:"college,omitempty"`
	Residency             Residency       `gorm:"column:residency;type:varchar(32)" json:"residency,omitempty"`
	City                  *string         `gorm:"column:city" json:"city,omitempty"`
	Subcity               *string         `gorm:"column:subcity" json:"subcity,omitempty"`
	Woreda                *string         `gorm:"column:woreda" json:"woreda,omitempty"`
	SponsorshipType       SponsorshipType `gorm:"column:sponsorshipType;type:varchar(32)" json:"sponsorship_type,omitempty"`
	DisabilityInfo        *string         `gorm:"column:disabilityInfo" json:"disability_info,omitempty"`
	EmergencyContactName  *string         `gorm:"column:emergencyContactName" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string         `gorm:"column:emergencyContactPhone" json:"emergency_contact_phone,omitempty"`
	TransactionID         *string         `gorm:"column:transactionId" json:"transaction_id,omitempty"`
	AssignedBuilding      *string         `gorm:"column:assignedBuilding" json:"assigned_building,omitempty"`
}

func (Student) TableName() string {
	return "Student"
}

// Building returns the assigned building or "".
func (s *Student) Building() string {
	if s == nil || s.AssignedBuilding == nil {
		return ""
	}
	return *s.AssignedBuilding
}

// StringPtr returns nil for "" so that blank form values persist as NULL.
func StringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
