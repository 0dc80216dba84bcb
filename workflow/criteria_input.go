package workflow

import (
	"fmt"
	"strings"

	"dorm-management-api/models"
)

// CriteriaInput is the raw, string-typed form of Criteria as it arrives from
// a query string or form.
type CriteriaInput struct {
	Gender      string `form:"gender"`
	Residency   string `form:"residency"`
	Subcity     string `form:"subcity"`
	Woreda      string `form:"woreda"`
	College     string `form:"college"`
	Sponsorship string `form:"sponsorship"`
	Status      string `form:"status"`
}

// IsAny reports whether value is the "any" sentinel: blank, "all", or one of
// the "All ..." labels ("All Genders", "All Status", ...).
func IsAny(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "" || v == "all" || v == "any" || strings.HasPrefix(v, "all ")
}

// ParseCriteria validates enum values and drops sentinels.
func ParseCriteria(in CriteriaInput) (Criteria, error) {
	var c Criteria

	if !IsAny(in.Gender) {
		g := models.Gender(strings.ToUpper(strings.TrimSpace(in.Gender)))
		if !g.Valid() {
			return Criteria{}, fmt.Errorf("unknown gender %q", in.Gender)
		}
		c.Gender = g
	}
	if !IsAny(in.Residency) {
		r := models.Residency(strings.ToUpper(strings.TrimSpace(in.Residency)))
		if !r.Valid() {
			return Criteria{}, fmt.Errorf("unknown residency %q", in.Residency)
		}
		c.Residency = r
	}
	if !IsAny(in.Subcity) {
		c.Subcity = strings.TrimSpace(in.Subcity)
	}
	if !IsAny(in.Woreda) {
		c.Woreda = strings.TrimSpace(in.Woreda)
	}
	if !IsAny(in.College) {
		acronym := strings.ToUpper(strings.TrimSpace(in.College))
		if _, ok := models.CollegeByAcronym(acronym); !ok {
			return Criteria{}, fmt.Errorf("unknown college %q", in.College)
		}
		c.College = acronym
	}
	if !IsAny(in.Sponsorship) {
		s := models.SponsorshipType(strings.ToUpper(strings.TrimSpace(in.Sponsorship)))
		if !s.Valid() {
			return Criteria{}, fmt.Errorf("unknown sponsorship type %q", in.Sponsorship)
		}
		c.Sponsorship = s
	}
	if !IsAny(in.Status) {
		status, ok := models.LookupApplicationStatus(strings.ToUpper(in.Status))
		if !ok {
			return Criteria{}, fmt.Errorf("unknown status %q", in.Status)
		}
		c.Status = status
	}
	return c, nil
}
