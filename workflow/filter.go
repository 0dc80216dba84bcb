package workflow

import (
	"sort"
	"strings"

	"dorm-management-api/models"
)

// Criteria holds optional filters. A zero field matches everything.
type Criteria struct {
	Gender      models.Gender
	Residency   models.Residency
	Subcity     string
	Woreda      string
	College     string // acronym, e.g. "CBE"
	Sponsorship models.SponsorshipType
	Status      models.ApplicationStatus
}

// IsEmpty reports whether no filter is set.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}

// Matches reports whether app satisfies every set criterion. A student field
// that is unset never matches a set criterion.
func (c Criteria) Matches(app *models.DormApplication) bool {
	if app == nil {
		return false
	}
	if c.Status != "" && app.Status != c.Status {
		return false
	}

	s := app.Student
	if s == nil {
		return c.Gender == "" && c.Residency == "" && c.Subcity == "" &&
			c.Woreda == "" && c.College == "" && c.Sponsorship == ""
	}
	if c.Gender != "" && s.Gender != c.Gender {
		return false
	}
	if c.Residency != "" && s.Residency != c.Residency {
		return false
	}
	if c.Subcity != "" && (s.Subcity == nil || !strings.EqualFold(*s.Subcity, c.Subcity)) {
		return false
	}
	if c.Woreda != "" && (s.Woreda == nil || *s.Woreda != c.Woreda) {
		return false
	}
	if c.College != "" && (s.College == "" || s.College.Acronym() != c.College) {
		return false
	}
	if c.Sponsorship != "" && s.SponsorshipType != c.Sponsorship {
		return false
	}
	return true
}

// Filter returns the matching applications in display order. The input slice
// is left untouched.
func Filter(apps []*models.DormApplication, c Criteria) []*models.DormApplication {
	out := make([]*models.DormApplication, 0, len(apps))
	for _, app := range apps {
		if c.Matches(app) {
			out = append(out, app)
		}
	}
	Sort(out)
	return out
}

// Sort orders apps in place: unassigned before ASSIGNED, then by the
// dd/MM/yyyy submitted date compared as text, undated last. Ties keep their
// input order.
func Sort(apps []*models.DormApplication) {
	sort.SliceStable(apps, func(i, j int) bool {
		return Compare(apps[i], apps[j]) < 0
	})
}

// Compare is the display comparator used by Sort.
func Compare(a, b *models.DormApplication) int {
	aAssigned := a.Status == models.StatusAssigned
	bAssigned := b.Status == models.StatusAssigned
	switch {
	case aAssigned && !bAssigned:
		return 1
	case !aAssigned && bAssigned:
		return -1
	}

	switch {
	case a.SubmittedDate == nil && b.SubmittedDate == nil:
		return 0
	case a.SubmittedDate == nil:
		return 1
	case b.SubmittedDate == nil:
		return -1
	}
	return strings.Compare(a.SubmittedDateString(), b.SubmittedDateString())
}
