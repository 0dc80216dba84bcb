package services

import (
	"fmt"
	"strconv"
	"strings"

	"dorm-management-api/models"
	"dorm-management-api/utils"
)

const addisAbabaCity = "Addis Ababa"

// PhaseOneInput is what a student fills in for Phase One.
type PhaseOneInput struct {
	Sponsorship    models.SponsorshipType `json:"sponsorship_type"`
	Residency      models.Residency       `json:"residency"`
	City           string                 `json:"city"`
	Subcity        string                 `json:"subcity"`
	Woreda         string                 `json:"woreda"`
	DisabilityInfo string                 `json:"disability_info"`
}

// PhaseTwoInput is what a student fills in for Phase Two.
type PhaseTwoInput struct {
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	TransactionID         string `json:"transaction_id"`
}

// Normalize trims every field and checks the Phase One rules. Addis Ababa
// residents pick one of the known subcities and a woreda within its range;
// the city is forced to Addis Ababa.
func (in PhaseOneInput) Normalize() (PhaseOneInput, error) {
	out := PhaseOneInput{
		Sponsorship:    models.SponsorshipType(strings.ToUpper(strings.TrimSpace(string(in.Sponsorship)))),
		Residency:      models.Residency(strings.ToUpper(strings.TrimSpace(string(in.Residency)))),
		City:           utils.SanitizeInput(in.City),
		Subcity:        utils.SanitizeInput(in.Subcity),
		Woreda:         utils.SanitizeInput(in.Woreda),
		DisabilityInfo: utils.SanitizeInput(in.DisabilityInfo),
	}

	if out.Sponsorship == "" || out.Residency == "" {
		return out, invalid("Sponsorship and Residency are required")
	}
	if !out.Sponsorship.Valid() {
		return out, invalid(fmt.Sprintf("Unknown sponsorship type %q", in.Sponsorship))
	}
	if !out.Residency.Valid() {
		return out, invalid(fmt.Sprintf("Unknown residency %q", in.Residency))
	}

	if out.Residency == models.ResidencyAddisAbaba {
		if out.Subcity == "" || out.Woreda == "" {
			return out, invalid("Please select subcity and woreda")
		}
		subcity, ok := models.FindAddisSubcity(out.Subcity)
		if !ok {
			return out, invalid(fmt.Sprintf("Unknown Addis Ababa subcity %q", out.Subcity))
		}
		n, err := strconv.Atoi(out.Woreda)
		if err != nil || n < 1 || n > subcity.WoredaCount {
			return out, invalid(fmt.Sprintf("Woreda must be between 1 and %d for %s", subcity.WoredaCount, subcity.DisplayName))
		}
		out.City = addisAbabaCity
		out.Woreda = strconv.Itoa(n)
		return out, nil
	}

	if out.City == "" || out.Subcity == "" || out.Woreda == "" {
		return out, invalid("City, Subcity and Woreda are required")
	}
	n, err := strconv.Atoi(out.Woreda)
	if err != nil {
		return out, invalid("Woreda must be a valid positive number")
	}
	if n <= 0 {
		return out, invalid("Woreda must be a positive number")
	}
	return out, nil
}

// Normalize trims the Phase Two fields. The transaction id is only required
// for self-sponsored students.
func (in PhaseTwoInput) Normalize(sponsorship models.SponsorshipType) (PhaseTwoInput, error) {
	out := PhaseTwoInput{
		EmergencyContactName:  utils.SanitizeInput(in.EmergencyContactName),
		EmergencyContactPhone: utils.SanitizeInput(in.EmergencyContactPhone),
		TransactionID:         utils.SanitizeInput(in.TransactionID),
	}
	if out.EmergencyContactName == "" || out.EmergencyContactPhone == "" {
		return out, invalid("Emergency contact name and phone are required")
	}
	if sponsorship == models.SponsorshipSelf && out.TransactionID == "" {
		return out, invalid("Transaction ID is required for self-sponsored students")
	}
	return out, nil
}

// CanEditPhaseOne reports whether a student may (re)submit Phase One: no
// application yet, or one still pending or sent back for resubmission.
func CanEditPhaseOne(app *models.DormApplication) bool {
	if app == nil {
		return true
	}
	return app.Status == models.StatusPhaseOnePending || app.Status == models.StatusPhaseOneResubmit
}
