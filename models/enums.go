package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

var Genders = []Gender{GenderMale, GenderFemale}

type Residency string

const (
	ResidencyAddisAbaba   Residency = "ADDIS_ABABA"
	ResidencyOutsideAddis Residency = "OUTSIDE_ADDIS"
)

var Residencies = []Residency{ResidencyAddisAbaba, ResidencyOutsideAddis}

type SponsorshipType string

const (
	SponsorshipGovernment SponsorshipType = "GOVERNMENT_SPONSORED"
	SponsorshipSelf       SponsorshipType = "SELF_SPONSORED"
)

var SponsorshipTypes = []SponsorshipType{SponsorshipGovernment, SponsorshipSelf}

// College is persisted by its enum name and filtered by its acronym.
type College string

const (
	CollegeLaw                  College = "LAW"
	CollegeHealthSciences       College = "HEALTH_SCIENCES"
	CollegeCTBE5Kilo            College = "CTBE_5KILO"
	CollegeCTBELideta           College = "CTBE_LIDETA"
	CollegeEducationLanguage    College = "EDUCATION_LANGUAGE"
	CollegeVeterinaryAgri       College = "VETERINARY_AGRICULTURE"
	CollegeNaturalComputational College = "NATURAL_COMPUTATIONAL"
	CollegeBusinessEconomics    College = "BUSINESS_ECONOMICS"
	CollegeSocialSciences       College = "SOCIAL_SCIENCES"
)

type collegeInfo struct {
	fullName string
	acronym  string
}

var collegeCatalog = map[College]collegeInfo{
	CollegeLaw:                  {"School of Law", "LAW"},
	CollegeHealthSciences:       {"College of Health Sciences", "CHS"},
	CollegeCTBE5Kilo:            {"College of Technology and Built Environment (5 Kilo)", "CTBE-5K"},
	CollegeCTBELideta:           {"College of Technology and Built Environment (Lideta)", "CTBE-LD"},
	CollegeEducationLanguage:    {"College of Education and Language Studies", "CELS"},
	CollegeVeterinaryAgri:       {"College of Veterinary Medicine & Agriculture", "CVMA"},
	CollegeNaturalComputational: {"College of Natural and Computational Sciences", "CNCS"},
	CollegeBusinessEconomics:    {"College of Business and Economics", "CBE"},
	CollegeSocialSciences:       {"College of Social Sciences, Art and Humanities", "CSSAH"},
}

var Colleges = []College{
	CollegeLaw,
	CollegeHealthSciences,
	CollegeCTBE5Kilo,
	CollegeCTBELideta,
	CollegeEducationLanguage,
	CollegeVeterinaryAgri,
	CollegeNaturalComputational,
	CollegeBusinessEconomics,
	CollegeSocialSciences,
}

func (c College) FullName() string { return collegeCatalog[c].fullName }

func (c College) Acronym() string { return collegeCatalog[c].acronym }

// CollegeByAcronym resolves an acronym such as "CBE".
func CollegeByAcronym(acronym string) (College, bool) {
	for _, c := range Colleges {
		if collegeCatalog[c].acronym == acronym {
			return c, true
		}
	}
	return "", false
}

// AddisSubcity is one of the eleven Addis Ababa subcities.
type AddisSubcity struct {
	DisplayName string `json:"display_name"`
	WoredaCount int    `json:"woreda_count"`
}

var AddisSubcities = []AddisSubcity{
	{"Addis Ketema", 14},
	{"Akaki Kaliti", 13},
	{"Arada", 10},
	{"Bole", 15},
	{"Gullele", 10},
	{"Kirkos", 11},
	{"Kolfe Keraniyo", 15},
	{"Lemi Kura", 14},
	{"Lideta", 10},
	{"Nifas Silk Lafto", 15},
	{"Yeka", 13},
}

// FindAddisSubcity matches a display name exactly.
func FindAddisSubcity(name string) (AddisSubcity, bool) {
	for _, sc := range AddisSubcities {
		if sc.DisplayName == name {
			return sc, true
		}
	}
	return AddisSubcity{}, false
}

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleOwner   Role = "OWNER"
	RoleStudent Role = "STUDENT"
)

func scanEnumString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case []byte:
		return strings.TrimSpace(string(v)), nil
	case string:
		return strings.TrimSpace(v), nil
	default:
		return "", fmt.Errorf("unsupported enum column type %T", value)
	}
}

func enumValue(s string) (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	return s, nil
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Scan keeps the legacy rule: an unrecognised non-empty gender reads as MALE.
func (g *Gender) Scan(value interface{}) error {
	s, err := scanEnumString(value)
	if err != nil {
		return err
	}
	switch {
	case s == "":
		*g = ""
	case Gender(s).Valid():
		*g = Gender(s)
	default:
		*g = GenderMale
	}
	return nil
}

func (g Gender) Value() (driver.Value, error) { return enumValue(string(g)) }

func (r Residency) Valid() bool {
	return r == ResidencyAddisAbaba || r == ResidencyOutsideAddis
}

func (r *Residency) Scan(value interface{}) error {
	s, err := scanEnumString(value)
	if err != nil {
		return err
	}
	*r = ""
	if Residency(s).Valid() {
		*r = Residency(s)
	}
	return nil
}

func (r Residency) Value() (driver.Value, error) { return enumValue(string(r)) }

func (s SponsorshipType) Valid() bool {
	return s == SponsorshipGovernment || s == SponsorshipSelf
}

func (s *SponsorshipType) Scan(value interface{}) error {
	v, err := scanEnumString(value)
	if err != nil {
		return err
	}
	*s = ""
	if SponsorshipType(v).Valid() {
		*s = SponsorshipType(v)
	}
	return nil
}

func (s SponsorshipType) Value() (driver.Value, error) { return enumValue(string(s)) }

func (c College) Valid() bool {
	_, ok := collegeCatalog[c]
	return ok
}

func (c *College) Scan(value interface{}) error {
	s, err := scanEnumString(value)
	if err != nil {
		return err
	}
	*c = ""
	if College(s).Valid() {
		*c = College(s)
	}
	return nil
}

func (c College) Value() (driver.Value, error) { return enumValue(string(c)) }

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleOwner || r == RoleStudent
}

// IsStaff reports whether r may review applications.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleOwner
}
