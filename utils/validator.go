// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

var studentIDPattern = regexp.MustCompile(`^[A-Z]{3}/\d{4}/\d{2}$`)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 6 {
		return false, "Password must be at least 6 characters"
	}

	return true, ""
}

// NormalizeStudentID trims and upper-cases a student id.
func NormalizeStudentID(studentID string) string {
	return strings.ToUpper(strings.TrimSpace(studentID))
}

// IsValidStudentID matches the generic ABC/1234/12 shape.
func IsValidStudentID(studentID string) bool {
	return studentIDPattern.MatchString(strings.TrimSpace(studentID))
}

// ValidateStudentIDFormat checks the registration format UGR/XXXX/YY and
// returns a message describing the first problem, or "" when valid.
func ValidateStudentIDFormat(studentID string) string {
	if studentID == "" {
		return "Student ID cannot be empty"
	}
	if len(studentID) != 11 {
		return "Student ID must be exactly 11 characters (format: UGR/XXXX/YY)"
	}
	if studentID[:4] != "UGR/" {
		return "Student ID must start with 'UGR/'"
	}
	if !allDigits(studentID[4:8]) {
		return "Student ID must have 4 digits after 'UGR/' (format: UGR/XXXX/YY)"
	}
	if studentID[8] != '/' {
		return "Student ID must have '/' after the 4 digits (format: UGR/XXXX/YY)"
	}
	if !allDigits(studentID[9:11]) {
		return "Student ID must end with 2 digits for year (format: UGR/XXXX/YY)"
	}
	return ""
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
