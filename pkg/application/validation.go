package application

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// \p{Z} widens RE2's ASCII-only \s to Unicode separators such as NBSP.
	emailPattern = regexp.MustCompile(`^[^\p{Z}\s@]+@[^\p{Z}\s@]+\.[^\p{Z}\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\p{Z}\s.]?[0-9]{3}[-\p{Z}\s.]?[0-9]{4,6}$`)
)

const (
	MessageFullName   = "Please enter your full name."
	MessageEmail      = "Please enter a valid email address."
	MessagePhone      = "Please enter a valid phone number."
	MessageAddress    = "Please provide your full address."
	MessageAgreeTerms = "You must agree to the terms and conditions."
)

const (
	minFullNameLength = 3
	minAddressLength  = 5
)

// ValidateField returns the error message for value, or an empty string
// when the value is acceptable. Fields without constraints always pass.
// agreeTerms values are parsed as booleans ("true", "1", "on").
func ValidateField(name FieldName, value string) string {
	switch name {
	case FieldFullName:
		if trimmedLen(value) < minFullNameLength {
			return MessageFullName
		}
	case FieldEmail:
		if value == "" || !emailPattern.MatchString(value) {
			return MessageEmail
		}
	case FieldPhone:
		if value != "" && !phonePattern.MatchString(value) {
			return MessagePhone
		}
	case FieldAddress:
		if trimmedLen(value) < minAddressLength {
			return MessageAddress
		}
	case FieldAgreeTerms:
		return ValidateTerms(ParseTerms(value))
	}
	return ""
}

// ValidateTerms checks the terms acceptance flag.
func ValidateTerms(agreed bool) string {
	if !agreed {
		return MessageAgreeTerms
	}
	return ""
}

func trimmedLen(value string) int {
	return utf8.RuneCountInString(strings.TrimSpace(value))
}
