package application

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FieldName identifies a form input. Values match the names posted by the
// HTML renderer and used in JSON payloads.
type FieldName string

const (
	FieldFullName        FieldName = "fullName"
	FieldEmail           FieldName = "email"
	FieldPhone           FieldName = "phone"
	FieldAddress         FieldName = "address"
	FieldJobTitle        FieldName = "jobTitle"
	FieldCompany         FieldName = "company"
	FieldYearsExperience FieldName = "yearsExperience"
	FieldSkills          FieldName = "skills"
	FieldAgreeTerms      FieldName = "agreeTerms"
)

func (n FieldName) String() string { return string(n) }

var (
	// ErrUnknownField is returned when a field name is not part of the form.
	ErrUnknownField = errors.New("application: unknown field")
	// ErrInvalidExperience is returned when a years-of-experience value is
	// not one of the supported buckets.
	ErrInvalidExperience = errors.New("application: invalid experience bucket")
)

// Experience is the bounded choice for years of relevant experience.
type Experience string

const (
	ExperienceUnderOne    Experience = "0-1"
	ExperienceOneToThree  Experience = "1-3"
	ExperienceThreeToFive Experience = "3-5"
	ExperienceFiveToTen   Experience = "5-10"
	ExperienceTenOrMore   Experience = "10+"
)

// DefaultExperience is the bucket selected before any input.
const DefaultExperience = ExperienceUnderOne

var experienceLabels = map[Experience]string{
	ExperienceUnderOne:    "0 - 1 Year",
	ExperienceOneToThree:  "1 - 3 Years",
	ExperienceThreeToFive: "3 - 5 Years",
	ExperienceFiveToTen:   "5 - 10 Years",
	ExperienceTenOrMore:   "10+ Years",
}

// ExperienceOptions lists the buckets in display order.
func ExperienceOptions() []Experience {
	return []Experience{
		ExperienceUnderOne,
		ExperienceOneToThree,
		ExperienceThreeToFive,
		ExperienceFiveToTen,
		ExperienceTenOrMore,
	}
}

// Label returns the human readable option text.
func (e Experience) Label() string {
	if label, ok := experienceLabels[e]; ok {
		return label
	}
	return string(e)
}

// Valid reports whether e is one of the supported buckets.
func (e Experience) Valid() bool {
	_, ok := experienceLabels[e]
	return ok
}

// ParseExperience converts raw input into an Experience bucket.
func ParseExperience(raw string) (Experience, error) {
	value := Experience(strings.TrimSpace(raw))
	if !value.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidExperience, raw)
	}
	return value, nil
}

// Fields holds every value captured by the form. The zero value is not the
// initial form state; use NewFields so YearsExperience carries its default.
type Fields struct {
	FullName        string     `json:"fullName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Address         string     `json:"address"`
	JobTitle        string     `json:"jobTitle"`
	Company         string     `json:"company"`
	YearsExperience Experience `json:"yearsExperience"`
	Skills          string     `json:"skills"`
}

// NewFields returns the initial field values.
func NewFields() Fields {
	return Fields{YearsExperience: DefaultExperience}
}

// Get returns the value stored for name. agreeTerms is not a text field and
// is reported as unknown here.
func (f Fields) Get(name FieldName) (string, error) {
	switch name {
	case FieldFullName:
		return f.FullName, nil
	case FieldEmail:
		return f.Email, nil
	case FieldPhone:
		return f.Phone, nil
	case FieldAddress:
		return f.Address, nil
	case FieldJobTitle:
		return f.JobTitle, nil
	case FieldCompany:
		return f.Company, nil
	case FieldYearsExperience:
		return string(f.YearsExperience), nil
	case FieldSkills:
		return f.Skills, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Set replaces the value stored for name. Values are stored verbatim; only
// the experience selector is constrained to its buckets.
func (f *Fields) Set(name FieldName, value string) error {
	switch name {
	case FieldFullName:
		f.FullName = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldAddress:
		f.Address = value
	case FieldJobTitle:
		f.JobTitle = value
	case FieldCompany:
		f.Company = value
	case FieldYearsExperience:
		bucket, err := ParseExperience(value)
		if err != nil {
			return err
		}
		f.YearsExperience = bucket
	case FieldSkills:
		f.Skills = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Map returns the values keyed by field name.
func (f Fields) Map() map[string]string {
	return map[string]string{
		FieldFullName.String():        f.FullName,
		FieldEmail.String():           f.Email,
		FieldPhone.String():           f.Phone,
		FieldAddress.String():         f.Address,
		FieldJobTitle.String():        f.JobTitle,
		FieldCompany.String():         f.Company,
		FieldYearsExperience.String(): string(f.YearsExperience),
		FieldSkills.String():          f.Skills,
	}
}

// SkillList splits the comma separated skills value, dropping blanks.
func (f Fields) SkillList() []string {
	if strings.TrimSpace(f.Skills) == "" {
		return nil
	}
	parts := strings.Split(f.Skills, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseTerms interprets a checkbox or boolean value. Browsers post "on" for a
// checked box; anything unparsable counts as not agreed.
func ParseTerms(raw string) bool {
	agreed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return strings.EqualFold(strings.TrimSpace(raw), "on")
	}
	return agreed
}
