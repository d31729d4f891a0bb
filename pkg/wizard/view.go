package wizard

import (
	"strings"

	"github.com/goliatone/go-jobform/pkg/application"
)

// NotProvided is shown on the review step for empty values.
const NotProvided = "Not Provided"

const (
	fallbackName  = "Applicant"
	fallbackEmail = "your provided email"
)

// ViewKind tags the View variants.
type ViewKind string

const (
	ViewPersonal   ViewKind = "personal"
	ViewExperience ViewKind = "experience"
	ViewReview     ViewKind = "review"
	ViewSubmitted  ViewKind = "submitted"
)

// View is the closed set of things the form can display: one variant per
// step plus the terminal confirmation.
type View interface {
	Kind() ViewKind
	isView()
}

// Header is one clickable step header.
type Header struct {
	Step   Step
	Label  string
	Active bool
}

// Frame is the chrome shared by the step views.
type Frame struct {
	Step       Step
	Headers    []Header
	Errors     application.FieldErrors
	CanRetreat bool
	IsLast     bool
}

// Error returns the message recorded for name, if any.
func (f Frame) Error(name application.FieldName) string {
	return f.Errors.Message(name)
}

// PersonalView renders the contact details step.
type PersonalView struct {
	Frame
	FullName string
	Email    string
	Phone    string
	Address  string
}

// ExperienceView renders the work experience step.
type ExperienceView struct {
	Frame
	JobTitle        string
	Company         string
	YearsExperience application.Experience
	Skills          string
	Options         []application.Experience
}

// ReviewRow is one reviewed value.
type ReviewRow struct {
	Field    application.FieldName
	Label    string
	Value    string
	Provided bool
}

// ReviewSection groups the rows of one step.
type ReviewSection struct {
	Title string
	Rows  []ReviewRow
}

// ReviewView renders the read-only summary and the terms checkbox.
type ReviewView struct {
	Frame
	Sections   []ReviewSection
	AgreeTerms bool
}

// SubmittedView is the terminal confirmation.
type SubmittedView struct {
	FullName string
	Email    string
}

func (PersonalView) Kind() ViewKind   { return ViewPersonal }
func (ExperienceView) Kind() ViewKind { return ViewExperience }
func (ReviewView) Kind() ViewKind     { return ViewReview }
func (SubmittedView) Kind() ViewKind  { return ViewSubmitted }

func (PersonalView) isView()   {}
func (ExperienceView) isView() {}
func (ReviewView) isView()     {}
func (SubmittedView) isView()  {}

// Name returns the applicant name or the generic fallback.
func (v SubmittedView) Name() string {
	if v.FullName == "" {
		return fallbackName
	}
	return v.FullName
}

// ContactEmail returns the email or the generic fallback.
func (v SubmittedView) ContactEmail() string {
	if v.Email == "" {
		return fallbackEmail
	}
	return v.Email
}

// Title is the confirmation heading.
func (SubmittedView) Title() string {
	return "Application Submitted Successfully!"
}

// Greeting thanks the applicant by name.
func (v SubmittedView) Greeting() string {
	return "Thank you, " + v.Name() + ". Your application has been received."
}

// ContactLine tells the applicant how they will be contacted.
func (v SubmittedView) ContactLine() string {
	return "We will contact you via email (" + v.ContactEmail() + ") if shortlisted."
}

func buildView(step Step, form *Form, shell *Shell) View {
	fields := form.Fields()
	if form.Submitted() {
		return SubmittedView{FullName: fields.FullName, Email: fields.Email}
	}

	frame := Frame{
		Step:       step,
		Headers:    headers(step),
		Errors:     form.Errors(),
		CanRetreat: shell.CanRetreat(),
		IsLast:     shell.IsLast(),
	}

	switch step {
	case StepExperience:
		return ExperienceView{
			Frame:           frame,
			JobTitle:        fields.JobTitle,
			Company:         fields.Company,
			YearsExperience: fields.YearsExperience,
			Skills:          fields.Skills,
			Options:         application.ExperienceOptions(),
		}
	case StepReview:
		return ReviewView{
			Frame:      frame,
			Sections:   reviewSections(fields),
			AgreeTerms: form.AgreeTerms(),
		}
	default:
		return PersonalView{
			Frame:    frame,
			FullName: fields.FullName,
			Email:    fields.Email,
			Phone:    fields.Phone,
			Address:  fields.Address,
		}
	}
}

func headers(active Step) []Header {
	steps := Steps()
	out := make([]Header, 0, len(steps))
	for _, step := range steps {
		out = append(out, Header{Step: step, Label: step.Header(), Active: step == active})
	}
	return out
}

func reviewSections(fields application.Fields) []ReviewSection {
	row := func(name application.FieldName, label, value string) ReviewRow {
		if value == "" {
			return ReviewRow{Field: name, Label: label, Value: NotProvided}
		}
		return ReviewRow{Field: name, Label: label, Value: value, Provided: true}
	}
	return []ReviewSection{
		{
			Title: "Personal Information",
			Rows: []ReviewRow{
				row(application.FieldFullName, "Full Name", fields.FullName),
				row(application.FieldEmail, "Email", fields.Email),
				row(application.FieldPhone, "Phone", fields.Phone),
				row(application.FieldAddress, "Address", fields.Address),
			},
		},
		{
			Title: "Experience & Skills",
			Rows: []ReviewRow{
				row(application.FieldJobTitle, "Job Title", fields.JobTitle),
				row(application.FieldCompany, "Company", fields.Company),
				row(application.FieldYearsExperience, "Years of Experience", string(fields.YearsExperience)),
				row(application.FieldSkills, "Skills", strings.Join(fields.SkillList(), ", ")),
			},
		},
	}
}
