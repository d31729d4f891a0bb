package application

// InputKind selects the control a front end uses for a field.
type InputKind string

const (
	InputText     InputKind = "text"
	InputEmail    InputKind = "email"
	InputTel      InputKind = "tel"
	InputTextArea InputKind = "textarea"
	InputSelect   InputKind = "select"
	InputCheckbox InputKind = "checkbox"
)

// FieldSpec carries the static presentation metadata for a field.
type FieldSpec struct {
	Name        FieldName
	Label       string
	Kind        InputKind
	Required    bool
	Placeholder string
	Rows        int

	// Step is the index of the section that owns the field.
	Step int
	// ValidateOnBlur marks fields whose errors are recomputed when the input
	// loses focus.
	ValidateOnBlur bool
}

var fieldSpecs = []FieldSpec{
	{Name: FieldFullName, Label: "Full Name", Kind: InputText, Required: true, Step: 0, ValidateOnBlur: true},
	{Name: FieldEmail, Label: "Email Address", Kind: InputEmail, Required: true, Step: 0, ValidateOnBlur: true},
	{Name: FieldPhone, Label: "Phone Number (Optional)", Kind: InputTel, Step: 0, ValidateOnBlur: true},
	{Name: FieldAddress, Label: "Address", Kind: InputTextArea, Required: true, Rows: 3, Step: 0, ValidateOnBlur: true},
	{Name: FieldJobTitle, Label: "Most Recent Job Title", Kind: InputText, Step: 1},
	{Name: FieldCompany, Label: "Company Name", Kind: InputText, Step: 1},
	{Name: FieldYearsExperience, Label: "Years of Relevant Experience", Kind: InputSelect, Step: 1},
	{Name: FieldSkills, Label: "Key Skills (comma-separated)", Kind: InputTextArea, Rows: 4, Placeholder: "e.g., React, Node.js, Agile", Step: 1},
	{Name: FieldAgreeTerms, Label: "I confirm that the information provided is accurate and I agree to the company's terms and conditions.", Kind: InputCheckbox, Required: true, Step: 2},
}

// Specs returns the metadata for every field in form order.
func Specs() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

// SpecsForStep returns the fields owned by step in form order.
func SpecsForStep(step int) []FieldSpec {
	var out []FieldSpec
	for _, spec := range fieldSpecs {
		if spec.Step == step {
			out = append(out, spec)
		}
	}
	return out
}

// Spec looks up the metadata for name.
func Spec(name FieldName) (FieldSpec, bool) {
	for _, spec := range fieldSpecs {
		if spec.Name == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}
