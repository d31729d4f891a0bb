package vanilla

import (
	"github.com/goliatone/go-jobform/pkg/application"
	"github.com/goliatone/go-jobform/pkg/render"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

// Template contexts are plain maps and slices: the template engine drops
// methods when it normalises data.

func (r *Renderer) formContext(kind wizard.ViewKind, frame wizard.Frame, fields []any, opts render.RenderOptions) map[string]any {
	hidden := make([]any, 0, len(opts.Hidden))
	for _, field := range render.SortedHiddenFields(opts.Hidden) {
		hidden = append(hidden, map[string]any{"name": field.Name, "value": field.Value})
	}

	headers := make([]any, 0, len(frame.Headers))
	for _, header := range frame.Headers {
		headers = append(headers, map[string]any{
			"step":   int(header.Step),
			"label":  header.Label,
			"active": header.Active,
		})
	}

	return map[string]any{
		"kind":       string(kind),
		"action":     opts.Action,
		"hidden":     hidden,
		"headers":    headers,
		"step":       int(frame.Step),
		"stepTitle":  frame.Step.Title(),
		"fields":     fields,
		"canRetreat": frame.CanRetreat,
		"isLast":     frame.IsLast,
	}
}

func fieldContext(name application.FieldName, value string, errs application.FieldErrors) map[string]any {
	spec, _ := application.Spec(name)
	rows := spec.Rows
	if rows == 0 {
		rows = 3
	}
	return map[string]any{
		"name":        string(spec.Name),
		"label":       spec.Label,
		"kind":        string(spec.Kind),
		"required":    spec.Required,
		"placeholder": spec.Placeholder,
		"rows":        rows,
		"value":       value,
		"error":       errs.Message(name),
	}
}

func personalFields(v wizard.PersonalView) []any {
	return []any{
		fieldContext(application.FieldFullName, v.FullName, v.Errors),
		fieldContext(application.FieldEmail, v.Email, v.Errors),
		fieldContext(application.FieldPhone, v.Phone, v.Errors),
		fieldContext(application.FieldAddress, v.Address, v.Errors),
	}
}

func experienceFields(v wizard.ExperienceView) []any {
	years := fieldContext(application.FieldYearsExperience, string(v.YearsExperience), v.Errors)
	options := make([]any, 0, len(v.Options))
	for _, option := range v.Options {
		options = append(options, map[string]any{
			"value":    string(option),
			"label":    option.Label(),
			"selected": option == v.YearsExperience,
		})
	}
	years["options"] = options

	return []any{
		fieldContext(application.FieldJobTitle, v.JobTitle, v.Errors),
		fieldContext(application.FieldCompany, v.Company, v.Errors),
		years,
		fieldContext(application.FieldSkills, v.Skills, v.Errors),
	}
}

func termsField(v wizard.ReviewView) map[string]any {
	field := fieldContext(application.FieldAgreeTerms, "", v.Errors)
	field["checked"] = v.AgreeTerms
	return field
}

func reviewContext(sections []wizard.ReviewSection) []any {
	out := make([]any, 0, len(sections))
	for _, section := range sections {
		rows := make([]any, 0, len(section.Rows))
		for _, row := range section.Rows {
			rows = append(rows, map[string]any{
				"field":    string(row.Field),
				"label":    row.Label,
				"value":    row.Value,
				"provided": row.Provided,
			})
		}
		out = append(out, map[string]any{
			"title": section.Title,
			"rows":  rows,
		})
	}
	return out
}

func submittedContext(v wizard.SubmittedView) map[string]any {
	return map[string]any{
		"title":       v.Title(),
		"greeting":    v.Greeting(),
		"contactLine": v.ContactLine(),
	}
}
