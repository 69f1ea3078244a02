package domain

// Template identifies one of the visual resume templates.
type Template string

const (
	TemplateMinimalist Template = "minimalist"
	TemplateModern     Template = "modern"
	TemplateExecutive  Template = "executive"
)

type TemplateInfo struct {
	ID          Template `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

var catalogue = []TemplateInfo{
	{ID: TemplateMinimalist, Name: "Minimalist", Description: "Clean Harvard-style format"},
	{ID: TemplateModern, Name: "Modern", Description: "Contemporary with accent colors"},
	{ID: TemplateExecutive, Name: "Executive", Description: "Professional and elegant"},
}

// Templates lists the available templates in display order.
func Templates() []TemplateInfo {
	return append([]TemplateInfo(nil), catalogue...)
}

func (t Template) Valid() bool {
	_, ok := ParseTemplate(string(t))
	return ok
}

func ParseTemplate(s string) (Template, bool) {
	for _, info := range catalogue {
		if string(info.ID) == s {
			return info.ID, true
		}
	}
	return "", false
}
