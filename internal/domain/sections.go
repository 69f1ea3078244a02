package domain

// Section is one of the five named content groups of a resume.
type Section string

const (
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
)

var defaultOrder = [...]Section{SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionProjects}

// DefaultSectionOrder returns a fresh copy of the default order.
func DefaultSectionOrder() []Section {
	return append([]Section(nil), defaultOrder[:]...)
}

func (s Section) Valid() bool {
	for _, d := range defaultOrder {
		if s == d {
			return true
		}
	}
	return false
}

// Title is the label shown in section pickers.
func (s Section) Title() string {
	switch s {
	case SectionSummary:
		return "Summary"
	case SectionExperience:
		return "Experience"
	case SectionEducation:
		return "Education"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	}
	return string(s)
}

// IsSectionPermutation reports whether order holds each of the five labels
// exactly once and nothing else.
func IsSectionPermutation(order []Section) bool {
	if len(order) != len(defaultOrder) {
		return false
	}
	seen := make(map[Section]bool, len(order))
	for _, s := range order {
		if !s.Valid() || seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}

// RepairSectionOrder keeps the valid labels of order in place, drops unknown
// or repeated ones and appends the missing labels in default order.
func RepairSectionOrder(order []Section) []Section {
	if IsSectionPermutation(order) {
		return append([]Section(nil), order...)
	}
	out := make([]Section, 0, len(defaultOrder))
	seen := map[Section]bool{}
	for _, s := range order {
		if s.Valid() && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range defaultOrder {
		if !seen[s] {
			out = append(out, s)
		}
	}
	return out
}
