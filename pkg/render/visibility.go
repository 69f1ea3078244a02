package render

import "github.com/capsloque-org/ResumeBuilder/internal/domain"

// A section renders only when it has content. These predicates are shared
// by every template.

func HasSummary(p domain.PersonalInfo) bool {
	return p.Summary != ""
}

func HasExperience(entries []domain.Experience) bool {
	for _, e := range entries {
		if e.Company != "" || e.Position != "" {
			return true
		}
	}
	return false
}

func HasEducation(entries []domain.Education) bool {
	for _, e := range entries {
		if e.Institution != "" || e.Degree != "" {
			return true
		}
	}
	return false
}

func HasProjects(entries []domain.Project) bool {
	for _, p := range entries {
		if p.Name != "" {
			return true
		}
	}
	return false
}

// SkillCategoriesWithSkills drops categories without skills.
func SkillCategoriesWithSkills(cats []domain.SkillCategory) []domain.SkillCategory {
	out := make([]domain.SkillCategory, 0, len(cats))
	for _, c := range cats {
		if len(c.Skills) > 0 {
			out = append(out, c)
		}
	}
	return out
}

func HasSkills(cats []domain.SkillCategory) bool {
	return len(SkillCategoriesWithSkills(cats)) > 0
}

// Visible applies the predicate for section to doc.
func Visible(doc domain.Resume, section domain.Section) bool {
	switch section {
	case domain.SectionSummary:
		return HasSummary(doc.PersonalInfo)
	case domain.SectionExperience:
		return HasExperience(doc.Experience)
	case domain.SectionEducation:
		return HasEducation(doc.Education)
	case domain.SectionSkills:
		return HasSkills(doc.SkillCategories)
	case domain.SectionProjects:
		return HasProjects(doc.Projects)
	}
	return false
}
