package editor

import (
	"strings"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

// Reduce applies a to doc and returns the resulting document. doc is never
// modified. Actions that do not apply (out-of-range index, unknown field,
// removal of the last entry) leave the document unchanged. AddEntry and
// AddCategory need an ID; without one they do not apply. Store issues ids
// before reducing.
func Reduce(doc domain.Resume, a Action) domain.Resume {
	next, _ := Apply(doc, a)
	return next
}

// Apply is Reduce that also reports whether the document changed.
func Apply(doc domain.Resume, a Action) (domain.Resume, bool) {
	next := doc.Clone()
	if !apply(&next, a) {
		return next, false
	}
	return next, true
}

func apply(doc *domain.Resume, a Action) bool {
	switch a := a.(type) {
	case UpdatePersonal:
		before := doc.PersonalInfo
		return setPersonal(&doc.PersonalInfo, a.Field, a.Value) && before != doc.PersonalInfo
	case SetPersonalFlag:
		before := doc.PersonalInfo
		return setPersonalFlag(&doc.PersonalInfo, a.Field, a.Value) && before != doc.PersonalInfo
	case UpdateEntry:
		return updateEntry(doc, a)
	case SetEntryFlag:
		if a.Section != domain.SectionExperience || a.Field != "current" || !inRange(a.Index, len(doc.Experience)) {
			return false
		}
		if doc.Experience[a.Index].Current == a.Value {
			return false
		}
		doc.Experience[a.Index].Current = a.Value
		return true
	case AddEntry:
		return addEntry(doc, a)
	case RemoveEntry:
		return removeEntry(doc, a)
	case MoveEntry:
		switch a.Section {
		case domain.SectionExperience:
			return swapNeighbor(doc.Experience, a.Index, a.Direction)
		case domain.SectionEducation:
			return swapNeighbor(doc.Education, a.Index, a.Direction)
		case domain.SectionProjects:
			return swapNeighbor(doc.Projects, a.Index, a.Direction)
		}
		return false
	case AddCategory:
		if a.ID == "" {
			return false
		}
		doc.SkillCategories = append(doc.SkillCategories, domain.SkillCategory{ID: a.ID, Title: a.Title, Skills: []string{}})
		return true
	case RemoveCategory:
		if len(doc.SkillCategories) <= 1 || !inRange(a.Index, len(doc.SkillCategories)) {
			return false
		}
		doc.SkillCategories = removeAt(doc.SkillCategories, a.Index)
		return true
	case RenameCategory:
		if !inRange(a.Index, len(doc.SkillCategories)) || doc.SkillCategories[a.Index].Title == a.Title {
			return false
		}
		doc.SkillCategories[a.Index].Title = a.Title
		return true
	case AddSkill:
		skill := strings.TrimSpace(a.Skill)
		if skill == "" || !inRange(a.Category, len(doc.SkillCategories)) {
			return false
		}
		cat := &doc.SkillCategories[a.Category]
		cat.Skills = append(cat.Skills, skill)
		return true
	case RemoveSkill:
		if !inRange(a.Category, len(doc.SkillCategories)) {
			return false
		}
		cat := &doc.SkillCategories[a.Category]
		if !inRange(a.Index, len(cat.Skills)) {
			return false
		}
		cat.Skills = removeAt(cat.Skills, a.Index)
		return true
	case MoveSection:
		for i, s := range doc.SectionOrder {
			if s == a.Section {
				return swapNeighbor(doc.SectionOrder, i, a.Direction)
			}
		}
		return false
	case SetTemplate:
		if !a.Template.Valid() || doc.ActiveTemplate == a.Template {
			return false
		}
		doc.ActiveTemplate = a.Template
		return true
	}
	return false
}

func updateEntry(doc *domain.Resume, a UpdateEntry) bool {
	if !inRange(a.Index, entryCount(*doc, a.Section)) {
		return false
	}
	switch a.Section {
	case domain.SectionExperience:
		e := &doc.Experience[a.Index]
		before := *e
		return setExperience(e, a.Field, a.Value) && before != *e
	case domain.SectionEducation:
		e := &doc.Education[a.Index]
		before := *e
		return setEducation(e, a.Field, a.Value) && before != *e
	case domain.SectionProjects:
		p := &doc.Projects[a.Index]
		before := *p
		return setProject(p, a.Field, a.Value) && before != *p
	}
	return false
}

func addEntry(doc *domain.Resume, a AddEntry) bool {
	if a.ID == "" {
		return false
	}
	switch a.Section {
	case domain.SectionExperience:
		doc.Experience = append(doc.Experience, domain.Experience{ID: a.ID})
	case domain.SectionEducation:
		doc.Education = append(doc.Education, domain.Education{ID: a.ID})
	case domain.SectionProjects:
		doc.Projects = append(doc.Projects, domain.Project{ID: a.ID})
	default:
		return false
	}
	return true
}

// removeEntry refuses to empty a repeatable section.
func removeEntry(doc *domain.Resume, a RemoveEntry) bool {
	n := entryCount(*doc, a.Section)
	if n <= 1 || !inRange(a.Index, n) {
		return false
	}
	switch a.Section {
	case domain.SectionExperience:
		doc.Experience = removeAt(doc.Experience, a.Index)
	case domain.SectionEducation:
		doc.Education = removeAt(doc.Education, a.Index)
	case domain.SectionProjects:
		doc.Projects = removeAt(doc.Projects, a.Index)
	default:
		return false
	}
	return true
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
