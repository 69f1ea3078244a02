package editor

import (
	"errors"
	"fmt"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

var (
	ErrUnknownAction    = errors.New("editor: unknown action")
	ErrUnknownSection   = errors.New("editor: unknown section")
	ErrUnknownField     = errors.New("editor: unknown field")
	ErrDerivedField     = errors.New("editor: field is derived")
	ErrUnknownTemplate  = errors.New("editor: unknown template")
	ErrUnknownDirection = errors.New("editor: unknown direction")
	ErrIndexOutOfRange  = errors.New("editor: index out of range")
)

// Validate reports whether a may be applied to doc. Reduce tolerates every
// violation reported here by leaving the document unchanged; callers that
// take input from outside use Validate to reject it instead.
func Validate(doc domain.Resume, a Action) error {
	switch a := a.(type) {
	case UpdatePersonal:
		if a.Field == "location" {
			return ErrDerivedField
		}
		var scratch domain.PersonalInfo
		if !setPersonal(&scratch, a.Field, a.Value) {
			return fieldErr(a.Field)
		}
	case SetPersonalFlag:
		var scratch domain.PersonalInfo
		if !setPersonalFlag(&scratch, a.Field, a.Value) {
			return fieldErr(a.Field)
		}
	case UpdateEntry:
		if err := checkEntry(doc, a.Section, a.Index); err != nil {
			return err
		}
		if !knownEntryField(a.Section, a.Field) {
			return fieldErr(a.Field)
		}
	case SetEntryFlag:
		if err := checkEntry(doc, a.Section, a.Index); err != nil {
			return err
		}
		if a.Section != domain.SectionExperience || a.Field != "current" {
			return fieldErr(a.Field)
		}
	case AddEntry:
		if !isEntrySection(a.Section) {
			return sectionErr(a.Section)
		}
	case RemoveEntry:
		return checkEntry(doc, a.Section, a.Index)
	case MoveEntry:
		if err := checkDirection(a.Direction); err != nil {
			return err
		}
		return checkEntry(doc, a.Section, a.Index)
	case AddCategory:
	case RemoveCategory:
		return checkIndex("category", a.Index, len(doc.SkillCategories))
	case RenameCategory:
		return checkIndex("category", a.Index, len(doc.SkillCategories))
	case AddSkill:
		return checkIndex("category", a.Category, len(doc.SkillCategories))
	case RemoveSkill:
		if err := checkIndex("category", a.Category, len(doc.SkillCategories)); err != nil {
			return err
		}
		return checkIndex("skill", a.Index, len(doc.SkillCategories[a.Category].Skills))
	case MoveSection:
		if !a.Section.Valid() {
			return sectionErr(a.Section)
		}
		return checkDirection(a.Direction)
	case SetTemplate:
		if !a.Template.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownTemplate, a.Template)
		}
	case nil:
		return ErrUnknownAction
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.Type())
	}
	return nil
}

func checkEntry(doc domain.Resume, s domain.Section, i int) error {
	if !isEntrySection(s) {
		return sectionErr(s)
	}
	return checkIndex(string(s), i, entryCount(doc, s))
}

func checkIndex(what string, i, n int) error {
	if !inRange(i, n) {
		return fmt.Errorf("%w: %s index %d, length %d", ErrIndexOutOfRange, what, i, n)
	}
	return nil
}

func checkDirection(d Direction) error {
	if d != Up && d != Down {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, d)
	}
	return nil
}

func knownEntryField(s domain.Section, field string) bool {
	switch s {
	case domain.SectionExperience:
		var e domain.Experience
		return setExperience(&e, field, "")
	case domain.SectionEducation:
		var e domain.Education
		return setEducation(&e, field, "")
	case domain.SectionProjects:
		var p domain.Project
		return setProject(&p, field, "")
	}
	return false
}

func fieldErr(field string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func sectionErr(s domain.Section) error {
	return fmt.Errorf("%w: %q", ErrUnknownSection, s)
}
