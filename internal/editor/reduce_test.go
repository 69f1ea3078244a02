package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

func newDoc() domain.Resume {
	return domain.NewResume(&domain.SequenceIDs{})
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	doc := newDoc()
	before := doc.Clone()

	actions := []Action{
		UpdatePersonal{Field: "fullName", Value: "Ada"},
		UpdateEntry{Section: domain.SectionExperience, Index: 0, Field: "company", Value: "Acme"},
		AddEntry{Section: domain.SectionProjects, ID: "p2"},
		AddSkill{Category: 0, Skill: "Go"},
		MoveSection{Section: domain.SectionSkills, Direction: Up},
		SetTemplate{Template: domain.TemplateModern},
	}
	for _, a := range actions {
		next := Reduce(doc, a)
		assert.NotEqual(t, before, next, a.Type())
		assert.Equal(t, before, doc, a.Type())
	}
}

func TestDerivedLocation(t *testing.T) {
	doc := newDoc()
	doc = Reduce(doc, UpdatePersonal{Field: "country", Value: "India"})
	doc = Reduce(doc, UpdatePersonal{Field: "state", Value: "Karnataka"})
	doc = Reduce(doc, UpdatePersonal{Field: "city", Value: "Bengaluru"})
	assert.Equal(t, "Bengaluru, Karnataka, India", doc.PersonalInfo.Location)

	doc = Reduce(doc, SetPersonalFlag{Field: "showState", Value: false})
	assert.Equal(t, "Bengaluru, India", doc.PersonalInfo.Location)
	assert.Equal(t, "Karnataka", doc.PersonalInfo.State)

	// Changing the country clears the state.
	doc = Reduce(doc, SetPersonalFlag{Field: "showState", Value: true})
	doc = Reduce(doc, UpdatePersonal{Field: "country", Value: "Japan"})
	assert.Empty(t, doc.PersonalInfo.State)
	assert.Equal(t, "Bengaluru, Japan", doc.PersonalInfo.Location)

	// Location itself is not writable.
	next, changed := Apply(doc, UpdatePersonal{Field: "location", Value: "Mars"})
	assert.False(t, changed)
	assert.Equal(t, doc, next)
}

func TestEntryOperations(t *testing.T) {
	doc := newDoc()
	doc = Reduce(doc, AddEntry{Section: domain.SectionExperience, ID: "e2"})
	doc = Reduce(doc, UpdateEntry{Section: domain.SectionExperience, Index: 1, Field: "company", Value: "Second"})
	require.Len(t, doc.Experience, 2)

	doc = Reduce(doc, MoveEntry{Section: domain.SectionExperience, Index: 1, Direction: Up})
	assert.Equal(t, "Second", doc.Experience[0].Company)
	assert.Equal(t, "e2", doc.Experience[0].ID)

	_, changed := Apply(doc, MoveEntry{Section: domain.SectionExperience, Index: 0, Direction: Up})
	assert.False(t, changed)
	_, changed = Apply(doc, MoveEntry{Section: domain.SectionExperience, Index: 1, Direction: Down})
	assert.False(t, changed)

	doc = Reduce(doc, SetEntryFlag{Section: domain.SectionExperience, Index: 0, Field: "current", Value: true})
	assert.True(t, doc.Experience[0].Current)

	doc = Reduce(doc, RemoveEntry{Section: domain.SectionExperience, Index: 0})
	require.Len(t, doc.Experience, 1)
	assert.Empty(t, doc.Experience[0].Company)

	// The last entry stays.
	_, changed = Apply(doc, RemoveEntry{Section: domain.SectionExperience, Index: 0})
	assert.False(t, changed)

	doc = Reduce(doc, AddEntry{Section: domain.SectionEducation, ID: "ed2"})
	doc = Reduce(doc, UpdateEntry{Section: domain.SectionEducation, Index: 1, Field: "gpa", Value: "3.9"})
	doc = Reduce(doc, MoveEntry{Section: domain.SectionEducation, Index: 1, Direction: Up})
	assert.Equal(t, "3.9", doc.Education[0].GPA)

	_, changed = Apply(doc, UpdateEntry{Section: domain.SectionProjects, Index: 5, Field: "name", Value: "x"})
	assert.False(t, changed)
}

func TestSkillOperations(t *testing.T) {
	doc := newDoc()
	doc = Reduce(doc, AddSkill{Category: 0, Skill: "  Go  "})
	doc = Reduce(doc, AddSkill{Category: 0, Skill: "   "})
	assert.Equal(t, []string{"Go"}, doc.SkillCategories[0].Skills)

	doc = Reduce(doc, AddCategory{ID: "c2", Title: "Languages"})
	doc = Reduce(doc, RenameCategory{Index: 1, Title: "Spoken"})
	doc = Reduce(doc, AddSkill{Category: 1, Skill: "Portuguese"})
	require.Len(t, doc.SkillCategories, 2)
	assert.Equal(t, "Spoken", doc.SkillCategories[1].Title)

	doc = Reduce(doc, RemoveSkill{Category: 0, Index: 0})
	assert.Empty(t, doc.SkillCategories[0].Skills)

	doc = Reduce(doc, RemoveCategory{Index: 0})
	require.Len(t, doc.SkillCategories, 1)
	assert.Equal(t, "c2", doc.SkillCategories[0].ID)

	_, changed := Apply(doc, RemoveCategory{Index: 0})
	assert.False(t, changed)
}

func TestMoveSectionKeepsPermutation(t *testing.T) {
	doc := newDoc()
	moves := []MoveSection{
		{Section: domain.SectionProjects, Direction: Up},
		{Section: domain.SectionProjects, Direction: Up},
		{Section: domain.SectionSummary, Direction: Up},
		{Section: domain.SectionSummary, Direction: Down},
		{Section: domain.SectionSkills, Direction: Down},
	}
	for _, m := range moves {
		doc = Reduce(doc, m)
		assert.True(t, domain.IsSectionPermutation(doc.SectionOrder))
	}
	assert.Equal(t, []domain.Section{
		domain.SectionExperience, domain.SectionSummary, domain.SectionProjects, domain.SectionEducation, domain.SectionSkills,
	}, doc.SectionOrder)
}

func TestSetTemplate(t *testing.T) {
	doc := newDoc()
	_, changed := Apply(doc, SetTemplate{Template: domain.TemplateMinimalist})
	assert.False(t, changed)
	_, changed = Apply(doc, SetTemplate{Template: "neon"})
	assert.False(t, changed)
	doc = Reduce(doc, SetTemplate{Template: domain.TemplateExecutive})
	assert.Equal(t, domain.TemplateExecutive, doc.ActiveTemplate)
}

func TestValidate(t *testing.T) {
	doc := newDoc()
	cases := []struct {
		name string
		a    Action
		err  error
	}{
		{"DerivedLocation", UpdatePersonal{Field: "location"}, ErrDerivedField},
		{"UnknownPersonal", UpdatePersonal{Field: "age"}, ErrUnknownField},
		{"UnknownFlag", SetPersonalFlag{Field: "showPlanet"}, ErrUnknownField},
		{"EntryRange", UpdateEntry{Section: domain.SectionExperience, Index: 3, Field: "company"}, ErrIndexOutOfRange},
		{"EntryField", UpdateEntry{Section: domain.SectionEducation, Index: 0, Field: "company"}, ErrUnknownField},
		{"EntrySection", AddEntry{Section: domain.SectionSummary}, ErrUnknownSection},
		{"FlagField", SetEntryFlag{Section: domain.SectionProjects, Index: 0, Field: "current"}, ErrUnknownField},
		{"Direction", MoveEntry{Section: domain.SectionProjects, Index: 0, Direction: "left"}, ErrUnknownDirection},
		{"SkillRange", RemoveSkill{Category: 0, Index: 0}, ErrIndexOutOfRange},
		{"CategoryRange", RenameCategory{Index: -1}, ErrIndexOutOfRange},
		{"SectionLabel", MoveSection{Section: "awards", Direction: Up}, ErrUnknownSection},
		{"Template", SetTemplate{Template: "neon"}, ErrUnknownTemplate},
		{"Nil", nil, ErrUnknownAction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(doc, tc.a), tc.err)
		})
	}

	assert.NoError(t, Validate(doc, UpdateEntry{Section: domain.SectionProjects, Index: 0, Field: "link", Value: "x"}))
	assert.NoError(t, Validate(doc, AddCategory{}))
}

func TestAddWithoutIDDoesNotApply(t *testing.T) {
	doc := newDoc()
	_, changed := Apply(doc, AddEntry{Section: domain.SectionExperience})
	assert.False(t, changed)
	_, changed = Apply(doc, AddCategory{Title: "Tools"})
	assert.False(t, changed)
}
