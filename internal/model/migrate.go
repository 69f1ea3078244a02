package model

import (
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

// Shape is the storage generation a payload was written in.
type Shape int

const (
	ShapeCurrent Shape = iota
	// ShapeLegacySkills carries a flat {technical, languages, tools} skills
	// object instead of skill categories.
	ShapeLegacySkills
)

func (s Shape) String() string {
	if s == ShapeLegacySkills {
		return "legacy-skills"
	}
	return "current"
}

var ErrEmptyDocument = errors.New("model: empty document")

// LegacySkills is the flat skills object of the first storage generation.
type LegacySkills struct {
	Technical []string `json:"technical"`
	Languages []string `json:"languages"`
	Tools     []string `json:"tools"`
}

type storedPersonal struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	LinkedIn    string `json:"linkedin"`
	GitHub      string `json:"github"`
	Portfolio   string `json:"portfolio"`
	Summary     string `json:"summary"`
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	ShowCountry *bool  `json:"showCountry"`
	ShowState   *bool  `json:"showState"`
	ShowCity    *bool  `json:"showCity"`
}

type storedDocument struct {
	PersonalInfo    *storedPersonal        `json:"personalInfo"`
	Experience      []domain.Experience    `json:"experience"`
	Education       []domain.Education     `json:"education"`
	SkillCategories []domain.SkillCategory `json:"skillCategories"`
	Projects        []domain.Project       `json:"projects"`
	SectionOrder    []domain.Section       `json:"sectionOrder"`
	ActiveTemplate  string                 `json:"activeTemplate"`
	Skills          *LegacySkills          `json:"skills"`
}

// ClassifyShape decides once which generation raw was written in.
func ClassifyShape(raw []byte) Shape {
	_, skillsType, _, _ := jsonparser.Get(raw, "skills")
	_, catsType, _, _ := jsonparser.Get(raw, "skillCategories")
	if skillsType == jsonparser.Object && (catsType == jsonparser.NotExist || catsType == jsonparser.Null) {
		return ShapeLegacySkills
	}
	return ShapeCurrent
}

// DecodeDocument decodes a stored document of any known generation into the
// current shape. Missing fields are backfilled with defaults; only
// syntactically invalid input is an error.
func DecodeDocument(raw []byte, ids domain.IDSource) (domain.Resume, Shape, error) {
	if ids == nil {
		ids = domain.DefaultIDs
	}
	if len(raw) == 0 || string(raw) == "null" {
		return domain.Resume{}, ShapeCurrent, ErrEmptyDocument
	}
	shape := ClassifyShape(raw)
	var stored storedDocument
	if err := json.Unmarshal(raw, &stored); err != nil {
		return domain.Resume{}, shape, fmt.Errorf("decode resume document: %w", err)
	}
	if shape == ShapeLegacySkills {
		stored.SkillCategories = MigrateLegacySkills(*stored.Skills)
	}
	return normalize(stored, ids), shape, nil
}

// MigrateLegacySkills converts the flat skills object into categories. Only
// non-empty groups become categories, in technical, languages, tools order;
// with no skills at all a single empty default category is returned.
func MigrateLegacySkills(s LegacySkills) []domain.SkillCategory {
	cats := make([]domain.SkillCategory, 0, 3)
	if len(s.Technical) > 0 {
		cats = append(cats, domain.SkillCategory{ID: "1", Title: "Technical Skills", Skills: append([]string(nil), s.Technical...)})
	}
	if len(s.Languages) > 0 {
		cats = append(cats, domain.SkillCategory{ID: "2", Title: "Programming Languages", Skills: append([]string(nil), s.Languages...)})
	}
	if len(s.Tools) > 0 {
		cats = append(cats, domain.SkillCategory{ID: "3", Title: "Tools & Frameworks", Skills: append([]string(nil), s.Tools...)})
	}
	if len(cats) == 0 {
		cats = append(cats, domain.SkillCategory{ID: "1", Title: domain.DefaultCategoryTitle, Skills: []string{}})
	}
	return cats
}

func normalize(s storedDocument, ids domain.IDSource) domain.Resume {
	doc := domain.Resume{
		PersonalInfo:    normalizePersonal(s.PersonalInfo),
		Experience:      s.Experience,
		Education:       s.Education,
		SkillCategories: s.SkillCategories,
		Projects:        s.Projects,
		ActiveTemplate:  domain.TemplateMinimalist,
	}
	if len(doc.Experience) == 0 {
		doc.Experience = []domain.Experience{{}}
	}
	if len(doc.Education) == 0 {
		doc.Education = []domain.Education{{}}
	}
	if len(doc.Projects) == 0 {
		doc.Projects = []domain.Project{{}}
	}
	if len(doc.SkillCategories) == 0 {
		doc.SkillCategories = []domain.SkillCategory{{Title: domain.DefaultCategoryTitle}}
	}
	for i := range doc.SkillCategories {
		if doc.SkillCategories[i].Skills == nil {
			doc.SkillCategories[i].Skills = []string{}
		}
	}

	seen := map[string]bool{}
	fill := func(id *string) {
		if *id == "" || seen[*id] {
			*id = ids.NextID()
		}
		seen[*id] = true
	}
	for i := range doc.Experience {
		fill(&doc.Experience[i].ID)
	}
	clear(seen)
	for i := range doc.Education {
		fill(&doc.Education[i].ID)
	}
	clear(seen)
	for i := range doc.Projects {
		fill(&doc.Projects[i].ID)
	}
	clear(seen)
	for i := range doc.SkillCategories {
		fill(&doc.SkillCategories[i].ID)
	}

	if s.SectionOrder == nil {
		doc.SectionOrder = domain.DefaultSectionOrder()
	} else {
		doc.SectionOrder = domain.RepairSectionOrder(s.SectionOrder)
	}
	if t, ok := domain.ParseTemplate(s.ActiveTemplate); ok {
		doc.ActiveTemplate = t
	}
	return doc
}

func normalizePersonal(sp *storedPersonal) domain.PersonalInfo {
	p := domain.NewPersonalInfo()
	if sp == nil {
		return p
	}
	p.FullName = sp.FullName
	p.Email = sp.Email
	p.Phone = sp.Phone
	p.LinkedIn = sp.LinkedIn
	p.GitHub = sp.GitHub
	p.Portfolio = sp.Portfolio
	p.Summary = sp.Summary
	p.Country = sp.Country
	p.State = sp.State
	p.City = sp.City
	if sp.ShowCountry != nil {
		p.ShowCountry = *sp.ShowCountry
	}
	if sp.ShowState != nil {
		p.ShowState = *sp.ShowState
	}
	if sp.ShowCity != nil {
		p.ShowCity = *sp.ShowCity
	}
	// documents written before the address fields existed only carry a
	// free-text location
	if p.Country == "" && p.State == "" && p.City == "" && sp.Location != "" {
		p.City = sp.Location
		p.ShowCity = true
	}
	p.Location = domain.ComposeLocation(p)
	return p
}
