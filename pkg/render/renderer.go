package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

// Section is one rendered body section of a page.
type Section struct {
	Label domain.Section
	HTML  template.HTML
}

// SectionRenderer renders the header and each body section of one visual
// template. A section method returns nil when the section has no content.
type SectionRenderer interface {
	Template() domain.Template
	Stylesheet() template.CSS
	Header(p domain.PersonalInfo) template.HTML
	Summary(p domain.PersonalInfo) *Section
	Experience(entries []domain.Experience) *Section
	Education(entries []domain.Education) *Section
	Skills(cats []domain.SkillCategory) *Section
	Projects(entries []domain.Project) *Section
}

var renderers = map[domain.Template]SectionRenderer{
	domain.TemplateMinimalist: NewMinimalist(),
	domain.TemplateModern:     NewModern(),
	domain.TemplateExecutive:  NewExecutive(),
}

// For returns the renderer for t, falling back to minimalist.
func For(t domain.Template) SectionRenderer {
	if r, ok := renderers[t]; ok {
		return r
	}
	return renderers[domain.TemplateMinimalist]
}

// Href prefixes bare links with https://.
func Href(link string) string {
	if strings.HasPrefix(link, "http") {
		return link
	}
	return "https://" + link
}

type skillsData struct {
	Categories []domain.SkillCategory
	All        []string
}

func newSkillsData(cats []domain.SkillCategory) skillsData {
	filtered := SkillCategoriesWithSkills(cats)
	var all []string
	for _, c := range filtered {
		all = append(all, c.Skills...)
	}
	return skillsData{Categories: filtered, All: all}
}

// sectionTemplates is a parsed set of named blocks: "header" plus one block
// per section label.
type sectionTemplates struct {
	name string
	t    *template.Template
}

func newSectionTemplates(name, sep, text string) sectionTemplates {
	funcs := template.FuncMap{
		"dateRange": func(start, end string) string { return FormatDateRange(start, end, sep) },
		"formatted": FormatText,
		"href":      Href,
		"join":      strings.Join,
	}
	return sectionTemplates{
		name: name,
		t:    template.Must(template.New(name).Funcs(funcs).Parse(text)),
	}
}

func (s sectionTemplates) exec(block string, data any) template.HTML {
	var buf bytes.Buffer
	if err := s.t.ExecuteTemplate(&buf, block, data); err != nil {
		return template.HTML(fmt.Sprintf("<!-- %s/%s: %s -->", s.name, block, template.HTMLEscapeString(err.Error())))
	}
	return template.HTML(buf.String())
}

func (s sectionTemplates) section(label domain.Section, data any) *Section {
	return &Section{Label: label, HTML: s.exec(string(label), data)}
}

// base implements the visibility checks shared by every template.
type base struct {
	tpl sectionTemplates
}

func (b base) Header(p domain.PersonalInfo) template.HTML {
	return b.tpl.exec("header", p)
}

func (b base) Summary(p domain.PersonalInfo) *Section {
	if !HasSummary(p) {
		return nil
	}
	return b.tpl.section(domain.SectionSummary, p)
}

func (b base) Experience(entries []domain.Experience) *Section {
	if !HasExperience(entries) {
		return nil
	}
	return b.tpl.section(domain.SectionExperience, entries)
}

func (b base) Education(entries []domain.Education) *Section {
	if !HasEducation(entries) {
		return nil
	}
	return b.tpl.section(domain.SectionEducation, entries)
}

func (b base) Skills(cats []domain.SkillCategory) *Section {
	if !HasSkills(cats) {
		return nil
	}
	return b.tpl.section(domain.SectionSkills, newSkillsData(cats))
}

func (b base) Projects(entries []domain.Project) *Section {
	if !HasProjects(entries) {
		return nil
	}
	return b.tpl.section(domain.SectionProjects, entries)
}
