package render

import (
	"html/template"
	"strings"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

// Page is the projection of a document through one template: the header
// followed by the visible sections in order.
type Page struct {
	Template domain.Template
	Style    template.CSS
	Header   template.HTML
	Sections []Section
}

// Labels lists the rendered section labels in order.
func (p Page) Labels() []domain.Section {
	out := make([]domain.Section, 0, len(p.Sections))
	for _, s := range p.Sections {
		out = append(out, s.Label)
	}
	return out
}

// Body is the page fragment, without the surrounding document.
func (p Page) Body() template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="rb-page rb-` + string(p.Template) + `">`)
	b.WriteString(string(p.Header))
	b.WriteString(`<div class="rb-body">`)
	for _, s := range p.Sections {
		b.WriteString(string(s.HTML))
	}
	b.WriteString(`</div></div>`)
	return template.HTML(b.String())
}

// Project renders doc with template t. Sections follow order, or the
// document's own order when order is nil; unknown and repeated labels are
// skipped and sections without content are omitted. Project does not
// modify doc.
func Project(doc domain.Resume, t domain.Template, order []domain.Section) Page {
	if order == nil {
		order = doc.SectionOrder
	}
	r := For(t)
	page := Page{
		Template: r.Template(),
		Style:    r.Stylesheet(),
		Header:   r.Header(doc.PersonalInfo),
	}
	seen := make(map[domain.Section]bool, len(order))
	for _, label := range order {
		if seen[label] {
			continue
		}
		seen[label] = true
		if s := renderSection(r, doc, label); s != nil {
			page.Sections = append(page.Sections, *s)
		}
	}
	return page
}

// ProjectActive renders doc with its own active template and order.
func ProjectActive(doc domain.Resume) Page {
	return Project(doc, doc.ActiveTemplate, nil)
}

func renderSection(r SectionRenderer, doc domain.Resume, label domain.Section) *Section {
	switch label {
	case domain.SectionSummary:
		return r.Summary(doc.PersonalInfo)
	case domain.SectionExperience:
		return r.Experience(doc.Experience)
	case domain.SectionEducation:
		return r.Education(doc.Education)
	case domain.SectionSkills:
		return r.Skills(doc.SkillCategories)
	case domain.SectionProjects:
		return r.Projects(doc.Projects)
	}
	return nil
}
