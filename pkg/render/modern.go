package render

import (
	"html/template"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

// Modern is the accent-coloured layout with a banner header and skill chips.
type Modern struct {
	base
}

func NewModern() *Modern {
	return &Modern{base{tpl: newSectionTemplates("modern", DashSeparator, modernHTML)}}
}

func (m *Modern) Template() domain.Template { return domain.TemplateModern }

func (m *Modern) Stylesheet() template.CSS { return modernCSS }

const modernHTML = `
{{- define "header" -}}
<header class="rb-header">
<h1>{{if .FullName}}{{.FullName}}{{else}}Your Name{{end}}</h1>
<div class="rb-contact">
{{- if .Email}}<a href="mailto:{{.Email}}">{{.Email}}</a>{{end}}
{{- if .Phone}}<span>{{.Phone}}</span>{{end}}
{{- if .Location}}<span>{{.Location}}</span>{{end}}
</div>
<div class="rb-contact rb-links">
{{- if .LinkedIn}}<a href="{{href .LinkedIn}}">{{.LinkedIn}}</a>{{end}}
{{- if .GitHub}}<a href="{{href .GitHub}}">{{.GitHub}}</a>{{end}}
{{- if .Portfolio}}<a href="{{href .Portfolio}}">{{.Portfolio}}</a>{{end}}
</div>
</header>
{{- end}}

{{- define "summary" -}}
<section class="rb-section"><h2><span class="rb-bar"></span>About</h2><p>{{.Summary}}</p></section>
{{- end}}

{{- define "experience" -}}
<section class="rb-section"><h2><span class="rb-bar"></span>Experience</h2>
{{- range .}}{{if or .Company .Position}}
<div class="rb-entry">
<div class="rb-row"><span class="rb-strong">{{.Position}}</span>
<span class="rb-badge">{{dateRange .StartDate .EffectiveEnd}}</span></div>
<div class="rb-accent">{{.Company}}{{if .Location}} | {{.Location}}{{end}}</div>
{{- if .Description}}<div class="rb-text">{{formatted .Description}}</div>{{end}}
</div>
{{- end}}{{end}}
</section>
{{- end}}

{{- define "education" -}}
<section class="rb-section"><h2><span class="rb-bar"></span>Education</h2>
{{- range .}}{{if or .Institution .Degree}}
<div class="rb-entry">
<div class="rb-row"><span class="rb-strong">{{.Institution}}</span>
<span class="rb-date">{{dateRange .StartDate .EndDate}}</span></div>
<div class="rb-text">{{.Degree}}{{if .Field}} in {{.Field}}{{end}}
{{- if .GPA}}<span class="rb-muted"> | GPA: {{.GPA}}</span>{{end}}</div>
</div>
{{- end}}{{end}}
</section>
{{- end}}

{{- define "skills" -}}
<section class="rb-section"><h2><span class="rb-bar"></span>Skills</h2><div class="rb-chips">
{{- range .All}}<span class="rb-chip">{{.}}</span>{{end}}
</div></section>
{{- end}}

{{- define "projects" -}}
<section class="rb-section"><h2><span class="rb-bar"></span>Projects</h2>
{{- range .}}{{if .Name}}
<div class="rb-entry">
<div class="rb-row"><span class="rb-strong">{{.Name}}</span>
<span class="rb-date">{{dateRange .StartDate .EndDate}}</span></div>
{{- if .Technologies}}<div class="rb-accent rb-small">{{.Technologies}}</div>{{end}}
{{- if .Description}}<div class="rb-text">{{formatted .Description}}</div>{{end}}
</div>
{{- end}}{{end}}
</section>
{{- end}}
`

const modernCSS template.CSS = `
.rb-page { font-family: "Helvetica Neue", Arial, sans-serif; color: #1e293b; }
.rb-header { background: #1e3a8a; color: #fff; padding: 32px 48px; }
.rb-header h1 { font-size: 24px; margin: 0 0 8px; }
.rb-contact { display: flex; flex-wrap: wrap; gap: 16px; font-size: 12px; color: #dbeafe; margin-top: 4px; }
.rb-contact a { color: inherit; text-decoration: none; }
.rb-body { padding: 24px 48px; }
.rb-section { margin-bottom: 18px; }
.rb-section h2 { display: flex; align-items: center; gap: 8px; font-size: 14px; color: #1e3a8a; margin: 0 0 8px; }
.rb-bar { display: inline-block; width: 4px; height: 16px; background: #3b82f6; border-radius: 2px; }
.rb-entry { margin-bottom: 10px; }
.rb-row { display: flex; justify-content: space-between; align-items: baseline; }
.rb-strong { font-weight: 600; }
.rb-badge { font-size: 11px; background: #eff6ff; color: #1d4ed8; padding: 2px 8px; border-radius: 9999px; }
.rb-accent { color: #2563eb; font-size: 13px; }
.rb-muted { color: #64748b; }
.rb-small, .rb-date { font-size: 12px; color: #64748b; }
.rb-text { font-size: 13px; margin-top: 4px; }
.rb-chips { display: flex; flex-wrap: wrap; gap: 6px; }
.rb-chip { font-size: 12px; background: #eff6ff; color: #1e40af; padding: 2px 10px; border-radius: 9999px; }
`
