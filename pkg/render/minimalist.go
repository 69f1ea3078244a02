package render

import (
	"html/template"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

// Minimalist is the single-column Harvard style layout.
type Minimalist struct {
	base
}

func NewMinimalist() *Minimalist {
	return &Minimalist{base{tpl: newSectionTemplates("minimalist", DashSeparator, minimalistHTML)}}
}

func (m *Minimalist) Template() domain.Template { return domain.TemplateMinimalist }

func (m *Minimalist) Stylesheet() template.CSS { return minimalistCSS }

const minimalistHTML = `
{{- define "header" -}}
<header class="rb-header">
<h1>{{if .FullName}}{{.FullName}}{{else}}Your Name{{end}}</h1>
<div class="rb-contact">
{{- if .Email}}<a href="mailto:{{.Email}}">{{.Email}}</a>{{end}}
{{- if .Phone}}<span>{{.Phone}}</span>{{end}}
{{- if .Location}}<span>{{.Location}}</span>{{end}}
{{- if .LinkedIn}}<a href="{{href .LinkedIn}}">{{.LinkedIn}}</a>{{end}}
{{- if .GitHub}}<a href="{{href .GitHub}}">{{.GitHub}}</a>{{end}}
{{- if .Portfolio}}<a href="{{href .Portfolio}}">{{.Portfolio}}</a>{{end}}
</div>
</header>
{{- end}}

{{- define "summary" -}}
<section class="rb-section"><h2>Professional Summary</h2><p>{{.Summary}}</p></section>
{{- end}}

{{- define "experience" -}}
<section class="rb-section"><h2>Experience</h2>
{{- range .}}{{if or .Company .Position}}
<div class="rb-entry">
<div class="rb-row"><div><span class="rb-strong">{{.Position}}</span>
{{- if .Company}}<span class="rb-muted"> | {{.Company}}</span>{{end}}
{{- if .Location}}<span class="rb-small"> - {{.Location}}</span>{{end}}</div>
<span class="rb-date">{{dateRange .StartDate .EffectiveEnd}}</span></div>
{{- if .Description}}<div class="rb-text">{{formatted .Description}}</div>{{end}}
</div>
{{- end}}{{end}}
</section>
{{- end}}

{{- define "education" -}}
<section class="rb-section"><h2>Education</h2>
{{- range .}}{{if or .Institution .Degree}}
<div class="rb-entry">
<div class="rb-row"><div><span class="rb-strong">{{.Institution}}</span>
{{- if .Location}}<span class="rb-small"> - {{.Location}}</span>{{end}}</div>
<span class="rb-date">{{dateRange .StartDate .EndDate}}</span></div>
<div class="rb-degree">{{.Degree}}{{if .Field}} in {{.Field}}{{end}}
{{- if .GPA}}<span class="rb-muted"> | GPA: {{.GPA}}</span>{{end}}</div>
{{- if .Achievements}}<div class="rb-small">{{.Achievements}}</div>{{end}}
</div>
{{- end}}{{end}}
</section>
{{- end}}

{{- define "skills" -}}
<section class="rb-section"><h2>Skills</h2><div class="rb-text">
{{- range .Categories}}<p><strong>{{.Title}}:</strong> {{join .Skills ", "}}</p>{{end}}
</div></section>
{{- end}}

{{- define "projects" -}}
<section class="rb-section"><h2>Projects</h2>
{{- range .}}{{if .Name}}
<div class="rb-entry">
<div class="rb-row"><div><span class="rb-strong">{{.Name}}</span>
{{- if .Technologies}}<span class="rb-small"> | {{.Technologies}}</span>{{end}}</div>
<span class="rb-date">{{dateRange .StartDate .EndDate}}</span></div>
{{- if .Link}}<a class="rb-link" href="{{href .Link}}">{{.Link}}</a>{{end}}
{{- if .Description}}<div class="rb-text">{{formatted .Description}}</div>{{end}}
</div>
{{- end}}{{end}}
</section>
{{- end}}
`

const minimalistCSS template.CSS = `
.rb-page { font-family: Georgia, "Times New Roman", serif; color: #1e293b; padding: 48px; }
.rb-header { text-align: center; border-bottom: 1px solid #cbd5e1; padding-bottom: 16px; margin-bottom: 16px; }
.rb-header h1 { font-size: 24px; text-transform: uppercase; letter-spacing: .05em; margin: 0 0 8px; }
.rb-contact { display: flex; flex-wrap: wrap; justify-content: center; gap: 12px; font-size: 12px; color: #475569; }
.rb-contact a { color: inherit; text-decoration: none; }
.rb-section { margin-bottom: 16px; }
.rb-section h2 { font-size: 13px; text-transform: uppercase; letter-spacing: .08em; border-bottom: 1px solid #cbd5e1; padding-bottom: 4px; margin: 0 0 8px; }
.rb-entry { margin-bottom: 10px; }
.rb-row { display: flex; justify-content: space-between; align-items: baseline; }
.rb-strong { font-weight: 600; }
.rb-muted { color: #475569; }
.rb-small, .rb-date { font-size: 12px; color: #64748b; }
.rb-degree { font-size: 13px; font-style: italic; }
.rb-link { font-size: 12px; color: #2563eb; text-decoration: none; }
.rb-text { font-size: 13px; margin-top: 4px; }
`
