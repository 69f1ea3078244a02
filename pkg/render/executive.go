package render

import (
	"html/template"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

// Executive is the centred serif layout with em dash separators.
type Executive struct {
	base
}

func NewExecutive() *Executive {
	return &Executive{base{tpl: newSectionTemplates("executive", EmDashSeparator, executiveHTML)}}
}

func (e *Executive) Template() domain.Template { return domain.TemplateExecutive }

func (e *Executive) Stylesheet() template.CSS { return executiveCSS }

const executiveHTML = `
{{- define "header" -}}
<header class="rb-header">
<h1>{{if .FullName}}{{.FullName}}{{else}}Your Name{{end}}</h1>
<div class="rb-contact">
{{- if .Email}}<a href="mailto:{{.Email}}">{{.Email}}</a>{{end}}
{{- if .Phone}}<span>• {{.Phone}}</span>{{end}}
{{- if .Location}}<span>• {{.Location}}</span>{{end}}
</div>
<div class="rb-contact">
{{- if .LinkedIn}}<a href="{{href .LinkedIn}}">{{.LinkedIn}}</a>{{end}}
{{- if .GitHub}}<span>• </span><a href="{{href .GitHub}}">{{.GitHub}}</a>{{end}}
{{- if .Portfolio}}<span>• </span><a href="{{href .Portfolio}}">{{.Portfolio}}</a>{{end}}
</div>
</header>
{{- end}}

{{- define "summary" -}}
<section class="rb-section"><h2>Executive Summary</h2><p class="rb-summary">{{.Summary}}</p></section>
{{- end}}

{{- define "experience" -}}
<section class="rb-section"><h2>Professional Experience</h2>
{{- range .}}{{if or .Company .Position}}
<div class="rb-entry">
<div class="rb-row"><div><span class="rb-strong">{{.Position}}</span>
{{- if .Company}}<span> — {{.Company}}</span>{{end}}</div>
<span class="rb-date">{{dateRange .StartDate .EffectiveEnd}}</span></div>
{{- if .Location}}<div class="rb-small rb-italic">{{.Location}}</div>{{end}}
{{- if .Description}}<div class="rb-text">{{formatted .Description}}</div>{{end}}
</div>
{{- end}}{{end}}
</section>
{{- end}}

{{- define "education" -}}
<section class="rb-section"><h2>Education</h2>
{{- range .}}{{if or .Institution .Degree}}
<div class="rb-entry rb-center">
<div class="rb-strong">{{.Institution}}</div>
<div class="rb-italic">{{.Degree}}{{if .Field}} in {{.Field}}{{end}}
{{- if .GPA}}<span> — GPA: {{.GPA}}</span>{{end}}</div>
<div class="rb-small">{{dateRange .StartDate .EndDate}}{{if .Location}} — {{.Location}}{{end}}</div>
</div>
{{- end}}{{end}}
</section>
{{- end}}

{{- define "skills" -}}
<section class="rb-section"><h2>Core Competencies</h2>
<div class="rb-text rb-center">{{join .All " • "}}</div></section>
{{- end}}

{{- define "projects" -}}
<section class="rb-section"><h2>Notable Projects</h2>
{{- range .}}{{if .Name}}
<div class="rb-entry">
<div class="rb-row"><span class="rb-strong">{{.Name}}</span>
<span class="rb-date">{{dateRange .StartDate .EndDate}}</span></div>
{{- if .Technologies}}<div class="rb-small rb-italic">{{.Technologies}}</div>{{end}}
{{- if .Description}}<div class="rb-text">{{formatted .Description}}</div>{{end}}
</div>
{{- end}}{{end}}
</section>
{{- end}}
`

const executiveCSS template.CSS = `
.rb-page { font-family: Garamond, Georgia, serif; color: #0f172a; padding: 48px 56px; }
.rb-header { text-align: center; border-bottom: 2px solid #0f172a; padding-bottom: 16px; margin-bottom: 20px; }
.rb-header h1 { font-size: 28px; text-transform: uppercase; letter-spacing: .2em; margin: 0 0 12px; }
.rb-contact { display: flex; flex-wrap: wrap; justify-content: center; gap: 8px; font-size: 12px; color: #475569; }
.rb-contact a { color: inherit; text-decoration: none; }
.rb-section { margin-bottom: 18px; }
.rb-section h2 { text-align: center; font-size: 13px; text-transform: uppercase; letter-spacing: .2em; border-bottom: 1px solid #cbd5e1; padding-bottom: 6px; margin: 0 0 10px; }
.rb-summary { font-style: italic; text-align: center; }
.rb-entry { margin-bottom: 12px; }
.rb-row { display: flex; justify-content: space-between; align-items: baseline; }
.rb-strong { font-weight: 700; }
.rb-italic { font-style: italic; }
.rb-center { text-align: center; }
.rb-small, .rb-date { font-size: 12px; color: #475569; }
.rb-text { font-size: 13px; margin-top: 4px; }
`
