package domain

// PersonalInfo holds the scalar contact fields of a resume. Location is
// derived from City, State and Country; see ComposeLocation.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"`

	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	ShowCountry bool   `json:"showCountry"`
	ShowState   bool   `json:"showState"`
	ShowCity    bool   `json:"showCity"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EffectiveEnd is the end date as displayed: empty while the role is current.
func (e Experience) EffectiveEnd() string {
	if e.Current {
		return ""
	}
	return e.EndDate
}

type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	Field        string `json:"field"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	GPA          string `json:"gpa"`
	Achievements string `json:"achievements"`
}

type SkillCategory struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// Resume is the root aggregate edited by a single session.
type Resume struct {
	PersonalInfo    PersonalInfo    `json:"personalInfo"`
	Experience      []Experience    `json:"experience"`
	Education       []Education     `json:"education"`
	SkillCategories []SkillCategory `json:"skillCategories"`
	Projects        []Project       `json:"projects"`
	SectionOrder    []Section       `json:"sectionOrder"`
	ActiveTemplate  Template        `json:"activeTemplate"`
}

const DefaultCategoryTitle = "Technical Skills"

// NewResume returns the default skeleton: one blank entry per repeatable
// section, one empty category and the default section order.
func NewResume(ids IDSource) Resume {
	if ids == nil {
		ids = DefaultIDs
	}
	return Resume{
		PersonalInfo:    NewPersonalInfo(),
		Experience:      []Experience{{ID: ids.NextID()}},
		Education:       []Education{{ID: ids.NextID()}},
		SkillCategories: []SkillCategory{{ID: ids.NextID(), Title: DefaultCategoryTitle, Skills: []string{}}},
		Projects:        []Project{{ID: ids.NextID()}},
		SectionOrder:    DefaultSectionOrder(),
		ActiveTemplate:  TemplateMinimalist,
	}
}

func NewPersonalInfo() PersonalInfo {
	return PersonalInfo{ShowCountry: true, ShowState: true, ShowCity: true}
}

// Clone returns a deep copy; the result shares no slices with r.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = cloneSlice(r.Experience)
	out.Education = cloneSlice(r.Education)
	out.Projects = cloneSlice(r.Projects)
	out.SectionOrder = cloneSlice(r.SectionOrder)
	out.SkillCategories = cloneSlice(r.SkillCategories)
	for i := range out.SkillCategories {
		out.SkillCategories[i].Skills = cloneSlice(out.SkillCategories[i].Skills)
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
