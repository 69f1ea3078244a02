package editor

import "github.com/capsloque-org/ResumeBuilder/internal/domain"

// setPersonal writes a string field and recomputes the derived location.
// It reports false for unknown fields and for "location" itself.
func setPersonal(p *domain.PersonalInfo, field, value string) bool {
	switch field {
	case "fullName":
		p.FullName = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "linkedin":
		p.LinkedIn = value
	case "github":
		p.GitHub = value
	case "portfolio":
		p.Portfolio = value
	case "summary":
		p.Summary = value
	case "country":
		// states are scoped to a country
		p.Country = value
		p.State = ""
	case "state":
		p.State = value
	case "city":
		p.City = value
	default:
		return false
	}
	p.Location = domain.ComposeLocation(*p)
	return true
}

func setPersonalFlag(p *domain.PersonalInfo, field string, value bool) bool {
	switch field {
	case "showCountry":
		p.ShowCountry = value
	case "showState":
		p.ShowState = value
	case "showCity":
		p.ShowCity = value
	default:
		return false
	}
	p.Location = domain.ComposeLocation(*p)
	return true
}

func setExperience(e *domain.Experience, field, value string) bool {
	switch field {
	case "company":
		e.Company = value
	case "position":
		e.Position = value
	case "location":
		e.Location = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "description":
		e.Description = value
	default:
		return false
	}
	return true
}

func setEducation(e *domain.Education, field, value string) bool {
	switch field {
	case "institution":
		e.Institution = value
	case "degree":
		e.Degree = value
	case "field":
		e.Field = value
	case "location":
		e.Location = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "gpa":
		e.GPA = value
	case "achievements":
		e.Achievements = value
	default:
		return false
	}
	return true
}

func setProject(p *domain.Project, field, value string) bool {
	switch field {
	case "name":
		p.Name = value
	case "description":
		p.Description = value
	case "technologies":
		p.Technologies = value
	case "link":
		p.Link = value
	case "startDate":
		p.StartDate = value
	case "endDate":
		p.EndDate = value
	default:
		return false
	}
	return true
}

func isEntrySection(s domain.Section) bool {
	return s == domain.SectionExperience || s == domain.SectionEducation || s == domain.SectionProjects
}

func entryCount(doc domain.Resume, s domain.Section) int {
	switch s {
	case domain.SectionExperience:
		return len(doc.Experience)
	case domain.SectionEducation:
		return len(doc.Education)
	case domain.SectionProjects:
		return len(doc.Projects)
	}
	return 0
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// swapNeighbor swaps s[i] with its neighbour in direction d and reports
// whether anything moved.
func swapNeighbor[T any](s []T, i int, d Direction) bool {
	var j int
	switch d {
	case Up:
		j = i - 1
	case Down:
		j = i + 1
	default:
		return false
	}
	if i < 0 || i >= len(s) || j < 0 || j >= len(s) {
		return false
	}
	s[i], s[j] = s[j], s[i]
	return true
}
