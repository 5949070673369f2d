package ai

// Entry is one item of a static catalogue.
type Entry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type QuestionCatalog struct {
	Categories       []Entry `json:"categories"`
	DifficultyLevels []Entry `json:"difficulty_levels"`
}

type TemplateCatalog struct {
	Templates []Entry `json:"templates"`
}

var questionCatalog = QuestionCatalog{
	Categories: []Entry{
		{ID: "technical", Name: "Technical", Description: "Coding and technical problem solving"},
		{ID: "behavioral", Name: "Behavioral", Description: "Past experiences and STAR method questions"},
		{ID: "system_design", Name: "System Design", Description: "Architecture and scalability questions"},
		{ID: "cultural_fit", Name: "Cultural Fit", Description: "Values, teamwork, and company culture"},
	},
	DifficultyLevels: []Entry{
		{ID: "junior", Name: "Junior (1-2 years)", Description: "Entry level questions"},
		{ID: "mid-level", Name: "Mid-level (3-5 years)", Description: "Intermediate complexity"},
		{ID: "senior", Name: "Senior (5+ years)", Description: "Advanced and leadership questions"},
	},
}

var templateCatalog = TemplateCatalog{
	Templates: []Entry{
		{ID: "standard", Name: "Standard Offer", Description: "General offer letter template"},
		{ID: "senior", Name: "Senior Role", Description: "Template for senior positions with leadership"},
		{ID: "remote", Name: "Remote Position", Description: "Template for remote work arrangements"},
		{ID: "equity_heavy", Name: "Equity Heavy", Description: "Template emphasizing stock options"},
	},
}

// Questions returns the interview question categories and difficulty levels.
func Questions() QuestionCatalog { return questionCatalog }

// Templates returns the offer letter templates.
func Templates() TemplateCatalog { return templateCatalog }

func known(entries []Entry, id string) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

func templateName(id string) string {
	for _, e := range templateCatalog.Templates {
		if e.ID == id {
			return e.Name
		}
	}
	return ""
}
