package api

import "github.com/askohli/hunt/internal/search"

// SearchAck is the acknowledgement returned by initiate-job-search.
// The actual results arrive later over the event channel.
type SearchAck struct {
	Message   string `json:"message"`
	JobRole   string `json:"job_role"`
	Location  string `json:"location"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
}

// InterviewAck is the acknowledgement returned by initiate-interview-search.
type InterviewAck struct {
	Message           string `json:"message"`
	SearchID          string `json:"search_id,omitempty"`
	Domain            string `json:"domain"`
	Company           string `json:"company,omitempty"`
	Difficulty        string `json:"difficulty,omitempty"`
	ExpectedQuestions int    `json:"expected_questions,omitempty"`
	Status            string `json:"status"`
	EstimatedTime     string `json:"estimated_time,omitempty"`
	Timestamp         string `json:"timestamp,omitempty"`
}

// RoleSuggestion is one suggested job role with its description.
type RoleSuggestion struct {
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
}

// SuggestionCategory groups suggested roles under a titled category.
type SuggestionCategory struct {
	Title string           `json:"title"`
	Roles []RoleSuggestion `json:"roles"`
}

// SuggestionCatalog is the full suggestion response from the server.
type SuggestionCatalog struct {
	Categories map[string]SuggestionCategory `json:"categories"`
}

// Roles flattens the catalog into a single role-name list.
func (c SuggestionCatalog) Roles() []string {
	var roles []string
	for _, cat := range c.Categories {
		for _, r := range cat.Roles {
			roles = append(roles, r.Role)
		}
	}
	return roles
}

// ExportRequest carries a completed interview result to the PDF endpoint.
type ExportRequest struct {
	Domain           string            `json:"domain"`
	Questions        []search.Question `json:"questions"`
	Company          string            `json:"company,omitempty"`
	IncludeSolutions bool              `json:"include_solutions"`
	DifficultyFilter string            `json:"difficulty_filter"`
}

type jobSearchRequest struct {
	JobRole  string             `json:"job_role"`
	Location string             `json:"location"`
	Filters  search.JobFilters  `json:"filters"`
}

type interviewSearchRequest struct {
	Domain        string `json:"domain"`
	Company       string `json:"company,omitempty"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
}
