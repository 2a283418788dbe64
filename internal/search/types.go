package search

import (
	"fmt"
	"strings"
)

// Kind distinguishes the two independent search workflows.
type Kind string

const (
	KindJob       Kind = "job"
	KindInterview Kind = "interview"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Job is a single job listing returned by the remote service.
// URL is the unique key used for deduplication and saved-job membership.
type Job struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	URL             string   `json:"url"`
	Salary          string   `json:"salary,omitempty"`
	JobType         string   `json:"job_type,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	PostedDate      string   `json:"posted_date,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Source          string   `json:"source"`

	// RelevanceScore is the server-assigned score in [0,100].
	// Nil when the server did not rank this listing.
	RelevanceScore *int `json:"relevance_score,omitempty"`
}

// MarketSummary aggregates statistics the server computes over a completed search.
type MarketSummary struct {
	TotalJobsFound   int            `json:"total_jobs_found"`
	SourcesSearched  int            `json:"sources_searched"`
	SourceBreakdown  map[string]int `json:"source_breakdown,omitempty"`
	TopCompanies     []CompanyCount `json:"top_companies,omitempty"`
	JobTypes         map[string]int `json:"job_types,omitempty"`
	ExperienceLevels map[string]int `json:"experience_levels,omitempty"`
	SearchTimestamp  string         `json:"search_timestamp,omitempty"`
}

// CompanyCount is one entry in the top-companies ranking.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// JobResult is the full payload of a completed job search.
type JobResult struct {
	JobRole   string         `json:"job_role"`
	Location  string         `json:"location"`
	Timestamp string         `json:"timestamp,omitempty"`
	TotalJobs int            `json:"total_jobs"`
	Jobs      []Job          `json:"all_jobs"`
	Summary   *MarketSummary `json:"summary,omitempty"`
}

// Question is a single interview question with its generated solution.
type Question struct {
	Question    string `json:"question"`
	Solution    string `json:"solution"`
	Domain      string `json:"domain"`
	Company     string `json:"company,omitempty"`
	Year        *int   `json:"year,omitempty"`
	SourceURL   string `json:"source_url,omitempty"`
	SourceTitle string `json:"source_title,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	SourceType  string `json:"source_type,omitempty"`

	// CredibilityScore rates the source in [0,10].
	CredibilityScore *int `json:"credibility_score,omitempty"`

	QuestionType   string `json:"question_type,omitempty"`
	RelevanceScore *int   `json:"relevance_score,omitempty"`
}

// SearchMetadata describes how the server produced an interview result.
type SearchMetadata struct {
	SourcesSearched     int  `json:"sources_searched"`
	SearchQueriesUsed   int  `json:"search_queries_used"`
	CredibilityFiltered bool `json:"credibility_filtered"`
	AIEnhanced          bool `json:"ai_enhanced"`
	RecentQuestionsOnly bool `json:"recent_questions_only"`
}

// InterviewResult is the full payload of a completed interview-question search.
type InterviewResult struct {
	Domain         string          `json:"domain"`
	Company        string          `json:"company,omitempty"`
	Difficulty     string          `json:"difficulty"`
	Questions      []Question      `json:"questions"`
	TotalQuestions int             `json:"total_questions"`
	Metadata       *SearchMetadata `json:"search_metadata,omitempty"`
	Timestamp      string          `json:"timestamp,omitempty"`
}

// JobFilters are server-side filter parameters. The client never re-filters
// results locally; these are passed through verbatim.
type JobFilters struct {
	ExperienceLevel string `json:"experience_level,omitempty"`
	Experience      string `json:"experience,omitempty"`
	JobType         string `json:"job_type,omitempty"`
	SalaryRange     string `json:"salary_range,omitempty"`
}

// JobSearchParams are the inputs to a job search run.
type JobSearchParams struct {
	Role     string
	Location string
	Filters  JobFilters
}

// Validate checks required fields before any network call is made.
func (p JobSearchParams) Validate() error {
	role := strings.TrimSpace(p.Role)
	if role == "" {
		return &ValidationError{Field: "role", Reason: "is required"}
	}
	if len(role) < 2 {
		return &ValidationError{Field: "role", Reason: "must be at least 2 characters"}
	}
	return nil
}

// InterviewSearchParams are the inputs to an interview-question search run.
type InterviewSearchParams struct {
	Domain     string
	Company    string
	Difficulty string
	Count      int
}

// Validate checks required fields before any network call is made.
func (p InterviewSearchParams) Validate() error {
	domain := strings.TrimSpace(p.Domain)
	if domain == "" {
		return &ValidationError{Field: "domain", Reason: "is required"}
	}
	if len(domain) < 2 {
		return &ValidationError{Field: "domain", Reason: "must be at least 2 characters"}
	}
	switch p.Difficulty {
	case "", "all", "easy", "medium", "hard":
	default:
		return &ValidationError{Field: "difficulty", Reason: "must be one of all, easy, medium, hard"}
	}
	return nil
}

// ValidationError reports a missing or malformed input field.
// It is resolved locally and never reaches the server.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
