package cli

import (
	"strings"
	"testing"

	"github.com/askohli/hunt/internal/events"
	"github.com/askohli/hunt/internal/search"
)

func intPtr(n int) *int { return &n }

func TestFormatJob(t *testing.T) {
	j := search.Job{
		Title:          "ML Engineer",
		Company:        "Acme",
		Location:       "Pune",
		URL:            "https://example.com/1",
		Source:         "linkedin",
		Salary:         "₹25L-₹35L",
		RelevanceScore: intPtr(85),
	}

	out := FormatJob(1, j)

	for _, want := range []string{"ML Engineer", "Acme", "(Pune)", "[9/10]", "₹25L-₹35L", "https://example.com/1", "(linkedin)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatJob_NoScoreNoBadge(t *testing.T) {
	j := search.Job{Title: "Analyst", Company: "Acme", URL: "u", Source: "naukri"}
	out := FormatJob(1, j)
	if strings.Contains(out, "/10") {
		t.Errorf("unranked job must not carry a badge, got:\n%s", out)
	}
}

func TestFormatJobResult_Summary(t *testing.T) {
	r := search.JobResult{
		JobRole:   "AI Engineer",
		Location:  "Pune",
		TotalJobs: 2,
		Jobs: []search.Job{
			{Title: "A", Company: "X", URL: "u1", Source: "linkedin"},
			{Title: "B", Company: "Y", URL: "u2", Source: "naukri"},
		},
		Summary: &search.MarketSummary{
			TotalJobsFound:  2,
			SourcesSearched: 2,
			TopCompanies:    []search.CompanyCount{{Company: "X", Count: 1}},
		},
	}

	out := FormatJobResult(r)
	if !strings.Contains(out, `2 jobs for "AI Engineer" in "Pune"`) {
		t.Errorf("missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "Market summary: 2 jobs across 2 sources") {
		t.Errorf("missing summary, got:\n%s", out)
	}
}

func TestFormatQuestion_SolutionToggle(t *testing.T) {
	q := search.Question{
		Question:         "Explain overfitting",
		Solution:         "Overfitting is when a model memorizes training data.",
		Difficulty:       "medium",
		Company:          "Acme",
		CredibilityScore: intPtr(8),
	}

	withSolution := FormatQuestion(1, q, true)
	if !strings.Contains(withSolution, "memorizes training data") {
		t.Errorf("expected solution in output, got:\n%s", withSolution)
	}
	if !strings.Contains(withSolution, "medium | Acme | credibility 8/10") {
		t.Errorf("expected metadata line, got:\n%s", withSolution)
	}

	withoutSolution := FormatQuestion(1, q, false)
	if strings.Contains(withoutSolution, "memorizes") {
		t.Errorf("solution must be hidden, got:\n%s", withoutSolution)
	}
}

func TestProgressHandler(t *testing.T) {
	var b strings.Builder
	h := ProgressHandler(&b)

	h(events.Event{Type: events.Connected, Payload: events.SessionPayload{Message: "hi"}})
	h(events.Event{Type: events.Thought, Payload: events.ThoughtPayload{Agent: "Scout", Message: "scanning boards"}})
	h(events.Event{Type: events.SourceCompleted, Kind: search.KindJob,
		Payload: events.SourceCompletedPayload{Source: "linkedin", JobCount: 4, TotalSoFar: 4}})
	h(events.Event{Type: events.ReconnectAttempt, Payload: events.ReconnectPayload{Attempt: 2, Max: 10}})

	out := b.String()
	for _, want := range []string{
		"connected to search service",
		"Scout: scanning boards",
		"linkedin: 4 jobs (4 total)",
		"reconnecting (attempt 2/10)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
