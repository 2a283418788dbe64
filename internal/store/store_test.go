package store

import (
	"testing"

	"github.com/askohli/hunt/internal/search"
)

func TestStore_JobResultOverwrite(t *testing.T) {
	s := NewStore()

	if _, ok := s.JobResult(); ok {
		t.Fatal("expected no job result in a fresh store")
	}

	s.SetJobResult(search.JobResult{JobRole: "AI Engineer", TotalJobs: 3})
	s.SetJobResult(search.JobResult{JobRole: "Data Scientist", TotalJobs: 5})

	r, ok := s.JobResult()
	if !ok {
		t.Fatal("expected a job result")
	}
	if r.JobRole != "Data Scientist" || r.TotalJobs != 5 {
		t.Errorf("expected latest result to win, got %+v", r)
	}
}

func TestStore_ClearJobResult(t *testing.T) {
	s := NewStore()
	s.SetJobResult(search.JobResult{TotalJobs: 1})
	s.ClearJobResult()

	if _, ok := s.JobResult(); ok {
		t.Error("expected job result cleared")
	}
}

func TestStore_IndependentKinds(t *testing.T) {
	s := NewStore()
	s.SetJobResult(search.JobResult{TotalJobs: 2})
	s.SetInterviewResult(search.InterviewResult{Domain: "SQL"})

	s.ClearJobResult()

	if _, ok := s.InterviewResult(); !ok {
		t.Error("clearing the job result must not touch the interview result")
	}
}

func TestStore_ToggleSavedInvolution(t *testing.T) {
	s := NewStore()
	job := search.Job{Title: "ML Engineer", Company: "Acme", URL: "https://a"}

	if !s.ToggleSaved(job) {
		t.Error("first toggle should save")
	}
	if !s.IsSaved(job.URL) {
		t.Error("job should be saved")
	}
	if s.ToggleSaved(job) {
		t.Error("second toggle should unsave")
	}
	if s.IsSaved(job.URL) {
		t.Error("membership should be restored to original")
	}
}

func TestStore_SavedJobsOrder(t *testing.T) {
	s := NewStore()
	a := search.Job{Title: "A", URL: "https://a"}
	b := search.Job{Title: "B", URL: "https://b"}
	c := search.Job{Title: "C", URL: "https://c"}

	s.ToggleSaved(a)
	s.ToggleSaved(b)
	s.ToggleSaved(c)
	s.ToggleSaved(b) // remove

	jobs := s.SavedJobs()
	if len(jobs) != 2 {
		t.Fatalf("expected 2 saved jobs, got %d", len(jobs))
	}
	if jobs[0].URL != "https://a" || jobs[1].URL != "https://c" {
		t.Errorf("expected first-saved order, got %v", jobs)
	}
}

func TestStore_ExpandedResetOnNewInterviewResult(t *testing.T) {
	s := NewStore()
	s.SetInterviewResult(search.InterviewResult{Domain: "SQL"})

	s.ToggleExpanded(0)
	s.ToggleExpanded(3)
	if !s.IsExpanded(3) {
		t.Fatal("expected index 3 expanded")
	}

	// A replacement result must not inherit stale expansion indices.
	s.SetInterviewResult(search.InterviewResult{Domain: "DSA"})
	if s.IsExpanded(0) || s.IsExpanded(3) {
		t.Error("expected expansion state reset with the new result")
	}
}

func TestExpandedQuestionSet_ToggleInvolution(t *testing.T) {
	e := NewExpandedQuestionSet()
	if !e.Toggle(2) {
		t.Error("first toggle expands")
	}
	if e.Toggle(2) {
		t.Error("second toggle collapses")
	}
	if e.Len() != 0 {
		t.Errorf("expected empty set, got %d", e.Len())
	}
}

func TestRelevanceBadge(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{85, 9},  // 8.5 rounds up
		{75, 8},  // boundary rounds up
		{84, 8},  // 8.4 rounds down
		{0, 0},
		{100, 10},
		{120, 12}, // out of range passes through unvalidated
	}

	for _, tt := range tests {
		if got := RelevanceBadge(tt.score); got != tt.want {
			t.Errorf("RelevanceBadge(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}
