package store

import (
	"sync"

	"github.com/askohli/hunt/internal/search"
)

// Store holds the latest completed result per workflow kind together with the
// small local sets derived from them. It is safe for concurrent access.
// Nothing here persists across process restarts.
type Store struct {
	mu        sync.RWMutex
	job       *search.JobResult
	interview *search.InterviewResult
	saved     *SavedJobSet
	expanded  *ExpandedQuestionSet
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		saved:    NewSavedJobSet(),
		expanded: NewExpandedQuestionSet(),
	}
}

// SetJobResult overwrites the stored job result.
// Called by the job workflow machine on a completed run; no other component
// writes job state.
func (s *Store) SetJobResult(r search.JobResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job = &r
}

// JobResult returns the latest completed job result, if any.
func (s *Store) JobResult() (search.JobResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.job == nil {
		return search.JobResult{}, false
	}
	return *s.job, true
}

// ClearJobResult drops the stored job result. Called when a fresh job run
// starts, before its request is sent.
func (s *Store) ClearJobResult() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job = nil
}

// SetInterviewResult overwrites the stored interview result. The expanded
// question set is reset: indices from a superseded result would otherwise
// point into an unrelated question list.
func (s *Store) SetInterviewResult(r search.InterviewResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interview = &r
	s.expanded.Reset()
}

// InterviewResult returns the latest completed interview result, if any.
func (s *Store) InterviewResult() (search.InterviewResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.interview == nil {
		return search.InterviewResult{}, false
	}
	return *s.interview, true
}

// ClearInterviewResult drops the stored interview result.
func (s *Store) ClearInterviewResult() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interview = nil
}

// ToggleSaved flips membership of a job in the saved set.
// Returns true if the job is saved after the call.
func (s *Store) ToggleSaved(j search.Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved.Toggle(j)
}

// IsSaved reports saved-set membership by job URL.
func (s *Store) IsSaved(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved.Contains(url)
}

// SavedJobs returns the saved jobs in the order they were first saved.
func (s *Store) SavedJobs() []search.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved.Jobs()
}

// ToggleExpanded flips expansion of the question at the given index in the
// current interview result. Returns true if the index is expanded after the call.
func (s *Store) ToggleExpanded(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded.Toggle(index)
}

// IsExpanded reports whether the question at index is expanded.
func (s *Store) IsExpanded(index int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expanded.Contains(index)
}
