package store

import (
	"math"

	"github.com/askohli/hunt/internal/search"
)

// SavedJobSet is an in-memory set of jobs keyed by URL.
// Toggle is an involution: applying it twice with the same job restores the
// original membership.
type SavedJobSet struct {
	byURL map[string]search.Job
	order []string
}

// NewSavedJobSet creates an empty set.
func NewSavedJobSet() *SavedJobSet {
	return &SavedJobSet{byURL: make(map[string]search.Job)}
}

// Toggle adds the job if absent, removes it if present.
// Returns true if the job is a member after the call.
func (s *SavedJobSet) Toggle(j search.Job) bool {
	if _, ok := s.byURL[j.URL]; ok {
		delete(s.byURL, j.URL)
		for i, url := range s.order {
			if url == j.URL {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.byURL[j.URL] = j
	s.order = append(s.order, j.URL)
	return true
}

// Contains reports membership by URL.
func (s *SavedJobSet) Contains(url string) bool {
	_, ok := s.byURL[url]
	return ok
}

// Jobs returns members in first-saved order.
func (s *SavedJobSet) Jobs() []search.Job {
	jobs := make([]search.Job, 0, len(s.order))
	for _, url := range s.order {
		jobs = append(jobs, s.byURL[url])
	}
	return jobs
}

// Len returns the number of saved jobs.
func (s *SavedJobSet) Len() int {
	return len(s.byURL)
}

// ExpandedQuestionSet tracks which question indices of the current interview
// result are expanded.
type ExpandedQuestionSet struct {
	indices map[int]struct{}
}

// NewExpandedQuestionSet creates an empty set.
func NewExpandedQuestionSet() *ExpandedQuestionSet {
	return &ExpandedQuestionSet{indices: make(map[int]struct{})}
}

// Toggle flips expansion at index. Returns true if expanded after the call.
func (e *ExpandedQuestionSet) Toggle(index int) bool {
	if _, ok := e.indices[index]; ok {
		delete(e.indices, index)
		return false
	}
	e.indices[index] = struct{}{}
	return true
}

// Contains reports whether index is expanded.
func (e *ExpandedQuestionSet) Contains(index int) bool {
	_, ok := e.indices[index]
	return ok
}

// Reset collapses everything. Called when a new result replaces the old one.
func (e *ExpandedQuestionSet) Reset() {
	e.indices = make(map[int]struct{})
}

// Len returns the number of expanded indices.
func (e *ExpandedQuestionSet) Len() int {
	return len(e.indices)
}

// RelevanceBadge maps a raw relevance score in [0,100] to a 0-10 badge:
// score/10 rounded half up, so 85 -> 9 and 75 -> 8.
// Out-of-range scores pass through unvalidated.
func RelevanceBadge(score int) int {
	return int(math.Floor(float64(score)/10 + 0.5))
}
