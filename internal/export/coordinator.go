// Package export drives the asynchronous PDF export path for a completed
// interview-question result. Export is a plain request/response exchange; it
// never touches the event channel and never mutates workflow state.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/askohli/hunt/internal/api"
	"github.com/askohli/hunt/internal/search"
)

// ErrNoResult is returned when export is requested before an
// interview-question search has completed.
var ErrNoResult = errors.New("no completed interview result to export")

// Renderer is the subset of the API client the coordinator uses.
type Renderer interface {
	ExportInterviewPDF(ctx context.Context, req api.ExportRequest) ([]byte, error)
}

// Results provides the latest completed interview result, if any.
type Results interface {
	InterviewResult() (search.InterviewResult, bool)
}

// Options tunes one export call.
type Options struct {
	// IncludeSolutions embeds generated solutions in the artifact.
	IncludeSolutions bool

	// Difficulty filters the exported questions server-side.
	// Empty means "all".
	Difficulty string
}

// Artifact is a rendered export: raw PDF bytes plus the derived filename.
type Artifact struct {
	Name string
	Data []byte
}

// Coordinator renders a completed interview result into a PDF via the server.
type Coordinator struct {
	renderer Renderer
	results  Results
	now      func() time.Time
}

// NewCoordinator creates a coordinator over the API client and result store.
func NewCoordinator(renderer Renderer, results Results) *Coordinator {
	return &Coordinator{
		renderer: renderer,
		results:  results,
		now:      time.Now,
	}
}

// Export renders the current interview result. Without a completed result it
// returns ErrNoResult and performs no network call. A failed render surfaces
// the server's RequestError; the stored result stays untouched either way and
// the caller may simply retry.
func (c *Coordinator) Export(ctx context.Context, opts Options) (*Artifact, error) {
	result, ok := c.results.InterviewResult()
	if !ok {
		return nil, ErrNoResult
	}

	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = "all"
	}

	data, err := c.renderer.ExportInterviewPDF(ctx, api.ExportRequest{
		Domain:           result.Domain,
		Questions:        result.Questions,
		Company:          result.Company,
		IncludeSolutions: opts.IncludeSolutions,
		DifficultyFilter: difficulty,
	})
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Name: filename(result.Domain, result.Company, difficulty, c.now()),
		Data: data,
	}, nil
}

// filename derives the artifact name the server would attach. The difficulty
// segment is present only when it narrows the set.
func filename(domain, company, difficulty string, ts time.Time) string {
	name := "interview_prep_" + slug(domain)
	if company != "" {
		name += "_" + slug(company)
	}
	if difficulty != "all" {
		name += "_" + difficulty
	}
	return fmt.Sprintf("%s_%s.pdf", name, ts.Format("20060102_150405"))
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
