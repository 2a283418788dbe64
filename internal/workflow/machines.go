package workflow

import (
	"context"
	"fmt"

	"github.com/askohli/hunt/internal/api"
	"github.com/askohli/hunt/internal/search"
	"github.com/askohli/hunt/internal/store"
)

// API is the subset of the request/response client the machines use.
type API interface {
	StartJobSearch(ctx context.Context, p search.JobSearchParams) (*api.SearchAck, error)
	StartInterviewSearch(ctx context.Context, p search.InterviewSearchParams) (*api.InterviewAck, error)
}

// JobMachine drives the job search workflow.
type JobMachine = Machine[search.JobSearchParams, search.JobResult]

// InterviewMachine drives the interview-question search workflow.
type InterviewMachine = Machine[search.InterviewSearchParams, search.InterviewResult]

// NewJobMachine wires a job machine to the API client and result store.
func NewJobMachine(client API, st *store.Store) *JobMachine {
	request := func(ctx context.Context, p search.JobSearchParams) (string, error) {
		ack, err := client.StartJobSearch(ctx, p)
		if err != nil {
			return "", err
		}
		return ack.Message, nil
	}
	return NewMachine[search.JobSearchParams, search.JobResult](
		search.KindJob, request, st.SetJobResult, st.ClearJobResult)
}

// NewInterviewMachine wires an interview machine to the API client and result store.
func NewInterviewMachine(client API, st *store.Store) *InterviewMachine {
	request := func(ctx context.Context, p search.InterviewSearchParams) (string, error) {
		ack, err := client.StartInterviewSearch(ctx, p)
		if err != nil {
			return "", err
		}
		msg := ack.Message
		if ack.EstimatedTime != "" {
			msg = fmt.Sprintf("%s (estimated time %s)", msg, ack.EstimatedTime)
		}
		return msg, nil
	}
	return NewMachine[search.InterviewSearchParams, search.InterviewResult](
		search.KindInterview, request, st.SetInterviewResult, st.ClearInterviewResult)
}
