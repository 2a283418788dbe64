package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/askohli/hunt/internal/search"
)

// RequestError reports a non-success response to a request/response call.
// It aborts the current run only; the orchestration layer keeps going.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed (%d)", e.StatusCode)
}

// DefaultRequestTimeout bounds request/response calls. The event channel is
// exempt; only these short-lived calls time out.
const DefaultRequestTimeout = 30 * time.Second

// Client wraps the remote service's request/response endpoints.
// Workflow progress and results do not flow through here; they arrive on the
// event channel.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the service at baseAddress
// (e.g. "http://localhost:7860").
func New(baseAddress string) *Client {
	return &Client{
		base: strings.TrimRight(baseAddress, "/"),
		http: &http.Client{Timeout: DefaultRequestTimeout},
	}
}

// StartJobSearch notifies the server to begin a job search.
// The server acknowledges immediately and streams progress over the channel.
func (c *Client) StartJobSearch(ctx context.Context, p search.JobSearchParams) (*SearchAck, error) {
	body := jobSearchRequest{
		JobRole:  p.Role,
		Location: p.Location,
		Filters:  p.Filters,
	}

	var ack SearchAck
	if err := c.post(ctx, "/search-jobs", body, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// StartInterviewSearch notifies the server to begin an interview-question search.
func (c *Client) StartInterviewSearch(ctx context.Context, p search.InterviewSearchParams) (*InterviewAck, error) {
	body := interviewSearchRequest{
		Domain:        p.Domain,
		Company:       p.Company,
		Difficulty:    p.Difficulty,
		QuestionCount: p.Count,
	}
	if body.Difficulty == "" {
		body.Difficulty = "all"
	}

	var ack InterviewAck
	if err := c.post(ctx, "/interview-questions", body, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// Suggestions fetches the role suggestion catalog. Called once at startup.
func (c *Client) Suggestions(ctx context.Context) (*SuggestionCatalog, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/job-suggestions", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var catalog SuggestionCatalog
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return &catalog, nil
}

// ExportInterviewPDF requests a rendered PDF for a completed interview result.
// Returns the raw artifact bytes; the filename is derived by the caller.
func (c *Client) ExportInterviewPDF(ctx context.Context, req ExportRequest) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode export request: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/generate-interview-pdf", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	artifact, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return artifact, nil
}

// post sends a JSON body and decodes a JSON acknowledgement.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// newRequest builds a request with a per-call ID for log correlation.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// responseError extracts the server's error message from a non-success reply.
func responseError(resp *http.Response) error {
	rerr := &RequestError{StatusCode: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		rerr.Message = body.Error
	}
	return rerr
}
