package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/askohli/hunt/internal/events"
	"github.com/askohli/hunt/internal/search"
	"github.com/askohli/hunt/internal/store"
)

// ProgressHandler returns a bus handler that prints human-readable progress
// lines. Used when the TUI is disabled (piped output, --no-tui).
func ProgressHandler(w io.Writer) events.Handler {
	return func(e events.Event) {
		switch e.Type {
		case events.Connected:
			fmt.Fprintln(w, "connected to search service")
		case events.Thought:
			if p, ok := e.Payload.(events.ThoughtPayload); ok {
				fmt.Fprintf(w, "  %s: %s\n", p.Agent, p.Message)
			}
		case events.SearchStarted:
			if p, ok := e.Payload.(events.SearchStartedPayload); ok {
				fmt.Fprintf(w, "searching for %q in %q\n", p.JobRole, p.Location)
			}
		case events.SourceCompleted:
			if p, ok := e.Payload.(events.SourceCompletedPayload); ok {
				fmt.Fprintf(w, "  %s: %d jobs (%d total)\n", p.Source, p.JobCount, p.TotalSoFar)
			}
		case events.InterviewSearchStarted:
			if p, ok := e.Payload.(events.InterviewStartedPayload); ok {
				fmt.Fprintln(w, p.Message)
			}
		case events.QuestionExtracted:
			if p, ok := e.Payload.(events.QuestionPreviewPayload); ok {
				fmt.Fprintf(w, "  question: %s\n", truncate(p.Question, 80))
			}
		case events.SolutionGenerated:
			fmt.Fprintln(w, "  solution generated")
		case events.Disconnect:
			fmt.Fprintln(w, "connection lost")
		case events.ReconnectAttempt:
			if p, ok := e.Payload.(events.ReconnectPayload); ok {
				fmt.Fprintf(w, "reconnecting (attempt %d/%d)\n", p.Attempt, p.Max)
			}
		case events.ReconnectFailed:
			fmt.Fprintln(w, "reconnection failed, giving up")
		}
	}
}

// FormatJobResult renders a completed job search for line-oriented output.
func FormatJobResult(r search.JobResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%d jobs for %q", r.TotalJobs, r.JobRole)
	if r.Location != "" {
		fmt.Fprintf(&b, " in %q", r.Location)
	}
	b.WriteString("\n\n")

	for i, j := range r.Jobs {
		b.WriteString(FormatJob(i+1, j))
	}

	if r.Summary != nil {
		b.WriteString(formatSummary(*r.Summary))
	}
	return b.String()
}

// FormatJob renders a single job listing.
func FormatJob(n int, j search.Job) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%3d. %s — %s", n, j.Title, j.Company)
	if j.Location != "" {
		fmt.Fprintf(&b, " (%s)", j.Location)
	}
	if badge, ok := relevanceLabel(j.RelevanceScore); ok {
		fmt.Fprintf(&b, "  [%s]", badge)
	}
	b.WriteString("\n")

	if j.Salary != "" {
		fmt.Fprintf(&b, "     %s\n", j.Salary)
	}
	fmt.Fprintf(&b, "     %s (%s)\n", j.URL, j.Source)
	return b.String()
}

// relevanceLabel renders the badge shown next to ranked listings.
func relevanceLabel(score *int) (string, bool) {
	if score == nil {
		return "", false
	}
	return fmt.Sprintf("%d/10", store.RelevanceBadge(*score)), true
}

// formatSummary renders the server's market summary block.
func formatSummary(s search.MarketSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nMarket summary: %d jobs across %d sources\n",
		s.TotalJobsFound, s.SourcesSearched)
	for _, c := range s.TopCompanies {
		fmt.Fprintf(&b, "  %-24s %d\n", c.Company, c.Count)
	}
	return b.String()
}

// FormatInterviewResult renders a completed interview-question search.
func FormatInterviewResult(r search.InterviewResult, showSolutions bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%d questions for %s", r.TotalQuestions, r.Domain)
	if r.Company != "" {
		fmt.Fprintf(&b, " at %s", r.Company)
	}
	if r.Difficulty != "" && r.Difficulty != "all" {
		fmt.Fprintf(&b, " (%s)", r.Difficulty)
	}
	b.WriteString("\n\n")

	for i, q := range r.Questions {
		b.WriteString(FormatQuestion(i+1, q, showSolutions))
	}
	return b.String()
}

// FormatQuestion renders one question, optionally with its solution.
func FormatQuestion(n int, q search.Question, showSolution bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%3d. %s\n", n, q.Question)

	var meta []string
	if q.Difficulty != "" {
		meta = append(meta, q.Difficulty)
	}
	if q.Company != "" {
		meta = append(meta, q.Company)
	}
	if q.CredibilityScore != nil {
		meta = append(meta, fmt.Sprintf("credibility %d/10", *q.CredibilityScore))
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "     %s\n", strings.Join(meta, " | "))
	}
	if showSolution && q.Solution != "" {
		fmt.Fprintf(&b, "     %s\n", q.Solution)
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
