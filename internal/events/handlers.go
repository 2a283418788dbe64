package events

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// LogConfig configures the logging handler
type LogConfig struct {
	// Writer is where logs are written (default: os.Stderr)
	Writer io.Writer

	// IncludePayload includes event payload in log output
	IncludePayload bool

	// TimeFormat is the timestamp format (default: RFC3339)
	TimeFormat string
}

// LogHandler returns a handler that logs events to the configured writer
// Format: [event.type] kind error=...
func LogHandler(cfg LogConfig) Handler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339
	}

	return func(e Event) {
		var buf strings.Builder
		buf.WriteString(e.ReceivedAt.Format(cfg.TimeFormat))
		buf.WriteString(" [")
		buf.WriteString(string(e.Type))
		buf.WriteString("]")

		if e.Kind != "" {
			buf.WriteString(" ")
			buf.WriteString(string(e.Kind))
		}
		if e.Error != "" {
			buf.WriteString(" error=")
			buf.WriteString(e.Error)
		}
		if cfg.IncludePayload && e.Payload != nil {
			fmt.Fprintf(&buf, " payload=%v", e.Payload)
		}
		buf.WriteString("\n")

		fmt.Fprint(cfg.Writer, buf.String())
	}
}
