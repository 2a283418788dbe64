package channel

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/askohli/hunt/internal/events"
)

// dial opens the event stream and returns its body on success.
func (m *Manager) dial(ctx context.Context) (io.ReadCloser, error) {
	url := strings.TrimRight(m.cfg.BaseAddress, "/") + m.cfg.Path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Op: "dial", Err: err}
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := m.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "dial", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &TransportError{Op: "dial", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	return resp.Body, nil
}

// readStream parses server-sent events until the stream ends.
// Malformed or unknown events are logged and dropped; valid events are
// decoded into typed payloads and emitted on the bus in arrival order.
func (m *Manager) readStream(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var name string
	var data bytes.Buffer

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			if name != "" || data.Len() > 0 {
				m.dispatch(name, data.Bytes())
				name = ""
				data.Reset()
			}

		case strings.HasPrefix(line, ":"):
			// Keepalive comment

		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))

		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}
	return io.EOF
}

// dispatch validates one wire event at the channel boundary and emits it.
func (m *Manager) dispatch(name string, data []byte) {
	if name == "" {
		log.Printf("dropping event with no name: %s", data)
		return
	}

	event, err := events.Decode(name, data)
	if err != nil {
		log.Printf("dropping malformed %q event: %v", name, err)
		return
	}

	m.bus.Emit(event)
}
