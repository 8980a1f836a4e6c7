package modem

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/nthnn/SIM900/at"
)

// TestChannel is a test helper that plays a scripted SIM900. Every write is
// recorded; when a written line matches a scripted command, the queued reply
// becomes readable exactly as if the modem had sent it.
type TestChannel struct {
	mu      sync.Mutex
	replies map[string][]string
	rx      bytes.Buffer
	writes  []string
	closed  bool
}

// NewTestChannel creates a new test channel for testing.
// Exported for use in tests.
func NewTestChannel() *TestChannel {
	return &TestChannel{replies: make(map[string][]string)}
}

// Reply queues reply for the next write of command (without CRLF). Replies
// for the same command are consumed in order.
func (t *TestChannel) Reply(command, reply string) *TestChannel {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.replies[command] = append(t.replies[command], reply)
	return t
}

// Dialer returns a Dialer that hands out t.
func (t *TestChannel) Dialer() Dialer {
	return DialerFunc(func(context.Context) (Channel, error) {
		return t, nil
	})
}

func (t *TestChannel) Write(p []byte) (n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0, io.ErrClosedPipe
	}

	written := string(p)
	t.writes = append(t.writes, written)

	command := strings.TrimSuffix(written, at.CRLF)
	if queue := t.replies[command]; len(queue) > 0 {
		t.rx.WriteString(queue[0])
		t.replies[command] = queue[1:]
	}
	return len(p), nil
}

func (t *TestChannel) Available() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rx.Len()
}

func (t *TestChannel) ReadAvailable() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := bytes.Clone(t.rx.Bytes())
	t.rx.Reset()
	return out
}

func (t *TestChannel) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

// SendData queues data to be read from the channel.
// This simulates unsolicited output from the modem.
func (t *TestChannel) SendData(data string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rx.WriteString(data)
}

// Writes returns every write made so far, terminators included.
func (t *TestChannel) Writes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.writes...)
}

// Commands returns every write made so far with the trailing CRLF removed.
func (t *TestChannel) Commands() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.writes))
	for i, w := range t.writes {
		out[i] = strings.TrimSuffix(w, at.CRLF)
	}
	return out
}

// Closed reports whether Close has been called.
func (t *TestChannel) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}
