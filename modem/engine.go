package modem

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nthnn/SIM900/at"
)

// Engine runs the SIM900 request/response cycle over a Channel: write a
// command line, wait a fixed settle interval, then collect whatever the modem
// has sent back.
//
// There is no framing and no timeout other than the settle interval. A reply
// that arrives late is picked up by the next AwaitResponse.
type Engine struct {
	channel Channel
	logger  *slog.Logger
	settle  time.Duration
}

// NewEngine returns an Engine that waits settle before each response is
// collected. A nil logger discards output.
func NewEngine(ch Channel, logger *slog.Logger, settle time.Duration) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	return &Engine{channel: ch, logger: logger, settle: settle}
}

// SendCommand writes text followed by CRLF.
func (e *Engine) SendCommand(text string) error {
	e.logger.Debug("send command", "command", text)
	if _, err := e.channel.Write([]byte(text + at.CRLF)); err != nil {
		e.logger.Error("write command", "command", text, "error", err)
		return fmt.Errorf("write command %q: %w", text, err)
	}
	return nil
}

// Write sends raw bytes with no line terminator.
func (e *Engine) Write(p []byte) error {
	if _, err := e.channel.Write(p); err != nil {
		e.logger.Error("write raw bytes", "length", len(p), "error", err)
		return fmt.Errorf("write %d bytes: %w", len(p), err)
	}
	return nil
}

// AwaitResponse sleeps for the settle interval and returns everything
// received so far with surrounding whitespace removed, or "" when nothing
// arrived.
func (e *Engine) AwaitResponse() string {
	time.Sleep(e.settle)

	if e.channel.Available() <= 0 {
		e.logger.Debug("no response")
		return ""
	}

	response := strings.TrimSpace(string(e.channel.ReadAvailable()))
	mode := at.ModeLine(response)
	e.logger.Debug("response",
		"length", len(response),
		"mode", mode,
		"type", at.Classify(mode),
	)
	return response
}

// ModeLine awaits a response and returns its final line.
func (e *Engine) ModeLine() string {
	return at.ModeLine(e.AwaitResponse())
}

// IsSuccess awaits a response and reports whether it ended in OK.
func (e *Engine) IsSuccess() bool {
	return e.ModeLine() == at.OK
}

// Delay blocks for d. Slow operations layer it on top of the settle
// interval.
func (e *Engine) Delay(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
