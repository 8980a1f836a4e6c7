// Package modem drives a SIM900 GSM/GPRS modem with AT commands.
//
// Every operation is a fixed request/response transaction: write the
// command, wait a settle interval, collect the reply and decode it. Failures
// are reported in-band (false, DialError or a zero record); only
// construction and Close return Go errors.
//
// A Modem is not safe for concurrent use. Callers that share one must
// serialize access themselves.
package modem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nthnn/SIM900/at"
)

// Modem represents a SIM900 module attached over a Channel.
type Modem struct {
	// channel is the byte stream returned by the configured Dialer
	channel Channel
	// engine runs the command/response cycle on channel
	engine *Engine
	// config contains the modem configuration settings
	config Config
	logger *slog.Logger
	// closed indicates if the modem has been shut down
	closed bool

	// apnAttached is set once ConnectAPN has completed all of its steps.
	// GPRS bring-up and requests refuse to run until then.
	apnAttached bool
	call        CallState
}

// New creates a new Modem instance with the given configuration. It opens
// the channel through the configured Dialer and, when ProbeOnOpen is set,
// checks that the modem answers the AT handshake.
func New(ctx context.Context, config Config) (*Modem, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.setDefaults()

	channel, err := config.Dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("dial modem: %w", err)
	}
	if channel == nil {
		return nil, ErrNotInitialized
	}

	m := &Modem{
		channel: channel,
		engine:  NewEngine(channel, config.Logger, config.SettleDelay),
		config:  config,
		logger:  config.Logger,
	}

	if config.ProbeOnOpen && !m.Handshake() {
		channel.Close()
		return nil, ErrNotResponding
	}

	return m, nil
}

// Close shuts down the modem and closes its channel. After calling Close(),
// the modem cannot be reused.
func (m *Modem) Close() error {
	if m.closed {
		return ErrAlreadyClosed
	}
	m.closed = true
	return m.channel.Close()
}

// Engine exposes the underlying transaction engine for commands the catalog
// does not cover.
func (m *Modem) Engine() *Engine {
	return m.engine
}

// APNAttached reports whether ConnectAPN has succeeded on this modem.
func (m *Modem) APNAttached() bool {
	return m.apnAttached
}

// CallState reports whether a voice call is believed to be up.
func (m *Modem) CallState() CallState {
	return m.call
}

// Handshake sends a bare AT and reports whether the modem answered OK.
func (m *Modem) Handshake() bool {
	return m.expectOK(at.CmdAt)
}

// expectOK sends cmd and reports whether the reply ended in OK.
func (m *Modem) expectOK(cmd string) bool {
	if err := m.engine.SendCommand(cmd); err != nil {
		return false
	}
	return m.engine.IsSuccess()
}

// query sends cmd and returns the whole reply, or "" when the write failed.
func (m *Modem) query(cmd string) string {
	if err := m.engine.SendCommand(cmd); err != nil {
		return ""
	}
	return m.engine.AwaitResponse()
}
