package modem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.bug.st/serial"
)

//go:generate go tool mockgen -destination=mock_transport.go -package=modem . Channel,Dialer

// DefaultBaudRate is the rate the SIM900 autobauds to out of the box.
const DefaultBaudRate = 9600

// Channel represents an established, half-duplex byte stream to a SIM900
// modem.
//
// A Channel is assumed to be already opened and configured (baud rate,
// framing) before the first command is sent. Available and ReadAvailable
// must never block: the engine polls them after its settle delay and treats
// "nothing yet" as an empty response.
type Channel interface {
	io.Writer
	io.Closer

	// Available reports how many received bytes can be read without
	// blocking.
	Available() int

	// ReadAvailable drains and returns every byte received so far.
	ReadAvailable() []byte
}

// Dialer opens a Channel to a SIM900 modem.
//
// Dialer abstracts how the modem connection is created (for example, via a
// serial port or a test double) and is used during modem construction
// only.
type Dialer interface {
	// Dial creates and returns a ready Channel. It may block and should
	// respect cancellation of ctx.
	Dial(ctx context.Context) (Channel, error)
}

// DialerFunc adapts an ordinary function to the Dialer interface.
type DialerFunc func(ctx context.Context) (Channel, error)

// Dial calls f(ctx).
func (f DialerFunc) Dial(ctx context.Context) (Channel, error) {
	return f(ctx)
}

// SerialDialer opens a SIM900 modem over a serial port using go.bug.st/serial.
type SerialDialer struct {
	// PortName is the device path, e.g. "/dev/ttyUSB0" or "COM3".
	PortName string
	// BaudRate overrides the rate of Mode when non-zero.
	BaudRate int
	// Mode is the full port configuration. When nil, 8N1 at DefaultBaudRate
	// is used.
	Mode *serial.Mode
}

// Dial opens the serial port and wraps it in a StreamChannel.
func (d SerialDialer) Dial(ctx context.Context) (Channel, error) {
	if d.PortName == "" {
		return nil, errors.New("sim900: serial port name is required")
	}
	if ctx == nil {
		return nil, errors.New("sim900: context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: DefaultBaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	if d.Mode != nil {
		m := *d.Mode
		mode = &m
	}
	if d.BaudRate > 0 {
		mode.BaudRate = d.BaudRate
	}

	port, err := serial.Open(d.PortName, mode)
	if err != nil {
		return nil, fmt.Errorf("sim900: open serial port %s: %w", d.PortName, err)
	}
	return NewStreamChannel(port), nil
}

// StreamChannel turns a blocking io.ReadWriteCloser, such as a serial port,
// into a Channel. A single goroutine copies incoming bytes into a buffer so
// that Available and ReadAvailable return immediately.
type StreamChannel struct {
	rw io.ReadWriteCloser

	mu  sync.Mutex
	buf bytes.Buffer
	err error
}

// NewStreamChannel starts reading from rw in the background.
func NewStreamChannel(rw io.ReadWriteCloser) *StreamChannel {
	c := &StreamChannel{rw: rw}
	go c.pump()
	return c
}

func (c *StreamChannel) pump() {
	chunk := make([]byte, 256)
	for {
		n, err := c.rw.Read(chunk)
		c.mu.Lock()
		if n > 0 {
			c.buf.Write(chunk[:n])
		}
		if err != nil {
			c.err = err
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
	}
}

func (c *StreamChannel) Write(p []byte) (int, error) {
	return c.rw.Write(p)
}

// Available implements Channel.
func (c *StreamChannel) Available() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Len()
}

// ReadAvailable implements Channel.
func (c *StreamChannel) ReadAvailable() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buf.Len() == 0 {
		return nil
	}
	out := bytes.Clone(c.buf.Bytes())
	c.buf.Reset()
	return out
}

// Err returns the error that stopped the background reader, if any.
func (c *StreamChannel) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close closes the underlying stream, which also ends the background reader.
func (c *StreamChannel) Close() error {
	return c.rw.Close()
}
