package modem

import "errors"

var (
	// ErrNoDialer is returned when a Modem is constructed without a Dialer.
	//
	// This indicates a configuration error. A Dialer is required in order to
	// establish a connection to the modem.
	ErrNoDialer = errors.New("no dialer configured")

	// ErrNotInitialized is returned when the Dialer reports success but
	// hands back no Channel.
	ErrNotInitialized = errors.New("modem not initialized")

	// ErrAlreadyClosed is returned when Close is called on a Modem that has
	// already been closed.
	ErrAlreadyClosed = errors.New("modem already closed")

	// ErrNotResponding is returned by New when ProbeOnOpen is set and the
	// modem does not answer the AT handshake with OK.
	ErrNotResponding = errors.New("modem not responding")

	// ErrInvalidDelay is returned when a configured delay is negative.
	ErrInvalidDelay = errors.New("invalid delay")
)
