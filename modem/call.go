package modem

import (
	"fmt"

	"github.com/nthnn/SIM900/at"
)

// DialOutcome is the result of placing or answering a voice call.
type DialOutcome int

const (
	DialNoDialtone DialOutcome = iota
	DialBusy
	DialNoCarrier
	DialNoAnswer
	DialError
	DialOK
)

func (o DialOutcome) String() string {
	switch o {
	case DialNoDialtone:
		return "no dialtone"
	case DialBusy:
		return "busy"
	case DialNoCarrier:
		return "no carrier"
	case DialNoAnswer:
		return "no answer"
	case DialError:
		return "error"
	case DialOK:
		return "ok"
	default:
		return fmt.Sprintf("DialOutcome(%d)", int(o))
	}
}

// CallState tracks whether a voice call is up.
type CallState int

const (
	CallIdle CallState = iota
	CallConnected
)

func (s CallState) String() string {
	if s == CallConnected {
		return "connected"
	}
	return "idle"
}

// ClassifyDial maps the mode line of an ATD or ATDL reply to a DialOutcome.
// Anything unrecognised, including "ERROR" and the empty string, is
// DialError.
func ClassifyDial(mode string) DialOutcome {
	switch mode {
	case at.NoDialtone:
		return DialNoDialtone
	case at.Busy:
		return DialBusy
	case at.NoCarrier:
		return DialNoCarrier
	case at.NoAnswer:
		return DialNoAnswer
	case at.OK:
		return DialOK
	default:
		return DialError
	}
}

// ClassifyAnswer maps the mode line of an ATA reply. Only NO CARRIER and OK
// are meaningful when answering.
func ClassifyAnswer(mode string) DialOutcome {
	switch mode {
	case at.NoCarrier:
		return DialNoCarrier
	case at.OK:
		return DialOK
	default:
		return DialError
	}
}

// Dial places a voice call to number.
func (m *Modem) Dial(number string) DialOutcome {
	return m.placeCall(fmt.Sprintf(at.CmdDial, number))
}

// Redial places a voice call to the last dialled number.
func (m *Modem) Redial() DialOutcome {
	return m.placeCall(at.CmdRedial)
}

func (m *Modem) placeCall(cmd string) DialOutcome {
	if err := m.engine.SendCommand(cmd); err != nil {
		return DialError
	}
	m.engine.Delay(m.config.DialDelay)
	return m.track(ClassifyDial(m.engine.ModeLine()))
}

// AcceptIncomingCall answers a ringing call.
func (m *Modem) AcceptIncomingCall() DialOutcome {
	if err := m.engine.SendCommand(at.CmdAnswer); err != nil {
		return DialError
	}
	return m.track(ClassifyAnswer(m.engine.ModeLine()))
}

// HangUp ends the current call.
func (m *Modem) HangUp() bool {
	if !m.expectOK(at.CmdHangUp) {
		return false
	}
	m.call = CallIdle
	return true
}

func (m *Modem) track(outcome DialOutcome) DialOutcome {
	if outcome == DialOK {
		m.call = CallConnected
	}
	m.logger.Debug("call", "outcome", outcome, "state", m.call)
	return outcome
}
