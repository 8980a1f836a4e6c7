package modem

import (
	"fmt"
	"strings"

	"github.com/nthnn/SIM900/at"
)

// SendSMS submits message to number in text mode.
//
// The submission is four unanswered steps separated by the command gap:
// select text mode, open the message for number, write the body, then
// terminate it with SUB. It reports success when the final mode line shows
// the input prompt, with or without the echoed body.
func (m *Modem) SendSMS(number, message string) bool {
	m.Handshake()

	steps := []string{
		at.CmdSetTextMode,
		fmt.Sprintf(at.CmdSendSMS, number),
		message,
	}
	for _, step := range steps {
		if err := m.engine.SendCommand(step); err != nil {
			return false
		}
		m.engine.Delay(m.config.CommandGap)
	}

	if err := m.engine.Write([]byte{at.SUB}); err != nil {
		return false
	}

	mode := m.engine.ModeLine()
	if !smsAccepted(mode, message) {
		m.logger.Warn("SMS not accepted", "to", number, "mode", mode)
		return false
	}
	return true
}

func smsAccepted(mode, message string) bool {
	return mode == at.Prompt+message || strings.HasPrefix(mode, ">")
}
