package modem

import (
	"strings"

	"github.com/nthnn/SIM900/at"
)

// identity sends cmd and returns the value line of the reply.
func (m *Modem) identity(cmd string) string {
	return at.Line(m.query(cmd), at.IdentityLine)
}

func (m *Modem) Manufacturer() string {
	return m.identity(at.CmdManufacturer)
}

// SoftwareRelease returns the firmware revision without its "Revision:"
// label.
func (m *Modem) SoftwareRelease() string {
	line := m.identity(at.CmdRevision)
	return strings.TrimSpace(line[strings.LastIndexByte(line, ':')+1:])
}

func (m *Modem) IMEI() string {
	return m.identity(at.CmdIMEI)
}

func (m *Modem) ChipModel() string {
	return m.identity(at.CmdModel)
}

func (m *Modem) ChipName() string {
	return m.identity(at.CmdIdentify)
}
