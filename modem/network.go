package modem

import (
	"strconv"
	"strings"

	"github.com/nthnn/SIM900/at"
)

// Signal is the AT+CSQ report.
type Signal struct {
	RSSI         int
	BitErrorRate int
}

// OperatorMode is the access technology reported by AT+COPS?.
type OperatorMode int

const (
	OperatorModeGSM OperatorMode = iota
	OperatorModeGSMCompact
	OperatorModeUTRAN
	OperatorModeGSMEGPRS
	OperatorModeUTRANHSDPA
	OperatorModeUTRANHSUPA
	OperatorModeUTRANHSDPAHSUPA
	OperatorModeEUTRAN
)

// OperatorModeFromInt converts a wire value, mapping anything out of range
// to OperatorModeGSM.
func OperatorModeFromInt(v int) OperatorMode {
	if v < int(OperatorModeGSM) || v > int(OperatorModeEUTRAN) {
		return OperatorModeGSM
	}
	return OperatorMode(v)
}

// OperatorFormat is the operator selection mode reported by AT+COPS?.
type OperatorFormat int

const (
	OperatorFormatAuto OperatorFormat = iota
	OperatorFormatManual
	OperatorFormatDeregister
	OperatorFormatSetOnly
	OperatorFormatManualAuto
)

// OperatorFormatFromInt converts a wire value, mapping anything out of range
// to OperatorFormatAuto.
func OperatorFormatFromInt(v int) OperatorFormat {
	if v < int(OperatorFormatAuto) || v > int(OperatorFormatManualAuto) {
		return OperatorFormatAuto
	}
	return OperatorFormat(v)
}

// Operator is the network the modem is registered on.
type Operator struct {
	Mode   OperatorMode
	Format OperatorFormat
	Name   string
}

// Signal queries received signal strength and bit error rate.
func (m *Modem) Signal() Signal {
	return ParseSignal(at.QueryValue(m.query(at.CmdSignal)))
}

// ParseSignal decodes "rssi,ber". Anything else yields the zero Signal.
func ParseSignal(value string) Signal {
	rssi, ber, ok := strings.Cut(value, ",")
	if !ok {
		return Signal{}
	}
	r, err := strconv.Atoi(strings.TrimSpace(rssi))
	if err != nil {
		return Signal{}
	}
	b, err := strconv.Atoi(strings.TrimSpace(ber))
	if err != nil {
		return Signal{}
	}
	return Signal{RSSI: r, BitErrorRate: b}
}

// NetworkOperator queries the current operator.
func (m *Modem) NetworkOperator() Operator {
	return ParseOperator(at.QueryValue(m.query(at.CmdOperator)))
}

// ParseOperator decodes `mode,format,"name"`. Missing trailing fields stay
// zero.
func ParseOperator(value string) Operator {
	var op Operator
	fields := at.Fields(value)
	if len(fields) > 0 {
		op.Mode = OperatorModeFromInt(atoi(fields[0]))
	}
	if len(fields) > 1 {
		op.Format = OperatorFormatFromInt(atoi(fields[1]))
	}
	if len(fields) > 2 {
		op.Name = at.Unquote(fields[2])
	}
	return op
}

// atoi parses a decimal field, returning 0 for anything that is not one.
func atoi(field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0
	}
	return n
}
