package modem

import (
	"fmt"
	"strings"

	"github.com/nthnn/SIM900/at"
)

// RTC is the modem's real-time clock. Year is two digits and GMT is the
// offset in quarter hours, as the modem reports them.
type RTC struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	GMT    int
}

// UpdateRTC sets the modem clock.
func (m *Modem) UpdateRTC(t RTC) bool {
	return m.expectOK(fmt.Sprintf(at.CmdSetClock, FormatRTC(t)))
}

// RTC reads the modem clock.
func (m *Modem) RTC() RTC {
	return ParseRTC(at.QueryValue(m.query(at.CmdClock)))
}

// FormatRTC encodes t as "YY/MM/DD,HH:MM:SS+OO".
func FormatRTC(t RTC) string {
	sign, gmt := '+', t.GMT
	if gmt < 0 {
		sign, gmt = '-', -gmt
	}
	return fmt.Sprintf("%02d/%02d/%02d,%02d:%02d:%02d%c%02d",
		t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, sign, gmt)
}

// ParseRTC decodes a clock value, quoted or not. Fields are taken strictly
// left to right; whatever follows a missing separator is left zero.
func ParseRTC(value string) RTC {
	value = at.Unquote(value)

	var t RTC
	fields := []*int{&t.Year, &t.Month, &t.Day, &t.Hour, &t.Minute}
	for i, sep := range []string{"/", "/", ",", ":", ":"} {
		field, rest, found := strings.Cut(value, sep)
		*fields[i] = atoi(field)
		if !found {
			return t
		}
		value = rest
	}

	i := strings.IndexAny(value, "+-")
	if i < 0 {
		t.Second = atoi(value)
		return t
	}
	t.Second = atoi(value[:i])
	t.GMT = atoi(value[i+1:])
	if value[i] == '-' {
		t.GMT = -t.GMT
	}
	return t
}
