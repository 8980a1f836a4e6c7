package modem_test

import (
	"slices"
	"testing"

	"github.com/nthnn/SIM900/modem"
)

func TestRTCEncoding(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		rtc     modem.RTC
	}{
		{
			name:    "Positive offset",
			encoded: "23/01/05,09:00:03+08",
			rtc:     modem.RTC{Year: 23, Month: 1, Day: 5, Hour: 9, Minute: 0, Second: 3, GMT: 8},
		},
		{
			name:    "Negative offset",
			encoded: "24/12/31,23:59:59-20",
			rtc:     modem.RTC{Year: 24, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, GMT: -20},
		},
		{
			name:    "Zero value",
			encoded: "00/00/00,00:00:00+00",
			rtc:     modem.RTC{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modem.FormatRTC(tt.rtc); got != tt.encoded {
				t.Errorf("FormatRTC: expected %q, got %q", tt.encoded, got)
			}
			if got := modem.ParseRTC(tt.encoded); got != tt.rtc {
				t.Errorf("ParseRTC: expected %+v, got %+v", tt.rtc, got)
			}
		})
	}
}

func TestParseRTC(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected modem.RTC
	}{
		{
			name:     "Quoted",
			input:    `"23/01/05,09:00:03+08"`,
			expected: modem.RTC{Year: 23, Month: 1, Day: 5, Hour: 9, Minute: 0, Second: 3, GMT: 8},
		},
		{
			name:     "Truncated",
			input:    "23/01",
			expected: modem.RTC{Year: 23, Month: 1},
		},
		{
			name:     "No offset",
			input:    "23/01/05,09:00:03",
			expected: modem.RTC{Year: 23, Month: 1, Day: 5, Hour: 9, Second: 3},
		},
		{name: "Garbage", input: "garbage", expected: modem.RTC{}},
		{name: "Empty", input: "", expected: modem.RTC{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modem.ParseRTC(tt.input); got != tt.expected {
				t.Errorf("ParseRTC(%q): expected %+v, got %+v", tt.input, tt.expected, got)
			}
		})
	}
}

func TestUpdateRTC(t *testing.T) {
	ch := modem.NewTestChannel().Reply(`AT+CCLK="23/01/05,09:00:03+08"`, "OK\r\n")
	m := newTestModem(t, ch)

	if !m.UpdateRTC(modem.RTC{Year: 23, Month: 1, Day: 5, Hour: 9, Second: 3, GMT: 8}) {
		t.Error("UpdateRTC() should succeed")
	}
	if got := ch.Commands(); !slices.Equal(got, []string{`AT+CCLK="23/01/05,09:00:03+08"`}) {
		t.Errorf("unexpected commands: %q", got)
	}
}

func TestReadRTC(t *testing.T) {
	ch := modem.NewTestChannel().Reply("AT+CCLK?", "AT+CCLK?\r\n\r\n+CCLK: \"25/06/30,14:21:09+04\"\r\n\r\nOK\r\n")
	m := newTestModem(t, ch)

	expected := modem.RTC{Year: 25, Month: 6, Day: 30, Hour: 14, Minute: 21, Second: 9, GMT: 4}
	if got := m.RTC(); got != expected {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}
