package modem_test

import (
	"testing"

	"github.com/nthnn/SIM900/modem"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		reply    string
		query    func(*modem.Modem) string
		expected string
	}{
		{
			name:     "Manufacturer",
			command:  "AT+CGMI",
			reply:    "AT+CGMI\r\n\r\nSIMCOM_Ltd\r\n\r\nOK\r\n",
			query:    (*modem.Modem).Manufacturer,
			expected: "SIMCOM_Ltd",
		},
		{
			name:     "Software release",
			command:  "AT+CGMR",
			reply:    "AT+CGMR\r\n\r\nRevision:1137B01SIM900M64_ST\r\n\r\nOK\r\n",
			query:    (*modem.Modem).SoftwareRelease,
			expected: "1137B01SIM900M64_ST",
		},
		{
			name:     "IMEI",
			command:  "AT+CGSN",
			reply:    "AT+CGSN\r\n\r\n013227009432471\r\n\r\nOK\r\n",
			query:    (*modem.Modem).IMEI,
			expected: "013227009432471",
		},
		{
			name:     "Chip model",
			command:  "AT+CGMM",
			reply:    "AT+CGMM\r\n\r\nSIMCOM_SIM900\r\n\r\nOK\r\n",
			query:    (*modem.Modem).ChipModel,
			expected: "SIMCOM_SIM900",
		},
		{
			name:     "Chip name",
			command:  "ATI",
			reply:    "ATI\r\n\r\nSIM900 R11.0\r\n\r\nOK\r\n",
			query:    (*modem.Modem).ChipName,
			expected: "SIM900 R11.0",
		},
		{
			name:     "Short reply",
			command:  "AT+CGMI",
			reply:    "ERROR",
			query:    (*modem.Modem).Manufacturer,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := modem.NewTestChannel().Reply(tt.command, tt.reply)
			m := newTestModem(t, ch)

			if got := tt.query(m); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
