package at_test

import (
	"slices"
	"testing"

	"github.com/nthnn/SIM900/at"
)

func TestModeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Echo then OK", input: "AT\r\nOK", expected: "OK"},
		{name: "Dial failure", input: "ATD+ 5551234;\r\nNO CARRIER", expected: "NO CARRIER"},
		{name: "Single token", input: "OK", expected: "OK"},
		{name: "Empty response", input: "", expected: ""},
		{name: "SMS echo prompt", input: "AT+CMGS=\"+1\"\r\n> Hello", expected: "> Hello"},
		{name: "Trailing break", input: "OK\n", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := at.ModeLine(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q for input %q", tt.expected, got, tt.input)
			}
		})
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "Middle line", input: "a\nb\nc", n: 1, expected: "b"},
		{name: "First line", input: "a\nb\nc", n: 0, expected: "a"},
		{name: "Last line", input: "a\nb\nc", n: 2, expected: "c"},
		{name: "Past the end", input: "a\nb\nc", n: 3, expected: ""},
		{name: "Identity reply", input: "AT+CGMI\r\n\r\nSIMCOM_Ltd\r\n\r\nOK", n: at.IdentityLine, expected: "SIMCOM_Ltd"},
		{name: "Carriage returns dropped", input: "x\r\ny\rz\r\n", n: 1, expected: "yz"},
		{name: "Empty response", input: "", n: 0, expected: ""},
		{name: "Negative index", input: "a\nb", n: -1, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := at.Line(tt.input, tt.n)
			if got != tt.expected {
				t.Errorf("Line(%q, %d): expected %q, got %q", tt.input, tt.n, tt.expected, got)
			}
			if again := at.Line(tt.input, tt.n); again != got {
				t.Errorf("Line is not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestQueryValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Signal quality", input: "+CSQ: 10,2\r\nOK", expected: "10,2"},
		{name: "With echo", input: "AT+CSQ\r\n\r\n+CSQ: 21,0\r\n\r\nOK", expected: "21,0"},
		{name: "No token", input: "OK", expected: ""},
		{name: "Value at end", input: "+CCLK: \"23/01/05,09:00:03+08\"", expected: "\"23/01/05,09:00:03+08\""},
		{name: "First token wins", input: "+COPS: 0,0,\"A: B\"\nOK", expected: "0,0,\"A: B\""},
		{name: "Colon without space", input: "Revision:1137B01", expected: ""},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := at.QueryValue(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q for input %q", tt.expected, got, tt.input)
			}
		})
	}
}

func TestFields(t *testing.T) {
	if got := at.Fields(""); got != nil {
		t.Errorf("Expected nil fields for empty value, got %v", got)
	}
	got := at.Fields(`1,"5551234",129,"Alice"`)
	expected := []string{"1", `"5551234"`, "129", `"Alice"`}
	if !slices.Equal(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: `"SM"`, expected: "SM"},
		{input: ` "Vodafone" `, expected: "Vodafone"},
		{input: `""`, expected: ""},
		{input: `"`, expected: `"`},
		{input: "129", expected: "129"},
	}

	for _, tt := range tests {
		if got := at.Unquote(tt.input); got != tt.expected {
			t.Errorf("Unquote(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected at.ResponseType
	}{
		// Final responses
		{name: "OK response", input: "OK", expected: at.TypeFinal},
		{name: "ERROR response", input: "ERROR", expected: at.TypeFinal},
		{name: "CME Error", input: "+CME ERROR: 30", expected: at.TypeFinal},
		{name: "CMS Error", input: "+CMS ERROR: 500", expected: at.TypeFinal},
		{name: "NO CARRIER", input: "NO CARRIER", expected: at.TypeFinal},
		{name: "TCP connected", input: "CONNECT OK", expected: at.TypeFinal},

		// URCs
		{name: "New message URC", input: "+CMTI: \"SM\",1", expected: at.TypeURC},
		{name: "Incoming call URC", input: "RING", expected: at.TypeURC},

		// Data responses
		{name: "AT command", input: "AT+CSQ", expected: at.TypeData},
		{name: "Signal quality response", input: "+CSQ: 15,99", expected: at.TypeData},
		{name: "Device info", input: "SIMCOM_Ltd", expected: at.TypeData},

		// Prompt
		{name: "SMS input prompt", input: "> ", expected: at.TypePrompt},
		{name: "SMS prompt with echo", input: "> Hello", expected: at.TypePrompt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := at.Classify(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v for input %q", tt.expected, result, tt.input)
			}
		})
	}
}
