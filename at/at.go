// Package at holds the SIM900 AT command vocabulary and the pure functions
// that cut a captured modem response into mode line, fixed lines and
// query values.
package at

const (
	// Terminal Control
	CRLF   = "\r\n"
	Prompt = "> "
	CtrlZ  = "\x1A"

	// SUB terminates an SMS body or a CIPSEND payload.
	SUB byte = 0x1A

	// Response Codes
	OK         = "OK"
	ERROR      = "ERROR"
	NoCarrier  = "NO CARRIER"
	NoDialtone = "NO DIALTONE"
	Busy       = "BUSY"
	NoAnswer   = "NO ANSWER"
	ConnectOK  = "CONNECT OK"
	CmeError   = "+CME ERROR:"
	CmsError   = "+CMS ERROR:"

	// URCs (Unsolicited Result Codes)
	UrcNewMsg         = "+CMTI:"
	UrcMessageReport  = "+CDSI:"
	UrcSignalStrength = "+CSQ:"
	UrcCall           = "RING"
)

// Commands
const (
	CmdAt          = "AT"
	CmdDial        = "ATD+ %s;"
	CmdRedial      = "ATDL"
	CmdAnswer      = "ATA"
	CmdHangUp      = "ATH"
	CmdSetTextMode = "AT+CMGF=1"
	CmdSendSMS     = `AT+CMGS="%s"`

	CmdAttachGPRS = "AT+CGATT=1"
	CmdStartTask  = `AT+CSTT="%s","%s","%s"`
	CmdBringUp    = "AT+CIICR"
	CmdLocalIP    = "AT+CIFSR"
	CmdTCPStart   = `AT+CIPSTART="TCP","%s","%d"`
	CmdTCPSend    = "AT+CIPSEND"

	CmdSignal   = "AT+CSQ"
	CmdOperator = "AT+COPS?"
	CmdClock    = "AT+CCLK?"
	CmdSetClock = `AT+CCLK="%s"`

	CmdPhonebookWrite  = `AT+CPBW=%d,"%s",%d,"%s"`
	CmdPhonebookDelete = "AT+CPBW=%d"
	CmdPhonebookRead   = "AT+CPBR=%d"
	CmdPhonebookStore  = "AT+CPBS?"
	CmdOwnNumber       = "AT+CNUM"

	CmdManufacturer = "AT+CGMI"
	CmdRevision     = "AT+CGMR"
	CmdIMEI         = "AT+CGSN"
	CmdModel        = "AT+CGMM"
	CmdIdentify     = "ATI"
)

// IdentityLine is the response line carrying the value of identity queries.
// Line 0 is the command echo and line 1 is blank.
const IdentityLine = 2

type ResponseType int

const (
	TypeFinal  ResponseType = iota // OK, ERROR
	TypeURC                        // Asynchronous notifications
	TypeData                       // Intermediate command output (+CSQ: ...)
	TypePrompt                     // SMS input prompt
)

func (t ResponseType) String() string {
	switch t {
	case TypeFinal:
		return "final"
	case TypeURC:
		return "urc"
	case TypeData:
		return "data"
	case TypePrompt:
		return "prompt"
	default:
		return "unknown"
	}
}
