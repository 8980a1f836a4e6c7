package modem

import (
	"fmt"
	"strings"

	"github.com/nthnn/SIM900/at"
)

// APN holds the access point credentials for a GPRS session.
type APN struct {
	Name     string
	Username string
	Password string
}

type HTTPHeader struct {
	Key   string
	Value string
}

// HTTPRequest describes a plain HTTP/1.0 request sent over a GPRS TCP link.
// Empty Method means GET, empty Resource means "/" and zero Port means 80.
type HTTPRequest struct {
	Method   string
	Domain   string
	Resource string
	Port     int
	Headers  []HTTPHeader
	Body     string
}

// HTTPResponse is returned by Request. Reading the server's answer is not
// supported, so it is always the zero value.
type HTTPResponse struct {
	Status  int
	Headers []HTTPHeader
	Body    string
}

const defaultHTTPPort = 80

// ConnectAPN selects text mode, attaches to GPRS and registers the access
// point, stopping at the first step that does not answer OK. The modem is
// marked attached only when all three steps succeed.
func (m *Modem) ConnectAPN(apn APN) bool {
	steps := []string{
		at.CmdSetTextMode,
		at.CmdAttachGPRS,
		fmt.Sprintf(at.CmdStartTask, apn.Name, apn.Username, apn.Password),
	}
	for _, step := range steps {
		if !m.expectOK(step) {
			m.logger.Warn("APN step failed", "apn", apn.Name, "command", step)
			return false
		}
	}

	m.apnAttached = true
	m.logger.Info("APN attached", "apn", apn.Name)
	return true
}

// EnableGPRS brings up the wireless connection. It writes nothing and
// returns false unless ConnectAPN has succeeded.
func (m *Modem) EnableGPRS() bool {
	if !m.apnAttached {
		m.logger.Warn("GPRS requested before APN attach")
		return false
	}
	if err := m.engine.SendCommand(at.CmdBringUp); err != nil {
		return false
	}
	m.engine.Delay(m.config.GPRSDelay)
	return m.engine.IsSuccess()
}

// IPAddress returns the local address assigned by the network.
func (m *Modem) IPAddress() string {
	return m.identity(at.CmdLocalIP)
}

// Request opens a TCP link to req.Domain and hands the framed request to the
// modem. The bool reports whether the request reached the modem; the
// response is always the zero value.
func (m *Modem) Request(req HTTPRequest) (HTTPResponse, bool) {
	var resp HTTPResponse
	if !m.apnAttached {
		m.logger.Warn("HTTP request before APN attach", "domain", req.Domain)
		return resp, false
	}

	port := req.Port
	if port == 0 {
		port = defaultHTTPPort
	}
	if err := m.engine.SendCommand(fmt.Sprintf(at.CmdTCPStart, req.Domain, port)); err != nil {
		return resp, false
	}
	m.engine.Delay(m.config.ConnectDelay)
	if reply := m.engine.AwaitResponse(); !strings.HasSuffix(reply, at.ConnectOK) {
		m.logger.Warn("TCP connect failed", "domain", req.Domain, "port", port, "reply", reply)
		return resp, false
	}

	if err := m.engine.SendCommand(at.CmdTCPSend); err != nil {
		return resp, false
	}
	if mode := m.engine.ModeLine(); !strings.HasPrefix(mode, ">") {
		m.logger.Warn("no send prompt", "mode", mode)
		return resp, false
	}

	if err := m.engine.SendCommand(FrameHTTPRequest(req)); err != nil {
		return resp, false
	}
	if err := m.engine.Write([]byte{at.SUB}); err != nil {
		return resp, false
	}
	return resp, true
}

// FrameHTTPRequest renders req as an HTTP/1.0 request.
func FrameHTTPRequest(req HTTPRequest) string {
	method := req.Method
	if method == "" {
		method = "GET"
	}
	resource := req.Resource
	if resource == "" {
		resource = "/"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s HTTP/1.0\r\n", method, resource)
	fmt.Fprintf(&b, "Host: %s\r\n", req.Domain)
	for _, h := range req.Headers {
		fmt.Fprintf(&b, "%s: %s\r\n", h.Key, h.Value)
	}
	if req.Body != "" {
		b.WriteString(req.Body)
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	return b.String()
}
