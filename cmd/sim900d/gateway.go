package main

import (
	"sync"

	"github.com/nthnn/SIM900/modem"
)

// Gateway serializes access to the modem. HTTP handlers and the MQTT
// subscriber run concurrently but a Modem handles one transaction at a time.
type Gateway struct {
	mu    sync.Mutex
	modem *modem.Modem
}

func NewGateway(m *modem.Modem) *Gateway {
	return &Gateway{modem: m}
}

// Do runs fn with exclusive use of the modem.
func (g *Gateway) Do(fn func(m *modem.Modem)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.modem)
}

func (g *Gateway) SendSMS(to, message string) (ok bool) {
	g.Do(func(m *modem.Modem) { ok = m.SendSMS(to, message) })
	return ok
}
