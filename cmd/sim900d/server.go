package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nthnn/SIM900/modem"
)

// Server handles incoming HTTP requests for interacting with the
// configured modem instance
type Server struct {
	Logger  *slog.Logger
	Gateway *Gateway
}

// ServeHTTP implements the http.Handler interface for the Server struct
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sms", s.handleSMS)
	mux.HandleFunc("POST /dial", s.handleDial)
	mux.HandleFunc("POST /hangup", s.handleHangUp)
	mux.HandleFunc("GET /signal", s.handleSignal)
	mux.HandleFunc("GET /operator", s.handleOperator)
	mux.HandleFunc("GET /info", s.handleInfo)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.ServeHTTP(w, r)
}

func (s *Server) sendError(w http.ResponseWriter, message string, statusCode int) {
	if message == "" {
		w.WriteHeader(statusCode)
		return
	}

	type ErrorResponse struct {
		Message string `json:"message"`
	}
	s.sendJSON(w, ErrorResponse{Message: message}, statusCode)
}

func (s *Server) sendJSON(w http.ResponseWriter, v any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Failed to encode response", "error", err)
	}
}

// SMSRequest is the body of POST /sms and of MQTT messages
type SMSRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// handleSMS processes incoming HTTP POST requests to send SMS messages
func (s *Server) handleSMS(w http.ResponseWriter, r *http.Request) {
	var req SMSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.To == "" || req.Message == "" {
		s.sendError(w, "both 'to' and 'message' fields are required", http.StatusBadRequest)
		return
	}

	if !s.Gateway.SendSMS(req.To, req.Message) {
		s.Logger.Error("Failed to send SMS", "to", req.To)
		s.sendError(w, "modem did not accept the message", http.StatusInternalServerError)
		return
	}

	s.Logger.Info("SMS sent successfully", "to", req.To, "message_length", len(req.Message))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDial(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number string `json:"number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Number == "" {
		s.sendError(w, "'number' field is required", http.StatusBadRequest)
		return
	}

	var outcome modem.DialOutcome
	s.Gateway.Do(func(m *modem.Modem) { outcome = m.Dial(req.Number) })

	s.Logger.Info("Dialled", "number", req.Number, "outcome", outcome)
	s.sendJSON(w, map[string]string{"outcome": outcome.String()}, http.StatusOK)
}

func (s *Server) handleHangUp(w http.ResponseWriter, r *http.Request) {
	var ok bool
	s.Gateway.Do(func(m *modem.Modem) { ok = m.HangUp() })
	if !ok {
		s.sendError(w, "hang up failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleSignal(w http.ResponseWriter, r *http.Request) {
	var sig modem.Signal
	s.Gateway.Do(func(m *modem.Modem) { sig = m.Signal() })

	s.sendJSON(w, struct {
		RSSI         int `json:"rssi"`
		BitErrorRate int `json:"ber"`
	}{sig.RSSI, sig.BitErrorRate}, http.StatusOK)
}

func (s *Server) handleOperator(w http.ResponseWriter, r *http.Request) {
	var op modem.Operator
	s.Gateway.Do(func(m *modem.Modem) { op = m.NetworkOperator() })

	s.sendJSON(w, struct {
		Mode   int    `json:"mode"`
		Format int    `json:"format"`
		Name   string `json:"name"`
	}{int(op.Mode), int(op.Format), op.Name}, http.StatusOK)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	type Info struct {
		Manufacturer string `json:"manufacturer"`
		Model        string `json:"model"`
		Name         string `json:"name"`
		Revision     string `json:"revision"`
		IMEI         string `json:"imei"`
	}

	var info Info
	s.Gateway.Do(func(m *modem.Modem) {
		info = Info{
			Manufacturer: m.Manufacturer(),
			Model:        m.ChipModel(),
			Name:         m.ChipName(),
			Revision:     m.SoftwareRelease(),
			IMEI:         m.IMEI(),
		}
	})
	s.sendJSON(w, info, http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	var ok bool
	s.Gateway.Do(func(m *modem.Modem) { ok = m.Handshake() })
	if !ok {
		s.sendError(w, "modem not responding", http.StatusServiceUnavailable)
		return
	}
	s.sendJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
