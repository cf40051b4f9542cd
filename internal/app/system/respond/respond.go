// Package respond writes the uniform API envelope used by every handler.
//
// Every response body has the shape {status, message?, data?} where status
// is "success" for 2xx, "fail" for 4xx, and "error" for 5xx.
package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard response wrapper.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a success envelope with the given payload.
func Success(w http.ResponseWriter, code int, data any) {
	write(w, code, Envelope{Status: "success", Data: data})
}

// SuccessMessage writes a success envelope with a message and payload.
func SuccessMessage(w http.ResponseWriter, code int, message string, data any) {
	write(w, code, Envelope{Status: "success", Message: message, Data: data})
}

// Error writes a fail/error envelope; the status word is derived from the
// HTTP code (4xx renders "fail", everything else "error").
func Error(w http.ResponseWriter, code int, message string) {
	write(w, code, Envelope{Status: statusWord(code), Message: message})
}

func statusWord(code int) string {
	if code >= 400 && code < 500 {
		return "fail"
	}
	return "error"
}

func write(w http.ResponseWriter, code int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(env)
}
