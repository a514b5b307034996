// Package httpjson implements the JSON request/response conventions shared
// by every API handler.
//
// Success responses carry {"success": true, ...payload}; failures carry
// {"error": "...", "details": "..."} with the HTTP status expressing the
// error class: 400 invalid input, 401 bad credentials, 403 forbidden,
// 404 not found, 409 conflict, 500 unexpected failure.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes caps JSON request bodies. The API carries profile text and
// short messages, nothing bulk.
const maxBodyBytes = 1 << 20

// Decode reads the request body as JSON into dst.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// Write serializes v with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v with HTTP 200.
func OK(w http.ResponseWriter, v any) {
	Write(w, http.StatusOK, v)
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Fail writes the error envelope with the given status.
func Fail(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorBody{Error: msg})
}

// FailDetails writes the error envelope with a details string, used where
// the legacy clients surface the underlying cause.
func FailDetails(w http.ResponseWriter, status int, msg, details string) {
	Write(w, status, errorBody{Error: msg, Details: details})
}
