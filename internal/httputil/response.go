package httputil

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// Envelope is the standard success response body: {"ok":true,"result":...}.
type Envelope struct {
	OK     bool `json:"ok"`
	Result any  `json:"result"`
}

// ErrorBody is the error response body shared by every endpoint.
type ErrorBody struct {
	OK    bool        `json:"ok"`
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// RespondResult wraps data in the success envelope.
func RespondResult(w http.ResponseWriter, result any, statusCode int) {
	RespondJSON(w, Envelope{OK: true, Result: result}, statusCode)
}

// RespondError maps a domain error to its status and body. Anything that is
// not an *Error becomes a generic 500 with internals kept out of the response.
func RespondError(w http.ResponseWriter, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		RespondJSON(w, ErrorBody{OK: false, Error: ErrorDetail{Code: apiErr.Code, Details: apiErr.Details}}, apiErr.Status)
		return
	}
	RespondJSON(w, ErrorBody{OK: false, Error: ErrorDetail{Code: CodeInternal}}, http.StatusInternalServerError)
}

// RespondErrorCode sends an error body with an explicit status and code.
func RespondErrorCode(w http.ResponseWriter, statusCode int, code string, details ...string) {
	RespondJSON(w, ErrorBody{OK: false, Error: ErrorDetail{Code: code, Details: details}}, statusCode)
}
