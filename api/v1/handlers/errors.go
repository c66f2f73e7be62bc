package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// SendError sends a standardized JSON error response
func SendError(w http.ResponseWriter, message string, statusCode int) {
	SendErrorWithCode(w, message, "", statusCode)
}

// SendErrorWithCode sends a JSON error response with a custom error code
func SendErrorWithCode(w http.ResponseWriter, message, code string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    code,
	}
	json.NewEncoder(w).Encode(response)
}

// NotFoundHandler is used for routes the router does not know
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	SendErrorWithCode(w, "Route not found", "not_found", http.StatusNotFound)
}

// MethodNotAllowedHandler is used when a route exists but the method does not
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	SendErrorWithCode(w, "Method not allowed", "method_not_allowed", http.StatusMethodNotAllowed)
}
