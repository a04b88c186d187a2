package handler

import (
	"encoding/json"
	"net/http"
)

// envelope is the JSON shape shared by success and error responses.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func successResponse(msg string) envelope {
	return envelope{Success: true, Message: msg}
}

func errorResponse(msg string) envelope {
	return envelope{Success: false, Error: msg}
}
