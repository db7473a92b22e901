package api

import (
	"encoding/json"
	"net/http"

	"github.com/novalis-io/identity/internal/models"
)

// response is the uniform JSON envelope for every endpoint.
type response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Success: false, Message: message})
}

func succeed(w http.ResponseWriter, status int, message string, user *models.User) {
	writeJSON(w, status, response{Success: true, Message: message, User: user})
}
