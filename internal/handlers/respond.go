package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// requestTimeout bounds every store round-trip made from a handler.
const requestTimeout = 5 * time.Second

// apiMessage is the body shape shared by error and success responses:
// {"message": ..., "status": ...}.
type apiMessage struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiMessage{Message: message, Status: status})
}
