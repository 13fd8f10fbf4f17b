package handlers

import "net/http"

// PingHandler - liveness probe.
func PingHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": "pong"})
}
