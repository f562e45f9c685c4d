package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// writeJSON writes a status code and a JSON body.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// errorJSON writes the original client's error shape: {"message": ...}.
func errorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// parseDateParam accepts RFC 3339 timestamps and plain dates. Plain dates
// resolve in local time so daily windows line up with the till's day.
func parseDateParam(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
