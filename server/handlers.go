package server

import (
	"encoding/json"
	"net/http"
)

// Health reports liveness plus basic series / stream gauges
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	resp := &HealthResponse{
		Status:  "ok",
		Samples: s.history.Len(),
		Clients: s.stream.ClientCount(),
	}

	writeJSON(w, http.StatusOK, resp)
}

// RatesToday returns the full current-day sample sequence, the same
// payload a stream client receives in its boot event
func (s *Server) RatesToday(w http.ResponseWriter, _ *http.Request) {
	resp := &RatesTodayResponse{
		Results: s.history.Snapshot(),
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Fine to ignore
}
