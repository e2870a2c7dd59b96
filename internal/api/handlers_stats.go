package api

import (
	"encoding/json"
	"net/http"
)

// handleStats reports document counts, queue depth and latency windows.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"documents":   s.docs.Count(),
		"queue_depth": s.orchestrator.QueueDepth(),
		"extraction":  s.orchestrator.ExtractStats().Snapshot(),
		"answers":     s.answerStats.Snapshot(),
	})
}
