package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpittner/finqa/internal/qa"
	"github.com/jpittner/finqa/internal/session"
)

type askRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id"`
}

// handleAsk answers a question against one document's extracted metrics
// and records the exchange in the session history.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, r, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		jsonError(w, r, "question is required", http.StatusBadRequest)
		return
	}

	doc, ok := s.docs.Get(docID)
	if !ok {
		jsonError(w, r, "document not found", http.StatusNotFound)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	start := time.Now()
	answer := qa.Answer(question, doc.Metrics)
	s.answerStats.Record(time.Since(start))

	now := time.Now()
	err := s.sessions.Append(r.Context(), sessionID,
		session.Message{Role: session.RoleUser, Content: question, CreatedAt: now},
		session.Message{Role: session.RoleAssistant, Content: answer, CreatedAt: now},
	)
	if err != nil {
		// History is best-effort. The answer is still valid without it.
		s.log.Warn("failed to record session history", "session_id", sessionID, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"answer":     answer,
		"session_id": sessionID,
		"doc_id":     docID,
	})
}

// handleGetSession returns the conversation history for a session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	msgs, err := s.sessions.History(r.Context(), sessionID)
	if err != nil {
		jsonError(w, r, "failed to load session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if msgs == nil {
		msgs = []session.Message{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"session_id": sessionID,
		"messages":   msgs,
	})
}

// handleClearSession deletes a session's history.
func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := s.sessions.Clear(r.Context(), sessionID); err != nil {
		jsonError(w, r, "failed to clear session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"session_id": sessionID,
		"cleared":    true,
	})
}
