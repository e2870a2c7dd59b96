package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListDocuments returns a summary of every processed document.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := s.docs.List()
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, map[string]any{
			"id":           d.ID,
			"filename":     d.Filename,
			"title":        d.Title,
			"metric_count": len(d.Metrics),
			"processed_at": d.ProcessedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"documents": out,
		"count":     len(out),
	})
}

// handleGetDocument returns one document with a text preview and its metrics.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	doc, ok := s.docs.Get(docID)
	if !ok {
		jsonError(w, r, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":           doc.ID,
		"filename":     doc.Filename,
		"title":        doc.Title,
		"content_hash": doc.ContentHash,
		"processed_at": doc.ProcessedAt,
		"preview":      doc.Preview(previewBytes),
		"metrics":      doc.Metrics,
	})
}

// handleGetMetrics returns the extracted metric values for a document.
func (s *Server) handleGetMetrics(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	doc, ok := s.docs.Get(docID)
	if !ok {
		jsonError(w, r, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":  doc.ID,
		"metrics": doc.Metrics.Values(),
	})
}

// handleDeleteDocument removes a document from the store.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.docs.Delete(docID) {
		jsonError(w, r, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"deleted": true,
		"doc_id":  docID,
	})
}
