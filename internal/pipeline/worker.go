package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/jpittner/finqa/internal/document"
	"github.com/jpittner/finqa/internal/metric"
	"github.com/jpittner/finqa/internal/reader"
)

// Worker processes a single document job.
type Worker struct {
	docs  *document.Store
	stats *LatencyStats
	log   *slog.Logger

	maxTextBytes int
	pdfFallback  bool
}

func NewWorker(docs *document.Store, stats *LatencyStats, log *slog.Logger, maxTextBytes int, pdfFallback bool) *Worker {
	return &Worker{
		docs:         docs,
		stats:        stats,
		log:          log,
		maxTextBytes: maxTextBytes,
		pdfFallback:  pdfFallback,
	}
}

// Process runs the full pipeline for a job: parse, dedup, extract,
// register.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	r, err := reader.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if p, ok := r.(*reader.PDFReader); ok {
		p.FallbackPdftotext = w.pdfFallback
	}

	content, err := r.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title != "" {
		content.Title = job.Title
	}

	// Phase 2: Dedup check against the registry. Force re-processes
	// regardless.
	job.ContentHash = ContentHashHex([]byte(content.Text))
	if !job.Force {
		if existing, ok := w.docs.FindByHash(job.ContentHash); ok {
			log.Info("duplicate document, skipping", "existing_doc_id", existing.ID)
			job.SetDocID(existing.ID)
			job.SetStatus(StatusDupSkipped, "dedup")
			return
		}
	}

	text := content.Text
	if w.maxTextBytes > 0 && len(text) > w.maxTextBytes {
		log.Warn("text truncated", "bytes", len(text), "cap", w.maxTextBytes)
		text = truncateText(text, w.maxTextBytes)
	}
	job.SetContent(len(text), len(content.Columns))

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 3: Extract metrics. An empty document is still a valid,
	// completed job with an empty mapping.
	job.SetStatus(StatusExtracting, "extracting")
	start := time.Now()
	metrics := metric.ExtractAll(text, content.Columns)
	elapsed := time.Since(start)
	w.stats.Record(elapsed)
	job.SetMetricsFound(len(metrics))
	log.Info("extraction complete", "metrics", len(metrics), "duration", elapsed)

	// Phase 4: Register the document.
	w.docs.Put(&document.Document{
		ID:          job.DocID,
		Filename:    job.Filename,
		Title:       content.Title,
		Text:        text,
		Columns:     content.Columns,
		ContentHash: job.ContentHash,
		Metrics:     metrics,
		ProcessedAt: time.Now(),
	})
	job.SetStatus(StatusCompleted, "done")
}

// truncateText cuts s to at most n bytes, backing up to a rune
// boundary.
func truncateText(s string, n int) string {
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
