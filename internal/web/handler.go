package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/flashcard-generator/internal/api/shared"
	"github.com/phrazzld/flashcard-generator/internal/coordinator"
	"github.com/phrazzld/flashcard-generator/internal/platform/logger"
	"github.com/phrazzld/flashcard-generator/internal/session"
)

// Coordinator is the part of *coordinator.Coordinator the UI drives.
type Coordinator interface {
	Submit(content string, numCards int) (<-chan coordinator.Result, error)
	Toggle(i int)
	Dismiss()
	Snapshot() session.State
	Export(saver session.Saver) error
}

// Handler serves the UI routes.
type Handler struct {
	coord         Coordinator
	noticeTimeout time.Duration
	logger        *slog.Logger
}

// NewHandler creates a Handler over coord.
func NewHandler(coord Coordinator, noticeTimeout time.Duration, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	if noticeTimeout <= 0 {
		noticeTimeout = coordinator.DefaultNoticeTimeout
	}
	return &Handler{
		coord:         coord,
		noticeTimeout: noticeTimeout,
		logger:        log.With("component", "web_handler"),
	}
}

// Register mounts the UI routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.Page)
	r.Post("/generate", h.Generate)
	r.Post("/cards/{index}/toggle", h.Toggle)
	r.Post("/notice/dismiss", h.Dismiss)
	r.Get("/export", h.Export)
	r.Get("/state", h.State)
}

// Page handles GET /
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	data := newPageData(h.coord.Snapshot().View(), h.noticeTimeout)

	var buf bytes.Buffer
	if err := renderPage(&buf, data); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

// Generate handles POST /generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	numCards, err := strconv.Atoi(r.PostFormValue("num_cards"))
	if err != nil {
		numCards = h.coord.Snapshot().NumCards()
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	_, err = h.coord.Submit(r.PostFormValue("content"), numCards)
	switch {
	case err == nil:
		log.Debug("generation submitted", "num_cards", numCards)
	case errors.Is(err, coordinator.ErrEmptyContent),
		errors.Is(err, coordinator.ErrGenerationInFlight):
		// Surfaced through the page: a notice or the disabled button.
		log.Debug("generation not submitted", "reason", err.Error())
	case errors.Is(err, coordinator.ErrClosed):
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	default:
		log.Error("failed to submit generation", "error", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Toggle handles POST /cards/{index}/toggle
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "Invalid card index", http.StatusBadRequest)
		return
	}
	h.coord.Toggle(index)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Dismiss handles POST /notice/dismiss
func (h *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.coord.Dismiss()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Export handles GET /export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	err := h.coord.Export(attachmentSaver{w: w})
	if errors.Is(err, coordinator.ErrNothingToExport) {
		http.Error(w, "No flashcards to export", http.StatusNotFound)
		return
	}
	if err != nil {
		// Headers are already sent; all that is left is to log.
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("export write failed", "error", err)
	}
}

// State handles GET /state
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.coord.Snapshot().View())
}
