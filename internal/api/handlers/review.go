package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/feedbacklabs/feedback-engine/internal/review"
)

// ReviewHandler resolves review sessions. The session is explicit request
// state: the client sends its id, cursor, and filter on every call and
// gets the updated session back in the view, so the server holds nothing
// between requests.
type ReviewHandler struct {
	svc *review.Service
}

func NewReviewHandler(svc *review.Service) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// sessionFromQuery rebuilds the caller's session from query parameters.
// Absent or garbled parameters start a fresh session at the top of the
// full view.
func sessionFromQuery(r *http.Request) review.Session {
	q := r.URL.Query()

	sess := review.NewSession(review.ParseFilter(q.Get("filter")))
	if id, err := uuid.Parse(q.Get("session")); err == nil {
		sess.ID = id
	}
	if cursor, err := strconv.Atoi(q.Get("cursor")); err == nil && cursor >= 0 {
		sess.Cursor = cursor
	}
	return sess
}

func (h *ReviewHandler) View(w http.ResponseWriter, r *http.Request) {
	pv, err := h.svc.View(r.Context(), sessionFromQuery(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, pv)
}

func (h *ReviewHandler) NextUnrated(w http.ResponseWriter, r *http.Request) {
	pv, found, err := h.svc.JumpToNextUnrated(r.Context(), sessionFromQuery(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"view": pv, "all_rated": !found})
}

func (h *ReviewHandler) Progress(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.CurrentProgress(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}
