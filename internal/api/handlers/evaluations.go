package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/feedbacklabs/feedback-engine/internal/models"
	"github.com/feedbacklabs/feedback-engine/internal/review"
	"github.com/feedbacklabs/feedback-engine/internal/store"
)

// EvaluationHandler serves the judgment log: listing it, appending to it
// through the review service, and aggregating it.
type EvaluationHandler struct {
	store store.EvaluationStore
	svc   *review.Service
}

func NewEvaluationHandler(st store.EvaluationStore, svc *review.Service) *EvaluationHandler {
	return &EvaluationHandler{store: st, svc: svc}
}

func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	evals, err := h.store.LoadAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"evaluations": evals, "count": len(evals)})
}

func (h *EvaluationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req review.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	rec, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
		case errors.Is(err, review.ErrAlreadyEvaluated):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "prompt already evaluated"})
		default:
			// Append failed after validation: nothing was persisted, the
			// reviewer can simply submit again.
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *EvaluationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Aggregate(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
