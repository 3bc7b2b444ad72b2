package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/feedbacklabs/feedback-engine/internal/cache"
	"github.com/feedbacklabs/feedback-engine/internal/generate"
	"github.com/feedbacklabs/feedback-engine/internal/models"
	"github.com/feedbacklabs/feedback-engine/internal/store"
)

// PromptHandler serves the catalog: listing, adding entries, attaching
// responses by hand, and generating them with the configured provider.
type PromptHandler struct {
	catalog store.PromptCatalog
	gen     generate.Generator
	cache   *cache.Cache // may be nil
}

func NewPromptHandler(catalog store.PromptCatalog, gen generate.Generator, c *cache.Cache) *PromptHandler {
	return &PromptHandler{catalog: catalog, gen: gen, cache: c}
}

func (h *PromptHandler) List(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.catalog.Load(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"prompts": prompts, "count": len(prompts)})
}

type promptRequest struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

func (h *PromptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	p, err := h.catalog.AddPrompt(r.Context(), req.Prompt, req.Response)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// AttachResponse sets the response of the first catalog entry matching
// the prompt text. A miss is a 404 and changes nothing.
func (h *PromptHandler) AttachResponse(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	found, err := h.catalog.AttachResponse(r.Context(), req.Prompt, req.Response)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "prompt not found"})
		return
	}

	// A manual response supersedes whatever a generator cached earlier.
	if h.cache != nil {
		if err := h.cache.Delete(r.Context(), generate.ResponseKey(req.Prompt)); err != nil {
			slog.Warn("response cache invalidation failed", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"attached": true})
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Outcome  generate.Outcome `json:"outcome"`
	Text     string           `json:"text,omitempty"`
	Reason   string           `json:"reason,omitempty"`
	Attached bool             `json:"attached"`
}

// Generate asks the configured provider for a response and, when one
// comes back, attaches it to the catalog entry. Every outcome is a normal
// 200: a reviewer without a key or with a flaky provider just sees the
// prompt stay unanswered.
func (h *PromptHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Prompt == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "prompt required"})
		return
	}

	res := h.gen.Generate(r.Context(), req.Prompt)
	out := generateResponse{Outcome: res.Outcome, Text: res.Text, Reason: res.Reason}

	if res.Outcome == generate.OutcomeAvailable {
		attached, err := h.catalog.AttachResponse(r.Context(), req.Prompt, res.Text)
		if err != nil {
			slog.Warn("could not persist generated response", "error", err)
		}
		out.Attached = attached && err == nil
	}

	writeJSON(w, http.StatusOK, out)
}
