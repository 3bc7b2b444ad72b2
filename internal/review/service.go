package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/feedbacklabs/feedback-engine/internal/models"
	"github.com/feedbacklabs/feedback-engine/internal/store"
)

// ErrAlreadyEvaluated reports a submission for a prompt text that already
// has a judgment in the log. The log itself accepts duplicates; keeping
// them out is this service's job.
var ErrAlreadyEvaluated = errors.New("prompt already evaluated")

// Service coordinates the catalog, the evaluation log, and the session
// state for one reviewer.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

type SubmitRequest struct {
	PromptText   string `json:"prompt"`
	ResponseText string `json:"response"`
	Helpfulness  int    `json:"helpfulness_score"`
	Truthfulness int    `json:"truthfulness_score"`
	Harmlessness int    `json:"harmlessness_score"`
	Comments     string `json:"comments"`
}

func (r SubmitRequest) validate() error {
	if strings.TrimSpace(r.PromptText) == "" {
		return models.NewValidationError("prompt", "must not be empty")
	}
	scores := []struct {
		field string
		value int
	}{
		{"helpfulness_score", r.Helpfulness},
		{"truthfulness_score", r.Truthfulness},
		{"harmlessness_score", r.Harmlessness},
	}
	for _, s := range scores {
		if s.value < models.ScoreMin || s.value > models.ScoreMax {
			return models.NewValidationError(s.field,
				fmt.Sprintf("must be between %d and %d", models.ScoreMin, models.ScoreMax))
		}
	}
	return nil
}

// Submit validates a judgment, rejects re-judging a prompt text that is
// already in the log, stamps it, and appends it. Nothing is persisted
// unless every check passes.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (models.EvaluationRecord, error) {
	if err := req.validate(); err != nil {
		return models.EvaluationRecord{}, err
	}

	evals, err := s.store.LoadAll(ctx)
	if err != nil {
		return models.EvaluationRecord{}, fmt.Errorf("load evaluations: %w", err)
	}
	if _, ok := RatedSet(evals)[req.PromptText]; ok {
		return models.EvaluationRecord{}, ErrAlreadyEvaluated
	}

	rec := models.EvaluationRecord{
		PromptID:     s.lookupPromptID(ctx, req.PromptText),
		PromptText:   req.PromptText,
		ResponseText: req.ResponseText,
		Helpfulness:  req.Helpfulness,
		Truthfulness: req.Truthfulness,
		Harmlessness: req.Harmlessness,
		Comments:     req.Comments,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.store.Append(ctx, rec); err != nil {
		return models.EvaluationRecord{}, fmt.Errorf("append evaluation: %w", err)
	}
	return rec, nil
}

// lookupPromptID finds the catalog id of the first entry matching the
// prompt text. Zero means the text is not in the catalog, which is fine:
// ad-hoc prompts can be judged without being cataloged first.
func (s *Service) lookupPromptID(ctx context.Context, promptText string) int64 {
	catalog, err := s.store.Load(ctx)
	if err != nil {
		return 0
	}
	for _, p := range catalog {
		if p.PromptText == promptText {
			return p.ID
		}
	}
	return 0
}

// Progress pairs how many judgments exist with how many catalog entries
// there are.
type Progress struct {
	Evaluated int `json:"evaluated"`
	Total     int `json:"total"`
}

// PromptView is what a reviewer sees at one session position: the entry
// under the cursor, its judgment when one exists, and how far the work
// has come. Prompt is nil when the active filter matches nothing.
type PromptView struct {
	Session    Session                  `json:"session"`
	ViewSize   int                      `json:"view_size"`
	Prompt     *models.PromptRecord     `json:"prompt,omitempty"`
	Evaluation *models.EvaluationRecord `json:"evaluation,omitempty"`
	Progress   Progress                 `json:"progress"`
}

// View resolves a session against the current catalog and log.
func (s *Service) View(ctx context.Context, sess Session) (PromptView, error) {
	catalog, evals, rated, err := s.snapshot(ctx)
	if err != nil {
		return PromptView{}, err
	}

	view := ApplyFilter(catalog, rated, sess.Filter)
	sess = sess.Clamp(len(view))

	pv := PromptView{
		Session:  sess,
		ViewSize: len(view),
		Progress: Progress{Evaluated: len(evals), Total: len(catalog)},
	}
	if len(view) > 0 {
		p := view[sess.Cursor]
		pv.Prompt = &p
		if e, ok := FindEvaluation(evals, p.PromptText); ok {
			pv.Evaluation = &e
		}
	}
	return pv, nil
}

// JumpToNextUnrated repositions the session on the first catalog entry
// without a judgment. When the active filter cannot show that entry (it
// hides unrated ones), the session falls back to the full view. The bool
// reports whether any unrated entry remains.
func (s *Service) JumpToNextUnrated(ctx context.Context, sess Session) (PromptView, bool, error) {
	catalog, evals, rated, err := s.snapshot(ctx)
	if err != nil {
		return PromptView{}, false, err
	}

	next, ok := NextUnrated(catalog, rated)
	if !ok {
		pv, err := s.View(ctx, sess)
		return pv, false, err
	}

	view := ApplyFilter(catalog, rated, sess.Filter)
	idx := indexOf(view, next.PromptText)
	if idx < 0 {
		sess = sess.WithFilter(FilterAll)
		view = catalog
		idx = indexOf(view, next.PromptText)
	}
	sess.Cursor = idx

	pv := PromptView{
		Session:  sess,
		ViewSize: len(view),
		Prompt:   &next,
		Progress: Progress{Evaluated: len(evals), Total: len(catalog)},
	}
	return pv, true, nil
}

// CurrentProgress reports the judged/total counts on their own.
func (s *Service) CurrentProgress(ctx context.Context) (Progress, error) {
	catalog, evals, _, err := s.snapshot(ctx)
	if err != nil {
		return Progress{}, err
	}
	return Progress{Evaluated: len(evals), Total: len(catalog)}, nil
}

func (s *Service) snapshot(ctx context.Context) ([]models.PromptRecord, []models.EvaluationRecord, map[string]struct{}, error) {
	catalog, err := s.store.Load(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load prompts: %w", err)
	}
	evals, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load evaluations: %w", err)
	}
	return catalog, evals, RatedSet(evals), nil
}

func indexOf(view []models.PromptRecord, promptText string) int {
	for i, p := range view {
		if p.PromptText == promptText {
			return i
		}
	}
	return -1
}
