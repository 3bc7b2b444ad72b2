package store

import (
	"context"

	"github.com/feedbacklabs/feedback-engine/internal/models"
)

// Backend names accepted by STORE_BACKEND.
const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
)

// PromptCatalog is the ordered collection of prompt/response pairs under
// review. Load seeds the built-in default set the first time it finds no
// backing data; after that it only reads.
type PromptCatalog interface {
	Load(ctx context.Context) ([]models.PromptRecord, error)
	AddPrompt(ctx context.Context, promptText, responseText string) (models.PromptRecord, error)
	// AttachResponse sets the response of the first record whose prompt
	// text equals promptText. It reports whether a match was found; a miss
	// is not an error and leaves the catalog untouched.
	AttachResponse(ctx context.Context, promptText, responseText string) (bool, error)
}

// EvaluationStore is the append-only log of reviewer judgments. Records
// come back in insertion order. The store does not reject duplicate
// judgments for the same prompt text; callers that care enforce that
// before appending.
type EvaluationStore interface {
	LoadAll(ctx context.Context) ([]models.EvaluationRecord, error)
	Append(ctx context.Context, rec models.EvaluationRecord) error
	Aggregate(ctx context.Context) (models.Statistics, error)
}

// Store bundles both collections. Each backend implements the pair so the
// whole data layer swaps out in one place at startup.
type Store interface {
	PromptCatalog
	EvaluationStore
}

// Summarize computes mean scores over a slice of records. An empty slice
// yields the zero Statistics sentinel rather than a division by zero.
func Summarize(recs []models.EvaluationRecord) models.Statistics {
	if len(recs) == 0 {
		return models.Statistics{}
	}

	var help, truth, harm int
	for _, r := range recs {
		help += r.Helpfulness
		truth += r.Truthfulness
		harm += r.Harmlessness
	}

	n := float64(len(recs))
	return models.Statistics{
		Count:            len(recs),
		MeanHelpfulness:  float64(help) / n,
		MeanTruthfulness: float64(truth) / n,
		MeanHarmlessness: float64(harm) / n,
	}
}
