package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/feedbacklabs/feedback-engine/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps both collections in PostgreSQL. Insertion order is
// the BIGSERIAL key, so loads ordered by id replay the log exactly as it
// was written. The submitted_at column holds the reviewer timestamp as
// verbatim text; created_at is the database's own clock.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context) ([]models.PromptRecord, error) {
	if err := s.seedIfEmpty(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, prompt_text, response_text FROM prompts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load prompts: %w", err)
	}
	defer rows.Close()

	recs := []models.PromptRecord{}
	for rows.Next() {
		var p models.PromptRecord
		if err := rows.Scan(&p.ID, &p.PromptText, &p.ResponseText); err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		recs = append(recs, p)
	}
	return recs, rows.Err()
}

func (s *PostgresStore) AddPrompt(ctx context.Context, promptText, responseText string) (models.PromptRecord, error) {
	if strings.TrimSpace(promptText) == "" {
		return models.PromptRecord{}, models.NewValidationError("prompt", "must not be empty")
	}

	var p models.PromptRecord
	err := s.db.QueryRow(ctx,
		`INSERT INTO prompts (prompt_text, response_text)
		 VALUES ($1, $2)
		 RETURNING id, prompt_text, response_text`,
		promptText, responseText,
	).Scan(&p.ID, &p.PromptText, &p.ResponseText)
	if err != nil {
		return models.PromptRecord{}, fmt.Errorf("insert prompt: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) AttachResponse(ctx context.Context, promptText, responseText string) (bool, error) {
	// First match only, by id, so repeated prompt texts behave the same
	// as a linear scan of the catalog.
	tag, err := s.db.Exec(ctx,
		`UPDATE prompts SET response_text = $2
		 WHERE id = (SELECT id FROM prompts WHERE prompt_text = $1 ORDER BY id LIMIT 1)`,
		promptText, responseText,
	)
	if err != nil {
		return false, fmt.Errorf("update prompt response: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) LoadAll(ctx context.Context) ([]models.EvaluationRecord, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, prompt_id, prompt_text, response_text,
		        helpfulness_score, truthfulness_score, harmlessness_score,
		        comments, submitted_at
		 FROM evaluations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load evaluations: %w", err)
	}
	defer rows.Close()

	recs := []models.EvaluationRecord{}
	for rows.Next() {
		var r models.EvaluationRecord
		if err := rows.Scan(&r.ID, &r.PromptID, &r.PromptText, &r.ResponseText,
			&r.Helpfulness, &r.Truthfulness, &r.Harmlessness,
			&r.Comments, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (s *PostgresStore) Append(ctx context.Context, rec models.EvaluationRecord) error {
	if strings.TrimSpace(rec.PromptText) == "" {
		return models.NewValidationError("prompt", "must not be empty")
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO evaluations
		   (prompt_id, prompt_text, response_text,
		    helpfulness_score, truthfulness_score, harmlessness_score,
		    comments, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.PromptID, rec.PromptText, rec.ResponseText,
		rec.Helpfulness, rec.Truthfulness, rec.Harmlessness,
		rec.Comments, rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

func (s *PostgresStore) Aggregate(ctx context.Context) (models.Statistics, error) {
	var stats models.Statistics
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(helpfulness_score), 0)::float8,
		        COALESCE(AVG(truthfulness_score), 0)::float8,
		        COALESCE(AVG(harmlessness_score), 0)::float8
		 FROM evaluations`,
	).Scan(&stats.Count, &stats.MeanHelpfulness, &stats.MeanTruthfulness, &stats.MeanHarmlessness)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("aggregate evaluations: %w", err)
	}
	return stats, nil
}

// seedIfEmpty populates the prompts table with the default set when it
// holds no rows. Checking the count keeps the operation idempotent: a
// catalog that was seeded once, or that already has data from a JSON
// import, is left alone.
func (s *PostgresStore) seedIfEmpty(ctx context.Context) error {
	var n int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM prompts").Scan(&n); err != nil {
		return fmt.Errorf("count prompts: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	seeded := seedPrompts()
	for _, p := range seeded {
		if _, err := tx.Exec(ctx,
			"INSERT INTO prompts (prompt_text, response_text) VALUES ($1, $2)",
			p.PromptText, p.ResponseText,
		); err != nil {
			return fmt.Errorf("seed prompt: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	slog.Info("seeded prompt catalog", "backend", "postgres", "prompts", len(seeded))
	return nil
}
