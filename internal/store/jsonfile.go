package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/feedbacklabs/feedback-engine/internal/models"
)

const (
	promptsFile     = "prompts.json"
	evaluationsFile = "evaluations.json"
)

// JSONFileStore keeps both collections as indented JSON arrays under a
// data directory, the on-disk layout this system has always used. Writes
// go through a temp file and a rename so a failed write leaves the
// previous file intact.
type JSONFileStore struct {
	dir             string
	promptsPath     string
	evaluationsPath string
}

// NewJSONFile creates the data directory if needed and returns a store
// rooted there.
func NewJSONFile(dir string) (*JSONFileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONFileStore{
		dir:             dir,
		promptsPath:     filepath.Join(dir, promptsFile),
		evaluationsPath: filepath.Join(dir, evaluationsFile),
	}, nil
}

// promptEntry is the on-disk shape of a catalog record. IDs are not
// persisted; they are positions in the array, assigned on load.
type promptEntry struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

func (s *JSONFileStore) Load(ctx context.Context) ([]models.PromptRecord, error) {
	entries, exists := s.readPrompts()
	if !exists {
		seeded := seedPrompts()
		entries = make([]promptEntry, len(seeded))
		for i, p := range seeded {
			entries[i] = promptEntry{Prompt: p.PromptText, Response: p.ResponseText}
		}
		if err := s.writeFile(s.promptsPath, entries); err != nil {
			return nil, fmt.Errorf("seed prompt catalog: %w", err)
		}
		slog.Info("seeded prompt catalog", "path", s.promptsPath, "prompts", len(entries))
	}

	recs := make([]models.PromptRecord, len(entries))
	for i, e := range entries {
		recs[i] = models.PromptRecord{
			ID:           int64(i + 1),
			PromptText:   e.Prompt,
			ResponseText: e.Response,
		}
	}
	return recs, nil
}

func (s *JSONFileStore) AddPrompt(ctx context.Context, promptText, responseText string) (models.PromptRecord, error) {
	if strings.TrimSpace(promptText) == "" {
		return models.PromptRecord{}, models.NewValidationError("prompt", "must not be empty")
	}

	entries, _ := s.readPrompts()
	entries = append(entries, promptEntry{Prompt: promptText, Response: responseText})
	if err := s.writeFile(s.promptsPath, entries); err != nil {
		return models.PromptRecord{}, fmt.Errorf("write prompt catalog: %w", err)
	}

	return models.PromptRecord{
		ID:           int64(len(entries)),
		PromptText:   promptText,
		ResponseText: responseText,
	}, nil
}

func (s *JSONFileStore) AttachResponse(ctx context.Context, promptText, responseText string) (bool, error) {
	entries, exists := s.readPrompts()
	if !exists {
		return false, nil
	}

	for i := range entries {
		if entries[i].Prompt == promptText {
			entries[i].Response = responseText
			if err := s.writeFile(s.promptsPath, entries); err != nil {
				return false, fmt.Errorf("write prompt catalog: %w", err)
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *JSONFileStore) LoadAll(ctx context.Context) ([]models.EvaluationRecord, error) {
	recs, exists := s.readEvaluations()
	if !exists {
		// Mirror the catalog behavior: materialize an empty log on first
		// touch so later reads and writes share one code path.
		if err := s.writeFile(s.evaluationsPath, []models.EvaluationRecord{}); err != nil {
			slog.Warn("could not create evaluation log", "path", s.evaluationsPath, "error", err)
		}
		return []models.EvaluationRecord{}, nil
	}
	return recs, nil
}

func (s *JSONFileStore) Append(ctx context.Context, rec models.EvaluationRecord) error {
	if strings.TrimSpace(rec.PromptText) == "" {
		return models.NewValidationError("prompt", "must not be empty")
	}

	recs, _ := s.readEvaluations()
	recs = append(recs, rec)
	if err := s.writeFile(s.evaluationsPath, recs); err != nil {
		return fmt.Errorf("write evaluation log: %w", err)
	}
	return nil
}

func (s *JSONFileStore) Aggregate(ctx context.Context) (models.Statistics, error) {
	recs, _ := s.readEvaluations()
	return Summarize(recs), nil
}

// readPrompts loads the catalog file. The second return reports whether
// the file exists at all, which is what decides seeding. Unreadable or
// malformed content is treated as an empty catalog: the reviewer keeps
// working and the problem is logged.
func (s *JSONFileStore) readPrompts() ([]promptEntry, bool) {
	raw, err := os.ReadFile(s.promptsPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false
	}
	if err != nil {
		slog.Warn("prompt catalog unreadable, treating as empty", "path", s.promptsPath, "error", err)
		return []promptEntry{}, true
	}

	var entries []promptEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.Warn("prompt catalog malformed, treating as empty", "path", s.promptsPath, "error", err)
		return []promptEntry{}, true
	}
	return entries, true
}

func (s *JSONFileStore) readEvaluations() ([]models.EvaluationRecord, bool) {
	raw, err := os.ReadFile(s.evaluationsPath)
	if errors.Is(err, os.ErrNotExist) {
		return []models.EvaluationRecord{}, false
	}
	if err != nil {
		slog.Warn("evaluation log unreadable, treating as empty", "path", s.evaluationsPath, "error", err)
		return []models.EvaluationRecord{}, true
	}

	var recs []models.EvaluationRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		slog.Warn("evaluation log malformed, treating as empty", "path", s.evaluationsPath, "error", err)
		return []models.EvaluationRecord{}, true
	}
	return recs, true
}

// writeFile replaces path with the indented JSON encoding of v. The data
// lands in a temp file first and moves into place with a rename, so
// readers never observe a partial write and a failure cannot damage the
// existing file.
func (s *JSONFileStore) writeFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
