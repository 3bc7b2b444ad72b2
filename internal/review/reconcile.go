package review

import "github.com/feedbacklabs/feedback-engine/internal/models"

// Filter narrows the catalog to a slice of interest for navigation.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterRated   Filter = "rated"
	FilterUnrated Filter = "unrated"
)

// ParseFilter maps a query-string value onto a Filter, defaulting to all.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterRated:
		return FilterRated
	case FilterUnrated:
		return FilterUnrated
	default:
		return FilterAll
	}
}

// The catalog and the evaluation log are independent collections joined
// only here, by prompt text equality. A catalog entry whose text was
// edited after being judged therefore reads as unrated again; that is the
// defined behavior, not an accident.

// RatedSet returns the distinct prompt texts present in the log.
func RatedSet(evals []models.EvaluationRecord) map[string]struct{} {
	rated := make(map[string]struct{}, len(evals))
	for _, e := range evals {
		rated[e.PromptText] = struct{}{}
	}
	return rated
}

// Unrated returns the catalog entries absent from rated, preserving
// catalog order.
func Unrated(catalog []models.PromptRecord, rated map[string]struct{}) []models.PromptRecord {
	out := []models.PromptRecord{}
	for _, p := range catalog {
		if _, ok := rated[p.PromptText]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// ApplyFilter returns the catalog view a session navigates: the whole
// catalog, only judged entries, or only pending ones. Order is always
// catalog order.
func ApplyFilter(catalog []models.PromptRecord, rated map[string]struct{}, f Filter) []models.PromptRecord {
	switch f {
	case FilterRated:
		out := []models.PromptRecord{}
		for _, p := range catalog {
			if _, ok := rated[p.PromptText]; ok {
				out = append(out, p)
			}
		}
		return out
	case FilterUnrated:
		return Unrated(catalog, rated)
	default:
		return catalog
	}
}

// NextUnrated returns the first catalog entry not yet judged, regardless
// of any cursor position. The bool reports whether one exists.
func NextUnrated(catalog []models.PromptRecord, rated map[string]struct{}) (models.PromptRecord, bool) {
	for _, p := range catalog {
		if _, ok := rated[p.PromptText]; !ok {
			return p, true
		}
	}
	return models.PromptRecord{}, false
}

// FindEvaluation returns the first logged judgment for the given prompt
// text, if any.
func FindEvaluation(evals []models.EvaluationRecord, promptText string) (models.EvaluationRecord, bool) {
	for _, e := range evals {
		if e.PromptText == promptText {
			return e, true
		}
	}
	return models.EvaluationRecord{}, false
}
