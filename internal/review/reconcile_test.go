package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feedbacklabs/feedback-engine/internal/models"
)

func testCatalog() []models.PromptRecord {
	return []models.PromptRecord{
		{ID: 1, PromptText: "first prompt"},
		{ID: 2, PromptText: "second prompt"},
		{ID: 3, PromptText: "third prompt"},
	}
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, FilterRated, ParseFilter("rated"))
	assert.Equal(t, FilterUnrated, ParseFilter("unrated"))
	assert.Equal(t, FilterAll, ParseFilter("all"))
	assert.Equal(t, FilterAll, ParseFilter(""))
	assert.Equal(t, FilterAll, ParseFilter("bogus"))
}

func TestRatedSet(t *testing.T) {
	evals := []models.EvaluationRecord{
		{PromptText: "second prompt"},
		{PromptText: "second prompt"},
		{PromptText: "third prompt"},
	}

	rated := RatedSet(evals)
	assert.Len(t, rated, 2)
	assert.Contains(t, rated, "second prompt")
	assert.Contains(t, rated, "third prompt")
}

func TestUnrated_PreservesCatalogOrder(t *testing.T) {
	rated := map[string]struct{}{"second prompt": {}}

	unrated := Unrated(testCatalog(), rated)
	assert.Len(t, unrated, 2)
	assert.Equal(t, "first prompt", unrated[0].PromptText)
	assert.Equal(t, "third prompt", unrated[1].PromptText)
}

func TestUnrated_NoneRated(t *testing.T) {
	unrated := Unrated(testCatalog(), map[string]struct{}{})
	assert.Equal(t, testCatalog(), unrated)
}

func TestApplyFilter(t *testing.T) {
	catalog := testCatalog()
	rated := map[string]struct{}{"second prompt": {}}

	all := ApplyFilter(catalog, rated, FilterAll)
	assert.Equal(t, catalog, all)

	ratedOnly := ApplyFilter(catalog, rated, FilterRated)
	assert.Len(t, ratedOnly, 1)
	assert.Equal(t, "second prompt", ratedOnly[0].PromptText)

	unratedOnly := ApplyFilter(catalog, rated, FilterUnrated)
	assert.Len(t, unratedOnly, 2)
	assert.Equal(t, "first prompt", unratedOnly[0].PromptText)
	assert.Equal(t, "third prompt", unratedOnly[1].PromptText)
}

func TestNextUnrated(t *testing.T) {
	catalog := testCatalog()

	// With only the middle entry judged, the first entry is next,
	// no matter where the reviewer currently is.
	next, ok := NextUnrated(catalog, map[string]struct{}{"second prompt": {}})
	assert.True(t, ok)
	assert.Equal(t, "first prompt", next.PromptText)

	next, ok = NextUnrated(catalog, map[string]struct{}{
		"first prompt":  {},
		"second prompt": {},
	})
	assert.True(t, ok)
	assert.Equal(t, "third prompt", next.PromptText)
}

func TestNextUnrated_AllRated(t *testing.T) {
	rated := map[string]struct{}{
		"first prompt":  {},
		"second prompt": {},
		"third prompt":  {},
	}

	_, ok := NextUnrated(testCatalog(), rated)
	assert.False(t, ok)
}

func TestFindEvaluation(t *testing.T) {
	evals := []models.EvaluationRecord{
		{PromptText: "first prompt", Helpfulness: 2},
		{PromptText: "first prompt", Helpfulness: 4},
	}

	e, ok := FindEvaluation(evals, "first prompt")
	assert.True(t, ok)
	assert.Equal(t, 2, e.Helpfulness, "the earliest judgment wins")

	_, ok = FindEvaluation(evals, "missing prompt")
	assert.False(t, ok)
}
