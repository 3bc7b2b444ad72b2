package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbacklabs/feedback-engine/internal/models"
	"github.com/feedbacklabs/feedback-engine/internal/store"
)

func testService(t *testing.T) (*Service, store.Store) {
	t.Helper()

	st, err := store.NewJSONFile(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	for _, text := range []string{"first prompt", "second prompt", "third prompt"} {
		_, err := st.AddPrompt(ctx, text, "a canned response")
		require.NoError(t, err)
	}
	return NewService(st), st
}

func submitFor(prompt string) SubmitRequest {
	return SubmitRequest{
		PromptText:   prompt,
		ResponseText: "a canned response",
		Helpfulness:  4,
		Truthfulness: 5,
		Harmlessness: 3,
		Comments:     "fine",
	}
}

func TestService_Submit(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	rec, err := svc.Submit(ctx, submitFor("second prompt"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.PromptID)
	assert.Equal(t, "second prompt", rec.PromptText)
	assert.Equal(t, 4, rec.Helpfulness)

	_, err = time.Parse(time.RFC3339, rec.Timestamp)
	assert.NoError(t, err, "timestamp %q must be RFC 3339", rec.Timestamp)

	evals, err := st.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, rec, evals[0])
}

func TestService_SubmitValidation(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*SubmitRequest)
	}{
		{"empty prompt", func(r *SubmitRequest) { r.PromptText = "  " }},
		{"helpfulness too low", func(r *SubmitRequest) { r.Helpfulness = 0 }},
		{"truthfulness too high", func(r *SubmitRequest) { r.Truthfulness = 6 }},
		{"harmlessness negative", func(r *SubmitRequest) { r.Harmlessness = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := submitFor("first prompt")
			tc.mutate(&req)

			_, err := svc.Submit(ctx, req)
			require.Error(t, err)
			var verr *models.ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}

	// Nothing reached the log
	evals, err := st.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, evals)
}

func TestService_SubmitRejectsDuplicate(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, submitFor("first prompt"))
	require.NoError(t, err)

	_, err = svc.Submit(ctx, submitFor("first prompt"))
	assert.ErrorIs(t, err, ErrAlreadyEvaluated)

	evals, err := st.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, evals, 1)
}

func TestService_SubmitAdHocPrompt(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	rec, err := svc.Submit(ctx, submitFor("a prompt nobody cataloged"))
	require.NoError(t, err)
	assert.Zero(t, rec.PromptID)

	evals, err := st.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, evals, 1)
}

func TestService_View(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, submitFor("second prompt"))
	require.NoError(t, err)

	pv, err := svc.View(ctx, NewSession(FilterUnrated))
	require.NoError(t, err)
	assert.Equal(t, 2, pv.ViewSize)
	require.NotNil(t, pv.Prompt)
	assert.Equal(t, "first prompt", pv.Prompt.PromptText)
	assert.Nil(t, pv.Evaluation)
	assert.Equal(t, Progress{Evaluated: 1, Total: 3}, pv.Progress)

	pv, err = svc.View(ctx, NewSession(FilterRated))
	require.NoError(t, err)
	assert.Equal(t, 1, pv.ViewSize)
	require.NotNil(t, pv.Prompt)
	assert.Equal(t, "second prompt", pv.Prompt.PromptText)
	require.NotNil(t, pv.Evaluation)
	assert.Equal(t, 4, pv.Evaluation.Helpfulness)
}

func TestService_ViewClampsStaleCursor(t *testing.T) {
	svc, _ := testService(t)

	sess := NewSession(FilterAll)
	sess.Cursor = 99

	pv, err := svc.View(context.Background(), sess)
	require.NoError(t, err)
	assert.Zero(t, pv.Session.Cursor)
	require.NotNil(t, pv.Prompt)
	assert.Equal(t, "first prompt", pv.Prompt.PromptText)
}

func TestService_ViewEmptyFilter(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	for _, text := range []string{"first prompt", "second prompt", "third prompt"} {
		_, err := svc.Submit(ctx, submitFor(text))
		require.NoError(t, err)
	}

	pv, err := svc.View(ctx, NewSession(FilterUnrated))
	require.NoError(t, err)
	assert.Zero(t, pv.ViewSize)
	assert.Nil(t, pv.Prompt)
	assert.Equal(t, Progress{Evaluated: 3, Total: 3}, pv.Progress)
}

func TestService_JumpToNextUnrated(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, submitFor("second prompt"))
	require.NoError(t, err)

	// From anywhere in the full view, the jump lands on the first
	// entry without a judgment.
	sess := NewSession(FilterAll)
	sess.Cursor = 2

	pv, found, err := svc.JumpToNextUnrated(ctx, sess)
	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, pv.Prompt)
	assert.Equal(t, "first prompt", pv.Prompt.PromptText)
	assert.Zero(t, pv.Session.Cursor)
}

func TestService_JumpFallsBackToFullView(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, submitFor("second prompt"))
	require.NoError(t, err)

	// The rated view cannot show an unrated entry, so the session is
	// switched to the full view before positioning.
	pv, found, err := svc.JumpToNextUnrated(ctx, NewSession(FilterRated))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, FilterAll, pv.Session.Filter)
	assert.Equal(t, 3, pv.ViewSize)
	require.NotNil(t, pv.Prompt)
	assert.Equal(t, "first prompt", pv.Prompt.PromptText)
}

func TestService_JumpWithEverythingRated(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	for _, text := range []string{"first prompt", "second prompt", "third prompt"} {
		_, err := svc.Submit(ctx, submitFor(text))
		require.NoError(t, err)
	}

	_, found, err := svc.JumpToNextUnrated(ctx, NewSession(FilterAll))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_CurrentProgress(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	p, err := svc.CurrentProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, Progress{Evaluated: 0, Total: 3}, p)

	_, err = svc.Submit(ctx, submitFor("third prompt"))
	require.NoError(t, err)

	p, err = svc.CurrentProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, Progress{Evaluated: 1, Total: 3}, p)
}
