package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuggingFaceGenerator_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/test-model", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req hfRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "say hello", req.Inputs)
		assert.Equal(t, 200, req.Parameters.MaxLength)
		assert.InDelta(t, 0.7, req.Parameters.Temperature, 1e-9)
		assert.True(t, req.Parameters.DoSample)

		json.NewEncoder(w).Encode([]hfGenerated{{GeneratedText: "  hello there  "}})
	}))
	defer srv.Close()

	g := NewHuggingFace("test-key", "test-model", srv.URL, time.Second)
	res := g.Generate(context.Background(), "say hello")

	assert.Equal(t, OutcomeAvailable, res.Outcome)
	assert.Equal(t, "hello there", res.Text)
	assert.Empty(t, res.Reason)
}

func TestHuggingFaceGenerator_NoKey(t *testing.T) {
	g := NewHuggingFace("", "test-model", "http://unused", time.Second)
	res := g.Generate(context.Background(), "say hello")

	assert.Equal(t, OutcomeUnavailable, res.Outcome)
	assert.Empty(t, res.Text)
	assert.Contains(t, res.Reason, "API key")
}

func TestHuggingFaceGenerator_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model is loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewHuggingFace("test-key", "test-model", srv.URL, time.Second)
	res := g.Generate(context.Background(), "say hello")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Contains(t, res.Reason, "503")
	assert.Contains(t, res.Reason, "model is loading")
}

func TestHuggingFaceGenerator_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	g := NewHuggingFace("test-key", "test-model", srv.URL, time.Second)
	res := g.Generate(context.Background(), "say hello")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Contains(t, res.Reason, "no text")
}

func TestHuggingFaceGenerator_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[{"generated_text":"too late"}]`))
	}))
	defer srv.Close()

	g := NewHuggingFace("test-key", "test-model", srv.URL, 50*time.Millisecond)
	res := g.Generate(context.Background(), "say hello")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Empty(t, res.Text)
}

func TestNewHuggingFace_Defaults(t *testing.T) {
	g := NewHuggingFace("test-key", "", "", 0)

	assert.Equal(t, DefaultHFModel, g.model)
	assert.Equal(t, DefaultHFBaseURL, g.baseURL)
	assert.Equal(t, DefaultTimeout, g.httpClient.Timeout)

	g = NewHuggingFace("test-key", "m", "http://example.test/", time.Second)
	assert.Equal(t, "http://example.test", g.baseURL)
}
