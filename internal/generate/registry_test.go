package generate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/feedbacklabs/feedback-engine/internal/config"
)

type stubGenerator struct {
	name  string
	res   Result
	calls int
}

func (g *stubGenerator) Name() string { return g.name }

func (g *stubGenerator) Generate(ctx context.Context, prompt string) Result {
	g.calls++
	return g.res
}

func TestFromConfig_Unconfigured(t *testing.T) {
	g := FromConfig(config.GeneratorConfig{})

	res := g.Generate(context.Background(), "anything")
	assert.Equal(t, OutcomeUnavailable, res.Outcome)
	assert.Contains(t, res.Reason, "no generator configured")
}

func TestFromConfig_MissingKey(t *testing.T) {
	g := FromConfig(config.GeneratorConfig{Provider: "huggingface"})

	res := g.Generate(context.Background(), "anything")
	assert.Equal(t, OutcomeUnavailable, res.Outcome)
	assert.Contains(t, res.Reason, "API key")
}

func TestFromConfig_UnknownProvider(t *testing.T) {
	g := FromConfig(config.GeneratorConfig{Provider: "crystal-ball"})

	res := g.Generate(context.Background(), "anything")
	assert.Equal(t, OutcomeUnavailable, res.Outcome)
	assert.Contains(t, res.Reason, "crystal-ball")
}

func TestFromConfig_BuildsConfiguredProvider(t *testing.T) {
	g := FromConfig(config.GeneratorConfig{
		Provider: "huggingface",
		HFAPIKey: "test-key",
		Timeout:  time.Second,
	})
	assert.Equal(t, "huggingface", g.Name())
}

func TestWithFallback_PrimaryWins(t *testing.T) {
	primary := &stubGenerator{name: "primary", res: Available("from primary")}
	fallback := &stubGenerator{name: "fallback", res: Available("from fallback")}

	res := WithFallback(primary, fallback).Generate(context.Background(), "p")
	assert.Equal(t, "from primary", res.Text)
	assert.Zero(t, fallback.calls)
}

func TestWithFallback_UsedWhenPrimaryFails(t *testing.T) {
	primary := &stubGenerator{name: "primary", res: Failed("rate limited")}
	fallback := &stubGenerator{name: "fallback", res: Available("from fallback")}

	res := WithFallback(primary, fallback).Generate(context.Background(), "p")
	assert.Equal(t, OutcomeAvailable, res.Outcome)
	assert.Equal(t, "from fallback", res.Text)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestWithFallback_UsedWhenPrimaryUnavailable(t *testing.T) {
	primary := &stubGenerator{name: "primary", res: Unavailable("no key")}
	fallback := &stubGenerator{name: "fallback", res: Failed("also down")}

	res := WithFallback(primary, fallback).Generate(context.Background(), "p")
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Equal(t, "also down", res.Reason)
}

func TestUnavailableGenerator(t *testing.T) {
	g := NewUnavailable("switched off")

	res := g.Generate(context.Background(), "anything")
	assert.Equal(t, OutcomeUnavailable, res.Outcome)
	assert.Equal(t, "switched off", res.Reason)
	assert.Equal(t, "none", g.Name())
}

func TestResponseKey(t *testing.T) {
	k1 := ResponseKey("what is machine learning?")
	k2 := ResponseKey("what is machine learning?")
	k3 := ResponseKey("a different prompt")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Contains(t, k1, "genresp:")
}
