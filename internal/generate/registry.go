package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/feedbacklabs/feedback-engine/internal/config"
)

// FromConfig assembles the generator the deployment asked for, with an
// optional single-shot fallback provider behind it. A provider that is
// named but missing its key degrades to the unavailable generator instead
// of erroring: generation is optional everywhere it is used.
func FromConfig(cfg config.GeneratorConfig) Generator {
	primary := build(cfg, cfg.Provider)
	if cfg.FallbackProvider == "" || cfg.FallbackProvider == cfg.Provider {
		return primary
	}
	return WithFallback(primary, build(cfg, cfg.FallbackProvider))
}

func build(cfg config.GeneratorConfig, name string) Generator {
	switch name {
	case "huggingface":
		if cfg.HFAPIKey == "" {
			return NewUnavailable("huggingface API key not configured")
		}
		return NewHuggingFace(cfg.HFAPIKey, cfg.HFModel, cfg.HFBaseURL, cfg.Timeout)
	case "openai":
		if cfg.OpenAIKey == "" {
			return NewUnavailable("openai API key not configured")
		}
		return NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, cfg.Timeout)
	case "anthropic":
		if cfg.AnthropicKey == "" {
			return NewUnavailable("anthropic API key not configured")
		}
		return NewAnthropic(cfg.AnthropicKey, cfg.AnthropicModel, cfg.Timeout)
	case "":
		return NewUnavailable("no generator configured")
	default:
		return NewUnavailable(fmt.Sprintf("unknown generator provider %q", name))
	}
}

type fallbackGenerator struct {
	primary  Generator
	fallback Generator
}

// WithFallback tries the fallback generator once when the primary does
// not produce text. No retries on either side; a review stays a single
// synchronous interaction.
func WithFallback(primary, fallback Generator) Generator {
	return &fallbackGenerator{primary: primary, fallback: fallback}
}

func (g *fallbackGenerator) Name() string { return g.primary.Name() }

func (g *fallbackGenerator) Generate(ctx context.Context, prompt string) Result {
	res := g.primary.Generate(ctx, prompt)
	if res.Outcome == OutcomeAvailable {
		return res
	}

	slog.Warn("primary generator produced no text, trying fallback",
		"primary", g.primary.Name(),
		"fallback", g.fallback.Name(),
		"reason", res.Reason,
	)
	return g.fallback.Generate(ctx, prompt)
}
