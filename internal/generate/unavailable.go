package generate

import "context"

// unavailableGenerator is what deployments without a configured provider
// get: every call reports the same reason and nothing else happens.
type unavailableGenerator struct {
	reason string
}

func NewUnavailable(reason string) Generator {
	return unavailableGenerator{reason: reason}
}

func (g unavailableGenerator) Name() string { return "none" }

func (g unavailableGenerator) Generate(ctx context.Context, prompt string) Result {
	return Unavailable(g.reason)
}
