package generate

import (
	"context"
	"time"
)

// DefaultTimeout bounds provider calls when no budget is configured. A
// generation that overruns it is a failed Result, not a hung review.
const DefaultTimeout = 30 * time.Second

// Outcome classifies what a generation attempt produced. There is no
// error return anywhere in this package: a missing key, a refused call,
// and a dead network are all ordinary outcomes the caller has to render,
// not failures to propagate.
type Outcome string

const (
	// OutcomeAvailable means Text holds a usable response.
	OutcomeAvailable Outcome = "available"
	// OutcomeUnavailable means no generator is configured or usable right
	// now. Reason says why.
	OutcomeUnavailable Outcome = "unavailable"
	// OutcomeFailed means a configured generator tried and did not
	// produce text. Reason carries the cause.
	OutcomeFailed Outcome = "failed"
)

// Result is the complete answer of a generation attempt.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Text    string  `json:"text,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

// Generator produces a candidate response for a prompt. Implementations
// must bound their own network calls; callers treat every Result variant
// as a normal return.
type Generator interface {
	Generate(ctx context.Context, prompt string) Result
	Name() string
}

// Available wraps generated text.
func Available(text string) Result {
	return Result{Outcome: OutcomeAvailable, Text: text}
}

// Unavailable reports that no generation could be attempted.
func Unavailable(reason string) Result {
	return Result{Outcome: OutcomeUnavailable, Reason: reason}
}

// Failed reports an attempt that did not produce text.
func Failed(reason string) Result {
	return Result{Outcome: OutcomeFailed, Reason: reason}
}
