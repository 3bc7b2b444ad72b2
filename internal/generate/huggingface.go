package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultHFBaseURL = "https://api-inference.huggingface.co"
	DefaultHFModel   = "microsoft/DialoGPT-medium"
)

// HuggingFaceGenerator calls the Hugging Face Inference API. The HTTP
// client carries a hard timeout so a stalled inference endpoint cannot
// hold a review session hostage.
type HuggingFaceGenerator struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewHuggingFace(apiKey, model, baseURL string, timeout time.Duration) *HuggingFaceGenerator {
	if model == "" {
		model = DefaultHFModel
	}
	if baseURL == "" {
		baseURL = DefaultHFBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HuggingFaceGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (g *HuggingFaceGenerator) Name() string { return "huggingface" }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	DoSample    bool    `json:"do_sample"`
}

type hfGenerated struct {
	GeneratedText string `json:"generated_text"`
}

func (g *HuggingFaceGenerator) Generate(ctx context.Context, prompt string) Result {
	if g.apiKey == "" {
		return Unavailable("huggingface API key not configured")
	}

	body, _ := json.Marshal(hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxLength:   200,
			Temperature: 0.7,
			DoSample:    true,
		},
	})

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/models/"+g.model, bytes.NewReader(body))
	if err != nil {
		return Failed(fmt.Sprintf("huggingface request: %v", err))
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return Failed(fmt.Sprintf("huggingface call: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Failed(fmt.Sprintf("huggingface status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	var out []hfGenerated
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Failed(fmt.Sprintf("huggingface decode: %v", err))
	}
	if len(out) == 0 || strings.TrimSpace(out[0].GeneratedText) == "" {
		return Failed("huggingface returned no text")
	}
	return Available(strings.TrimSpace(out[0].GeneratedText))
}
