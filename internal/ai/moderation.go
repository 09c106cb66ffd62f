package ai

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"
)

// ModerationResult is the outcome of a safety check.
type ModerationResult struct {
	Safe       bool
	Categories []string
}

// Moderator screens user text for policy violations.
type Moderator interface {
	CheckSafety(ctx context.Context, text string) (*ModerationResult, error)
}

// moderationAPI calls an OpenAI-compatible /moderations endpoint.
type moderationAPI struct {
	provider string
	model    string
	url      string
	apiKey   string
	client   *http.Client
}

func newOpenAIModerator(apiKey, baseURL string) *moderationAPI {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &moderationAPI{
		provider: "openai", model: "omni-moderation-latest",
		url: baseURL + "/moderations", apiKey: apiKey,
		client: &http.Client{Timeout: moderateTimeout},
	}
}

func newMistralModerator(apiKey, baseURL string) *moderationAPI {
	if baseURL == "" {
		baseURL = "https://api.mistral.ai/v1"
	}
	return &moderationAPI{
		provider: "mistral", model: "mistral-moderation-latest",
		url: baseURL + "/moderations", apiKey: apiKey,
		client: &http.Client{Timeout: moderateTimeout},
	}
}

func (m *moderationAPI) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	var resp moderationResponse
	err := postJSON(ctx, m.client, m.provider+" moderation", m.url,
		map[string]string{"Authorization": "Bearer " + m.apiKey},
		moderationRequest{Model: m.model, Input: text}, &resp)
	if err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return &ModerationResult{Safe: true}, nil
	}

	r := resp.Results[0]
	var flagged []string
	for cat, on := range r.Categories {
		if on {
			flagged = append(flagged, strings.NewReplacer("/", " ", "_", " ").Replace(cat))
		}
	}
	sort.Strings(flagged)

	// Mistral has no top-level flag; any category marks the text unsafe.
	safe := len(flagged) == 0
	if r.Flagged != nil {
		safe = !*r.Flagged
	}
	return &ModerationResult{Safe: safe, Categories: flagged}, nil
}

// fallbackModerator tries each moderator in order and moves on only when
// the previous one rejected its credentials.
type fallbackModerator struct {
	chain []Moderator
}

func (f *fallbackModerator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	var lastErr error
	for _, m := range f.chain {
		res, err := m.CheckSafety(ctx, text)
		if err == nil {
			return res, nil
		}
		var se *StatusError
		if !errors.As(err, &se) || !se.Unauthorized() {
			return nil, err
		}
		slog.Warn("moderator rejected credentials, trying next", "provider", se.Provider)
		lastErr = err
	}
	return nil, lastErr
}

type moderationRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type moderationResponse struct {
	Results []struct {
		Flagged    *bool           `json:"flagged"`
		Categories map[string]bool `json:"categories"`
	} `json:"results"`
}
