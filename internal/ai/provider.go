// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai talks to the LLM providers used for template generation and
// comment screening. Each provider implements Provider; the Registry holds
// the configured ones and routes calls to the active provider.
package ai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotConfigured is returned when no provider has an API key.
var ErrNotConfigured = errors.New("ai: no provider configured")

// Provider generates text from a system and user prompt.
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Registry holds the configured providers and the optional moderator.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
	moderator Moderator
}

// NewRegistry builds providers for every config with an API key. The
// moderator prefers OpenAI and falls back to Mistral when both are set.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{providers: make(map[string]Provider), active: active}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		case "gemini":
			r.providers[name] = newGemini(cfg)
		case "claude":
			r.providers[name] = newClaude(cfg)
		case "mistral":
			r.providers[name] = newMistral(cfg)
		}
	}

	var mods []Moderator
	if c := configs["openai"]; c.APIKey != "" {
		mods = append(mods, newOpenAIModerator(c.APIKey, c.BaseURL))
	}
	if c := configs["mistral"]; c.APIKey != "" {
		mods = append(mods, newMistralModerator(c.APIKey, c.BaseURL))
	}
	switch len(mods) {
	case 0:
	case 1:
		r.moderator = mods[0]
	default:
		r.moderator = &fallbackModerator{chain: mods}
	}

	return r
}

// Generate calls the active provider.
func (r *Registry) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.Generate(ctx, systemPrompt, userPrompt)
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotConfigured, r.active)
	}
	return p, nil
}

// Ready reports whether the active provider is configured.
func (r *Registry) Ready() bool {
	_, err := r.Active()
	return err == nil
}

// Available returns the sorted names of all configured providers.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a provider.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// SetModerator replaces the moderator. A nil moderator disables screening.
func (r *Registry) SetModerator(m Moderator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moderator = m
}

// Moderate screens text. Without a moderator every text passes.
func (r *Registry) Moderate(ctx context.Context, text string) (*ModerationResult, error) {
	r.mu.RLock()
	m := r.moderator
	r.mu.RUnlock()

	if m == nil {
		return &ModerationResult{Safe: true}, nil
	}
	return m.CheckSafety(ctx, text)
}

// CanModerate reports whether a moderator is configured.
func (r *Registry) CanModerate() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.moderator != nil
}
