// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestServer answers every request with status and body and records the
// last request for inspection.
func newTestServer(t *testing.T, status int, body string, last **http.Request, lastBody *[]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if last != nil {
			*last = r.Clone(context.Background())
		}
		if lastBody != nil {
			*lastBody, _ = io.ReadAll(r.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProvidersGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		newP       func(url string) Provider
		wantPath   string
		wantHeader [2]string
	}{
		{
			name:       "openai",
			body:       `{"choices":[{"message":{"role":"assistant","content":"<div>kart</div>"}}]}`,
			newP:       func(u string) Provider { return newOpenAI(ProviderConfig{APIKey: "k", BaseURL: u}) },
			wantPath:   "/chat/completions",
			wantHeader: [2]string{"Authorization", "Bearer k"},
		},
		{
			name:       "mistral",
			body:       `{"choices":[{"message":{"role":"assistant","content":"<div>kart</div>"}}]}`,
			newP:       func(u string) Provider { return newMistral(ProviderConfig{APIKey: "k", BaseURL: u}) },
			wantPath:   "/chat/completions",
			wantHeader: [2]string{"Authorization", "Bearer k"},
		},
		{
			name:       "claude",
			body:       `{"content":[{"type":"text","text":"<div>kart</div>"}]}`,
			newP:       func(u string) Provider { return newClaude(ProviderConfig{APIKey: "k", Model: "m", BaseURL: u}) },
			wantPath:   "/v1/messages",
			wantHeader: [2]string{"x-api-key", "k"},
		},
		{
			name:       "gemini",
			body:       `{"candidates":[{"content":{"parts":[{"text":"<div>kart</div>"}]}}]}`,
			newP:       func(u string) Provider { return newGemini(ProviderConfig{APIKey: "k", Model: "flash", BaseURL: u}) },
			wantPath:   "/v1beta/models/flash:generateContent",
			wantHeader: [2]string{"x-goog-api-key", "k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			srv := newTestServer(t, http.StatusOK, tt.body, &req, nil)

			p := tt.newP(srv.URL)
			if p.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.name)
			}

			got, err := p.Generate(context.Background(), "sys", "user")
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if got != "<div>kart</div>" {
				t.Errorf("Generate() = %q", got)
			}
			if req.URL.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", req.URL.Path, tt.wantPath)
			}
			if v := req.Header.Get(tt.wantHeader[0]); v != tt.wantHeader[1] {
				t.Errorf("header %s = %q, want %q", tt.wantHeader[0], v, tt.wantHeader[1])
			}
		})
	}
}

func TestOpenAISendsSystemAndUserMessages(t *testing.T) {
	var body []byte
	srv := newTestServer(t, http.StatusOK, `{"choices":[{"message":{"content":"ok"}}]}`, nil, &body)

	p := newOpenAI(ProviderConfig{APIKey: "k", Model: "gpt-x", BaseURL: srv.URL})
	if _, err := p.Generate(context.Background(), "sistem", "kullanıcı"); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		t.Fatalf("decode request: %v", err)
	}
	if req.Model != "gpt-x" || len(req.Messages) != 2 {
		t.Fatalf("request = %+v", req)
	}
	if req.Messages[0].Role != "system" || req.Messages[1].Content != "kullanıcı" {
		t.Errorf("messages = %+v", req.Messages)
	}
}

func TestGenerateStatusError(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, `{"error":"slow down"}`, nil, nil)

	p := newOpenAI(ProviderConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := p.Generate(context.Background(), "s", "u")

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if !se.Busy() || se.Unauthorized() {
		t.Errorf("StatusError %+v: Busy=%v Unauthorized=%v", se, se.Busy(), se.Unauthorized())
	}
	if !strings.Contains(se.Error(), "slow down") {
		t.Errorf("error text %q should carry the body", se.Error())
	}
}

func TestGenerateEmptyResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
		newP func(url string) Provider
	}{
		{"openai no choices", `{"choices":[]}`, func(u string) Provider { return newOpenAI(ProviderConfig{APIKey: "k", BaseURL: u}) }},
		{"claude no text", `{"content":[{"type":"tool_use"}]}`, func(u string) Provider { return newClaude(ProviderConfig{APIKey: "k", BaseURL: u}) }},
		{"gemini no candidates", `{"candidates":[]}`, func(u string) Provider { return newGemini(ProviderConfig{APIKey: "k", BaseURL: u}) }},
		{"malformed", `not json`, func(u string) Provider { return newOpenAI(ProviderConfig{APIKey: "k", BaseURL: u}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, tt.body, nil, nil)
			if _, err := tt.newP(srv.URL).Generate(context.Background(), "s", "u"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
