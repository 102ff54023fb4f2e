// satchat - SMS and JSON relay to a generative-text service
// Copyright (C) 2026  nexus contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// Package llm wraps the generative-text backends satchat relays messages to.
//
// Every backend satisfies Generator, a single prompt-in, text-out call.
// Callers that need to branch on success or failure use Call, which folds
// the (text, error) pair into an Outcome value.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jredh-dev/satchat/internal/metrics"
)

// Default models per provider, used when none is configured.
const (
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// DefaultModelFor returns the model used for provider when none is configured.
func DefaultModelFor(provider string) string {
	if provider == ProviderOpenAI {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}

// ErrEmptyResponse is returned when a backend answers without any text,
// e.g. because every candidate was filtered.
var ErrEmptyResponse = errors.New("empty response")

// Generator is the interface any text-generation backend must implement.
// Implementations must be safe for concurrent use and must not retry.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Outcome is the result of one generation call. When OK is true Text holds
// the generated reply; otherwise Err describes the failure.
type Outcome struct {
	OK   bool
	Text string
	Err  error
}

// Message returns the diagnostic text of a failed outcome, or "" on success.
func (o Outcome) Message() string {
	if o.OK || o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Call runs g once with prompt and records the call's latency and result.
func Call(ctx context.Context, g Generator, prompt string) Outcome {
	start := time.Now()
	text, err := g.Generate(ctx, prompt)
	elapsed := time.Since(start).Seconds()

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.GenerationsTotal.WithLabelValues(g.Name(), status).Inc()
	metrics.GenerationLatency.WithLabelValues(g.Name()).Observe(elapsed)

	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{OK: true, Text: text}
}

// Config selects and configures a backend.
type Config struct {
	Provider string // "gemini" or "openai"
	Model    string // empty means DefaultModelFor(Provider)
	APIKey   string
	BaseURL  string // optional override of the backend's API root
}

// New builds the backend named by cfg.Provider.
func New(ctx context.Context, cfg Config) (Generator, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModelFor(cfg.Provider)
	}
	switch cfg.Provider {
	case "", ProviderGemini:
		return NewGemini(ctx, cfg, nil)
	case ProviderOpenAI:
		return NewOpenAI(cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
