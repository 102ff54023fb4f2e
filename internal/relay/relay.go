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

// Package relay turns an inbound message into a generated reply shaped for
// the transport it arrived on.
//
// Two transports are supported and they deliberately disagree on failure
// visibility:
//
//   - WebhookForm (Twilio SMS webhook): the reply is TwiML and is always
//     200. A generation failure is masked behind FallbackMessage.
//   - JSONAPI: the reply is a JSON object. Missing fields are a 400 and a
//     generation failure is a 500 carrying the backend's error text.
//
// Only JSONAPI validates its input; an empty SMS body is still forwarded.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jredh-dev/satchat/internal/llm"
	"github.com/jredh-dev/satchat/internal/metrics"
)

// FallbackMessage is sent to SMS senders when generation fails.
const FallbackMessage = "Oops! Something went wrong. Try again later."

// ErrMissingFields is the JSON API validation failure.
var ErrMissingFields = errors.New("Missing text or endpoint") //nolint:staticcheck // exact wire message

// Transport identifies the inbound contract a request arrived on.
type Transport int

const (
	WebhookForm Transport = iota
	JSONAPI
)

func (t Transport) String() string {
	switch t {
	case WebhookForm:
		return "webhook"
	case JSONAPI:
		return "json"
	default:
		return fmt.Sprintf("transport(%d)", int(t))
	}
}

// Request is one inbound message, normalized across transports.
type Request struct {
	// ID correlates log lines for one exchange. NewRequest fills it in.
	ID        string
	Transport Transport
	Text      string

	// Endpoint is the JSON API caller's reply target. It is echoed back in
	// the "to" field and never contacted.
	Endpoint string

	// From is the SMS sender's number. Logged only.
	From string
}

// NewRequest returns a Request with a fresh ID.
func NewRequest(t Transport, text string) Request {
	return Request{ID: uuid.NewString(), Transport: t, Text: text}
}

func (r Request) validate() error {
	if r.Transport == JSONAPI && (r.Text == "" || r.Endpoint == "") {
		return ErrMissingFields
	}
	return nil
}

// Translator calls the generation backend and formats its outcome for the
// request's transport. It holds no mutable state and is safe for concurrent use.
type Translator struct {
	gen llm.Generator
}

// New creates a Translator backed by gen.
func New(gen llm.Generator) *Translator {
	return &Translator{gen: gen}
}

// Translate produces exactly one Response for req. The generator is called
// at most once and never retried.
func (t *Translator) Translate(ctx context.Context, req Request) Response {
	if err := req.validate(); err != nil {
		metrics.TranslationsTotal.WithLabelValues(req.Transport.String(), "invalid").Inc()
		return jsonResponse(http.StatusBadRequest, Reply{Success: false, Error: err.Error()})
	}

	out := llm.Call(ctx, t.gen, req.Text)

	result := "ok"
	if !out.OK {
		result = "generation_error"
	}
	metrics.TranslationsTotal.WithLabelValues(req.Transport.String(), result).Inc()

	switch req.Transport {
	case WebhookForm:
		text := out.Text
		if !out.OK {
			log.Printf("relay %s: generation failed, sending fallback: %v", req.ID, out.Err)
			text = FallbackMessage
		}
		return twimlResponse(text)
	default:
		if !out.OK {
			return jsonResponse(http.StatusInternalServerError, Reply{Success: false, Error: out.Message()})
		}
		return jsonResponse(http.StatusOK, Reply{Success: true, Reply: out.Text, To: req.Endpoint})
	}
}
