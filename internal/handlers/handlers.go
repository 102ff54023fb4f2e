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

// Package handlers adapts HTTP requests to the relay translator.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jredh-dev/satchat/internal/relay"
)

// Banner is the plain-text body served at the root path.
const Banner = "SatChat is live 🚀"

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	translator  *relay.Translator
	diagPrompt string
}

// New creates a Handler. diagPrompt is the diagnostic prompt used when the
// q parameter is absent; empty means relay.DefaultDiagnosticPrompt.
func New(t *relay.Translator, diagPrompt string) *Handler {
	if diagPrompt == "" {
		diagPrompt = relay.DefaultDiagnosticPrompt
	}
	return &Handler{translator: t, diagPrompt: diagPrompt}
}

// Routes registers the relay endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Home)
	r.Post("/sms", h.SMS)
	r.Post("/reply", h.Reply)
	r.Get("/test_generate", h.TestGenerate)
}

// Home handles GET /
func (h *Handler) Home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, Banner) //nolint:errcheck
}

type replyReq struct {
	Text     string `json:"text"`
	Endpoint string `json:"endpoint"`
}

// Reply handles POST /reply
func (h *Handler) Reply(w http.ResponseWriter, r *http.Request) {
	// An empty body decodes to no fields and fails validation like any
	// other request missing text or endpoint.
	var body replyReq
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&body)
	if err != nil && !errors.Is(err, io.EOF) {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	req := relay.NewRequest(relay.JSONAPI, body.Text)
	req.Endpoint = body.Endpoint

	h.translator.Translate(r.Context(), req).Send(w)
}

// TestGenerate handles GET /test_generate?q=...
// A present q is used verbatim, even when empty.
func (h *Handler) TestGenerate(w http.ResponseWriter, r *http.Request) {
	prompt := h.diagPrompt
	if q := r.URL.Query(); q.Has("q") {
		prompt = q.Get("q")
	}
	h.translator.Diagnose(r.Context(), prompt).Send(w)
}

// --- helpers ---

func jsonError(w http.ResponseWriter, msg string, status int) {
	relay.Response{
		Status:      status,
		ContentType: "application/json",
		Body:        relay.EncodeJSON(relay.Reply{Success: false, Error: msg}),
	}.Send(w)
}
