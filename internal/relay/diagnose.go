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

package relay

import (
	"context"
	"net/http"

	"github.com/jredh-dev/satchat/internal/llm"
)

// DefaultDiagnosticPrompt is used by Diagnose callers that were given no prompt.
const DefaultDiagnosticPrompt = "Say something cool about satellites"

type diagnoseOK struct {
	Response string `json:"response"`
}

type diagnoseErr struct {
	Error string `json:"error"`
}

// Diagnose sends prompt straight to the generator and reports the raw result
// as {"response": ...} or {"error": ...}. It is the diagnostic path and
// bypasses transport formatting.
func (t *Translator) Diagnose(ctx context.Context, prompt string) Response {
	out := llm.Call(ctx, t.gen, prompt)
	if !out.OK {
		return Response{
			Status:      http.StatusInternalServerError,
			ContentType: contentTypeJSON,
			Body:        EncodeJSON(diagnoseErr{Error: out.Message()}),
		}
	}
	return Response{
		Status:      http.StatusOK,
		ContentType: contentTypeJSON,
		Body:        EncodeJSON(diagnoseOK{Response: out.Text}),
	}
}
