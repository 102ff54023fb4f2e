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

package handlers

import (
	"log"
	"net/http"

	"github.com/jredh-dev/satchat/internal/relay"
)

// SMS handles incoming SMS messages from Twilio and replies with TwiML.
func (h *Handler) SMS(w http.ResponseWriter, r *http.Request) {
	// Twilio sends the webhook as POST form data
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	req := relay.NewRequest(relay.WebhookForm, r.FormValue("Body"))
	req.From = r.FormValue("From")

	log.Printf("sms %s: from=%s body=%q", req.ID, req.From, req.Text)

	h.translator.Translate(r.Context(), req).Send(w)
}
