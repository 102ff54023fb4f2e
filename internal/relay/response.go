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
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/twilio/twilio-go/twiml"
)

const (
	contentTypeJSON = "application/json"
	contentTypeXML  = "text/xml"
)

// Response is a fully rendered reply, ready to be written to the caller.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Send writes the response's headers and body to w.
func (r Response) Send(w http.ResponseWriter) {
	w.Header().Set("Content-Type", r.ContentType)
	w.WriteHeader(r.Status)
	w.Write(r.Body) //nolint:errcheck
}

// Reply is the JSON API response body.
//
//	{"success": true,  "reply": "...", "to": "..."}
//	{"success": false, "error": "..."}
type Reply struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply,omitempty"`
	To      string `json:"to,omitempty"`
	Error   string `json:"error,omitempty"`
}

// successReply keeps "reply" and "to" on the wire even when empty.
type successReply struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
	To      string `json:"to"`
}

func jsonResponse(status int, r Reply) Response {
	var v any = r
	if r.Success {
		v = successReply{Success: true, Reply: r.Reply, To: r.To}
	}
	return Response{Status: status, ContentType: contentTypeJSON, Body: EncodeJSON(v)}
}

// EncodeJSON renders v the way every JSON body in satchat is rendered:
// no HTML escaping, trailing newline.
func EncodeJSON(v any) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Printf("relay: encode json: %v", err)
		return []byte(`{"success":false,"error":"internal error"}` + "\n")
	}
	return buf.Bytes()
}

// fallbackTwiML is served if rendering fails, which only happens on an
// XML serialization error.
const fallbackTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response><Message>` +
	FallbackMessage + `</Message></Response>`

// twimlResponse wraps text in a single-message TwiML document. Twilio
// requires a 200 for the reply to be delivered, so the status never varies.
func twimlResponse(text string) Response {
	doc, err := twiml.Messages([]twiml.Element{
		&twiml.MessagingMessage{Body: text},
	})
	if err != nil {
		log.Printf("relay: render twiml: %v", err)
		doc = fallbackTwiML
	}
	return Response{Status: http.StatusOK, ContentType: contentTypeXML, Body: []byte(doc)}
}
