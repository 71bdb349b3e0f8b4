/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package erresp

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Defaults applied when a Context field was never set. They are filled in at
// render time only, so an unrendered Context keeps its fields optional.
const (
	// DefaultStatusCode is used when no status code was resolved.
	DefaultStatusCode = http.StatusInternalServerError

	// DefaultCode is used when no error code was resolved.
	DefaultCode = "UNKNOWN_ERROR"

	// DefaultMessage is used when no message was resolved.
	DefaultMessage = "An error occurred"
)

// Response is the final wire-level value produced from a Context, either by
// the default renderer or by a user-supplied custom function.
//
// It is a plain value type with no back-references: the Header map is
// allocated fresh per render, so responses can be handed to any transport
// adapter without synchronization.
type Response struct {
	// StatusCode is the HTTP status to send.
	StatusCode int

	// Header holds response headers. The default renderer only sets
	// Content-Type; custom functions may add more.
	Header http.Header

	// Body is the serialized response body.
	Body []byte
}

// envelope is the fixed JSON shape of the default error body.
//
// The field order and names are part of the wire contract:
//
//	{"result":null,"error":{"code":"...","message":"..."}}
type envelope struct {
	Result any           `json:"result"`
	Error  envelopeError `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Render converts the context into the default JSON error envelope.
//
// Missing fields are substituted with DefaultStatusCode, DefaultCode and
// DefaultMessage. Rendering has no failure path: every field is defaulted and
// the envelope is a fixed struct, so serialization cannot fail. Rendering the
// same context twice yields byte-identical output.
func (c Context) Render() Response {
	status := c.status
	if !c.hasStatus {
		status = DefaultStatusCode
	}
	code := c.code
	if !c.hasCode {
		code = DefaultCode
	}
	message := c.message
	if !c.hasMessage {
		message = DefaultMessage
	}

	// Encode without HTML escaping: the envelope is a wire contract and
	// characters like '<' and '&' must appear as written, not as unicode
	// escapes. Encoding a fixed struct with string fields cannot fail.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(envelope{
		Result: nil,
		Error:  envelopeError{Code: code, Message: message},
	})
	body := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	h := make(http.Header, 1)
	h.Set("Content-Type", "application/json")

	return Response{
		StatusCode: status,
		Header:     h,
		Body:       body,
	}
}
