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

package httpx

import (
	"net/http"

	"dirpx.dev/erresp"
	"dirpx.dev/erresp/derive"
)

// Writer is a thin adapter that knows how to turn a described error value
// into an HTTP response using the provided derived mapping.
type Writer struct {
	Mapping *derive.Mapping
}

// Write resolves err through the mapping and writes the final response to rw.
//
// No filtering or redaction is performed here: whatever the mapping (or the
// type's custom function) produced is sent as-is. Higher-level handlers
// should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err erresp.VariantError) {
	if err == nil {
		return
	}
	WriteResponse(rw, w.Mapping.Respond(err))
}

// WriteResponse writes a pre-built response verbatim: headers first, then
// status, then body.
func WriteResponse(rw http.ResponseWriter, resp erresp.Response) {
	for k, vs := range resp.Header {
		for _, v := range vs {
			rw.Header().Add(k, v)
		}
	}
	rw.WriteHeader(resp.StatusCode)
	_, _ = rw.Write(resp.Body)
}
