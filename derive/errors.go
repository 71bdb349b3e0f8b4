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

package derive

import "errors"

// Derivation-time configuration errors. Every one of them aborts the whole
// derivation for the type; none is ever downgraded to a runtime default.
var (
	// ErrNamedFields is returned for variants with named fields. No message
	// or delegation rule can be derived from unordered named data.
	ErrNamedFields = errors.New("derive: named fields are not supported")

	// ErrBadStatusCode is returned when a status_code annotation is present
	// but does not parse as an HTTP status in [100, 599].
	ErrBadStatusCode = errors.New("derive: invalid status_code annotation")

	// ErrUnknownResponse is returned for a response marker that is neither
	// absent, "general" nor "nested".
	ErrUnknownResponse = errors.New("derive: unknown response type")

	// ErrNestedUnit is returned when a unit variant is marked nested: there
	// is no inner value capable of producing a context.
	ErrNestedUnit = errors.New("derive: nested variant has no inner value")

	// ErrNotResponder is returned when a nested variant's declared payload
	// type does not implement erresp.Responder.
	ErrNotResponder = errors.New("derive: nested payload cannot produce a response context")

	// ErrUnknownFunc is returned when a description names a custom response
	// function that is not registered and not supplied via options.
	ErrUnknownFunc = errors.New("derive: unknown custom response function")
)
