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

// Package descriptor defines the declarative input model consumed by the
// derivation engine (dirpx.dev/erresp/derive).
//
// A TypeDescription names one tagged-union error type and lists its variants.
// Each Variant carries the raw, partially-optional annotations an author may
// attach: a numeric status_code string, a machine-readable code, and a
// response strategy marker. Descriptions are plain values: they are not
// mutated after construction and live for exactly one derivation pass.
//
// Descriptions can be declared in Go code or loaded from YAML:
//
//	name: APIError
//	custom_fn: my_response
//	variants:
//	  - name: BadRequest
//	    shape: payload
//	    status_code: "400"
//	    code: BAD_REQUEST
//	  - name: Auth
//	    shape: payload
//	    response: nested
//
// The loader is strict: unknown keys, unknown shapes and structurally invalid
// descriptions are load-time errors, never silently defaulted.
package descriptor
