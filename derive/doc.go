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

// Package derive turns a descriptor.TypeDescription into an immutable,
// total mapping from error values to responses.
//
// # Overview
//
// Derivation happens once per type, typically at program initialization:
//
//	m, err := derive.New(desc)
//	if err != nil {
//	    // configuration error — the type must not be used
//	}
//
// The resulting Mapping is a snapshot: it holds a resolved rule for every
// variant of the described type and, per request, applies that rule as a pure
// function of the error value. No locks, no I/O, safe for concurrent use.
//
// # Strategies
//
// Each variant resolves to exactly one strategy:
//
//   - general — build a Context directly from the variant's resolved
//     status/code and the value's own message (the default, also chosen by
//     an explicit response(general) marker);
//   - nested — unwrap the variant's payload and delegate to the payload's
//     own ResponseContext, so independently described types keep their own
//     status/code semantics.
//
// Independently of the per-variant strategy, a description may name a
// type-level custom function. When present, every variant's computed Context
// is piped through that function instead of the default JSON renderer.
//
// # Fail closed
//
// Any configuration problem aborts the whole derivation: named-field
// variants, malformed status_code annotations, unknown response markers,
// nested markers on unit variants, payload types that cannot produce a
// context, and unresolved custom-function names are all build-time errors.
// Nothing is ever downgraded to a runtime default.
//
// # Defaults
//
// Absent annotations are not errors. They stay absent in the resolved rule
// and are filled only when a context is constructed for a concrete value:
// status falls back to 500, the code falls back to the variant's own name,
// and the message always comes from the error value itself.
//
// # Diagnostics
//
// Mapping.Explain returns a human-readable trace of how a variant resolves —
// which strategy applies and where each field comes from. It is intended for
// inspection and tests, not for stable machine parsing.
package derive
