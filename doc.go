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

// Package erresp turns declaratively described error types into structured
// HTTP-style error responses.
//
// An error type is treated as a closed tagged union: a fixed set of named
// variants, each optionally annotated with a status code, a machine-readable
// error code, and a response strategy. From that description the derive
// subpackage computes, once, a total mapping from every variant to a response.
// At request time the mapping is a pure function of the error value.
//
// This package holds the pieces everything else agrees on:
//
//   - Context — the framework-agnostic intermediate result (status code,
//     error code, message; all optional until rendered);
//   - Response — the final wire-level value;
//   - the Responder and VariantError contracts that error types implement
//     to participate in derivation and nested delegation.
//
// Subpackages:
//
//   - descriptor — the declarative input model and its YAML loader;
//   - derive     — the derivation engine producing immutable Mappings;
//   - httpx      — net/http adapter;
//   - grpcx      — gRPC interceptor adapter;
//   - fiberx     — Fiber v3 adapter.
package erresp
