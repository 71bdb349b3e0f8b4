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

import "dirpx.dev/erresp"

// Option configures a single derivation pass. All options are applied to an
// internal builder before variant resolution; the resulting Mapping is frozen
// and does not observe later changes.
type Option func(*builder)

// builder collects per-derivation adjustments before New freezes them.
type builder struct {
	// funcs holds custom response functions visible to this derivation only.
	// They shadow package-level registrations of the same name.
	funcs map[string]erresp.ResponseFunc
}

func newBuilder() *builder {
	return &builder{funcs: make(map[string]erresp.ResponseFunc)}
}

// WithFunc makes a named custom response function visible to this derivation
// only, shadowing any package-level registration of the same name. Useful in
// tests and for wiring functions whose lifetime is narrower than the process.
func WithFunc(name string, fn erresp.ResponseFunc) Option {
	return func(b *builder) { b.funcs[name] = fn }
}
