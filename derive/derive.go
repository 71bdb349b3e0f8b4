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

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/erresp"
	"dirpx.dev/erresp/descriptor"
)

// New performs the one-time derivation pass for one described error type and
// returns an immutable Mapping snapshot.
//
// Build process overview:
//
//  1. Validate the description's structure (names, uniqueness).
//  2. Apply options (per-derivation custom functions).
//  3. Resolve every variant into a rule; any malformed annotation, illegal
//     shape or unknown strategy aborts the whole derivation.
//  4. Resolve the type-level custom function name, if declared. Option-
//     supplied functions shadow the package registry; an unresolved name is
//     a derivation error.
//  5. Freeze everything into a read-only snapshot.
//
// A returned error means the description is misconfigured and the type must
// not be used: derivation fails closed rather than leaving a runtime gap.
func New(desc *descriptor.TypeDescription, opts ...Option) (*Mapping, error) {
	if desc == nil {
		return nil, errors.New("derive: nil type description")
	}

	// (1) Structural validation first; annotation semantics come next.
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	// (2) Apply user-supplied options.
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	// (3) Resolve every variant. The rule table is keyed by variant name and
	// covers the whole union — totality is established here, once.
	rules := make(map[string]rule, len(desc.Variants))
	for _, v := range desc.Variants {
		r, err := resolveVariant(v)
		if err != nil {
			return nil, fmt.Errorf("derive: type %q: %w", desc.Name, err)
		}
		rules[v.Name] = r
	}

	// (4) Resolve the custom function name against options, then the
	// package registry. Dangling names fail the derivation, not the request.
	var custom erresp.ResponseFunc
	if desc.CustomFn != "" {
		custom = b.funcs[desc.CustomFn]
		if custom == nil {
			custom = lookupFunc(desc.CustomFn)
		}
		if custom == nil {
			return nil, fmt.Errorf("derive: type %q: %w: %q", desc.Name, ErrUnknownFunc, desc.CustomFn)
		}
	}

	// (5) Freeze. The rules map is owned exclusively by the Mapping from
	// here on; nothing mutates it after this point.
	return &Mapping{
		name:   desc.Name,
		rules:  rules,
		custom: custom,
	}, nil
}

// Mapping is the immutable result of a derivation pass: one resolved rule per
// variant plus the optional type-level custom function.
//
// A Mapping is safe for concurrent use. Its per-instance operations are pure
// functions of the error value: no shared mutable state, no I/O, no locks.
type Mapping struct {
	// name is the described type's identifier, used in diagnostics and by
	// transport adapters (e.g. as the error domain).
	name string

	// rules maps variant name to its resolved response recipe.
	rules map[string]rule

	// custom, when non-nil, replaces Context.Render for every variant.
	custom erresp.ResponseFunc
}

// Name returns the described type's identifier.
func (m *Mapping) Name() string { return m.name }

// Context builds the response context for err according to its variant's
// resolved rule. The second return value is false when the value reports a
// variant the description never named; callers that want to assert totality
// can check it, Respond treats it as the empty context.
func (m *Mapping) Context(err erresp.VariantError) (erresp.Context, bool) {
	r, ok := m.rules[err.ErrorVariant()]
	if !ok {
		return erresp.Context{}, false
	}
	if r.strategy == strategyNested {
		return m.nestedContext(err), true
	}
	return m.generalContext(err, r), true
}

// ResponseContext is Context without the ok flag. It exists so that derived
// types can satisfy erresp.Responder with a one-line method.
func (m *Mapping) ResponseContext(err erresp.VariantError) erresp.Context {
	ctx, _ := m.Context(err)
	return ctx
}

// Respond resolves err into its final response. The mapping is total: every
// described variant produces exactly one response, and a value reporting an
// undescribed variant deterministically renders the empty-context defaults.
func (m *Mapping) Respond(err erresp.VariantError) erresp.Response {
	ctx, _ := m.Context(err)
	if m.custom != nil {
		return m.custom(ctx)
	}
	return ctx.Render()
}

// generalContext builds a context directly from the rule and the value's own
// message. Defaults are filled here, at response-construction time: status
// falls back to 500, the code falls back to the variant's name.
func (m *Mapping) generalContext(err erresp.VariantError, r rule) erresp.Context {
	status := erresp.DefaultStatusCode
	if r.hasStatus {
		status = r.status
	}
	code := err.ErrorVariant()
	if r.hasCode {
		code = r.code
	}
	return erresp.NewContext().
		WithStatusCode(status).
		WithCode(code).
		WithMessage(err.Error())
}

// nestedContext unwraps the variant's payload and delegates to its own
// context-producing capability. A payload without the capability yields the
// empty context, which renders the documented defaults.
func (m *Mapping) nestedContext(err erresp.VariantError) erresp.Context {
	inner := errors.Unwrap(err)
	if rp, ok := inner.(erresp.Responder); ok {
		return rp.ResponseContext()
	}
	return erresp.Context{}
}

// Explain produces a textual trace of how the named variant resolves.
//
// Example output:
//
//	variant="BadRequest" strategy=general
//	status: source=annotation -> 400
//	code:   source=annotation -> "BAD_REQUEST"
//	render: source=default
//
// Notes:
//   - status/code source ∈ {annotation | default | variant | inner}
//   - render source ∈ {default | custom_fn}
func (m *Mapping) Explain(variant string) string {
	r, ok := m.rules[variant]
	if !ok {
		return fmt.Sprintf("variant=%q not described", variant)
	}

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "variant=%q strategy=%s\n", variant, r.strategy)

	if r.strategy == strategyNested {
		_, _ = fmt.Fprintln(&b, "status: source=inner")
		_, _ = fmt.Fprintln(&b, "code:   source=inner")
	} else {
		if r.hasStatus {
			_, _ = fmt.Fprintf(&b, "status: source=annotation -> %d\n", r.status)
		} else {
			_, _ = fmt.Fprintf(&b, "status: source=default -> %d\n", erresp.DefaultStatusCode)
		}
		if r.hasCode {
			_, _ = fmt.Fprintf(&b, "code:   source=annotation -> %q\n", r.code)
		} else {
			_, _ = fmt.Fprintf(&b, "code:   source=variant -> %q\n", variant)
		}
	}

	if m.custom != nil {
		_, _ = fmt.Fprintln(&b, "render: source=custom_fn")
	} else {
		_, _ = fmt.Fprintln(&b, "render: source=default")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
