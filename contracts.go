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

// Responder is implemented by error values that can produce their own
// response Context.
//
// This is the capability nested delegation relies on: a variant resolved to
// the nested strategy unwraps its payload and, if the payload implements
// Responder, uses the payload's context verbatim — the inner type keeps its
// own status/code semantics. Types whose mapping was derived typically wire
// this up with a one-liner:
//
//	func (e *AuthError) ResponseContext() erresp.Context {
//	    return authMapping.ResponseContext(e)
//	}
type Responder interface {
	error

	// ResponseContext resolves the value into a Context. It must be a pure
	// function of the value: no I/O, no shared mutable state.
	ResponseContext() Context
}

// VariantError is implemented by error values that belong to a described
// tagged-union type. The discriminator ties a value to one of the variants
// named in its type's descriptor.TypeDescription.
//
// Variants carrying a payload are expected to also expose the payload via
// the standard Unwrap() error convention.
type VariantError interface {
	error

	// ErrorVariant returns the name of the variant this value represents.
	// The returned string must match a Variant.Name of the described type.
	ErrorVariant() string
}

// ResponseFunc is a user-supplied renderer substituted for Context.Render at
// the whole-type level. The derivation engine guarantees it is invoked with a
// fully resolved context; its return value is passed through unmodified as
// the final response.
type ResponseFunc func(Context) Response
