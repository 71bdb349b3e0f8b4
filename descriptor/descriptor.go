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

package descriptor

import (
	"errors"
	"fmt"
	"reflect"
)

// Variant describes one arm of a tagged-union error type, together with the
// raw annotations its author attached.
//
// Annotation fields keep the exact surface an author writes: status_code is a
// numeric string, code is free-form, response names a strategy. Absence is
// expressed as the empty string — the derivation engine decides what absence
// means, this type never substitutes defaults.
type Variant struct {
	// Name is the variant's identifier. Must be non-empty and unique within
	// its TypeDescription.
	Name string `yaml:"name"`

	// Shape is the variant's field layout. Defaults to Unit when a YAML
	// descriptor omits it.
	Shape Shape `yaml:"shape"`

	// Payload optionally pins the Go type of the wrapped value. When set on
	// a nested variant, derivation verifies at build time that the type can
	// produce its own response context. YAML descriptors cannot express it.
	Payload reflect.Type `yaml:"-"`

	// StatusCode is the raw status_code annotation (a numeric string such as
	// "404"). Empty means absent.
	StatusCode string `yaml:"status_code"`

	// Code is the raw code annotation. Empty means absent; an absent code
	// defaults to the variant's own name at response-construction time.
	Code string `yaml:"code"`

	// Response is the raw response-strategy marker: "", "general" or
	// "nested". Any other value is a derivation-time error.
	Response string `yaml:"response"`
}

// TypeDescription is the unit of derivation input: one error type's name,
// its ordered variants, and the optional type-level custom function.
type TypeDescription struct {
	// Name identifies the described type, e.g. "APIError".
	Name string `yaml:"name"`

	// CustomFn optionally names a registered custom response function that
	// replaces the default renderer for every variant of this type.
	// Empty means the default JSON envelope is used.
	CustomFn string `yaml:"custom_fn"`

	// Variants lists the arms of the union, in declaration order.
	Variants []Variant `yaml:"variants"`
}

var (
	// ErrNoTypeName is returned when a description has an empty type name.
	ErrNoTypeName = errors.New("descriptor: type description has no name")

	// ErrUnnamedVariant is returned when a variant has an empty name.
	ErrUnnamedVariant = errors.New("descriptor: variant has no name")

	// ErrDuplicateVariant is returned when two variants share a name.
	ErrDuplicateVariant = errors.New("descriptor: duplicate variant name")
)

// Validate checks the structural invariants every description must satisfy
// before derivation: a non-empty type name and non-empty, unique variant
// names. Annotation semantics (status parsing, strategy/shape compatibility)
// are the derivation engine's job, not Validate's.
func (d *TypeDescription) Validate() error {
	if d.Name == "" {
		return ErrNoTypeName
	}
	seen := make(map[string]struct{}, len(d.Variants))
	for _, v := range d.Variants {
		if v.Name == "" {
			return fmt.Errorf("%w (type %q)", ErrUnnamedVariant, d.Name)
		}
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("%w: %q (type %q)", ErrDuplicateVariant, v.Name, d.Name)
		}
		seen[v.Name] = struct{}{}
	}
	return nil
}
