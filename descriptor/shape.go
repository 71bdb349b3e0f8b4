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
	"encoding"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Shape classifies the field layout of a variant.
//
// Only Unit and Payload are derivable; Named exists so that descriptions can
// faithfully represent a variant the derivation engine must reject — no
// message or delegation rule can be derived from unordered named data.
type Shape int

const (
	// Unit is a variant with no payload.
	Unit Shape = iota

	// Payload is a variant wrapping a single unnamed value.
	Payload

	// Named is a variant with named fields. Always rejected by derivation.
	Named
)

// ErrUnknownShape is returned when parsing a shape string that is not one of
// "unit", "payload" or "named".
var ErrUnknownShape = errors.New("descriptor: unknown variant shape")

// Ensure Shape round-trips through text-based encoders.
var (
	_ encoding.TextMarshaler   = Shape(0)
	_ encoding.TextUnmarshaler = (*Shape)(nil)
	_ yaml.Unmarshaler         = (*Shape)(nil)
)

// ParseShape converts a string into a Shape. Matching is case-insensitive
// and tolerant of surrounding whitespace; anything unrecognized is an error.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unit":
		return Unit, nil
	case "payload":
		return Payload, nil
	case "named":
		return Named, nil
	default:
		return Unit, fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
}

// String returns the canonical lowercase name of the shape.
func (s Shape) String() string {
	switch s {
	case Unit:
		return "unit"
	case Payload:
		return "payload"
	case Named:
		return "named"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	switch s {
	case Unit, Payload, Named:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler, so shapes written in descriptor
// files ("shape: payload") decode into the typed value.
func (s *Shape) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(raw))
}
