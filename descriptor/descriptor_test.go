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
	"testing"
)

func TestParseShape(t *testing.T) {
	cases := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"unit", Unit, false},
		{"payload", Payload, false},
		{"named", Named, false},
		{"  Payload  ", Payload, false},
		{"tuple", Unit, true},
		{"", Unit, true},
	}
	for _, tc := range cases {
		got, err := ParseShape(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownShape) {
				t.Fatalf("ParseShape(%q) err = %v; want ErrUnknownShape", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseShape(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseShape(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestShape_TextRoundTrip(t *testing.T) {
	for _, s := range []Shape{Unit, Payload, Named} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back Shape
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if back != s {
			t.Fatalf("round trip %v -> %q -> %v", s, b, back)
		}
	}
}

func TestValidate(t *testing.T) {
	ok := &TypeDescription{
		Name: "APIError",
		Variants: []Variant{
			{Name: "BadRequest", Shape: Payload},
			{Name: "NotFound"},
		},
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	noName := &TypeDescription{Variants: []Variant{{Name: "X"}}}
	if err := noName.Validate(); !errors.Is(err, ErrNoTypeName) {
		t.Fatalf("want ErrNoTypeName, got %v", err)
	}

	unnamed := &TypeDescription{Name: "E", Variants: []Variant{{}}}
	if err := unnamed.Validate(); !errors.Is(err, ErrUnnamedVariant) {
		t.Fatalf("want ErrUnnamedVariant, got %v", err)
	}

	dup := &TypeDescription{Name: "E", Variants: []Variant{{Name: "A"}, {Name: "A"}}}
	if err := dup.Validate(); !errors.Is(err, ErrDuplicateVariant) {
		t.Fatalf("want ErrDuplicateVariant, got %v", err)
	}
}
