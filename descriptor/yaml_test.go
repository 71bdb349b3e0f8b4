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
	"strings"
	"testing"
)

const sampleYAML = `
name: APIError
custom_fn: my_response
variants:
  - name: BadRequest
    shape: payload
    status_code: "400"
    code: BAD_REQUEST
  - name: Auth
    shape: payload
    response: nested
  - name: Teapot
    shape: unit
    status_code: "418"
`

func TestParse_Full(t *testing.T) {
	d, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Name != "APIError" || d.CustomFn != "my_response" {
		t.Fatalf("header mismatch: %+v", d)
	}
	if len(d.Variants) != 3 {
		t.Fatalf("got %d variants, want 3", len(d.Variants))
	}

	br := d.Variants[0]
	if br.Name != "BadRequest" || br.Shape != Payload || br.StatusCode != "400" || br.Code != "BAD_REQUEST" {
		t.Fatalf("BadRequest variant mismatch: %+v", br)
	}
	if br.Response != "" {
		t.Fatalf("BadRequest response = %q, want absent", br.Response)
	}

	auth := d.Variants[1]
	if auth.Response != "nested" || auth.Shape != Payload {
		t.Fatalf("Auth variant mismatch: %+v", auth)
	}

	teapot := d.Variants[2]
	if teapot.Shape != Unit || teapot.StatusCode != "418" || teapot.Code != "" {
		t.Fatalf("Teapot variant mismatch: %+v", teapot)
	}
}

func TestParse_ShapeDefaultsToUnit(t *testing.T) {
	d, err := Parse([]byte("name: E\nvariants:\n  - name: A\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Variants[0].Shape != Unit {
		t.Fatalf("omitted shape = %v, want Unit", d.Variants[0].Shape)
	}
}

func TestParse_UnknownShape(t *testing.T) {
	_, err := Parse([]byte("name: E\nvariants:\n  - name: A\n    shape: tuple\n"))
	if !errors.Is(err, ErrUnknownShape) {
		t.Fatalf("want ErrUnknownShape, got %v", err)
	}
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	_, err := Parse([]byte("name: E\nstatuscode: nope\nvariants:\n  - name: A\n"))
	if err == nil {
		t.Fatal("unknown key must fail the load")
	}
	if !strings.Contains(err.Error(), "parse yaml") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_InvalidStructure(t *testing.T) {
	if _, err := Parse([]byte("variants:\n  - name: A\n")); !errors.Is(err, ErrNoTypeName) {
		t.Fatalf("want ErrNoTypeName, got %v", err)
	}
	dupDoc := "name: E\nvariants:\n  - name: A\n  - name: A\n"
	if _, err := Parse([]byte(dupDoc)); !errors.Is(err, ErrDuplicateVariant) {
		t.Fatalf("want ErrDuplicateVariant, got %v", err)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("name: [unclosed")); err == nil {
		t.Fatal("malformed yaml must fail")
	}
}
