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
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"dirpx.dev/erresp"
	"dirpx.dev/erresp/descriptor"
)

// strategy is the resolved response-construction strategy of one variant.
type strategy int

const (
	strategyGeneral strategy = iota
	strategyNested
)

func (s strategy) String() string {
	if s == strategyNested {
		return "nested"
	}
	return "general"
}

// rule is the resolved, per-variant response recipe. Annotation values stay
// optional here: defaults are applied when a context is constructed for a
// concrete error value, never baked into the rule.
type rule struct {
	strategy  strategy
	status    int
	hasStatus bool
	code      string
	hasCode   bool
}

// responderType is the capability nested payloads must expose.
var responderType = reflect.TypeOf((*erresp.Responder)(nil)).Elem()

// resolveVariant extracts and validates one variant's metadata, yielding its
// rule or a derivation-time error. It implements the dispatch contract:
//
//   - no response marker, or "general" -> general strategy (any shape but named);
//   - "nested" -> nested strategy; requires a single-payload shape;
//   - anything else -> error.
func resolveVariant(v descriptor.Variant) (rule, error) {
	// Named fields are rejected regardless of the chosen strategy.
	if v.Shape == descriptor.Named {
		return rule{}, fmt.Errorf("variant %q: %w", v.Name, ErrNamedFields)
	}

	var r rule

	if v.StatusCode != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v.StatusCode))
		if err != nil || n < 100 || n > 599 {
			return rule{}, fmt.Errorf("variant %q: %w: %q", v.Name, ErrBadStatusCode, v.StatusCode)
		}
		r.status, r.hasStatus = n, true
	}

	if v.Code != "" {
		r.code, r.hasCode = v.Code, true
	}

	switch v.Response {
	case "", "general":
		r.strategy = strategyGeneral

	case "nested":
		if v.Shape == descriptor.Unit {
			return rule{}, fmt.Errorf("variant %q: %w", v.Name, ErrNestedUnit)
		}
		// When the descriptor pins the payload's Go type we can verify the
		// delegation capability at derivation time instead of the first call.
		if v.Payload != nil && !v.Payload.Implements(responderType) {
			return rule{}, fmt.Errorf("variant %q: payload %s: %w", v.Name, v.Payload, ErrNotResponder)
		}
		r.strategy = strategyNested

	default:
		return rule{}, fmt.Errorf("variant %q: %w: %q", v.Name, ErrUnknownResponse, v.Response)
	}

	return r, nil
}
