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
	"sync"

	"dirpx.dev/erresp"
)

// The package-level registry of named custom response functions. Names are
// resolved exactly once, during New; after that the Mapping holds the
// function value directly and never consults the registry again.
var (
	regMu    sync.RWMutex
	regFuncs = make(map[string]erresp.ResponseFunc)
)

// RegisterFunc registers a named custom response function for use by
// descriptions that declare it via custom_fn. Registration is expected at
// program initialization, before any derivation that references the name.
//
// RegisterFunc panics on an empty name, a nil function, or a duplicate
// registration — all three are programmer errors, in the same spirit as
// MustParse-style helpers.
func RegisterFunc(name string, fn erresp.ResponseFunc) {
	if name == "" {
		panic("derive: empty custom function name")
	}
	if fn == nil {
		panic("derive: nil custom function")
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := regFuncs[name]; dup {
		panic(fmt.Sprintf("derive: custom function %q already registered", name))
	}
	regFuncs[name] = fn
}

// lookupFunc returns the registered function for name, or nil.
func lookupFunc(name string) erresp.ResponseFunc {
	regMu.RLock()
	defer regMu.RUnlock()
	return regFuncs[name]
}
