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

// Context is the canonical, framework-agnostic result of resolving an error
// value into response data.
//
// It carries:
//   - a status code (HTTP-style, e.g. 400, 404, 500);
//   - a machine-readable error code (e.g. "BAD_REQUEST");
//   - a human-oriented message.
//
// Every field is optional until the context is rendered: defaults are applied
// by Render (or by whatever custom function replaces it), never stored in the
// context itself. A Context is a plain value — freely copyable, owned by
// whichever scope constructed it, safe to pass across goroutines.
//
// All mutation helpers (WithX) return a modified copy, so contexts can be
// built in a functional style starting from the zero value:
//
//	ctx := erresp.NewContext().
//	    WithStatusCode(404).
//	    WithCode("NOT_FOUND").
//	    WithMessage("resource does not exist")
type Context struct {
	status     int
	hasStatus  bool
	code       string
	hasCode    bool
	message    string
	hasMessage bool
}

// NewContext returns an empty Context. The zero value is equally usable;
// the constructor exists for readability at call sites.
func NewContext() Context { return Context{} }

// WithStatusCode returns a copy of the context with the status code set.
// The original context is not modified.
func (c Context) WithStatusCode(status int) Context {
	c.status = status
	c.hasStatus = true
	return c
}

// WithCode returns a copy of the context with the error code set.
// The original context is not modified.
func (c Context) WithCode(code string) Context {
	c.code = code
	c.hasCode = true
	return c
}

// WithMessage returns a copy of the context with the message set.
// The original context is not modified.
func (c Context) WithMessage(message string) Context {
	c.message = message
	c.hasMessage = true
	return c
}

// StatusCode returns the status code and whether it was set.
func (c Context) StatusCode() (int, bool) { return c.status, c.hasStatus }

// Code returns the error code and whether it was set.
func (c Context) Code() (string, bool) { return c.code, c.hasCode }

// Message returns the message and whether it was set.
func (c Context) Message() (string, bool) { return c.message, c.hasMessage }
