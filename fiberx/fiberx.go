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

package fiberx

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"dirpx.dev/erresp"
	"dirpx.dev/erresp/derive"
)

// ErrorHandler returns a Fiber application error handler that renders
// described error values through the derived mapping:
//
//	app := fiber.New(fiber.Config{
//	    ErrorHandler: fiberx.ErrorHandler(apiMapping),
//	})
//
// Resolution order:
//   - erresp.VariantError values go through the mapping (and therefore
//     through the type's custom function, when one is declared);
//   - *fiber.Error keeps its own status code with the default envelope body;
//   - anything else renders the empty-context defaults (500 / UNKNOWN_ERROR).
func ErrorHandler(m *derive.Mapping) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		if ve, ok := err.(erresp.VariantError); ok {
			return send(c, m.Respond(ve))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			ctx := erresp.NewContext().
				WithStatusCode(fe.Code).
				WithMessage(fe.Message)
			return send(c, ctx.Render())
		}

		return send(c, erresp.NewContext().Render())
	}
}

// send copies the response onto the Fiber context verbatim.
func send(c fiber.Ctx, resp erresp.Response) error {
	for k, vs := range resp.Header {
		for _, v := range vs {
			c.Set(k, v)
		}
	}
	return c.Status(resp.StatusCode).Send(resp.Body)
}
