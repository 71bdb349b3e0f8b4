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

package grpcx

import (
	"context"
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/erresp"
	"dirpx.dev/erresp/derive"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// described error values into gRPC status errors with errdetails.ErrorInfo
// attached.
//
// The provided mapping resolves each value into a response context; its
// HTTP-style status is projected onto a gRPC code via HTTPToGRPC, the
// context's error code becomes ErrorInfo.Reason and the described type's
// name becomes ErrorInfo.Domain. Errors that do not implement
// erresp.VariantError are returned untouched.
func UnaryServerInterceptor(m *derive.Mapping) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		ve, ok := err.(erresp.VariantError)
		if !ok {
			// Leave errors from other layers untouched.
			return nil, err
		}

		ec, _ := m.Context(ve)

		status := erresp.DefaultStatusCode
		if s, ok := ec.StatusCode(); ok {
			status = s
		}
		code := erresp.DefaultCode
		if c, ok := ec.Code(); ok {
			code = c
		}
		message := erresp.DefaultMessage
		if msg, ok := ec.Message(); ok {
			message = msg
		}

		base := gstatus.New(HTTPToGRPC(status), message)

		detail := &errdetails.ErrorInfo{
			Reason: code,
			Domain: m.Name(),
		}

		// WithDetails wraps the detail in an Any itself; handing it a
		// pre-wrapped Any would double-wrap and hide the ErrorInfo from
		// status.Details(). If attachment fails — return base.
		if with, err := base.WithDetails(detail); err == nil {
			return nil, with.Err()
		}

		return nil, base.Err()
	}
}

// ExtractErrorInfo pulls errdetails.ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
//
// Details that arrive pre-wrapped in an Any (some emitters double-wrap) are
// unwrapped one extra level before giving up.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			return v, true
		case *anypb.Any:
			info := new(errdetails.ErrorInfo)
			if v.UnmarshalTo(info) == nil {
				return info, true
			}
		}
	}
	return nil, false
}

// HTTPToGRPC projects an HTTP status code onto the closest canonical gRPC
// code. Unmapped 4xx statuses fall back to InvalidArgument, everything else
// to Internal.
func HTTPToGRPC(status int) gcodes.Code {
	switch status {
	case http.StatusBadRequest:
		return gcodes.InvalidArgument
	case http.StatusUnauthorized:
		return gcodes.Unauthenticated
	case http.StatusForbidden:
		return gcodes.PermissionDenied
	case http.StatusNotFound:
		return gcodes.NotFound
	case http.StatusRequestTimeout:
		return gcodes.DeadlineExceeded
	case http.StatusConflict:
		return gcodes.Aborted
	case http.StatusPreconditionFailed:
		return gcodes.FailedPrecondition
	case http.StatusTooManyRequests:
		return gcodes.ResourceExhausted
	case 499: // client closed request (nginx convention)
		return gcodes.Canceled
	case http.StatusNotImplemented:
		return gcodes.Unimplemented
	case http.StatusServiceUnavailable:
		return gcodes.Unavailable
	case http.StatusGatewayTimeout:
		return gcodes.DeadlineExceeded
	}
	switch {
	case status >= 200 && status < 300:
		return gcodes.OK
	case status >= 400 && status < 500:
		return gcodes.InvalidArgument
	default:
		return gcodes.Internal
	}
}
