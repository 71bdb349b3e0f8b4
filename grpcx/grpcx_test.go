package grpcx

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/erresp/derive"
	"dirpx.dev/erresp/descriptor"
)

var grpcUnaryInfo = grpc.UnaryServerInfo{FullMethod: "/test.Service/Method"}

type testErr struct {
	variant string
	msg     string
}

func (e *testErr) Error() string        { return e.msg }
func (e *testErr) ErrorVariant() string { return e.variant }

func testMapping(t *testing.T) *derive.Mapping {
	t.Helper()
	m, err := derive.New(&descriptor.TypeDescription{
		Name: "APIError",
		Variants: []descriptor.Variant{
			{Name: "Auth", StatusCode: "401", Code: "AUTHENTICATION_ERROR"},
		},
	})
	if err != nil {
		t.Fatalf("derive.New: %v", err)
	}
	return m
}

func invoke(t *testing.T, m *derive.Mapping, handlerErr error) (any, error) {
	t.Helper()
	ic := UnaryServerInterceptor(m)
	return ic(context.Background(), struct{}{}, &grpcUnaryInfo, func(context.Context, any) (any, error) {
		if handlerErr != nil {
			return nil, handlerErr
		}
		return "ok", nil
	})
}

func TestInterceptor_Success(t *testing.T) {
	resp, err := invoke(t, testMapping(t), nil)
	if err != nil || resp != "ok" {
		t.Fatalf("got (%v, %v), want (ok, nil)", resp, err)
	}
}

func TestInterceptor_ForeignErrorPassthrough(t *testing.T) {
	boom := errors.New("boom")
	_, err := invoke(t, testMapping(t), boom)
	if err != boom {
		t.Fatalf("foreign error must pass through untouched, got %v", err)
	}
}

func TestInterceptor_MapsVariantError(t *testing.T) {
	_, err := invoke(t, testMapping(t), &testErr{variant: "Auth", msg: "token expired"})
	if err == nil {
		t.Fatal("expected a status error")
	}

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	if st.Code() != gcodes.Unauthenticated {
		t.Fatalf("code = %v, want Unauthenticated", st.Code())
	}
	if st.Message() != "token expired" {
		t.Fatalf("message = %q", st.Message())
	}

	info, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("ErrorInfo detail missing")
	}
	if info.GetReason() != "AUTHENTICATION_ERROR" || info.GetDomain() != "APIError" {
		t.Fatalf("detail = %q / %q", info.GetReason(), info.GetDomain())
	}
}

func TestHTTPToGRPC(t *testing.T) {
	cases := []struct {
		http int
		want gcodes.Code
	}{
		{400, gcodes.InvalidArgument},
		{401, gcodes.Unauthenticated},
		{403, gcodes.PermissionDenied},
		{404, gcodes.NotFound},
		{409, gcodes.Aborted},
		{429, gcodes.ResourceExhausted},
		{499, gcodes.Canceled},
		{500, gcodes.Internal},
		{503, gcodes.Unavailable},
		{422, gcodes.InvalidArgument}, // unmapped 4xx
		{200, gcodes.OK},
	}
	for _, tc := range cases {
		if got := HTTPToGRPC(tc.http); got != tc.want {
			t.Fatalf("HTTPToGRPC(%d) = %v, want %v", tc.http, got, tc.want)
		}
	}
}

func TestExtractErrorInfo_NoStatus(t *testing.T) {
	if _, ok := ExtractErrorInfo(nil); ok {
		t.Fatal("nil error must not yield details")
	}
}

// Attaching an already-wrapped Any makes WithDetails wrap it a second time,
// so Details() surfaces an *anypb.Any instead of the ErrorInfo. Extraction
// must still find the detail behind that extra layer.
func TestExtractErrorInfo_DoubleWrappedAny(t *testing.T) {
	detail := &errdetails.ErrorInfo{Reason: "AUTHENTICATION_ERROR", Domain: "APIError"}
	anyDetail, err := anypb.New(detail)
	if err != nil {
		t.Fatalf("anypb.New: %v", err)
	}
	st, err := gstatus.New(gcodes.Unauthenticated, "token expired").WithDetails(anyDetail)
	if err != nil {
		t.Fatalf("WithDetails: %v", err)
	}

	info, ok := ExtractErrorInfo(st.Err())
	if !ok {
		t.Fatal("ErrorInfo must be found behind the extra Any layer")
	}
	if info.GetReason() != "AUTHENTICATION_ERROR" || info.GetDomain() != "APIError" {
		t.Fatalf("detail = %q / %q", info.GetReason(), info.GetDomain())
	}
}
