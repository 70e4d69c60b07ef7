/*
   Copyright 2026 The chainerr Authors

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

// Package grpcx maps chained errors onto gRPC statuses at the server
// boundary.
//
// The interceptor resolves the chain's outermost kind and its trail through
// an apis.Mapper and attaches standard google.rpc error details
// (ErrorInfo, DebugInfo) so that clients and middleboxes can react without
// parsing message strings.
package grpcx

import (
	"context"
	"errors"
	"strings"

	"github.com/drmason13/chainerr"
	"github.com/drmason13/chainerr/adapter"
	"github.com/drmason13/chainerr/apis"
	"github.com/drmason13/chainerr/kind"
	"github.com/drmason13/chainerr/trail"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// chained errors into gRPC statuses with google.rpc error details.
//
// The provided apis.Mapper resolves the chain's outermost kind and trail
// into a transport status. The domain string goes into ErrorInfo.Domain and
// should identify the service, e.g. "ucd.example.com".
//
// Errors whose chain exposes no kind are passed through untouched; they are
// not ours to translate.
func UnaryServerInterceptor(m apis.Mapper, domain string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var ke apis.KindedError
		if !errors.As(err, &ke) {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, toStatusErr(m, domain, err, ke)
	}
}

// toStatusErr builds the gRPC error for a kinded chain.
func toStatusErr(m apis.Mapper, domain string, err error, ke apis.KindedError) error {
	// An unparsable kind label at the boundary is a programming error in the
	// domain package; report it as internal rather than guessing.
	k, kerr := kind.Parse(ke.ErrorKind())
	if kerr != nil {
		k = kind.Internal
	}
	tr := trail.Of(err)
	st := m.Status(k, tr)

	// The status message is the outermost link's own text. The full chain
	// travels in DebugInfo, where clients have to opt in to read it.
	pb := &spb.Status{
		Code:    int32(st.GRPC),
		Message: ke.Error(),
	}

	einfo := &errdetails.ErrorInfo{
		Reason:   strings.ToUpper(string(k)),
		Domain:   domain,
		Metadata: metadataOf(tr, err),
	}
	dbg := &errdetails.DebugInfo{
		StackEntries: linkMessages(err),
		Detail:       chainerr.Render(err),
	}
	if a, aerr := anypb.New(einfo); aerr == nil {
		pb.Details = append(pb.Details, a)
	}
	if a, aerr := anypb.New(dbg); aerr == nil {
		pb.Details = append(pb.Details, a)
	}

	return gstatus.FromProto(pb).Err()
}

// metadataOf flattens the chain's trail and structured details into the
// flat string map ErrorInfo requires. Detail keys are prefixed with their
// type so "path" from a file detail becomes "file.path".
func metadataOf(tr trail.Trail, err error) map[string]string {
	md := map[string]string{"trail": string(tr)}
	for _, d := range adapter.Details(err) {
		for key, val := range d.Info {
			if d.Type != "" {
				key = d.Type + "." + key
			}
			md[key] = val
		}
	}
	return md
}

// linkMessages returns each link's own message, outermost first.
func linkMessages(err error) []string {
	links := chainerr.Links(err)
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Error())
	}
	return out
}

// ExtractErrorInfo pulls the google.rpc.ErrorInfo detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// ExtractDebugInfo pulls the google.rpc.DebugInfo detail out of a gRPC
// error, if present.
func ExtractDebugInfo(err error) (*errdetails.DebugInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if di, ok := d.(*errdetails.DebugInfo); ok {
			return di, true
		}
	}
	return nil, false
}
