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

package mapper

import (
	"net/http"

	"github.com/drmason13/chainerr/kind"

	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the
// conventional kinds. These are only defaults: callers are expected to wrap
// or override them at the boundary where HTTP is actually produced.
//
// The intent is to stay close to common REST conventions while reflecting
// the chain-level meaning of each kind (a failed outbound request is the
// server's problem, a parse failure is the input's problem, and so on).
var defaultHTTP = map[kind.Kind]int{
	// 5xx — server / dependency / transient issues.
	kind.Internal:    http.StatusInternalServerError, // Generic internal failure; do not expose internal details.
	kind.Read:        http.StatusInternalServerError, // Local read failed; nothing the client can fix.
	kind.Write:       http.StatusInternalServerError, // Local write failed.
	kind.Request:     http.StatusBadGateway,          // Outbound request to a dependency failed.
	kind.Unavailable: http.StatusServiceUnavailable,  // Dependency temporarily unreachable.
	kind.Timeout:     http.StatusGatewayTimeout,      // Operation exceeded the time budget.
	// Note: 499 is a non-standard but widely used code (nginx) for "client
	// closed request". We use 408 for canceled by default; integrators may
	// switch via WithHTTPOverride.
	kind.Canceled: http.StatusRequestTimeout,

	// 4xx — input / resource issues.
	kind.Invalid: http.StatusBadRequest, // Malformed input, validation errors, contract violation.
	kind.Parsing: http.StatusBadRequest, // Input data failed to parse.
	kind.Decode:  http.StatusBadRequest, // Encoded payload failed to decode.

	kind.NotFound:      http.StatusNotFound,  // Target resource does not exist (or is not visible).
	kind.AlreadyExists: http.StatusConflict,  // Resource creation clash — it already exists.
	kind.Permission:    http.StatusForbidden, // Caller is not allowed to perform the action.
}

// defaultGRPC defines the library's built-in gRPC mappings for the
// conventional kinds. The values align with canonical gRPC status codes
// while preserving the chain-level meanings. As with HTTP, callers may
// override these at the transport edge if a different policy is required.
var defaultGRPC = map[kind.Kind]codes.Code{
	// Internal / server-side / unexpected.
	kind.Internal: codes.Internal,
	kind.Read:     codes.Internal, // Local I/O failure is an implementation detail.
	kind.Write:    codes.Internal,

	// Input / protocol.
	kind.Invalid: codes.InvalidArgument, // Bad input shape or validation errors.
	kind.Parsing: codes.InvalidArgument, // Input data failed to parse.
	kind.Decode:  codes.InvalidArgument, // Encoded payload failed to decode.

	// Resource state.
	kind.NotFound:      codes.NotFound,
	kind.AlreadyExists: codes.AlreadyExists,
	kind.Permission:    codes.PermissionDenied,

	// Availability / dependencies.
	kind.Request:     codes.Unavailable, // Outbound request failed; dependency effectively unavailable.
	kind.Unavailable: codes.Unavailable,

	// Time / cancellation.
	kind.Timeout:  codes.DeadlineExceeded, // Time budget exceeded.
	kind.Canceled: codes.Canceled,         // Caller canceled or context expired upstream.
}
