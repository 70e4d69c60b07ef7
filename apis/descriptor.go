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

package apis

// ErrorDescriptor is a flat, transport-friendly description of a resolved
// (kind, trail) pair.
//
// This type intentionally uses strings (not the internal Kind / Trail value
// types) so that it can live in the public "apis" layer and be used by
// adapters (HTTP, gRPC), structured logging and message-bus propagation.
type ErrorDescriptor struct {
	// Kind is the outermost kind label of the chain, e.g. "parse",
	// "request".
	//
	// Implementations SHOULD store only normalized, validated labels here.
	Kind string `json:"kind"`

	// Trail is the dot-joined kind path of the whole chain, outermost layer
	// first. It MAY be empty when the descriptor applies to the kind alone.
	Trail string `json:"trail,omitempty"`

	// HTTPStatus is an optional HTTP status that should be used when this
	// chain is exposed over HTTP. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is an optional gRPC status code (as integer) that should be
	// used when this chain is exposed over gRPC. A value of 0 means
	// "not specified".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional human-friendly message, typically the rendered
	// chain or the outermost container's own message.
	Message string `json:"message,omitempty"`
}
