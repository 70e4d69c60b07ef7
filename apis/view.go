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

// ErrorView is a minimal, serializable representation of a chained error.
//
// This is *not* a concrete container type — it is the shape that we are
// comfortable exposing over the wire or logging. Keeping it here (in apis)
// allows both HTTP and gRPC adapters to share the same struct.
type ErrorView struct {
	// Kind is the outermost kind label of the chain, e.g. "parse",
	// "request".
	//
	// Implementations SHOULD store only normalized, validated labels here.
	Kind string `json:"kind"`
	// Trail is the dot-joined kind path of the whole chain, outermost layer
	// first, e.g. "parse.invalid_hex".
	//
	// It MAY be empty when no link of the chain exposed a kind.
	Trail string `json:"trail,omitempty"`
	// Message is an optional human-friendly message, typically the
	// outermost container's own message.
	Message string `json:"message,omitempty"`
	// Details is an optional list of structured layer context collected
	// from the chain's containers.
	Details []Detail `json:"details,omitempty"`
}
