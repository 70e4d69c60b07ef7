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

// KindedError represents an error container that carries exactly one kind
// discriminant.
//
// A kind names the variant of the container's failure reason, such as:
//   - "parse"        — structured data could not be parsed,
//   - "read"         — reading from a local source failed,
//   - "request"      — an outbound request failed,
//   - "invalid_hex"  — a specific parse sub-case.
//
// Kinds are intended to be stable and enumerable per container. The
// outermost kind of a chain is the primary value that transport adapters
// (HTTP, gRPC) use to decide which status to return; the full chain of kinds
// is available through the trail package.
//
// Implementations are expected to return a label that survives kind.Parse —
// lowercase, underscores, length limits. Adapters should treat unknown or
// empty labels as internal errors at the boundary rather than guessing.
type KindedError interface {
	error

	// ErrorKind returns the label of the container's current kind variant.
	//
	// The returned value MUST be non-empty and normalized according to the
	// rules of the kind package. Exactly one kind is reported per container
	// at a time; kinds are mutually exclusive.
	ErrorKind() string
}

// DetailedError represents an error that can expose its layer context as
// structured details.
//
// Where ErrorKind answers "why did this layer fail?", ErrorDetails answers
// "where, and with what data?" — the file path, the line number, the
// identifier the container captured at construction time.
//
// Implementations SHOULD return a slice that is safe to iterate over and
// that will not be modified by the callee. Returning nil is allowed and
// simply means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}
