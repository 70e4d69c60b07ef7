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

package kind

// Conventional cross-domain kinds
//
// Domain packages are free to define their own kind labels; the constants
// below name failure reasons that recur in almost every layered system.
// Reusing them where they fit keeps the mapper's library defaults applicable
// without per-domain configuration.
const (
	// Internal indicates an internal, non-classified failure. Use this as
	// the fallback when no more specific kind applies; the root cause is
	// typically carried by the kind's wrapped error.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 500.
	Internal Kind = "internal"

	// Invalid indicates that an input value violates a structural or
	// semantic invariant: wrong format, range, charset or cross-field
	// consistency.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 400.
	Invalid Kind = "invalid"

	// Parsing indicates that structured data could not be parsed. The kind
	// usually wraps a lower-layer parse error carrying the exact location.
	// (Named Parsing rather than Parse to stay clear of the Parse function.)
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 400.
	Parsing Kind = "parse"

	// Decode indicates that an encoded payload (base64, JSON, proto, ...)
	// could not be decoded into its in-memory form. Distinct from Parse,
	// which is about domain-level grammar rather than the encoding itself.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 400.
	Decode Kind = "decode"
)

// I/O and dependency kinds
//
// These kinds describe failures at the boundary to files, networks and
// downstream services.
const (
	// Read indicates that reading from a local source (file, pipe, buffer)
	// failed. The underlying I/O error is carried as the kind's cause.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 500.
	Read Kind = "read"

	// Write indicates that writing to a local sink failed.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 500.
	Write Kind = "write"

	// Request indicates that an outbound request to a remote dependency
	// could not be sent or did not complete successfully.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 502.
	Request Kind = "request"

	// Unavailable indicates that a required dependency is temporarily
	// unreachable. Use this for outages and network partitions.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 503.
	Unavailable Kind = "unavailable"

	// Timeout indicates that the operation could not complete within its
	// time budget; the cause may be context.DeadlineExceeded or similar.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 504.
	Timeout Kind = "timeout"

	// Canceled indicates that the operation was explicitly canceled by the
	// caller or by context propagation.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 408 (or nginx-style 499 by policy).
	Canceled Kind = "canceled"
)

// Resource-state kinds
const (
	// NotFound indicates that the requested entity does not exist in the
	// current scope or storage.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 404.
	NotFound Kind = "not_found"

	// AlreadyExists indicates that the target entity cannot be created
	// because one with the same identity already exists.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 409.
	AlreadyExists Kind = "already_exists"

	// Permission indicates that the caller is not allowed to perform the
	// target operation.
	//
	// Transport mapper is adapter-specific.
	// Can be mapped to an HTTP 403.
	Permission Kind = "permission_denied"
)
