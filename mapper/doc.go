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

// Package mapper provides deterministic, immutable mappings from the kinds
// of chained errors (github.com/drmason13/chainerr/kind) and their trails
// (github.com/drmason13/chainerr/trail) to transport-level statuses for HTTP
// and gRPC.
//
// # Overview
//
// A chained error is classified in two parts:
//
//  1. the outermost Kind (e.g. kind.Parsing, kind.Request),
//  2. an optional, more specific Trail (e.g. "parse.invalid_hex").
//
// Transport layers (HTTP handlers, gRPC servers) need to turn this pair into
// concrete status codes. Package mapper does that in a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per Kind;
//   - prefix-aware — callers can add fine-grained rules for specific trails;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Kind;
//  2. per-Kind longest-prefix-match (LPM) on the Trail;
//  3. per-Kind default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: trails are treated as "."-separated
// segments, and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix(kind.Parsing, "parse.invalid_hex", http.StatusUnprocessableEntity)
//	WithHTTPPrefix(kind.Read, "read.*.invalid_hex", http.StatusBadRequest)
//
// The more specific prefix wins.
//
// # Library defaults
//
// The package ships with defaults for the conventional kinds of the kind
// package, mapping them to standard net/http constants and grpc/codes values
// (e.g. kind.Parsing -> 400 / InvalidArgument, kind.Request -> 502 /
// Unavailable, kind.Timeout -> 504 / DeadlineExceeded). These can be
// adjusted at build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(kind.Canceled, 499),             // nginx-style
//	    mapper.WithHTTPPrefix(kind.Parsing, "parse.invalid_hex", 422),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status(kind.Parsing, trail.MustParse("parse.invalid_hex"))
//	// st.HTTP == 422, st.GRPC == codes.InvalidArgument
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular (kind, trail) was resolved, including which tier matched
// and, for prefixes, which pattern was used.
package mapper
