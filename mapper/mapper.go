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
	"fmt"
	"strings"

	"github.com/drmason13/chainerr/apis"
	"github.com/drmason13/chainerr/kind"
	"github.com/drmason13/chainerr/mapper/internal/segmenttrie"
	"github.com/drmason13/chainerr/trail"

	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance — no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all trail prefixes (via trail.Normalize).
//  4. Build per-kind segment tries (HTTP & gRPC) supporting longest-prefix-match
//     with '*' as a single-segment wildcard.
//  5. Freeze all maps and tries into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid prefixes or configuration
// issues during normalization or trie construction.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides, prefixes, etc.).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Build per-kind HTTP prefix tries.
	// Each rule prefix is normalized and validated before insertion.
	httpTrie := make(map[kind.Kind]*segmenttrie.Trie[int], len(b.httpPrefixes))
	for k, rules := range b.httpPrefixes {
		if len(rules) == 0 {
			continue
		}
		t := segmenttrie.New[int]()
		for _, r := range rules {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid HTTP trail-prefix %q for kind %q: %w", r.prefix, k, err)
			}
			if err := t.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert HTTP prefix %q for kind %q: %w", p, k, err)
			}
		}
		httpTrie[k] = t
	}

	// (4) Build per-kind gRPC prefix tries.
	// Values are stored as int in the builder and converted to codes.Code here.
	grpcTrie := make(map[kind.Kind]*segmenttrie.Trie[codes.Code], len(b.grpcPrefixes))
	for k, rules := range b.grpcPrefixes {
		if len(rules) == 0 {
			continue
		}
		t := segmenttrie.New[codes.Code]()
		for _, r := range rules {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid gRPC trail-prefix %q for kind %q: %w", r.prefix, k, err)
			}
			if err := t.Insert(p, codes.Code(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert gRPC prefix %q for kind %q: %w", p, k, err)
			}
		}
		grpcTrie[k] = t
	}

	// (5) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated; tries are shallow-copied (they are immutable).
	m := &mapper{
		httpDefault:  freezeHTTPMap(b.httpDefaults),
		grpcDefault:  freezeGRPCMap(b.grpcDefaults),
		httpOverride: freezeHTTPMap(b.httpOverride),
		grpcOverride: freezeGRPCMap(b.grpcOverride),
		httpTrie:     freezeHTTPTrie(httpTrie),
		grpcTrie:     freezeGRPCTrie(grpcTrie),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines
// per-kind defaults, per-kind exact overrides, and per-kind segment-aware
// prefix tries for trails. Lookups are O(depth) and safe for concurrent use
// once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given kind.
	// Used when no per-trail rule and no override are present.
	httpDefault map[kind.Kind]int

	// grpcDefault holds the base gRPC status for a given kind.
	grpcDefault map[kind.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses for specific kinds.
	// These take precedence over defaults and per-trail LPM rules.
	httpOverride map[kind.Kind]int

	// grpcOverride holds explicit gRPC statuses for specific kinds.
	grpcOverride map[kind.Kind]codes.Code

	// httpTrie stores per-kind tries that resolve HTTP statuses based on
	// trail prefixes (dot-separated, with "*" for one-segment wildcards).
	httpTrie map[kind.Kind]*segmenttrie.Trie[int]

	// grpcTrie stores per-kind tries that resolve gRPC statuses based on
	// trail prefixes.
	grpcTrie map[kind.Kind]*segmenttrie.Trie[codes.Code]

	// fallbackHTTP is used when there is no mapping at all for a kind.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a kind.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind and trail.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override (explicitly registered);
//  2. per-kind longest-prefix-match rule on the trail;
//  3. per-kind default (library or user overridden);
//  4. hardcoded ultimate fallback (500).
//
// The trail is treated as a dot-separated string; LPM rules are stored per kind.
func (m *mapper) HTTPStatus(k kind.Kind, tr trail.Trail) int {
	// 1. Fast path: exact override for this kind.
	if v, ok := m.httpOverride[k]; ok {
		return v
	}

	// 2. Per-kind prefix LPM over the trail.
	if idx, ok := m.httpTrie[k]; ok && idx != nil {
		if v, ok := idx.Match(string(tr)); ok {
			return v
		}
	}

	// 3. Per-kind default.
	if v, ok := m.httpDefault[k]; ok {
		return v
	}

	// 4. Ultimate fallback: HTTP must never be zero.
	return 500
}

// GRPCStatus resolves a gRPC status for the given kind and trail.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
//
// Resolution order:
//  1. exact per-kind override;
//  2. per-kind LPM by trail;
//  3. per-kind default;
//  4. hardcoded fallback (codes.Internal).
func (m *mapper) GRPCStatus(k kind.Kind, tr trail.Trail) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[k]; ok {
		return v
	}

	// 2. Trie-based LPM for this kind.
	if idx, ok := m.grpcTrie[k]; ok && idx != nil {
		if v, ok := idx.Match(string(tr)); ok {
			return v
		}
	}

	// 3. Default for this kind.
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}

	// 4. Ultimate fallback.
	return codes.Internal
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(k kind.Kind, tr trail.Trail) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, tr),
		GRPC: m.GRPCStatus(k, tr),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (kind, trail) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, prefix, default, or fallback) and, for prefix matches,
// which pattern was used.
//
// Example output:
//
//	kind="parse" trail="parse.invalid_hex"
//	http: source=prefix pattern="parse.invalid_hex" -> 422
//	grpc: source=default -> INVALID_ARGUMENT(3)
//
// Notes:
//   - source ∈ {override | prefix | default | fallback}
//   - pattern is the rule as it was stored in the trie (may contain "*")
func (m *mapper) Explain(k kind.Kind, tr trail.Trail) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q trail=%q\n", k, tr)

	// ---- HTTP ----
	switch src, httpLine := m.explainHTTP(k, tr); src {
	case "override", "prefix", "default", "fallback":
		_, _ = fmt.Fprintln(&b, httpLine)
	default:
		// Defensive: unexpected source.
		_, _ = fmt.Fprintln(&b, "http: source=unknown")
	}

	// ---- gRPC ----
	switch src, grpcLine := m.explainGRPC(k, tr); src {
	case "override", "prefix", "default", "fallback":
		_, _ = fmt.Fprintln(&b, grpcLine)
	default:
		_, _ = fmt.Fprintln(&b, "grpc: source=unknown")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns the origin ("override", "prefix", "default", "fallback")
// and a formatted line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(k kind.Kind, tr trail.Trail) (source, line string) {
	// 1) exact per-kind override
	if v, ok := m.httpOverride[k]; ok {
		return "override", fmt.Sprintf("http: source=override -> %d", v)
	}

	// 2) per-kind LPM against the trail
	if idx, ok := m.httpTrie[k]; ok && idx != nil {
		if v, ok2, pat := idx.MatchWithPattern(string(tr)); ok2 {
			return "prefix", fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
		}
	}

	// 3) per-kind default
	if v, ok := m.httpDefault[k]; ok {
		return "default", fmt.Sprintf("http: source=default -> %d", v)
	}

	// 4) global fallback
	return "fallback", fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns the origin ("override", "prefix", "default", "fallback")
// and a formatted line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(k kind.Kind, tr trail.Trail) (source, line string) {
	// 1) exact per-kind override
	if v, ok := m.grpcOverride[k]; ok {
		return "override", fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 2) per-kind LPM against the trail
	if idx, ok := m.grpcTrie[k]; ok && idx != nil {
		if v, ok2, pat := idx.MatchWithPattern(string(tr)); ok2 {
			return "prefix", fmt.Sprintf("grpc: source=prefix pattern=%q -> %s(%d)", pat, strings.ToUpper(v.String()), int(v))
		}
	}

	// 3) per-kind default
	if v, ok := m.grpcDefault[k]; ok {
		return "default", fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 4) global fallback
	return "fallback", fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}

// normalizeAndValidatePrefix ensures a trail prefix is canonical and valid.
// It forbids empty strings as prefixes and checks each dot-separated
// segment, allowing "*" as a single-segment wildcard.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := trail.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	segs := strings.Split(p, ".")
	allWild := true
	for _, seg := range segs {
		if !validPrefixSegment(seg) { // allows "*" or [a-z][a-z0-9_]*
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment reports whether seg is a valid trie segment for prefixes.
// Rules:
//   - empty segments are invalid;
//   - the segment "*" is allowed;
//   - otherwise the segment must match: [a-z][a-z0-9_]*
func validPrefixSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	// [a-z][a-z0-9_]*
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
