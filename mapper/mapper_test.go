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
	"strings"
	"testing"

	"github.com/drmason13/chainerr/kind"
	"github.com/drmason13/chainerr/trail"

	"google.golang.org/grpc/codes"
)

func mustTrail(t *testing.T, s string) trail.Trail {
	t.Helper()
	tr, err := trail.Parse(s)
	if err != nil {
		t.Fatalf("parse trail: %v", err)
	}
	return tr
}

func TestDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// Spot-check a few canonical defaults from defaults.go
	check := func(k kind.Kind, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(k, trail.Empty)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				k, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(kind.Parsing, 400, codes.InvalidArgument)
	check(kind.NotFound, 404, codes.NotFound)
	check(kind.Request, 502, codes.Unavailable)
	check(kind.Timeout, 504, codes.DeadlineExceeded)
}

func TestFallback_UnknownKind(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Kind("never_registered"), trail.Empty)
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("unknown kind must hit the fallback, got %+v", st)
	}
}

func TestPriority_OverrideOverPrefixOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.Parsing, 400),                      // default
		WithHTTPPrefix(kind.Parsing, "parse.invalid_hex", 422),  // prefix
		WithHTTPOverride(kind.Parsing, 418),                     // override
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Parsing, mustTrail(t, "parse.invalid_hex"))
	if st.HTTP != 418 {
		t.Fatalf("override must win; got %d, want 418", st.HTTP)
	}
}

func TestPriority_OverrideOverPrefixOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(kind.Parsing, int(codes.InvalidArgument)),
		WithGRPCPrefix(kind.Parsing, "parse.invalid_hex", int(codes.Internal)),
		WithGRPCOverride(kind.Parsing, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Parsing, mustTrail(t, "parse.invalid_hex"))
	if st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", st.GRPC, codes.Aborted)
	}
}

func TestPrefix_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Read, "read.parse", 400),
		WithHTTPPrefix(kind.Read, "read.parse.invalid_hex", 422),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// LPM should pick the longer "read.parse.invalid_hex"
	st := m.Status(kind.Read, mustTrail(t, "read.parse.invalid_hex"))
	if st.HTTP != 422 {
		t.Fatalf("LPM failed: got %d, want 422", st.HTTP)
	}
	// make sure we don't cross segment boundaries ("read.par" must not match "read.parse")
	m2, _ := New(WithHTTPPrefix(kind.Read, "read.parse", 499))
	st2 := m2.Status(kind.Read, mustTrail(t, "read.par"))
	if st2.HTTP == 499 {
		t.Fatalf("unexpected match across segment boundary")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Read, "read.*.invalid_hex", 502),
		WithHTTPPrefix(kind.Read, "read.parse.invalid_hex", 422), // exact should win at same depth
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := m.Status(kind.Read, mustTrail(t, "read.parse.invalid_hex"))
	if a.HTTP != 422 {
		t.Fatalf("exact must beat wildcard; got %d", a.HTTP)
	}
	b := m.Status(kind.Read, mustTrail(t, "read.decode.invalid_hex.tail"))
	if b.HTTP != 502 {
		t.Fatalf("wildcard match failed; got %d, want 502", b.HTTP)
	}
	// wildcard matches exactly one segment, not zero
	c := m.Status(kind.Read, mustTrail(t, "read.invalid_hex"))
	if c.HTTP == 502 {
		t.Fatalf("wildcard must not match zero segments")
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Read, "  READ/PARSE.INVALID-HEX  ", 422),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Read, mustTrail(t, "read.parse.invalid_hex"))
	if st.HTTP != 422 {
		t.Fatalf("normalized prefix should match; got %d", st.HTTP)
	}
}

func TestInvalidPrefix_FailsBuild(t *testing.T) {
	if _, err := New(WithHTTPPrefix(kind.Read, "read..parse", 400)); err == nil {
		t.Fatal("empty segment must fail the build")
	}
	if _, err := New(WithGRPCPrefix(kind.Read, "*.*", int(codes.Internal))); err == nil {
		t.Fatal("wildcard-only prefix must fail the build")
	}
}

func TestEmptyTrail_UsesDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.Canceled, 499),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Canceled, trail.Empty)
	if st.HTTP != 499 {
		t.Fatalf("empty trail should use default; got %d, want 499", st.HTTP)
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Parsing, "parse.invalid_hex", 422),
		WithGRPCPrefix(kind.Parsing, "parse.invalid_hex", int(codes.InvalidArgument)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(kind.Parsing, mustTrail(t, "parse.invalid_hex"))
	if !strings.Contains(exp, `source=prefix`) {
		t.Fatalf("Explain must include source=prefix:\n%s", exp)
	}
	if !strings.Contains(exp, `pattern="parse.invalid_hex"`) {
		t.Fatalf("Explain must include the matched pattern:\n%s", exp)
	}

	exp2 := m.Explain(kind.Kind("never_registered"), trail.Empty)
	if !strings.Contains(exp2, "source=fallback") {
		t.Fatalf("Explain must report fallback for unknown kinds:\n%s", exp2)
	}
}
