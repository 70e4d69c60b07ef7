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

package trail

import (
	"errors"
	"fmt"
	"testing"

	"github.com/drmason13/chainerr/kind"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Trail
		wantErr bool
	}{
		{"empty is allowed", "", Empty, false},
		{"whitespace only", "   ", Empty, false},
		{"single segment", "parse", Trail("parse"), false},
		{"multi segment", "read.parse.invalid_hex", Trail("read.parse.invalid_hex"), false},
		{"normalizes case and dashes", " READ/PARSE.INVALID-HEX ", Trail("read.parse.invalid_hex"), false},
		{"empty segment", "read..parse", Empty, true},
		{"digit first", "read.1hex", Empty, true},
		{"too many segments", "a1.a2.a3.a4.a5.a6.a7.a8.a9", Empty, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParse_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse(\"\") must panic")
		}
	}()
	_ = MustParse("")
}

func TestValidate(t *testing.T) {
	if err := Validate(Empty); err != nil {
		t.Fatalf("empty trail must be valid: %v", err)
	}
	if err := Validate(Trail("parse.invalid_hex")); err != nil {
		t.Fatalf("Validate unexpected error: %v", err)
	}
	if err := Validate(Trail("Parse.invalid")); err == nil {
		t.Fatal("uppercase trail must be invalid")
	}
	if err := Validate(Trail("ab")); err == nil {
		t.Fatal("too-short trail must be invalid")
	}
}

func TestSegments(t *testing.T) {
	if segs := Empty.Segments(); segs != nil {
		t.Fatalf("Empty.Segments() = %v, want nil", segs)
	}
	segs := Trail("read.parse.invalid_hex").Segments()
	want := []kind.Kind{"read", "parse", "invalid_hex"}
	if len(segs) != len(want) {
		t.Fatalf("Segments() = %v, want %v", segs, want)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Fatalf("Segments()[%d] = %q, want %q", i, segs[i], want[i])
		}
	}
}

// link is a fake chain link: kinded when label != "", always unwrapping to next.
type link struct {
	label string
	next  error
}

func (l *link) Error() string { return "link" }
func (l *link) Unwrap() error { return l.next }

// kindedLink exposes an ErrorKind label on top of link.
type kindedLink struct{ link }

func (l *kindedLink) ErrorKind() string { return l.label }

func chainOf(labels ...string) error {
	var cur error = errors.New("root cause")
	for i := len(labels) - 1; i >= 0; i-- {
		if labels[i] == "" {
			cur = &link{next: cur}
			continue
		}
		cur = &kindedLink{link{label: labels[i], next: cur}}
	}
	return cur
}

func TestOf(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   Trail
	}{
		{"no kinds", nil, Empty},
		{"single kind", []string{"parse"}, "parse"},
		{"layered", []string{"parse", "invalid_hex"}, "parse.invalid_hex"},
		{"unkinded links are skipped", []string{"read", "", "parse"}, "read.parse"},
		{"invalid labels are skipped", []string{"read", "Not A Kind", "parse"}, "read.parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := chainOf(tt.labels...)
			if got := Of(err); got != tt.want {
				t.Fatalf("Of() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("wrapped by fmt.Errorf", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", chainOf("request"))
		if got := Of(err); got != "request" {
			t.Fatalf("Of() = %q, want %q", got, "request")
		}
	})

	t.Run("nil", func(t *testing.T) {
		if got := Of(nil); got != Empty {
			t.Fatalf("Of(nil) = %q, want Empty", got)
		}
	})
}
