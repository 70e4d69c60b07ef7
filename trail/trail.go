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
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"

	"github.com/drmason13/chainerr/kind"
)

// Trail is the canonical, validated representation of a chain's kind path.
//
// Trails are dot-separated sequences of kind labels, outermost layer first.
// Each segment is one container's kind; together they reconstruct the "why"
// of the whole chain without exposing any concrete error type.
//
// Example valid trails:
//
//   - "parse.invalid_hex"
//   - "read.parse.missing_range_dots"
//   - "request"
type Trail string

// MinLength and MaxLength define the allowed length range for a canonical
// trail string.
//
// Trails may be longer than single kinds because they concatenate one label
// per chain layer.
const (
	// MinLength is the minimum length for a non-empty trail.
	// The empty string is still allowed and means "no kinds in the chain".
	MinLength = 3

	// MaxLength is the maximum length for a valid trail.
	// 128 characters is enough for deep chains with descriptive labels.
	MaxLength = 128
)

// MaxDepth bounds how many chain links Of will record. Chains deeper than
// this keep their outermost layers; the tail is dropped rather than
// producing an over-long, unmatchable trail.
const MaxDepth = 8

const (
	// trailFmt is the canonical regular expression used to validate trails.
	//
	// We accept 1 to 8 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"parse.invalid_hex"
	//	"read.parse"
	//	"request"
	//
	// Examples that DO NOT match:
	//
	//	"Parse.invalid"  (uppercase)
	//	"read/parse"     (slash)
	//	"read..parse"    (empty segment)
	//	"1hex.parse"     (digit first)
	//
	// NOTE: empty string ("") is treated separately as "no trail" and does
	// not go through this regexp.
	trailFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,7}$`
)

var (
	// trailRe is the compiled regexp for the above pattern.
	trailRe = regexp.MustCompile(trailFmt)
)

var (
	// ErrTrailInvalidFormat is returned when a trail does not conform to
	// the expected format.
	ErrTrailInvalidFormat = errors.New("chainerr: invalid trail format")
	// ErrTrailInvalidLength is returned when a trail is too short or too long.
	ErrTrailInvalidLength = errors.New("chainerr: invalid trail length")
)

// Ensure Trail implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Trail)(nil)
	_ encoding.TextUnmarshaler = (*Trail)(nil)
)

// Empty is the zero-value trail. It is valid and means "no kind information
// available for this chain".
var Empty Trail = ""

// Of derives the trail of an error chain.
//
// It walks the Unwrap chain outermost-first and appends the normalized kind
// label of every link that exposes an ErrorKind method (the contract of
// error containers built with this module). Links without a kind — including
// the kind variants themselves and foreign root causes — contribute nothing.
// Labels that do not survive kind.Parse are skipped rather than poisoning
// the whole trail.
//
// The walk records at most MaxDepth labels.
func Of(err error) Trail {
	type kinded interface{ ErrorKind() string }
	var segs []string
	for err != nil && len(segs) < MaxDepth {
		if ke, ok := err.(kinded); ok {
			if k, perr := kind.Parse(ke.ErrorKind()); perr == nil {
				segs = append(segs, string(k))
			}
		}
		err = errors.Unwrap(err)
	}
	return Trail(strings.Join(segs, "."))
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical trail form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (because callers may build paths with slashes)
//   - replace "-" with "_" (to align with kind-style identifiers)
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Trail value.
//
// Parse also accepts the empty string and returns trail.Empty without error.
// This is what makes Trail an "optional" part of the error model.
func Parse(s string) (Trail, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Trail(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level trail constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Trail {
	tr, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if tr == Empty {
		panic("chainerr: empty trail in MustParse")
	}
	return tr
}

// Validate checks whether the provided Trail is in canonical form.
//
// The empty trail ("") is considered valid here, because the whole point of
// this type is to be optional. If you need to enforce "must be non-empty",
// add that check at call site.
func Validate(tr Trail) error {
	if tr == Empty {
		return nil
	}
	return validate(string(tr))
}

// String returns the canonical string representation of the trail.
func (tr Trail) String() string {
	return string(tr)
}

// Segments splits the trail into its kind labels, outermost layer first.
// The empty trail yields nil.
func (tr Trail) Segments() []kind.Kind {
	if tr == Empty {
		return nil
	}
	parts := strings.Split(string(tr), ".")
	out := make([]kind.Kind, len(parts))
	for i, p := range parts {
		out[i] = kind.Kind(p)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty trail as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (tr Trail) MarshalText() ([]byte, error) {
	if err := Validate(tr); err != nil {
		return nil, err
	}
	if tr == Empty {
		return []byte{}, nil
	}
	return []byte(tr), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce trail.Empty.
func (tr *Trail) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*tr = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrTrailInvalidLength
	}
	if !trailRe.MatchString(s) {
		return ErrTrailInvalidFormat
	}
	return nil
}
