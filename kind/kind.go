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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the canonical, validated representation of a kind label.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw input with normalized values.
//
// IMPORTANT: Empty kinds ("") are NOT allowed. Every error container MUST
// carry a non-empty kind.
type Kind string

// MinLength and MaxLength define the allowed length range for a canonical
// kind label.
//
// They are separate constants so that validation errors, tests and packages
// mirroring these constraints can reference the exact same bounds.
const (
	// MinLength is the minimum length for a valid kind.
	// Three characters keeps ultra-short, ambiguous labels like "a" or "x1"
	// out of the taxonomy.
	MinLength = 3

	// MaxLength is the maximum length for a valid kind.
	// 64 characters is enough for descriptive labels like
	// "missing_range_dots" while preventing accidental unbounded strings.
	MaxLength = 64
)

const (
	// kindFmt is the canonical regular expression used to validate kinds.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{2,63} - the remaining characters may be lowercase letters,
	//	                  digits or underscore; the quantifier {2,63} makes
	//	                  the total length 3..64 characters (1 + 2..63);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,63} is tied to MinLength / MaxLength
	// above. Adjust both together.
	kindFmt = `^[a-z][a-z0-9_]{2,63}$`
)

var (
	// kindRe is the compiled regular expression used at runtime.
	// Precompiled so repeated validations on hot paths do not pay the
	// compilation cost.
	//
	// Examples of valid kinds:
	//   - "parse"
	//   - "read_file"
	//   - "invalid_hex"
	//
	// Examples of invalid kinds:
	//   - "Parse"      (uppercase)
	//   - "read-file"  (dash instead of underscore)
	//   - "x"          (too short)
	//   - "1hex"       (does not start with a letter)
	kindRe = regexp.MustCompile(kindFmt)
)

var (
	// ErrKindInvalid is returned when a value cannot be parsed or validated
	// as a kind label.
	ErrKindInvalid = errors.New("chainerr: invalid kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It is considered "not provided" and only
// appears transiently, e.g. as the failure result of Parse. Stored kinds
// must be non-empty.
var Empty Kind = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Kind value.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical kind form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Kind is valid.
// The empty kind ("") is considered invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// Of returns the kind of the outermost chain link that carries one.
//
// It walks the Unwrap chain looking for an ErrorKind method (the contract of
// error containers built with this module) and normalizes the first label it
// finds. The second result is false when no link of the chain is kinded or
// the label does not validate.
func Of(err error) (Kind, bool) {
	type kinded interface{ ErrorKind() string }
	for err != nil {
		if ke, ok := err.(kinded); ok {
			k, perr := Parse(ke.ErrorKind())
			if perr != nil {
				return Empty, false
			}
			return k, true
		}
		err = errors.Unwrap(err)
	}
	return Empty, false
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (k *Kind) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid kind.
func validate(s string) error {
	if !kindRe.MatchString(s) {
		return ErrKindInvalid
	}
	return nil
}
