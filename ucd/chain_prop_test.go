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

package ucd

import (
	"errors"
	"strings"
	"testing"

	"github.com/drmason13/chainerr"
	"github.com/drmason13/chainerr/trail"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based checks of the chain invariants: whatever context and cause
// a layer is built with, the root cause stays reachable, the layer context
// stays recoverable, and the rendered message is the layer messages joined
// outermost first.
func TestChainProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("wrapping preserves the root cause", prop.ForAll(
		func(line int, msg string) bool {
			cause := errors.New(msg)
			err := InvalidHexAt(line)(cause)
			return errors.Is(err, cause) && chainerr.Root(err) == cause
		},
		gen.IntRange(0, 1<<20),
		gen.AlphaString(),
	))

	properties.Property("context is captured at bind time, not apply time", prop.ForAll(
		func(path string, msg string) bool {
			transform := ReadFailedAt(path)
			err := transform(errors.New(msg))
			return err.Path == path
		},
		gen.Identifier(),
		gen.AlphaString(),
	))

	properties.Property("bind-then-apply equals direct construction", prop.ForAll(
		func(path string, msg string) bool {
			cause := errors.New(msg)
			viaTransform := ReadFailedAt(path)(cause)
			direct := NewReadError(path, FileUnreadable{Err: cause})
			return viaTransform.Path == direct.Path &&
				viaTransform.Kind == direct.Kind
		},
		gen.Identifier(),
		gen.AlphaString(),
	))

	properties.Property("every layer stays recoverable through the chain", prop.ForAll(
		func(path string, line int) bool {
			inner := NewParseError(line, MissingSemicolon{})
			outer := ParseFailedAt(path)(inner)

			var re *ReadError
			var pe *ParseError
			return errors.As(outer, &re) && re.Path == path &&
				errors.As(outer, &pe) && pe.Line == line
		},
		gen.Identifier(),
		gen.IntRange(0, 1<<20),
	))

	properties.Property("trail is the kind labels outermost first", prop.ForAll(
		func(path string, line int) bool {
			err := ParseFailedAt(path)(NewParseError(line, MissingRangeDots{}))
			return trail.Of(err) == trail.Trail("parse.missing_range_dots")
		},
		gen.Identifier(),
		gen.IntRange(0, 1<<20),
	))

	properties.Property("MapErr leaves successes untouched", prop.ForAll(
		func(v int, path string) bool {
			got, err := chainerr.MapErr(v, nil, ReadFailedAt(path))
			return got == v && err == nil
		},
		gen.Int(),
		gen.Identifier(),
	))

	properties.Property("rendered chain starts with the outermost message", prop.ForAll(
		func(path string, msg string) bool {
			cause := errors.New(msg)
			err := ReadFailedAt(path)(cause)
			rendered := chainerr.Render(err)
			return strings.HasPrefix(rendered, err.Error()) &&
				strings.HasSuffix(rendered, msg)
		},
		gen.Identifier(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
