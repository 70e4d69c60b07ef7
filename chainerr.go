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

package chainerr

import (
	"errors"
	"strings"
)

// Transform is a deferred, single-use constructor for one link of an error
// chain.
//
// A Transform is produced by a wrapping-with-context constructor (the
// At-suffixed functions of a domain package): the layer's context is captured
// at binding time, and applying the Transform to the lower-layer error yields
// the finished container in one step. There are no partial states — before
// application there is no container, after application there is a complete,
// immutable one.
//
// Transforms are single-use by convention: each constructed container should
// consume its own Transform. Use Once to enforce this at runtime.
type Transform[T error] func(err error) T

// MapErr maps the failure of a (value, error) pair through t, leaving the
// value untouched.
//
// It is the "map a failure value to a different failure value" combinator
// that makes Transforms pleasant at call sites:
//
//	data, err := chainerr.MapErr(os.ReadFile(path), ucd.ReadFailedAt(path))
//
// When err is nil, v is returned unchanged and the Transform is not applied.
func MapErr[V any, T error](v V, err error, t Transform[T]) (V, error) {
	if err == nil {
		return v, nil
	}
	return v, t(err)
}

// Once wraps t so that applying it a second time panics.
//
// The single-use contract of Transform is otherwise a documentation
// convention only. Once turns it into a checked invariant for callers that
// want the stricter guarantee; reusing a context-bound constructor across
// several failures is almost always a bug (the second container would carry
// the first one's context).
//
// The returned Transform is not safe for concurrent use; a Transform is bound
// at one call site and applied there.
func Once[T error](t Transform[T]) Transform[T] {
	used := false
	return func(err error) T {
		if used {
			panic("chainerr: transform applied twice")
		}
		used = true
		return t(err)
	}
}

// Links flattens an error chain into its individual links, outermost first.
//
// The walk follows errors.Unwrap, so for containers built with this package
// the result alternates container, kind, container, kind, ... down to the
// root cause. Every layer's value is present; nothing is collapsed or
// re-rendered.
func Links(err error) []error {
	var out []error
	for err != nil {
		out = append(out, err)
		err = errors.Unwrap(err)
	}
	return out
}

// Root returns the deepest error of the chain — the original cause that no
// further link wraps. Returns nil when err is nil.
func Root(err error) error {
	var last error
	for err != nil {
		last = err
		err = errors.Unwrap(err)
	}
	return last
}

// Render joins the per-link messages of a chain with ": ", outermost first.
//
// It assumes each link prints only its own context (the convention for
// containers and kinds in this module); links that already embed their
// cause's text, like fmt.Errorf("%w") wrappers, will repeat it.
func Render(err error) string {
	if err == nil {
		return ""
	}
	links := Links(err)
	parts := make([]string, 0, len(links))
	for _, l := range links {
		if msg := l.Error(); msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, ": ")
}
