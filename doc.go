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

// Package chainerr provides the building blocks for layered, chained error
// types.
//
// # The convention
//
// Every layer of a system that can fail defines its own error container: a
// small struct that pairs the layer's context (a path, a line number, an
// identifier) with exactly one kind value describing why the layer failed.
// Kinds form a closed set per container (a sealed interface with one variant
// type per failure reason); a kind either is a root cause or wraps the error
// container of the layer below, so chains are strictly layered and acyclic.
//
// Containers are immutable once constructed and expose the chain through the
// standard Unwrap mechanism: container -> kind -> nested error. errors.Is and
// errors.As therefore see every layer.
//
// # Constructor shapes
//
// Three constructor shapes cover all constructions, and the shape is always
// readable off the function name alone:
//
//  1. Root cause: one uniform New<Container>(context..., kind) per container.
//     It returns the finished container.
//  2. Wrapping with context: a function named with an At suffix, e.g.
//     ReadFailedAt(path). It binds the context eagerly and returns a
//     Transform that is later applied to the lower-layer error.
//  3. Wrapping without context: a direct constructor taking the lower-layer
//     error and returning the finished container, e.g. FetchRequestFailed(err).
//     With no context to bind there is nothing to defer.
//
// Only the At-suffixed constructors return a Transform; everything else
// returns a finished error. A reader never has to consult a signature to know
// which one they are holding.
//
// # Using transforms
//
// A Transform slots into the usual "call, then map the failure" step:
//
//	blocks, err := ucd.Parse(string(data))
//	return chainerr.MapErr(blocks, err, ucd.ParseFailedAt(path))
//
// or is applied directly when MapErr's shape does not fit the call site:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return nil, ucd.ReadFailedAt(path)(err)
//	}
//
// Transforms are single-use by convention. Wrap one in Once to turn the
// convention into a checked invariant.
//
// The ucd package in this module is a complete worked example of the
// convention; kind, trail, mapper, grpcx and httpx turn chains built this way
// into transport-level statuses and payloads.
package chainerr
