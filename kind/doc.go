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

// Package kind provides parsing, normalization and validation for the kind
// labels of chained errors.
//
// A "kind" names one variant of a container's failure discriminant, such as
// "parse", "read_file" or "invalid_hex". Kinds are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads, log fields and mapper lookups.
//
// Domain packages declare their kind labels as typed constants (see the ucd
// package for an example) and surface them through the ErrorKind method of
// their containers. The mapper resolves transport statuses from the
// outermost kind of a chain plus the chain's trail.
//
// This package defines the canonical representation, the functions that
// convert arbitrary input to that canonical form, and a curated set of
// conventional cross-domain kinds.
package kind
