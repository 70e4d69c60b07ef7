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

// Package trail derives and validates the kind path of a chained error.
//
// Where a kind answers "why did this layer fail?", the trail answers "why did
// the whole chain fail, layer by layer?": it is the dot-joined sequence of
// kind labels from the outermost container down to the root cause, e.g.:
//
//   - "parse.invalid_hex"
//   - "read.parse.missing_semicolon"
//   - "request"
//
// Trails are what the mapper's prefix rules match against, and what log
// fields and API payloads carry as the machine-readable cause path.
//
// A trail is intentionally optional: the zero value ("") is allowed and means
// that no link of the chain exposed a kind.
package trail
