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

package apis

// Detail represents a single structured piece of layer context attached to
// an error. This is a *view type* — small, transport-friendly, and suitable
// for JSON payloads or log fields.
//
// We keep it in apis so that different parts of the system (domain packages,
// HTTP/gRPC adapters, loggers) can speak about "details" without importing
// a concrete container type.
//
// Typical usages:
//   - report which file a read failed on;
//   - report the line number a parse failed at;
//   - report the URL an outbound request targeted.
type Detail struct {
	// Type is a short classifier of the detail, e.g. "file", "line",
	// "request". Callers MAY leave it empty, but providing it makes
	// client-side handling simpler.
	Type string `json:"type,omitempty"`

	// Info carries the detail's data as string key/values (for example,
	// {"path": "/tmp/Blocks.txt"} or {"line": "17"}). Keys and values should
	// be chosen so that they survive JSON round-trips.
	Info map[string]string `json:"info,omitempty"`
}
