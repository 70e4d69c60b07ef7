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

// Package httpx turns chained errors into HTTP error responses.
package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/drmason13/chainerr/adapter"
	"github.com/drmason13/chainerr/apis"
	"github.com/drmason13/chainerr/kind"
	"github.com/drmason13/chainerr/trail"
)

// Meta carries extra context that the HTTP layer can add on top of the
// error chain. All fields are optional and typically come from request
// context, headers, or rate-limiter output.
type Meta struct {
	// Correlation is a client/server correlation token (request ID,
	// idempotency key). When set it is echoed in the response body.
	Correlation string

	// RetryAfterSeconds, when positive, is emitted as a Retry-After header.
	RetryAfterSeconds int
}

// body is the JSON envelope written on the wire: the portable ErrorView
// plus the per-request metadata.
type body struct {
	apis.ErrorView
	Correlation string `json:"correlation,omitempty"`
}

// Writer is a thin adapter that knows how to turn a chained error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the chain's outermost kind and trail through the Mapper
// and writes a JSON error body with the resolved status code.
//
// The body's message is the outermost link's own text; lower layers travel
// only as kind labels in the trail and as structured details. No automatic
// redaction is performed on details — higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err apis.KindedError, meta Meta) {
	if err == nil {
		return
	}

	// An unparsable kind label means a broken domain package; fail closed
	// as internal rather than guessing a 4xx.
	k, kerr := kind.Parse(err.ErrorKind())
	if kerr != nil {
		k = kind.Internal
	}
	st := w.Mapper.Status(k, trail.Of(err))

	resp := body{
		ErrorView:   adapter.View(err, st),
		Correlation: meta.Correlation,
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(st.HTTP)

	enc := json.NewEncoder(rw)
	_ = enc.Encode(resp)
}
