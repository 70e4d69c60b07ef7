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

package httpx

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/drmason13/chainerr/apis"
	"github.com/drmason13/chainerr/mapper"
)

type parseFailure struct {
	line  int
	inner error
}

func (e *parseFailure) Error() string     { return "invalid Blocks.txt data on line 18" }
func (e *parseFailure) Unwrap() error     { return e.inner }
func (e *parseFailure) ErrorKind() string { return "parse" }
func (e *parseFailure) ErrorDetails() []apis.Detail {
	return []apis.Detail{{Type: "line", Info: map[string]string{"line": "18"}}}
}

func newWriter(t *testing.T) Writer {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return Writer{Mapper: m}
}

func TestWrite(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	failure := &parseFailure{line: 17, inner: errors.New("no semicolon")}
	w.Write(rec, failure, Meta{Correlation: "req-42"})

	if rec.Code != 400 {
		t.Errorf("status = %d, want 400 (kind parse)", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got struct {
		Kind        string        `json:"kind"`
		Trail       string        `json:"trail"`
		Message     string        `json:"message"`
		Details     []apis.Detail `json:"details"`
		Correlation string        `json:"correlation"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	if got.Kind != "parse" || got.Trail != "parse" {
		t.Errorf("kind/trail = %q/%q", got.Kind, got.Trail)
	}
	if got.Message != "invalid Blocks.txt data on line 18" {
		t.Errorf("message = %q", got.Message)
	}
	if got.Correlation != "req-42" {
		t.Errorf("correlation = %q", got.Correlation)
	}
	if len(got.Details) != 1 || got.Details[0].Type != "line" {
		t.Errorf("details = %+v", got.Details)
	}
}

func TestWrite_RetryAfterHeader(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, &parseFailure{}, Meta{RetryAfterSeconds: 30})
	if got := rec.Header().Get("Retry-After"); got != "30" {
		t.Errorf("Retry-After = %q, want %q", got, "30")
	}

	rec2 := httptest.NewRecorder()
	w.Write(rec2, &parseFailure{}, Meta{})
	if got := rec2.Header().Get("Retry-After"); got != "" {
		t.Errorf("Retry-After must be absent when not requested, got %q", got)
	}
}

func TestWrite_NilError(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()
	w.Write(rec, nil, Meta{})
	if rec.Body.Len() != 0 {
		t.Errorf("nil error must write nothing, got %q", rec.Body.String())
	}
}
