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
	"fmt"
	"strconv"

	"github.com/drmason13/chainerr"
	"github.com/drmason13/chainerr/apis"
	"github.com/drmason13/chainerr/kind"
)

// Kind labels specific to this package. Labels shared with other domains
// (read, parse, request) come from the kind package's conventional set.
const (
	KindMissingSemicolon kind.Kind = "missing_semicolon"
	KindMissingRangeDots kind.Kind = "missing_range_dots"
	KindInvalidHex       kind.Kind = "invalid_hex"
	KindReadBody         kind.Kind = "read_body"
)

// ParseError reports that a blob of Blocks.txt data is malformed.
//
// The container's context is the 0-based line index; the kind says what was
// wrong with that line. The line survives any amount of wrapping by higher
// layers, so callers can always recover it with errors.As.
type ParseError struct {
	// Line is the 0-based index of the offending line. Error() prints it
	// 1-based, the way editors count.
	Line int

	// Kind is the variant of the failure. Exactly one kind per container.
	Kind ParseErrorKind
}

// ParseErrorKind is the closed set of ways a Blocks.txt line can be bad.
// Only this package can add variants.
type ParseErrorKind interface {
	error
	label() kind.Kind
}

// MissingSemicolon means the line has no ';' separating range from name.
type MissingSemicolon struct{}

// MissingRangeDots means the range field has no ".." separator.
type MissingRangeDots struct{}

// InvalidHex means one end of the range is not a hexadecimal integer.
// It wraps the strconv error.
type InvalidHex struct{ Err error }

func (MissingSemicolon) Error() string    { return "no semicolon" }
func (MissingSemicolon) label() kind.Kind { return KindMissingSemicolon }

func (MissingRangeDots) Error() string    { return "no `..` in range" }
func (MissingRangeDots) label() kind.Kind { return KindMissingRangeDots }

func (InvalidHex) Error() string    { return "one end of range is not a valid hexadecimal integer" }
func (InvalidHex) label() kind.Kind { return KindInvalidHex }
func (k InvalidHex) Unwrap() error  { return k.Err }

// NewParseError builds a finished parse error for the given line and kind.
// Use it for kinds that wrap nothing; for InvalidHex prefer InvalidHexAt.
func NewParseError(line int, k ParseErrorKind) *ParseError {
	return &ParseError{Line: line, Kind: k}
}

// InvalidHexAt returns a Transform that wraps a strconv failure on the
// given line. The line is captured now, the cause is supplied later:
//
//	lo, err := strconv.ParseUint(s, 16, 32)
//	if err != nil {
//	    return nil, ucd.InvalidHexAt(i)(err)
//	}
func InvalidHexAt(line int) chainerr.Transform[*ParseError] {
	return func(err error) *ParseError {
		return &ParseError{Line: line, Kind: InvalidHex{Err: err}}
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid Blocks.txt data on line %d", e.Line+1)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func (e *ParseError) ErrorKind() string { return string(e.Kind.label()) }

func (e *ParseError) ErrorDetails() []apis.Detail {
	return []apis.Detail{{
		Type: "line",
		Info: map[string]string{"line": strconv.Itoa(e.Line + 1)},
	}}
}

// ReadError reports that loading Blocks.txt from a file failed.
// The context is the path; the kind says whether reading or parsing broke.
type ReadError struct {
	Path string
	Kind ReadErrorKind
}

// ReadErrorKind is the closed set of ways a file load can fail.
type ReadErrorKind interface {
	error
	label() kind.Kind
}

// FileUnreadable means the file itself could not be read.
type FileUnreadable struct{ Err error }

// FileUnparsable means the file was read but its contents did not parse.
// Err is always a *ParseError.
type FileUnparsable struct{ Err error }

func (FileUnreadable) Error() string    { return "read failed" }
func (FileUnreadable) label() kind.Kind { return kind.Read }
func (k FileUnreadable) Unwrap() error  { return k.Err }

func (FileUnparsable) Error() string    { return "parse failed" }
func (FileUnparsable) label() kind.Kind { return kind.Parsing }
func (k FileUnparsable) Unwrap() error  { return k.Err }

// NewReadError builds a finished read error for the given path and kind.
func NewReadError(path string, k ReadErrorKind) *ReadError {
	return &ReadError{Path: path, Kind: k}
}

// ReadFailedAt returns a Transform that wraps an I/O failure for the given
// path. Designed for MapErr:
//
//	data, err := chainerr.MapErr(read(path), ucd.ReadFailedAt(path))
func ReadFailedAt(path string) chainerr.Transform[*ReadError] {
	return func(err error) *ReadError {
		return &ReadError{Path: path, Kind: FileUnreadable{Err: err}}
	}
}

// ParseFailedAt returns a Transform that wraps a parse failure of the file
// at the given path.
func ParseFailedAt(path string) chainerr.Transform[*ReadError] {
	return func(err error) *ReadError {
		return &ReadError{Path: path, Kind: FileUnparsable{Err: err}}
	}
}

func (e *ReadError) Error() string { return fmt.Sprintf("error reading `%s`", e.Path) }

func (e *ReadError) Unwrap() error { return e.Kind }

func (e *ReadError) ErrorKind() string { return string(e.Kind.label()) }

func (e *ReadError) ErrorDetails() []apis.Detail {
	return []apis.Detail{{
		Type: "file",
		Info: map[string]string{"path": e.Path},
	}}
}

// FetchError reports that downloading Blocks.txt from the Unicode website
// failed. It carries no context of its own, so its constructors take the
// cause directly and return the finished container.
type FetchError struct {
	Kind FetchErrorKind
}

// FetchErrorKind is the closed set of ways a download can fail.
type FetchErrorKind interface {
	error
	label() kind.Kind
}

// RequestFailed means the HTTP request itself did not succeed.
type RequestFailed struct{ Err error }

// BodyUnreadable means the response body could not be read.
type BodyUnreadable struct{ Err error }

// ResponseUnparsable means the body was read but did not parse.
// Err is always a *ParseError.
type ResponseUnparsable struct{ Err error }

func (RequestFailed) Error() string    { return "request failed" }
func (RequestFailed) label() kind.Kind { return kind.Request }
func (k RequestFailed) Unwrap() error  { return k.Err }

func (BodyUnreadable) Error() string    { return "failed to read response body" }
func (BodyUnreadable) label() kind.Kind { return KindReadBody }
func (k BodyUnreadable) Unwrap() error  { return k.Err }

func (ResponseUnparsable) Error() string    { return "parse failed" }
func (ResponseUnparsable) label() kind.Kind { return kind.Parsing }
func (k ResponseUnparsable) Unwrap() error  { return k.Err }

// FetchRequestFailed wraps a failed HTTP request.
func FetchRequestFailed(err error) *FetchError {
	return &FetchError{Kind: RequestFailed{Err: err}}
}

// FetchBodyFailed wraps a response body read failure.
func FetchBodyFailed(err error) *FetchError {
	return &FetchError{Kind: BodyUnreadable{Err: err}}
}

// FetchParseFailed wraps a parse failure of the downloaded body.
func FetchParseFailed(err error) *FetchError {
	return &FetchError{Kind: ResponseUnparsable{Err: err}}
}

func (e *FetchError) Error() string {
	return "failed to download Blocks.txt from the Unicode website"
}

func (e *FetchError) Unwrap() error { return e.Kind }

func (e *FetchError) ErrorKind() string { return string(e.Kind.label()) }
