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
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/drmason13/chainerr"
)

// LatestURL points at the current published Blocks.txt of the Unicode
// Character Database.
const LatestURL = "https://www.unicode.org/Public/UCD/latest/ucd/Blocks.txt"

// NoBlock is the block name reported for code points no range covers.
// It is the name UCD itself uses for unassigned planes.
const NoBlock = "No_Block"

// Blocks holds the parsed contents of a Blocks.txt file: an ordered list
// of inclusive code point ranges and their block names.
//
// A Blocks value is immutable once constructed and safe for concurrent use.
type Blocks struct {
	ranges []blockRange
}

type blockRange struct {
	lo, hi uint32
	name   string
}

// Len returns the number of ranges.
func (b *Blocks) Len() int { return len(b.ranges) }

// BlockOf returns the name of the block containing r, or NoBlock when no
// range covers it. Lookup is a binary search over the ordered ranges.
func (b *Blocks) BlockOf(r rune) string {
	u := uint32(r)
	i := sort.Search(len(b.ranges), func(i int) bool { return u <= b.ranges[i].hi })
	if i < len(b.ranges) && b.ranges[i].lo <= u {
		return b.ranges[i].name
	}
	return NoBlock
}

// Parse parses raw Blocks.txt data.
//
// The format is one "lo..hi; Name" entry per line; '#' starts a comment and
// blank lines are ignored. On failure the returned error is a *ParseError
// carrying the 0-based line index and the specific kind of problem.
func Parse(data string) (*Blocks, error) {
	lines := strings.Split(data, "\n")
	ranges := make([]blockRange, 0, len(lines))
	for i, line := range lines {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		rangeField, name, ok := strings.Cut(line, ";")
		if !ok {
			return nil, NewParseError(i, MissingSemicolon{})
		}
		rangeField, name = strings.TrimSpace(rangeField), strings.TrimSpace(name)

		loHex, hiHex, ok := strings.Cut(rangeField, "..")
		if !ok {
			return nil, NewParseError(i, MissingRangeDots{})
		}

		lo, err := strconv.ParseUint(loHex, 16, 32)
		if err != nil {
			return nil, InvalidHexAt(i)(err)
		}
		hi, err := strconv.ParseUint(hiHex, 16, 32)
		if err != nil {
			return nil, InvalidHexAt(i)(err)
		}

		ranges = append(ranges, blockRange{lo: uint32(lo), hi: uint32(hi), name: name})
	}
	return &Blocks{ranges: ranges}, nil
}

// FromFile loads and parses a Blocks.txt file from disk.
//
// On failure the returned error is a *ReadError carrying the path; its kind
// distinguishes an unreadable file from unparsable contents, and for the
// latter the underlying *ParseError stays reachable via errors.As.
func FromFile(path string) (*Blocks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFailedAt(path)(err)
	}
	b, err := Parse(string(data))
	return chainerr.MapErr(b, err, ParseFailedAt(path))
}

// Download fetches the latest Blocks.txt from the Unicode website and
// parses it. A nil client falls back to http.DefaultClient.
//
// On failure the returned error is a *FetchError.
func Download(ctx context.Context, client *http.Client) (*Blocks, error) {
	return DownloadFrom(ctx, client, LatestURL)
}

// DownloadFrom is Download with an explicit URL, mostly for tests and
// mirrors.
func DownloadFrom(ctx context.Context, client *http.Client, url string) (*Blocks, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, FetchRequestFailed(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, FetchRequestFailed(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, FetchRequestFailed(fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, FetchBodyFailed(err)
	}

	b, err := Parse(string(body))
	if err != nil {
		return nil, FetchParseFailed(err)
	}
	return b, nil
}
