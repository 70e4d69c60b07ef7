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

package mapper

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drmason13/chainerr/kind"
	"github.com/drmason13/chainerr/trail"

	"google.golang.org/grpc/codes"
)

var update = flag.Bool("update", false, "rewrite golden files with current output")

// TestExplain_Golden pins the exact Explain output format. The diagnostic
// text is part of the package's contract: operators paste it into tickets
// and scripts grep it, so format drift should be a conscious decision.
//
// Regenerate with: go test ./mapper -run TestExplain_Golden -update
func TestExplain_Golden(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Parsing, "parse.invalid_hex", 422),
		WithGRPCPrefix(kind.Parsing, "parse.invalid_hex", int(codes.InvalidArgument)),
		WithHTTPOverride(kind.Canceled, 499),
		WithGRPCOverride(kind.Canceled, int(codes.Canceled)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		k  kind.Kind
		tr trail.Trail
	}{
		{kind.Parsing, mustTrail(t, "parse.invalid_hex")},
		{kind.Canceled, trail.Empty},
		{kind.Kind("never_registered"), trail.Empty},
	}

	var out []string
	for _, c := range cases {
		out = append(out, m.Explain(c.k, c.tr))
	}
	got := strings.Join(out, "\n---\n") + "\n"

	goldenPath := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("update golden: %v", err)
		}
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if got != string(want) {
		t.Errorf("Explain output drifted from golden file.\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}
