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

package segmenttrie

import "testing"

func BenchmarkMatch(b *testing.B) {
	tr := New[int]()
	prefixes := []string{
		"parse",
		"parse.invalid_hex",
		"read.parse",
		"read.*.invalid_hex",
		"request.read_body",
		"request.read_body.parse",
	}
	for i, p := range prefixes {
		if err := tr.Insert(p, i); err != nil {
			b.Fatalf("insert %q: %v", p, err)
		}
	}

	trails := []string{
		"parse.invalid_hex",
		"read.parse.missing_semicolon",
		"request.read_body.parse.invalid_hex",
		"request",
		"unrelated.trail",
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Match(trails[i%len(trails)])
	}
}
