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

// Package ucd reads the Unicode Character Database's Blocks.txt file and
// answers "which block does this rune belong to?".
//
// It is also the reference domain package for the chainerr error
// convention. Each operational layer (parsing raw data, loading a file,
// downloading from unicode.org) declares its own error container with its
// own context and a closed set of kinds, and the layers chain through
// errors.Unwrap:
//
//	blocks, err := ucd.FromFile("/usr/share/unicode/Blocks.txt")
//	if err != nil {
//	    var pe *ucd.ParseError
//	    if errors.As(err, &pe) {
//	        // pe.Line is available no matter how many layers wrapped it.
//	    }
//	}
//
// The containers implement apis.KindedError and apis.DetailedError, so the
// mapper, httpx and grpcx packages can resolve them without knowing any
// ucd type.
package ucd
