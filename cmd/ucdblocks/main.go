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

// ucdblocks looks up the Unicode block of characters using a local or
// downloaded Blocks.txt.
//
// Usage:
//
//	ucdblocks --file /usr/share/unicode/Blocks.txt 'aä€'
//	ucdblocks --download '😀'
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/drmason13/chainerr/adapter"
	"github.com/drmason13/chainerr/kind"
	"github.com/drmason13/chainerr/mapper"
	"github.com/drmason13/chainerr/trail"
	"github.com/drmason13/chainerr/ucd"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	var (
		file     = pflag.String("file", "", "path to a local Blocks.txt")
		download = pflag.Bool("download", false, "download Blocks.txt from the Unicode website")
		url      = pflag.String("url", ucd.LatestURL, "download URL (with --download)")
		timeout  = pflag.Duration("timeout", 30*time.Second, "download timeout")
		verbose  = pflag.Bool("verbose", false, "verbose logging with mapping diagnostics")
	)
	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if err := run(log, *file, *download, *url, *timeout, pflag.Args()); err != nil {
		logFailure(log, *verbose, err)
		os.Exit(1)
	}
}

func run(log zerolog.Logger, file string, download bool, url string, timeout time.Duration, args []string) error {
	blocks, err := load(log, file, download, url, timeout)
	if err != nil {
		return err
	}
	log.Debug().Int("ranges", blocks.Len()).Msg("blocks loaded")

	if len(args) == 0 {
		fmt.Printf("%d block ranges loaded\n", blocks.Len())
		return nil
	}
	for _, arg := range args {
		for _, r := range arg {
			fmt.Printf("U+%04X\t%c\t%s\n", r, r, blocks.BlockOf(r))
		}
	}
	return nil
}

func load(log zerolog.Logger, file string, download bool, url string, timeout time.Duration) (*ucd.Blocks, error) {
	switch {
	case download:
		log.Debug().Str("url", url).Dur("timeout", timeout).Msg("downloading Blocks.txt")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return ucd.DownloadFrom(ctx, nil, url)
	case file != "":
		log.Debug().Str("path", file).Msg("reading Blocks.txt")
		return ucd.FromFile(file)
	default:
		return nil, fmt.Errorf("either --file or --download is required")
	}
}

// logFailure logs the chain with its kind and trail. With --verbose it also
// logs how the default mapper would resolve the failure, which is handy when
// wiring this tool's exit states into HTTP health endpoints.
func logFailure(log zerolog.Logger, verbose bool, err error) {
	m, merr := mapper.New()
	if merr != nil {
		log.Error().Err(merr).Msg("mapper init failed")
		log.Error().Msg(err.Error())
		return
	}

	k, _ := kind.Of(err)
	tr := trail.Of(err)
	desc := adapter.Describe(err, m.Status(k, tr))

	log.Error().
		Str("kind", desc.Kind).
		Str("trail", desc.Trail).
		Msg(desc.Message)

	if verbose {
		log.Debug().Msg(m.Explain(k, tr))
	}
}
