// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	nl "github.com/mlnoga/goldenedge/internal"
	"github.com/mlnoga/goldenedge/internal/ops"
	"github.com/mlnoga/goldenedge/internal/ops/edge"
	"github.com/mlnoga/goldenedge/internal/pgm"
	"github.com/mlnoga/goldenedge/internal/rest"
)

const version = "0.1.0"

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")

var dir = flag.String("dir", "", "write golden PGM files into `directory`. Empty means beside this binary")
var jpg = flag.String("jpg", "", "save 8bit preview of each edge map with given filename pattern, e.g. `edges%04d.jpg`")
var log = flag.String("log", "", "save log output to `file`")

var policy = flag.String("policy", "reflect101", "edge extension for the outer ring of the padded image: reflect101, reflect, replicate, wrap or zero")
var parallel = flag.Bool("parallel", false, "run the two gradient convolutions concurrently")
var threads = flag.Int("threads", 0, "maximum number of images processed concurrently, 0=number of CPUs")

var limit = flag.Int("limit", 5, "compare: show at most this many mismatches per file pair, 0=all")

var addr = flag.String("addr", ":8080", "serve: listen on this `address`")
var chroot = flag.String("chroot", "", "serve: change filesystem root to `directory` before serving")
var setuid = flag.Int("setuid", -1, "serve: change user id before serving, -1=keep")

func main() {
	logWriter := nl.LogWriter()
	start := time.Now()
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Goldenedge Copyright (c) 2020 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (sobel|stats|compare|serve|legal|version) (img0.png ... imgn.png)

Commands:
  sobel   Detect edges and write <name>_padded.pgm and <name>_sobel.pgm per input image
  stats   Show input image statistics
  compare Compare pixel data of PGM file pairs a0.pgm b0.pgm ... an.pgm bn.pgm
  serve   Serve the HTTP API
  legal   Show license and attribution information
  version Show version information

Flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Initialize logging to file in addition to stdout, if selected
	if *log != "" {
		if err := nl.LogAlsoToFile(*log); err != nil {
			nl.LogFatalf("Unable to open logfile '%s': %s\n", *log, err.Error())
		}
	}
	defer nl.LogClose()

	// Enable CPU profiling if flagged
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			nl.LogFatalf("Could not create CPU profile: %s\n", err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			nl.LogFatalf("Could not start CPU profile: %s\n", err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		return
	}

	var err error
	switch args[0] {
	case "sobel":
		err = cmdSobel(args[1:], logWriter)

	case "stats":
		err = cmdStats(args[1:], logWriter)

	case "compare":
		err = cmdCompare(args[1:], logWriter)

	case "serve":
		if err = rest.MakeSandbox(logWriter, *chroot, *setuid); err == nil {
			rest.MaxThreads = *threads
			err = rest.Serve(*addr)
		}

	case "legal":
		fmt.Fprint(logWriter, legal)
		return

	case "version":
		fmt.Fprintf(logWriter, "Version %s\n", version)
		return

	case "help", "?":
		flag.Usage()
		return

	default:
		fmt.Fprintf(logWriter, "Unknown command '%s'\n\n", args[0])
		flag.Usage()
		nl.LogClose()
		os.Exit(2)
	}

	fmt.Fprintf(logWriter, "\nDone after %v\n", time.Since(start))
	if err != nil {
		fmt.Fprintf(logWriter, "Error: %s\n", err.Error())
		pprof.StopCPUProfile()
		nl.LogClose()
		os.Exit(1)
	}
}

// Detects edges in all input images and writes the golden files
func cmdSobel(args []string, logWriter io.Writer) error {
	opSobel := edge.NewOpSobel(*policy, *parallel)
	if _, err := opSobel.Policy(); err != nil {
		return err
	}
	seq := ops.NewOpSequence(
		ops.NewOpLoadMany(args),
		opSobel,
		edge.NewOpSaveGolden(*dir),
		ops.NewOpSave(*jpg),
	)
	return run(seq, logWriter)
}

// Shows statistics of all input images
func cmdStats(args []string, logWriter io.Writer) error {
	return run(ops.NewOpSequence(ops.NewOpLoadMany(args), edge.NewOpStats()), logWriter)
}

func run(seq *ops.OpSequence, logWriter io.Writer) error {
	c := ops.NewContext(logWriter, *threads)
	fmt.Fprintf(logWriter, "Running on %v\n", c)

	m, err := json.MarshalIndent(seq, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(logWriter, "Settings:\n%s\n", string(m))

	promises, err := seq.MakePromises(nil, c)
	if err != nil {
		return err
	}
	_, err = ops.MaterializeAll(promises, c.MaxThreads, true)
	return err
}

// Compares pixel data of PGM file pairs, showing the first mismatches of each pair
func cmdCompare(args []string, logWriter io.Writer) error {
	if len(args) == 0 || len(args)%2 != 0 {
		return fmt.Errorf("compare needs pairs of files, got %d arguments", len(args))
	}
	differ := 0
	for i := 0; i < len(args); i += 2 {
		fmt.Fprintf(logWriter, "\nComparing:\n  %s\n  %s\n", args[i], args[i+1])
		res, err := pgm.CompareFiles(args[i], args[i+1], *limit)
		if err != nil {
			return err
		}
		for j, m := range res.Mismatches {
			fmt.Fprintf(logWriter, "Mismatch %d at %v\n", j+1, m)
		}
		if res.Total == 0 {
			fmt.Fprintf(logWriter, "No mismatches found.\n")
			continue
		}
		differ++
		fmt.Fprintf(logWriter, "Found %d mismatches in total.\n", res.Total)
	}
	if differ > 0 {
		return fmt.Errorf("%d of %d file pairs differ", differ, len(args)/2)
	}
	return nil
}
