// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/timescale/leapseconds"
	"github.com/bitmark-inc/timescale/timestamp"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "precision", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "width", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'w'},
		{Long: "leap", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--precision=N] [--width=N] [--leap=N] seconds...", program)
	}

	verbose := len(options["verbose"]) > 0

	maxPrec := 9
	if len(options["precision"]) > 0 {
		maxPrec, err = strconv.Atoi(options["precision"][0])
		if nil != err {
			exitwithstatus.Message("%s: invalid precision: %s", program, err)
		}
	}

	secsWidth := 1
	if len(options["width"]) > 0 {
		secsWidth, err = strconv.Atoi(options["width"][0])
		if nil != err {
			exitwithstatus.Message("%s: invalid width: %s", program, err)
		}
	}

	leapAdjust := int64(0)
	if len(options["leap"]) > 0 {
		leapAdjust, err = strconv.ParseInt(options["leap"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: invalid leap count: %s", program, err)
		}
	}

	// start logging
	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "timescale-info.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: "error",
		},
	}
	if verbose {
		logging.Levels[logger.DefaultTag] = "info"
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	log.Infof("version: %s", version)

	for _, argument := range arguments {

		seconds, err := strconv.ParseFloat(argument, 64)
		if nil != err {
			exitwithstatus.Message("%s: invalid seconds value: %q  error: %s", program, argument, err)
		}

		ts := timestamp.FromFloat(seconds).WithLeapAdjust(leapAdjust)
		log.Infof("timestamp: %s", ts)

		secs, frac, leap := ts.CalendarSeconds()

		fmt.Printf("show:     %s\n", ts.Show(maxPrec, secsWidth))
		fmt.Printf("calendar: seconds: %d  fraction: %g  leap: %d\n", secs, frac, leap)
		fmt.Printf("tai:      %s\n", leapseconds.ToTAI(ts))
	}
}
