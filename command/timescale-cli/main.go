// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "timescale-cli"
	app.Usage = "inspect leap-second-aware timestamps"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Commands = []cli.Command{
		{
			Name:      "show",
			Usage:     "render a timestamp as a fixed-point decimal",
			ArgsUsage: "SECONDS",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "precision, p",
					Value: 9,
					Usage: " maximum fractional digits `N`",
				},
				cli.IntFlag{
					Name:  "width, w",
					Value: 1,
					Usage: " minimum integer part width `N`",
				},
				cli.Int64Flag{
					Name:  "leap, l",
					Value: 0,
					Usage: " leap second adjustment `N`",
				},
			},
			Action: runShow,
		},
		{
			Name:      "calendar",
			Usage:     "decompose a timestamp for calendar formatting",
			ArgsUsage: "SECONDS",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "leap, l",
					Value: 0,
					Usage: " leap second adjustment `N`",
				},
			},
			Action: runCalendar,
		},
		{
			Name:      "tai",
			Usage:     "convert between UTC timestamps and TAI seconds",
			ArgsUsage: "SECONDS",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " treat the argument as TAI seconds",
				},
			},
			Action: runTAI,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
