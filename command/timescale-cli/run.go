// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/timescale/leapseconds"
	"github.com/bitmark-inc/timescale/timespan"
	"github.com/bitmark-inc/timescale/timestamp"
)

// argumentSpan - first argument as a span of seconds
func argumentSpan(c *cli.Context) (timespan.Timespan, error) {
	argument := c.Args().First()
	if "" == argument {
		return timespan.Zero, fmt.Errorf("missing seconds argument")
	}
	seconds, err := strconv.ParseFloat(argument, 64)
	if nil != err {
		return timespan.Zero, fmt.Errorf("invalid seconds value: %q  error: %s", argument, err)
	}
	return timespan.FromFloat(seconds), nil
}

// argumentTimestamp - first argument plus leap flag as a timestamp
func argumentTimestamp(c *cli.Context) (timestamp.Timestamp, error) {
	span, err := argumentSpan(c)
	if nil != err {
		return timestamp.Zero, err
	}
	return timestamp.New(span).WithLeapAdjust(c.Int64("leap")), nil
}

func runShow(c *cli.Context) error {
	ts, err := argumentTimestamp(c)
	if nil != err {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\n", ts.Show(c.Int("precision"), c.Int("width")))
	return nil
}

func runCalendar(c *cli.Context) error {
	ts, err := argumentTimestamp(c)
	if nil != err {
		return err
	}
	seconds, frac, leap := ts.CalendarSeconds()
	fmt.Fprintf(c.App.Writer, "seconds: %d  fraction: %g  leap: %d\n", seconds, frac, leap)
	return nil
}

func runTAI(c *cli.Context) error {
	if c.Bool("reverse") {
		span, err := argumentSpan(c)
		if nil != err {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s\n", leapseconds.FromTAI(span))
		return nil
	}

	ts, err := argumentTimestamp(c)
	if nil != err {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\n", leapseconds.ToTAI(ts))
	return nil
}
