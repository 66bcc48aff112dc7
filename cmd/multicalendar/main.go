// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command multicalendar converts dates between the Gregorian and tabular
// Hijri calendars, prints month grids overlaid with the other calendar and
// reports the Javanese pasaran of Gregorian dates. All output is YAML.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: multicalendar
summary: convert dates between the Gregorian and tabular Hijri calendars
commands:
  - name: to-hijri
    summary: print the Hijri date, weekday and pasaran of Gregorian dates in yyyy-mm-dd or mm/dd/yyyy format
    arguments:
      - <date>
      - ...
  - name: to-gregorian
    summary: print the Gregorian date and weekday of Hijri dates in yyyy-mm-dd format
    arguments:
      - <date>
      - ...
  - name: month
    summary: print the grids for Hijri months, as a comma separated list, together with the Gregorian date of each day
    arguments:
      - <year>
      - <months>
  - name: gregorian-month
    summary: print the grids for Gregorian months, as a comma separated list, together with the Hijri date of each day
    arguments:
      - <year>
      - <months>
  - name: year
    summary: print the grids for all months of a Hijri year
    arguments:
      - <year>
  - name: gregorian-year
    summary: print the grids for all months of a Gregorian year
    arguments:
      - <year>
  - name: pasaran
    summary: print the Javanese pasaran of Gregorian dates, each argument may be a comma separated list
    arguments:
      - <date>
      - ...
`

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Adjust       Adjust `subcmd:"adjust,,'days by which the start of each Hijri day is moved later on the Gregorian calendar, overrides the config file when set'"`
	FirstWeekday string `subcmd:"first-weekday,,'first day of the week for month grids, sunday if not set here or in the config file'"`
	Config       string `subcmd:"config,,'optional YAML file with adjust and first_weekday settings'"`
}

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("to-hijri").MustRunnerAndFlags(
		withSettings(toHijri), subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("to-gregorian").MustRunnerAndFlags(
		withSettings(toGregorian), subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("month").MustRunnerAndFlags(
		withSettings(hijriMonth), subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("gregorian-month").MustRunnerAndFlags(
		withSettings(gregorianMonth), subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("year").MustRunnerAndFlags(
		withSettings(hijriYear), subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("gregorian-year").MustRunnerAndFlags(
		withSettings(gregorianYear), subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("pasaran").MustRunnerAndFlags(
		withSettings(pasaran), subcmd.MustRegisteredFlagSet(&CommonFlags{}))
}

type commandFunc func(ctx context.Context, s settings, args []string) error

// withSettings creates the logger and resolves the flag and config file
// settings before invoking fn.
func withSettings(fn commandFunc) subcmd.Runner {
	return func(ctx context.Context, values any, args []string) error {
		cl := values.(*CommonFlags)
		logger, err := cl.LoggingConfig().NewLogger()
		if err != nil {
			return err
		}
		defer logger.Close()
		ctx = ctxlog.Context(ctx, logger.Logger)
		s, err := cl.settings(ctx)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("settings", "adjust", s.adjust, "first_weekday", s.first.String(), "args", args)
		s.out = os.Stdout
		return fn(ctx, s, args)
	}
}

func main() {
	if err := cmdSet.Dispatch(context.Background()); err != nil {
		cmdutil.Exit("%v", err)
	}
}
