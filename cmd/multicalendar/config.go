// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/multicalendar/datetime"
	"cloudeng.io/multicalendar/datetime/hijri"
)

// Config represents the optional YAML configuration file. Values set
// on the command line take precedence.
type Config struct {
	Adjust       int    `yaml:"adjust"`
	FirstWeekday string `yaml:"first_weekday"`
}

type settings struct {
	adjust int
	first  time.Weekday
	out    io.Writer
}

func (s settings) calendarOptions() []hijri.CalendarOption {
	return []hijri.CalendarOption{
		hijri.WithAdjust(s.adjust),
		hijri.WithFirstWeekday(s.first),
	}
}

// Adjust represents an int flag.Value that records whether it was
// set on the command line.
type Adjust struct {
	value int
	set   bool
}

// Set implements flag.Value.
func (af *Adjust) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid adjust: %q: %w", v, err)
	}
	af.value = n
	af.set = true
	return nil
}

// String implements flag.Value.
func (af *Adjust) String() string {
	if af == nil || !af.set {
		return ""
	}
	return strconv.Itoa(af.value)
}

// Get implements flag.Getter.
func (af *Adjust) Get() any {
	return af.value
}

// IsDefault returns true if the value has not been set.
func (af *Adjust) IsDefault() bool {
	return !af.set
}

func (cl *CommonFlags) settings(ctx context.Context) (settings, error) {
	var cfg Config
	if len(cl.Config) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, cl.Config, &cfg); err != nil {
			return settings{}, fmt.Errorf("failed to parse config file %q: %w", cl.Config, err)
		}
		ctxlog.Logger(ctx).Info("loaded config", "file", cl.Config)
	}
	return resolveSettings(cfg, cl.Adjust, cl.FirstWeekday)
}

// resolveSettings merges the config file with the command line, any
// flag that was set takes precedence over the config file.
func resolveSettings(cfg Config, adjust Adjust, firstWeekday string) (settings, error) {
	s := settings{adjust: cfg.Adjust, first: time.Sunday}
	if !adjust.IsDefault() {
		s.adjust = adjust.value
	}
	day := cfg.FirstWeekday
	if len(firstWeekday) > 0 {
		day = firstWeekday
	}
	if len(day) > 0 {
		wd, err := datetime.ParseWeekday(day)
		if err != nil {
			return settings{}, err
		}
		s.first = wd
	}
	return s, nil
}
