// Copyright (c) 2017-2019 The Qitmeer developers
//
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics counts the work done by the signing engine. Counters
// are real only once collection is enabled; before that every constructor
// hands out a NOP stub.
package metrics

import (
	"os"
	"sort"
	"strings"

	"github.com/rcrowley/go-metrics"
	"github.com/tobysharp/btcdev/log"
)

// MetricsEnabledFlag is the CLI flag name to use to enable metrics collections.
const MetricsEnabledFlag = "metrics"

// Enabled is the flag specifying if metrics are enable or not.
var Enabled = false

// Init enables or disables the metrics system. Since we need this to run before
// any other code gets to create meters and timers, we'll actually do an ugly hack
// and peek into the command line args for the metrics flag.
func init() {
	for _, arg := range os.Args {
		if strings.TrimLeft(arg, "-") == MetricsEnabledFlag {
			log.Debug("Enabling metrics collection")
			Enabled = true
		}
	}
}

// NewCounter create a new metrics Counter, either a real one of a NOP stub depending
// on the metrics flag.
func NewCounter(name string) metrics.Counter {
	if !Enabled {
		return new(metrics.NilCounter)
	}
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

// NewMeter create a new metrics Meter, either a real one of a NOP stub depending
// on the metrics flag.
func NewMeter(name string) metrics.Meter {
	if !Enabled {
		return new(metrics.NilMeter)
	}
	return metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry)
}

// NewTimer create a new metrics Timer, either a real one of a NOP stub depending
// on the metrics flag.
func NewTimer(name string) metrics.Timer {
	if !Enabled {
		return new(metrics.NilTimer)
	}
	return metrics.GetOrRegisterTimer(name, metrics.DefaultRegistry)
}

// Sample is one registered metric reduced to a count and, for timers, the
// mean duration in nanoseconds.
type Sample struct {
	Name  string
	Count int64
	Mean  float64
}

// Snapshot returns every metric in the default registry ordered by name.
func Snapshot() []Sample {
	return SnapshotOf(metrics.DefaultRegistry)
}

func SnapshotOf(r metrics.Registry) []Sample {
	var out []Sample
	r.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case metrics.Counter:
			out = append(out, Sample{Name: name, Count: m.Count()})
		case metrics.Meter:
			s := m.Snapshot()
			out = append(out, Sample{Name: name, Count: s.Count(), Mean: s.RateMean()})
		case metrics.Timer:
			s := m.Snapshot()
			out = append(out, Sample{Name: name, Count: s.Count(), Mean: s.Mean()})
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
