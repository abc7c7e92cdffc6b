// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package qx implements the btcdev commands. Every command takes its
// arguments as strings and returns the text to print, so the CLI driver
// stays a thin layer over this package.
package qx

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/tobysharp/btcdev/log"
	"github.com/tobysharp/btcdev/metrics"
)

func ErrExit(err error) {
	fmt.Fprintf(os.Stderr, "Error : %v\n", err)
	log.Close()
	os.Exit(1)
}

// decodeHex decodes a hex argument, naming it in the error.
func decodeHex(what, s string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s hex", what)
	}
	return data, nil
}

// row is one name and value line of a details table.
type row [2]string

// render returns value, or the rows as a table when showDetails is set.
func render(showDetails bool, value string, rows ...row) string {
	if !showDetails {
		return value
	}
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range rows {
		table.Append(r[:])
	}
	table.Render()
	return strings.TrimRight(b.String(), "\n")
}

// MetricsTable renders every collected metric, or "" when nothing was
// recorded.
func MetricsTable() string {
	samples := metrics.Snapshot()
	if len(samples) == 0 {
		return ""
	}
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"metric", "count", "mean"})
	for _, s := range samples {
		table.Append([]string{s.Name, fmt.Sprintf("%d", s.Count), fmt.Sprintf("%.0f", s.Mean)})
	}
	table.Render()
	return strings.TrimRight(b.String(), "\n")
}
