// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of results: tables, summaries and plots
package out

import (
	"bytes"
	"math"
	"path/filepath"

	"github.com/cpmech/geertsma/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Stat holds statistics of one field
type Stat struct {
	Key      string  // key of field; e.g. "uz"
	Min      float64 // min finite value
	Max      float64 // max finite value
	Imin     int     // index of point with min value
	Imax     int     // index of point with max value
	Nonfinit int     // number of non-finite values (e.g. points on the rim of a disk)
}

// Table returns a buffer with a whitespace-separated table of results
//  prec -- number of significant digits
func Table(res *sim.Results, prec int) (buf *bytes.Buffer) {
	if prec < 1 {
		chk.Panic("precision must be positive. prec = %d is invalid", prec)
	}
	wid := prec + 8
	sfmt := io.Sf("%%%ds", wid)
	nfmt := io.Sf("%%%d.%de", wid, prec)
	buf = new(bytes.Buffer)
	for _, key := range append([]string{"y", "x", "z"}, res.Keys...) {
		io.Ff(buf, sfmt, key)
	}
	io.Ff(buf, "\n")
	for i := 0; i < res.Npoints(); i++ {
		io.Ff(buf, nfmt, res.Y[i])
		io.Ff(buf, nfmt, res.X[i])
		io.Ff(buf, nfmt, res.Z[i])
		for _, key := range res.Keys {
			io.Ff(buf, nfmt, res.Fields[key][i])
		}
		io.Ff(buf, "\n")
	}
	return
}

// WriteTable writes table with results to dirout/fnkey.txt
func WriteTable(dirout, fnkey string, res *sim.Results, prec int) (fn string) {
	fn = filepath.Join(dirout, fnkey+".txt")
	io.WriteFile(fn, Table(res, prec))
	return
}

// Summary computes statistics of all fields
func Summary(res *sim.Results) (stats []*Stat) {
	for _, key := range res.Keys {
		vals := res.Fields[key]
		idx := make([]int, 0, len(vals))
		fin := make([]float64, 0, len(vals))
		for i, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			idx = append(idx, i)
			fin = append(fin, v)
		}
		s := &Stat{Key: key, Nonfinit: len(vals) - len(fin), Imin: -1, Imax: -1}
		if len(fin) > 0 {
			imin, imax := floats.MinIdx(fin), floats.MaxIdx(fin)
			s.Min, s.Max = fin[imin], fin[imax]
			s.Imin, s.Imax = idx[imin], idx[imax]
		}
		stats = append(stats, s)
	}
	return
}

// SummaryString returns a table with statistics
func SummaryString(stats []*Stat) string {
	l := io.Sf("%6s%6s%16s%16s%8s%8s%10s\n", "field", "unit", "min", "max", "imin", "imax", "nonfinite")
	for _, s := range stats {
		l += io.Sf("%6s%6s%16.8e%16.8e%8d%8d%10d\n", s.Key, GetUnit(s.Key), s.Min, s.Max, s.Imin, s.Imax, s.Nonfinit)
	}
	return l
}
