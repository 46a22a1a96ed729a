// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/cpmech/geertsma/ana"

// Results holds the fields computed at all points
//  Note: Cartesian components are superposed over all disks; the radial/tangential
//        components (ur, sr, st) are only available when there is a single disk
type Results struct {
	Y, X, Z []float64            // coordinates of points
	Keys    []string             // keys of fields in output order; e.g. "uy", "ux", "uz"
	Fields  map[string][]float64 // [npts] values of each field
}

// NewResults allocates results
//  Input:
//   coords -- {Y, X, Z} coordinates of points
//   single -- only one disk => radial and tangential components are also stored
//   stress -- stresses are also computed
func NewResults(coords [][]float64, single, stress bool) (o *Results) {
	o = new(Results)
	o.Y, o.X, o.Z = coords[0], coords[1], coords[2]
	if single {
		o.Keys = append(o.Keys, "ur")
	}
	o.Keys = append(o.Keys, "uy", "ux", "uz")
	if stress {
		if single {
			o.Keys = append(o.Keys, "sr", "st")
		}
		o.Keys = append(o.Keys, "syy", "sxx", "syx", "szz")
	}
	npts := len(o.Y)
	o.Fields = make(map[string][]float64)
	for _, key := range o.Keys {
		o.Fields[key] = make([]float64, npts)
	}
	return
}

// Npoints returns the number of points
func (o *Results) Npoints() int {
	return len(o.Y)
}

// Has tells whether field named key is available
func (o *Results) Has(key string) bool {
	_, ok := o.Fields[key]
	return ok
}

// Compute computes fields at points in [start, end)
func (o *Results) Compute(disks ana.GeertsmaDisks, start, end int) {
	if len(disks) == 1 {
		o.computeSingle(disks[0], start, end)
		return
	}
	F := o.Fields
	stress := o.Has("szz")
	x := make([]float64, 3)
	for i := start; i < end; i++ {
		x[0], x[1], x[2] = o.Y[i], o.X[i], o.Z[i]
		F["uy"][i], F["ux"][i], F["uz"][i] = disks.Displ(x)
		if stress {
			F["syy"][i], F["sxx"][i], F["syx"][i], F["szz"][i] = disks.Stress(x)
		}
	}
}

// computeSingle evaluates one disk per point and stores both polar and Cartesian components
func (o *Results) computeSingle(d *ana.GeertsmaDisk, start, end int) {
	F := o.Fields
	stress := o.Has("szz")
	x := make([]float64, 3)
	for i := start; i < end; i++ {
		x[0], x[1], x[2] = o.Y[i], o.X[i], o.Z[i]
		ur, uz := d.Displ(x)
		F["ur"][i], F["uz"][i] = ur, uz
		F["uy"][i], F["ux"][i] = ana.CartesianDispl(x[0], x[1], d.Y0, d.X0, ur)
		if stress {
			sr, st, sz := d.Stress(x)
			F["sr"][i], F["st"][i], F["szz"][i] = sr, st, sz
			F["syy"][i], F["sxx"][i], F["syx"][i] = ana.HorizontalStresses(x[0], x[1], d.Y0, d.X0, sr, st)
		}
	}
}
