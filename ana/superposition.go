// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/chk"

// GeertsmaDisks holds a set of disks whose fields are superposed. The radial
// components of each disk are first converted to Cartesian components because
// each disk has its own axis.
type GeertsmaDisks []*GeertsmaDisk

// Displ computes the Cartesian displacements @ x = {y, x, z}
func (o GeertsmaDisks) Displ(x []float64) (uy, ux, uz float64) {
	for _, d := range o {
		ur, w := d.Displ(x)
		vy, vx := CartesianDispl(x[0], x[1], d.Y0, d.X0, ur)
		uy += vy
		ux += vx
		uz += w
	}
	return
}

// Stress computes the Cartesian stresses @ x = {y, x, z}
func (o GeertsmaDisks) Stress(x []float64) (syy, sxx, syx, szz float64) {
	for _, d := range o {
		sr, st, sz := d.Stress(x)
		a, b, c := HorizontalStresses(x[0], x[1], d.Y0, d.X0, sr, st)
		syy += a
		sxx += b
		syx += c
		szz += sz
	}
	return
}

// Check checks that there is at least one disk
func (o GeertsmaDisks) Check() error {
	if len(o) < 1 {
		return chk.Err("at least one disk is required")
	}
	for i, d := range o {
		if d == nil {
			return chk.Err("disk # %d is nil", i)
		}
	}
	return nil
}
