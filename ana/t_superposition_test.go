// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_polar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polar01. Cartesian components of radial fields")

	uy, ux := CartesianDispl(3, 4, 0, 0, 10)
	chk.Float64(tst, "uy", 1e-15, uy, 6)
	chk.Float64(tst, "ux", 1e-15, ux, 8)

	uy, ux = CartesianDispl(1, 2, 1, 2, 10)
	chk.Float64(tst, "uy @ axis", 1e-15, uy, 0)
	chk.Float64(tst, "ux @ axis", 1e-15, ux, 0)

	// along y: syy == sr, sxx == st
	syy, sxx, syx := HorizontalStresses(5, 0, 0, 0, -2, -3)
	chk.Float64(tst, "syy", 1e-15, syy, -2)
	chk.Float64(tst, "sxx", 1e-15, sxx, -3)
	chk.Float64(tst, "syx", 1e-15, syx, 0)

	// invariants
	sr, st := -1.5, 0.7
	syy, sxx, syx = HorizontalStresses(1, 2, -1, 0.5, sr, st)
	chk.Float64(tst, "trace", 1e-15, syy+sxx, sr+st)
	chk.Float64(tst, "det  ", 1e-15, syy*sxx-syx*syx, sr*st)
}

func Test_superposition01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("superposition01. two disks")

	a, err := NewGeertsmaDisk([]float64{0, 0, 1000, 500, 50}, -10, 0.25, 10000)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	b, err := NewGeertsmaDisk([]float64{0, 1200, 1000, 300, 20}, 5, 0.25, 10000)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	disks := GeertsmaDisks{a, b}
	err = disks.Check()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	x := []float64{150, 600, 0}
	uy, ux, uz := disks.Displ(x)
	io.Pforan("u = %v, %v, %v\n", uy, ux, uz)

	ura, uza := a.Displ(x)
	urb, uzb := b.Displ(x)
	chk.Float64(tst, "uz", 1e-17, uz, uza+uzb)

	// horizontal magnitude of each contribution
	ρa := math.Sqrt(150*150 + 600*600)
	ρb := math.Sqrt(150*150 + 600*600)
	chk.Float64(tst, "uy", 1e-17, uy, ura*150/ρa+urb*150/ρb)
	chk.Float64(tst, "ux", 1e-17, ux, ura*600/ρa+urb*(-600)/ρb)

	// single disk along its own y axis
	one := GeertsmaDisks{a}
	y := []float64{700, 0, 200}
	uy, ux, _ = one.Displ(y)
	ur, _ := a.Displ(y)
	chk.Float64(tst, "uy(single)", 1e-17, uy, ur)
	chk.Float64(tst, "ux(single)", 1e-17, ux, 0)
	syy, sxx, syx, szz := one.Stress(y)
	sr, st, sz := a.Stress(y)
	chk.Float64(tst, "syy(single)", 1e-15, syy, sr)
	chk.Float64(tst, "sxx(single)", 1e-15, sxx, st)
	chk.Float64(tst, "syx(single)", 1e-15, syx, 0)
	chk.Float64(tst, "szz(single)", 1e-15, szz, sz)

	if (GeertsmaDisks{}).Check() == nil {
		tst.Errorf("empty set of disks should have failed\n")
	}
}
