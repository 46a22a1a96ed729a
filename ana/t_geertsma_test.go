// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

var (
	tDisk    = []float64{0, 0, 1000, 500, 50}
	tDp      = -10.0
	tPoisson = 0.25
	tYoung   = 10000.0
)

func Test_geertsma01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geertsma01. input validation")

	coords := [][]float64{{0}, {0}, {0}}

	_, _, err := GeertsmaDisplacement(coords, []float64{0, 0, 1000, 500}, tDp, tPoisson, tYoung)
	if err == nil {
		tst.Errorf("disk with 4 values should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	_, _, _, err = GeertsmaStress(coords, []float64{0, 0, 1000, 500, 50, 1}, tDp, tPoisson, tYoung)
	if err == nil {
		tst.Errorf("disk with 6 values should have failed\n")
		return
	}

	_, _, err = GeertsmaDisplacement([][]float64{{0}, {0}}, tDisk, tDp, tPoisson, tYoung)
	if err == nil {
		tst.Errorf("coordinates with 2 rows should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	_, _, _, err = GeertsmaStress([][]float64{{0, 1}, {0}, {0, 1}}, tDisk, tDp, tPoisson, tYoung)
	if err == nil {
		tst.Errorf("rows with different lengths should have failed\n")
		return
	}

	_, _, err = GeertsmaDisplacement([][]float64{{}, {}, {}}, tDisk, tDp, tPoisson, tYoung)
	if err == nil {
		tst.Errorf("empty coordinates should have failed\n")
		return
	}

	_, err = NewGeertsmaDisk([]float64{0, 0, 1000, 0, 50}, tDp, tPoisson, tYoung)
	if err == nil {
		tst.Errorf("zero radius should have failed\n")
		return
	}

	var o GeertsmaDisk
	err = o.Init(dbf.Params{&dbf.P{N: "Rmax", V: 1}})
	if err == nil {
		tst.Errorf("invalid parameter name should have failed\n")
	}
}

func Test_geertsma02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geertsma02. regression values; depletion of 10 MPa")

	// points and reference values {ur, uz, sr, st, sz}
	X := [][]float64{
		{0, 0, 0},
		{300, 400, 0},
		{0, 1500, 0},
		{0, 0, 500},
		{200, 0, 1200},
		{0, 700, 1000},
	}
	ref := [][]float64{
		{0.0025617918905177627, 0.0028121514551666753, -0.025725139620228755, -0.02521775876885412, 0},
		{0.002448883873766092, 0.0023810726389186694, -0.017522786594380876, -0.0204432510267776, 0},
		{0.001599702584065405, 0.0009279865423197785, -5.545215490156126e-05, -0.006521135512134688, 0},
		{0.002702706430340857, 0.006609538662575259, -0.022945901680529193, -0.051380147690416794, -0.030589577394281864},
		{0.004734170393541314, -0.009393606894845651, -0.13338628532997715, -0.13737447739367714, -0.2571975957022639},
		{0.00676012593320297, 0.0019324664409664705, 0.21112343742978423, -0.08073916892294485, 0.14547495954377443},
	}

	coords := utl.Alloc(3, len(X))
	for i, x := range X {
		coords[0][i], coords[1][i], coords[2][i] = x[0], x[1], x[2]
	}
	ur, uz, err := GeertsmaDisplacement(coords, tDisk, tDp, tPoisson, tYoung)
	if err != nil {
		tst.Errorf("displacement failed: %v\n", err)
		return
	}
	sr, st, sz, err := GeertsmaStress(coords, tDisk, tDp, tPoisson, tYoung)
	if err != nil {
		tst.Errorf("stress failed: %v\n", err)
		return
	}

	for i := range X {
		io.Pforan("x = %v\n", X[i])
		chk.Float64(tst, "ur", 1e-13, ur[i], ref[i][0])
		chk.Float64(tst, "uz", 1e-13, uz[i], ref[i][1])
		chk.Float64(tst, "sr", 1e-12, sr[i], ref[i][2])
		chk.Float64(tst, "st", 1e-12, st[i], ref[i][3])
		chk.Float64(tst, "sz", 1e-12, sz[i], ref[i][4])
	}

	// surface above the centre: uz > 0 is downwards since z points down
	if uz[0] <= 0 {
		tst.Errorf("depletion must cause subsidence (uz > 0 with z downwards). uz = %g\n", uz[0])
	}
	if uz[0] < 1e-3 || uz[0] > 1e-1 {
		tst.Errorf("subsidence should be of the order of mm to cm. uz = %g\n", uz[0])
	}
}

func Test_geertsma03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geertsma03. linearity w.r.t pressure and rotational symmetry")

	o, err := NewGeertsmaDisk(tDisk, tDp, tPoisson, tYoung)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	p := *o
	p.Dp = -o.Dp

	for _, x := range [][]float64{{0, 0, 0}, {250, -100, 300}, {0, 800, 1000}, {-50, 20, 2500}} {
		ur, uz := o.Displ(x)
		vr, vz := p.Displ(x)
		sr, st, sz := o.Stress(x)
		tr, tt, tz := p.Stress(x)
		if ur != -vr || uz != -vz || sr != -tr || st != -tt || sz != -tz {
			tst.Errorf("fields must be exactly linear in Δp @ %v\n", x)
			return
		}
	}

	// rotation about the axis of the disk
	ρ, z := 600.0, 200.0
	ur0, uz0 := o.Displ([]float64{ρ, 0, z})
	sr0, st0, sz0 := o.Stress([]float64{ρ, 0, z})
	for _, θ := range utl.LinSpace(0, 2*math.Pi, 7) {
		x := []float64{ρ * math.Cos(θ), ρ * math.Sin(θ), z}
		ur, uz := o.Displ(x)
		sr, st, sz := o.Stress(x)
		chk.Float64(tst, io.Sf("ur(θ=%.3f)", θ), 1e-15, ur, ur0)
		chk.Float64(tst, io.Sf("uz(θ=%.3f)", θ), 1e-15, uz, uz0)
		chk.Float64(tst, io.Sf("sr(θ=%.3f)", θ), 1e-14, sr, sr0)
		chk.Float64(tst, io.Sf("st(θ=%.3f)", θ), 1e-14, st, st0)
		chk.Float64(tst, io.Sf("sz(θ=%.3f)", θ), 1e-14, sz, sz0)
	}

	// shifted disk
	q, err := NewGeertsmaDisk([]float64{1000, -2000, 1000, 500, 50}, tDp, tPoisson, tYoung)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	ur, uz := q.Displ([]float64{1000 + ρ, -2000, z})
	chk.Float64(tst, "ur(shifted)", 1e-15, ur, ur0)
	chk.Float64(tst, "uz(shifted)", 1e-15, uz, uz0)
}

func Test_geertsma04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geertsma04. far-field decay and free surface")

	var o GeertsmaDisk
	err := o.Init(nil)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	prev := make([]float64, 5)
	for i, d := range []float64{5e3, 1e4, 1e5, 1e6} {
		x := []float64{0, d, 0}
		ur, uz := o.Displ(x)
		sr, st, sz := o.Stress(x)
		curr := []float64{math.Abs(ur), math.Abs(uz), math.Abs(sr), math.Abs(st), math.Abs(sz)}
		io.Pforan("d = %g: %v\n", d, curr)
		if i > 0 {
			for j := range curr {
				if curr[j] > prev[j] {
					tst.Errorf("field %d must decay with distance: %g > %g\n", j, curr[j], prev[j])
					return
				}
			}
		}
		copy(prev, curr)
	}
	for _, v := range prev {
		if v > 1e-6 {
			tst.Errorf("far field should be negligible: %v\n", prev)
			return
		}
	}

	// traction-free surface
	for _, y := range []float64{0, 200, 700, 3000} {
		_, _, sz := o.Stress([]float64{y, 0, 0})
		chk.Float64(tst, io.Sf("sz(y=%g,z=0)", y), 1e-17, sz, 0)
	}
}

func Test_geertsma05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geertsma05. many points and permutations")

	n := 1000
	Y := utl.LinSpace(-3000, 3000, n)
	X := utl.LinSpace(2000, -1000, n)
	Z := utl.LinSpace(0, 2500, n)
	ur, uz, err := GeertsmaDisplacement([][]float64{Y, X, Z}, tDisk, tDp, tPoisson, tYoung)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	sr, st, sz, err := GeertsmaStress([][]float64{Y, X, Z}, tDisk, tDp, tPoisson, tYoung)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.IntAssert(len(ur), n)
	chk.IntAssert(len(uz), n)
	chk.IntAssert(len(sr), n)
	chk.IntAssert(len(st), n)
	chk.IntAssert(len(sz), n)

	// reversed order
	Yr, Xr, Zr := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		Yr[i], Xr[i], Zr[i] = Y[n-1-i], X[n-1-i], Z[n-1-i]
	}
	vr, vz, err := GeertsmaDisplacement([][]float64{Yr, Xr, Zr}, tDisk, tDp, tPoisson, tYoung)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	for i := 0; i < n; i++ {
		j := n - 1 - i
		if !same(ur[i], vr[j]) || !same(uz[i], vz[j]) {
			tst.Errorf("permuted point %d gives different results\n", i)
			return
		}
	}

	if chk.Verbose {
		plt.Reset(false, nil)
		plt.Subplot(2, 1, 1)
		plt.Plot(Z, ur, &plt.A{C: "r", L: "$u_r$"})
		plt.Plot(Z, uz, &plt.A{C: "b", L: "$u_z$"})
		plt.Gll("$z$", "displacement", nil)
		plt.Subplot(2, 1, 2)
		plt.Plot(Z, sr, &plt.A{C: "r", L: "$\\sigma_r$"})
		plt.Plot(Z, st, &plt.A{C: "g", L: "$\\sigma_\\theta$"})
		plt.Plot(Z, sz, &plt.A{C: "b", L: "$\\sigma_z$"})
		plt.Gll("$z$", "stress", nil)
		plt.Save("/tmp/geertsma", "fig_geertsma05")
	}
}

// same compares two values including NaN
func same(a, b float64) bool {
	if math.IsNaN(a) {
		return math.IsNaN(b)
	}
	return a == b
}

func Test_geertsma06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geertsma06. singular points give non-finite values")

	o, err := NewGeertsmaDisk(tDisk, tDp, tPoisson, tYoung)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// centre of the disk
	ur, _ := o.Displ([]float64{0, 0, 1000})
	if !math.IsNaN(ur) && !math.IsInf(ur, 0) {
		tst.Errorf("ur @ centre should be non-finite. %v is incorrect\n", ur)
	}

	// below the surface at r == R with z == 0 is regular
	uR, uZ := o.Displ([]float64{0, 0, 1000 - 500})
	if math.IsNaN(uR) || math.IsNaN(uZ) {
		tst.Errorf("point @ r == R above the disk should be finite: %v, %v\n", uR, uZ)
	}
}
