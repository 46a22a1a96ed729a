// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// GeertsmaDisk implements Geertsma's solution for the displacements and stresses around a
// disk-shaped reservoir in an elastic half-space subjected to a uniform change of pressure Δp.
// The solution is valid outside the reservoir (Fjær et al. 2008, Appendix D-5).
//
//      free surface (z = 0)          z is positive downwards
//   ---------------------------------------> y,x
//                  |
//                  | D
//                  |       R
//           +------o------+  ↕ h
//                Δp, E, ν
//                  |
//                  ↓ z
//
//  Units: lengths in [m]; E and Δp in [MPa]
//  Note: uz > 0 means downward displacement; e.g. depletion (Δp < 0) gives subsidence
type GeertsmaDisk struct {

	// input
	Y0 float64 // y-coordinate of centre
	X0 float64 // x-coordinate of centre
	D  float64 // depth of centre
	R  float64 // radius
	H  float64 // thickness
	Dp float64 // change of pressure; positive means increase
	Nu float64 // Poisson's coefficient of the half-space
	E  float64 // Young's modulus of the half-space

	// derived
	cm float64 // compaction coefficient
	gm float64 // shear modulus
}

// NewGeertsmaDisk returns a new structure with disk = {y0, x0, D, R, h}
func NewGeertsmaDisk(disk []float64, pressure, poisson, young float64) (o *GeertsmaDisk, err error) {
	if len(disk) != 5 {
		return nil, chk.Err("disk must contain y0, x0, D, R and h. len(disk) = %d is invalid", len(disk))
	}
	o = &GeertsmaDisk{
		Y0: disk[0],
		X0: disk[1],
		D:  disk[2],
		R:  disk[3],
		H:  disk[4],
		Dp: pressure,
		Nu: poisson,
		E:  young,
	}
	err = o.PostProcess()
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises this structure
func (o *GeertsmaDisk) Init(prms dbf.Params) (err error) {

	// default values
	o.D = 1000.0
	o.R = 500.0
	o.H = 50.0
	o.Dp = -10.0
	o.Nu = 0.25
	o.E = 10000.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "y0":
			o.Y0 = p.V
		case "x0":
			o.X0 = p.V
		case "D":
			o.D = p.V
		case "R":
			o.R = p.V
		case "h":
			o.H = p.V
		case "dp":
			o.Dp = p.V
		case "nu":
			o.Nu = p.V
		case "E":
			o.E = p.V
		default:
			return chk.Err("GeertsmaDisk: parameter named %q is invalid", p.N)
		}
	}
	return o.PostProcess()
}

// PostProcess checks the input data and computes derived quantities
func (o *GeertsmaDisk) PostProcess() (err error) {
	if !(o.R > 0) {
		return chk.Err("radius of disk must be positive. R = %g is invalid", o.R)
	}
	if !(o.H > 0) {
		return chk.Err("thickness of disk must be positive. h = %g is invalid", o.H)
	}
	if !(o.E > 0) {
		return chk.Err("Young's modulus must be positive. E = %g is invalid", o.E)
	}
	o.cm = Cm(o.Nu, o.E)
	o.gm = G(o.Nu, o.E)
	return
}

// Vals returns the geometry of the disk as {y0, x0, D, R, h}
func (o GeertsmaDisk) Vals() []float64 {
	return []float64{o.Y0, o.X0, o.D, o.R, o.H}
}

// geometry computes the quantities needed by the integrals
//  Output:
//   Z  -- vertical coordinate relative to the centre of the disk
//   r  -- distance from the centre of the disk
//   Z2 -- vertical coordinate of the image point: Z + 2D
func (o GeertsmaDisk) geometry(x []float64) (Z, r, Z2 float64) {
	Y := x[0] - o.Y0
	X := x[1] - o.X0
	Z = x[2] - o.D
	r = math.Sqrt(Y*Y + X*X + Z*Z)
	Z2 = Z + 2.0*o.D
	return
}

// Displ computes the radial and vertical displacements @ x = {y, x, z}
//  Note: the last term of both components is multiplied by the unshifted z of the point
func (o GeertsmaDisk) Displ(x []float64) (ur, uz float64) {
	Z, r, Z2 := o.geometry(x)
	R, ν, z := o.R, o.Nu, x[2]
	a := 3.0 - 4.0*ν
	ur = -o.Dp * (I1(math.Abs(Z), r, R) + a*I1(Z2, r, R) - 2.0*z*I2(Z2, r, R))
	uz = o.Dp * (Sign(Z)*I3(math.Abs(Z), r, R) - a*I3(Z2, r, R) - 2.0*z*I4(Z2, r, R))
	c := o.cm * R * o.H / 2.0
	return ur * c, uz * c
}

// Stress computes the radial, tangential and vertical stresses @ x = {y, x, z}
func (o GeertsmaDisk) Stress(x []float64) (sr, st, sz float64) {
	Z, r, Z2 := o.geometry(x)
	R, ν, z := o.R, o.Nu, x[2]
	a := 3.0 - 4.0*ν

	// integrals
	q := math.Abs(Z)
	i1q, i1z := I1(q, r, R), I1(Z2, r, R)
	i2z := I2(Z2, r, R)
	i4q, i4z := I4(q, r, R), I4(Z2, r, R)
	i6z := I6(Z2, r, R)

	// components
	sr = o.Dp * (i4q + 3.0*i4z - 2.0*z*i6z - i1q/r + a*i1z/r - 2.0*z*i2z/r)
	st = o.Dp * (4.0*ν*i4z + i1q/r + a*i1z/r - 2.0*z*i2z/r)
	sz = -o.Dp * (-i4q + i4z + 2.0*z*i6z)

	c := o.gm * o.cm * R * o.H
	return sr * c, st * c, sz * c
}

// checkCoords checks that coordinates = {Y, X, Z} has 3 rows with the same length
func checkCoords(coordinates [][]float64) (npts int, err error) {
	if len(coordinates) != 3 {
		return 0, chk.Err("coordinates must have 3 rows (y, x, z). %d rows is invalid", len(coordinates))
	}
	npts = len(coordinates[0])
	if npts < 1 {
		return 0, chk.Err("coordinates must have at least one point")
	}
	if len(coordinates[1]) != npts || len(coordinates[2]) != npts {
		return 0, chk.Err("rows of coordinates must have the same length. len(y)=%d, len(x)=%d, len(z)=%d", npts, len(coordinates[1]), len(coordinates[2]))
	}
	return
}

// DisplAll computes the displacements at all points in coordinates = {Y, X, Z}
func (o GeertsmaDisk) DisplAll(coordinates [][]float64) (ur, uz []float64, err error) {
	npts, err := checkCoords(coordinates)
	if err != nil {
		return
	}
	ur = make([]float64, npts)
	uz = make([]float64, npts)
	x := make([]float64, 3)
	for i := 0; i < npts; i++ {
		x[0], x[1], x[2] = coordinates[0][i], coordinates[1][i], coordinates[2][i]
		ur[i], uz[i] = o.Displ(x)
	}
	return
}

// StressAll computes the stresses at all points in coordinates = {Y, X, Z}
func (o GeertsmaDisk) StressAll(coordinates [][]float64) (sr, st, sz []float64, err error) {
	npts, err := checkCoords(coordinates)
	if err != nil {
		return
	}
	sr = make([]float64, npts)
	st = make([]float64, npts)
	sz = make([]float64, npts)
	x := make([]float64, 3)
	for i := 0; i < npts; i++ {
		x[0], x[1], x[2] = coordinates[0][i], coordinates[1][i], coordinates[2][i]
		sr[i], st[i], sz[i] = o.Stress(x)
	}
	return
}

// GeertsmaDisplacement computes the radial and vertical components of the displacement field
// produced by a disk-shaped reservoir with centre at (y0, x0, D), radius R and thickness h
//  Input:
//   coordinates -- [3][npts] y, x and z coordinates of the computation points [m]
//   disk        -- {y0, x0, D, R, h} [m]
//   pressure    -- change of pressure of the reservoir [MPa]
//   poisson     -- Poisson's coefficient
//   young       -- Young's modulus [MPa]
//  Output:
//   ur, uz -- [npts] radial and vertical displacements [m]
//  Note: points on the rim of the disk (or on its centre) give non-finite values
func GeertsmaDisplacement(coordinates [][]float64, disk []float64, pressure, poisson, young float64) (ur, uz []float64, err error) {
	o, err := NewGeertsmaDisk(disk, pressure, poisson, young)
	if err != nil {
		return
	}
	return o.DisplAll(coordinates)
}

// GeertsmaStress computes the radial, tangential and vertical components of the stress field
// produced by a disk-shaped reservoir with centre at (y0, x0, D), radius R and thickness h
//  Input: same as GeertsmaDisplacement
//  Output:
//   sr, st, sz -- [npts] radial, tangential and vertical stresses [MPa]
func GeertsmaStress(coordinates [][]float64, disk []float64, pressure, poisson, young float64) (sr, st, sz []float64, err error) {
	o, err := NewGeertsmaDisk(disk, pressure, poisson, young)
	if err != nil {
		return
	}
	return o.StressAll(coordinates)
}
