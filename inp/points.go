// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// PointsData holds the definition of computation points
//
//   type = "list"    => Y, X and Z hold the coordinates of all points
//   type = "grid"    => horizontal grid at depth Zc:  [Ymin,Ymax]×[Xmin,Xmax] with Ny×Nx points
//   type = "profile" => N points along the straight line from P0 to P1
//
//  Note: z is positive downwards; z = 0 is the free surface
type PointsData struct {
	Type string `json:"type"` // "list", "grid" or "profile"

	// list
	Y []float64 `json:"y"` // y-coordinates
	X []float64 `json:"x"` // x-coordinates
	Z []float64 `json:"z"` // z-coordinates

	// grid
	Ymin float64 `json:"ymin"` // min y
	Ymax float64 `json:"ymax"` // max y
	Xmin float64 `json:"xmin"` // min x
	Xmax float64 `json:"xmax"` // max x
	Ny   int     `json:"ny"`   // number of points along y
	Nx   int     `json:"nx"`   // number of points along x
	Zc   float64 `json:"zc"`   // depth of grid

	// profile
	P0 []float64 `json:"p0"` // first point {y, x, z}
	P1 []float64 `json:"p1"` // last point {y, x, z}
	N  int       `json:"n"`  // number of points
}

// Check checks the definition of points
func (o *PointsData) Check() error {
	switch o.Type {
	case "list":
		if len(o.Y) < 1 {
			return chk.Err("list of points must have at least one point")
		}
		if len(o.X) != len(o.Y) || len(o.Z) != len(o.Y) {
			return chk.Err("y, x and z must have the same length. %d, %d, %d is invalid", len(o.Y), len(o.X), len(o.Z))
		}
	case "grid":
		if o.Ny < 1 || o.Nx < 1 {
			return chk.Err("grid must have at least one point along y and x. ny = %d, nx = %d is invalid", o.Ny, o.Nx)
		}
	case "profile":
		if len(o.P0) != 3 || len(o.P1) != 3 {
			return chk.Err("p0 and p1 must have 3 coordinates {y, x, z}")
		}
		if o.N < 2 {
			return chk.Err("profile must have at least 2 points. n = %d is invalid", o.N)
		}
	default:
		return chk.Err("type of points %q is invalid; options are \"list\", \"grid\" and \"profile\"", o.Type)
	}
	return nil
}

// Npoints returns the number of points
func (o *PointsData) Npoints() int {
	switch o.Type {
	case "list":
		return len(o.Y)
	case "grid":
		return o.Ny * o.Nx
	case "profile":
		return o.N
	}
	return 0
}

// Coords returns the coordinates of all points as {Y, X, Z}
func (o *PointsData) Coords() (coords [][]float64) {
	switch o.Type {
	case "list":
		coords = [][]float64{o.Y, o.X, o.Z}
	case "grid":
		ys := linspace(o.Ymin, o.Ymax, o.Ny)
		xs := linspace(o.Xmin, o.Xmax, o.Nx)
		coords = utl.Alloc(3, o.Ny*o.Nx)
		k := 0
		for _, x := range xs {
			for _, y := range ys {
				coords[0][k], coords[1][k], coords[2][k] = y, x, o.Zc
				k++
			}
		}
	case "profile":
		coords = make([][]float64, 3)
		for i := 0; i < 3; i++ {
			coords[i] = utl.LinSpace(o.P0[i], o.P1[i], o.N)
		}
	default:
		chk.Panic("cannot compute coordinates of points with type %q", o.Type)
	}
	return
}

// Distances returns the distance of each point of a profile to P0
func (o *PointsData) Distances() (d []float64) {
	if o.Type != "profile" {
		chk.Panic("distances are only available for profiles")
	}
	L := math.Sqrt(sq(o.P1[0]-o.P0[0]) + sq(o.P1[1]-o.P0[1]) + sq(o.P1[2]-o.P0[2]))
	return utl.LinSpace(0, L, o.N)
}

func linspace(a, b float64, n int) []float64 {
	if n == 1 {
		return []float64{a}
	}
	return utl.LinSpace(a, b, n)
}

func sq(x float64) float64 { return x * x }
