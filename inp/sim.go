// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.res) JSON file or a (.ini) file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/geertsma/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for analyses
type Data struct {
	Desc      string `json:"desc"`      // description of analysis
	DirOut    string `json:"dirout"`    // directory for output; e.g. /tmp/geertsma
	Stress    bool   `json:"stress"`    // compute stresses as well
	Plot      bool   `json:"plot"`      // plot results along profile (python backend)
	Png       bool   `json:"png"`       // save png figures along profile
	Xlsx      bool   `json:"xlsx"`      // also write results to a spreadsheet
	NoTable   bool   `json:"notable"`   // do not write table with results
	Precision int    `json:"precision"` // number of digits in output table; 0 => 8
}

// MatData holds the elastic parameters of the half-space
type MatData struct {
	Rock string  `json:"rock"` // name of reference rock; e.g. "sandstone". overrides E and nu
	E    float64 `json:"E"`    // Young's modulus [MPa]
	Nu   float64 `json:"nu"`   // Poisson's coefficient
}

// DiskData holds data of one disk-shaped reservoir
type DiskData struct {
	Desc string  `json:"desc"` // description; e.g. "north block"
	Y0   float64 `json:"y0"`   // y-coordinate of centre [m]
	X0   float64 `json:"x0"`   // x-coordinate of centre [m]
	D    float64 `json:"D"`    // depth of centre [m]
	R    float64 `json:"R"`    // radius [m]
	H    float64 `json:"h"`    // thickness [m]
	Dp   float64 `json:"dp"`   // change of pressure [MPa]
}

// Simulation holds all data for an analysis
type Simulation struct {

	// input
	Data   Data        `json:"data"`   // global data
	Mat    MatData     `json:"mat"`    // material data
	Disks  []*DiskData `json:"disks"`  // all disks
	Points PointsData  `json:"points"` // computation points

	// derived
	DirOut string    // directory to save results
	Key    string    // analysis key; e.g. field01.res => field01
	Rock   *ana.Rock // reference rock, if any
	E      float64   // Young's modulus
	Nu     float64   // Poisson's coefficient
}

// ReadSim reads all data from a .res JSON file or from a .ini file
func ReadSim(fnpath string, createDirOut bool) (o *Simulation, err error) {

	// read file
	o = new(Simulation)
	switch strings.ToLower(filepath.Ext(fnpath)) {
	case ".ini":
		err = o.readIni(fnpath)
	default:
		var b []byte
		b, err = os.ReadFile(os.ExpandEnv(fnpath))
		if err != nil {
			return nil, chk.Err("ReadSim: cannot read file %q:\n%v", fnpath, err)
		}
		err = json.Unmarshal(b, o)
		if err != nil {
			return nil, chk.Err("ReadSim: cannot unmarshal file %q:\n%v", fnpath, err)
		}
	}
	if err != nil {
		return nil, err
	}

	// filename key
	fnkey := io.FnKey(filepath.Base(fnpath))
	o.Key = fnkey

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/geertsma/" + fnkey
	}
	if o.Data.Precision < 1 {
		o.Data.Precision = 8
	}

	// check and set derived data
	err = o.PostProcess()
	if err != nil {
		return nil, err
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}
	return
}

// PostProcess checks data and sets material parameters
func (o *Simulation) PostProcess() (err error) {

	// material
	o.E, o.Nu = o.Mat.E, o.Mat.Nu
	if o.Mat.Rock != "" {
		o.Rock = new(ana.Rock)
		err = o.Rock.Init(o.Mat.Rock, "MPa")
		if err != nil {
			return
		}
		o.E, o.Nu = o.Rock.E, o.Rock.Nu
	}
	if !(o.E > 0) {
		return chk.Err("Young's modulus must be positive. E = %g is invalid", o.E)
	}
	if o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("Poisson's coefficient must be in [0, 0.5). nu = %g is invalid", o.Nu)
	}

	// disks
	if len(o.Disks) < 1 {
		return chk.Err("at least one disk must be given")
	}
	for i, d := range o.Disks {
		if d == nil {
			return chk.Err("disk # %d is empty", i)
		}
		if !(d.R > 0) || !(d.H > 0) {
			return chk.Err("disk # %d: radius and thickness must be positive. R = %g, h = %g is invalid", i, d.R, d.H)
		}
	}

	// points
	return o.Points.Check()
}

// GeertsmaDisks allocates the analytical solutions for all disks
func (o *Simulation) GeertsmaDisks() (disks ana.GeertsmaDisks, err error) {
	disks = make(ana.GeertsmaDisks, len(o.Disks))
	for i, d := range o.Disks {
		disks[i], err = ana.NewGeertsmaDisk(d.Vals(), d.Dp, o.Nu, o.E)
		if err != nil {
			return nil, chk.Err("disk # %d: %v", i, err)
		}
	}
	return
}

// Vals returns {y0, x0, D, R, h}
func (o DiskData) Vals() []float64 {
	return []float64{o.Y0, o.X0, o.D, o.R, o.H}
}

// String returns a summary of the analysis
func (o *Simulation) String() string {
	l := io.ArgsTable("ANALYSIS",
		"description", "desc", o.Data.Desc,
		"output directory", "dirout", o.DirOut,
		"compute stresses", "stress", o.Data.Stress,
		"Young's modulus", "E", o.E,
		"Poisson's coefficient", "nu", o.Nu,
		"number of disks", "ndisks", len(o.Disks),
		"type of points", "points", o.Points.Type,
	)
	return l
}
