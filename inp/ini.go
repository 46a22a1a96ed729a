// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"gopkg.in/ini.v1"
)

// readIni reads a single-disk analysis from a .ini file
//
//   desc   = surface subsidence
//   stress = false
//
//   [material]
//   rock = sandstone      ; or E and nu
//
//   [disk]
//   D = 1000
//   R = 500
//   h = 50
//   dp = -10
//
//   [grid]                ; or [profile] with p0, p1 and n; or [list] with y, x and z
//   ymin = -3000
//   ...
func (o *Simulation) readIni(fnpath string) (err error) {

	// load file
	cfg, err := ini.Load(fnpath)
	if err != nil {
		return chk.Err("ReadSim: cannot load ini file %q:\n%v", fnpath, err)
	}

	// global data
	top := cfg.Section("")
	o.Data.Desc = top.Key("desc").String()
	o.Data.DirOut = top.Key("dirout").String()
	o.Data.Stress = top.Key("stress").MustBool(false)
	o.Data.Plot = top.Key("plot").MustBool(false)
	o.Data.Png = top.Key("png").MustBool(false)
	o.Data.Xlsx = top.Key("xlsx").MustBool(false)
	o.Data.NoTable = top.Key("notable").MustBool(false)
	o.Data.Precision = top.Key("precision").MustInt(8)

	// material
	mat := cfg.Section("material")
	o.Mat.Rock = mat.Key("rock").String()
	o.Mat.E = mat.Key("E").MustFloat64(0)
	o.Mat.Nu = mat.Key("nu").MustFloat64(0)

	// disk
	sec, err := cfg.GetSection("disk")
	if err != nil {
		return chk.Err("ini file %q must have a [disk] section", fnpath)
	}
	o.Disks = []*DiskData{{
		Desc: sec.Key("desc").String(),
		Y0:   sec.Key("y0").MustFloat64(0),
		X0:   sec.Key("x0").MustFloat64(0),
		D:    sec.Key("D").MustFloat64(0),
		R:    sec.Key("R").MustFloat64(0),
		H:    sec.Key("h").MustFloat64(0),
		Dp:   sec.Key("dp").MustFloat64(0),
	}}

	// points
	if sec, err = cfg.GetSection("grid"); err == nil {
		o.Points = PointsData{
			Type: "grid",
			Ymin: sec.Key("ymin").MustFloat64(0),
			Ymax: sec.Key("ymax").MustFloat64(0),
			Xmin: sec.Key("xmin").MustFloat64(0),
			Xmax: sec.Key("xmax").MustFloat64(0),
			Ny:   sec.Key("ny").MustInt(1),
			Nx:   sec.Key("nx").MustInt(1),
			Zc:   sec.Key("zc").MustFloat64(0),
		}
		return nil
	}
	if sec, err = cfg.GetSection("profile"); err == nil {
		o.Points = PointsData{
			Type: "profile",
			P0:   sec.Key("p0").Float64s(","),
			P1:   sec.Key("p1").Float64s(","),
			N:    sec.Key("n").MustInt(2),
		}
		return nil
	}
	if sec, err = cfg.GetSection("list"); err == nil {
		o.Points = PointsData{
			Type: "list",
			Y:    sec.Key("y").Float64s(","),
			X:    sec.Key("x").Float64s(","),
			Z:    sec.Key("z").Float64s(","),
		}
		return nil
	}
	return chk.Err("ini file %q must have a [grid], [profile] or [list] section", fnpath)
}
