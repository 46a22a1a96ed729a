// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Rock holds elastic parameters of some reference reservoir and overburden rocks
type Rock struct {

	// input
	Type     string // type of rock; e.g. "sandstone"
	UnitPres string // unit of pressure

	// derived
	Desc string  // description
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	G    float64 // shear modulus
	Cm   float64 // uniaxial compaction coefficient [1/UnitPres]
}

// rockdb holds typical values [MPa] and [-]
var rockdb = map[string]struct {
	desc string
	E    float64
	nu   float64
}{
	"sandstone":      {"Sandstone: consolidated", 10000.0, 0.25},
	"sandstone-weak": {"Sandstone: weakly consolidated", 2000.0, 0.30},
	"shale":          {"Shale: overburden", 5000.0, 0.30},
	"chalk":          {"Chalk: high porosity", 3000.0, 0.25},
	"limestone":      {"Limestone: tight", 40000.0, 0.28},
	"salt":           {"Salt: rock salt", 20000.0, 0.35},
}

// RockTypes returns the names of all available rocks
func RockTypes() (names []string) {
	for name := range rockdb {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Init initialises rock parameters
//  Input:
//   unitPres:  "kPa" => E:[kPa], Cm:[1/kPa]
//  		    "MPa" => E:[MPa], Cm:[1/MPa]
//  		    "GPa" => E:[GPa], Cm:[1/GPa]
func (o *Rock) Init(typ, unitPres string) (err error) {

	// rock data
	dat, ok := rockdb[typ]
	if !ok {
		return chk.Err("rock type %q is unavailable. options are %v", typ, RockTypes())
	}
	o.Type = typ
	o.Desc = dat.desc
	o.E = dat.E
	o.Nu = dat.nu

	// set unit
	o.UnitPres = unitPres
	MPa_to_unitPres := 1.0
	switch unitPres {
	case "kPa":
		MPa_to_unitPres = 1e3
	case "MPa":
	case "GPa":
		MPa_to_unitPres = 1e-3
	default:
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}

	// convert values to requested units
	o.E = o.E * MPa_to_unitPres

	// derived quantities
	o.G = G(o.Nu, o.E)
	o.Cm = Cm(o.Nu, o.E)
	return
}

// String returns a summary of rock parameters
func (o Rock) String() string {
	l := io.Sf("%s\n", o.Desc)
	l += io.Sf("  E  = %g %s\n", o.E, o.UnitPres)
	l += io.Sf("  ν  = %g\n", o.Nu)
	l += io.Sf("  G  = %g %s\n", o.G, o.UnitPres)
	l += io.Sf("  Cm = %g 1/%s", o.Cm, o.UnitPres)
	return l
}
