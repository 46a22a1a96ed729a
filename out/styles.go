// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gosl/plt"

// GetTexLabel returns a TeX label of field with unit
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "d":
		l += "d"
	case "ur":
		l += "u_r"
	case "uy":
		l += "u_y"
	case "ux":
		l += "u_x"
	case "uz":
		l += "u_z"
	case "sr":
		l += "\\sigma_r"
	case "st":
		l += "\\sigma_\\theta"
	case "syy":
		l += "\\sigma_{yy}"
	case "sxx":
		l += "\\sigma_{xx}"
	case "syx":
		l += "\\sigma_{yx}"
	case "szz":
		l += "\\sigma_{zz}"
	default:
		l += key
	}
	l += "$"
	if unit != "" {
		l += " $[\\mathrm{" + unit + "}]$"
	}
	return l
}

// GetUnit returns the unit of field
func GetUnit(key string) string {
	if key == "" {
		return ""
	}
	switch key {
	case "y", "x", "z", "d":
		return "m"
	}
	if key[0] == 'u' {
		return "m"
	}
	return "MPa"
}

// GetStyle returns the style of field in plots
func GetStyle(key string) *plt.A {
	colors := map[string]string{
		"ur": "r", "uy": "g", "ux": "m", "uz": "b",
		"sr": "r", "st": "g", "syy": "c", "sxx": "m", "syx": "k", "szz": "b",
	}
	c, ok := colors[key]
	if !ok {
		c = "k"
	}
	return &plt.A{C: c, Ls: "-", L: GetTexLabel(key, "")}
}
