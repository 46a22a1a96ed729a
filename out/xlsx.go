// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"path/filepath"

	"github.com/cpmech/geertsma/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

// WriteXlsx writes results to dirout/fnkey.xlsx with two sheets: "Results" with one row
// per point and "Summary" with the statistics of each field. Non-finite values are left blank.
func WriteXlsx(dirout, fnkey string, res *sim.Results) (fn string, err error) {
	f := excelize.NewFile()
	defer f.Close()

	// results
	sheet := "Results"
	f.SetSheetName("Sheet1", sheet)
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return "", chk.Err("cannot create stream writer: %v", err)
	}
	keys := append([]string{"y", "x", "z"}, res.Keys...)
	header := make([]interface{}, len(keys))
	for j, key := range keys {
		header[j] = key
		if u := GetUnit(key); u != "" {
			header[j] = key + " [" + u + "]"
		}
	}
	if err = sw.SetRow("A1", header); err != nil {
		return "", chk.Err("cannot write header: %v", err)
	}
	row := make([]interface{}, len(keys))
	for i := 0; i < res.Npoints(); i++ {
		row[0], row[1], row[2] = res.Y[i], res.X[i], res.Z[i]
		for j, key := range res.Keys {
			row[3+j] = cellValue(res.Fields[key][i])
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err = sw.SetRow(cell, row); err != nil {
			return "", chk.Err("cannot write row %d: %v", i, err)
		}
	}
	if err = sw.Flush(); err != nil {
		return "", chk.Err("cannot flush sheet %q: %v", sheet, err)
	}

	// summary
	sheet = "Summary"
	if _, err = f.NewSheet(sheet); err != nil {
		return "", chk.Err("cannot create sheet %q: %v", sheet, err)
	}
	f.SetSheetRow(sheet, "A1", &[]interface{}{"field", "unit", "min", "max", "imin", "imax", "nonfinite"})
	for i, s := range Summary(res) {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &[]interface{}{s.Key, GetUnit(s.Key), s.Min, s.Max, s.Imin, s.Imax, s.Nonfinit})
	}

	// save
	fn = filepath.Join(dirout, fnkey+".xlsx")
	if err = f.SaveAs(fn); err != nil {
		return "", chk.Err("cannot save %q: %v", fn, err)
	}
	return
}

// cellValue returns an empty cell for NaN and ±Inf
func cellValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return v
}
