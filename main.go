// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/geertsma/out"
	"github.com/cpmech/geertsma/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".res", true)
	verbose := io.ArgToBool(1, true)
	allowParallel := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGeertsma -- Reservoir deformation by disk-shaped sources\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"allow parallel run", "allowParallel", allowParallel,
		))
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// analysis data
	analysis, err := sim.NewMain(fnamepath, true, allowParallel, verbose)
	if err != nil {
		chk.Panic("cannot initialise analysis:\n%v", err)
	}
	if verbose {
		io.Pf("\n%v\n", analysis.Sim)
	}

	// run analysis
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// output
	data := analysis.Sim.Data
	if !data.NoTable {
		fn := out.WriteTable(analysis.Sim.DirOut, analysis.Sim.Key, analysis.Res, data.Precision)
		log.WithField("file", fn).Info("results written")
	}
	if data.Xlsx {
		fn, err := out.WriteXlsx(analysis.Sim.DirOut, analysis.Sim.Key, analysis.Res)
		if err != nil {
			chk.Panic("cannot write spreadsheet:\n%v", err)
		}
		log.WithField("file", fn).Info("spreadsheet written")
	}
	if analysis.Sim.Points.Type == "profile" {
		dist := analysis.Sim.Points.Distances()
		if data.Png {
			fnames, err := out.PlotProfilePng(dist, analysis.Res, analysis.Sim.DirOut, analysis.Sim.Key)
			if err != nil {
				chk.Panic("cannot save figures:\n%v", err)
			}
			log.WithField("files", fnames).Info("figures saved")
		}
		if data.Plot {
			out.PlotProfile(dist, analysis.Res, analysis.Sim.DirOut, analysis.Sim.Key)
			log.WithField("dir", analysis.Sim.DirOut).Info("figure saved")
		}
	}
	if verbose {
		io.Pf("\n%v", out.SummaryString(out.Summary(analysis.Res)))
	}
}
