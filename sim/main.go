// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the runner of reservoir deformation analyses
package sim

import (
	"runtime"
	"sync"
	"time"

	"github.com/cpmech/geertsma/ana"
	"github.com/cpmech/geertsma/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"
)

// Main holds all data for an analysis
type Main struct {
	Sim      *inp.Simulation   // input data
	Disks    ana.GeertsmaDisks // analytical solutions
	Res      *Results          // results
	Nworkers int               // number of goroutines
	ShowMsg  bool              // show messages
}

// NewMain returns a new Main structure
//  Input:
//   fnpath        -- analysis (.res or .ini) filename including full path
//   createDirOut  -- create output directory
//   allowParallel -- evaluate points concurrently
//   verbose       -- show messages
func NewMain(fnpath string, createDirOut, allowParallel, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim, err = inp.ReadSim(fnpath, createDirOut)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Analysis file read\n")
	}

	// analytical solutions
	o.Disks, err = o.Sim.GeertsmaDisks()
	if err != nil {
		return nil, err
	}

	// multiprocessing data
	o.Nworkers = 1
	if allowParallel {
		o.Nworkers = runtime.NumCPU()
	}
	return
}

// Run computes all fields
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// points
	coords := o.Sim.Points.Coords()
	npts := len(coords[0])
	if npts < 1 {
		return chk.Err("there are no points to compute")
	}

	// results
	o.Res = NewResults(coords, len(o.Disks) == 1, o.Sim.Data.Stress)
	log.WithFields(log.Fields{
		"key":     o.Sim.Key,
		"disks":   len(o.Disks),
		"points":  npts,
		"workers": o.Nworkers,
		"stress":  o.Sim.Data.Stress,
	}).Info("computing fields")

	// split points among workers
	nw := o.Nworkers
	if nw > npts {
		nw = npts
	}
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		start, end := (w*npts)/nw, ((w+1)*npts)/nw
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			o.Res.Compute(o.Disks, start, end)
		}(start, end)
	}
	wg.Wait()

	// message
	if o.ShowMsg {
		io.Pf("> Fields computed at %d points\n", npts)
	}
	return
}

// onexit prints final message
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	err = prevErr
	entry := log.WithFields(log.Fields{
		"key":     o.Sim.Key,
		"elapsed": time.Now().Sub(cputime).String(),
	})
	if err != nil {
		entry.WithError(err).Error("analysis failed")
		return
	}
	entry.Info("analysis completed")
	if o.ShowMsg {
		io.Pfcyan("> Elapsed time = %v\n", time.Now().Sub(cputime))
	}
	return
}
