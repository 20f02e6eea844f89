// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element solver of a column of porous medium governed by
// the multiphase Richards equation
package fem

import (
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/hereiam-at-mit-dot-edu/moose/inp"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // domain
	ShowMsg bool            // show messages
	CpuTime time.Duration   // cpu time of last run
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath  -- simulation (.json or .yaml) filename including full path
//   alias        -- word to be appended to simulation key; e.g. when running multiple FE solutions
//   createDirOut -- create directory for output results
//   verbose      -- show messages
func NewMain(simfilepath, alias string, createDirOut, verbose bool) (o *Main, err error) {
	sim, err := inp.ReadSim(simfilepath, alias, createDirOut)
	if err != nil {
		return
	}
	if verbose {
		io.Pf("> Simulation file read\n")
	}
	return NewMainSim(sim, verbose)
}

// NewMainSim returns a new Main structure from simulation data already in memory
func NewMainSim(sim *inp.Simulation, verbose bool) (o *Main, err error) {
	o = new(Main)
	o.Sim = sim
	o.ShowMsg = verbose
	o.Dom, err = NewDomain(sim, verbose)
	if err != nil {
		return nil, err
	}
	return
}

// Run sets initial values and runs the FE simulation
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// plot functions
	if o.Sim.PlotF != nil {
		err = o.Sim.Functions.PlotAll(o.Sim.PlotF, o.Sim.DirOut, o.Sim.Key)
		if err != nil {
			return
		}
		if o.ShowMsg {
			io.Pf("> Functions plotted\n")
		}
	}

	// initial values
	err = o.Dom.SetIniVals()
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> Initial values set\n")
		io.Pf("%v", o.Dom.EssenBcs.List(o.Sim.Control.Tf))
		io.Pf("> Running FE solver\n")
	}

	// solve
	return o.Dom.Run()
}

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) error {
	o.CpuTime = time.Since(cputime)
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", o.CpuTime)
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
