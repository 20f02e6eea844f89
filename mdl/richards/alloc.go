// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richards

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/fluid"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/relperm"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/seff"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/supg"
)

// PhaseData holds the names and parameters of the closures of one phase
type PhaseData struct {
	Seff     string   `json:"seff" yaml:"seff"`         // effective saturation model; e.g. "vg1"
	SeffPrms fun.Prms `json:"seffprms" yaml:"seffprms"` // parameters of effective saturation model
	Krel     string   `json:"krel" yaml:"krel"`         // relative permeability model; e.g. "power"
	KrelPrms fun.Prms `json:"krelprms" yaml:"krelprms"` // parameters of relative permeability model
	Dens     string   `json:"dens" yaml:"dens"`         // density model; e.g. "lin"
	DensPrms fun.Prms `json:"densprms" yaml:"densprms"` // parameters of density model
	Visc     string   `json:"visc" yaml:"visc"`         // viscosity model; e.g. "cte"
	ViscPrms fun.Prms `json:"viscprms" yaml:"viscprms"` // parameters of viscosity model
}

// New allocates and initialises a new model
//  ndim   -- space dimension
//  prms   -- porous medium parameters; see Init
//  phases -- [nph] closures
//  stab   -- name of SUPG model; "" means "none"
func New(ndim int, prms fun.Prms, phases []*PhaseData, stab string, stabPrms fun.Prms) (o *Model, err error) {

	// porous medium
	o = new(Model)
	err = o.Init(ndim, prms)
	if err != nil {
		return nil, err
	}

	// closures
	n := len(phases)
	seffs := make([]seff.Model, n)
	krel := make([]relperm.Model, n)
	dens := make([]fluid.Density, n)
	visc := make([]fluid.Viscosity, n)
	for i, ph := range phases {
		if ph == nil {
			return nil, chk.Err("data of phase %d is missing", i)
		}
		if seffs[i], err = seff.New(ph.Seff); err != nil {
			return nil, chk.Err("phase %d: %v", i, err)
		}
		if err = seffs[i].Init(ph.SeffPrms); err != nil {
			return nil, chk.Err("phase %d: cannot initialise %q seff model:\n%v", i, ph.Seff, err)
		}
		if krel[i], err = relperm.New(ph.Krel); err != nil {
			return nil, chk.Err("phase %d: %v", i, err)
		}
		if err = krel[i].Init(ph.KrelPrms); err != nil {
			return nil, chk.Err("phase %d: cannot initialise %q relperm model:\n%v", i, ph.Krel, err)
		}
		if dens[i], err = fluid.NewDensity(ph.Dens); err != nil {
			return nil, chk.Err("phase %d: %v", i, err)
		}
		if err = dens[i].Init(ph.DensPrms); err != nil {
			return nil, chk.Err("phase %d: cannot initialise %q density model:\n%v", i, ph.Dens, err)
		}
		if visc[i], err = fluid.NewViscosity(ph.Visc); err != nil {
			return nil, chk.Err("phase %d: %v", i, err)
		}
		if err = visc[i].Init(ph.ViscPrms); err != nil {
			return nil, chk.Err("phase %d: cannot initialise %q viscosity model:\n%v", i, ph.Visc, err)
		}
	}
	prv, err := seff.NewProvider(n, seffs...)
	if err != nil {
		return nil, err
	}
	err = o.SetPhases(prv, krel, dens, visc)
	if err != nil {
		return nil, err
	}

	// stabilisation
	if stab == "" {
		stab = "none"
	}
	smdl, err := supg.New(stab)
	if err != nil {
		return nil, err
	}
	err = smdl.Init(stabPrms)
	if err != nil {
		return nil, chk.Err("cannot initialise %q supg model:\n%v", stab, err)
	}
	o.SetSupg(smdl)
	return
}
