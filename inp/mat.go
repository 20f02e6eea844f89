// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	rmdl "github.com/hereiam-at-mit-dot-edu/moose/mdl/richards"
)

// Material holds the data of a porous medium and its fluid phases
type Material struct {

	// input
	Name     string             `json:"name" yaml:"name"`         // name of material
	Desc     string             `json:"desc" yaml:"desc"`         // description of material
	Prms     fun.Prms           `json:"prms" yaml:"prms"`         // porous medium parameters; e.g. k, por, g
	Phases   []*rmdl.PhaseData `json:"phases" yaml:"phases"`      // closures of each phase
	Stab     string             `json:"stab" yaml:"stab"`         // SUPG model; e.g. "none", "standard"
	StabPrms fun.Prms           `json:"stabprms" yaml:"stabprms"` // parameters of SUPG model

	// derived
	Model *rmdl.Model `json:"-" yaml:"-"` // Richards model
}

// MatsData holds materials
type MatsData []*Material

// Get returns a material
//  Note: returns nil if not found
func (o MatsData) Get(name string) *Material {
	for _, mat := range o {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Alloc allocates and initialises the Richards model of a material
//  ndim -- space dimension
func (o *Material) Alloc(ndim int) (err error) {
	if len(o.Phases) == 0 {
		return chk.Err("material %q must have at least one phase", o.Name)
	}
	o.Model, err = rmdl.New(ndim, o.Prms, o.Phases, o.Stab, o.StabPrms)
	if err != nil {
		return chk.Err("cannot allocate model of material %q:\n%v", o.Name, err)
	}
	return
}

// String prints one material
func (o Material) String() string {
	l := io.Sf("    {\n      \"name\":%q, \"desc\":%q, \"stab\":%q,\n", o.Name, o.Desc, o.Stab)
	l += io.Sf("      \"prms\" : %v,\n      \"phases\" : [", prmsString(o.Prms))
	for i, ph := range o.Phases {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"seff\":%q, \"krel\":%q, \"dens\":%q, \"visc\":%q}", ph.Seff, ph.Krel, ph.Dens, ph.Visc)
	}
	return l + "\n      ]\n    }"
}

// prmsString prints parameters in compact JSON format
func prmsString(prms fun.Prms) string {
	l := "["
	for i, p := range prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return l + "]"
}
