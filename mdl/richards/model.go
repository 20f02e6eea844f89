// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package richards implements the multiphase Richards flux and its derivatives
//
//   flux_i = K・m_i・(∇p_i - ρ_i・g)     with     m_i = kr_i(seff_i(p)) / μ_i(p_i)
//
//  where p holds the n pressure-like variables of the coupled system (one per phase)
package richards

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/fluid"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/relperm"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/seff"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/supg"
)

// Model holds the material data of a multiphase Richards system
//  Note: Model is immutable after Init/SetPhases/SetSupg; i.e. safe for concurrent use
type Model struct {

	// porous medium
	Ndim int         // space dimension
	K    [][]float64 // [ndim][ndim] permeability tensor
	Grav []float64   // [ndim] gravity vector
	Por  float64     // porosity

	// phases
	Nph  int               // number of phases == number of Richards variables
	Seff *seff.Provider    // effective saturation of all phases
	Krel []relperm.Model   // [nph] relative permeability
	Dens []fluid.Density   // [nph] density
	Visc []fluid.Viscosity // [nph] viscosity

	// stabilisation
	Supg supg.Model // SUPG model
}

// Init initialises porous medium data
//  Parameters:
//   k or kx, ky, kz        -- isotropic or diagonal permeability
//   kxy, kyz, kxz          -- off-diagonal permeability (optional)
//   por                    -- porosity
//   g or gx, gy, gz        -- gravity acceleration along -x[ndim-1] or gravity vector
func (o *Model) Init(ndim int, prms fun.Prms) (err error) {

	// check
	if ndim < 1 || ndim > 3 {
		return chk.Err("space dimension must be 1, 2 or 3. ndim = %d is invalid", ndim)
	}
	o.Ndim = ndim
	o.K = la.MatAlloc(ndim, ndim)
	o.Grav = make([]float64, ndim)
	o.Por = 1

	// keys
	kkeys := []string{"kx", "ky", "kz"}[:ndim]
	gkeys := []string{"gx", "gy", "gz"}[:ndim]

	// permeability
	kvals, kfound := prms.GetValues(kkeys)
	if utl.BoolAllTrue(kfound) {
		for i := 0; i < ndim; i++ {
			o.K[i][i] = kvals[i]
		}
	} else {
		p := prms.Find("k")
		if p == nil {
			return chk.Err("richards model: either 'k' (isotropic) or %v must be given in database of material parameters", kkeys)
		}
		for i := 0; i < ndim; i++ {
			o.K[i][i] = p.V
		}
	}
	for _, off := range []struct {
		key  string
		i, j int
	}{{"kxy", 0, 1}, {"kyz", 1, 2}, {"kxz", 0, 2}} {
		if p := prms.Find(off.key); p != nil {
			if off.j >= ndim {
				return chk.Err("richards model: %q cannot be used with ndim = %d", off.key, ndim)
			}
			o.K[off.i][off.j] = p.V
			o.K[off.j][off.i] = p.V
		}
	}

	// gravity
	gvals, gfound := prms.GetValues(gkeys)
	if utl.BoolAllTrue(gfound) {
		copy(o.Grav, gvals)
	} else if p := prms.Find("g"); p != nil {
		o.Grav[ndim-1] = -p.V
	}

	// porosity
	if p := prms.Find("por"); p != nil {
		o.Por = p.V
	}
	if o.Por <= 0 || o.Por > 1 {
		return chk.Err("richards model: porosity must satisfy 0 < por <= 1. por = %g is invalid", o.Por)
	}
	for i := 0; i < ndim; i++ {
		if o.K[i][i] <= 0 {
			return chk.Err("richards model: diagonal of permeability tensor must be positive. K[%d][%d] = %g is invalid", i, i, o.K[i][i])
		}
	}

	// default stabilisation
	o.Supg = new(supg.None)
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) fun.Prms {
	if example {
		return fun.Prms{
			&fun.Prm{N: "k", V: 1.0},
			&fun.Prm{N: "por", V: 0.3},
			&fun.Prm{N: "g", V: 10.0},
		}
	}
	prms := make([]*fun.Prm, 0)
	keys := []string{"kx", "ky", "kz"}
	gkeys := []string{"gx", "gy", "gz"}
	for i := 0; i < o.Ndim; i++ {
		prms = append(prms, &fun.Prm{N: keys[i], V: o.K[i][i]})
	}
	for _, off := range []struct {
		key  string
		i, j int
	}{{"kxy", 0, 1}, {"kyz", 1, 2}, {"kxz", 0, 2}} {
		if off.j < o.Ndim && o.K[off.i][off.j] != 0 {
			prms = append(prms, &fun.Prm{N: off.key, V: o.K[off.i][off.j]})
		}
	}
	for i := 0; i < o.Ndim; i++ {
		prms = append(prms, &fun.Prm{N: gkeys[i], V: o.Grav[i]})
	}
	return append(prms, &fun.Prm{N: "por", V: o.Por})
}

// SetPhases sets the closures of all phases
func (o *Model) SetPhases(prv *seff.Provider, krel []relperm.Model, dens []fluid.Density, visc []fluid.Viscosity) (err error) {
	if prv == nil {
		return chk.Err("effective saturation provider must be given")
	}
	n := prv.N
	if len(krel) != n || len(dens) != n || len(visc) != n {
		return chk.Err("number of relative permeability (%d), density (%d) and viscosity (%d) models must be equal to the number of phases (%d)", len(krel), len(dens), len(visc), n)
	}
	for i := 0; i < n; i++ {
		if krel[i] == nil || dens[i] == nil || visc[i] == nil {
			return chk.Err("closures of phase %d are missing", i)
		}
	}
	o.Nph = n
	o.Seff = prv
	o.Krel = krel
	o.Dens = dens
	o.Visc = visc
	return
}

// SetSupg sets the SUPG model
func (o *Model) SetSupg(mdl supg.Model) {
	if mdl == nil {
		mdl = new(supg.None)
	}
	o.Supg = mdl
}

// CheckPhase checks whether i is a valid phase index
func (o Model) CheckPhase(what string, i int) error {
	return seff.CheckIndex(what, i, o.Nph)
}

// Mobility computes m = kr(seff_i(p))/μ_i(p_i)
func (o Model) Mobility(i int, p []float64) float64 {
	kr := o.Krel[i].Kr(o.Seff.Models[i].Seff(p))
	mu, _, _ := o.Visc[i].Mu(p[i])
	return kr / mu
}

// Mass computes the mass per unit pore volume of phase i: ρ_i(p_i)・seff_i(p) and its derivatives
//  dm -- [nph] ∂(ρ_i・seff_i)/∂p_j (output)
func (o Model) Mass(dm []float64, i int, p []float64) float64 {
	mdl := o.Seff.Models[i]
	s := mdl.Seff(p)
	mdl.Dseff(dm, p)
	rho, drho, _ := o.Dens[i].Rho(p[i])
	for j := range dm {
		dm[j] *= rho
	}
	dm[i] += drho * s
	return rho * s
}
