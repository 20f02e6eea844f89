// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package supg implements streamline-upwind Petrov-Galerkin (SUPG) stabilisation
// parameters for the advective part of Richards' equation
//  References:
//   [1] Brooks AN and Hughes TJR (1982) Streamline upwind/Petrov-Galerkin formulations for
//       convection dominated flows. Comput. Methods Appl. Mech. Engrg. 32, 199-259
package supg

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Model computes the stabilisation parameter τ, the velocity-like vector v and τ・v
type Model interface {
	Init(prms fun.Prms) error       // initialises model
	GetPrms(example bool) fun.Prms  // gets (an example) of parameters
	Calc(res *Vars, i int, d *Data) // computes SUPG variables of phase i
}

// Data holds the quadrature-point data required by SUPG models
//  Note: ndim ≤ 3
type Data struct {
	K     [][]float64 // [ndim][ndim] permeability tensor
	Por   float64     // porosity
	Grav  []float64   // [ndim] gravity vector
	Rho   float64     // density of phase
	Drho  float64     // dρ/dp of phase
	GradP []float64   // [ndim] gradient of pressure of phase
	Dxidx [][]float64 // [ndim][ndim] derivatives of natural coordinates w.r.t real coordinates
}

// Vars holds SUPG variables of all phases at one quadrature point
//  Note: derivatives are taken w.r.t the phase's own variable
type Vars struct {
	Tau           []float64     // [nph] τ
	Vel           [][]float64   // [nph][ndim] v
	TauVel        [][]float64   // [nph][ndim] τ・v
	DtauvelDv     [][]float64   // [nph][ndim] ∂(τ・v)/∂p
	DtauvelDgradv [][][]float64 // [nph][ndim][ndim] ∂(τ・v)_a/∂(∇p)_b
}

// NewVars allocates SUPG variables
func NewVars(nph, ndim int) *Vars {
	return &Vars{
		Tau:           make([]float64, nph),
		Vel:           la.MatAlloc(nph, ndim),
		TauVel:        la.MatAlloc(nph, ndim),
		DtauvelDv:     la.MatAlloc(nph, ndim),
		DtauvelDgradv: utl.Deep3alloc(nph, ndim, ndim),
	}
}

// Zero sets all variables of phase i to zero
func (o *Vars) Zero(i int) {
	o.Tau[i] = 0
	la.VecFill(o.Vel[i], 0)
	la.VecFill(o.TauVel[i], 0)
	la.VecFill(o.DtauvelDv[i], 0)
	la.MatFill(o.DtauvelDgradv[i], 0)
}

// New returns new SUPG model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'supg' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// None implements no stabilisation
type None struct{}

// add model to factory
func init() {
	allocators["none"] = func() Model { return new(None) }
}

// Init initialises model
func (o *None) Init(prms fun.Prms) error { return nil }

// GetPrms gets (an example) of parameters
func (o None) GetPrms(example bool) fun.Prms { return nil }

// Calc sets all variables to zero
func (o None) Calc(res *Vars, i int, d *Data) { res.Zero(i) }
