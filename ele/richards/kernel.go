// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package richards implements weak-form kernels for the multiphase Richards equation
package richards

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	rmdl "github.com/hereiam-at-mit-dot-edu/moose/mdl/richards"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/supg"
)

// Kernel computes the contributions of one term of the weak form of the equation of one
// variable at one quadrature point, for one (test, trial) pair of shape functions
//  Note: kernels are stateless; all data comes with the context
type Kernel interface {
	Residual(c *Ctx) float64                  // R = ∫ ... ψ dΩ integrand
	Jacobian(c *Ctx) float64                  // ∂R/∂u_own integrand multiplying the trial function φ
	OffDiagJacobian(c *Ctx, jvar int) float64 // ∂R/∂u_jvar integrand multiplying the trial function φ
}

// Ctx holds the data of one quadrature point, one test function and one trial function
type Ctx struct {

	// test function
	Test     float64   // ψ
	GradTest []float64 // [ndim] ∇ψ

	// trial function
	Phi     float64     // φ
	GradPhi []float64   // [ndim] ∇φ
	HessPhi [][]float64 // [ndim][ndim] ∇∇φ

	// variables and derived quantities at quadrature point
	V *rmdl.VarSet   // Richards variables
	F *rmdl.FluxVars // flux and derivatives
	S *supg.Vars     // SUPG variables

	// time and space
	T float64   // time
	X []float64 // [ndim] coordinates of quadrature point

	// transient data
	Dt   float64   // time step
	Pold []float64 // [nph] variables at the beginning of the time step
}

// NewCtx allocates a new context
func NewCtx(nph, ndim int) *Ctx {
	return &Ctx{
		GradTest: make([]float64, ndim),
		GradPhi:  make([]float64, ndim),
		HessPhi:  la.MatAlloc(ndim, ndim),
		V:        rmdl.NewVarSet(nph, ndim),
		F:        rmdl.NewFluxVars(nph, ndim),
		S:        supg.NewVars(nph, ndim),
		X:        make([]float64, ndim),
		Pold:     make([]float64, nph),
	}
}

// Calc computes flux and SUPG variables from the current variables
//  dxidx -- [ndim][ndim] derivatives of natural coordinates w.r.t real coordinates
func (c *Ctx) Calc(mdl *rmdl.Model, dxidx [][]float64) (err error) {
	err = mdl.CalcFlux(c.F, c.V)
	if err != nil {
		return
	}
	mdl.CalcSupg(c.S, c.V, dxidx)
	return
}

// AllocatorType defines a function that allocates a kernel
//  mdl  -- material model
//  ivar -- index of the variable whose equation receives the contributions
//  prms -- extra parameters of kernel
//  fcn  -- function of space and time (may be nil)
type AllocatorType func(mdl *rmdl.Model, ivar int, prms fun.Prms, fcn fun.Func) (Kernel, error)

// New returns a new kernel from factory
func New(name string, mdl *rmdl.Model, ivar int, prms fun.Prms, fcn fun.Func) (k Kernel, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("kernel %q is not available in 'richards' database", name)
	}
	if mdl == nil {
		return nil, chk.Err("kernel %q requires a material model", name)
	}
	return allocator(mdl, ivar, prms, fcn)
}

// SetAllocator sets a new callback function to allocate a kernel
func SetAllocator(name string, fcn AllocatorType) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator function for %q because kernel name exists already", name)
	}
	allocators[name] = fcn
}

// Names returns the names of all kernels
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// allocators holds all kernel allocators
var allocators = make(map[string]AllocatorType)

// dot returns u・v
func dot(u, v []float64) (res float64) {
	for a := range u {
		res += u[a] * v[a]
	}
	return
}

// dotMat returns u・M・v
func dotMat(u []float64, M [][]float64, v []float64) (res float64) {
	for a := range u {
		for b := range v {
			res += u[a] * M[a][b] * v[b]
		}
	}
	return
}

// trMul returns tr(A・B)
func trMul(A, B [][]float64) (res float64) {
	for a := range A {
		for b := range B {
			res += A[a][b] * B[b][a]
		}
	}
	return
}
