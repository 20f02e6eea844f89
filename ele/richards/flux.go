// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richards

import (
	"github.com/cpmech/gosl/fun"
	rmdl "github.com/hereiam-at-mit-dot-edu/moose/mdl/richards"
)

// Flux implements the flux term of the equation of phase p with SUPG stabilisation
//
//   R = ∇ψ・flux_p + (τv_p・∇ψ)・S_p
//
//   S_p = -∇・flux_p = -Σ_j [ tr(∂flux_p/∂∇v_j・∇∇v_j) + ∂flux_p/∂v_j・∇v_j ]
//
//  where S_p is the strong form of the flux term and τv_p・∇ψ is the upwind bias of
//  the test function
type Flux struct {
	Mdl  *rmdl.Model // material model
	Ivar int         // index of phase (Richards variable) of this equation
}

// add kernel to factory
func init() {
	SetAllocator("flux", func(mdl *rmdl.Model, ivar int, prms fun.Prms, fcn fun.Func) (Kernel, error) {
		return NewFlux(mdl, ivar)
	})
}

// NewFlux returns a new flux kernel
func NewFlux(mdl *rmdl.Model, ivar int) (o *Flux, err error) {
	err = mdl.CheckPhase("richardsVarNum", ivar)
	if err != nil {
		return
	}
	return &Flux{mdl, ivar}, nil
}

// Residual computes the residual contribution
func (o *Flux) Residual(c *Ctx) float64 {
	p := o.Ivar
	return dot(c.GradTest, c.F.Flux[p]) + dot(c.S.TauVel[p], c.GradTest)*o.strong(c)
}

// Jacobian computes the derivative of the residual w.r.t the own variable
func (o *Flux) Jacobian(c *Ctx) float64 {
	return o.jac(c, o.Ivar)
}

// OffDiagJacobian computes the derivative of the residual w.r.t variable jvar
//  Note: returns zero if jvar is not a Richards variable of this model
func (o *Flux) OffDiagJacobian(c *Ctx, jvar int) float64 {
	if jvar < 0 || jvar >= o.Mdl.Nph {
		return 0
	}
	return o.jac(c, jvar)
}

// strong computes S_p = -∇・flux_p
func (o *Flux) strong(c *Ctx) (S float64) {
	p := o.Ivar
	for j := 0; j < o.Mdl.Nph; j++ {
		S -= trMul(c.F.DfluxDgradv[p][j], c.V.HessP[j]) + dot(c.F.DfluxDv[p][j], c.V.GradP[j])
	}
	return
}

// jac computes ∂R/∂u_q
func (o *Flux) jac(c *Ctx, q int) float64 {

	// Galerkin term
	p := o.Ivar
	F := c.F
	res := c.Phi*dot(c.GradTest, F.DfluxDv[p][q]) + dotMat(c.GradTest, F.DfluxDgradv[p][q], c.GradPhi)

	// SUPG: derivative of test function bias; τv depends on own variable only
	supgTest := dot(c.S.TauVel[p], c.GradTest)
	var dsupgTest float64
	if q == p {
		dsupgTest = dotMat(c.GradTest, c.S.DtauvelDgradv[p], c.GradPhi) + c.Phi*dot(c.S.DtauvelDv[p], c.GradTest)
	}
	if supgTest == 0 && dsupgTest == 0 {
		return res
	}

	// SUPG: derivative of strong form
	var dS float64
	for j := 0; j < o.Mdl.Nph; j++ {
		dS -= c.Phi*trMul(F.D2fluxDgradvDv[p][j][q], c.V.HessP[j]) +
			c.Phi*dot(F.D2fluxDvDv[p][j][q], c.V.GradP[j]) +
			dotMat(c.V.GradP[j], F.D2fluxDvDgradv[p][j][q], c.GradPhi)
	}
	dS -= trMul(F.DfluxDgradv[p][q], c.HessPhi) + dot(F.DfluxDv[p][q], c.GradPhi)
	return res + dsupgTest*o.strong(c) + supgTest*dS
}
