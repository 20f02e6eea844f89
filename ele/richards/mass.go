// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richards

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	rmdl "github.com/hereiam-at-mit-dot-edu/moose/mdl/richards"
)

// MassChange implements the backward-Euler mass accumulation of phase p
//
//   R = ψ・φ・(ρ_p・s_p(t+Δt) - ρ_p・s_p(t)) / Δt
//
//  Note: contributions vanish if Δt ≤ 0 (steady state)
type MassChange struct {
	Mdl  *rmdl.Model // material model
	Ivar int         // index of phase
}

// add kernel to factory
func init() {
	SetAllocator("masschange", func(mdl *rmdl.Model, ivar int, prms fun.Prms, fcn fun.Func) (Kernel, error) {
		if len(prms) > 0 {
			return nil, chk.Err("masschange: parameter named %q is incorrect\n", prms[0].N)
		}
		if err := mdl.CheckPhase("richardsVarNum", ivar); err != nil {
			return nil, err
		}
		return &MassChange{mdl, ivar}, nil
	})
}

// Residual computes the residual contribution
func (o *MassChange) Residual(c *Ctx) float64 {
	if c.Dt <= 0 {
		return 0
	}
	dm := make([]float64, o.Mdl.Nph)
	m := o.Mdl.Mass(dm, o.Ivar, c.V.P)
	mold := o.Mdl.Mass(dm, o.Ivar, c.Pold)
	return c.Test * o.Mdl.Por * (m - mold) / c.Dt
}

// Jacobian computes the derivative of the residual w.r.t the own variable
func (o *MassChange) Jacobian(c *Ctx) float64 {
	return o.OffDiagJacobian(c, o.Ivar)
}

// OffDiagJacobian computes the derivative of the residual w.r.t variable jvar
func (o *MassChange) OffDiagJacobian(c *Ctx, jvar int) float64 {
	if c.Dt <= 0 || jvar < 0 || jvar >= o.Mdl.Nph {
		return 0
	}
	dm := make([]float64, o.Mdl.Nph)
	o.Mdl.Mass(dm, o.Ivar, c.V.P)
	return c.Test * o.Mdl.Por * dm[jvar] * c.Phi / c.Dt
}
