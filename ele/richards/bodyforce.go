// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richards

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	rmdl "github.com/hereiam-at-mit-dot-edu/moose/mdl/richards"
)

// BodyForce implements a source term: R = -ψ・value・f(t,x)
type BodyForce struct {
	Value float64  // multiplier
	Fcn   fun.Func // function of space and time; nil means 1
}

// BodyForceVoid implements a source term weighted by the void fraction of a coupled variable c
//
//   R = -ψ・value・f(t,x)・(1 - c²)
type BodyForceVoid struct {
	BodyForce
	Cvar int // index of coupled variable
	Ivar int // index of variable of this equation
}

// add kernels to factory
func init() {
	SetAllocator("bodyforce", func(mdl *rmdl.Model, ivar int, prms fun.Prms, fcn fun.Func) (Kernel, error) {
		if err := mdl.CheckPhase("variable", ivar); err != nil {
			return nil, err
		}
		o := &BodyForce{Value: 1, Fcn: fcn}
		for _, p := range prms {
			switch p.N {
			case "value":
				o.Value = p.V
			default:
				return nil, chk.Err("bodyforce: parameter named %q is incorrect\n", p.N)
			}
		}
		return o, nil
	})
	SetAllocator("bodyforcevoid", func(mdl *rmdl.Model, ivar int, prms fun.Prms, fcn fun.Func) (Kernel, error) {
		if err := mdl.CheckPhase("variable", ivar); err != nil {
			return nil, err
		}
		o := &BodyForceVoid{BodyForce: BodyForce{Value: 1, Fcn: fcn}, Cvar: -1, Ivar: ivar}
		for _, p := range prms {
			switch p.N {
			case "value":
				o.Value = p.V
			case "c":
				o.Cvar = int(p.V)
			default:
				return nil, chk.Err("bodyforcevoid: parameter named %q is incorrect\n", p.N)
			}
		}
		if err := mdl.CheckPhase("coupled variable c", o.Cvar); err != nil {
			return nil, err
		}
		return o, nil
	})
}

// factor computes value・f(t,x)
func (o *BodyForce) factor(c *Ctx) float64 {
	if o.Fcn == nil {
		return o.Value
	}
	return o.Value * o.Fcn.F(c.T, c.X)
}

// Residual computes the residual contribution
func (o *BodyForce) Residual(c *Ctx) float64 {
	return -c.Test * o.factor(c)
}

// Jacobian computes the derivative of the residual w.r.t the own variable
func (o *BodyForce) Jacobian(c *Ctx) float64 { return 0 }

// OffDiagJacobian computes the derivative of the residual w.r.t variable jvar
func (o *BodyForce) OffDiagJacobian(c *Ctx, jvar int) float64 { return 0 }

// Residual computes the residual contribution
func (o *BodyForceVoid) Residual(c *Ctx) float64 {
	cv := c.V.P[o.Cvar]
	return c.Test * -o.factor(c) * (1.0 - cv*cv)
}

// Jacobian computes the derivative of the residual w.r.t the own variable
func (o *BodyForceVoid) Jacobian(c *Ctx) float64 {
	return o.OffDiagJacobian(c, o.Ivar)
}

// OffDiagJacobian computes the derivative of the residual w.r.t variable jvar
func (o *BodyForceVoid) OffDiagJacobian(c *Ctx, jvar int) float64 {
	if jvar != o.Cvar {
		return 0
	}
	return c.Test * o.factor(c) * 2.0 * c.V.P[o.Cvar] * c.Phi
}
