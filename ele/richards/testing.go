// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richards

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	rmdl "github.com/hereiam-at-mit-dot-edu/moose/mdl/richards"
)

// CheckJacobian compares OffDiagJacobian of a kernel with the numerical derivative of its
// residual w.r.t the amplitude of the trial function (φ, ∇φ, ∇∇φ) added to each variable
//  Note: the variables in c.V are restored on exit and c.F, c.S are recomputed
func CheckJacobian(tst *testing.T, k Kernel, mdl *rmdl.Model, c *Ctx, dxidx [][]float64, h, tol float64, verbose bool) {

	// backup
	n, ndim := mdl.Nph, mdl.Ndim
	v0 := rmdl.NewVarSet(n, ndim)
	copy(v0.P, c.V.P)
	for j := 0; j < n; j++ {
		copy(v0.GradP[j], c.V.GradP[j])
		for a := 0; a < ndim; a++ {
			copy(v0.HessP[j][a], c.V.HessP[j][a])
		}
	}
	shift := func(q int, x float64) {
		copy(c.V.P, v0.P)
		for j := 0; j < n; j++ {
			copy(c.V.GradP[j], v0.GradP[j])
			for a := 0; a < ndim; a++ {
				copy(c.V.HessP[j][a], v0.HessP[j][a])
			}
		}
		c.V.P[q] += x * c.Phi
		for a := 0; a < ndim; a++ {
			c.V.GradP[q][a] += x * c.GradPhi[a]
			for b := 0; b < ndim; b++ {
				c.V.HessP[q][a][b] += x * c.HessPhi[a][b]
			}
		}
		if err := c.Calc(mdl, dxidx); err != nil {
			chk.Panic("Calc failed: %v", err)
		}
	}

	// check
	for q := 0; q < n; q++ {
		shift(q, 0)
		ana := k.OffDiagJacobian(c, q)
		dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
			shift(q, x)
			return k.Residual(c)
		}, 0, h)
		chk.AnaNum(tst, io.Sf("∂R/∂u%d", q), tol, ana, dnum, verbose)
	}
	shift(0, 0)
}
