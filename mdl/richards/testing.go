// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richards

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// CheckDerivs compares all analytical derivatives of the flux with numerical ones
//  h -- step size for central differences
func CheckDerivs(tst *testing.T, mdl *Model, v *VarSet, h, tol1, tol2 float64, verbose bool) {

	// analytical
	n, ndim := mdl.Nph, mdl.Ndim
	ana := NewFluxVars(n, ndim)
	err := mdl.CalcFlux(ana, v)
	if err != nil {
		tst.Errorf("CalcFlux failed: %v\n", err)
		return
	}

	// perturbed state
	tmp := NewFluxVars(n, ndim)
	pv := NewVarSet(n, ndim)
	reset := func() {
		copy(pv.P, v.P)
		for j := 0; j < n; j++ {
			copy(pv.GradP[j], v.GradP[j])
		}
	}
	calc := func() *FluxVars {
		if e := mdl.CalcFlux(tmp, pv); e != nil {
			chk.Panic("CalcFlux failed: %v", e)
		}
		return tmp
	}

	// derivatives w.r.t v_k
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			for a := 0; a < ndim; a++ {
				dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
					reset()
					pv.P[k] = x
					return calc().Flux[i][a]
				}, v.P[k], h)
				chk.AnaNum(tst, io.Sf("∂flux%d_%d/∂v%d", i, a, k), tol1, ana.DfluxDv[i][k][a], dnum, verbose)
				for j := 0; j < n; j++ {
					dnum, _ = num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
						reset()
						pv.P[k] = x
						return calc().DfluxDv[i][j][a]
					}, v.P[k], h)
					chk.AnaNum(tst, io.Sf("∂²flux%d_%d/∂v%d∂v%d", i, a, j, k), tol2, ana.D2fluxDvDv[i][j][k][a], dnum, verbose)
					for b := 0; b < ndim; b++ {
						dnum, _ = num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
							reset()
							pv.P[k] = x
							return calc().DfluxDgradv[i][j][a][b]
						}, v.P[k], h)
						chk.AnaNum(tst, io.Sf("∂²flux%d_%d/∂∇v%d_%d∂v%d", i, a, j, b, k), tol2, ana.D2fluxDgradvDv[i][j][k][a][b], dnum, verbose)
					}
				}
			}
		}
	}

	// derivatives w.r.t ∇v_k
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			for b := 0; b < ndim; b++ {
				for a := 0; a < ndim; a++ {
					dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
						reset()
						pv.GradP[k][b] = x
						return calc().Flux[i][a]
					}, v.GradP[k][b], h)
					chk.AnaNum(tst, io.Sf("∂flux%d_%d/∂∇v%d_%d", i, a, k, b), tol1, ana.DfluxDgradv[i][k][a][b], dnum, verbose)
					for j := 0; j < n; j++ {
						dnum, _ = num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
							reset()
							pv.GradP[k][b] = x
							return calc().DfluxDv[i][j][a]
						}, v.GradP[k][b], h)
						chk.AnaNum(tst, io.Sf("∂²flux%d_%d/∂v%d∂∇v%d_%d", i, a, j, k, b), tol2, ana.D2fluxDvDgradv[i][j][k][a][b], dnum, verbose)
					}
				}
			}
		}
	}
}
