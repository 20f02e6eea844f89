// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richards

import (
	"github.com/cpmech/gosl/chk"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/supg"
)

// CalcFlux computes the flux of all phases and its derivatives
func (o Model) CalcFlux(res *FluxVars, v *VarSet) (err error) {
	if len(v.P) != o.Nph || len(res.Flux) != o.Nph {
		return chk.Err("number of variables (%d) and flux entries (%d) must be equal to the number of phases (%d)", len(v.P), len(res.Flux), o.Nph)
	}
	for i := 0; i < o.Nph; i++ {
		err = o.CalcPhaseFlux(res, v, i)
		if err != nil {
			return
		}
	}
	return
}

// CalcPhaseFlux computes the flux of phase i and its derivatives
//
//   flux = m・K・w    with    w = ∇p_i - ρ(p_i)・g    and    m = kr(s)/μ(p_i)
//
//   ∂flux/∂v_j        = ∂m/∂v_j・K・w - δij・m・ρ'・K・g
//   ∂flux/∂∇v_j       = δij・m・K
//   ∂²flux/∂v_j∂v_k   = ∂²m/∂v_j∂v_k・K・w - (δij・∂m/∂v_k + δik・∂m/∂v_j)・ρ'・K・g - δij・δik・m・ρ''・K・g
//   ∂²flux/∂∇v_j∂v_k  = δij・∂m/∂v_k・K
//   ∂²flux/∂v_j∂∇v_k  = δik・∂m/∂v_j・K
func (o Model) CalcPhaseFlux(res *FluxVars, v *VarSet, i int) (err error) {

	// closures
	p := v.P
	n, ndim := o.Nph, o.Ndim
	sm := o.Seff.Models[i]
	s := sm.Seff(p)
	sm.Dseff(res.ds, p)
	sm.D2seff(res.d2s, p)
	kr, dkr, d2kr := o.Krel[i].Derivs(s)
	rho, drho, d2rho := o.Dens[i].Rho(p[i])
	mu, dmu, d2mu := o.Visc[i].Mu(p[i])
	if mu <= 0 {
		return chk.Err("viscosity of phase %d must be positive. μ(%g) = %g is invalid", i, p[i], mu)
	}

	// mobility: m = a・c with a = kr(s) and c = 1/μ
	c := 1.0 / mu
	dc := -dmu * c * c
	d2c := 2.0*dmu*dmu*c*c*c - d2mu*c*c
	m := kr * c
	for j := 0; j < n; j++ {
		res.dm[j] = dkr * res.ds[j] * c
		if j == i {
			res.dm[j] += kr * dc
		}
	}
	for j := 0; j < n; j++ {
		daj := dkr * res.ds[j]
		for k := 0; k < n; k++ {
			dak := dkr * res.ds[k]
			res.d2m[j][k] = (d2kr*res.ds[j]*res.ds[k] + dkr*res.d2s[j][k]) * c
			if k == i {
				res.d2m[j][k] += daj * dc
			}
			if j == i {
				res.d2m[j][k] += dak * dc
			}
			if j == i && k == i {
				res.d2m[j][k] += kr * d2c
			}
		}
	}

	// K・w and K・g
	for a := 0; a < ndim; a++ {
		res.kw[a], res.kg[a] = 0, 0
		for b := 0; b < ndim; b++ {
			res.kw[a] += o.K[a][b] * (v.GradP[i][b] - rho*o.Grav[b])
			res.kg[a] += o.K[a][b] * o.Grav[b]
		}
	}

	// flux and first derivatives
	for a := 0; a < ndim; a++ {
		res.Flux[i][a] = m * res.kw[a]
	}
	for j := 0; j < n; j++ {
		for a := 0; a < ndim; a++ {
			res.DfluxDv[i][j][a] = res.dm[j] * res.kw[a]
			if j == i {
				res.DfluxDv[i][j][a] -= m * drho * res.kg[a]
			}
			for b := 0; b < ndim; b++ {
				res.DfluxDgradv[i][j][a][b] = 0
				if j == i {
					res.DfluxDgradv[i][j][a][b] = m * o.K[a][b]
				}
			}
		}
	}

	// second derivatives
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			for a := 0; a < ndim; a++ {
				d2 := res.d2m[j][k] * res.kw[a]
				if j == i {
					d2 -= res.dm[k] * drho * res.kg[a]
				}
				if k == i {
					d2 -= res.dm[j] * drho * res.kg[a]
				}
				if j == i && k == i {
					d2 -= m * d2rho * res.kg[a]
				}
				res.D2fluxDvDv[i][j][k][a] = d2
				for b := 0; b < ndim; b++ {
					res.D2fluxDgradvDv[i][j][k][a][b] = 0
					res.D2fluxDvDgradv[i][j][k][a][b] = 0
					if j == i {
						res.D2fluxDgradvDv[i][j][k][a][b] = res.dm[k] * o.K[a][b]
					}
					if k == i {
						res.D2fluxDvDgradv[i][j][k][a][b] = res.dm[j] * o.K[a][b]
					}
				}
			}
		}
	}
	return
}

// CalcSupg computes the SUPG variables of all phases
//  dxidx -- [ndim][ndim] derivatives of natural coordinates w.r.t real coordinates
func (o Model) CalcSupg(res *supg.Vars, v *VarSet, dxidx [][]float64) {
	for i := 0; i < o.Nph; i++ {
		rho, drho, _ := o.Dens[i].Rho(v.P[i])
		o.Supg.Calc(res, i, &supg.Data{
			K:     o.K,
			Por:   o.Por,
			Grav:  o.Grav,
			Rho:   rho,
			Drho:  drho,
			GradP: v.GradP[i],
			Dxidx: dxidx,
		})
	}
}
