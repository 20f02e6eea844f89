// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package supg

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Standard implements the standard SUPG parameters
//
//   v   = -K・(∇p - ρ・g) / φ          pore velocity per unit mobility
//   b   = (∂ξ/∂x)・v                   element metric
//   h   = 2・|v| / |b|                 element length along v
//   D   = tr(K)・pSUPG / φ             diffusivity scale
//   α   = ½・|v|・h / D = |v|² / (|b|・D)
//   ξ̃   = coth(α) - 1/α
//   τ   = ξ̃ / |b|
//
//  Note: τ = 0 if v = 0 or b = 0
type Standard struct {
	pSUPG float64 // typical pressure scale; smaller values give more stabilisation
}

// add model to factory
func init() {
	allocators["standard"] = func() Model { return new(Standard) }
}

// Init initialises model
func (o *Standard) Init(prms fun.Prms) (err error) {
	o.pSUPG = 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "p_supg", "psupg":
			o.pSUPG = p.V
		default:
			return chk.Err("standard: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.pSUPG <= 0 {
		return chk.Err("standard: p_SUPG must be positive. p_SUPG = %g is invalid\n", o.pSUPG)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Standard) GetPrms(example bool) fun.Prms {
	if example {
		return fun.Prms{&fun.Prm{N: "p_SUPG", V: 0.1}}
	}
	return fun.Prms{&fun.Prm{N: "p_SUPG", V: o.pSUPG}}
}

// Calc computes SUPG variables of phase i
func (o Standard) Calc(res *Vars, i int, d *Data) {

	// velocity
	res.Zero(i)
	ndim := len(d.GradP)
	u := res.Vel[i]
	var du, b, db [3]float64
	trK := 0.0
	for a := 0; a < ndim; a++ {
		trK += d.K[a][a]
		for c := 0; c < ndim; c++ {
			u[a] -= d.K[a][c] * (d.GradP[c] - d.Rho*d.Grav[c]) / d.Por
			du[a] += d.K[a][c] * d.Drho * d.Grav[c] / d.Por
		}
	}

	// metric
	V2, normB := 0.0, 0.0
	for k := 0; k < ndim; k++ {
		for a := 0; a < ndim; a++ {
			b[k] += d.Dxidx[k][a] * u[a]
		}
		normB += b[k] * b[k]
		V2 += u[k] * u[k]
	}
	normB = math.Sqrt(normB)
	D := trK * o.pSUPG / d.Por
	if V2 == 0 || normB == 0 || D <= 0 {
		return
	}

	// τ and τ・v
	α := V2 / (normB * D)
	xi, dxi := Xi(α)
	tau := xi / normB
	res.Tau[i] = tau
	for a := 0; a < ndim; a++ {
		res.TauVel[i][a] = tau * u[a]
	}

	// derivative of τ・v along w = ∂v/∂q
	deriv := func(dtauvel []float64, w []float64) {
		dV2, dnormB := 0.0, 0.0
		for k := 0; k < ndim; k++ {
			db[k] = 0
			for a := 0; a < ndim; a++ {
				db[k] += d.Dxidx[k][a] * w[a]
			}
			dnormB += b[k] * db[k]
			dV2 += 2.0 * u[k] * w[k]
		}
		dnormB /= normB
		dα := dV2/(normB*D) - V2*dnormB/(normB*normB*D)
		dtau := dxi*dα/normB - xi*dnormB/(normB*normB)
		for a := 0; a < ndim; a++ {
			dtauvel[a] = dtau*u[a] + tau*w[a]
		}
	}

	// ∂(τ・v)/∂p
	deriv(res.DtauvelDv[i], du[:ndim])

	// ∂(τ・v)/∂(∇p)_c
	var w, dtv [3]float64
	for c := 0; c < ndim; c++ {
		for a := 0; a < ndim; a++ {
			w[a] = -d.K[a][c] / d.Por
		}
		deriv(dtv[:ndim], w[:ndim])
		for a := 0; a < ndim; a++ {
			res.DtauvelDgradv[i][a][c] = dtv[a]
		}
	}
}

// Xi computes ξ̃(α) = coth(α) - 1/α and its derivative
//  Note: series and asymptotic expansions are used for small and large |α|
func Xi(α float64) (xi, dxi float64) {
	if α >= 20 || α <= -20 {
		return math.Copysign(1, α) - 1.0/α, 1.0 / (α * α)
	}
	if math.Abs(α) < 1e-2 {
		α2 := α * α
		return α/3.0 - α*α2/45.0 + 2.0*α*α2*α2/945.0, 1.0/3.0 - α2/15.0 + 2.0*α2*α2/189.0
	}
	s := math.Sinh(α)
	return 1.0/math.Tanh(α) - 1.0/α, 1.0/(α*α) - 1.0/(s*s)
}
