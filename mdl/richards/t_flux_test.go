// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richards

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/supg"
)

// onePhase returns K=1, kr=1, μ=1, ρ=0 and seff(p)=p
func onePhase(tst *testing.T, ndim int) *Model {
	mdl, err := New(ndim, fun.Prms{&fun.Prm{N: "k", V: 1}}, []*PhaseData{{
		Seff: "lin", SeffPrms: fun.Prms{&fun.Prm{N: "ivar", V: 0}},
		Krel: "unity",
		Dens: "cte", DensPrms: fun.Prms{&fun.Prm{N: "R0", V: 0}},
		Visc: "cte", ViscPrms: fun.Prms{&fun.Prm{N: "mu", V: 1}},
	}}, "", nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	return mdl
}

// twoPhase returns a water-gas system with van Genuchten saturation
func twoPhase(tst *testing.T, ndim int, stab string) *Model {
	vg := fun.Prms{
		&fun.Prm{N: "al", V: 1},
		&fun.Prm{N: "m", V: 0.5},
		&fun.Prm{N: "iw", V: 0},
		&fun.Prm{N: "ig", V: 1},
	}
	mdl, err := New(ndim, fun.Prms{
		&fun.Prm{N: "k", V: 1.5},
		&fun.Prm{N: "por", V: 0.3},
		&fun.Prm{N: "g", V: 10},
	}, []*PhaseData{{
		Seff: "vg2water", SeffPrms: vg,
		Krel: "power", KrelPrms: fun.Prms{&fun.Prm{N: "n", V: 2}},
		Dens: "bulk", DensPrms: fun.Prms{&fun.Prm{N: "R0", V: 1}, &fun.Prm{N: "B", V: 20}},
		Visc: "exp", ViscPrms: fun.Prms{&fun.Prm{N: "mu0", V: 1}, &fun.Prm{N: "c", V: 0.2}},
	}, {
		Seff: "vg2gas", SeffPrms: vg,
		Krel: "vg", KrelPrms: fun.Prms{&fun.Prm{N: "m", V: 0.5}},
		Dens: "lin", DensPrms: fun.Prms{&fun.Prm{N: "R0", V: 0.1}, &fun.Prm{N: "C", V: 0.01}},
		Visc: "cte", ViscPrms: fun.Prms{&fun.Prm{N: "mu", V: 0.02}},
	}}, stab, nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	if ndim == 2 {
		mdl.K[0][1], mdl.K[1][0] = 0.2, 0.2
	}
	return mdl
}

func Test_flux01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux01. single phase with constant mobility")

	for ndim := 1; ndim <= 3; ndim++ {
		mdl := onePhase(tst, ndim)
		if mdl == nil {
			return
		}
		v := NewVarSet(1, ndim)
		v.P[0] = 0.4
		for a := 0; a < ndim; a++ {
			v.GradP[0][a] = float64(a+1) * 0.7
		}
		res := NewFluxVars(1, ndim)
		err := mdl.CalcFlux(res, v)
		if err != nil {
			tst.Errorf("CalcFlux failed: %v\n", err)
			return
		}
		eye := make([][]float64, ndim)
		zmat := make([][]float64, ndim)
		zvec := make([]float64, ndim)
		for a := 0; a < ndim; a++ {
			eye[a] = make([]float64, ndim)
			zmat[a] = make([]float64, ndim)
			eye[a][a] = 1
		}
		chk.Vector(tst, "flux", 1e-17, res.Flux[0], v.GradP[0])
		chk.Vector(tst, "dflux_dv", 1e-17, res.DfluxDv[0][0], zvec)
		chk.Matrix(tst, "dflux_dgradv", 1e-17, res.DfluxDgradv[0][0], eye)
		chk.Vector(tst, "d2flux_dvdv", 1e-17, res.D2fluxDvDv[0][0][0], zvec)
		chk.Matrix(tst, "d2flux_dgradvdv", 1e-17, res.D2fluxDgradvDv[0][0][0], zmat)
		chk.Matrix(tst, "d2flux_dvdgradv", 1e-17, res.D2fluxDvDgradv[0][0][0], zmat)
	}
}

func Test_flux02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux02. two phases: derivatives")

	for ndim := 1; ndim <= 2; ndim++ {
		mdl := twoPhase(tst, ndim, "")
		if mdl == nil {
			return
		}
		v := NewVarSet(2, ndim)
		for _, state := range [][]float64{{-0.8, 0.1}, {-0.2, 0.6}, {0.3, 1.4}} {
			copy(v.P, state)
			for a := 0; a < ndim; a++ {
				v.GradP[0][a] = -3.0 + float64(a)
				v.GradP[1][a] = 0.5 * float64(a+1)
			}
			io.Pforan("ndim = %d  p = %v  seff = %v\n", ndim, v.P, mdl.Seff.Seff(v.P))
			CheckDerivs(tst, mdl, v, 1e-5, 1e-8, 1e-6, chk.Verbose)
		}
	}
}

func Test_flux03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux03. cross-phase coupling")

	mdl := twoPhase(tst, 1, "")
	if mdl == nil {
		return
	}
	v := NewVarSet(2, 1)
	v.P[0], v.P[1] = -0.5, 0.2
	v.GradP[0][0], v.GradP[1][0] = 1.0, -2.0
	res := NewFluxVars(2, 1)
	err := mdl.CalcFlux(res, v)
	if err != nil {
		tst.Errorf("CalcFlux failed: %v\n", err)
		return
	}
	io.Pforan("dflux_dv[1][0] = %v\n", res.DfluxDv[1][0])
	if res.DfluxDv[1][0][0] == 0 {
		tst.Errorf("dflux_dv[1][0] must be non-zero\n")
	}
	if res.DfluxDv[0][1][0] == 0 {
		tst.Errorf("dflux_dv[0][1] must be non-zero\n")
	}
	chk.Scalar(tst, "dflux_dgradv[1][0]", 1e-17, res.DfluxDgradv[1][0][0][0], 0)

	// perturbation of phase 0 changes flux of phase 1
	f0 := res.Flux[1][0]
	v.P[0] += 1e-3
	mdl.CalcFlux(res, v)
	if res.Flux[1][0] == f0 {
		tst.Errorf("flux of phase 1 must depend on p0\n")
	}
}

func Test_flux04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux04. vanishing second derivatives")

	// mobilities depend on own variable only; constant density and viscosity
	lin := func(i int) fun.Prms {
		return fun.Prms{&fun.Prm{N: "a", V: 0.1}, &fun.Prm{N: "b", V: 0.5}, &fun.Prm{N: "ivar", V: float64(i)}}
	}
	mdl, err := New(2, fun.Prms{&fun.Prm{N: "kx", V: 1}, &fun.Prm{N: "ky", V: 2}, &fun.Prm{N: "g", V: 10}}, []*PhaseData{{
		Seff: "lin", SeffPrms: lin(0),
		Krel: "corey", KrelPrms: fun.Prms{&fun.Prm{N: "n", V: 3}},
		Dens: "cte", DensPrms: fun.Prms{&fun.Prm{N: "R0", V: 1}},
		Visc: "cte",
	}, {
		Seff: "lin", SeffPrms: lin(1),
		Krel: "unity",
		Dens: "cte", DensPrms: fun.Prms{&fun.Prm{N: "R0", V: 0.5}},
		Visc: "cte",
	}}, "", nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	v := NewVarSet(2, 2)
	v.P[0], v.P[1] = 0.7, 1.1
	v.GradP[0][0], v.GradP[0][1] = 1, 2
	v.GradP[1][0], v.GradP[1][1] = -1, 3
	res := NewFluxVars(2, 2)
	err = mdl.CalcFlux(res, v)
	if err != nil {
		tst.Errorf("CalcFlux failed: %v\n", err)
		return
	}

	zvec := []float64{0, 0}
	zmat := [][]float64{{0, 0}, {0, 0}}

	// phase 0: m depends on p0 only
	chk.Vector(tst, "d2flux0/dv0dv1", 1e-17, res.D2fluxDvDv[0][0][1], zvec)
	chk.Vector(tst, "d2flux0/dv1dv0", 1e-17, res.D2fluxDvDv[0][1][0], zvec)
	chk.Vector(tst, "d2flux0/dv1dv1", 1e-17, res.D2fluxDvDv[0][1][1], zvec)
	chk.Matrix(tst, "d2flux0/dgradv0dv1", 1e-17, res.D2fluxDgradvDv[0][0][1], zmat)
	chk.Matrix(tst, "d2flux0/dv1dgradv0", 1e-17, res.D2fluxDvDgradv[0][1][0], zmat)
	if res.D2fluxDvDv[0][0][0][1] == 0 {
		tst.Errorf("d2flux0/dv0dv0 must be non-zero\n")
	}

	// phase 1: constant mobility => all second derivatives vanish
	for j := 0; j < 2; j++ {
		for k := 0; k < 2; k++ {
			chk.Vector(tst, io.Sf("d2flux1/dv%ddv%d", j, k), 1e-17, res.D2fluxDvDv[1][j][k], zvec)
			chk.Matrix(tst, io.Sf("d2flux1/dgradv%ddv%d", j, k), 1e-17, res.D2fluxDgradvDv[1][j][k], zmat)
			chk.Matrix(tst, io.Sf("d2flux1/dv%ddgradv%d", j, k), 1e-17, res.D2fluxDvDgradv[1][j][k], zmat)
		}
	}
}

func Test_flux05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux05. errors")

	mdl := onePhase(tst, 1)
	if mdl == nil {
		return
	}
	res := NewFluxVars(1, 1)
	if err := mdl.CalcFlux(res, NewVarSet(2, 1)); err == nil {
		tst.Errorf("wrong number of variables must fail\n")
	}
	if err := mdl.CheckPhase("phase", 1); err == nil {
		tst.Errorf("phase 1 with n=1 must fail\n")
	}

	_, err := New(1, fun.Prms{&fun.Prm{N: "por", V: 0.3}}, nil, "", nil)
	if err == nil {
		tst.Errorf("missing permeability must fail\n")
	}
	_, err = New(1, fun.Prms{&fun.Prm{N: "k", V: 1}}, []*PhaseData{{Seff: "lin", Krel: "unity", Dens: "cte", Visc: "cte"}}, "upwind", nil)
	if err == nil {
		tst.Errorf("unknown supg model must fail\n")
	}
	_, err = New(1, fun.Prms{&fun.Prm{N: "k", V: 1}}, []*PhaseData{{Seff: "lin", SeffPrms: fun.Prms{&fun.Prm{N: "ivar", V: 1}}, Krel: "unity", Dens: "cte", Visc: "cte"}}, "", nil)
	if err == nil {
		tst.Errorf("seff variable index out of range must fail\n")
	}
	io.Pforan("%v\n", err)
}

func Test_flux06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux06. SUPG variables of all phases")

	mdl := twoPhase(tst, 2, "standard")
	if mdl == nil {
		return
	}
	dxidx := [][]float64{{2, 0}, {0, 4}}
	v := NewVarSet(2, 2)
	v.P[0], v.P[1] = -0.5, 0.2
	v.GradP[0][0], v.GradP[0][1] = 1.0, -2.0
	v.GradP[1][0], v.GradP[1][1] = 0.3, 0.1
	res := supg.NewVars(2, 2)
	tmp := supg.NewVars(2, 2)
	mdl.CalcSupg(res, v, dxidx)
	for i := 0; i < 2; i++ {
		if res.Tau[i] <= 0 {
			tst.Errorf("τ of phase %d must be positive\n", i)
			return
		}
		p0 := v.P[i]
		for a := 0; a < 2; a++ {
			dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (r float64) {
				v.P[i] = x
				mdl.CalcSupg(tmp, v, dxidx)
				v.P[i] = p0
				return tmp.TauVel[i][a]
			}, p0, 1e-5)
			chk.AnaNum(tst, io.Sf("∂(τv)%d_%d/∂p%d", i, a, i), 1e-8, res.DtauvelDv[i][a], dnum, chk.Verbose)
		}
	}
}
