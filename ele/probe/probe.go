// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package probe implements auxiliary quantities that expose the effective saturation of
// one phase and its derivatives w.r.t the Richards variables
package probe

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/seff"
)

// Probe computes a scalar from the Richards variables at one point
//  Note: probes are immutable and safe for concurrent use
type Probe interface {
	Key() string               // label of probed quantity; e.g. "dseff0d1"
	Value(p []float64) float64 // computes quantity at p
}

// Seff returns seff_i(p)
type Seff struct {
	prv   *seff.Provider
	Phase int // phase index
}

// SeffPrime returns ∂seff_i/∂p_wrt
type SeffPrime struct {
	prv   *seff.Provider
	Phase int // phase index
	Wrt   int // index of variable
}

// SeffPrimePrime returns ∂²seff_i/∂p_wrt1∂p_wrt2
type SeffPrimePrime struct {
	prv   *seff.Provider
	Phase int // phase index
	Wrt1  int // index of first variable
	Wrt2  int // index of second variable
}

// NewSeff returns a new seff probe
func NewSeff(prv *seff.Provider, phase int) (o *Seff, err error) {
	if err = check(prv, "phase", phase); err != nil {
		return
	}
	return &Seff{prv, phase}, nil
}

// NewSeffPrime returns a new probe of the first derivative of seff
func NewSeffPrime(prv *seff.Provider, phase, wrt int) (o *SeffPrime, err error) {
	if err = check(prv, "phase", phase); err != nil {
		return
	}
	if err = seff.CheckIndex("wrtnum", wrt, prv.N); err != nil {
		return
	}
	return &SeffPrime{prv, phase, wrt}, nil
}

// NewSeffPrimePrime returns a new probe of the second derivative of seff
func NewSeffPrimePrime(prv *seff.Provider, phase, wrt1, wrt2 int) (o *SeffPrimePrime, err error) {
	if err = check(prv, "phase", phase); err != nil {
		return
	}
	if err = seff.CheckIndex("wrtnum1", wrt1, prv.N); err != nil {
		return
	}
	if err = seff.CheckIndex("wrtnum2", wrt2, prv.N); err != nil {
		return
	}
	return &SeffPrimePrime{prv, phase, wrt1, wrt2}, nil
}

// New allocates a probe by name
//  Parameters:
//   "seff"           -- phase
//   "seffprime"      -- phase, wrt
//   "seffprimeprime" -- phase, wrt1, wrt2
func New(name string, prv *seff.Provider, prms fun.Prms) (Probe, error) {
	idx := map[string]int{"phase": 0, "wrt": 0, "wrt1": 0, "wrt2": 0}
	for _, p := range prms {
		if _, ok := idx[p.N]; !ok {
			return nil, chk.Err("probe %q: parameter named %q is incorrect\n", name, p.N)
		}
		idx[p.N] = int(p.V)
	}
	switch name {
	case "seff":
		return NewSeff(prv, idx["phase"])
	case "seffprime":
		return NewSeffPrime(prv, idx["phase"], idx["wrt"])
	case "seffprimeprime":
		return NewSeffPrimePrime(prv, idx["phase"], idx["wrt1"], idx["wrt2"])
	}
	return nil, chk.Err("probe %q is not available in 'probe' database", name)
}

// Names returns the names of all available probes
func Names() []string {
	return []string{"seff", "seffprime", "seffprimeprime"}
}

// Key returns label of probed quantity
func (o Seff) Key() string { return io.Sf("seff%d", o.Phase) }

// Value computes seff_i(p)
func (o Seff) Value(p []float64) float64 {
	return o.prv.Models[o.Phase].Seff(p)
}

// Key returns label of probed quantity
func (o SeffPrime) Key() string { return io.Sf("dseff%dd%d", o.Phase, o.Wrt) }

// Value computes ∂seff_i/∂p_wrt
func (o SeffPrime) Value(p []float64) float64 {
	ds := make([]float64, o.prv.N)
	o.prv.Models[o.Phase].Dseff(ds, p)
	return ds[o.Wrt]
}

// Key returns label of probed quantity
func (o SeffPrimePrime) Key() string { return io.Sf("d2seff%dd%dd%d", o.Phase, o.Wrt1, o.Wrt2) }

// Value computes ∂²seff_i/∂p_wrt1∂p_wrt2
func (o SeffPrimePrime) Value(p []float64) float64 {
	d2s := la.MatAlloc(o.prv.N, o.prv.N)
	o.prv.Models[o.Phase].D2seff(d2s, p)
	return d2s[o.Wrt1][o.Wrt2]
}

// check checks provider and phase index
func check(prv *seff.Provider, what string, idx int) error {
	if prv == nil {
		return chk.Err("probe requires an effective saturation provider")
	}
	return seff.CheckIndex(what, idx, prv.N)
}
