// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richards

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// VarSet holds the values of the Richards variables at one quadrature point
type VarSet struct {
	P     []float64     // [nph] pressure-like variables
	GradP [][]float64   // [nph][ndim] gradients
	HessP [][][]float64 // [nph][ndim][ndim] second derivatives w.r.t x
}

// NewVarSet allocates a new set of variables
func NewVarSet(nph, ndim int) *VarSet {
	return &VarSet{
		P:     make([]float64, nph),
		GradP: la.MatAlloc(nph, ndim),
		HessP: utl.Deep3alloc(nph, ndim, ndim),
	}
}

// FluxVars holds the flux of all phases and its derivatives at one quadrature point
//  i: phase, j and k: variables, a and b: space components
type FluxVars struct {
	Flux           [][]float64       // [i][a] flux_i
	DfluxDv        [][][]float64     // [i][j][a] ∂flux_i/∂v_j
	DfluxDgradv    [][][][]float64   // [i][j][a][b] ∂flux_ia/∂(∇v_j)_b
	D2fluxDvDv     [][][][]float64   // [i][j][k][a] ∂²flux_i/∂v_j∂v_k
	D2fluxDgradvDv [][][][][]float64 // [i][j][k][a][b] ∂²flux_ia/∂(∇v_j)_b∂v_k
	D2fluxDvDgradv [][][][][]float64 // [i][j][k][a][b] ∂²flux_ia/∂v_j∂(∇v_k)_b

	// scratchpad
	ds  []float64   // [nph] ∂seff_i/∂p_j
	d2s [][]float64 // [nph][nph] ∂²seff_i/∂p_j∂p_k
	dm  []float64   // [nph] ∂m_i/∂p_j
	d2m [][]float64 // [nph][nph] ∂²m_i/∂p_j∂p_k
	kw  []float64   // [ndim] K・(∇p - ρ・g)
	kg  []float64   // [ndim] K・g
}

// NewFluxVars allocates flux variables
func NewFluxVars(nph, ndim int) *FluxVars {
	return &FluxVars{
		Flux:           la.MatAlloc(nph, ndim),
		DfluxDv:        utl.Deep3alloc(nph, nph, ndim),
		DfluxDgradv:    alloc4(nph, nph, ndim, ndim),
		D2fluxDvDv:     alloc4(nph, nph, nph, ndim),
		D2fluxDgradvDv: alloc5(nph, nph, nph, ndim, ndim),
		D2fluxDvDgradv: alloc5(nph, nph, nph, ndim, ndim),
		ds:             make([]float64, nph),
		d2s:            la.MatAlloc(nph, nph),
		dm:             make([]float64, nph),
		d2m:            la.MatAlloc(nph, nph),
		kw:             make([]float64, ndim),
		kg:             make([]float64, ndim),
	}
}

// alloc4 allocates a 4-levels deep slice
func alloc4(n1, n2, n3, n4 int) (a [][][][]float64) {
	a = make([][][][]float64, n1)
	for i := 0; i < n1; i++ {
		a[i] = utl.Deep3alloc(n2, n3, n4)
	}
	return
}

// alloc5 allocates a 5-levels deep slice
func alloc5(n1, n2, n3, n4, n5 int) (a [][][][][]float64) {
	a = make([][][][][]float64, n1)
	for i := 0; i < n1; i++ {
		a[i] = alloc4(n2, n3, n4, n5)
	}
	return
}
