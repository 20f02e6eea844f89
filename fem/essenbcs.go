// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// EssentialBc holds one essential (Dirichlet) boundary condition: y[Eq] = Fcn(t)
//  The equation is imposed by replacing the row of Kb and fb:
//
//     Kb[Eq][:] = δ(Eq,:)     fb[Eq] = Fcn(t) - y[Eq]
//
type EssentialBc struct {
	Key string   // key such as "p0" (variable 0 at bottom) or "p1top"
	Eq  int      // equation number
	Fcn fun.Func // prescribed value as function of time
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential bcs
type EssentialBcs struct {
	Bcs EbcArray // active essential bcs
}

// Set sets a boundary condition or replaces an existent one with the same equation number
func (o *EssentialBcs) Set(key string, eq int, fcn fun.Func) {
	for _, bc := range o.Bcs {
		if bc.Eq == eq {
			bc.Key, bc.Fcn = key, fcn
			return
		}
	}
	o.Bcs = append(o.Bcs, &EssentialBc{key, eq, fcn})
}

// FixIniVals sets prescribed values into the solution vector
func (o *EssentialBcs) FixIniVals(sol *Solution) {
	for _, bc := range o.Bcs {
		sol.Y[bc.Eq] = bc.Fcn.F(sol.T, nil)
	}
}

// AddToRhs replaces the rows of fb corresponding to prescribed equations
func (o *EssentialBcs) AddToRhs(fb []float64, sol *Solution) {
	for _, bc := range o.Bcs {
		fb[bc.Eq] = bc.Fcn.F(sol.T, nil) - sol.Y[bc.Eq]
	}
}

// AddToKb replaces the rows of Kb corresponding to prescribed equations
func (o *EssentialBcs) AddToKb(Kb *mat.Dense) {
	_, ny := Kb.Dims()
	for _, bc := range o.Bcs {
		for j := 0; j < ny; j++ {
			Kb.Set(bc.Eq, j, 0)
		}
		Kb.Set(bc.Eq, bc.Eq, 1)
	}
}

// List returns a simple list logging bcs at time t
func (o *EssentialBcs) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%25s%25s\n", "eq", "key", "value @ t=0", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%25.13f%25.13f\n", bc.Eq, bc.Key, bc.Fcn.F(0, nil), bc.Fcn.F(t, nil))
	}
	l += "==================================================================\n"
	return
}

// functions to implement Sort interface
func (o EbcArray) Len() int           { return len(o) }
func (o EbcArray) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool { return o[i].Eq < o[j].Eq }
