// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// NumJacobian computes dR/dy = -dfb/dy with central differences of the assembled residual
//  Note: Sol.Y is restored on exit; Fb holds the residual at the last perturbed state
func (o *Domain) NumJacobian(h float64) (Kn [][]float64, err error) {
	Kn = la.MatAlloc(o.Ny, o.Ny)
	fp := make([]float64, o.Ny)
	y := o.Sol.Y
	for j := 0; j < o.Ny; j++ {
		yj := y[j]
		y[j] = yj + h
		err = o.Assemble(false)
		if err != nil {
			y[j] = yj
			return
		}
		copy(fp, o.Fb)
		y[j] = yj - h
		err = o.Assemble(false)
		y[j] = yj
		if err != nil {
			return
		}
		for i := 0; i < o.Ny; i++ {
			Kn[i][j] = -(fp[i] - o.Fb[i]) / (2.0 * h)
		}
	}
	return
}

// KbMatrix returns a copy of the assembled Jacobian
func (o *Domain) KbMatrix() (K [][]float64) {
	K = la.MatAlloc(o.Ny, o.Ny)
	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Ny; j++ {
			K[i][j] = o.Kb.At(i, j)
		}
	}
	return
}

// CheckJacobian assembles the Jacobian at the current state and returns the largest absolute
// difference to the numerical Jacobian
func (o *Domain) CheckJacobian(h float64) (maxdiff float64, Ka, Kn [][]float64, err error) {
	err = o.Assemble(true)
	if err != nil {
		return
	}
	Ka = o.KbMatrix()
	Kn, err = o.NumJacobian(h)
	if err != nil {
		return
	}
	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Ny; j++ {
			maxdiff = math.Max(maxdiff, math.Abs(Ka[i][j]-Kn[i][j]))
		}
	}
	return
}
