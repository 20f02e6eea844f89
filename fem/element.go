// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/hereiam-at-mit-dot-edu/moose/ele/richards"
	"github.com/hereiam-at-mit-dot-edu/moose/shp"
)

// Element holds the connectivity and the local residual and Jacobian of one element
//  local equations: m・nph + phase where m is the local vertex index
type Element struct {
	Id    int         // element id
	Verts []int       // [nverts] node ids; corners first
	X     []float64   // [nverts] elevations of vertices
	Rl    []float64   // [nverts・nph] local residual
	Kl    [][]float64 // [nverts・nph][nverts・nph] local Jacobian
}

// newElement allocates a new element
func newElement(id int, verts []int, nodes []*Node, nph int) *Element {
	nv := len(verts)
	o := &Element{Id: id, Verts: verts, X: make([]float64, nv)}
	for m, vid := range verts {
		o.X[m] = nodes[vid].Z
	}
	o.Rl = make([]float64, nv*nph)
	o.Kl = la.MatAlloc(nv*nph, nv*nph)
	return o
}

// worker holds the scratchpad of one assembling goroutine
type worker struct {
	shape *shp.Shape    // shape structure (own copy)
	ctx   *richards.Ctx // quadrature-point context
	dxidx [][]float64   // [1][1] dξ/dx
}

// newWorker allocates a new worker
func newWorker(proto *shp.Shape, nph int) *worker {
	return &worker{
		shape: proto.GetCopy(),
		ctx:   richards.NewCtx(nph, 1),
		dxidx: [][]float64{{0}},
	}
}

// calcElem computes the local residual and (optionally) the local Jacobian of element e
func (o *Domain) calcElem(w *worker, e *Element, withK bool) (err error) {

	// clear
	nph := o.Nph
	la.VecFill(e.Rl, 0)
	if withK {
		for i := range e.Kl {
			la.VecFill(e.Kl[i], 0)
		}
	}

	// loop over integration points
	S, G, H := w.shape.S, w.shape.G, w.shape.H
	c := w.ctx
	for _, ip := range w.shape.Ips {

		// shape functions and derivatives
		err = w.shape.CalcAtIp(e.X, ip, true)
		if err != nil {
			return chk.Err("element %d: %v", e.Id, err)
		}
		coef := w.shape.J * ip[1]

		// variables at integration point
		c.X[0] = 0
		for j := 0; j < nph; j++ {
			c.V.P[j], c.V.GradP[j][0], c.V.HessP[j][0][0], c.Pold[j] = 0, 0, 0, 0
		}
		for m, vid := range e.Verts {
			c.X[0] += S[m] * e.X[m]
			for j := 0; j < nph; j++ {
				y := o.Sol.Y[vid*nph+j]
				c.V.P[j] += S[m] * y
				c.V.GradP[j][0] += G[m] * y
				c.V.HessP[j][0][0] += H[m] * y
				c.Pold[j] += S[m] * o.Sol.Yold[vid*nph+j]
			}
		}
		c.T, c.Dt = o.Sol.T, o.Sol.Dt
		w.dxidx[0][0] = w.shape.DRdx
		err = c.Calc(o.Mdl, w.dxidx)
		if err != nil {
			return chk.Err("element %d: %v", e.Id, err)
		}

		// add contributions of all kernels
		for _, ki := range o.Kernels {
			p := ki.Var
			for m := range e.Verts {
				c.Test, c.GradTest[0] = S[m], G[m]
				e.Rl[m*nph+p] += coef * ki.K.Residual(c)
				if !withK {
					continue
				}
				for n := range e.Verts {
					c.Phi, c.GradPhi[0], c.HessPhi[0][0] = S[n], G[n], H[n]
					for q := 0; q < nph; q++ {
						var jac float64
						if q == p {
							jac = ki.K.Jacobian(c)
						} else if !o.SkipOffDiag {
							jac = ki.K.OffDiagJacobian(c, q)
						}
						e.Kl[m*nph+p][n*nph+q] += coef * jac
					}
				}
			}
		}
	}
	return
}
