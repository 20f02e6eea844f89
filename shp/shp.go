// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements one-dimensional shape structures with second derivatives
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// Ipoint holds the natural coordinate and weight of an integration point: [r, w]
type Ipoint []float64

// ShpFunc is the shape functions callback function
//  S     -- [nverts] shape functions
//  dSdR  -- [nverts] first derivatives w.r.t r
//  d2SdR -- [nverts] second derivatives w.r.t r
type ShpFunc func(S, dSdR, d2SdR []float64, r float64, derivs bool)

// Shape holds the geometry and the scratchpad of one-dimensional shape functions
//  Note: nodes are ordered as in gofem: corners first, i.e. lin3 => [-1, +1, 0]
type Shape struct {

	// geometry
	Type      string    // name; e.g. "lin2"
	Func      ShpFunc   // shape/derivs function callback function
	Nverts    int       // number of vertices in cell; e.g. "lin3" => 3
	NatCoords []float64 // [nverts] natural coordinates
	Ips       []Ipoint  // default integration points

	// scratchpad
	S     []float64 // [nverts] shape functions
	DSdR  []float64 // [nverts] derivatives of S w.r.t natural coordinate
	D2SdR []float64 // [nverts] second derivatives of S w.r.t natural coordinate
	G     []float64 // [nverts] G == dSdx. derivative of shape function
	H     []float64 // [nverts] H == d²S/dx². second derivative of shape function
	J     float64   // Jacobian: dx/dR
	DRdx  float64   // dR/dx == 1/J
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := &Shape{
		Type:      o.Type,
		Func:      o.Func,
		Nverts:    o.Nverts,
		NatCoords: la.VecClone(o.NatCoords),
		Ips:       o.Ips,
	}
	p.initScratchpad()
	return p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns a new copy of an existent Shape structure
func Get(geoType string) (*Shape, error) {
	s, ok := factory[geoType]
	if !ok {
		return nil, chk.Err("shape %q is not available in 'shp' database", geoType)
	}
	return s.GetCopy(), nil
}

// Names returns the names of all available shapes
func Names() (names []string) {
	for name := range factory {
		names = append(names, name)
	}
	return
}

// IpRealCoord returns the real coordinate of an integration point
//  x -- [nverts] coordinates of vertices
func (o *Shape) IpRealCoord(x []float64, ip Ipoint) (y float64) {
	o.Func(o.S, o.DSdR, o.D2SdR, ip[0], false)
	for m := 0; m < o.Nverts; m++ {
		y += o.S[m] * x[m]
	}
	return
}

// CalcAtIp calculates S, G, H and J at integration point
//  x -- [nverts] coordinates of vertices
//
//   G = dS/dR / J     H = (d²S/dR² - G・d²x/dR²) / J²
func (o *Shape) CalcAtIp(x []float64, ip Ipoint, derivs bool) (err error) {

	// S and derivatives w.r.t R
	o.Func(o.S, o.DSdR, o.D2SdR, ip[0], derivs)
	if !derivs {
		return
	}

	// Jacobian
	var d2xdR float64
	o.J = 0
	for m := 0; m < o.Nverts; m++ {
		o.J += x[m] * o.DSdR[m]
		d2xdR += x[m] * o.D2SdR[m]
	}
	if math.Abs(o.J) < MINDET {
		return chk.Err("Jacobian of %s element is too small. J = %g is invalid", o.Type, o.J)
	}
	o.DRdx = 1.0 / o.J

	// G and H
	for m := 0; m < o.Nverts; m++ {
		o.G[m] = o.DSdR[m] * o.DRdx
		o.H[m] = (o.D2SdR[m] - o.G[m]*d2xdR) * o.DRdx * o.DRdx
	}
	return
}

// initScratchpad initialises scratchpad
func (o *Shape) initScratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = make([]float64, o.Nverts)
	o.D2SdR = make([]float64, o.Nverts)
	o.G = make([]float64, o.Nverts)
	o.H = make([]float64, o.Nverts)
}
