// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements FE simulation output handling for analyses and plotting
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/google/uuid"
	"github.com/hereiam-at-mit-dot-edu/moose/ele/probe"
	"github.com/hereiam-at-mit-dot-edu/moose/fem"
	rmdl "github.com/hereiam-at-mit-dot-edu/moose/mdl/richards"
	"github.com/hereiam-at-mit-dot-edu/moose/shp"
)

// Results holds the results of one simulation and the structures to compute nodal quantities
//  Column keys of profiles:
//   z                  -- elevation
//   p0, p1, ...        -- variables
//   seff0, dseff0d1... -- probes
//   flux0, flux1, ...  -- Darcy flux of each phase (nodal average of adjacent elements)
type Results struct {
	Main   *fem.Main     // finished simulation
	Dom    *fem.Domain   // [from Main] domain
	Sum    *fem.Summary  // [from Dom] summary
	Probes []probe.Probe // probes
	Keys   []string      // keys of columns in profiles
	RunId  string        // unique identifier of this output

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot

	// scratchpad
	shape *shp.Shape     // shape structure
	vars  *rmdl.VarSet   // variables at node
	flux  *rmdl.FluxVars // flux at node
}

// New returns a new Results structure
func New(main *fem.Main) (o *Results, err error) {
	if main == nil || main.Dom == nil {
		return nil, chk.Err("cannot handle results without simulation")
	}
	o = new(Results)
	o.Main = main
	o.Dom = main.Dom
	o.Sum = main.Dom.Summary
	o.RunId = uuid.New().String()

	// probes
	mdl := o.Dom.Mdl
	for i, pd := range main.Sim.Probes {
		p, err := probe.New(pd.Type, mdl.Seff, pd.Prms)
		if err != nil {
			return nil, chk.Err("cannot allocate probe # %d:\n%v", i, err)
		}
		o.Probes = append(o.Probes, p)
	}

	// keys
	nph := o.Dom.Nph
	o.Keys = []string{"z"}
	for i := 0; i < nph; i++ {
		o.Keys = append(o.Keys, io.Sf("p%d", i))
	}
	for _, p := range o.Probes {
		o.Keys = append(o.Keys, p.Key())
	}
	for i := 0; i < nph; i++ {
		o.Keys = append(o.Keys, io.Sf("flux%d", i))
	}

	// scratchpad
	o.shape, err = shp.Get(main.Sim.Mesh.Type)
	if err != nil {
		return nil, err
	}
	o.vars = rmdl.NewVarSet(nph, 1)
	o.flux = rmdl.NewFluxVars(nph, 1)
	return
}

// Times returns the output times
func (o *Results) Times() []float64 {
	return o.Sum.OutTimes
}

// KeyIndex returns the column index of key or -1 if not found
func (o *Results) KeyIndex(key string) int {
	for i, k := range o.Keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Profile computes all columns at all nodes at output time index tidx
//  rows -- [nnod][len(Keys)]
func (o *Results) Profile(tidx int) (rows [][]float64, err error) {

	// check
	if tidx < 0 || tidx >= len(o.Sum.Hist) {
		return nil, chk.Err("output time index must be in [0, %d). %d is invalid", len(o.Sum.Hist), tidx)
	}
	y := o.Sum.Hist[tidx]
	nph := o.Dom.Nph
	nnod := len(o.Dom.Nodes)

	// nodal fluxes
	flux, err := o.nodalFlux(y)
	if err != nil {
		return
	}

	// rows
	rows = la.MatAlloc(nnod, len(o.Keys))
	p := make([]float64, nph)
	for i, n := range o.Dom.Nodes {
		for j, eq := range n.Eqs {
			p[j] = y[eq]
		}
		rows[i][0] = n.Z
		copy(rows[i][1:], p)
		for k, prb := range o.Probes {
			rows[i][1+nph+k] = prb.Value(p)
		}
		copy(rows[i][1+nph+len(o.Probes):], flux[i])
	}
	return
}

// Column returns the values of key along the column at output time index tidx
func (o *Results) Column(key string, tidx int) (vals []float64, err error) {
	col := o.KeyIndex(key)
	if col < 0 {
		return nil, chk.Err("cannot find key %q in %v", key, o.Keys)
	}
	rows, err := o.Profile(tidx)
	if err != nil {
		return
	}
	vals = make([]float64, len(rows))
	for i, r := range rows {
		vals[i] = r[col]
	}
	return
}

// History returns the values of key at node nid for all output times
func (o *Results) History(key string, nid int) (vals []float64, err error) {
	if nid < 0 || nid >= len(o.Dom.Nodes) {
		return nil, chk.Err("node id must be in [0, %d). %d is invalid", len(o.Dom.Nodes), nid)
	}
	vals = make([]float64, len(o.Sum.Hist))
	for tidx := range o.Sum.Hist {
		col, err := o.Column(key, tidx)
		if err != nil {
			return nil, err
		}
		vals[tidx] = col[nid]
	}
	return
}

// nodalFlux computes the flux of all phases at nodes by averaging the values of adjacent elements
func (o *Results) nodalFlux(y []float64) (flux [][]float64, err error) {
	nph := o.Dom.Nph
	flux = la.MatAlloc(len(o.Dom.Nodes), nph)
	count := make([]float64, len(o.Dom.Nodes))
	S, G := o.shape.S, o.shape.G
	for _, e := range o.Dom.Elems {
		for m, vid := range e.Verts {
			err = o.shape.CalcAtIp(e.X, shp.Ipoint{o.shape.NatCoords[m], 0}, true)
			if err != nil {
				return
			}
			for j := 0; j < nph; j++ {
				o.vars.P[j], o.vars.GradP[j][0] = 0, 0
				for n, vjd := range e.Verts {
					o.vars.P[j] += S[n] * y[vjd*nph+j]
					o.vars.GradP[j][0] += G[n] * y[vjd*nph+j]
				}
			}
			err = o.Dom.Mdl.CalcFlux(o.flux, o.vars)
			if err != nil {
				return
			}
			for i := 0; i < nph; i++ {
				flux[vid][i] += o.flux.Flux[i][0]
			}
			count[vid]++
		}
	}
	for k := range flux {
		for i := 0; i < nph; i++ {
			flux[k][i] /= count[k]
		}
	}
	return
}
