// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/hereiam-at-mit-dot-edu/moose/ele/richards"
	"github.com/hereiam-at-mit-dot-edu/moose/inp"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/fluid"
	rmdl "github.com/hereiam-at-mit-dot-edu/moose/mdl/richards"
	"github.com/hereiam-at-mit-dot-edu/moose/shp"
	"gonum.org/v1/gonum/mat"
)

// Node holds the data of one node of the column
type Node struct {
	Id  int     // node id == index in Nodes
	Z   float64 // elevation
	Eqs []int   // [nph] equation numbers; eq = id・nph + phase
}

// KernelInfo holds one kernel and the variable whose equation receives its contributions
type KernelInfo struct {
	Var int             // index of variable
	K   richards.Kernel // kernel
}

// Solution holds the solution state
type Solution struct {
	T    float64   // current time
	Dt   float64   // time step; zero means steady
	Y    []float64 // [ny] current values of variables
	Yold []float64 // [ny] values at the beginning of the time step
}

// Domain holds nodes, elements and the solution of a column of porous medium
type Domain struct {

	// input
	Sim     *inp.Simulation // simulation data
	Mdl     *rmdl.Model     // material model
	ShowMsg bool            // show messages

	// mesh
	Nph   int        // number of phases (variables per node)
	Nodes []*Node    // all nodes
	Elems []*Element // all elements

	// weak form and conditions
	Kernels     []*KernelInfo // all terms of the weak form
	EssenBcs    EssentialBcs  // essential boundary conditions
	SkipOffDiag bool          // do not assemble off-diagonal Jacobian terms

	// solution and linear system
	Ny  int        // total number of equations
	Sol *Solution  // solution state
	Fb  []float64  // residual == -fb
	Kb  *mat.Dense // Jacobian == dRdy
	Wb  []float64  // workspace: δy

	// results
	Summary *Summary // summary of run

	// assembly
	workers []*worker // one worker per goroutine
}

// NewDomain allocates a new domain
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {

	// input
	o = new(Domain)
	o.Sim = sim
	o.Mdl = sim.Mat.Model
	o.ShowMsg = verbose
	o.Nph = o.Mdl.Nph
	o.SkipOffDiag = sim.Solver.SkipOffDiag

	// shape
	proto, err := shp.Get(sim.Mesh.Type)
	if err != nil {
		return nil, err
	}
	nv := proto.Nverts

	// nodes
	nel := sim.Mesh.Nel
	nnod := nel*(nv-1) + 1
	dz := (sim.Mesh.Zmax - sim.Mesh.Zmin) / float64(nnod-1)
	o.Nodes = make([]*Node, nnod)
	for i := 0; i < nnod; i++ {
		o.Nodes[i] = &Node{Id: i, Z: sim.Mesh.Zmin + float64(i)*dz, Eqs: make([]int, o.Nph)}
		for p := 0; p < o.Nph; p++ {
			o.Nodes[i].Eqs[p] = i*o.Nph + p
		}
	}
	o.Nodes[nnod-1].Z = sim.Mesh.Zmax
	o.Ny = nnod * o.Nph

	// elements: corners first, then middle node
	o.Elems = make([]*Element, nel)
	for e := 0; e < nel; e++ {
		a := e * (nv - 1)
		verts := []int{a, a + nv - 1}
		if nv == 3 {
			verts = append(verts, a+1)
		}
		o.Elems[e] = newElement(e, verts, o.Nodes, o.Nph)
	}

	// kernels
	for _, kd := range sim.Kernels {
		fcn, err := sim.GetKernelFunc(kd)
		if err != nil {
			return nil, err
		}
		k, err := richards.New(kd.Type, o.Mdl, kd.Var, kd.Prms, fcn)
		if err != nil {
			return nil, chk.Err("cannot allocate kernel %q of variable %d:\n%v", kd.Type, kd.Var, err)
		}
		o.Kernels = append(o.Kernels, &KernelInfo{kd.Var, k})
	}

	// essential boundary conditions
	for _, bc := range sim.Ebcs {
		fcn, err := sim.GetEbcFunc(bc)
		if err != nil {
			return nil, err
		}
		node, key := o.Nodes[0], io.Sf("p%d", bc.Var)
		if bc.Side == "top" {
			node, key = o.Nodes[nnod-1], key+"top"
		}
		o.EssenBcs.Set(key, node.Eqs[bc.Var], fcn)
	}

	// solution and linear system
	o.Sol = &Solution{Y: make([]float64, o.Ny), Yold: make([]float64, o.Ny)}
	o.Fb = make([]float64, o.Ny)
	o.Wb = make([]float64, o.Ny)
	o.Kb = mat.NewDense(o.Ny, o.Ny, nil)
	o.Summary = new(Summary)

	// workers
	nw := sim.Solver.Nworkers
	if nw > nel {
		nw = nel
	}
	o.workers = make([]*worker, nw)
	for i := 0; i < nw; i++ {
		o.workers[i] = newWorker(proto, o.Nph)
	}

	// message
	if o.ShowMsg {
		io.Pf("> Domain allocated: %d nodes, %d %s elements, %d equations\n", nnod, nel, proto.Type, o.Ny)
	}
	return
}

// SetIniVals sets the initial values of all variables
func (o *Domain) SetIniVals() (err error) {
	la.VecFill(o.Sol.Y, 0)
	zmin, zmax := o.Sim.Mesh.Zmin, o.Sim.Mesh.Zmax
	for _, ini := range o.Sim.Inis {
		var col fluid.Column
		switch ini.Type {
		case "", "cte", "lin":
		case "hydrost":
			var ok bool
			col, ok = o.Mdl.Dens[ini.Var].(fluid.Column)
			if !ok {
				return chk.Err("hydrostatic initial values require a density model that computes a column of fluid (e.g. \"lin\")")
			}
			col.SetColumn(ini.H, -o.Mdl.Grav[0])
		default:
			return chk.Err("type of initial values %q is invalid", ini.Type)
		}
		for _, n := range o.Nodes {
			v := ini.Value
			switch {
			case col != nil:
				v, _ = col.Calc(n.Z)
			case ini.Type == "lin":
				v = ini.Value + (ini.Vtop-ini.Value)*(n.Z-zmin)/(zmax-zmin)
			}
			o.Sol.Y[n.Eqs[ini.Var]] = v
		}
	}
	o.EssenBcs.FixIniVals(o.Sol)
	copy(o.Sol.Yold, o.Sol.Y)
	return
}

// Values returns the nodal values of one variable
func (o *Domain) Values(ivar int) (z, v []float64) {
	z = make([]float64, len(o.Nodes))
	v = make([]float64, len(o.Nodes))
	for i, n := range o.Nodes {
		z[i] = n.Z
		v[i] = o.Sol.Y[n.Eqs[ivar]]
	}
	return
}

// NodeVars returns the values of all variables at node
func (o *Domain) NodeVars(n *Node) (p []float64) {
	p = make([]float64, o.Nph)
	for i, eq := range n.Eqs {
		p[i] = o.Sol.Y[eq]
	}
	return
}
