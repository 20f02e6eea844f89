// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label (raw; e.g. "p0")
	Ylbl  string    // vertical axis label (raw; e.g. "z")
	Style plt.Fmt   // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id      string       // unique identifier
	Title   string       // title of subplot
	Xscale  float64      // x-axis scale
	Yscale  float64      // y-axis scale
	Xlbl    string       // x-axis label (formatted; e.g. "$p_{0}$")
	Ylbl    string       // y-axis label (formatted; e.g. "$z$")
	GllArgs string       // extra arguments for Gll such as leg_out
	Data    []*PltEntity // data and styles to be plotted
}

// Splot activates a new subplot window
func (o *Results) Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle}
	o.Splots = append(o.Splots, s)
	o.Csplot = s
}

// SplotConfig configures units and scales of axes
func (o *Results) SplotConfig(xunit, yunit string, xscale, yscale float64) {
	if o.Csplot != nil {
		var xlabel, ylabel string
		if len(o.Csplot.Data) > 0 {
			xlabel = o.Csplot.Data[0].Xlbl
			ylabel = o.Csplot.Data[0].Ylbl
		}
		o.Csplot.Xlbl = GetTexLabel(xlabel, xunit)
		o.Csplot.Ylbl = GetTexLabel(ylabel, yunit)
		o.Csplot.Xscale = xscale
		o.Csplot.Yscale = yscale
	}
}

// Plot adds a curve to the current subplot
//  xKey -- "t" or column key; e.g. "p0"
//  yKey -- "t" or column key; e.g. "z"
//  idx  -- output time index if neither key is "t"; otherwise, node id
//  fm   -- formatting codes; e.g. plt.Fmt{C:"blue", L:"label"}
func (o *Results) Plot(xKey, yKey string, idx int, fm plt.Fmt) (err error) {
	var e PltEntity
	e.Alias = io.Sf("%s-%s-%d", xKey, yKey, idx)
	e.Style = fm
	timeSeries := xKey == "t" || yKey == "t"
	e.X, err = o.getVals(xKey, idx, timeSeries)
	if err != nil {
		return
	}
	e.Y, err = o.getVals(yKey, idx, timeSeries)
	if err != nil {
		return
	}
	e.Xlbl, e.Ylbl = xKey, yKey
	if len(e.X) != len(e.Y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(e.X), len(e.Y))
	}
	if o.Csplot == nil {
		o.Splot(io.Sf("%d", len(o.Splots)), "")
	}
	o.Csplot.Data = append(o.Csplot.Data, &e)
	o.SplotConfig("", "", 1, 1)
	return
}

// PlotProfiles adds one subplot for each key with the profiles at all output times
func (o *Results) PlotProfiles(keys ...string) (err error) {
	sty := GetDefaultStyles(o.Times())
	for _, key := range keys {
		o.Splot(key, "")
		for tidx := range o.Times() {
			err = o.Plot(key, "z", tidx, sty[tidx])
			if err != nil {
				return
			}
		}
	}
	return
}

// Draw draws or save figure with plot
//  dirout -- directory to save figure
//  fname  -- file name; e.g. myplot.eps or myplot.png. Use "" to show figure instead
//  nr     -- number of rows. Use -1 to compute best value
//  nc     -- number of columns. Use -1 to compute best value
//  split  -- split subplots into separated figures
func (o *Results) Draw(dirout, fname string, nr, nc int, split bool) {
	var fnk string // filename key
	var ext string // extension
	if fname != "" {
		fnk = io.FnKey(fname)
		ext = io.FnExt(fname)
	}
	nplots := len(o.Splots)
	if nr < 0 || nc < 0 {
		nr, nc = utl.BestSquare(nplots)
	}
	for k := 0; k < nplots; k++ {
		spl := o.Splots[k]
		if !split {
			plt.Subplot(nr, nc, k+1)
		}
		if spl.Title != "" {
			plt.Title(spl.Title, "")
		}
		for _, d := range spl.Data {
			if d.Style.L == "" {
				d.Style.L = d.Alias
			}
			x, y := d.X, d.Y
			if math.Abs(spl.Xscale) > 0 {
				x = make([]float64, len(d.X))
				la.VecCopy(x, spl.Xscale, d.X)
			}
			if math.Abs(spl.Yscale) > 0 {
				y = make([]float64, len(d.Y))
				la.VecCopy(y, spl.Yscale, d.Y)
			}
			plt.Plot(x, y, d.Style.GetArgs("clip_on=0"))
		}
		plt.Gll(spl.Xlbl, spl.Ylbl, spl.GllArgs)
		if split {
			savefig(dirout, fnk, ext, spl.Id)
			plt.Clf()
		}
	}
	if !split && fname != "" {
		savefig(dirout, fnk, ext, "")
	}
	if fname == "" {
		plt.Show()
	}
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func savefig(dirout, fnk, ext, id string) {
	fn := fnk + ext
	if id != "" {
		fn = fnk + "_" + id + ext
	}
	if dirout == "" {
		plt.Save(fn)
	} else {
		plt.SaveD(dirout, fn)
	}
}

// getVals returns the values of key
//  timeSeries -- idx is a node id and the values are taken at all output times;
//                otherwise idx is an output time index and values are taken at all nodes
func (o *Results) getVals(key string, idx int, timeSeries bool) ([]float64, error) {
	if key == "t" {
		return o.Times(), nil
	}
	if timeSeries {
		return o.History(key, idx)
	}
	return o.Column(key, idx)
}
