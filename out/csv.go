// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/maseology/mmio"
)

// ProfilePath returns the path of the CSV file with the profile at output time index tidx
func ProfilePath(dirout, fnkey string, tidx int) string {
	return filepath.Join(dirout, io.Sf("%s_%04d.csv", fnkey, tidx))
}

// WriteProfile writes the profile at output time index tidx to a CSV file
func (o *Results) WriteProfile(fn string, tidx int) (err error) {
	rows, err := o.Profile(tidx)
	if err != nil {
		return
	}
	csvw := mmio.NewCSVwriter(fn)
	defer csvw.Close()
	if err = csvw.WriteHead(strings.Join(o.Keys, ",")); err != nil {
		return chk.Err("cannot write header of %q: %v", fn, err)
	}
	line := make([]interface{}, len(o.Keys))
	for _, r := range rows {
		for j, v := range r {
			line[j] = v
		}
		csvw.WriteLine(line...)
	}
	return
}

// WriteProfiles writes the profiles at all output times; returns the filenames
func (o *Results) WriteProfiles(dirout string) (fns []string, err error) {
	mmio.MakeDir(dirout)
	for tidx := range o.Sum.OutTimes {
		fn := ProfilePath(dirout, o.Main.Sim.Key, tidx)
		err = o.WriteProfile(fn, tidx)
		if err != nil {
			return
		}
		fns = append(fns, fn)
	}
	return
}

// WriteHistory writes the time series of all columns at node nid to a CSV file
func (o *Results) WriteHistory(fn string, nid int) (err error) {
	hist := make([][]float64, len(o.Keys))
	for j, key := range o.Keys {
		hist[j], err = o.History(key, nid)
		if err != nil {
			return
		}
	}
	csvw := mmio.NewCSVwriter(fn)
	defer csvw.Close()
	if err = csvw.WriteHead("t," + strings.Join(o.Keys, ",")); err != nil {
		return chk.Err("cannot write header of %q: %v", fn, err)
	}
	line := make([]interface{}, 1+len(o.Keys))
	for tidx, t := range o.Sum.OutTimes {
		line[0] = t
		for j := range o.Keys {
			line[1+j] = hist[j][tidx]
		}
		csvw.WriteLine(line...)
	}
	return
}
