// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hereiam-at-mit-dot-edu/moose/ele/probe"
	"github.com/hereiam-at-mit-dot-edu/moose/ele/richards"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/fluid"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/relperm"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/seff"
	"github.com/hereiam-at-mit-dot-edu/moose/mdl/supg"
	"github.com/hereiam-at-mit-dot-edu/moose/shp"
	"github.com/spf13/cobra"
)

// registries returns the names in all registries
func registries() []struct {
	title string
	names []string
} {
	return []struct {
		title string
		names []string
	}{
		{"effective saturation", seff.Names()},
		{"relative permeability", relperm.Names()},
		{"density", fluid.DensityNames()},
		{"viscosity", fluid.ViscosityNames()},
		{"stabilisation", supg.Names()},
		{"kernels", richards.Names()},
		{"probes", probe.Names()},
		{"shapes", shp.Names()},
	}
}

// newModelsCmd returns the command that lists all available models
func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models, kernels, probes and shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, r := range registries() {
				names := append([]string{}, r.names...)
				sort.Strings(names)
				fmt.Fprintf(w, "%-22s: %s\n", r.title, strings.Join(names, ", "))
			}
			return nil
		},
	}
}
