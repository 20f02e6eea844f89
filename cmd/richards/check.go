// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/hereiam-at-mit-dot-edu/moose/fem"
	"github.com/spf13/cobra"
)

// newCheckCmd returns the command that compares the assembled Jacobian with a numerical one
func newCheckCmd(opts *options) *cobra.Command {
	var h, tol float64
	cmd := &cobra.Command{
		Use:   "check <simfile>",
		Short: "Compare the analytic Jacobian with central differences at the initial state",
		Long: `Assemble the Jacobian of the global system at the initial state and compare it
with central differences of the assembled residual. For transient simulations the
first time step is used, so that the mass-change terms are included.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := fem.NewMain(args[0], opts.alias, false, opts.verbose)
			if err != nil {
				return err
			}
			dom := sim.Dom
			err = dom.SetIniVals()
			if err != nil {
				return err
			}
			if !sim.Sim.Data.Steady {
				dom.Sol.T, dom.Sol.Dt = sim.Sim.Control.Dt, sim.Sim.Control.Dt
			}
			maxdiff, _, _, err := dom.CheckJacobian(h)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d equations: max |Ka - Kn| = %g\n", dom.Ny, maxdiff)
			if maxdiff > tol {
				return chk.Err("analytic and numerical Jacobians differ: %g > %g", maxdiff, tol)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&h, "h", 1e-6, "Step size of central differences")
	cmd.Flags().Float64Var(&tol, "tol", 1e-5, "Tolerance on the largest absolute difference")
	return cmd
}
