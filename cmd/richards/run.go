// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/hereiam-at-mit-dot-edu/moose/fem"
	"github.com/hereiam-at-mit-dot-edu/moose/out"
	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
)

// newRunCmd returns the command that solves a simulation and writes its results
func newRunCmd(opts *options) *cobra.Command {
	var plot bool
	var history int
	cmd := &cobra.Command{
		Use:   "run <simfile>",
		Short: "Solve a simulation and write results",
		Long: `Solve a simulation and write the nodal profiles at all output times (CSV) and a
summary with a unique run id (JSON) into the output directory of the simulation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tt := mmio.NewTimer()

			// run
			sim, err := fem.NewMain(args[0], opts.alias, true, opts.verbose)
			if err != nil {
				return err
			}
			err = sim.Run()
			if err != nil {
				return chk.Err("run failed:\n%v", err)
			}
			if opts.verbose {
				tt.Lap("simulation complete")
			}

			// output
			res, err := out.New(sim)
			if err != nil {
				return err
			}
			dirout := sim.Sim.DirOut
			sum, err := res.WriteAll(dirout)
			if err != nil {
				return err
			}
			if history >= 0 {
				err = res.WriteHistory(fmt.Sprintf("%s/%s_hist%d.csv", dirout, sim.Sim.Key, history), history)
				if err != nil {
					return err
				}
			}
			if plot {
				err = res.PlotProfiles(res.Keys[1:]...)
				if err != nil {
					return err
				}
				res.Draw(dirout, sim.Sim.Key+"_profiles.png", -1, -1, false)
			}
			if opts.verbose {
				tt.Lap("output complete")
			}

			// message
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d output times, results in %s\n", sum.RunId, len(sum.OutTimes), dirout)
			return nil
		},
	}
	cmd.Flags().BoolVar(&plot, "plot", false, "Plot profiles of all columns")
	cmd.Flags().IntVar(&history, "history", -1, "Write the time series at this node (id); -1 means none")
	return cmd
}
