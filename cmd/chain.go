/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/numlab/gowave/diagnostics"
	"github.com/numlab/gowave/model_problems/FPUT1D"
	"github.com/numlab/gowave/trace"
)

// chainCmd represents the chain command
var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Fermi-Pasta-Ulam-Tsingou spring chain",
	Long: `
Integrates the linear or nonlinear spring chain with the explicit centered
second-order scheme, fixed ends, zero initial velocity.

gowave chain `,
	Run: func(cmd *cobra.Command, args []string) {
		modelStr, _ := cmd.Flags().GetString("model")
		model, err := FPUT1D.ParseModelType(modelStr)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		n, _ := cmd.Flags().GetInt("n")
		k, _ := cmd.Flags().GetFloat64("springK")
		mass, _ := cmd.Flags().GetFloat64("mass")
		alpha, _ := cmd.Flags().GetFloat64("alpha")
		dt, _ := cmd.Flags().GetFloat64("dt")
		steps, _ := cmd.Flags().GetInt("steps")
		stride, _ := cmd.Flags().GetInt("stride")
		amp, _ := cmd.Flags().GetFloat64("amplitude")
		mode, _ := cmd.Flags().GetInt("mode")
		nmodes, _ := cmd.Flags().GetInt("energyModes")

		c, err := FPUT1D.NewChain(model, n, k, mass, alpha, dt)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Model Type: %s\nN = %d, dt = %8.4f, steps = %d, stride = %d\n\n",
			c.Model, n, dt, steps, stride)
		h, err := c.Run(c.SineInit(amp, mode), steps, stride)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("stored %d snapshots, final time = %8.4f, max|u| = %8.4f\n",
			h.Len(), h.Last().Time, h.MaxAbs())

		if nmodes > 1 {
			times, modes, err := diagnostics.ChainModalEnergies(h, dt*float64(stride), nmodes)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			last := len(times) - 1
			for _, me := range modes {
				fmt.Printf("mode %d energy: initial = %10.6f, final = %10.6f\n",
					me.Mode, me.Energy[0], me.Energy[last])
			}
		}

		meta := trace.RunMeta{
			Model: modelStr, Integrator: "stormer",
			Dt: dt, Steps: steps, Stride: stride,
		}
		writeExports(cmd, h, meta)

		if graph, _ := cmd.Flags().GetBool("graph"); graph {
			dr, _ := cmd.Flags().GetInt("delay")
			plotHistory(c.Grid.X.DataP(), h, time.Duration(dr)*time.Millisecond)
		}
	},
}

func init() {
	rootCmd.AddCommand(chainCmd)
	chainCmd.Flags().StringP("model", "m", "nonlinear", "governing equation: linear-chain or nonlinear-chain")
	chainCmd.Flags().IntP("n", "n", 64, "number of masses in the chain, ends clamped")
	chainCmd.Flags().Float64("springK", 1, "spring constant")
	chainCmd.Flags().Float64("mass", 1, "mass of each particle")
	chainCmd.Flags().Float64("alpha", 0.25, "quadratic nonlinearity coefficient")
	chainCmd.Flags().Float64("dt", 0.5, "time step - must respect the Stormer stability bound")
	chainCmd.Flags().IntP("steps", "s", 100000, "number of time steps")
	chainCmd.Flags().Int("stride", 100, "store every stride-th snapshot")
	chainCmd.Flags().Float64("amplitude", 1, "initial sine perturbation amplitude")
	chainCmd.Flags().Int("mode", 1, "initial sine perturbation mode")
	chainCmd.Flags().Int("energyModes", 0, "report modal energies for modes 1..energyModes-1")
	chainCmd.Flags().BoolP("graph", "g", false, "replay the stored history in a live chart")
	chainCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay per plotted frame")
	addExportFlags(chainCmd)
}
