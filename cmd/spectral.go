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
	"io/ioutil"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/numlab/gowave/InputParameters"
	"github.com/numlab/gowave/model_problems/Spectral1D"
	"github.com/numlab/gowave/timestep"
	"github.com/numlab/gowave/trace"
	"github.com/numlab/gowave/utils"
)

// Per-equation defaults, indexed by Spectral1D.Equation.
var (
	def_N     = []int{256, 128, 256, 256, 256}
	def_XMAX  = []float64{2 * math.Pi, 2 * math.Pi, 2 * math.Pi, 2 * math.Pi, 2 * math.Pi}
	def_EPS   = []float64{0.1, 0, 0.1, 0, 0}
	def_DT    = []float64{1e-3, 1e-3, 1e-4, 5e-7, 1e-4}
	def_STEPS = []int{10000, 8000, 50000, 200000, 50000}
	def_INIT  = []string{"gaussian", "sine", "gaussian", "sech", "sech"}
)

func spectralDefaults(eq Spectral1D.Equation) (n int, xmax, eps, dt float64, steps int, init string) {
	return def_N[eq], def_XMAX[eq], def_EPS[eq], def_DT[eq], def_STEPS[eq], def_INIT[eq]
}

// spectralCmd represents the spectral command
var spectralCmd = &cobra.Command{
	Use:   "spectral",
	Short: "Pseudospectral 1D model equations on a periodic domain",
	Long: `
Integrates one of the pseudospectral model equations - advection-diffusion,
variable-coefficient advection, Burgers, KdV or the modified KdV scheme -
with its matching explicit integrator.

gowave spectral `,
	Run: func(cmd *cobra.Command, args []string) {
		ip := processSpectralInput(cmd)
		eq, err := Spectral1D.ParseEquation(ip.Model)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defN, defXMax, defEps, defDt, defSteps, defInit := spectralDefaults(eq)
		if ip.N == 0 {
			ip.N = defN
		}
		if ip.XMax == 0 {
			ip.XMax = defXMax
		}
		if ip.Epsilon == 0 {
			ip.Epsilon = defEps
		}
		if ip.Dt == 0 {
			ip.Dt = defDt
		}
		if ip.NSteps == 0 && ip.FinalTime == 0 {
			ip.NSteps = defSteps
		}
		if err = ip.Validate(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		ip.Print()

		s, err := Spectral1D.NewSolver(eq, ip.N, ip.XMax, ip.Epsilon, ip.Dt)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if ip.Integrator != "" {
			ti, err := timestep.ParseType(ip.Integrator)
			if err == nil {
				err = s.SetScheme(ti)
			}
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		initName, _ := cmd.Flags().GetString("init")
		if initName == "" {
			initName = defInit
		}
		var u0 utils.Vector
		switch initName {
		case "gaussian":
			u0 = s.GaussianInit(0.5, 0.5)
		case "sech":
			u0 = s.SechInit(16, 0.25)
		case "sine":
			u0 = s.SineInit(1)
		default:
			fmt.Printf("unknown initial condition %q\n", initName)
			os.Exit(1)
		}
		h, err := s.Run(u0, ip.Steps(), ip.Stride)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("\n%s: stored %d snapshots, final time = %8.4f, max|u| = %8.4f\n",
			s.Eq, h.Len(), h.Last().Time, h.MaxAbs())

		meta := trace.RunMeta{
			Model: ip.Model, Integrator: s.Scheme().String(),
			Dt: ip.Dt, Steps: ip.Steps(), Stride: ip.Stride,
		}
		writeExports(cmd, h, meta)

		if graph, _ := cmd.Flags().GetBool("graph"); graph {
			dr, _ := cmd.Flags().GetInt("delay")
			plotHistory(s.Grid.X.DataP(), h, time.Duration(dr)*time.Millisecond)
		}
	},
}

func processSpectralInput(cmd *cobra.Command) (ip *InputParameters.InputParameters1D) {
	ip = &InputParameters.InputParameters1D{}
	if icFile, _ := cmd.Flags().GetString("inputConditionsFile"); icFile != "" {
		data, err := ioutil.ReadFile(icFile)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err = ip.Parse(data); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}
	ip.Model, _ = cmd.Flags().GetString("model")
	ip.Integrator, _ = cmd.Flags().GetString("integrator")
	ip.N, _ = cmd.Flags().GetInt("n")
	ip.XMax, _ = cmd.Flags().GetFloat64("xMax")
	ip.Epsilon, _ = cmd.Flags().GetFloat64("epsilon")
	ip.Dt, _ = cmd.Flags().GetFloat64("dt")
	ip.NSteps, _ = cmd.Flags().GetInt("steps")
	ip.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
	ip.Stride, _ = cmd.Flags().GetInt("stride")
	return
}

func init() {
	rootCmd.AddCommand(spectralCmd)
	spectralCmd.Flags().StringP("model", "m", "kdv",
		"governing equation: advection-diffusion, variable-coefficient-advection, burgers, kdv, modified-kdv")
	spectralCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of input parameters; overrides the flags")
	spectralCmd.Flags().String("integrator", "", "override the equation's integrator: leapfrog, ssprk3 or midpoint")
	spectralCmd.Flags().IntP("n", "n", 0, "number of grid points (0 selects the equation default)")
	spectralCmd.Flags().Float64("xMax", 0, "periodic domain length (0 selects the equation default)")
	spectralCmd.Flags().Float64("epsilon", 0, "diffusion coefficient")
	spectralCmd.Flags().Float64("dt", 0, "time step (0 selects the equation default)")
	spectralCmd.Flags().IntP("steps", "s", 0, "number of time steps")
	spectralCmd.Flags().Float64("finalTime", 0, "target end time, used when steps is 0")
	spectralCmd.Flags().Int("stride", 100, "store every stride-th snapshot")
	spectralCmd.Flags().String("init", "", "initial condition: gaussian, sech or sine (default per equation)")
	spectralCmd.Flags().BoolP("graph", "g", false, "replay the stored history in a live chart")
	spectralCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay per plotted frame")
	addExportFlags(spectralCmd)
}
