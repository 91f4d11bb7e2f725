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

	"github.com/spf13/cobra"

	"github.com/numlab/gowave/model_problems/FPUT1D"
	"github.com/numlab/gowave/model_problems/Spectral1D"
	"github.com/numlab/gowave/stability"
	"github.com/numlab/gowave/timestep"
)

// spectrumCmd represents the spectrum command
var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Eigenvalue spectrum and stable time-step report for a model",
	Long: `
Builds the dense linearization of the chosen model's right hand side by
probing it against the standard basis, computes its eigenvalues and reports
the largest stable time step for the model's integrator. O(N) operator
evaluations plus an O(N^3) eigendecomposition - use diagnostic grid sizes.

gowave spectrum `,
	Run: func(cmd *cobra.Command, args []string) {
		modelStr, _ := cmd.Flags().GetString("model")
		n, _ := cmd.Flags().GetInt("n")
		dt, _ := cmd.Flags().GetFloat64("dt")
		eps, _ := cmd.Flags().GetFloat64("epsilon")
		alpha, _ := cmd.Flags().GetFloat64("alpha")

		var (
			rhs    timestep.RHS
			scheme timestep.Type
			name   string
		)
		if model, err := FPUT1D.ParseModelType(modelStr); err == nil {
			c, err := FPUT1D.NewChain(model, n, 1, 1, alpha, dt)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			rhs, scheme, name = c.Force, timestep.Stormer, c.Model.String()
		} else if eq, err := Spectral1D.ParseEquation(modelStr); err == nil {
			s, err := Spectral1D.NewSolver(eq, n, def_XMAX[eq], eps, dt)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			rhs, scheme, name = s.RHS, s.Scheme(), s.Eq.String()
		} else {
			fmt.Printf("unknown governing-equation selector %q\n", modelStr)
			os.Exit(1)
		}

		spectrum := stability.Spectrum(stability.Linearize(n, rhs))
		fmt.Printf("Model: %s, N = %d\n", name, n)
		fmt.Printf("max|lambda|  = %12.4e\n", stability.MaxAbs(spectrum))
		fmt.Printf("max|Im(l)|   = %12.4e\n", stability.MaxImag(spectrum))
		if maxDt, err := stability.MaxStableDt(spectrum, scheme); err == nil {
			fmt.Printf("%s\nmax stable dt = %12.4e (configured dt = %12.4e)\n", scheme, maxDt, dt)
			if dt > maxDt {
				fmt.Println("WARNING: configured dt exceeds the stability bound - expect divergence")
			}
		} else {
			fmt.Println(err)
		}
		if eigs, _ := cmd.Flags().GetBool("eigenvalues"); eigs {
			for _, z := range spectrum {
				fmt.Printf("%14.6e %+14.6ei\n", real(z), imag(z))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(spectrumCmd)
	spectrumCmd.Flags().StringP("model", "m", "kdv", "governing-equation selector, chain or spectral")
	spectrumCmd.Flags().IntP("n", "n", 64, "grid size for the analysis (diagnostic scale)")
	spectrumCmd.Flags().Float64("dt", 1e-3, "configured time step to check against the bound")
	spectrumCmd.Flags().Float64("epsilon", 0, "diffusion coefficient")
	spectrumCmd.Flags().Float64("alpha", 0, "chain nonlinearity coefficient (frozen at equilibrium)")
	spectrumCmd.Flags().Bool("eigenvalues", false, "print the full spectrum")
}
