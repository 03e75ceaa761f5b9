package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-optics/optics/exciton"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

func newExcitonCmd(a *app) *cobra.Command {
	var (
		shape   []int
		spacing []float64
		dipole  []float64
		energy  float64
		index   float64
		dt      float64
		steps   int
	)
	cmd := &cobra.Command{
		Use:   "exciton",
		Short: "Frenkel exciton states and spectrum of a molecular aggregate",
		Long: `Diagonalize the Frenkel exciton Hamiltonian of a regular aggregate, print
the transitions with their oscillator strengths and, with --steps, the peak
of the bright-state autocorrelation spectrum from Runge-Kutta dynamics.

Examples:
  optix exciton --shape 2,1,1 --dipole 0,0,1
  optix exciton --shape 8,1,1 --spacing 1,0,0 --dipole 1,0,0 --energy 2 --steps 2048 --dt 0.02`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(shape) != 3 || len(spacing) != 3 || len(dipole) != 3 {
				return errors.New("exciton: --shape, --spacing and --dipole take three values")
			}
			agg := exciton.Aggregate{
				Shape:           [3]int{shape[0], shape[1], shape[2]},
				Displacement:    mgl64.Vec3{spacing[0], spacing[1], spacing[2]},
				Dipole:          mgl64.Vec3{dipole[0], dipole[1], dipole[2]},
				SiteEnergy:      energy,
				RefractiveIndex: index,
			}
			sticks, err := agg.StickSpectrum()
			if err != nil {
				return err
			}
			a.logger(cmd).Debugf("exciton: %d monomers", agg.Size())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "Aggregate: %dx%dx%d, %d monomers\n\n", shape[0], shape[1], shape[2], agg.Size()); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if err := writeRows(tw, "State\tEnergy\tStrength", "-----\t------\t--------"); err != nil {
				return err
			}
			for k, s := range sticks {
				if err := writeRows(tw, fmt.Sprintf("%d\t%s\t%s", k, num(s.Energy), num(s.Strength))); err != nil {
					return err
				}
			}

			if steps > 0 {
				ac, err := agg.AutocorrelationSpectrum(dt, steps)
				if err != nil {
					return err
				}
				peak := floats.MaxIdx(ac.Intensity)
				resolution := ac.Energies[1] - ac.Energies[0]
				if _, err := fmt.Fprintf(tw, "\nAutocorrelation peak:\t%s\t(resolution %s)\n",
					num(ac.Energies[peak]), num(resolution)); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
			if err := tw.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&shape, "shape", []int{2, 1, 1}, "monomers along x,y,z")
	f.Float64SliceVar(&spacing, "spacing", []float64{1, 0, 0}, "lattice spacing along x,y,z")
	f.Float64SliceVar(&dipole, "dipole", []float64{0, 0, 1}, "transition dipole moment")
	f.Float64Var(&energy, "energy", 0.5, "monomer excitation energy")
	f.Float64Var(&index, "index", 1, "refractive index of the host")
	f.Float64Var(&dt, "dt", 0.05, "time step of the dynamics")
	f.IntVar(&steps, "steps", 0, "RK4 steps for the autocorrelation spectrum (0 = skip)")
	return cmd
}
