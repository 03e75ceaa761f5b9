package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/optics/material"
	"github.com/cwbudde/algo-optics/optics/mie"
	"github.com/cwbudde/algo-optics/stats/spectral"
	"github.com/spf13/cobra"
)

func newMieCmd(a *app) *cobra.Command {
	var (
		sphere      string
		medium      string
		radius      float64
		wavelengths []float64
		clamp       bool
		parallel    int
	)
	cmd := &cobra.Command{
		Use:   "mie",
		Short: "Scattering and absorption efficiencies of a sphere",
		Long: `Compute Mie efficiencies and cross sections of a homogeneous sphere in a
host medium over a wavelength range.

Examples:
  optix mie --material au --medium water --radius 20e-9
  optix mie --material polystyrene --radius 500e-9 --range 450e-9,1e-6,56`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(wavelengths) != 3 {
				return errors.New("mie: --range needs min,max,count")
			}
			grid, err := core.LinearGrid(wavelengths[0], wavelengths[1], int(wavelengths[2]))
			if err != nil {
				return fmt.Errorf("mie: %w", err)
			}

			opts := []mie.Option{mie.WithLogger(a.logger(cmd))}
			if parallel > 0 {
				opts = append(opts, mie.WithParallelism(parallel))
			}
			if clamp {
				opts = append(opts, mie.WithMaterialOptions(material.WithExtrapolation(material.ExtrapolateClamp)))
			}

			d, err := mie.NewDriver(sphere, medium, radius, grid, opts...)
			if err != nil {
				return err
			}
			s, err := d.Spectrum(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "Sphere: %s r=%g m in %s\n\n", sphere, radius, medium); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if err := writeRows(tw,
				"Wavelength [nm]\tx\tQsca\tQext\tQabs\tQback\tCext [m2]",
				"---------------\t-\t----\t----\t----\t-----\t---------",
			); err != nil {
				return err
			}
			for i := range s.Wavelengths {
				row := nm(s.Wavelengths[i]) + "\t" + fmt.Sprintf("%.4f", s.SizeParameter[i]) + "\t" +
					num(s.QSca[i]) + "\t" + num(s.QExt[i]) + "\t" + num(s.QAbs[i]) + "\t" + num(s.QBack[i]) + "\t" +
					fmt.Sprintf("%.4e", s.CExt[i])
				if err := writeRows(tw, row); err != nil {
					return err
				}
			}

			ext := spectral.Calculate(s.Wavelengths, s.QExt)
			if ext.Count > 0 {
				if _, err := fmt.Fprintf(tw, "\nExtinction peak:\t%s nm\tQext=%s\n", nm(ext.PeakWavelength), num(ext.Max)); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
			if n := len(s.DomainErrors); n > 0 {
				if _, err := fmt.Fprintf(tw, "Undefined wavelengths:\t%d\n", n); err != nil {
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
	f.StringVarP(&sphere, "material", "m", "au", "sphere material")
	f.StringVar(&medium, "medium", "air", "host medium")
	f.Float64VarP(&radius, "radius", "r", 50e-9, "sphere radius in metres")
	f.Float64SliceVar(&wavelengths, "range", []float64{400e-9, 800e-9, 41}, "wavelength min,max,count in metres")
	f.BoolVar(&clamp, "clamp", false, "hold table edge values outside tabulated ranges")
	f.IntVarP(&parallel, "parallel", "j", 0, "wavelength workers (0 = serial)")
	return cmd
}
