package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"strconv"

	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/stats/spectral"
	"github.com/spf13/cobra"
)

// app carries the global flags shared by every subcommand.
type app struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "optix",
		Short: "Thin-film, Mie and exciton spectra",
		Long: `optix computes reflectance, transmittance and absorptance of planar
multilayer stacks with the transfer-matrix method, thermal figures of merit
of emitters, Mie efficiencies of spheres and Frenkel exciton spectra.

Examples:
  optix spectrum --stack "air | sio2 200nm | air" --range 400e-9,800e-9,41
  optix materials --at 1e-6 au ag al
  optix mie --material au --medium water --radius 20e-9
  optix exciton --shape 2,1,1 --dipole 0,0,1`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newSpectrumCmd(a),
		newMaterialsCmd(a),
		newMieCmd(a),
		newExcitonCmd(a),
	)
	return root
}

// logger returns a stderr logger when --verbose is set.
func (a *app) logger(cmd *cobra.Command) core.Logger {
	if !a.verbose {
		return core.NopLogger{}
	}
	return core.NewWriterLogger("optix", true, log.New(cmd.ErrOrStderr(), "", log.LstdFlags))
}

// nm formats a wavelength in nanometres.
func nm(lambda float64) string {
	return strconv.FormatFloat(lambda*1e9, 'f', 2, 64)
}

// num formats a value with six decimals, keeping NaN readable.
func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// writeRows prints tab-separated rows and reports the first write error.
func writeRows(w io.Writer, rows ...string) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

type spectralSummary struct {
	mean, max, peak, fwhm string
}

// summarize formats the columns of one summary row.
func summarize(s spectral.Stats) spectralSummary {
	if s.Count == 0 {
		return spectralSummary{"NaN", "NaN", "-", "-"}
	}
	width := "-"
	if s.FWHM > 0 {
		width = nm(s.FWHM)
	}
	return spectralSummary{num(s.Mean), num(s.Max), nm(s.PeakWavelength), width}
}
