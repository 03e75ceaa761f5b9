package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-optics/optics/simulate"
	"github.com/spf13/cobra"
)

type spectrumOptions struct {
	config       string
	stack        string
	wavelengths  []float64
	spacing      string
	angle        float64
	polarization string
	temperature  float64
	bandgap      float64
	layers       bool
	clamp        bool
	parallel     int
	every        int
	summary      bool
}

func newSpectrumCmd(a *app) *cobra.Command {
	o := &spectrumOptions{}
	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Reflectance, transmittance and absorptance of a multilayer stack",
		Long: `Solve a multilayer stack over a wavelength range and print R, T and A per
wavelength followed by a summary. Flags override values read with --config.

Examples:
  optix spectrum --stack "air | sio2 200nm | air"
  optix spectrum --stack "air | sio2 230nm | w 900nm | air" --range 400e-9,6e-6,300 --temperature 1700 --bandgap 2.2e-6
  optix spectrum --config run.yaml --pol unpolarized --angle 0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.build(cmd)
			if err != nil {
				return err
			}
			res, err := simulate.Run(cmd.Context(), cfg, simulate.WithLogger(a.logger(cmd)))
			if err != nil {
				return err
			}
			return printSpectrum(cmd.OutOrStdout(), res, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.config, "config", "c", "", "YAML configuration file")
	f.StringVarP(&o.stack, "stack", "s", "", `layer stack, e.g. "air | sio2 200nm | air"`)
	f.Float64SliceVar(&o.wavelengths, "range", []float64{400e-9, 800e-9, 41}, "wavelength min,max,count in metres")
	f.StringVar(&o.spacing, "spacing", "linear", "wavelength spacing: linear or log")
	f.Float64Var(&o.angle, "angle", 0, "incidence angle in radians")
	f.StringVar(&o.polarization, "pol", "s", "polarization: s, p or unpolarized")
	f.Float64Var(&o.temperature, "temperature", 0, "emitter temperature in K for thermal metrics")
	f.Float64Var(&o.bandgap, "bandgap", 0, "photovoltaic bandgap wavelength in metres")
	f.BoolVar(&o.layers, "layers", false, "print per-layer absorptance")
	f.BoolVar(&o.clamp, "clamp", false, "hold table edge values outside tabulated ranges")
	f.IntVarP(&o.parallel, "parallel", "j", 0, "wavelength workers (0 = serial)")
	f.IntVar(&o.every, "every", 1, "print every n-th wavelength")
	f.BoolVar(&o.summary, "summary", false, "print only the summary")
	return cmd
}

// build merges the configuration file with explicitly set flags.
func (o *spectrumOptions) build(cmd *cobra.Command) (simulate.Config, error) {
	var cfg simulate.Config
	if o.config != "" {
		var err error
		if cfg, err = simulate.Load(o.config); err != nil {
			return simulate.Config{}, err
		}
	} else if o.stack == "" {
		return simulate.Config{}, errors.New("spectrum: need --stack or --config")
	}

	flags := cmd.Flags()
	use := func(name string) bool { return o.config == "" || flags.Changed(name) }

	if use("stack") {
		cfg.Stack, cfg.Materials, cfg.Thicknesses = o.stack, nil, nil
	}
	if use("range") {
		cfg.WavelengthRange = o.wavelengths
	}
	if use("spacing") {
		cfg.WavelengthSpacing = o.spacing
	}
	if use("angle") {
		cfg.IncidenceAngle = o.angle
	}
	if use("pol") {
		cfg.Polarization = o.polarization
	}
	if use("temperature") {
		cfg.Temperature = o.temperature
	}
	if use("bandgap") {
		cfg.BandgapWavelength = o.bandgap
	}
	if use("layers") {
		cfg.LayerAbsorption = o.layers
	}
	if flags.Changed("clamp") && o.clamp {
		cfg.Extrapolation = "clamp"
	}
	if use("parallel") {
		cfg.Parallelism = o.parallel
	}
	return cfg, nil
}

func printSpectrum(w io.Writer, res simulate.Result, o *spectrumOptions) error {
	spec := res.Spectrum
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Stack: %s (%s, %g rad)\n\n", res.Stack, spec.Polarization, spec.Angle); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if !o.summary {
		header, rule := "Wavelength [nm]\tR\tT\tA", "---------------\t-\t-\t-"
		for j := range spec.LayerA {
			header += fmt.Sprintf("\tA%d", j+1)
			rule += "\t--"
		}
		if err := writeRows(tw, header, rule); err != nil {
			return err
		}

		every := max(o.every, 1)
		for i := 0; i < spec.Len(); i += every {
			row := nm(spec.Wavelengths[i]) + "\t" + num(spec.R[i]) + "\t" + num(spec.T[i]) + "\t" + num(spec.A[i])
			for j := range spec.LayerA {
				row += "\t" + num(spec.LayerA[j][i])
			}
			if err := writeRows(tw, row); err != nil {
				return err
			}
		}
		if err := writeRows(tw, ""); err != nil {
			return err
		}
	}

	if err := writeRows(tw,
		"Summary\tMean\tMax\tPeak [nm]\tFWHM [nm]",
		"-------\t----\t---\t---------\t---------",
	); err != nil {
		return err
	}
	for _, q := range []struct {
		name string
		s    spectralSummary
	}{
		{"R", summarize(res.Reflectance)},
		{"T", summarize(res.Transmittance)},
		{"A", summarize(res.Absorptance)},
	} {
		if err := writeRows(tw, q.name+"\t"+q.s.mean+"\t"+q.s.max+"\t"+q.s.peak+"\t"+q.s.fwhm); err != nil {
			return err
		}
	}

	d := spec.Diagnostics
	if bad := d.Invalid(); bad > 0 || d.Clamped > 0 || d.MaterialWarnings > 0 {
		if _, err := fmt.Fprintf(tw, "\nUndefined wavelengths:\t%d\nOpacity clamps:\t%d\nMaterial warnings:\t%d\n",
			bad, d.Clamped, d.MaterialWarnings); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if m := res.Thermal; m != nil {
		if _, err := fmt.Fprintf(tw, "\nThermal at %g K\n", m.Temperature); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		rows := []string{
			"Blackbody power [W/m2]\t" + fmt.Sprintf("%.6g", m.Emission.BlackbodyPower),
			"Emitted power [W/m2]\t" + fmt.Sprintf("%.6g", m.Emission.EmittedPower),
			"Mean emissivity\t" + num(m.Emission.MeanEmissivity),
			"Luminous efficiency\t" + num(m.Emission.LuminousEfficiency),
			"Luminous efficacy [lm/W]\t" + fmt.Sprintf("%.4g", m.Emission.LuminousEfficacy),
			"Absorption efficiency\t" + num(m.Absorption.Efficiency),
		}
		if m.TPV != nil {
			rows = append(rows,
				"TPV bandgap [nm]\t"+nm(m.TPV.BandgapWavelength),
				"TPV useful power [W/m2]\t"+fmt.Sprintf("%.6g", m.TPV.UsefulPower),
				"TPV spectral efficiency\t"+num(m.TPV.SpectralEfficiency),
			)
		}
		if err := writeRows(tw, rows...); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
