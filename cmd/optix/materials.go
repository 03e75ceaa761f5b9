package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-optics/optics/material"
	"github.com/spf13/cobra"
)

func newMaterialsCmd(a *app) *cobra.Command {
	var at float64
	cmd := &cobra.Command{
		Use:   "materials [name ...]",
		Short: "List built-in materials or evaluate their refractive index",
		Long: `Without --at, list every material with its model and validity range.
With --at, print n and k of the named materials (all when none are named)
at one wavelength in metres.

Examples:
  optix materials
  optix materials --at 636e-9 sio2 ta2o5 w`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db := material.Default()
			names := args
			if len(names) == 0 {
				names = db.Names()
			}

			models := make([]material.Model, len(names))
			for i, name := range names {
				m, err := db.Lookup(name)
				if err != nil {
					return err
				}
				models[i] = m
			}
			a.logger(cmd).Debugf("materials: %d entries", len(models))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if cmd.Flags().Changed("at") {
				if err := writeIndexTable(tw, names, models, at); err != nil {
					return err
				}
			} else if err := writeCatalogue(tw, names, models); err != nil {
				return err
			}
			if err := tw.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "wavelength in metres at which to evaluate n and k")
	return cmd
}

func writeCatalogue(tw *tabwriter.Writer, names []string, models []material.Model) error {
	if err := writeRows(tw, "Name\tMaterial\tModel\tRange [nm]", "----\t--------\t-----\t----------"); err != nil {
		return err
	}
	for i, m := range models {
		lo, hi := m.Domain()
		domain := nm(lo) + " - " + nm(hi)
		switch {
		case lo == 0 && math.IsInf(hi, 1):
			domain = "any"
		case math.IsInf(hi, 1):
			domain = "from " + nm(lo)
		}
		if err := writeRows(tw, names[i]+"\t"+m.Name()+"\t"+m.Kind().String()+"\t"+domain); err != nil {
			return err
		}
	}
	return nil
}

func writeIndexTable(tw *tabwriter.Writer, names []string, models []material.Model, lambda float64) error {
	if err := writeRows(tw,
		fmt.Sprintf("Name\tn\tk\t(at %s nm)", nm(lambda)),
		"----\t-\t-\t",
	); err != nil {
		return err
	}
	for i, m := range models {
		n, ok := m.Index(lambda)
		note := ""
		if !ok {
			note = "outside table"
		} else if lo, hi := m.Domain(); lambda < lo || lambda > hi {
			note = "outside validity range"
		}
		row := names[i] + "\t" + num(real(n)) + "\t" + fmt.Sprintf("%.6g", imag(n)) + "\t" + note
		if err := writeRows(tw, row); err != nil {
			return err
		}
	}
	return nil
}
