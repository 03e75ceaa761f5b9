package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-optics/optics/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithStderr(t, args...)
	return out, err
}

func executeWithStderr(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

const slabConfig = `stack: "air | glass 500nm | air"
wavelength_range: [600e-9, 700e-9, 11]
custom_materials:
  - name: glass
    model: constant
    n: 1.5
`

func TestSpectrumFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(slabConfig), 0o600))

	out, err := execute(t, "spectrum", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Stack: air | glass 500nm | air (s, 0 rad)")
	assert.Contains(t, out, "Wavelength [nm]")

	// 500 nm of n=1.5 is five quarter waves at 600 nm.
	var row string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "600.00") {
			row = line
		}
	}
	require.NotEmpty(t, row)
	fields := strings.Fields(row)
	require.Len(t, fields, 4)
	assert.Equal(t, "0.147929", fields[1])
	assert.Equal(t, "0.852071", fields[2])
	assert.Contains(t, out, "Summary")
}

func TestSpectrumFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(slabConfig), 0o600))

	out, err := execute(t, "spectrum", "--config", path, "--pol", "p", "--summary")
	require.NoError(t, err)
	assert.Contains(t, out, "(p, 0 rad)")
	assert.NotContains(t, out, "Wavelength [nm]")
	assert.Contains(t, out, "Summary")
}

func TestSpectrumLayersAndDiagnostics(t *testing.T) {
	out, err := execute(t, "spectrum",
		"--stack", "air | ta2o5 100nm | air",
		"--range", "400e-9,600e-9,21",
		"--layers")
	require.NoError(t, err)
	assert.Regexp(t, `A\s+A1`, out)
	assert.Contains(t, out, "Undefined wavelengths:")
	assert.Contains(t, out, "NaN")
}

func TestSpectrumThermal(t *testing.T) {
	out, err := execute(t, "spectrum",
		"--stack", "air | sio2 230nm | w 900nm | air",
		"--range", "400e-9,3e-6,27",
		"--temperature", "1700",
		"--bandgap", "2.2e-6",
		"--summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Thermal at 1700 K")
	assert.Contains(t, out, "TPV spectral efficiency")
}

func TestSpectrumNeedsStack(t *testing.T) {
	_, err := execute(t, "spectrum")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--stack")
}

func TestSpectrumBadStack(t *testing.T) {
	_, err := execute(t, "spectrum", "--stack", "air | unobtainium 10nm | air")
	require.Error(t, err)
	assert.ErrorIs(t, err, material.ErrUnknownMaterial)
}

func TestMaterialsCatalogue(t *testing.T) {
	out, err := execute(t, "materials")
	require.NoError(t, err)
	assert.Contains(t, out, "sio2")
	assert.Contains(t, out, "tabulated")
	assert.Contains(t, out, "Range [nm]")
}

func TestMaterialsIndex(t *testing.T) {
	out, err := execute(t, "materials", "--at", "636e-9", "sio2", "ta2o5")
	require.NoError(t, err)
	assert.Contains(t, out, "1.4569")
	assert.Contains(t, out, "(at 636.00 nm)")
	assert.NotContains(t, out, "outside")

	out, err = execute(t, "materials", "--at", "300e-9", "ta2o5")
	require.NoError(t, err)
	assert.Contains(t, out, "outside table")
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, logs, err := executeWithStderr(t, "--verbose", "spectrum", "--stack", "air | sio2 100nm | air", "--range", "500e-9,600e-9,3")
	require.NoError(t, err)
	assert.Contains(t, logs, "[optix] INFO: ")
	assert.NotContains(t, out, "[optix]")
	assert.Contains(t, out, "Summary")

	_, logs, err = executeWithStderr(t, "materials")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMaterialsUnknown(t *testing.T) {
	_, err := execute(t, "materials", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, material.ErrUnknownMaterial)
}

func TestMie(t *testing.T) {
	out, err := execute(t, "mie", "--material", "au", "--medium", "water", "--radius", "20e-9")
	require.NoError(t, err)
	assert.Contains(t, out, "Sphere: au r=2e-08 m in water")
	assert.Contains(t, out, "Qback")
	assert.Contains(t, out, "Extinction peak:")
	assert.NotContains(t, out, "Undefined wavelengths:")
}

func TestMieRangeFlag(t *testing.T) {
	_, err := execute(t, "mie", "--range", "400e-9,800e-9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--range")
}

func TestExciton(t *testing.T) {
	out, err := execute(t, "exciton", "--dipole", "1,0,0", "--energy", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Aggregate: 2x1x1, 2 monomers")

	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) == 3 && (f[0] == "0" || f[0] == "1") {
			rows = append(rows, f)
		}
	}
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"0", "3.000000", "2.000000"}, rows[0])
	assert.Equal(t, []string{"1", "7.000000", "0.000000"}, rows[1])
	assert.NotContains(t, out, "Autocorrelation")
}

func TestExcitonAutocorrelation(t *testing.T) {
	out, err := execute(t, "exciton", "--steps", "256", "--dt", "0.05")
	require.NoError(t, err)
	assert.Contains(t, out, "Autocorrelation peak:")
}

func TestExcitonBadShape(t *testing.T) {
	_, err := execute(t, "exciton", "--shape", "2,1")
	require.Error(t, err)

	_, err = execute(t, "exciton", "--shape", "0,1,1")
	require.Error(t, err)
}
