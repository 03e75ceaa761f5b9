package material

import "github.com/cwbudde/algo-optics/optics/core"

// Validity range shared by the Rakic (1998) Lorentz-Drude fits, 0.1-5 eV.
var (
	rakicMin = core.HCElectronVoltMetre / 5
	rakicMax = core.HCElectronVoltMetre / 0.1
)

// Embedded tables:
//   - sio2.csv:  Malitson (1965) Sellmeier sampled 0.21-6.7 um, k = 0
//   - ta2o5.csv: Bright et al. (2013) oscillator model, 10-20000 cm^-1, 4 digits
//   - w.csv:     Rakic (1998) Lorentz-Drude sampled 0.2-20 um, with the measured
//     3.64 um row
var embeddedTables = []struct {
	label string
	file  string
}{
	{"SiO2", "sio2.csv"},
	{"Ta2O5", "ta2o5.csv"},
	{"W", "w.csv"},
}

// Ta2O5Oscillator is the Bright et al. (2013) model the Ta2O5 table was
// sampled from.
var Ta2O5Oscillator = Lorentz{
	Label: "Ta2O5 (oscillator)",
	A:     2.06,
	B:     0.025,
	Oscillators: []LorentzTerm{
		{Resonance: 0, Plasma: 6490, Damping: 6.5e5},
		{Resonance: 266, Plasma: 1040, Damping: 188},
		{Resonance: 500, Plasma: 573, Damping: 112},
		{Resonance: 609, Plasma: 634, Damping: 88},
		{Resonance: 672, Plasma: 408, Damping: 43},
		{Resonance: 868, Plasma: 277, Damping: 113},
		{Resonance: 3020, Plasma: 373, Damping: 652},
	},
	Min: 0.5e-6,
	Max: 1e-3,
}

func rakic(label string, plasma float64, osc ...Oscillator) LorentzDrude {
	return LorentzDrude{Label: label, PlasmaEV: plasma, Oscillators: osc, Min: rakicMin, Max: rakicMax}
}

func sellmeier(label string, min, max float64, terms ...SellmeierTerm) Sellmeier {
	return Sellmeier{Label: label, A: 1, Terms: terms, Min: min, Max: max}
}

// sq squares a Sellmeier resonance wavelength given in um.
func sq(x float64) float64 { return x * x }

// analyticModels is the analytic part of the built-in catalogue.
func analyticModels() []Model {
	return []Model{
		Ambient,
		Constant{Label: "Vacuum", N: 1},

		rakic("Ag", 9.01,
			Oscillator{0.845, 0.048, 0},
			Oscillator{0.065, 3.886, 0.816},
			Oscillator{0.124, 0.452, 4.481},
			Oscillator{0.011, 0.065, 8.185},
			Oscillator{0.840, 0.916, 9.083},
			Oscillator{5.646, 2.419, 20.29}),
		rakic("Au", 9.03,
			Oscillator{0.760, 0.053, 0},
			Oscillator{0.024, 0.241, 0.415},
			Oscillator{0.010, 0.345, 0.830},
			Oscillator{0.071, 0.870, 2.969},
			Oscillator{0.601, 2.494, 4.304},
			Oscillator{4.384, 2.214, 13.32}),
		rakic("Al", 14.98,
			Oscillator{0.523, 0.047, 0},
			Oscillator{0.227, 0.333, 0.162},
			Oscillator{0.050, 0.312, 1.544},
			Oscillator{0.166, 1.351, 1.808},
			Oscillator{0.030, 3.382, 3.473}),
		rakic("Cu", 10.83,
			Oscillator{0.575, 0.030, 0},
			Oscillator{0.061, 0.378, 0.291},
			Oscillator{0.104, 1.056, 2.957},
			Oscillator{0.723, 3.213, 5.300},
			Oscillator{0.638, 4.305, 11.18}),
		rakic("Pt", 9.59,
			Oscillator{0.333, 0.080, 0},
			Oscillator{0.191, 0.517, 0.780},
			Oscillator{0.659, 1.838, 1.314},
			Oscillator{0.547, 3.668, 3.141},
			Oscillator{3.576, 8.517, 9.249}),
		rakic("Cr", 10.75,
			Oscillator{0.168, 0.047, 0},
			Oscillator{0.151, 3.175, 0.121},
			Oscillator{0.150, 1.305, 0.543},
			Oscillator{1.149, 2.676, 1.970},
			Oscillator{0.825, 1.335, 8.775}),
		rakic("Ni", 15.92,
			Oscillator{0.096, 0.048, 0},
			Oscillator{0.100, 4.511, 0.174},
			Oscillator{0.135, 1.334, 0.582},
			Oscillator{0.106, 2.178, 1.597},
			Oscillator{0.729, 6.292, 6.089}),
		rakic("Ti", 7.29,
			Oscillator{0.148, 0.082, 0},
			Oscillator{0.899, 2.276, 0.777},
			Oscillator{0.393, 2.518, 1.545},
			Oscillator{0.187, 1.663, 2.509},
			Oscillator{0.001, 1.762, 19.43}),
		rakic("Pd", 9.72,
			Oscillator{0.330, 0.008, 0},
			Oscillator{0.649, 2.950, 0.336},
			Oscillator{0.121, 0.555, 0.501},
			Oscillator{0.638, 4.621, 1.659},
			Oscillator{0.453, 3.236, 5.715}),

		// Rutile ordinary ray (Devore 1951), rewritten in Sellmeier form.
		Sellmeier{
			Label: "TiO2",
			A:     5.913 - 0.2441/0.0803,
			Terms: []SellmeierTerm{{B: 0.2441 / 0.0803, C: 0.0803}},
			Min:   0.43e-6,
			Max:   1.53e-6,
		},
		sellmeier("Al2O3", 0.2e-6, 5e-6,
			SellmeierTerm{1.4313493, sq(0.0726631)},
			SellmeierTerm{0.65054713, sq(0.1193242)},
			SellmeierTerm{5.3414021, sq(18.028251)}),
		sellmeier("BK7", 0.3e-6, 2.5e-6,
			SellmeierTerm{1.03961212, 0.00600069867},
			SellmeierTerm{0.231792344, 0.0200179144},
			SellmeierTerm{1.01046945, 103.560653}),
		sellmeier("MgF2", 0.2e-6, 7e-6,
			SellmeierTerm{0.48755108, sq(0.04338408)},
			SellmeierTerm{0.39875031, sq(0.09461442)},
			SellmeierTerm{2.3120353, sq(23.793604)}),
		sellmeier("CaF2", 0.23e-6, 9.7e-6,
			SellmeierTerm{0.5675888, sq(0.050263605)},
			SellmeierTerm{0.4710914, sq(0.1003909)},
			SellmeierTerm{3.8484723, sq(34.649040)}),
		sellmeier("Polystyrene", 0.437e-6, 1.052e-6,
			SellmeierTerm{1.4435, 0.020216}),
		// Salzberg and Villa (1957), transparent region only.
		sellmeier("Si", 1.36e-6, 11e-6,
			SellmeierTerm{10.6684293, sq(0.301516485)},
			SellmeierTerm{0.0030434748, sq(1.13475115)},
			SellmeierTerm{1.54133408, sq(1104)}),

		Cauchy{Label: "HfO2", A: 1.875, B: 0.0064, Min: 0.25e-6, Max: 2e-6},
		Cauchy{Label: "AlN", A: 2.005, B: 0.048, K: 0.00015, Min: 0.22e-6, Max: 5e-6},
		Cauchy{Label: "Water", A: 1.324, B: 0.00306, Min: 0.2e-6, Max: 1.1e-6},
	}
}

func builtinModels() ([]Model, error) {
	models := analyticModels()
	for _, t := range embeddedTables {
		m, err := loadEmbedded(t.label, t.file)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}
