package core

// CODATA 2018 SI values. All but StefanBoltzmann are exact by definition.
const (
	Planck          = 6.62607015e-34  // J s
	SpeedOfLight    = 299792458.0     // m/s
	Boltzmann       = 1.380649e-23    // J/K
	ElectronVolt    = 1.602176634e-19 // J
	StefanBoltzmann = 5.670374419e-8  // W m^-2 K^-4
)

// HCElectronVoltMetre is h*c expressed in eV*m, so that the photon energy in
// eV is HCElectronVoltMetre / lambda.
const HCElectronVoltMetre = Planck * SpeedOfLight / ElectronVolt

// MaxLuminousEfficacy is the luminous efficacy of 555 nm radiation in lm/W.
const MaxLuminousEfficacy = 683.0
