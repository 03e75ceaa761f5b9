package core

import (
	"math"
	"testing"
)

func TestFiniteChecks(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want bool
	}{
		{name: "zero", v: 0, want: true},
		{name: "large", v: -1e300, want: true},
		{name: "nan", v: math.NaN(), want: false},
		{name: "inf", v: math.Inf(1), want: false},
		{name: "-inf", v: math.Inf(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.v); got != tt.want {
				t.Fatalf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}

	if IsFiniteComplex(NaNComplex()) || IsFiniteComplex(complex(math.Inf(-1), 0)) || !IsFiniteComplex(1 + 2i) {
		t.Fatal("IsFiniteComplex misclassified a value")
	}
	if IsFiniteComplex(complex(1, math.Inf(1))) {
		t.Fatal("infinite imaginary part accepted")
	}
}

func TestPhotonConversions(t *testing.T) {
	// 1239.84 nm carries 1 eV.
	if got := PhotonEnergyEV(1239.8419843320026e-9); math.Abs(got-1) > 1e-9 {
		t.Fatalf("PhotonEnergyEV = %v, want 1", got)
	}
	if got := Wavenumber(1e-6); math.Abs(got-10000) > 1e-8 {
		t.Fatalf("Wavenumber(1um) = %v, want 10000", got)
	}
}
