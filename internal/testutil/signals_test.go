package testutil

import (
	"math"
	"testing"
)

func TestGaussianLine(t *testing.T) {
	x := []float64{-1, 0, 1}
	g := GaussianLine(x, 0, 2)
	if g[1] != 1 {
		t.Fatalf("peak = %v, want 1", g[1])
	}
	// x = +-1 is the half-maximum point for FWHM 2.
	if math.Abs(g[0]-0.5) > 1e-12 || math.Abs(g[2]-0.5) > 1e-12 {
		t.Fatalf("half-maximum values = %v, %v", g[0], g[2])
	}
}

func TestLorentzianLine(t *testing.T) {
	l := LorentzianLine([]float64{2, 3, 4}, 3, 1)
	if l[1] != 1 || l[0] != 0.5 || l[2] != 0.5 {
		t.Fatalf("line = %v", l)
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestConstant(t *testing.T) {
	c := Constant(0.25, 5)
	for i, v := range c {
		if v != 0.25 {
			t.Fatalf("c[%d] = %v, want 0.25", i, v)
		}
	}
	if len(Ones(3)) != 3 || Ones(3)[2] != 1 {
		t.Fatal("Ones(3) mismatch")
	}
}
