package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). NaN compares equal
// to NaN.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.IsNaN(got[i]) && math.IsNaN(want[i]) {
			continue
		}
		diff := math.Abs(got[i] - want[i])
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNear fails t if |got-want| > eps.
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); !(diff <= eps) {
		t.Fatalf("%s = %.12g, want %.12g (diff %.3g > eps %.3g)", name, got, want, diff, eps)
	}
}

// RequireRelNear fails t if got deviates from want by more than rel of |want|.
func RequireRelNear(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if diff := math.Abs(got - want); !(diff <= rel*math.Abs(want)) {
		t.Fatalf("%s = %.12g, want %.12g (relative error %.3g > %.3g)", name, got, want, diff/math.Abs(want), rel)
	}
}

// RequireComplexNear fails t if |got-want| > eps.
func RequireComplexNear(t *testing.T, name string, got, want complex128, eps float64) {
	t.Helper()
	if diff := cmplx.Abs(got - want); !(diff <= eps) {
		t.Fatalf("%s = %v, want %v (diff %.3g > eps %.3g)", name, got, want, diff, eps)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
