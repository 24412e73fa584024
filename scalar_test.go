package skeleton

import "testing"

func TestEpsilon(t *testing.T) {
	if got := epsilon[float32](); got != 1e-4 {
		t.Errorf("epsilon[float32]() = %g, want 1e-4", got)
	}
	if got := epsilon[float64](); got != 1e-8 {
		t.Errorf("epsilon[float64]() = %g, want 1e-8", got)
	}
}
