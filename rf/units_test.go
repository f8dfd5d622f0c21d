package rf

import (
	"errors"
	"math"
	"testing"
)

func TestPowerConversions(t *testing.T) {
	v, err := WattsToDBm(1)
	if err != nil || math.Abs(v-30) > 1e-12 {
		t.Errorf("WattsToDBm(1) = (%g, %v), want (30, nil)", v, err)
	}
	v, err = WattsToDBW(1000)
	if err != nil || math.Abs(v-30) > 1e-12 {
		t.Errorf("WattsToDBW(1000) = (%g, %v), want (30, nil)", v, err)
	}
	if _, err := WattsToDBm(0); !errors.Is(err, ErrDomain) {
		t.Errorf("WattsToDBm(0): got %v, want ErrDomain", err)
	}
	if _, err := WattsToDBW(-1); !errors.Is(err, ErrDomain) {
		t.Errorf("WattsToDBW(-1): got %v, want ErrDomain", err)
	}
}

func TestDBRoundTrip(t *testing.T) {
	for _, ratio := range []float64{0.001, 0.5, 1, 2, 1000} {
		db, err := LinearToDB(ratio)
		if err != nil {
			t.Fatalf("LinearToDB(%g): %v", ratio, err)
		}
		if back := DBToLinear(db); math.Abs(back-ratio)/ratio > 1e-12 {
			t.Errorf("round trip %g -> %g dB -> %g", ratio, db, back)
		}
	}
	if _, err := LinearToDB(0); !errors.Is(err, ErrDomain) {
		t.Errorf("LinearToDB(0): got %v, want ErrDomain", err)
	}
}

func TestWavelength(t *testing.T) {
	lambda, err := Wavelength(10e9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(lambda-0.03) > 0.001 {
		t.Errorf("λ(10 GHz) = %g m, want ≈ 0.03", lambda)
	}
	if _, err := Wavelength(0); !errors.Is(err, ErrDomain) {
		t.Errorf("zero frequency: got %v, want ErrDomain", err)
	}
}
