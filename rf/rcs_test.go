package rf

import (
	"errors"
	"math"
	"testing"
)

func TestClassifyRCSRegion_Regimes(t *testing.T) {
	const freq = 3e9 // λ ≈ 10 cm
	lambda := SpeedOfLight / freq

	// πD/λ well under the Rayleigh bound.
	small, err := ClassifyRCSRegion(lambda/100, freq)
	if err != nil {
		t.Fatalf("small: %v", err)
	}
	if small.Region != RegionRayleigh {
		t.Errorf("small target classified %v, want rayleigh", small.Region)
	}

	// πD/λ between the bounds.
	mid, err := ClassifyRCSRegion(lambda, freq) // ratio = π
	if err != nil {
		t.Fatalf("mid: %v", err)
	}
	if mid.Region != RegionMie {
		t.Errorf("resonant target classified %v, want mie", mid.Region)
	}

	// πD/λ well over the optical bound.
	large, err := ClassifyRCSRegion(lambda*100, freq)
	if err != nil {
		t.Fatalf("large: %v", err)
	}
	if large.Region != RegionOptical {
		t.Errorf("large target classified %v, want optical", large.Region)
	}
}

func TestClassifyRCSRegion_BoundariesAreMie(t *testing.T) {
	const freq = 3e9
	lambda := SpeedOfLight / freq

	// Size exactly at each named threshold lands in the Mie regime.
	atRayleigh, err := ClassifyRCSRegion(RayleighRegionMaxRatio*lambda/math.Pi, freq)
	if err != nil {
		t.Fatalf("rayleigh bound: %v", err)
	}
	if atRayleigh.Region != RegionMie {
		t.Errorf("ratio %.6f classified %v, want mie", atRayleigh.SizeRatio, atRayleigh.Region)
	}

	atOptical, err := ClassifyRCSRegion(OpticalRegionMinRatio*lambda/math.Pi, freq)
	if err != nil {
		t.Fatalf("optical bound: %v", err)
	}
	if atOptical.Region != RegionMie {
		t.Errorf("ratio %.6f classified %v, want mie", atOptical.SizeRatio, atOptical.Region)
	}

	if _, err := ClassifyRCSRegion(0, freq); !errors.Is(err, ErrDomain) {
		t.Errorf("zero size: got %v, want ErrDomain", err)
	}
}

func TestRayleighSphereRCS_SixthPowerOfDiameter(t *testing.T) {
	const freq = 1e9
	small, err := RayleighSphereRCS(0.001, freq)
	if err != nil {
		t.Fatalf("small: %v", err)
	}
	doubled, err := RayleighSphereRCS(0.002, freq)
	if err != nil {
		t.Fatalf("doubled: %v", err)
	}
	if math.Abs(doubled/small-64) > 1e-6 {
		t.Errorf("doubling diameter should scale RCS by 2⁶, ratio = %.3f", doubled/small)
	}
}

func TestOpticalSphereRCS_ProjectedArea(t *testing.T) {
	got, err := OpticalSphereRCS(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("σ(d=2) = %g, want π", got)
	}
	if _, err := OpticalSphereRCS(0); !errors.Is(err, ErrDomain) {
		t.Errorf("zero diameter: got %v, want ErrDomain", err)
	}
}

func TestChaffCloudRCS_LinearInDipoleCount(t *testing.T) {
	const freq = 10e9
	one, err := ChaffCloudRCS(1, freq)
	if err != nil {
		t.Fatalf("one dipole: %v", err)
	}
	lambda := SpeedOfLight / freq
	if math.Abs(one-ChaffDipoleRCSFactor*lambda*lambda) > 1e-15 {
		t.Errorf("single-dipole RCS = %g, want %g", one, ChaffDipoleRCSFactor*lambda*lambda)
	}

	million, err := ChaffCloudRCS(1_000_000, freq)
	if err != nil {
		t.Fatalf("million dipoles: %v", err)
	}
	if math.Abs(million/one-1e6) > 1e-3 {
		t.Errorf("RCS should scale linearly in N, ratio = %g", million/one)
	}

	if _, err := ChaffCloudRCS(0, freq); !errors.Is(err, ErrDomain) {
		t.Errorf("zero dipoles: got %v, want ErrDomain", err)
	}
}
