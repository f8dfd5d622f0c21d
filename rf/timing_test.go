package rf

import (
	"errors"
	"math"
	"testing"
)

func TestChirpRangeResolution_KnownScenario(t *testing.T) {
	// 1 MHz of chirp bandwidth resolves c/2B ≈ 150 m.
	got, err := ChirpRangeResolution(1e6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-150) > 0.2 {
		t.Errorf("resolution = %.3f m, want ≈ 150", got)
	}
}

func TestChirpRangeResolution_HalvingBandwidthDoubles(t *testing.T) {
	full, err := ChirpRangeResolution(2e6)
	if err != nil {
		t.Fatalf("full: %v", err)
	}
	half, err := ChirpRangeResolution(1e6)
	if err != nil {
		t.Fatalf("half: %v", err)
	}
	if math.Abs(half-2*full) > 1e-9 {
		t.Errorf("halving B gave %.6f, want %.6f", half, 2*full)
	}

	if _, err := ChirpRangeResolution(0); !errors.Is(err, ErrDomain) {
		t.Errorf("zero bandwidth: got %v, want ErrDomain", err)
	}
}

func TestPulseRangeResolution(t *testing.T) {
	// 1 µs pulse: cτ/2 ≈ 150 m.
	got, err := PulseRangeResolution(1e-6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-150) > 0.2 {
		t.Errorf("resolution = %.3f m, want ≈ 150", got)
	}
	if _, err := PulseRangeResolution(0); !errors.Is(err, ErrDomain) {
		t.Errorf("zero pulse width: got %v, want ErrDomain", err)
	}
}

func TestUnambiguousRange(t *testing.T) {
	// 1 kHz PRF, negligible pulse: c/(2·PRF) ≈ 150 km.
	got, err := UnambiguousRange(1000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-150e3) > 0.2e3 {
		t.Errorf("range = %.0f m, want ≈ 150000", got)
	}

	// The transmit pulse eats into the listening window.
	shorter, err := UnambiguousRange(1000, 100e-6)
	if err != nil {
		t.Fatalf("with pulse: %v", err)
	}
	if shorter >= got {
		t.Errorf("pulse width should shorten unambiguous range: %.0f >= %.0f", shorter, got)
	}

	if _, err := UnambiguousRange(0, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("zero PRF: got %v, want ErrDomain", err)
	}
	if _, err := UnambiguousRange(1000, 1e-3); !errors.Is(err, ErrDomain) {
		t.Errorf("pulse filling PRI: got %v, want ErrDomain", err)
	}
}

func TestUnambiguousVelocity(t *testing.T) {
	// λ ≈ 3 cm at 10 GHz, 10 kHz PRF: v = λ PRF/4 ≈ 75 m/s.
	got, err := UnambiguousVelocity(10e3, 10e9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-75) > 0.2 {
		t.Errorf("velocity = %.2f m/s, want ≈ 75", got)
	}
	if _, err := UnambiguousVelocity(0, 10e9); !errors.Is(err, ErrDomain) {
		t.Errorf("zero PRF: got %v, want ErrDomain", err)
	}
}

func TestDopplerShift_OddAndClosingPositive(t *testing.T) {
	closing, err := DopplerShift(300, 10e9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2v/λ at λ ≈ 3 cm: ≈ 20 kHz, and closing must be positive.
	if closing <= 0 {
		t.Errorf("closing target should give positive shift, got %.1f Hz", closing)
	}
	if math.Abs(closing-20e3) > 50 {
		t.Errorf("shift = %.1f Hz, want ≈ 20000", closing)
	}

	opening, err := DopplerShift(-300, 10e9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opening != -closing {
		t.Errorf("DopplerShift not odd: f(-v) = %g, -f(v) = %g", opening, -closing)
	}

	zero, err := DopplerShift(0, 10e9)
	if err != nil || zero != 0 {
		t.Errorf("stationary target: got (%g, %v), want (0, nil)", zero, err)
	}

	if _, err := DopplerShift(300, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("zero frequency: got %v, want ErrDomain", err)
	}
}

func TestDwellTime(t *testing.T) {
	// 2° beam at 36°/s (6 rpm) and 1 kHz PRF: dwell 55.6 ms, ≈ 56 pulses.
	d, err := DwellTime(2, 36, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d.DwellTimeS-2.0/36) > 1e-9 {
		t.Errorf("dwell = %.4f s, want %.4f", d.DwellTimeS, 2.0/36)
	}
	if math.Abs(d.PulsesPerDwell-2.0/36*1000) > 1e-6 {
		t.Errorf("pulses per dwell = %.2f, want %.2f", d.PulsesPerDwell, 2.0/36*1000)
	}

	// Scan direction is irrelevant; only the rate magnitude matters.
	reversed, err := DwellTime(2, -36, 1000)
	if err != nil {
		t.Fatalf("reversed scan: %v", err)
	}
	if reversed != d {
		t.Errorf("reversed scan dwell = %+v, want %+v", reversed, d)
	}

	if _, err := DwellTime(2, 0, 1000); !errors.Is(err, ErrDomain) {
		t.Errorf("zero scan rate: got %v, want ErrDomain", err)
	}
	if _, err := DwellTime(0, 36, 1000); !errors.Is(err, ErrDomain) {
		t.Errorf("zero beamwidth: got %v, want ErrDomain", err)
	}
}

func TestDutyCycle(t *testing.T) {
	dc, err := DutyCycle(1e-6, 1e-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(dc-0.001) > 1e-12 {
		t.Errorf("duty cycle = %g, want 0.001", dc)
	}
	if _, err := DutyCycle(2e-3, 1e-3); !errors.Is(err, ErrDomain) {
		t.Errorf("pulse longer than PRI: got %v, want ErrDomain", err)
	}
	if _, err := DutyCycle(1e-6, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("zero PRI: got %v, want ErrDomain", err)
	}
}

func TestBlindRange(t *testing.T) {
	// Pulse only: same as pulse resolution.
	got, err := BlindRange(1e-6, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-150) > 0.2 {
		t.Errorf("blind range = %.2f m, want ≈ 150", got)
	}
	longer, err := BlindRange(1e-6, 1e-6, 1e-6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(longer-3*got) > 1e-6 {
		t.Errorf("dead+recovery should triple the blind range: %.2f vs %.2f", longer, 3*got)
	}
	if _, err := BlindRange(-1e-6, 0, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("negative pulse width: got %v, want ErrDomain", err)
	}
}

func TestAngularResolution(t *testing.T) {
	// 1° at 100 km ≈ 1745 m of cross range.
	got, err := AngularResolution(100e3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1745) > 1 {
		t.Errorf("cross range = %.1f m, want ≈ 1745", got)
	}
	if _, err := AngularResolution(100e3, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("zero beamwidth: got %v, want ErrDomain", err)
	}
}

func TestResolutionCellVolume_ScalesWithRangeSquared(t *testing.T) {
	near, err := ResolutionCellVolume(10e3, 2, 2, 1e-6)
	if err != nil {
		t.Fatalf("near: %v", err)
	}
	far, err := ResolutionCellVolume(20e3, 2, 2, 1e-6)
	if err != nil {
		t.Fatalf("far: %v", err)
	}
	if math.Abs(far/near-4) > 1e-9 {
		t.Errorf("doubling range should quadruple cell volume, ratio = %.6f", far/near)
	}
}
