package rf

import (
	"errors"
	"testing"
)

func testPatternConfig(shape ApertureShape) PatternConfig {
	return PatternConfig{
		Shape:        shape,
		ApertureM:    0.5,
		FrequencyHz:  10e9,
		ElementCount: 8,
		ThetaSamples: 19,
		PhiSamples:   36,
	}
}

func TestPatternSampler_ExactCountAllShapes(t *testing.T) {
	for _, shape := range []ApertureShape{ShapeRectangular, ShapeCircular, ShapeLinearArray} {
		s, err := NewPatternSampler(testPatternConfig(shape))
		if err != nil {
			t.Fatalf("shape %d: %v", shape, err)
		}
		n := 0
		for {
			_, ok := s.Next()
			if !ok {
				break
			}
			n++
		}
		if n != 19*36 {
			t.Errorf("shape %d produced %d samples, want %d", shape, n, 19*36)
		}
		// Exhausted sampler stays exhausted.
		if _, ok := s.Next(); ok {
			t.Errorf("shape %d: Next after exhaustion returned a sample", shape)
		}
	}
}

func TestPatternSampler_ResetRestartsIdentically(t *testing.T) {
	s, err := NewPatternSampler(testPatternConfig(ShapeCircular))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := s.Samples()
	s.Reset()
	second := s.Samples()
	if len(first) != len(second) {
		t.Fatalf("sweep lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs after Reset: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPatternSampler_BoresightIsPeak(t *testing.T) {
	for _, shape := range []ApertureShape{ShapeRectangular, ShapeCircular, ShapeLinearArray} {
		s, err := NewPatternSampler(testPatternConfig(shape))
		if err != nil {
			t.Fatalf("shape %d: %v", shape, err)
		}
		samples := s.Samples()
		boresight := samples[0]
		if boresight.ThetaRad != 0 {
			t.Fatalf("shape %d: first sample theta = %g, want 0", shape, boresight.ThetaRad)
		}
		if boresight.GaindB != 0 {
			t.Errorf("shape %d: boresight gain = %g dB, want 0", shape, boresight.GaindB)
		}
		for _, sample := range samples {
			if sample.GaindB > 0 {
				t.Errorf("shape %d: sample above boresight: %+v", shape, sample)
				break
			}
			if sample.GaindB < PatternFloorDB-1e-9 {
				t.Errorf("shape %d: sample below floor: %+v", shape, sample)
				break
			}
		}
	}
}

func TestPatternSampler_ArraySpacingDefaultsToHalfWavelength(t *testing.T) {
	cfg := testPatternConfig(ShapeLinearArray)
	cfg.ElementSpacingM = 0
	s, err := NewPatternSampler(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.spacing != s.lambda/2 {
		t.Errorf("default spacing = %g, want λ/2 = %g", s.spacing, s.lambda/2)
	}
}

func TestPatternSampler_ConfigGuards(t *testing.T) {
	bad := testPatternConfig(ShapeRectangular)
	bad.ApertureM = 0
	if _, err := NewPatternSampler(bad); !errors.Is(err, ErrDomain) {
		t.Errorf("zero aperture: got %v, want ErrDomain", err)
	}

	bad = testPatternConfig(ShapeLinearArray)
	bad.ElementCount = 1
	if _, err := NewPatternSampler(bad); !errors.Is(err, ErrDomain) {
		t.Errorf("single element: got %v, want ErrDomain", err)
	}

	bad = testPatternConfig(ShapeCircular)
	bad.ThetaSamples = 0
	if _, err := NewPatternSampler(bad); !errors.Is(err, ErrDomain) {
		t.Errorf("zero theta samples: got %v, want ErrDomain", err)
	}
}
