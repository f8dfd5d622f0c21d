package rf

import "math"

// ApertureShape selects the closed-form pattern approximation sampled by
// PatternSampler.
type ApertureShape int

const (
	// ShapeRectangular is a uniformly illuminated square aperture:
	// separable sinc² factors in the two principal planes.
	ShapeRectangular ApertureShape = iota
	// ShapeCircular is a uniformly illuminated circular aperture: the Airy
	// pattern (2 J1(x)/x)².
	ShapeCircular
	// ShapeLinearArray is a uniform linear array of isotropic elements:
	// the classic array factor sin(Nψ/2) / (N sin(ψ/2)).
	ShapeLinearArray
)

// PatternFloorDB clips normalised pattern power so deep nulls stay finite
// when expressed in dB.
const PatternFloorDB = -60.0

// PatternConfig describes the aperture and the sampling grid.
type PatternConfig struct {
	Shape       ApertureShape
	ApertureM   float64 // width (rectangular), diameter (circular), or array length hint
	FrequencyHz float64

	// Linear-array parameters. ElementSpacingM of 0 defaults to λ/2.
	ElementCount    int
	ElementSpacingM float64

	// Grid resolution: theta spans [0, π] and phi spans [0, 2π).
	ThetaSamples int
	PhiSamples   int
}

// PatternSample is one point of the sampled gain surface. Gain is
// normalised so boresight (theta = 0) sits at 0 dB.
type PatternSample struct {
	ThetaRad float64
	PhiRad   float64
	GaindB   float64
}

// PatternSampler walks a theta × phi grid and evaluates the configured
// aperture approximation at each point. It is finite (exactly
// ThetaSamples × PhiSamples samples), restartable via Reset, and keeps no
// state between samples beyond the grid cursor, so two sweeps of the same
// sampler produce identical sequences.
type PatternSampler struct {
	cfg     PatternConfig
	lambda  float64
	spacing float64
	next    int
}

// NewPatternSampler validates the configuration and positions the cursor at
// the first sample.
func NewPatternSampler(cfg PatternConfig) (*PatternSampler, error) {
	const op = "PatternSampler"
	if cfg.ApertureM <= 0 {
		return nil, domainErr(op, "aperture_m", "> 0", cfg.ApertureM)
	}
	if cfg.FrequencyHz <= 0 {
		return nil, domainErr(op, "frequency_hz", "> 0", cfg.FrequencyHz)
	}
	if cfg.ThetaSamples < 1 {
		return nil, domainErr(op, "theta_samples", ">= 1", float64(cfg.ThetaSamples))
	}
	if cfg.PhiSamples < 1 {
		return nil, domainErr(op, "phi_samples", ">= 1", float64(cfg.PhiSamples))
	}
	lambda := SpeedOfLight / cfg.FrequencyHz
	spacing := cfg.ElementSpacingM
	if cfg.Shape == ShapeLinearArray {
		if cfg.ElementCount < 2 {
			return nil, domainErr(op, "element_count", ">= 2", float64(cfg.ElementCount))
		}
		if spacing < 0 {
			return nil, domainErr(op, "element_spacing_m", ">= 0 (0 selects λ/2)", spacing)
		}
		if spacing == 0 {
			spacing = lambda / 2
		}
	}
	switch cfg.Shape {
	case ShapeRectangular, ShapeCircular, ShapeLinearArray:
	default:
		return nil, domainErr(op, "shape", "a known ApertureShape", float64(cfg.Shape))
	}
	return &PatternSampler{cfg: cfg, lambda: lambda, spacing: spacing}, nil
}

// Len returns the total number of samples the sweep produces.
func (s *PatternSampler) Len() int { return s.cfg.ThetaSamples * s.cfg.PhiSamples }

// Reset rewinds the cursor so the sweep restarts from the first sample.
func (s *PatternSampler) Reset() { s.next = 0 }

// Next returns the next sample of the sweep, or ok=false once exactly Len()
// samples have been produced.
func (s *PatternSampler) Next() (PatternSample, bool) {
	if s.next >= s.Len() {
		return PatternSample{}, false
	}
	i := s.next / s.cfg.PhiSamples // theta index
	j := s.next % s.cfg.PhiSamples // phi index
	s.next++

	theta := 0.0
	if s.cfg.ThetaSamples > 1 {
		theta = math.Pi * float64(i) / float64(s.cfg.ThetaSamples-1)
	}
	phi := 2 * math.Pi * float64(j) / float64(s.cfg.PhiSamples)

	return PatternSample{
		ThetaRad: theta,
		PhiRad:   phi,
		GaindB:   s.gainDB(theta, phi),
	}, true
}

// Samples runs a full sweep into a slice, leaving the cursor at the end.
func (s *PatternSampler) Samples() []PatternSample {
	out := make([]PatternSample, 0, s.Len())
	s.Reset()
	for {
		sample, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, sample)
	}
}

func (s *PatternSampler) gainDB(theta, phi float64) float64 {
	var power float64
	switch s.cfg.Shape {
	case ShapeRectangular:
		// Separable principal-plane cuts of a square aperture.
		k := math.Pi * s.cfg.ApertureM / s.lambda
		fx := sinc(k * math.Sin(theta) * math.Cos(phi))
		fy := sinc(k * math.Sin(theta) * math.Sin(phi))
		power = fx * fx * fy * fy
	case ShapeCircular:
		x := math.Pi * s.cfg.ApertureM / s.lambda * math.Sin(theta)
		power = airy(x)
	case ShapeLinearArray:
		psi := 2 * math.Pi * s.spacing / s.lambda * math.Sin(theta) * math.Cos(phi)
		power = arrayFactor(psi, s.cfg.ElementCount)
	}

	floor := math.Pow(10, PatternFloorDB/10)
	if power < floor {
		power = floor
	}
	return 10 * math.Log10(power)
}

// sinc is sin(x)/x with the removable singularity filled in.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// airy is the normalised Airy power pattern (2 J1(x)/x)².
func airy(x float64) float64 {
	if x == 0 {
		return 1
	}
	v := 2 * math.J1(x) / x
	return v * v
}

// arrayFactor is the normalised power of the uniform linear array factor
// sin(Nψ/2) / (N sin(ψ/2)), with grating-lobe peaks handled at the
// singularities of the denominator.
func arrayFactor(psi float64, n int) float64 {
	half := psi / 2
	den := math.Sin(half)
	if math.Abs(den) < 1e-12 {
		return 1
	}
	v := math.Sin(float64(n)*half) / (float64(n) * den)
	return v * v
}
