package rf

import "math"

// ApertureModel selects the solid-angle model behind the beamwidth gain
// estimate.
type ApertureModel int

const (
	// ApertureRectangular approximates the beam solid angle by the product
	// of the two beamwidths in square degrees: G = eff * 41253 / (θaz θel).
	ApertureRectangular ApertureModel = iota
	// ApertureElliptical uses the elliptical solid angle in steradians:
	// G = eff * 4π / (θaz θel).
	ApertureElliptical
)

// GainFromBeamwidth estimates boresight gain in dBi from the two half-power
// beamwidths in degrees and an aperture efficiency in (0, 1]. Gain falls
// monotonically as either beamwidth widens.
func GainFromBeamwidth(model ApertureModel, azBeamwidthDeg, elBeamwidthDeg, efficiency float64) (float64, error) {
	const op = "GainFromBeamwidth"
	if azBeamwidthDeg <= 0 || azBeamwidthDeg > 180 {
		return 0, domainErr(op, "az_beamwidth_deg", "in (0, 180]", azBeamwidthDeg)
	}
	if elBeamwidthDeg <= 0 || elBeamwidthDeg > 180 {
		return 0, domainErr(op, "el_beamwidth_deg", "in (0, 180]", elBeamwidthDeg)
	}
	if efficiency <= 0 || efficiency > 1 {
		return 0, domainErr(op, "efficiency", "in (0, 1]", efficiency)
	}

	var gainLinear float64
	switch model {
	case ApertureRectangular:
		gainLinear = efficiency * IsotropicSolidAngleDeg2 / (azBeamwidthDeg * elBeamwidthDeg)
	case ApertureElliptical:
		omega := (azBeamwidthDeg * math.Pi / 180) * (elBeamwidthDeg * math.Pi / 180)
		gainLinear = efficiency * 4 * math.Pi / omega
	default:
		return 0, domainErr(op, "model", "a known ApertureModel", float64(model))
	}
	return 10 * math.Log10(gainLinear), nil
}

// FieldBoundaries describes where the radiating near field and far field
// begin for an aperture antenna.
type FieldBoundaries struct {
	// ReactiveNearFieldEndM is the conventional end of the reactive zone,
	// 0.62 sqrt(D³/λ).
	ReactiveNearFieldEndM float64
	// FarFieldStartM is the Fraunhofer distance 2 D²/λ beyond which the
	// pattern is distance-independent.
	FarFieldStartM float64
}

// NearFarFieldBoundary returns the field-region boundaries for an aperture
// of largest dimension apertureM at frequencyHz.
func NearFarFieldBoundary(apertureM, frequencyHz float64) (FieldBoundaries, error) {
	const op = "NearFarFieldBoundary"
	if apertureM <= 0 {
		return FieldBoundaries{}, domainErr(op, "aperture_m", "> 0", apertureM)
	}
	if frequencyHz <= 0 {
		return FieldBoundaries{}, domainErr(op, "frequency_hz", "> 0", frequencyHz)
	}
	lambda := SpeedOfLight / frequencyHz
	return FieldBoundaries{
		ReactiveNearFieldEndM: 0.62 * math.Sqrt(apertureM*apertureM*apertureM/lambda),
		FarFieldStartM:        2 * apertureM * apertureM / lambda,
	}, nil
}

// BeamwidthFromAperture estimates the half-power beamwidth in degrees from
// aperture size via the θ ≈ 70 λ/D rule of thumb.
func BeamwidthFromAperture(apertureM, frequencyHz float64) (float64, error) {
	const op = "BeamwidthFromAperture"
	if apertureM <= 0 {
		return 0, domainErr(op, "aperture_m", "> 0", apertureM)
	}
	if frequencyHz <= 0 {
		return 0, domainErr(op, "frequency_hz", "> 0", frequencyHz)
	}
	lambda := SpeedOfLight / frequencyHz
	return ApertureBeamwidthFactorDeg * lambda / apertureM, nil
}
