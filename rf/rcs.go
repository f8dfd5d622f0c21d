package rf

import "math"

// ScatteringRegion classifies how a target of a given size scatters at a
// given wavelength.
type ScatteringRegion int

const (
	RegionRayleigh ScatteringRegion = iota
	RegionMie
	RegionOptical
)

func (r ScatteringRegion) String() string {
	switch r {
	case RegionRayleigh:
		return "rayleigh"
	case RegionMie:
		return "mie"
	case RegionOptical:
		return "optical"
	default:
		return "unknown"
	}
}

// RCSRegion is the output of ClassifyRCSRegion.
type RCSRegion struct {
	Region ScatteringRegion
	// SizeRatio is the circumference-to-wavelength ratio π D / λ the
	// classification is based on.
	SizeRatio float64
}

// ClassifyRCSRegion classifies a target of characteristic dimension
// characteristicSizeM against the wavelength at frequencyHz. The regime
// boundaries are the named constants RayleighRegionMaxRatio and
// OpticalRegionMinRatio; ratios on a boundary fall into the Mie regime.
func ClassifyRCSRegion(characteristicSizeM, frequencyHz float64) (RCSRegion, error) {
	const op = "ClassifyRCSRegion"
	if characteristicSizeM <= 0 {
		return RCSRegion{}, domainErr(op, "size_m", "> 0", characteristicSizeM)
	}
	if frequencyHz <= 0 {
		return RCSRegion{}, domainErr(op, "frequency_hz", "> 0", frequencyHz)
	}
	lambda := SpeedOfLight / frequencyHz
	ratio := math.Pi * characteristicSizeM / lambda

	region := RegionMie
	if ratio < RayleighRegionMaxRatio {
		region = RegionRayleigh
	} else if ratio > OpticalRegionMinRatio {
		region = RegionOptical
	}
	return RCSRegion{Region: region, SizeRatio: ratio}, nil
}

// RayleighSphereRCS returns the Rayleigh-region RCS in m² of a conducting
// sphere of diameterM: σ ≈ π⁵ d⁶ / λ⁴. The approximation is only physical
// when d ≪ λ; ClassifyRCSRegion tells the caller whether that holds.
func RayleighSphereRCS(diameterM, frequencyHz float64) (float64, error) {
	const op = "RayleighSphereRCS"
	if diameterM <= 0 {
		return 0, domainErr(op, "diameter_m", "> 0", diameterM)
	}
	if frequencyHz <= 0 {
		return 0, domainErr(op, "frequency_hz", "> 0", frequencyHz)
	}
	lambda := SpeedOfLight / frequencyHz
	return math.Pow(math.Pi, 5) * math.Pow(diameterM, 6) / math.Pow(lambda, 4), nil
}

// OpticalSphereRCS returns the optical-region RCS in m² of a conducting
// sphere, the projected area π d² / 4.
func OpticalSphereRCS(diameterM float64) (float64, error) {
	if diameterM <= 0 {
		return 0, domainErr("OpticalSphereRCS", "diameter_m", "> 0", diameterM)
	}
	return math.Pi * diameterM * diameterM / 4, nil
}

// ChaffCloudRCS returns the aggregate RCS in m² of a cloud of dipoleCount
// resonant chaff dipoles cut for frequencyHz: σ = N σ1 with
// σ1 = ChaffDipoleRCSFactor λ².
//
// Assumption: dipoles scatter independently (no shadowing or mutual
// coupling), so RCS grows linearly in N. That holds for the dilute clouds
// this estimate targets; dense pulse volumes saturate below N σ1.
func ChaffCloudRCS(dipoleCount int, frequencyHz float64) (float64, error) {
	const op = "ChaffCloudRCS"
	if dipoleCount < 1 {
		return 0, domainErr(op, "dipole_count", ">= 1", float64(dipoleCount))
	}
	if frequencyHz <= 0 {
		return 0, domainErr(op, "frequency_hz", "> 0", frequencyHz)
	}
	lambda := SpeedOfLight / frequencyHz
	return float64(dipoleCount) * ChaffDipoleRCSFactor * lambda * lambda, nil
}
