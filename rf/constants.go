package rf

// Physical constants and approximation factors shared by the calculators.
// Every regime threshold and rule-of-thumb factor is named here rather than
// inlined at the point of use.
const (
	// SpeedOfLight in vacuum, m/s.
	SpeedOfLight = 299792458.0

	// EarthRadiusM is the mean Earth radius in metres, matching the value
	// used by the propagation geometry formulas.
	EarthRadiusM = 6371.0e3

	// DefaultKFactor is the standard-atmosphere effective-earth-radius
	// factor (4/3 earth) applied when a caller passes k = 0.
	DefaultKFactor = 4.0 / 3.0

	// ReferenceTemperatureK is the IEEE noise reference temperature T0
	// anchoring noise-figure / noise-temperature conversions.
	ReferenceTemperatureK = 290.0

	// ThermalNoiseDBmPerHz is kT0 in dBm per hertz of bandwidth at T0.
	ThermalNoiseDBmPerHz = -174.0

	// IsotropicSolidAngleDeg2 is the full-sphere solid angle in square
	// degrees, the numerator of the rectangular-aperture gain estimate
	// G = eff * 41253 / (thetaAz * thetaEl).
	IsotropicSolidAngleDeg2 = 41253.0

	// ApertureBeamwidthFactorDeg is the rule-of-thumb constant in the
	// half-power beamwidth estimate theta ≈ 70 λ/D degrees.
	ApertureBeamwidthFactorDeg = 70.0

	// ChaffDipoleRCSFactor scales λ² into the orientation-averaged RCS of
	// a single resonant half-wave chaff dipole, σ1 ≈ 0.155 λ².
	ChaffDipoleRCSFactor = 0.155

	// RayleighRegionMaxRatio and OpticalRegionMinRatio bound the
	// scattering regimes by the circumference-to-wavelength ratio πD/λ.
	// Below the first the target scatters in the Rayleigh regime, above
	// the second in the optical regime, and between them in the Mie
	// (resonance) regime.
	RayleighRegionMaxRatio = 1.0
	OpticalRegionMinRatio  = 10.0

	// SupportJammingConstantDB is the additive constant of the EW-handbook
	// support-jamming J/S relationship when ranges are taken in km and
	// frequency in MHz.
	SupportJammingConstantDB = 11.0
)

// Wavelength converts a carrier frequency in hertz to wavelength in metres.
func Wavelength(frequencyHz float64) (float64, error) {
	if frequencyHz <= 0 {
		return 0, domainErr("Wavelength", "frequency_hz", "> 0", frequencyHz)
	}
	return SpeedOfLight / frequencyHz, nil
}
