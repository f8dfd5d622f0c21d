package rf

import "math"

// PulseRangeResolution returns the range resolution in metres of an
// unmodulated pulse of width pulseWidthS seconds: ΔR = c τ / 2.
func PulseRangeResolution(pulseWidthS float64) (float64, error) {
	if pulseWidthS <= 0 {
		return 0, domainErr("PulseRangeResolution", "pulse_width_s", "> 0", pulseWidthS)
	}
	return SpeedOfLight * pulseWidthS / 2, nil
}

// ChirpRangeResolution returns the range resolution in metres of a
// pulse-compressed chirp of bandwidth bandwidthHz: ΔR = c / 2B. Halving the
// bandwidth doubles (coarsens) the resolution.
func ChirpRangeResolution(bandwidthHz float64) (float64, error) {
	if bandwidthHz <= 0 {
		return 0, domainErr("ChirpRangeResolution", "bandwidth_hz", "> 0", bandwidthHz)
	}
	return SpeedOfLight / (2 * bandwidthHz), nil
}

// UnambiguousRange returns the maximum unambiguous range in metres for a
// pulse radar at prfHz, reduced by the transmit pulse itself:
// R = c (PRI - τ) / 2. A pulse filling the whole PRI leaves no listening
// time and is rejected.
func UnambiguousRange(prfHz, pulseWidthS float64) (float64, error) {
	const op = "UnambiguousRange"
	if prfHz <= 0 {
		return 0, domainErr(op, "prf_hz", "> 0", prfHz)
	}
	if pulseWidthS < 0 {
		return 0, domainErr(op, "pulse_width_s", ">= 0", pulseWidthS)
	}
	pri := 1 / prfHz
	if pulseWidthS >= pri {
		return 0, domainErr(op, "pulse_width_s", "< 1/prf", pulseWidthS)
	}
	return SpeedOfLight * (pri - pulseWidthS) / 2, nil
}

// UnambiguousVelocity returns the maximum unambiguous radial velocity in
// m/s for a coherent pulse radar: v = λ PRF / 4 (±PRF/2 of usable Doppler,
// two-way).
func UnambiguousVelocity(prfHz, frequencyHz float64) (float64, error) {
	const op = "UnambiguousVelocity"
	if prfHz <= 0 {
		return 0, domainErr(op, "prf_hz", "> 0", prfHz)
	}
	if frequencyHz <= 0 {
		return 0, domainErr(op, "frequency_hz", "> 0", frequencyHz)
	}
	lambda := SpeedOfLight / frequencyHz
	return lambda * prfHz / 4, nil
}

// DopplerShift returns the two-way (monostatic) Doppler shift in hertz for
// a target with radial velocity radialVelocityMS: fd = 2 v / λ.
//
// Sign convention: positive radial velocity means the target is CLOSING,
// and closing targets produce a positive shift. The function is odd in v.
func DopplerShift(radialVelocityMS, frequencyHz float64) (float64, error) {
	if frequencyHz <= 0 {
		return 0, domainErr("DopplerShift", "frequency_hz", "> 0", frequencyHz)
	}
	lambda := SpeedOfLight / frequencyHz
	return 2 * radialVelocityMS / lambda, nil
}

// DwellStats is the output of DwellTime.
type DwellStats struct {
	DwellTimeS     float64 // time the beam illuminates a point target
	PulsesPerDwell float64 // hits per scan at the given PRF
}

// DwellTime returns how long a scanning beam of beamwidthDeg dwells on a
// target and how many pulses are transmitted during that dwell. The scan
// direction does not matter, only the rate magnitude; a rate of zero never
// sweeps past the target and is rejected.
func DwellTime(beamwidthDeg, scanRateDegPerS, prfHz float64) (DwellStats, error) {
	const op = "DwellTime"
	if beamwidthDeg <= 0 || beamwidthDeg > 180 {
		return DwellStats{}, domainErr(op, "beamwidth_deg", "in (0, 180]", beamwidthDeg)
	}
	if scanRateDegPerS == 0 {
		return DwellStats{}, domainErr(op, "scan_rate_deg_s", "!= 0", scanRateDegPerS)
	}
	scanRateDegPerS = math.Abs(scanRateDegPerS)
	if prfHz <= 0 {
		return DwellStats{}, domainErr(op, "prf_hz", "> 0", prfHz)
	}
	dwell := beamwidthDeg / scanRateDegPerS
	return DwellStats{DwellTimeS: dwell, PulsesPerDwell: dwell * prfHz}, nil
}

// DutyCycle returns the transmit duty factor (unitless fraction) from pulse
// width and pulse repetition interval.
func DutyCycle(pulseWidthS, priS float64) (float64, error) {
	const op = "DutyCycle"
	if priS <= 0 {
		return 0, domainErr(op, "pri_s", "> 0", priS)
	}
	if pulseWidthS < 0 {
		return 0, domainErr(op, "pulse_width_s", ">= 0", pulseWidthS)
	}
	if pulseWidthS > priS {
		return 0, domainErr(op, "pulse_width_s", "<= pri_s", pulseWidthS)
	}
	return pulseWidthS / priS, nil
}

// BlindRange returns the minimum detectable range in metres imposed by the
// transmit pulse plus receiver dead and recovery time.
func BlindRange(pulseWidthS, deadTimeS, recoveryTimeS float64) (float64, error) {
	const op = "BlindRange"
	if pulseWidthS < 0 {
		return 0, domainErr(op, "pulse_width_s", ">= 0", pulseWidthS)
	}
	if deadTimeS < 0 {
		return 0, domainErr(op, "dead_time_s", ">= 0", deadTimeS)
	}
	if recoveryTimeS < 0 {
		return 0, domainErr(op, "recovery_time_s", ">= 0", recoveryTimeS)
	}
	return SpeedOfLight * (pulseWidthS + deadTimeS + recoveryTimeS) / 2, nil
}

// AngularResolution returns the cross-range extent in metres resolved by a
// beam of beamwidthDeg at rangeM (small-angle R θ).
func AngularResolution(rangeM, beamwidthDeg float64) (float64, error) {
	const op = "AngularResolution"
	if rangeM < 0 {
		return 0, domainErr(op, "range_m", ">= 0", rangeM)
	}
	if beamwidthDeg <= 0 || beamwidthDeg > 180 {
		return 0, domainErr(op, "beamwidth_deg", "in (0, 180]", beamwidthDeg)
	}
	return rangeM * beamwidthDeg * math.Pi / 180, nil
}

// ResolutionCellVolume returns the pulse volume in m³ illuminated by one
// resolution cell: V = R² θaz θel c τ / 8, beamwidths converted to radians.
func ResolutionCellVolume(rangeM, azBeamwidthDeg, elBeamwidthDeg, pulseWidthS float64) (float64, error) {
	const op = "ResolutionCellVolume"
	if rangeM < 0 {
		return 0, domainErr(op, "range_m", ">= 0", rangeM)
	}
	if azBeamwidthDeg <= 0 || azBeamwidthDeg > 180 {
		return 0, domainErr(op, "az_beamwidth_deg", "in (0, 180]", azBeamwidthDeg)
	}
	if elBeamwidthDeg <= 0 || elBeamwidthDeg > 180 {
		return 0, domainErr(op, "el_beamwidth_deg", "in (0, 180]", elBeamwidthDeg)
	}
	if pulseWidthS < 0 {
		return 0, domainErr(op, "pulse_width_s", ">= 0", pulseWidthS)
	}
	thetaAz := azBeamwidthDeg * math.Pi / 180
	thetaEl := elBeamwidthDeg * math.Pi / 180
	return rangeM * rangeM * thetaAz * thetaEl * SpeedOfLight * pulseWidthS / 8, nil
}
