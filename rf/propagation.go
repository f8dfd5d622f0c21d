package rf

import "math"

// FreeSpacePathLoss returns the one-way free-space path loss in dB over
// distanceM metres at frequencyHz: FSPL = 20 log10(4 π d / λ). Strictly
// increasing in both distance and frequency over the valid domain.
func FreeSpacePathLoss(distanceM, frequencyHz float64) (float64, error) {
	const op = "FreeSpacePathLoss"
	if distanceM <= 0 {
		return 0, domainErr(op, "distance_m", "> 0", distanceM)
	}
	if frequencyHz <= 0 {
		return 0, domainErr(op, "frequency_hz", "> 0", frequencyHz)
	}
	lambda := SpeedOfLight / frequencyHz
	return 20 * math.Log10(4*math.Pi*distanceM/lambda), nil
}

// LinkBudgetInput parameterises the one-way received power calculation.
type LinkBudgetInput struct {
	TxPowerW     float64 // transmitter output power, watts
	TxGainDBi    float64
	RxGainDBi    float64
	DistanceM    float64
	FrequencyHz  float64
	SystemLossDB float64 // lumped feeder and propagation losses, dB
}

// ReceivedPower returns the one-way link-budget received power in dBm:
// Pr = Pt + Gt + Gr - FSPL - L. Zero range is rejected rather than
// producing an infinite result.
func ReceivedPower(in LinkBudgetInput) (float64, error) {
	const op = "ReceivedPower"
	if in.TxPowerW <= 0 {
		return 0, domainErr(op, "tx_power_w", "> 0", in.TxPowerW)
	}
	if in.DistanceM <= 0 {
		return 0, domainErr(op, "distance_m", "> 0", in.DistanceM)
	}
	if in.FrequencyHz <= 0 {
		return 0, domainErr(op, "frequency_hz", "> 0", in.FrequencyHz)
	}
	if in.SystemLossDB < 0 {
		return 0, domainErr(op, "system_loss_db", ">= 0", in.SystemLossDB)
	}
	fspl, err := FreeSpacePathLoss(in.DistanceM, in.FrequencyHz)
	if err != nil {
		return 0, err
	}
	return dbm(in.TxPowerW) + in.TxGainDBi + in.RxGainDBi - fspl - in.SystemLossDB, nil
}

// RadarEquationInput parameterises the two-way monostatic radar equation.
type RadarEquationInput struct {
	TxPowerW     float64
	TxGainDBi    float64
	RxGainDBi    float64
	FrequencyHz  float64
	TargetRCSM2  float64 // target radar cross section, m²
	RangeM       float64
	SystemLossDB float64
}

// RadarReceivedPower returns the two-way target echo power in dBm:
//
//	Pr = Pt Gt Gr (λ/4π)² σ / R⁴ L
//
// evaluated in the dB domain. The same (λ/4π)² geometric convention is used
// by BurnThroughRange so the two stay invertible against each other.
func RadarReceivedPower(in RadarEquationInput) (float64, error) {
	const op = "RadarReceivedPower"
	if in.TxPowerW <= 0 {
		return 0, domainErr(op, "tx_power_w", "> 0", in.TxPowerW)
	}
	if in.FrequencyHz <= 0 {
		return 0, domainErr(op, "frequency_hz", "> 0", in.FrequencyHz)
	}
	if in.TargetRCSM2 <= 0 {
		return 0, domainErr(op, "target_rcs_m2", "> 0", in.TargetRCSM2)
	}
	if in.RangeM <= 0 {
		return 0, domainErr(op, "range_m", "> 0", in.RangeM)
	}
	if in.SystemLossDB < 0 {
		return 0, domainErr(op, "system_loss_db", ">= 0", in.SystemLossDB)
	}
	lambda := SpeedOfLight / in.FrequencyHz
	geometricDB := 20 * math.Log10(lambda/(4*math.Pi))
	rangeDB := 40 * math.Log10(in.RangeM)
	rcsDB := 10 * math.Log10(in.TargetRCSM2)
	return dbm(in.TxPowerW) + in.TxGainDBi + in.RxGainDBi + geometricDB + rcsDB - rangeDB - in.SystemLossDB, nil
}

// FresnelRadius returns the clearance radius of Fresnel zone n at a point a
// fraction of the way along a path of totalDistanceM metres:
//
//	r = sqrt(n λ d1 d2 / d)
//
// The radius collapses to zero at either endpoint (fraction 0 or 1), which
// is the degenerate zero-leg case; fraction 0.5 gives the familiar midpoint
// clearance.
func FresnelRadius(totalDistanceM, frequencyHz, fraction float64, zone int) (float64, error) {
	const op = "FresnelRadius"
	if totalDistanceM <= 0 {
		return 0, domainErr(op, "distance_m", "> 0", totalDistanceM)
	}
	if frequencyHz <= 0 {
		return 0, domainErr(op, "frequency_hz", "> 0", frequencyHz)
	}
	if fraction < 0 || fraction > 1 {
		return 0, domainErr(op, "fraction", "in [0, 1]", fraction)
	}
	if zone < 1 {
		return 0, domainErr(op, "zone", ">= 1", float64(zone))
	}
	lambda := SpeedOfLight / frequencyHz
	d1 := fraction * totalDistanceM
	d2 := totalDistanceM - d1
	return math.Sqrt(float64(zone) * lambda * d1 * d2 / totalDistanceM), nil
}

// EarthBulge returns the height in metres by which the Earth's curvature
// rises above the chord at a point a fraction of the way along the path:
//
//	h = d1 d2 / (2 k Re)
//
// kFactor is the effective-earth-radius factor; pass 0 for the standard 4/3
// atmosphere. Zero total distance yields zero bulge.
func EarthBulge(totalDistanceM, fraction, kFactor float64) (float64, error) {
	const op = "EarthBulge"
	if totalDistanceM < 0 {
		return 0, domainErr(op, "distance_m", ">= 0", totalDistanceM)
	}
	if fraction < 0 || fraction > 1 {
		return 0, domainErr(op, "fraction", "in [0, 1]", fraction)
	}
	if kFactor < 0 {
		return 0, domainErr(op, "k_factor", "> 0 (or 0 for default)", kFactor)
	}
	if kFactor == 0 {
		kFactor = DefaultKFactor
	}
	d1 := fraction * totalDistanceM
	d2 := totalDistanceM - d1
	return d1 * d2 / (2 * kFactor * EarthRadiusM), nil
}

// SNRMargin combines a received power, a noise floor and the SNR the
// detector requires, all in dB(m). Negative means the link does not close.
func SNRMargin(receivedPowerDBm, noiseFloorDBm, requiredSNRdB float64) float64 {
	return receivedPowerDBm - noiseFloorDBm - requiredSNRdB
}

// EIRP returns the effective isotropic radiated power in dBm.
func EIRP(txPowerW, txGainDBi float64) (float64, error) {
	if txPowerW <= 0 {
		return 0, domainErr("EIRP", "tx_power_w", "> 0", txPowerW)
	}
	return dbm(txPowerW) + txGainDBi, nil
}

// RadarHorizon returns the line-of-sight horizon range in metres for an
// antenna at antennaHeightM, extended by the target horizon when
// targetHeightM > 0: d = sqrt(2 k Re h_a) + sqrt(2 k Re h_t). Pass
// kFactor 0 for the standard 4/3 atmosphere.
func RadarHorizon(antennaHeightM, targetHeightM, kFactor float64) (float64, error) {
	const op = "RadarHorizon"
	if antennaHeightM < 0 {
		return 0, domainErr(op, "antenna_height_m", ">= 0", antennaHeightM)
	}
	if targetHeightM < 0 {
		return 0, domainErr(op, "target_height_m", ">= 0", targetHeightM)
	}
	if kFactor < 0 {
		return 0, domainErr(op, "k_factor", "> 0 (or 0 for default)", kFactor)
	}
	if kFactor == 0 {
		kFactor = DefaultKFactor
	}
	twoKRe := 2 * kFactor * EarthRadiusM
	return math.Sqrt(twoKRe*antennaHeightM) + math.Sqrt(twoKRe*targetHeightM), nil
}

// TargetHeight estimates target altitude in metres from slant range and
// elevation angle against an effective round earth:
//
//	h = R sin(el) + R² / (2 k Re)
//
// Elevation is in degrees from the local horizontal.
func TargetHeight(rangeM, elevationDeg, kFactor float64) (float64, error) {
	const op = "TargetHeight"
	if rangeM < 0 {
		return 0, domainErr(op, "range_m", ">= 0", rangeM)
	}
	if elevationDeg < -90 || elevationDeg > 90 {
		return 0, domainErr(op, "elevation_deg", "in [-90, 90]", elevationDeg)
	}
	if kFactor < 0 {
		return 0, domainErr(op, "k_factor", "> 0 (or 0 for default)", kFactor)
	}
	if kFactor == 0 {
		kFactor = DefaultKFactor
	}
	elRad := elevationDeg * math.Pi / 180
	return rangeM*math.Sin(elRad) + rangeM*rangeM/(2*kFactor*EarthRadiusM), nil
}
