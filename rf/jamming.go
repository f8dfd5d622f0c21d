package rf

import "math"

// JSRatioInput parameterises the support-jamming J/S estimate: a standoff
// jammer enters through a receive sidelobe while the target echo arrives
// through the mainlobe.
type JSRatioInput struct {
	JammerERPW      float64 // jammer effective radiated power, watts
	RadarERPW       float64 // radar effective radiated power, watts
	MainlobeGainDBi float64 // radar receive mainlobe gain
	SidelobeGainDBi float64 // radar receive gain toward the jammer
	TargetRangeM    float64
	JammerRangeM    float64
	FrequencyHz     float64
}

// JSRatio returns the jammer-to-signal power ratio in dB at the radar
// receiver. The target echo falls off as R⁴ while the one-way jammer power
// falls off as R², so J/S grows by 40 log10 of target range but only
// shrinks by 20 log10 of jammer range. The additive constant folds the
// handbook unit conventions (km, MHz) declared by SupportJammingConstantDB.
func JSRatio(in JSRatioInput) (float64, error) {
	const op = "JSRatio"
	if in.JammerERPW <= 0 {
		return 0, domainErr(op, "jammer_erp_w", "> 0", in.JammerERPW)
	}
	if in.RadarERPW <= 0 {
		return 0, domainErr(op, "radar_erp_w", "> 0", in.RadarERPW)
	}
	if in.TargetRangeM <= 0 {
		return 0, domainErr(op, "target_range_m", "> 0", in.TargetRangeM)
	}
	if in.JammerRangeM <= 0 {
		return 0, domainErr(op, "jammer_range_m", "> 0", in.JammerRangeM)
	}
	if in.FrequencyHz <= 0 {
		return 0, domainErr(op, "frequency_hz", "> 0", in.FrequencyHz)
	}
	return dbw(in.JammerERPW) - dbw(in.RadarERPW) +
		SupportJammingConstantDB +
		in.MainlobeGainDBi - in.SidelobeGainDBi +
		40*math.Log10(in.TargetRangeM/1000) -
		20*math.Log10(in.JammerRangeM/1000) -
		10*math.Log10(in.FrequencyHz/1e6), nil
}

// BurnThroughInput parameterises the self-screening burn-through solution.
type BurnThroughInput struct {
	TxPowerW      float64 // radar transmit power, watts
	TxGainDBi     float64 // radar antenna gain (used for both paths)
	JammerPowerW  float64
	JammerGainDBi float64
	FrequencyHz   float64
	TargetRCSM2   float64
	RequiredSJdB  float64 // S/J margin the radar must achieve, dB
}

// BurnThroughRange returns the range in metres inside which the target echo
// exceeds the self-screening jammer by the required S/J margin. The echo
// scales as 1/R⁴ and the jammer as 1/R², so their ratio inverts in closed
// form with a quarter-power range exponent in the dB domain:
//
//	40 log10 R = Pt + 2 Gt + σ|dB + 20 log10 λ - (Pj + Gj + 20 log10 4π + S/J)
//
// with powers in dBW. Raising the required margin pulls burn-through
// closer in.
func BurnThroughRange(in BurnThroughInput) (float64, error) {
	const op = "BurnThroughRange"
	if in.TxPowerW <= 0 {
		return 0, domainErr(op, "tx_power_w", "> 0", in.TxPowerW)
	}
	if in.JammerPowerW <= 0 {
		return 0, domainErr(op, "jammer_power_w", "> 0", in.JammerPowerW)
	}
	if in.FrequencyHz <= 0 {
		return 0, domainErr(op, "frequency_hz", "> 0", in.FrequencyHz)
	}
	if in.TargetRCSM2 <= 0 {
		return 0, domainErr(op, "target_rcs_m2", "> 0", in.TargetRCSM2)
	}
	if in.RequiredSJdB <= 0 {
		return 0, domainErr(op, "required_sj_db", "> 0", in.RequiredSJdB)
	}
	lambda := SpeedOfLight / in.FrequencyHz
	numeratorDB := dbw(in.TxPowerW) + 2*in.TxGainDBi +
		10*math.Log10(in.TargetRCSM2) + 20*math.Log10(lambda)
	denominatorDB := dbw(in.JammerPowerW) + in.JammerGainDBi +
		20*math.Log10(4*math.Pi) + in.RequiredSJdB
	rangeDB := (numeratorDB - denominatorDB) / 40
	return math.Pow(10, rangeDB), nil
}
