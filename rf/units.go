package rf

import "math"

// Logarithmic unit conversions used throughout the calculators. These are the
// only places a power crosses between linear and dB domains, so the zero /
// negative guards live here.

// WattsToDBm converts a linear power in watts to dBm.
func WattsToDBm(powerW float64) (float64, error) {
	if powerW <= 0 {
		return 0, domainErr("WattsToDBm", "power_w", "> 0", powerW)
	}
	return 10 * math.Log10(powerW*1000), nil
}

// WattsToDBW converts a linear power in watts to dBW.
func WattsToDBW(powerW float64) (float64, error) {
	if powerW <= 0 {
		return 0, domainErr("WattsToDBW", "power_w", "> 0", powerW)
	}
	return 10 * math.Log10(powerW), nil
}

// LinearToDB converts a linear power ratio to dB.
func LinearToDB(ratio float64) (float64, error) {
	if ratio <= 0 {
		return 0, domainErr("LinearToDB", "ratio", "> 0", ratio)
	}
	return 10 * math.Log10(ratio), nil
}

// DBToLinear converts a dB power ratio to linear. Defined for all finite
// inputs.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// dbm and dbw are the unchecked internal forms for inputs already validated
// by the calling calculator.
func dbm(powerW float64) float64 { return 10 * math.Log10(powerW*1000) }
func dbw(powerW float64) float64 { return 10 * math.Log10(powerW) }
