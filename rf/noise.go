package rf

import "math"

// NoiseFigureToTemperature converts a noise figure in dB to equivalent
// noise temperature in kelvin: Te = T0 (10^(NF/10) - 1), T0 = 290 K. A
// negative noise figure would imply a receiver colder than the reference
// and is rejected.
func NoiseFigureToTemperature(noiseFigureDB float64) (float64, error) {
	if noiseFigureDB < 0 {
		return 0, domainErr("NoiseFigureToTemperature", "noise_figure_db", ">= 0", noiseFigureDB)
	}
	return ReferenceTemperatureK * (math.Pow(10, noiseFigureDB/10) - 1), nil
}

// NoiseTemperatureToFigure is the inverse conversion:
// NF = 10 log10(1 + Te/T0). Round-trips with NoiseFigureToTemperature
// within floating tolerance.
func NoiseTemperatureToFigure(noiseTemperatureK float64) (float64, error) {
	if noiseTemperatureK < 0 {
		return 0, domainErr("NoiseTemperatureToFigure", "noise_temperature_k", ">= 0", noiseTemperatureK)
	}
	return 10 * math.Log10(1+noiseTemperatureK/ReferenceTemperatureK), nil
}

// NoiseFloor returns the receiver noise floor in dBm:
// kT0 + 10 log10(B) + NF.
func NoiseFloor(bandwidthHz, noiseFigureDB float64) (float64, error) {
	const op = "NoiseFloor"
	if bandwidthHz <= 0 {
		return 0, domainErr(op, "bandwidth_hz", "> 0", bandwidthHz)
	}
	if noiseFigureDB < 0 {
		return 0, domainErr(op, "noise_figure_db", ">= 0", noiseFigureDB)
	}
	return ThermalNoiseDBmPerHz + 10*math.Log10(bandwidthHz) + noiseFigureDB, nil
}

// Sensitivity returns the minimum detectable signal in dBm: the noise floor
// raised by the SNR the detector requires.
func Sensitivity(bandwidthHz, noiseFigureDB, requiredSNRdB float64) (float64, error) {
	floor, err := NoiseFloor(bandwidthHz, noiseFigureDB)
	if err != nil {
		return 0, err
	}
	return floor + requiredSNRdB, nil
}

// ADC quantization figures of merit. The slope and offset come from the
// ideal-quantizer SNR relationship 6.02 n + 1.76 dB.
const (
	sinadSlopeDBPerBit = 6.02
	sinadOffsetDB      = 1.76
)

// ENOBFromSINAD returns the effective number of bits implied by a measured
// SINAD in dB.
func ENOBFromSINAD(sinadDB float64) float64 {
	return (sinadDB - sinadOffsetDB) / sinadSlopeDBPerBit
}

// SINADFromENOB returns the SINAD in dB of an ideal converter with the
// given effective bit count.
func SINADFromENOB(enobBits float64) float64 {
	return enobBits*sinadSlopeDBPerBit + sinadOffsetDB
}
