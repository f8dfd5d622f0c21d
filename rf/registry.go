package rf

// The registry is the enumerated name → calculator dispatch table consumed
// by the HTTP API and the CLI. Each entry wraps one of the typed functions
// in this package behind a uniform map-of-floats signature and declares its
// input fields with their documented valid ranges.
//
// The pattern sampler is deliberately absent here: its output is a sample
// sequence, not a flat record, and it is exposed through its own API.

// FieldSpec documents one named input of a calculator.
type FieldSpec struct {
	Name       string `json:"name"`
	Unit       string `json:"unit"`
	Constraint string `json:"constraint"`
}

// Calculator is one entry of the dispatch table.
type Calculator struct {
	Name    string      `json:"name"`
	Summary string      `json:"summary"`
	Inputs  []FieldSpec `json:"inputs"`
	Outputs []string    `json:"outputs"`

	eval func(in map[string]float64) (map[string]float64, error)
}

// Evaluate checks that every declared input field is present, then invokes
// the underlying typed function. Missing fields produce a ConfigError
// before any computation; domain validation happens inside the typed
// function and surfaces as a DomainError.
func (c Calculator) Evaluate(in map[string]float64) (map[string]float64, error) {
	for _, f := range c.Inputs {
		if _, ok := in[f.Name]; !ok {
			return nil, &ConfigError{Calculator: c.Name, Field: f.Name}
		}
	}
	return c.eval(in)
}

// Registry returns the dispatch table in a stable, documented order. The
// returned slice is a copy; callers may reorder it freely.
func Registry() []Calculator {
	out := make([]Calculator, len(calculators))
	copy(out, calculators)
	return out
}

// Lookup finds a calculator by name.
func Lookup(name string) (Calculator, bool) {
	for _, c := range calculators {
		if c.Name == name {
			return c, true
		}
	}
	return Calculator{}, false
}

func one(name string, v float64, err error) (map[string]float64, error) {
	if err != nil {
		return nil, err
	}
	return map[string]float64{name: v}, nil
}

var calculators = []Calculator{
	{
		Name:    "free_space_path_loss",
		Summary: "One-way free-space path loss, 20 log10(4πd/λ).",
		Inputs: []FieldSpec{
			{Name: "distance_m", Unit: "m", Constraint: "> 0"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"path_loss_db"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := FreeSpacePathLoss(in["distance_m"], in["frequency_hz"])
			return one("path_loss_db", v, err)
		},
	},
	{
		Name:    "received_power",
		Summary: "One-way link-budget received power.",
		Inputs: []FieldSpec{
			{Name: "tx_power_w", Unit: "W", Constraint: "> 0"},
			{Name: "tx_gain_dbi", Unit: "dBi", Constraint: "any"},
			{Name: "rx_gain_dbi", Unit: "dBi", Constraint: "any"},
			{Name: "distance_m", Unit: "m", Constraint: "> 0"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
			{Name: "system_loss_db", Unit: "dB", Constraint: ">= 0"},
		},
		Outputs: []string{"received_power_dbm"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := ReceivedPower(LinkBudgetInput{
				TxPowerW:     in["tx_power_w"],
				TxGainDBi:    in["tx_gain_dbi"],
				RxGainDBi:    in["rx_gain_dbi"],
				DistanceM:    in["distance_m"],
				FrequencyHz:  in["frequency_hz"],
				SystemLossDB: in["system_loss_db"],
			})
			return one("received_power_dbm", v, err)
		},
	},
	{
		Name:    "radar_received_power",
		Summary: "Two-way monostatic radar equation echo power.",
		Inputs: []FieldSpec{
			{Name: "tx_power_w", Unit: "W", Constraint: "> 0"},
			{Name: "tx_gain_dbi", Unit: "dBi", Constraint: "any"},
			{Name: "rx_gain_dbi", Unit: "dBi", Constraint: "any"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
			{Name: "target_rcs_m2", Unit: "m²", Constraint: "> 0"},
			{Name: "range_m", Unit: "m", Constraint: "> 0"},
			{Name: "system_loss_db", Unit: "dB", Constraint: ">= 0"},
		},
		Outputs: []string{"received_power_dbm"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := RadarReceivedPower(RadarEquationInput{
				TxPowerW:     in["tx_power_w"],
				TxGainDBi:    in["tx_gain_dbi"],
				RxGainDBi:    in["rx_gain_dbi"],
				FrequencyHz:  in["frequency_hz"],
				TargetRCSM2:  in["target_rcs_m2"],
				RangeM:       in["range_m"],
				SystemLossDB: in["system_loss_db"],
			})
			return one("received_power_dbm", v, err)
		},
	},
	{
		Name:    "snr_margin",
		Summary: "Signed link margin over the required SNR.",
		Inputs: []FieldSpec{
			{Name: "received_power_dbm", Unit: "dBm", Constraint: "any"},
			{Name: "noise_floor_dbm", Unit: "dBm", Constraint: "any"},
			{Name: "required_snr_db", Unit: "dB", Constraint: "any"},
		},
		Outputs: []string{"margin_db"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			return map[string]float64{
				"margin_db": SNRMargin(in["received_power_dbm"], in["noise_floor_dbm"], in["required_snr_db"]),
			}, nil
		},
	},
	{
		Name:    "fresnel_radius",
		Summary: "Fresnel zone clearance radius at a fraction along the path.",
		Inputs: []FieldSpec{
			{Name: "distance_m", Unit: "m", Constraint: "> 0"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
			{Name: "fraction", Unit: "ratio", Constraint: "in [0, 1]"},
			{Name: "zone", Unit: "n", Constraint: ">= 1"},
		},
		Outputs: []string{"radius_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := FresnelRadius(in["distance_m"], in["frequency_hz"], in["fraction"], int(in["zone"]))
			return one("radius_m", v, err)
		},
	},
	{
		Name:    "earth_bulge",
		Summary: "Effective-earth curvature height at a fraction along the path.",
		Inputs: []FieldSpec{
			{Name: "distance_m", Unit: "m", Constraint: ">= 0"},
			{Name: "fraction", Unit: "ratio", Constraint: "in [0, 1]"},
			{Name: "k_factor", Unit: "ratio", Constraint: "> 0, or 0 for 4/3"},
		},
		Outputs: []string{"bulge_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := EarthBulge(in["distance_m"], in["fraction"], in["k_factor"])
			return one("bulge_m", v, err)
		},
	},
	{
		Name:    "eirp",
		Summary: "Effective isotropic radiated power.",
		Inputs: []FieldSpec{
			{Name: "tx_power_w", Unit: "W", Constraint: "> 0"},
			{Name: "tx_gain_dbi", Unit: "dBi", Constraint: "any"},
		},
		Outputs: []string{"eirp_dbm"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := EIRP(in["tx_power_w"], in["tx_gain_dbi"])
			return one("eirp_dbm", v, err)
		},
	},
	{
		Name:    "radar_horizon",
		Summary: "Line-of-sight horizon range over an effective round earth.",
		Inputs: []FieldSpec{
			{Name: "antenna_height_m", Unit: "m", Constraint: ">= 0"},
			{Name: "target_height_m", Unit: "m", Constraint: ">= 0"},
			{Name: "k_factor", Unit: "ratio", Constraint: "> 0, or 0 for 4/3"},
		},
		Outputs: []string{"horizon_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := RadarHorizon(in["antenna_height_m"], in["target_height_m"], in["k_factor"])
			return one("horizon_m", v, err)
		},
	},
	{
		Name:    "target_height",
		Summary: "Target altitude from slant range and elevation.",
		Inputs: []FieldSpec{
			{Name: "range_m", Unit: "m", Constraint: ">= 0"},
			{Name: "elevation_deg", Unit: "deg", Constraint: "in [-90, 90]"},
			{Name: "k_factor", Unit: "ratio", Constraint: "> 0, or 0 for 4/3"},
		},
		Outputs: []string{"height_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := TargetHeight(in["range_m"], in["elevation_deg"], in["k_factor"])
			return one("height_m", v, err)
		},
	},
	{
		Name:    "js_ratio",
		Summary: "Support-jamming jammer-to-signal ratio.",
		Inputs: []FieldSpec{
			{Name: "jammer_erp_w", Unit: "W", Constraint: "> 0"},
			{Name: "radar_erp_w", Unit: "W", Constraint: "> 0"},
			{Name: "mainlobe_gain_dbi", Unit: "dBi", Constraint: "any"},
			{Name: "sidelobe_gain_dbi", Unit: "dBi", Constraint: "any"},
			{Name: "target_range_m", Unit: "m", Constraint: "> 0"},
			{Name: "jammer_range_m", Unit: "m", Constraint: "> 0"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"js_db"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := JSRatio(JSRatioInput{
				JammerERPW:      in["jammer_erp_w"],
				RadarERPW:       in["radar_erp_w"],
				MainlobeGainDBi: in["mainlobe_gain_dbi"],
				SidelobeGainDBi: in["sidelobe_gain_dbi"],
				TargetRangeM:    in["target_range_m"],
				JammerRangeM:    in["jammer_range_m"],
				FrequencyHz:     in["frequency_hz"],
			})
			return one("js_db", v, err)
		},
	},
	{
		Name:    "burn_through_range",
		Summary: "Range where the echo beats a self-screening jammer by the required margin.",
		Inputs: []FieldSpec{
			{Name: "tx_power_w", Unit: "W", Constraint: "> 0"},
			{Name: "tx_gain_dbi", Unit: "dBi", Constraint: "any"},
			{Name: "jammer_power_w", Unit: "W", Constraint: "> 0"},
			{Name: "jammer_gain_dbi", Unit: "dBi", Constraint: "any"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
			{Name: "target_rcs_m2", Unit: "m²", Constraint: "> 0"},
			{Name: "required_sj_db", Unit: "dB", Constraint: "> 0"},
		},
		Outputs: []string{"burn_through_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := BurnThroughRange(BurnThroughInput{
				TxPowerW:      in["tx_power_w"],
				TxGainDBi:     in["tx_gain_dbi"],
				JammerPowerW:  in["jammer_power_w"],
				JammerGainDBi: in["jammer_gain_dbi"],
				FrequencyHz:   in["frequency_hz"],
				TargetRCSM2:   in["target_rcs_m2"],
				RequiredSJdB:  in["required_sj_db"],
			})
			return one("burn_through_m", v, err)
		},
	},
	{
		Name:    "gain_from_beamwidth_rect",
		Summary: "Boresight gain from beamwidths, rectangular solid-angle model.",
		Inputs:  beamwidthGainFields,
		Outputs: []string{"gain_dbi"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := GainFromBeamwidth(ApertureRectangular, in["az_beamwidth_deg"], in["el_beamwidth_deg"], in["efficiency"])
			return one("gain_dbi", v, err)
		},
	},
	{
		Name:    "gain_from_beamwidth_elliptical",
		Summary: "Boresight gain from beamwidths, elliptical solid-angle model.",
		Inputs:  beamwidthGainFields,
		Outputs: []string{"gain_dbi"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := GainFromBeamwidth(ApertureElliptical, in["az_beamwidth_deg"], in["el_beamwidth_deg"], in["efficiency"])
			return one("gain_dbi", v, err)
		},
	},
	{
		Name:    "near_far_field_boundary",
		Summary: "Radiating near-field and Fraunhofer far-field boundaries.",
		Inputs: []FieldSpec{
			{Name: "aperture_m", Unit: "m", Constraint: "> 0"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"reactive_near_field_end_m", "far_field_start_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			b, err := NearFarFieldBoundary(in["aperture_m"], in["frequency_hz"])
			if err != nil {
				return nil, err
			}
			return map[string]float64{
				"reactive_near_field_end_m": b.ReactiveNearFieldEndM,
				"far_field_start_m":         b.FarFieldStartM,
			}, nil
		},
	},
	{
		Name:    "beamwidth_from_aperture",
		Summary: "Half-power beamwidth estimate, 70 λ/D.",
		Inputs: []FieldSpec{
			{Name: "aperture_m", Unit: "m", Constraint: "> 0"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"beamwidth_deg"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := BeamwidthFromAperture(in["aperture_m"], in["frequency_hz"])
			return one("beamwidth_deg", v, err)
		},
	},
	{
		Name:    "range_resolution_pulse",
		Summary: "Unmodulated pulse range resolution, cτ/2.",
		Inputs: []FieldSpec{
			{Name: "pulse_width_s", Unit: "s", Constraint: "> 0"},
		},
		Outputs: []string{"resolution_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := PulseRangeResolution(in["pulse_width_s"])
			return one("resolution_m", v, err)
		},
	},
	{
		Name:    "range_resolution_chirp",
		Summary: "Pulse-compressed chirp range resolution, c/2B.",
		Inputs: []FieldSpec{
			{Name: "bandwidth_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"resolution_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := ChirpRangeResolution(in["bandwidth_hz"])
			return one("resolution_m", v, err)
		},
	},
	{
		Name:    "unambiguous_range",
		Summary: "Maximum unambiguous range from PRF and pulse width.",
		Inputs: []FieldSpec{
			{Name: "prf_hz", Unit: "Hz", Constraint: "> 0"},
			{Name: "pulse_width_s", Unit: "s", Constraint: ">= 0, < 1/prf"},
		},
		Outputs: []string{"range_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := UnambiguousRange(in["prf_hz"], in["pulse_width_s"])
			return one("range_m", v, err)
		},
	},
	{
		Name:    "unambiguous_velocity",
		Summary: "Maximum unambiguous radial velocity, λ·PRF/4.",
		Inputs: []FieldSpec{
			{Name: "prf_hz", Unit: "Hz", Constraint: "> 0"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"velocity_ms"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := UnambiguousVelocity(in["prf_hz"], in["frequency_hz"])
			return one("velocity_ms", v, err)
		},
	},
	{
		Name:    "doppler_shift",
		Summary: "Two-way Doppler shift, closing targets positive.",
		Inputs: []FieldSpec{
			{Name: "radial_velocity_ms", Unit: "m/s", Constraint: "any (positive = closing)"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"doppler_hz"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := DopplerShift(in["radial_velocity_ms"], in["frequency_hz"])
			return one("doppler_hz", v, err)
		},
	},
	{
		Name:    "dwell_time",
		Summary: "Beam dwell time and pulses per dwell for a scanning radar.",
		Inputs: []FieldSpec{
			{Name: "beamwidth_deg", Unit: "deg", Constraint: "in (0, 180]"},
			{Name: "scan_rate_deg_s", Unit: "deg/s", Constraint: "!= 0"},
			{Name: "prf_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"dwell_time_s", "pulses_per_dwell"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			d, err := DwellTime(in["beamwidth_deg"], in["scan_rate_deg_s"], in["prf_hz"])
			if err != nil {
				return nil, err
			}
			return map[string]float64{
				"dwell_time_s":     d.DwellTimeS,
				"pulses_per_dwell": d.PulsesPerDwell,
			}, nil
		},
	},
	{
		Name:    "duty_cycle",
		Summary: "Transmit duty factor.",
		Inputs: []FieldSpec{
			{Name: "pulse_width_s", Unit: "s", Constraint: ">= 0, <= pri_s"},
			{Name: "pri_s", Unit: "s", Constraint: "> 0"},
		},
		Outputs: []string{"duty_cycle"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := DutyCycle(in["pulse_width_s"], in["pri_s"])
			return one("duty_cycle", v, err)
		},
	},
	{
		Name:    "blind_range",
		Summary: "Minimum detectable range from pulse and receiver dead time.",
		Inputs: []FieldSpec{
			{Name: "pulse_width_s", Unit: "s", Constraint: ">= 0"},
			{Name: "dead_time_s", Unit: "s", Constraint: ">= 0"},
			{Name: "recovery_time_s", Unit: "s", Constraint: ">= 0"},
		},
		Outputs: []string{"blind_range_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := BlindRange(in["pulse_width_s"], in["dead_time_s"], in["recovery_time_s"])
			return one("blind_range_m", v, err)
		},
	},
	{
		Name:    "angular_resolution",
		Summary: "Cross-range extent resolved by the beam at range.",
		Inputs: []FieldSpec{
			{Name: "range_m", Unit: "m", Constraint: ">= 0"},
			{Name: "beamwidth_deg", Unit: "deg", Constraint: "in (0, 180]"},
		},
		Outputs: []string{"cross_range_m"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := AngularResolution(in["range_m"], in["beamwidth_deg"])
			return one("cross_range_m", v, err)
		},
	},
	{
		Name:    "resolution_cell_volume",
		Summary: "Pulse volume of one resolution cell.",
		Inputs: []FieldSpec{
			{Name: "range_m", Unit: "m", Constraint: ">= 0"},
			{Name: "az_beamwidth_deg", Unit: "deg", Constraint: "in (0, 180]"},
			{Name: "el_beamwidth_deg", Unit: "deg", Constraint: "in (0, 180]"},
			{Name: "pulse_width_s", Unit: "s", Constraint: ">= 0"},
		},
		Outputs: []string{"volume_m3"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := ResolutionCellVolume(in["range_m"], in["az_beamwidth_deg"], in["el_beamwidth_deg"], in["pulse_width_s"])
			return one("volume_m3", v, err)
		},
	},
	{
		Name:    "noise_figure_to_temperature",
		Summary: "Noise figure to equivalent noise temperature.",
		Inputs: []FieldSpec{
			{Name: "noise_figure_db", Unit: "dB", Constraint: ">= 0"},
		},
		Outputs: []string{"noise_temperature_k"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := NoiseFigureToTemperature(in["noise_figure_db"])
			return one("noise_temperature_k", v, err)
		},
	},
	{
		Name:    "noise_temperature_to_figure",
		Summary: "Equivalent noise temperature to noise figure.",
		Inputs: []FieldSpec{
			{Name: "noise_temperature_k", Unit: "K", Constraint: ">= 0"},
		},
		Outputs: []string{"noise_figure_db"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := NoiseTemperatureToFigure(in["noise_temperature_k"])
			return one("noise_figure_db", v, err)
		},
	},
	{
		Name:    "noise_floor",
		Summary: "Receiver noise floor, kT0 + 10 log10 B + NF.",
		Inputs: []FieldSpec{
			{Name: "bandwidth_hz", Unit: "Hz", Constraint: "> 0"},
			{Name: "noise_figure_db", Unit: "dB", Constraint: ">= 0"},
		},
		Outputs: []string{"noise_floor_dbm"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := NoiseFloor(in["bandwidth_hz"], in["noise_figure_db"])
			return one("noise_floor_dbm", v, err)
		},
	},
	{
		Name:    "sensitivity",
		Summary: "Minimum detectable signal.",
		Inputs: []FieldSpec{
			{Name: "bandwidth_hz", Unit: "Hz", Constraint: "> 0"},
			{Name: "noise_figure_db", Unit: "dB", Constraint: ">= 0"},
			{Name: "required_snr_db", Unit: "dB", Constraint: "any"},
		},
		Outputs: []string{"sensitivity_dbm"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := Sensitivity(in["bandwidth_hz"], in["noise_figure_db"], in["required_snr_db"])
			return one("sensitivity_dbm", v, err)
		},
	},
	{
		Name:    "enob_from_sinad",
		Summary: "Effective bits from measured SINAD.",
		Inputs: []FieldSpec{
			{Name: "sinad_db", Unit: "dB", Constraint: "any"},
		},
		Outputs: []string{"enob_bits"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			return map[string]float64{"enob_bits": ENOBFromSINAD(in["sinad_db"])}, nil
		},
	},
	{
		Name:    "sinad_from_enob",
		Summary: "Ideal-quantizer SINAD from effective bits.",
		Inputs: []FieldSpec{
			{Name: "enob_bits", Unit: "bits", Constraint: "any"},
		},
		Outputs: []string{"sinad_db"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			return map[string]float64{"sinad_db": SINADFromENOB(in["enob_bits"])}, nil
		},
	},
	{
		Name:    "rcs_region",
		Summary: "Scattering regime from target size and wavelength (0=Rayleigh, 1=Mie, 2=optical).",
		Inputs: []FieldSpec{
			{Name: "size_m", Unit: "m", Constraint: "> 0"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"region_code", "size_wavelength_ratio"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			r, err := ClassifyRCSRegion(in["size_m"], in["frequency_hz"])
			if err != nil {
				return nil, err
			}
			return map[string]float64{
				"region_code":           float64(r.Region),
				"size_wavelength_ratio": r.SizeRatio,
			}, nil
		},
	},
	{
		Name:    "rayleigh_sphere_rcs",
		Summary: "Rayleigh-region sphere RCS, π⁵d⁶/λ⁴.",
		Inputs: []FieldSpec{
			{Name: "diameter_m", Unit: "m", Constraint: "> 0"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"rcs_m2"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := RayleighSphereRCS(in["diameter_m"], in["frequency_hz"])
			return one("rcs_m2", v, err)
		},
	},
	{
		Name:    "optical_sphere_rcs",
		Summary: "Optical-region sphere RCS, πd²/4.",
		Inputs: []FieldSpec{
			{Name: "diameter_m", Unit: "m", Constraint: "> 0"},
		},
		Outputs: []string{"rcs_m2"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := OpticalSphereRCS(in["diameter_m"])
			return one("rcs_m2", v, err)
		},
	},
	{
		Name:    "chaff_cloud_rcs",
		Summary: "Aggregate chaff cloud RCS, N · 0.155 λ².",
		Inputs: []FieldSpec{
			{Name: "dipole_count", Unit: "n", Constraint: ">= 1"},
			{Name: "frequency_hz", Unit: "Hz", Constraint: "> 0"},
		},
		Outputs: []string{"rcs_m2"},
		eval: func(in map[string]float64) (map[string]float64, error) {
			v, err := ChaffCloudRCS(int(in["dipole_count"]), in["frequency_hz"])
			return one("rcs_m2", v, err)
		},
	},
}

var beamwidthGainFields = []FieldSpec{
	{Name: "az_beamwidth_deg", Unit: "deg", Constraint: "in (0, 180]"},
	{Name: "el_beamwidth_deg", Unit: "deg", Constraint: "in (0, 180]"},
	{Name: "efficiency", Unit: "ratio", Constraint: "in (0, 1]"},
}
