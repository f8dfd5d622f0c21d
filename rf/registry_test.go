package rf

import (
	"errors"
	"math"
	"testing"
)

func TestRegistry_EntriesAreWellFormed(t *testing.T) {
	entries := Registry()
	if len(entries) == 0 {
		t.Fatal("empty registry")
	}
	seen := map[string]bool{}
	for _, c := range entries {
		if c.Name == "" {
			t.Error("calculator with empty name")
		}
		if seen[c.Name] {
			t.Errorf("duplicate calculator name %q", c.Name)
		}
		seen[c.Name] = true
		if c.eval == nil {
			t.Errorf("%s: nil eval", c.Name)
		}
		if len(c.Outputs) == 0 {
			t.Errorf("%s: no declared outputs", c.Name)
		}
		for _, f := range c.Inputs {
			if f.Name == "" || f.Constraint == "" {
				t.Errorf("%s: input with empty name or constraint: %+v", c.Name, f)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("free_space_path_loss")
	if !ok {
		t.Fatal("free_space_path_loss not registered")
	}
	if c.Name != "free_space_path_loss" {
		t.Errorf("lookup returned %q", c.Name)
	}
	if _, ok := Lookup("no_such_calculator"); ok {
		t.Error("lookup of unknown name succeeded")
	}
}

func TestEvaluate_ParityWithTypedFunction(t *testing.T) {
	c, ok := Lookup("free_space_path_loss")
	if !ok {
		t.Fatal("free_space_path_loss not registered")
	}
	out, err := c.Evaluate(map[string]float64{
		"distance_m":   10000,
		"frequency_hz": 10e9,
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	direct, err := FreeSpacePathLoss(10000, 10e9)
	if err != nil {
		t.Fatalf("direct: %v", err)
	}
	if math.Abs(out["path_loss_db"]-direct) > 1e-12 {
		t.Errorf("registry %.6f != typed %.6f", out["path_loss_db"], direct)
	}
}

func TestEvaluate_MissingFieldIsConfigError(t *testing.T) {
	c, ok := Lookup("free_space_path_loss")
	if !ok {
		t.Fatal("free_space_path_loss not registered")
	}
	_, err := c.Evaluate(map[string]float64{"distance_m": 10000})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("got %v, want ErrMissingField", err)
	}
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if ce.Field != "frequency_hz" {
		t.Errorf("ConfigError names %q, want frequency_hz", ce.Field)
	}
}

func TestEvaluate_DomainErrorPropagatesUnmodified(t *testing.T) {
	c, ok := Lookup("range_resolution_chirp")
	if !ok {
		t.Fatal("range_resolution_chirp not registered")
	}
	_, err := c.Evaluate(map[string]float64{"bandwidth_hz": 0})
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("got %v, want ErrDomain", err)
	}
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DomainError, got %T", err)
	}
	if de.Field != "bandwidth_hz" {
		t.Errorf("DomainError names %q, want bandwidth_hz", de.Field)
	}
}

func TestEvaluate_EverySmokeInputSucceeds(t *testing.T) {
	// One known-valid input per calculator; every entry must evaluate
	// cleanly and fill every declared output.
	smoke := map[string]map[string]float64{
		"free_space_path_loss":           {"distance_m": 1e4, "frequency_hz": 10e9},
		"received_power":                 {"tx_power_w": 10, "tx_gain_dbi": 30, "rx_gain_dbi": 3, "distance_m": 1e4, "frequency_hz": 10e9, "system_loss_db": 2},
		"radar_received_power":           {"tx_power_w": 1e5, "tx_gain_dbi": 35, "rx_gain_dbi": 35, "frequency_hz": 3e9, "target_rcs_m2": 1, "range_m": 5e4, "system_loss_db": 3},
		"snr_margin":                     {"received_power_dbm": -100, "noise_floor_dbm": -110, "required_snr_db": 5},
		"fresnel_radius":                 {"distance_m": 3e4, "frequency_hz": 6e9, "fraction": 0.5, "zone": 1},
		"earth_bulge":                    {"distance_m": 2e4, "fraction": 0.5, "k_factor": 0},
		"eirp":                           {"tx_power_w": 10, "tx_gain_dbi": 30},
		"radar_horizon":                  {"antenna_height_m": 100, "target_height_m": 1000, "k_factor": 0},
		"target_height":                  {"range_m": 1e5, "elevation_deg": 1, "k_factor": 0},
		"js_ratio":                       {"jammer_erp_w": 1e3, "radar_erp_w": 1e6, "mainlobe_gain_dbi": 35, "sidelobe_gain_dbi": 5, "target_range_m": 5e4, "jammer_range_m": 1e5, "frequency_hz": 10e9},
		"burn_through_range":             {"tx_power_w": 1e5, "tx_gain_dbi": 35, "jammer_power_w": 100, "jammer_gain_dbi": 10, "frequency_hz": 10e9, "target_rcs_m2": 5, "required_sj_db": 10},
		"gain_from_beamwidth_rect":       {"az_beamwidth_deg": 3, "el_beamwidth_deg": 3, "efficiency": 0.6},
		"gain_from_beamwidth_elliptical": {"az_beamwidth_deg": 3, "el_beamwidth_deg": 3, "efficiency": 0.6},
		"near_far_field_boundary":        {"aperture_m": 1, "frequency_hz": 10e9},
		"beamwidth_from_aperture":        {"aperture_m": 1, "frequency_hz": 10e9},
		"range_resolution_pulse":         {"pulse_width_s": 1e-6},
		"range_resolution_chirp":         {"bandwidth_hz": 1e6},
		"unambiguous_range":              {"prf_hz": 1000, "pulse_width_s": 1e-6},
		"unambiguous_velocity":           {"prf_hz": 1e4, "frequency_hz": 10e9},
		"doppler_shift":                  {"radial_velocity_ms": 300, "frequency_hz": 10e9},
		"dwell_time":                     {"beamwidth_deg": 2, "scan_rate_deg_s": 36, "prf_hz": 1000},
		"duty_cycle":                     {"pulse_width_s": 1e-6, "pri_s": 1e-3},
		"blind_range":                    {"pulse_width_s": 1e-6, "dead_time_s": 0, "recovery_time_s": 0},
		"angular_resolution":             {"range_m": 1e5, "beamwidth_deg": 1},
		"resolution_cell_volume":         {"range_m": 1e4, "az_beamwidth_deg": 2, "el_beamwidth_deg": 2, "pulse_width_s": 1e-6},
		"noise_figure_to_temperature":    {"noise_figure_db": 3},
		"noise_temperature_to_figure":    {"noise_temperature_k": 290},
		"noise_floor":                    {"bandwidth_hz": 1e6, "noise_figure_db": 5},
		"sensitivity":                    {"bandwidth_hz": 1e6, "noise_figure_db": 5, "required_snr_db": 13},
		"enob_from_sinad":                {"sinad_db": 74},
		"sinad_from_enob":                {"enob_bits": 12},
		"rcs_region":                     {"size_m": 0.1, "frequency_hz": 3e9},
		"rayleigh_sphere_rcs":            {"diameter_m": 0.01, "frequency_hz": 1e9},
		"optical_sphere_rcs":             {"diameter_m": 1},
		"chaff_cloud_rcs":                {"dipole_count": 1e6, "frequency_hz": 10e9},
	}

	for _, c := range Registry() {
		in, ok := smoke[c.Name]
		if !ok {
			t.Errorf("no smoke input for calculator %q", c.Name)
			continue
		}
		out, err := c.Evaluate(in)
		if err != nil {
			t.Errorf("%s: %v", c.Name, err)
			continue
		}
		for _, name := range c.Outputs {
			if _, ok := out[name]; !ok {
				t.Errorf("%s: declared output %q missing from result", c.Name, name)
			}
		}
	}
}
