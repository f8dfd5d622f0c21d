package httpapi

import (
	"time"

	"github.com/signalsfoundry/radar-workbench/rf"
)

// HealthResponse reports service liveness.
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status"`
		Version string    `json:"version"`
		Time    time.Time `json:"time"`
	}
}

// ListCalculatorsResponse enumerates the dispatch registry.
type ListCalculatorsResponse struct {
	Body struct {
		Calculators []rf.Calculator `json:"calculators"`
	}
}

// EvaluateRequest invokes one calculator by name with a flat input record.
type EvaluateRequest struct {
	Name string `path:"name" doc:"Registered calculator name"`
	Body struct {
		Inputs map[string]float64 `json:"inputs" doc:"Input fields in the units declared by the calculator"`
	}
}

// EvaluateResponse carries the calculator's output record.
type EvaluateResponse struct {
	Body struct {
		Calculator string             `json:"calculator"`
		Outputs    map[string]float64 `json:"outputs"`
	}
}

// PatternRequest parameterises an antenna pattern sweep.
type PatternRequest struct {
	Body struct {
		Shape           string  `json:"shape" enum:"rectangular,circular,linear_array" doc:"Aperture approximation"`
		ApertureM       float64 `json:"aperture_m"`
		FrequencyHz     float64 `json:"frequency_hz"`
		ElementCount    int     `json:"element_count,omitempty" doc:"Linear array only"`
		ElementSpacingM float64 `json:"element_spacing_m,omitempty" doc:"Linear array only; 0 selects half-wavelength"`
		ThetaSamples    int     `json:"theta_samples"`
		PhiSamples      int     `json:"phi_samples"`
	}
}

// PatternResponse carries the full sampled gain surface.
type PatternResponse struct {
	Body struct {
		Shape   string          `json:"shape"`
		Samples []PatternSample `json:"samples"`
	}
}

// PatternSample is one (theta, phi, gain) point, gain normalised to 0 dB at
// boresight.
type PatternSample struct {
	ThetaRad float64 `json:"theta_rad"`
	PhiRad   float64 `json:"phi_rad"`
	GaindB   float64 `json:"gain_db"`
}
