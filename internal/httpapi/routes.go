package httpapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes binds the calculator API onto a huma API instance.
func RegisterRoutes(api huma.API, h *CalculatorHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, h.Health)

	huma.Register(api, huma.Operation{
		OperationID: "listCalculators",
		Method:      http.MethodGet,
		Path:        "/api/calculators",
		Summary:     "List calculators",
		Description: "Enumerates every calculator with its input fields and valid ranges",
		Tags:        []string{"Calculators"},
	}, h.ListCalculators)

	huma.Register(api, huma.Operation{
		OperationID: "evaluateCalculator",
		Method:      http.MethodPost,
		Path:        "/api/calculators/{name}",
		Summary:     "Evaluate a calculator",
		Description: "Evaluates the named calculator against a flat numeric input record",
		Tags:        []string{"Calculators"},
	}, h.Evaluate)

	huma.Register(api, huma.Operation{
		OperationID: "sampleAntennaPattern",
		Method:      http.MethodPost,
		Path:        "/api/antenna/pattern",
		Summary:     "Sample an antenna pattern",
		Description: "Sweeps a closed-form aperture pattern over a theta × phi grid",
		Tags:        []string{"Antenna"},
	}, h.SamplePattern)
}
