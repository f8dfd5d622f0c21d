package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/radar-workbench/internal/logging"
	"github.com/signalsfoundry/radar-workbench/internal/observability"
	"github.com/signalsfoundry/radar-workbench/rf"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// CalculatorHandler serves the calculator registry over HTTP. All state is
// read-only after construction; the rf package itself is stateless, so the
// handler is safe for concurrent use.
type CalculatorHandler struct {
	log        logging.Logger
	metrics    *observability.Collector
	tracer     trace.Tracer
	maxSamples int
}

// NewCalculatorHandler creates a handler. metrics may be nil; maxSamples
// caps the pattern sweep size per request (0 means unlimited).
func NewCalculatorHandler(log logging.Logger, metrics *observability.Collector, maxSamples int) *CalculatorHandler {
	if log == nil {
		log = logging.Noop()
	}
	if metrics != nil {
		metrics.SetCalculatorCount(len(rf.Registry()))
	}
	return &CalculatorHandler{
		log:        log,
		metrics:    metrics,
		tracer:     otel.Tracer("httpapi"),
		maxSamples: maxSamples,
	}
}

// Health reports liveness.
func (h *CalculatorHandler) Health(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
	resp := &HealthResponse{}
	resp.Body.Status = "healthy"
	resp.Body.Version = Version
	resp.Body.Time = time.Now()
	return resp, nil
}

// ListCalculators returns every registry entry with its declared input
// fields and valid ranges.
func (h *CalculatorHandler) ListCalculators(ctx context.Context, _ *struct{}) (*ListCalculatorsResponse, error) {
	resp := &ListCalculatorsResponse{}
	resp.Body.Calculators = rf.Registry()
	return resp, nil
}

// Evaluate dispatches one calculator by name.
func (h *CalculatorHandler) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluateResponse, error) {
	ctx, span := h.tracer.Start(ctx, "rf.Evaluate",
		trace.WithAttributes(attribute.String("rf.calculator", req.Name)))
	defer span.End()

	calc, ok := rf.Lookup(req.Name)
	if !ok {
		h.log.Warn(ctx, "unknown calculator requested", logging.String("calculator", req.Name))
		return nil, huma.Error404NotFound("unknown calculator " + req.Name)
	}

	start := time.Now()
	outputs, err := calc.Evaluate(req.Body.Inputs)
	elapsed := time.Since(start)
	h.metrics.ObserveEvaluation(calc.Name, err, elapsed)

	if err != nil {
		span.RecordError(err)
		h.log.Debug(ctx, "evaluation rejected",
			logging.String("calculator", calc.Name),
			logging.Err(err),
		)
		switch {
		case errors.Is(err, rf.ErrMissingField):
			return nil, huma.Error400BadRequest(err.Error(), err)
		case errors.Is(err, rf.ErrDomain):
			return nil, huma.Error422UnprocessableEntity(err.Error(), err)
		default:
			return nil, huma.Error500InternalServerError("evaluation failed", err)
		}
	}

	h.log.Debug(ctx, "evaluation ok",
		logging.String("calculator", calc.Name),
		logging.Float64("elapsed_us", float64(elapsed.Microseconds())),
	)

	resp := &EvaluateResponse{}
	resp.Body.Calculator = calc.Name
	resp.Body.Outputs = outputs
	return resp, nil
}

// SamplePattern runs a full antenna pattern sweep and returns the samples.
func (h *CalculatorHandler) SamplePattern(ctx context.Context, req *PatternRequest) (*PatternResponse, error) {
	ctx, span := h.tracer.Start(ctx, "rf.SamplePattern",
		trace.WithAttributes(attribute.String("rf.shape", req.Body.Shape)))
	defer span.End()

	shape, err := parseShape(req.Body.Shape)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error(), err)
	}

	// Each axis is bounded before multiplying so the product cannot
	// overflow int and slip past the cap.
	if h.maxSamples > 0 &&
		(req.Body.ThetaSamples > h.maxSamples ||
			req.Body.PhiSamples > h.maxSamples ||
			req.Body.ThetaSamples*req.Body.PhiSamples > h.maxSamples) {
		h.log.Warn(ctx, "pattern sweep over sample cap",
			logging.Int("theta_samples", req.Body.ThetaSamples),
			logging.Int("phi_samples", req.Body.PhiSamples),
			logging.Int("max", h.maxSamples),
		)
		return nil, huma.Error422UnprocessableEntity("pattern sweep exceeds the configured sample cap")
	}

	sampler, err := rf.NewPatternSampler(rf.PatternConfig{
		Shape:           shape,
		ApertureM:       req.Body.ApertureM,
		FrequencyHz:     req.Body.FrequencyHz,
		ElementCount:    req.Body.ElementCount,
		ElementSpacingM: req.Body.ElementSpacingM,
		ThetaSamples:    req.Body.ThetaSamples,
		PhiSamples:      req.Body.PhiSamples,
	})
	h.metrics.ObserveEvaluation("antenna_pattern", err, 0)
	if err != nil {
		span.RecordError(err)
		return nil, huma.Error422UnprocessableEntity(err.Error(), err)
	}

	samples := make([]PatternSample, 0, sampler.Len())
	for {
		s, ok := sampler.Next()
		if !ok {
			break
		}
		samples = append(samples, PatternSample{
			ThetaRad: s.ThetaRad,
			PhiRad:   s.PhiRad,
			GaindB:   s.GaindB,
		})
	}

	resp := &PatternResponse{}
	resp.Body.Shape = req.Body.Shape
	resp.Body.Samples = samples
	return resp, nil
}

func parseShape(raw string) (rf.ApertureShape, error) {
	switch raw {
	case "rectangular":
		return rf.ShapeRectangular, nil
	case "circular":
		return rf.ShapeCircular, nil
	case "linear_array":
		return rf.ShapeLinearArray, nil
	default:
		return 0, errors.New("unknown aperture shape " + raw)
	}
}
