// Package engine is the single entry point collaborators call: it
// normalises a listing request, resolves its fee model and solves it.
package engine

import (
	"sync"

	"go.uber.org/zap"

	"listing-price/core/fees"
	"listing-price/core/solver"
	"listing-price/core/types"
	"listing-price/internal/logging"
)

// Engine computes listings against one catalog. It holds no per-request
// state and is safe for concurrent use.
type Engine struct {
	catalog *fees.Catalog
	logger  *zap.Logger
}

// New creates an engine. A nil catalog means the built-in schedule and a
// nil logger means the global one.
func New(catalog *fees.Catalog, logger *zap.Logger) *Engine {
	if catalog == nil {
		catalog = fees.Default()
	}
	if logger == nil {
		logger = logging.Named("engine")
	}
	return &Engine{catalog: catalog, logger: logger}
}

// Catalog returns the fee catalog the engine resolves against.
func (e *Engine) Catalog() *fees.Catalog {
	return e.catalog
}

// ComputeListing clamps the request's amounts, looks up its fee model and
// solves for the listing price.
func (e *Engine) ComputeListing(req types.ListingRequest) (types.Breakdown, error) {
	b, _, err := e.compute(req)
	return b, err
}

func (e *Engine) compute(req types.ListingRequest) (types.Breakdown, solver.Trace, error) {
	req = req.Clamped()

	model, err := e.catalog.Lookup(req.Platform, req.Category)
	if err != nil {
		e.logger.Debug("fee model lookup failed",
			zap.String("platform", req.Platform),
			zap.String("category", req.Category),
			zap.Error(err))
		return types.Breakdown{}, solver.Trace{}, err
	}

	b, trace, err := solver.SolveTrace(req, model)
	if err != nil {
		e.logger.Warn("listing solve failed",
			zap.String("platform", req.Platform),
			zap.String("model", model.String()),
			zap.Error(err))
		return types.Breakdown{}, trace, err
	}

	fields := []zap.Field{
		zap.String("platform", req.Platform),
		zap.String("category", req.Category),
		zap.Any("path", trace.Path),
		zap.Int("iterations", trace.Iterations),
		zap.Float64("listing_price", b.ListingPrice),
		zap.Float64("total_fees", b.TotalFees),
	}
	if trace.Branch != "" {
		fields = append(fields, zap.String("branch", trace.Branch))
	}
	if !trace.Converged {
		e.logger.Warn("tiered solve hit the iteration limit; returning best estimate",
			append(fields, zap.Float64("net_profit", b.NetProfit), zap.Float64("desired_profit", req.DesiredProfit))...)
	} else {
		e.logger.Debug("solved listing", fields...)
	}

	return b, trace, nil
}

// ComputeListing solves req against the built-in schedule.
func ComputeListing(req types.ListingRequest) (types.Breakdown, error) {
	return defaultEngine().ComputeListing(req)
}

var (
	defaultOnce sync.Once
	defaultEng  *Engine
)

func defaultEngine() *Engine {
	defaultOnce.Do(func() {
		defaultEng = New(fees.Default(), nil)
	})
	return defaultEng
}
