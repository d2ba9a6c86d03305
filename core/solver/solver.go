// Package solver finds the listing price that leaves the seller a desired
// net profit once the platform's fees, which depend on that same price,
// are taken out.
package solver

import (
	"fmt"
	"math"

	"listing-price/core/fees"
	"listing-price/core/types"
	"listing-price/internal/errors"
)

const (
	// MaxIterations bounds the tiered fixed-point loop.
	MaxIterations = 50

	// Tolerance is how close net profit must get to the desired profit.
	Tolerance = 0.01
)

// Trace records how a solve went.
type Trace struct {
	// Path lists the model kinds visited, outermost first
	Path []fees.Kind

	// Branch is "if_true" or "if_false" when a conditional was resolved
	Branch string

	// Iterations is the number of fixed-point passes (0 for closed form)
	Iterations int

	// Converged is false only when a tiered solve ran out of iterations
	Converged bool
}

// Solve returns the breakdown for req under model.
func Solve(req types.ListingRequest, model fees.FeeModel) (types.Breakdown, error) {
	b, _, err := SolveTrace(req, model)
	return b, err
}

// SolveTrace is Solve plus a record of the path taken.
func SolveTrace(req types.ListingRequest, model fees.FeeModel) (types.Breakdown, Trace, error) {
	var trace Trace
	price, totalFees, err := solve(req, model, &trace)
	if err != nil {
		return types.Breakdown{}, trace, err
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return types.Breakdown{}, trace, errors.NegativeResult(price)
	}
	return types.NewBreakdown(price, totalFees, req.ItemCost, req.SellerPaidShipping), trace, nil
}

func solve(req types.ListingRequest, model fees.FeeModel, trace *Trace) (float64, float64, error) {
	switch m := model.(type) {
	case fees.Flat:
		trace.Path = append(trace.Path, fees.KindFlat)
		trace.Converged = true
		price, totalFees := solveFlat(req, m)
		return price, totalFees, nil

	case fees.Tiered:
		trace.Path = append(trace.Path, fees.KindTiered)
		price, totalFees, iterations, converged := solveTiered(req, m)
		trace.Iterations = iterations
		trace.Converged = converged
		return price, totalFees, nil

	case fees.Conditional:
		trace.Path = append(trace.Path, fees.KindConditional)
		// The threshold sees the pre-fee estimate once and is not revisited
		// after solving.
		if m.Test(req.Estimate()) {
			trace.Branch = "if_true"
			return solve(req, m.IfTrue, trace)
		}
		trace.Branch = "if_false"
		return solve(req, m.IfFalse, trace)

	default:
		return 0, 0, errors.Internal(fmt.Sprintf("unsupported fee model %T", model), nil)
	}
}

// solveFlat inverts price - (price*rate + fixed) = cost + profit + shipping.
func solveFlat(req types.ListingRequest, m fees.Flat) (float64, float64) {
	price := (req.ItemCost + req.DesiredProfit + req.SellerPaidShipping + m.FixedFee) / (1 - m.Rate)
	return price, m.Fee(price)
}

// solveTiered walks the price toward the desired profit, adding the
// shortfall back each pass. Running out of passes is not an error: the
// last price is returned with the fees charged at that price.
func solveTiered(req types.ListingRequest, m fees.Tiered) (price, totalFees float64, iterations int, converged bool) {
	price = req.Estimate()

	for iterations < MaxIterations {
		iterations++
		totalFees = m.Fee(price)
		netProfit := price - totalFees - req.ItemCost - req.SellerPaidShipping
		diff := req.DesiredProfit - netProfit
		if math.Abs(diff) < Tolerance {
			return price, totalFees, iterations, true
		}
		price += diff
	}

	return price, m.Fee(price), iterations, false
}
