package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"target-price-engine/internal/model"
	"target-price-engine/internal/policy"
)

// ComputePrice runs one pricing calculation: weighted area, policy formula,
// optional floor adjustment, then rounding. It is a pure function of the
// request; identical inputs always produce identical results.
func ComputePrice(req *model.PriceRequest) (*model.PriceResult, error) {
	handler, ok := policy.Get(req.ProjectType)
	if !ok {
		return nil, &policy.InputError{
			Message: fmt.Sprintf("unknown project type: %q", req.ProjectType),
		}
	}

	if err := handler.Validate(req); err != nil {
		return nil, err
	}

	result := handler.Compute(WeightedArea(req), req)

	if req.HasFloorInputs() {
		adjustment := FloorAdjustment(req.BuildingFloors, req.ApartmentFloor)
		result.FloorAdjustmentPercent = model.Float(adjustment * 100)
		result.AdjustedFinalPrice = model.Float(result.FinalPrice * (1 + adjustment))
	}

	roundResult(&result)
	return &result, nil
}

// roundResult rounds the finished figures for the wire: money to whole
// currency units, areas and percentages to 2 decimals. Intermediate
// arithmetic above stays unrounded.
func roundResult(r *model.PriceResult) {
	r.WeightedArea = round2(r.WeightedArea)
	r.BaseTotalPrice = roundMoney(r.BaseTotalPrice)
	r.FinalPrice = roundMoney(r.FinalPrice)

	roundMoneyPtr(r.CurrentTotalPrice)
	roundMoneyPtr(r.DiscountedPrice)
	roundMoneyPtr(r.DiscountAmount)
	roundMoneyPtr(r.Savings)
	roundMoneyPtr(r.AdjustedFinalPrice)

	if r.FloorAdjustmentPercent != nil {
		*r.FloorAdjustmentPercent = round2(*r.FloorAdjustmentPercent)
	}
}

func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func roundMoneyPtr(v *float64) {
	if v != nil {
		*v = roundMoney(*v)
	}
}
