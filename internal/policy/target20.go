package policy

import "target-price-engine/internal/model"

// Target 2.0 policy constants. These come straight from the ministry's
// reference table; the branch order is part of the policy and must not be
// reordered or algebraically simplified.
const (
	target20DiscountRate    = 0.2
	target20DiscountCap     = 300000
	target20ExcessThreshold = 200000
	target20ExcessDeduction = 500000
)

// Target20Handler caps the discount at the lesser of 20% or a fixed 300,000,
// unless the indexation-adjusted excess pushes the price past a threshold, in
// which case an indexation override formula applies instead.
type Target20Handler struct{}

func (h *Target20Handler) Validate(req *model.PriceRequest) error {
	return nil
}

func (h *Target20Handler) Compute(weightedArea float64, req *model.PriceRequest) model.PriceResult {
	baseTotal := req.BasePricePerSqm * weightedArea
	excess := baseTotal * req.IndexationFactor

	var finalPrice float64
	switch {
	case excess > target20ExcessThreshold:
		finalPrice = baseTotal*(1+req.IndexationFactor) - target20ExcessDeduction
	case baseTotal*target20DiscountRate > target20DiscountCap:
		finalPrice = baseTotal - target20DiscountCap
	default:
		finalPrice = baseTotal * (1 - target20DiscountRate)
	}

	return model.PriceResult{
		ProjectType:       model.ProjectTarget20,
		WeightedArea:      weightedArea,
		BaseTotalPrice:    baseTotal,
		FinalPrice:        finalPrice,
		DiscountAmount:    model.Float(baseTotal - finalPrice),
		IndexationApplied: model.Bool(req.IndexationFactor > 0),
	}
}
