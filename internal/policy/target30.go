package policy

import "target-price-engine/internal/model"

const target30DiscountRate = 0.25

// Target30Handler gives the buyer the better of a 25% discount off the base
// total or a fixed absolute discount off the current-price total, clamped so
// the final price never exceeds the undiscounted base total.
type Target30Handler struct{}

func (h *Target30Handler) Validate(req *model.PriceRequest) error {
	if req.CurrentPricePerSqm <= 0 {
		return &InputError{Message: "current_price_per_sqm is required for target_3_0 projects"}
	}
	return nil
}

func (h *Target30Handler) Compute(weightedArea float64, req *model.PriceRequest) model.PriceResult {
	baseTotal := req.BasePricePerSqm * weightedArea
	currentTotal := req.CurrentPricePerSqm * weightedArea
	limit := req.EffectiveDiscountLimit()

	discounted := baseTotal * (1 - target30DiscountRate)
	priceDifference := currentTotal - discounted

	// Whichever floor is higher wins; the cap branch fires only when the
	// gap between current and discounted exceeds the limit.
	finalPrice := discounted
	limitExceeded := priceDifference > limit
	if limitExceeded {
		finalPrice = currentTotal - limit
	}
	if finalPrice > baseTotal {
		finalPrice = baseTotal
	}

	return model.PriceResult{
		ProjectType:           model.ProjectTarget30,
		WeightedArea:          weightedArea,
		BaseTotalPrice:        baseTotal,
		FinalPrice:            finalPrice,
		CurrentTotalPrice:     model.Float(currentTotal),
		DiscountedPrice:       model.Float(discounted),
		DiscountAmount:        model.Float(baseTotal - finalPrice),
		Savings:               model.Float(currentTotal - finalPrice),
		MaxDifferenceExceeded: model.Bool(limitExceeded),
	}
}
