package policy

import "target-price-engine/internal/model"

// BuyerReducedHandler has no discount logic: the price is the weighted area
// times the (already reduced) price per square meter.
type BuyerReducedHandler struct{}

func (h *BuyerReducedHandler) Validate(req *model.PriceRequest) error {
	return nil
}

func (h *BuyerReducedHandler) Compute(weightedArea float64, req *model.PriceRequest) model.PriceResult {
	baseTotal := req.BasePricePerSqm * weightedArea

	return model.PriceResult{
		ProjectType:    model.ProjectBuyerReduced,
		WeightedArea:   weightedArea,
		BaseTotalPrice: baseTotal,
		FinalPrice:     baseTotal,
	}
}
