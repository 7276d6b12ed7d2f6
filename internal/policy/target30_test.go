package policy

import (
	"errors"
	"math"
	"testing"

	"target-price-engine/internal/model"
)

func TestTarget30RequiresCurrentPrice(t *testing.T) {
	h := &Target30Handler{}

	for _, current := range []float64{0, -1} {
		err := h.Validate(&model.PriceRequest{BasePricePerSqm: 12000, CurrentPricePerSqm: current})
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("current price %v: expected InputError, got %v", current, err)
		}
	}

	if err := h.Validate(&model.PriceRequest{BasePricePerSqm: 12000, CurrentPricePerSqm: 15000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTarget30PercentageDiscountWins(t *testing.T) {
	h := &Target30Handler{}
	req := &model.PriceRequest{BasePricePerSqm: 10000, CurrentPricePerSqm: 11000}

	// baseTotal 1,000,000, currentTotal 1,100,000, discounted 750,000.
	// Difference 350,000 is under the 600,000 limit, so the 25% floor wins.
	result := h.Compute(100, req)
	if math.Abs(result.FinalPrice-750000) > 1e-6 {
		t.Fatalf("expected final price 750000, got %v", result.FinalPrice)
	}
	if result.MaxDifferenceExceeded == nil || *result.MaxDifferenceExceeded {
		t.Fatal("expected max_difference_exceeded to be false")
	}
}

func TestTarget30AbsoluteCapWins(t *testing.T) {
	h := &Target30Handler{}
	req := &model.PriceRequest{BasePricePerSqm: 14000, CurrentPricePerSqm: 16000}

	// baseTotal 1,400,000, currentTotal 1,600,000, discounted 1,050,000.
	// Difference 550,000 exceeds a 500,000 limit: final = 1,600,000 - 500,000.
	req.DiscountLimit = 500000
	result := h.Compute(100, req)
	if math.Abs(result.FinalPrice-1100000) > 1e-6 {
		t.Fatalf("expected final price 1100000, got %v", result.FinalPrice)
	}
	if result.MaxDifferenceExceeded == nil || !*result.MaxDifferenceExceeded {
		t.Fatal("expected max_difference_exceeded to be true")
	}
}

func TestTarget30ClampedToBaseTotal(t *testing.T) {
	h := &Target30Handler{}
	req := &model.PriceRequest{BasePricePerSqm: 10000, CurrentPricePerSqm: 20000}

	// currentTotal minus the limit would exceed the base total; the clamp
	// keeps the buyer from paying more than the undiscounted base price.
	result := h.Compute(100, req)
	if math.Abs(result.FinalPrice-1000000) > 1e-6 {
		t.Fatalf("expected final price clamped to 1000000, got %v", result.FinalPrice)
	}
}

func TestTarget30NeverExceedsBaseTotal(t *testing.T) {
	h := &Target30Handler{}

	for _, current := range []float64{5000, 10000, 15000, 25000, 60000} {
		req := &model.PriceRequest{BasePricePerSqm: 12000, CurrentPricePerSqm: current}
		result := h.Compute(130, req)
		if result.FinalPrice > result.BaseTotalPrice+1e-6 {
			t.Fatalf("current price %v: final %v exceeds base total %v",
				current, result.FinalPrice, result.BaseTotalPrice)
		}
	}
}

func TestTarget30DefaultDiscountLimit(t *testing.T) {
	h := &Target30Handler{}

	// Omitted limit defaults to 600,000; an explicit limit is used as sent.
	req := &model.PriceRequest{BasePricePerSqm: 13808, CurrentPricePerSqm: 18201}
	result := h.Compute(130, req)
	if math.Abs(result.FinalPrice-1766130) > 1e-6 {
		t.Fatalf("expected final price 1766130 with default limit, got %v", result.FinalPrice)
	}
}
