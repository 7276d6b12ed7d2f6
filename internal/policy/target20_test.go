package policy

import (
	"math"
	"testing"

	"target-price-engine/internal/model"
)

func TestTarget20StandardDiscount(t *testing.T) {
	h := &Target20Handler{}
	req := &model.PriceRequest{BasePricePerSqm: 10000}

	// baseTotal 1,000,000: 20% discount is 200,000, under the cap.
	result := h.Compute(100, req)
	if math.Abs(result.FinalPrice-800000) > 1e-6 {
		t.Fatalf("expected final price 800000, got %v", result.FinalPrice)
	}
	if result.IndexationApplied == nil || *result.IndexationApplied {
		t.Fatal("expected indexation_applied to be false")
	}
}

func TestTarget20CappedDiscount(t *testing.T) {
	h := &Target20Handler{}
	req := &model.PriceRequest{BasePricePerSqm: 20000}

	// baseTotal 2,000,000: 20% would be 400,000, capped at 300,000.
	result := h.Compute(100, req)
	if math.Abs(result.FinalPrice-1700000) > 1e-6 {
		t.Fatalf("expected final price 1700000, got %v", result.FinalPrice)
	}
	if result.DiscountAmount == nil || math.Abs(*result.DiscountAmount-300000) > 1e-6 {
		t.Fatalf("expected discount amount 300000, got %v", result.DiscountAmount)
	}
}

func TestTarget20IndexationOverride(t *testing.T) {
	h := &Target20Handler{}
	req := &model.PriceRequest{BasePricePerSqm: 20000, IndexationFactor: 0.15}

	// baseTotal 2,000,000, excess 300,000 > 200,000:
	// final = 2,000,000 * 1.15 - 500,000.
	result := h.Compute(100, req)
	if math.Abs(result.FinalPrice-1800000) > 1e-6 {
		t.Fatalf("expected final price 1800000, got %v", result.FinalPrice)
	}
	if result.IndexationApplied == nil || !*result.IndexationApplied {
		t.Fatal("expected indexation_applied to be true")
	}
}

func TestTarget20ExactlyOneBranchFires(t *testing.T) {
	h := &Target20Handler{}

	// Sweep base totals and factors across all three branch regions and
	// check the final price against exactly one branch formula each time.
	for _, pricePerSqm := range []float64{1000, 10000, 15000.5, 20000, 50000} {
		for _, factor := range []float64{0, 0.05, 0.103, 0.2, 1} {
			req := &model.PriceRequest{BasePricePerSqm: pricePerSqm, IndexationFactor: factor}
			result := h.Compute(100, req)

			baseTotal := pricePerSqm * 100
			var expected float64
			switch {
			case baseTotal*factor > 200000:
				expected = baseTotal*(1+factor) - 500000
			case baseTotal*0.2 > 300000:
				expected = baseTotal - 300000
			default:
				expected = baseTotal * 0.8
			}

			if math.Abs(result.FinalPrice-expected) > 1e-6 {
				t.Fatalf("price %v factor %v: expected %v, got %v",
					pricePerSqm, factor, expected, result.FinalPrice)
			}
		}
	}
}
