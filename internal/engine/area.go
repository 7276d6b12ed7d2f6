package engine

import "target-price-engine/internal/model"

// Area weighting coefficients per the policy document.
const (
	apartmentCoefficient = 1.0
	gardenCoefficient    = 0.4
	storageCoefficient   = 0.4
	parkingCoefficient   = 2.0
)

type balconyTier struct {
	capacity    float64
	coefficient float64
}

// Balcony credit diminishes with size: the first 30 m² count at 30%, the next
// 30 at 20%, the next 60 at 10%, anything beyond 120 m² counts for nothing.
// Ordered; adding a tier must not require touching the reducer below.
var balconyTiers = []balconyTier{
	{capacity: 30, coefficient: 0.3},
	{capacity: 30, coefficient: 0.2},
	{capacity: 60, coefficient: 0.1},
}

// WeightedBalconyArea consumes balcony area tier by tier, accumulating the
// credited area. Area left over once the tiers are exhausted contributes 0.
func WeightedBalconyArea(balconyArea float64) float64 {
	remaining := balconyArea
	var weighted float64
	for _, tier := range balconyTiers {
		if remaining <= 0 {
			break
		}
		area := remaining
		if area > tier.capacity {
			area = tier.capacity
		}
		weighted += area * tier.coefficient
		remaining -= area
	}
	return weighted
}

// WeightedArea collapses the heterogeneous area and count inputs into the
// single comparable figure every policy formula prices against.
func WeightedArea(req *model.PriceRequest) float64 {
	return req.ApartmentArea*apartmentCoefficient +
		WeightedBalconyArea(req.BalconyArea) +
		req.GardenArea*gardenCoefficient +
		req.StorageArea*storageCoefficient +
		float64(req.ParkingSpots)*parkingCoefficient
}
