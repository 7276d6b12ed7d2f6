package model

// Project types select the pricing policy applied to a sale.
const (
	ProjectTarget20     = "target_2_0"
	ProjectTarget30     = "target_3_0"
	ProjectBuyerReduced = "buyer_reduced"
)

// DefaultDiscountLimit is the target_3_0 absolute discount cap used when the
// request omits discount_limit.
const DefaultDiscountLimit = 600000

type PriceRequest struct {
	ProjectType string `json:"project_type"`

	ApartmentArea float64 `json:"apartment_area"`
	BalconyArea   float64 `json:"balcony_area"`
	GardenArea    float64 `json:"garden_area"`
	StorageArea   float64 `json:"storage_area"`
	ParkingSpots  int     `json:"parking_spots"`

	BasePricePerSqm    float64 `json:"base_price_per_sqm"`
	CurrentPricePerSqm float64 `json:"current_price_per_sqm,omitempty"`
	IndexationFactor   float64 `json:"indexation_factor,omitempty"`
	DiscountLimit      float64 `json:"discount_limit,omitempty"`

	// Optional; present together or absent together. Both > 0 means the
	// floor adjustment is applied to the final price.
	BuildingFloors int `json:"building_floors,omitempty"`
	ApartmentFloor int `json:"apartment_floor,omitempty"`
}

// EffectiveDiscountLimit returns the request's discount cap, defaulted.
func (r *PriceRequest) EffectiveDiscountLimit() float64 {
	if r.DiscountLimit == 0 {
		return DefaultDiscountLimit
	}
	return r.DiscountLimit
}

// HasFloorInputs reports whether the floor adjustment inputs were supplied.
func (r *PriceRequest) HasFloorInputs() bool {
	return r.BuildingFloors > 0 && r.ApartmentFloor > 0
}
