package engine

// Buildings this tall or shorter get no floor adjustment.
const floorAdjustmentMinFloors = 10

const perFloorRate = 0.005

// FloorAdjustment returns the price adjustment fraction for an apartment's
// position in the building: ±0.5% per floor of distance from the building's
// middle, negative below it. Even and odd floor counts use slightly
// different center references to avoid a half-floor ambiguity.
func FloorAdjustment(buildingFloors, apartmentFloor int) float64 {
	if buildingFloors <= floorAdjustmentMinFloors {
		return 0
	}

	middle := float64(buildingFloors) / 2
	floor := float64(apartmentFloor)

	switch {
	case floor <= middle:
		return (floor - middle) * perFloorRate
	case buildingFloors%2 == 0:
		return (floor - (1 + middle)) * perFloorRate
	default:
		return (floor - float64(buildingFloors+1)/2) * perFloorRate
	}
}
