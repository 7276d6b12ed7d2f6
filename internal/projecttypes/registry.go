// Package projecttypes holds the static descriptions of the three government
// pricing policies served by the metadata endpoint. The policies are fixed by
// regulation; there is no upstream registry to refresh them from.
package projecttypes

import "target-price-engine/internal/model"

var infos = map[string]model.ProjectTypeInfo{
	model.ProjectTarget20: {
		ID:          model.ProjectTarget20,
		Label:       "Target Price 2.0",
		Description: "Original target-price track priced off the tender base price.",
		DiscountRule: "20% discount capped at 300,000, unless the indexation-adjusted " +
			"excess passes 200,000, in which case the indexation override formula applies.",
		RequiresCurrentPrice: false,
	},
	model.ProjectTarget30: {
		ID:          model.ProjectTarget30,
		Label:       "Target Price 3.0",
		Description: "Current track comparing the tender base price against the appraised current price.",
		DiscountRule: "The better of a 25% discount off the base total or the current total " +
			"minus the absolute discount limit (default 600,000), never above the base total.",
		RequiresCurrentPrice: true,
	},
	model.ProjectBuyerReduced: {
		ID:                   model.ProjectBuyerReduced,
		Label:                "Reduced Buyer Price",
		Description:          "Fixed reduced price per square meter set in the tender; no further discount.",
		DiscountRule:         "None. The final price is the reduced price per square meter times the weighted area.",
		RequiresCurrentPrice: false,
	},
}

var order = []string{
	model.ProjectTarget20,
	model.ProjectTarget30,
	model.ProjectBuyerReduced,
}

func Get(id string) (model.ProjectTypeInfo, bool) {
	info, ok := infos[id]
	return info, ok
}

// List returns all project types in a stable order.
func List() []model.ProjectTypeInfo {
	out := make([]model.ProjectTypeInfo, 0, len(order))
	for _, id := range order {
		out = append(out, infos[id])
	}
	return out
}
