package policy

import "target-price-engine/internal/model"

var registry = map[string]Handler{
	model.ProjectTarget20:     &Target20Handler{},
	model.ProjectTarget30:     &Target30Handler{},
	model.ProjectBuyerReduced: &BuyerReducedHandler{},
}

func Get(projectType string) (Handler, bool) {
	h, ok := registry[projectType]
	return h, ok
}
