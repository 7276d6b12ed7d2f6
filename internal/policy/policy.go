package policy

import "target-price-engine/internal/model"

// Handler defines the contract for all pricing policy implementations.
// Validate checks the inputs the policy itself depends on; Compute fills an
// unrounded result. Rounding is the engine's job, never the policy's.
type Handler interface {
	Validate(req *model.PriceRequest) error
	Compute(weightedArea float64, req *model.PriceRequest) model.PriceResult
}

// InputError is the single error kind the core raises: a required policy
// input is missing or the project type is unknown.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }
