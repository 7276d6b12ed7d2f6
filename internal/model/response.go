package model

// PriceResult is the calculation output. Fields beyond the four common ones
// are variant-specific and omitted when the policy does not produce them.
// Monetary fields are rounded to whole currency units, weighted_area and
// floor_adjustment_percent to 2 decimals, at result assembly only.
type PriceResult struct {
	ProjectType    string  `json:"project_type"`
	WeightedArea   float64 `json:"weighted_area"`
	BaseTotalPrice float64 `json:"base_total_price"`
	FinalPrice     float64 `json:"final_price"`

	CurrentTotalPrice *float64 `json:"current_total_price,omitempty"`
	DiscountedPrice   *float64 `json:"discounted_price,omitempty"`
	DiscountAmount    *float64 `json:"discount_amount,omitempty"`
	Savings           *float64 `json:"savings,omitempty"`

	IndexationApplied     *bool `json:"indexation_applied,omitempty"`
	MaxDifferenceExceeded *bool `json:"max_difference_exceeded,omitempty"`

	FloorAdjustmentPercent *float64 `json:"floor_adjustment_percent,omitempty"`
	AdjustedFinalPrice     *float64 `json:"adjusted_final_price,omitempty"`
}

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Result              *PriceResult        `json:"result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// ProjectTypeInfo describes one pricing policy for the metadata endpoint.
type ProjectTypeInfo struct {
	ID                   string `json:"id"`
	Label                string `json:"label"`
	Description          string `json:"description"`
	DiscountRule         string `json:"discount_rule"`
	RequiresCurrentPrice bool   `json:"requires_current_price"`
}

// Float and Bool build the optional result fields.
func Float(v float64) *float64 { return &v }
func Bool(v bool) *bool        { return &v }
