package handler

import (
	"math"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"target-price-engine/internal/engine"
	"target-price-engine/internal/model"
)

type selfTestCase struct {
	Name     string  `json:"name"`
	Expected float64 `json:"expected_final_price"`
	Request  model.PriceRequest
}

type selfTestResult struct {
	Name     string  `json:"name"`
	Expected float64 `json:"expected_final_price"`
	Actual   float64 `json:"actual_final_price,omitempty"`
	Passed   bool    `json:"passed"`
	Error    string  `json:"error,omitempty"`
}

type selfTestReport struct {
	Outcome string           `json:"outcome"`
	Results []selfTestResult `json:"results"`
}

// Worked examples from the ministry's reference spreadsheet. They double as
// the acceptance cases in the engine tests.
var selfTestCases = []selfTestCase{
	{
		Name:     "target_2_0 80sqm with parking",
		Expected: 854577,
		Request: model.PriceRequest{
			ProjectType:      model.ProjectTarget20,
			ApartmentArea:    80,
			BalconyArea:      12,
			ParkingSpots:     1,
			BasePricePerSqm:  12479.22,
			IndexationFactor: 0.103,
		},
	},
	{
		Name:     "target_3_0 120sqm with storage",
		Expected: 1766130,
		Request: model.PriceRequest{
			ProjectType:        model.ProjectTarget30,
			ApartmentArea:      120,
			BalconyArea:        12,
			StorageArea:        6,
			ParkingSpots:       2,
			BasePricePerSqm:    13808,
			CurrentPricePerSqm: 18201,
			DiscountLimit:      600000,
		},
	},
	{
		Name:     "buyer_reduced 120sqm",
		Expected: 1133110,
		Request: model.PriceRequest{
			ProjectType:     model.ProjectBuyerReduced,
			ApartmentArea:   120,
			BalconyArea:     15,
			StorageArea:     6,
			ParkingSpots:    2,
			BasePricePerSqm: 8656.3,
		},
	},
}

func handleSelfTest(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	report := selfTestReport{Outcome: model.OutcomeSuccess}
	for _, tc := range selfTestCases {
		r := selfTestResult{Name: tc.Name, Expected: tc.Expected}

		req := tc.Request
		result, err := engine.ComputePrice(&req)
		if err != nil {
			r.Error = err.Error()
		} else {
			r.Actual = result.FinalPrice
			r.Passed = math.Abs(result.FinalPrice-tc.Expected) <= 1
		}
		if !r.Passed {
			report.Outcome = model.OutcomeFailure
		}
		report.Results = append(report.Results, r)
	}

	status := fasthttp.StatusOK
	if report.Outcome != model.OutcomeSuccess {
		status = fasthttp.StatusInternalServerError
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	json.NewEncoder(ctx).Encode(report)
}
