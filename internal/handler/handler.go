package handler

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"target-price-engine/internal/engine"
	"target-price-engine/internal/logging"
	"target-price-engine/internal/model"
	"target-price-engine/internal/policy"
	"target-price-engine/internal/projecttypes"
)

//go:embed index.html
var indexHTML []byte

// Route is the top-level fasthttp request handler.
func Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/":
		handleIndex(ctx)
	case "/calculate":
		handleCalculate(ctx)
	case "/project-types":
		handleProjectTypes(ctx)
	case "/self-test":
		handleSelfTest(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func handleIndex(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetBody(indexHTML)
}

func handleCalculate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	start := time.Now()

	var req model.PriceRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if msg := validateRequest(&req); msg != "" {
		writeError(ctx, fasthttp.StatusBadRequest, msg)
		return
	}

	result, err := engine.ComputePrice(&req)
	if err != nil {
		var inputErr *policy.InputError
		if errors.As(err, &inputErr) {
			writeError(ctx, fasthttp.StatusBadRequest, inputErr.Message)
			return
		}
		logging.Error("calculation failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Calculation failed")
		return
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	resp := model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     model.OutcomeSuccess,
		},
		Result: result,
	}

	logging.Info("price calculated",
		zap.String("project_type", req.ProjectType),
		zap.Float64("weighted_area", result.WeightedArea),
		zap.Float64("final_price", result.FinalPrice),
	)

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func handleProjectTypes(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, projecttypes.List())
}

// validateRequest enforces the boundary contract: the core assumes
// pre-validated numeric inputs and does not re-check them.
func validateRequest(req *model.PriceRequest) string {
	switch {
	case req.ProjectType == "":
		return "project_type is required"
	case req.ApartmentArea < 0 || req.BalconyArea < 0 || req.GardenArea < 0 || req.StorageArea < 0:
		return "areas must be non-negative"
	case req.ParkingSpots < 0:
		return "parking_spots must be non-negative"
	case req.BasePricePerSqm <= 0:
		return "base_price_per_sqm must be positive"
	case req.CurrentPricePerSqm < 0:
		return "current_price_per_sqm must be non-negative"
	case req.IndexationFactor < 0 || req.IndexationFactor > 1:
		return "indexation_factor must be between 0 and 1"
	case req.DiscountLimit < 0:
		return "discount_limit must not be negative"
	}

	hasBuilding := req.BuildingFloors != 0
	hasApartment := req.ApartmentFloor != 0
	switch {
	case hasBuilding != hasApartment:
		return "building_floors and apartment_floor must be supplied together"
	case hasBuilding && (req.BuildingFloors < 1 || req.ApartmentFloor < 1):
		return "building_floors and apartment_floor must be positive"
	case hasBuilding && req.ApartmentFloor > req.BuildingFloors:
		return fmt.Sprintf("apartment_floor %d exceeds building_floors %d", req.ApartmentFloor, req.BuildingFloors)
	}

	return ""
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		logging.Error("response encoding failed", zap.Error(err))
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	json.NewEncoder(ctx).Encode(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
