package http

import (
	"encoding/json"
	"net/http"

	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
	"github.com/horecalabs/productivity-backend-go/internal/handler/http/response"
)

type ProductivityHandler interface {
	// Hierarchical productivity tree for one (location, date)
	GetTree(w http.ResponseWriter, r *http.Request)

	// Flat per-worker attribution rows over a date range
	GetWorkerRevenue(w http.ResponseWriter, r *http.Request)

	// Recompute a date range for one location
	Compute(w http.ResponseWriter, r *http.Request)
}

type productivityHandlerImpl struct {
	productivityService productivity.Service
}

func NewProductivityHandler(productivityService productivity.Service) ProductivityHandler {
	return &productivityHandlerImpl{
		productivityService: productivityService,
	}
}

// GetTree handles GET /productivity/tree
func (h *productivityHandlerImpl) GetTree(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := productivity.TreeRequest{
		LocationID: r.URL.Query().Get("location_id"),
		Date:       r.URL.Query().Get("date"),
	}

	result, err := h.productivityService.GetTree(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWorkerRevenue handles GET /productivity/workers
func (h *productivityHandlerImpl) GetWorkerRevenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := productivity.WorkerRevenueRequest{
		LocationID: r.URL.Query().Get("location_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.productivityService.ListWorkerRevenue(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Compute handles POST /productivity/compute
func (h *productivityHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req productivity.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	summary, err := h.productivityService.ComputeRange(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Productivity recomputed", summary)
}
