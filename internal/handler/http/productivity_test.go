package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductivityService struct {
	tree *productivity.Node
}

func (s *stubProductivityService) ComputeRange(_ context.Context, req productivity.ComputeRequest) (productivity.ComputeSummary, error) {
	if err := req.Validate(); err != nil {
		return productivity.ComputeSummary{}, err
	}
	return productivity.ComputeSummary{LocationID: req.LocationID, UnitsComputed: 1}, nil
}

func (s *stubProductivityService) GetTree(_ context.Context, req productivity.TreeRequest) (productivity.TreeResponse, error) {
	if err := req.Validate(); err != nil {
		return productivity.TreeResponse{}, err
	}
	if s.tree == nil {
		return productivity.TreeResponse{}, productivity.ErrRunNotFound
	}
	return productivity.TreeResponse{LocationID: req.LocationID, Date: req.Date, Tree: s.tree}, nil
}

func (s *stubProductivityService) ListWorkerRevenue(_ context.Context, req productivity.WorkerRevenueRequest) (productivity.WorkerRevenueResponse, error) {
	if err := req.Validate(); err != nil {
		return productivity.WorkerRevenueResponse{}, err
	}
	return productivity.WorkerRevenueResponse{LocationID: req.LocationID}, nil
}

func TestGetTree_Success(t *testing.T) {
	handler := NewProductivityHandler(&stubProductivityService{
		tree: &productivity.Node{Name: "loc-1", TotalHours: 8},
	})

	req := httptest.NewRequest(http.MethodGet, "/productivity/tree?location_id=loc-1&date=2025-03-10", nil)
	rec := httptest.NewRecorder()
	handler.GetTree(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_hours":8`)
}

func TestGetTree_MissingRunIs404(t *testing.T) {
	handler := NewProductivityHandler(&stubProductivityService{})

	req := httptest.NewRequest(http.MethodGet, "/productivity/tree?location_id=loc-1&date=2025-03-10", nil)
	rec := httptest.NewRecorder()
	handler.GetTree(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTree_ValidationFailureIs422(t *testing.T) {
	handler := NewProductivityHandler(&stubProductivityService{})

	req := httptest.NewRequest(http.MethodGet, "/productivity/tree?date=not-a-date", nil)
	rec := httptest.NewRecorder()
	handler.GetTree(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "location_id")
}

func TestCompute_Success(t *testing.T) {
	handler := NewProductivityHandler(&stubProductivityService{})

	body := `{"location_id":"loc-1","start_date":"2025-03-01","end_date":"2025-03-07"}`
	req := httptest.NewRequest(http.MethodPost, "/productivity/compute", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Compute(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"units_computed":1`)
}

func TestCompute_BadBodyIs400(t *testing.T) {
	handler := NewProductivityHandler(&stubProductivityService{})

	req := httptest.NewRequest(http.MethodPost, "/productivity/compute", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	handler.Compute(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
