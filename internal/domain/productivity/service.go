package productivity

import "context"

// Service runs the attribution engine and serves its derived views.
type Service interface {
	// ComputeRange recomputes every non-future (location, date) unit in
	// the inclusive range. Units are independent and may run in
	// parallel; each unit is idempotent and overwrites prior results.
	ComputeRange(ctx context.Context, req ComputeRequest) (ComputeSummary, error)

	// GetTree returns the stored hierarchy for one (location, date).
	GetTree(ctx context.Context, req TreeRequest) (TreeResponse, error)

	// ListWorkerRevenue returns the per-worker attribution rows.
	ListWorkerRevenue(ctx context.Context, req WorkerRevenueRequest) (WorkerRevenueResponse, error)
}
