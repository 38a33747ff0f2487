package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
	"github.com/horecalabs/productivity-backend-go/internal/pkg/database"
	"github.com/horecalabs/productivity-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// runRepoTestInit connects once per process. Tests skip when no test
// database is configured so the suite stays runnable standalone.
func runRepoTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	if testDB != nil {
		return
	}
	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncateRunTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"attributed_revenue", "productivity_runs"} {
		_, err := testDB.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func TestRunRepository_SaveIsIdempotentOverwrite(t *testing.T) {
	ctx := context.Background()
	runRepoTestInit(t)
	truncateRunTables(t, ctx)

	repo := postgresql.NewProductivityRunRepository(testDB)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	run := productivity.Run{
		ID:         uuid.NewString(),
		LocationID: "loc-1",
		Date:       date,
		Tree:       &productivity.Node{Name: "loc-1", TotalHours: 8, TotalRevenue: 640},
		Workers: []productivity.AttributedRevenue{
			{WorkerID: "w-1", WorkerName: "Ada", LocationID: "loc-1", Date: date, HoursWorked: 8, RelativeRevenue: 640},
		},
		ComputedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.SaveRun(ctx, run))

	// Rerun with updated numbers replaces, never duplicates.
	run.ID = uuid.NewString()
	run.Tree.TotalRevenue = 700
	run.Workers[0].RelativeRevenue = 700
	require.NoError(t, repo.SaveRun(ctx, run))

	tree, err := repo.GetTree(ctx, "loc-1", date)
	require.NoError(t, err)
	assert.InDelta(t, 700, tree.TotalRevenue, 1e-9)

	rows, err := repo.ListWorkerRevenue(ctx, "loc-1", date, date)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 700, rows[0].RelativeRevenue, 1e-9)
}

func TestRunRepository_MissingRunIsNotFound(t *testing.T) {
	ctx := context.Background()
	runRepoTestInit(t)
	truncateRunTables(t, ctx)

	repo := postgresql.NewProductivityRunRepository(testDB)

	_, err := repo.GetTree(ctx, "loc-404", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, productivity.ErrRunNotFound)
}
