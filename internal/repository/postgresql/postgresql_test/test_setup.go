package postgresqltest

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/geraldx2005/attendance-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
	testDBErr  error
)

// setupTestDB connects to the database named by TEST_DATABASE_URL, runs the
// migrations and truncates every table. Tests are skipped when the variable
// is not set so the suite stays green without a local PostgreSQL.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration tests")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
		if testDBErr == nil {
			testDBErr = testDB.Migrate(context.Background())
		}
	})
	require.NoError(t, testDBErr)

	_, err := testDB.Exec(context.Background(),
		"TRUNCATE TABLE punches, daily_attendance, uploads, employees CASCADE")
	require.NoError(t, err)

	return testDB
}
