// Package database wires the briefd database client onto an isolated test schema.
package database

import (
	"context"
	"testing"

	"github.com/gestion-eventos/briefd/pkg/database"
	"github.com/gestion-eventos/briefd/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient returns a migrated client on a fresh schema. Cleanup (schema
// drop and connection close) is handled by util.SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	db := util.SetupTestDatabase(t)
	require.NoError(t, database.Migrate(context.Background(), db, "briefd_test"))
	return database.NewClientFromDB(db)
}
