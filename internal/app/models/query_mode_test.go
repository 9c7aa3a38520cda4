package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestParseQueryMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, QueryActive, ParseQueryMode(""))
	assert.Equal(t, QueryActive, ParseQueryMode("active"))
	assert.Equal(t, QueryActive, ParseQueryMode("garbage"))
	assert.Equal(t, QueryAll, ParseQueryMode("all"))
	assert.Equal(t, QueryDeletedOnly, ParseQueryMode("deleted"))
}

func TestQueryActive_FiltersDeletedRows(t *testing.T) {
	t.Parallel()

	db := newDryRunDB(t)

	var clients []Client
	tx := db.Scopes(QueryActive.Scope()).Find(&clients)
	require.NoError(t, tx.Error)

	assert.Contains(t, tx.Statement.SQL.String(), "deleted_at")
	assert.Contains(t, tx.Statement.SQL.String(), "IS NULL")
}

func TestQueryAll_LiftsDeletedFilter(t *testing.T) {
	t.Parallel()

	db := newDryRunDB(t)

	var clients []Client
	tx := db.Scopes(QueryAll.Scope()).Find(&clients)
	require.NoError(t, tx.Error)

	assert.NotContains(t, tx.Statement.SQL.String(), "deleted_at")
}

func TestQueryDeletedOnly_SelectsOnlyDeletedRows(t *testing.T) {
	t.Parallel()

	db := newDryRunDB(t)

	var clients []Client
	tx := db.Scopes(QueryDeletedOnly.Scope()).Find(&clients)
	require.NoError(t, tx.Error)

	assert.Contains(t, tx.Statement.SQL.String(), "deleted_at IS NOT NULL")
}
