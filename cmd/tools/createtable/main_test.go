package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Tek Exec tek statement taşır; ";" içeren bir tanım sürücü tarafından
// reddedilir.
func TestSchemaStatementsAreSingleStatements(t *testing.T) {
	require.Len(t, schema, 4)

	tables := []string{"admins", "categories", "articles", "sessions"}
	for i, stmt := range schema {
		require.NotContains(t, stmt, ";")
		require.Contains(t, stmt, "CREATE TABLE IF NOT EXISTS "+tables[i])
	}
}
