package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatements_SplitsEmbeddedSchema(t *testing.T) {
	stmts := statements(schemaSQL)
	require.NotEmpty(t, stmts)
	for _, s := range stmts {
		assert.True(t, strings.HasPrefix(s, "CREATE TABLE IF NOT EXISTS"), s)
		assert.NotContains(t, s, "--")
	}
	joined := strings.Join(stmts, "\n")
	for _, table := range []string{"gigs", "gig_lineup_roles", "setlist_items", "gig_shares", "gig_activity_log"} {
		assert.Contains(t, joined, "EXISTS "+table+" (")
	}
}

func TestStatements_IgnoresCommentsAndBlanks(t *testing.T) {
	stmts := statements("-- header\n\nSELECT 1;\n -- x\nSELECT 2;\n")
	assert.Equal(t, []string{"SELECT 1", "SELECT 2"}, stmts)
}
