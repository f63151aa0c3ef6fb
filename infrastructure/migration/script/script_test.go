package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/internal/config"
)

func TestStatements(t *testing.T) {
	profiles, err := config.LoadProfiles("")
	require.NoError(t, err)

	stmts := statements(profiles)
	require.NotEmpty(t, stmts)
	assert.Equal(t, usersDDL, stmts[0])

	joined := strings.Join(stmts, "\n")
	assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS capex_pago (")
	assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS capex_pago_diferencia (")
	assert.Contains(t, joined, "CREATE SCHEMA IF NOT EXISTS cxp_vzla")
	assert.Contains(t, joined, `CREATE INDEX IF NOT EXISTS "capex_pago_country_fy_idx" ON capex_pago (country, fiscal_year)`)
	assert.Equal(t, 1, strings.Count(joined, "CREATE TABLE IF NOT EXISTS capex_pago ("))
}
