package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/octofit-tracker/internal/service"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer

	printSummary(&buf, service.SeedSummary{Teams: 2, Users: 10, Activities: 73, Leaderboard: 10, Workouts: 7})

	out := buf.String()
	assert.Contains(t, out, "DATABASE POPULATION COMPLETE!")
	assert.Contains(t, out, "  Users: 10\n")
	assert.Contains(t, out, "  Activities: 73\n")
	assert.Contains(t, out, "  Workouts: 7\n")
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()

	require.NoError(t, cmd.ParseFlags([]string{"--migrate", "--recompute-only", "--seed", "42"}))

	migrate, err := cmd.Flags().GetBool("migrate")
	require.NoError(t, err)
	assert.True(t, migrate)

	recomputeOnly, err := cmd.Flags().GetBool("recompute-only")
	require.NoError(t, err)
	assert.True(t, recomputeOnly)

	seed, err := cmd.Flags().GetInt64("seed")
	require.NoError(t, err)
	assert.Equal(t, int64(42), seed)
}
