// Package cfg
package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("DEFAULT_API_TIMEOUT", "")
	t.Setenv("FETCH_WORKERS", "")
	t.Setenv("IC_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("GOVERNANCE_CANISTER_ID", "")

	c, err := New()
	assert.NoError(t, err)
	assert.Equal(t, 10*time.Second, c.DefaultAPITimeout)
	assert.Equal(t, 1, c.FetchWorkers)
	assert.Equal(t, DefaultICURL, c.ICURL)
	assert.Equal(t, "3000", c.Port)
	assert.False(t, c.IsComplete())
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("DEFAULT_API_TIMEOUT", "3")
	t.Setenv("FETCH_WORKERS", "8")
	t.Setenv("IC_URL", "https://icp-api.io")
	t.Setenv("GOVERNANCE_CANISTER_ID", DefaultGovernanceCanisterID)

	c, err := New()
	assert.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.DefaultAPITimeout)
	assert.Equal(t, 8, c.FetchWorkers)
	assert.Equal(t, "https://icp-api.io", c.ICURL)
	assert.True(t, c.IsComplete())
}

func TestNewInvalidWorkersFallsBack(t *testing.T) {
	t.Setenv("FETCH_WORKERS", "0")
	c, err := New()
	assert.NoError(t, err)
	assert.Equal(t, 1, c.FetchWorkers)
}
