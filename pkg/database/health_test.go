package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmind/worldmind/test/util"
)

func TestHealth(t *testing.T) {
	_, db := util.SetupTestDatabase(t)

	h, err := Health(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.GreaterOrEqual(t, h.Open, 1)
}
