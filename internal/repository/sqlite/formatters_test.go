package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	loc := time.FixedZone("BST", 3600)
	ts := time.Date(2025, 6, 23, 11, 47, 24, 890799237, loc)

	assert.Equal(t, "2025-06-23T10:47:24Z", FormatTimeForDB(ts))
}

func TestParseTimeFromDB(t *testing.T) {
	parsed, err := ParseTimeFromDB("2025-06-23T10:47:24Z")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2025, 6, 23, 10, 47, 24, 0, time.UTC)))

	_, err = ParseTimeFromDB("2025-06-23 11:20:10")
	assert.Error(t, err)
}
