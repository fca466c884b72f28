package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_UsesLocation(t *testing.T) {
	// 23:30 UTC on Oct 18 is already Oct 19 in Tokyo
	instant := time.Date(2026, time.October, 18, 23, 30, 0, 0, time.UTC)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	assert.Equal(t, "2026-10-18", DateOf(instant, time.UTC).String())
	assert.Equal(t, "2026-10-19", DateOf(instant, tokyo).String())
}

func TestDateOf_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, time.October, 18, 0, 0, 1, 0, time.UTC)
	night := time.Date(2026, time.October, 18, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, DateOf(morning, time.UTC), DateOf(night, time.UTC))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"iso form", "2026-10-18", "2026-10-18", false},
		{"legacy toDateString form", "Sun Oct 18 2026", "2026-10-18", false},
		{"legacy with padded day", "Thu Jan 01 1970", "1970-01-01", false},
		{"garbage", "yesterday", "", true},
		{"empty", "", "", true},
		{"timestamp", "2026-10-18T10:00:00Z", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, d.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.String())
		})
	}
}

func TestDate_ZeroValue(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
	assert.False(t, NewDate(2026, time.October, 18).IsZero())
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2026, time.December, 31)

	assert.Equal(t, "2027-01-01", d.AddDays(1).String())
	assert.Equal(t, "2026-12-30", d.AddDays(-1).String())
}

func TestDate_Format(t *testing.T) {
	d := NewDate(2026, time.October, 18)
	assert.Equal(t, "Sun Oct 18 2026", d.Format("Mon Jan 02 2006"))
}

func TestDate_TextRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"Sat Mar 01 2025"`), &d))
	assert.Equal(t, NewDate(2025, time.March, 1), d)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-01"`, string(out))

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
}
