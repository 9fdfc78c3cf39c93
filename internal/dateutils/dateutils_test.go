package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)

	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"UTC with millis", "2024-03-10T09:15:30.000Z", time.Date(2024, 3, 10, 9, 15, 30, 0, time.UTC), false},
		{"explicit offset", "2024-03-10T09:15:30+02:00", time.Date(2024, 3, 10, 7, 15, 30, 0, time.UTC), false},
		{"no offset is local", "2024-03-10T09:15:30", time.Date(2024, 3, 10, 9, 15, 30, 0, lagos), false},
		{"bare date is local midnight", "2022-03-03", time.Date(2022, 3, 3, 0, 0, 0, 0, lagos), false},
		{"surrounding spaces", "  2022-03-03 ", time.Date(2022, 3, 3, 0, 0, 0, 0, lagos), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "last tuesday", time.Time{}, true},
		{"impossible day", "2022-02-30", time.Time{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestamp(tc.input, lagos)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestIsDateOnly(t *testing.T) {
	assert.True(t, IsDateOnly("2024-01-31"))
	assert.False(t, IsDateOnly("2024-01-31T00:00:00Z"))
	assert.False(t, IsDateOnly(""))
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, 5, 17, 22, 45, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), StartOfDay(ts, time.UTC))

	// 22:45 UTC is already the next day three hours east.
	east := time.FixedZone("EAT", 3*3600)
	assert.Equal(t, time.Date(2024, 5, 18, 0, 0, 0, 0, east), StartOfDay(ts, east))
}

func TestSameDayAndMonth(t *testing.T) {
	a := time.Date(2024, 5, 17, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 5, 17, 23, 59, 59, 0, time.UTC)
	c := time.Date(2023, 5, 17, 12, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b, time.UTC))
	assert.False(t, SameDay(a, c, time.UTC))
	assert.True(t, SameMonth(a, b, time.UTC))
	assert.False(t, SameMonth(a, c, time.UTC), "same month in a different year")
}

func TestFormatting(t *testing.T) {
	d := time.Date(2022, 4, 3, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Apr 3, 2022", FormatDisplay(d))
	assert.Equal(t, "Apr 03, 2022", FormatChart(d))
	assert.Equal(t, "", FormatDisplay(time.Time{}))
	assert.Equal(t, "", FormatChart(time.Time{}))
}
