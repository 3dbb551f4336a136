package timezone_test

import (
	"testing"
	"time"

	"kwagala/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.NotEmpty(t, timezone.Format(testTime, "2006-01-02 15:04:05 MST"))

	parsed, err := timezone.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)
	assert.False(t, parsed.IsZero())
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "bare date", value: "2025-03-01", want: "2025-03-01"},
		{name: "timestamp at midday", value: timezone.Format(time.Date(2025, 3, 3, 12, 0, 0, 0, timezone.GetLocation()), time.RFC3339), want: "2025-03-03"},
		{name: "garbage", value: "next tuesday", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := timezone.ParseDay(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, day.Format(time.DateOnly))
			assert.Equal(t, 0, day.Hour())
		})
	}
}

func TestDay(t *testing.T) {
	late := time.Date(2025, 3, 1, 23, 59, 0, 0, timezone.GetLocation())

	day := timezone.Day(late)

	assert.Equal(t, "2025-03-01", day.Format(time.DateOnly))
	assert.True(t, day.Before(late))
}
