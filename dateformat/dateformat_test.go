package dateformat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2023, time.February, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		time    time.Time
		pattern string
		want    string
	}{
		{
			name:    "default pattern round trip",
			time:    ts,
			pattern: "YYYY-MM-DD",
			want:    "2023-02-15",
		},
		{
			name:    "month and day are zero padded",
			time:    time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			pattern: "YYYY-MM-DD",
			want:    "2024-01-05",
		},
		{
			name:    "tokens in arbitrary order with literals",
			time:    ts,
			pattern: "DD/MM/YYYY",
			want:    "15/02/2023",
		},
		{
			name:    "pattern without tokens is returned unchanged",
			time:    ts,
			pattern: "literal",
			want:    "literal",
		},
		{
			name:    "empty pattern",
			time:    ts,
			pattern: "",
			want:    "",
		},
		{
			name:    "repeated token is replaced everywhere",
			time:    ts,
			pattern: "YYYY/YYYY",
			want:    "2023/2023",
		},
		{
			name:    "single token only",
			time:    ts,
			pattern: "MM",
			want:    "02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.time, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_ZeroTimestamp(t *testing.T) {
	_, err := Format(time.Time{}, DefaultPattern)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFormat_UsesTimestampLocation(t *testing.T) {
	// 2023-03-01 02:00 in UTC+10 is still 2023-02-28 in UTC. The formatter
	// reads calendar fields from the timestamp's own location.
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2023, time.March, 1, 2, 0, 0, 0, loc)

	got, err := Format(ts, DefaultPattern)
	require.NoError(t, err)
	assert.Equal(t, "2023-03-01", got)

	got, err = Format(ts.UTC(), DefaultPattern)
	require.NoError(t, err)
	assert.Equal(t, "2023-02-28", got)
}
