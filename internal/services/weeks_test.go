package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBuildWeeklyRangesTruncatesFinalBucket(t *testing.T) {
	weeks := BuildWeeklyRanges(date(2016, time.August, 10))

	assert.Equal(t, []string{
		"08/01/2016-08/07/2016",
		"08/08/2016-08/10/2016",
	}, weeks)
}

func TestBuildWeeklyRangesEpochDay(t *testing.T) {
	weeks := BuildWeeklyRanges(Epoch)

	assert.Equal(t, []string{"08/01/2016-08/01/2016"}, weeks)
}

func TestBuildWeeklyRangesCoversWithoutGapsOrOverlaps(t *testing.T) {
	todays := []time.Time{
		date(2016, time.August, 7),
		date(2016, time.September, 1),
		date(2017, time.January, 15),
		date(2020, time.February, 29),
		date(2024, time.December, 31),
	}

	for _, today := range todays {
		weeks := BuildWeeklyRanges(today)
		require.NotEmpty(t, weeks)

		expectedStart := Epoch

		for i, week := range weeks {
			start, end, err := ParseRange(week)
			require.NoError(t, err, "week %q", week)

			assert.Equal(t, expectedStart, start, "bucket %d of today=%s", i, today)
			assert.False(t, end.Before(start))

			days := int(end.Sub(start).Hours()/24) + 1
			assert.LessOrEqual(t, days, 7, "bucket %q longer than 7 days", week)

			expectedStart = end.AddDate(0, 0, 1)
		}

		_, lastEnd, err := ParseRange(weeks[len(weeks)-1])
		require.NoError(t, err)
		assert.Equal(t, Midnight(today), lastEnd)
	}
}

func TestParseRange(t *testing.T) {
	start, end, err := ParseRange("08/01/2016-08/07/2016")
	require.NoError(t, err)
	assert.Equal(t, date(2016, time.August, 1), start)
	assert.Equal(t, date(2016, time.August, 7), end)

	_, _, err = ParseRange("08/07/2016-08/01/2016")
	assert.Error(t, err)

	_, _, err = ParseRange("08/01/2016")
	assert.Error(t, err)

	_, _, err = ParseRange("2016-08-01-2016-08-07")
	assert.Error(t, err)
}

func TestIsoWeekday(t *testing.T) {
	// 2016-08-01 was a Monday, 2016-08-07 a Sunday.
	assert.Equal(t, 1, isoWeekday(date(2016, time.August, 1)))
	assert.Equal(t, 7, isoWeekday(date(2016, time.August, 7)))
}
