package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func TestResolveTimeWindow_Hours(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	since, err := ResolveTimeWindow(TimeWindowFilter{Hours: intPtr(24)}, now)

	require.NoError(t, err)
	assert.Equal(t, now.Add(-24*time.Hour), since)
}

func TestResolveTimeWindow_Days(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	since, err := ResolveTimeWindow(TimeWindowFilter{Days: intPtr(3)}, now)

	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -3), since)
}

func TestResolveTimeWindow_WeeksEqualSevenDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	byWeeks, err := ResolveTimeWindow(TimeWindowFilter{Weeks: intPtr(1)}, now)
	require.NoError(t, err)

	byDays, err := ResolveTimeWindow(TimeWindowFilter{Days: intPtr(7)}, now)
	require.NoError(t, err)

	// Неделя и семь дней дают одну и ту же нижнюю границу
	assert.Equal(t, byDays, byWeeks)
}

func TestResolveTimeWindow_MonthsAreCalendar(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	since, err := ResolveTimeWindow(TimeWindowFilter{Months: intPtr(1)}, now)

	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, -1, 0), since)
}

func TestResolveTimeWindow_EmptyFilterDefaultsToOneMonth(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	since, err := ResolveTimeWindow(TimeWindowFilter{}, now)

	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, -1, 0), since)
}

func TestResolveTimeWindow_Precedence(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// При нескольких ключах выигрывает первый по порядку hours > days > weeks > months
	filter := TimeWindowFilter{
		Hours:  intPtr(1),
		Days:   intPtr(10),
		Weeks:  intPtr(10),
		Months: intPtr(10),
	}

	since, err := ResolveTimeWindow(filter, now)

	require.NoError(t, err)
	assert.Equal(t, now.Add(-time.Hour), since)
}

func TestResolveTimeWindow_PrecedenceDaysOverWeeks(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	filter := TimeWindowFilter{
		Days:   intPtr(2),
		Weeks:  intPtr(10),
		Months: intPtr(10),
	}

	since, err := ResolveTimeWindow(filter, now)

	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -2), since)
}

func TestResolveTimeWindow_RejectsNonPositiveValues(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		filter TimeWindowFilter
	}{
		{"zero hours", TimeWindowFilter{Hours: intPtr(0)}},
		{"negative hours", TimeWindowFilter{Hours: intPtr(-5)}},
		{"zero days", TimeWindowFilter{Days: intPtr(0)}},
		{"negative weeks", TimeWindowFilter{Weeks: intPtr(-1)}},
		{"negative months", TimeWindowFilter{Months: intPtr(-12)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveTimeWindow(tc.filter, now)

			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}
