package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizer_UnknownTimezone(t *testing.T) {
	_, err := NewNormalizer("Mars/Olympus_Mons")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}

func TestNormalizer_RoundTrip(t *testing.T) {
	n, err := NewNormalizer("Asia/Dhaka")
	require.NoError(t, err)

	// Перевод в локальное время не меняет сам instant
	instant := time.Date(2026, 3, 15, 4, 0, 0, 0, time.UTC)
	local := n.ToLocal(instant)
	assert.True(t, n.ToInstant(local).Equal(instant))

	// Asia/Dhaka = UTC+6: 04:00 UTC это 10:00 локально
	assert.Equal(t, 10, local.Hour())
	assert.Equal(t, "10:00", n.LocalTime(instant).String())
}

func TestNormalizer_LocalDateCrossesMidnight(t *testing.T) {
	n, err := NewNormalizer("Asia/Dhaka")
	require.NoError(t, err)

	// 22:00 UTC 14 марта это уже 04:00 15 марта локально
	instant := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	localDate := n.LocalDate(instant)

	assert.Equal(t, 2026, localDate.Year())
	assert.Equal(t, time.March, localDate.Month())
	assert.Equal(t, 15, localDate.Day())
	assert.Equal(t, 0, localDate.Hour())
}

func TestNormalizer_FromDateAndTime(t *testing.T) {
	n, err := NewNormalizer("Asia/Dhaka")
	require.NoError(t, err)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, n.Location())
	instant := n.FromDateAndTime(date, "10:00")

	assert.True(t, instant.Equal(time.Date(2026, 3, 15, 4, 0, 0, 0, time.UTC)))
	assert.Equal(t, "10:00", n.LocalTime(instant).String())
	assert.True(t, n.SameLocalDay(instant, date))
}

func TestNormalizer_Weekday(t *testing.T) {
	n, err := NewNormalizer("Asia/Dhaka")
	require.NoError(t, err)

	// 23:00 UTC в субботу уже воскресенье локально
	instant := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Sunday, n.Weekday(instant))
}
