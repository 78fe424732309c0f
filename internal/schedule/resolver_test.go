package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/pkg/types"
)

func TestInterval_Overlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Interval
		overlaps bool
	}{
		{"identical", Interval{600, 660}, Interval{600, 660}, true},
		{"contained", Interval{600, 720}, Interval{630, 660}, true},
		{"partial left", Interval{600, 660}, Interval{630, 690}, true},
		{"partial right", Interval{630, 690}, Interval{600, 660}, true},
		{"touching end to start", Interval{600, 660}, Interval{660, 720}, false},
		{"touching start to end", Interval{660, 720}, Interval{600, 660}, false},
		{"disjoint", Interval{600, 660}, Interval{720, 780}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}

func TestIsBooked_LongServiceBlocksSpannedSlots(t *testing.T) {
	// Запись 10:00 на 90 минут занимает [10:00, 11:30)
	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 90, Status: domain.StatusConfirmed},
	}

	assert.True(t, IsBooked("10:00", 60, bookings))
	assert.True(t, IsBooked("11:00", 60, bookings)) // частичное перекрытие [11:00, 12:00)
	assert.False(t, IsBooked("11:30", 60, bookings))
	assert.False(t, IsBooked("09:00", 60, bookings))
}

func TestIsBooked_InactiveBookingsNeverBlock(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelled},
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCompleted},
	}

	assert.False(t, IsBooked("10:00", 60, bookings))
}

func TestIsBooked_ZeroDurationFallsBackToDefault(t *testing.T) {
	// Нулевая длительность резолвится в длительность по умолчанию,
	// а не в пустой интервал
	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 0, Status: domain.StatusPending},
	}

	assert.True(t, IsBooked("10:30", 60, bookings))
}

// Читающий и пишущий пути используют один предикат пересечения и обязаны
// сходиться на любом наборе бронирований
func TestResolverParity(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 90, Status: domain.StatusConfirmed},
		{StartTime: "14:00", DurationMinutes: 30, Status: domain.StatusPending},
		{StartTime: "16:00", DurationMinutes: 60, Status: domain.StatusCancelled},
	}

	starts := []types.TimeString{"09:00", "10:00", "11:00", "11:30", "13:30", "14:00", "15:00", "16:00"}
	for _, s := range starts {
		assert.Equal(t,
			IsBooked(s, 60, bookings),
			HasConflict(s, 60, bookings),
			"start %s", s)
	}
}
