package get_available_shifts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestParseScheduleRanges(t *testing.T) {
	t.Run("single range", func(t *testing.T) {
		ranges, err := parseScheduleRanges("09:00-18:00")
		require.NoError(t, err)
		require.Len(t, ranges, 1)
		assert.Equal(t, "9:00", ranges[0].Start.String())
		assert.Equal(t, "18:00", ranges[0].End.String())
	})

	t.Run("multiple ranges with spaces", func(t *testing.T) {
		ranges, err := parseScheduleRanges("09:00-13:00, 17:00-22:00")
		require.NoError(t, err)
		require.Len(t, ranges, 2)
		assert.Equal(t, "17:00", ranges[1].Start.String())
	})

	t.Run("empty schedule means day off", func(t *testing.T) {
		ranges, err := parseScheduleRanges("")
		require.NoError(t, err)
		assert.Empty(t, ranges)
	})

	t.Run("missing end", func(t *testing.T) {
		_, err := parseScheduleRanges("09:00")
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := parseScheduleRanges("18:00-09:00")
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})
}

func TestGenerateSlots(t *testing.T) {
	t.Run("hourly grid over one range", func(t *testing.T) {
		ranges, err := parseScheduleRanges("09:00-12:00")
		require.NoError(t, err)

		slots := generateSlots(ranges, 60)

		require.Len(t, slots, 3)
		assert.Equal(t, "9:00", slots[0].String())
		assert.Equal(t, "10:00", slots[1].String())
		assert.Equal(t, "11:00", slots[2].String())
	})

	t.Run("slot at range end is never emitted", func(t *testing.T) {
		ranges, err := parseScheduleRanges("09:00-12:00")
		require.NoError(t, err)

		for _, duration := range []int{15, 30, 45, 60, 90} {
			slots := generateSlots(ranges, duration)
			for _, slot := range slots {
				assert.True(t, slot.IsBefore(ranges[0].End),
					"duration=%d produced slot %s at or past range end", duration, slot)
			}
		}
	})

	t.Run("overlapping ranges keep duplicate slot times", func(t *testing.T) {
		ranges, err := parseScheduleRanges("09:00-11:00, 10:00-12:00")
		require.NoError(t, err)

		slots := generateSlots(ranges, 60)

		require.Len(t, slots, 4)
		assert.Equal(t, "9:00", slots[0].String())
		assert.Equal(t, "10:00", slots[1].String())
		assert.Equal(t, "10:00", slots[2].String())
		assert.Equal(t, "11:00", slots[3].String())
	})

	t.Run("uneven duration leaves a shorter tail slot", func(t *testing.T) {
		ranges, err := parseScheduleRanges("09:00-10:30")
		require.NoError(t, err)

		slots := generateSlots(ranges, 60)

		// 10:00 стартует внутри интервала, хотя его конец выходит за 10:30
		require.Len(t, slots, 2)
		assert.Equal(t, "9:00", slots[0].String())
		assert.Equal(t, "10:00", slots[1].String())
	})
}

func TestApplyOccupancy(t *testing.T) {
	slots := []types.TimeString{
		mustTime(t, "9:00"),
		mustTime(t, "10:00"),
		mustTime(t, "11:00"),
	}

	t.Run("no shifts leaves full capacity", func(t *testing.T) {
		result := applyOccupancy(slots, 10, nil)

		require.Len(t, result, 3)
		for _, slot := range result {
			assert.Equal(t, 10, slot.Availables)
		}
	})

	t.Run("reservation subtracts its party size from its slot only", func(t *testing.T) {
		shifts := []*domain.Shift{
			{TimeStart: mustTime(t, "10:00"), PeopleQty: 3, Status: domain.StatusConfirmed},
		}

		result := applyOccupancy(slots, 10, shifts)

		assert.Equal(t, 10, result[0].Availables)
		assert.Equal(t, 7, result[1].Availables)
		assert.Equal(t, 10, result[2].Availables)
	})

	t.Run("cancelled shifts do not occupy", func(t *testing.T) {
		shifts := []*domain.Shift{
			{TimeStart: mustTime(t, "10:00"), PeopleQty: 4, Status: domain.StatusCancelled},
			{TimeStart: mustTime(t, "10:00"), PeopleQty: 2, Status: domain.StatusToConfirm},
		}

		result := applyOccupancy(slots, 10, shifts)

		assert.Equal(t, 8, result[1].Availables)
	})

	t.Run("off grid shifts are ignored", func(t *testing.T) {
		shifts := []*domain.Shift{
			{TimeStart: mustTime(t, "10:15"), PeopleQty: 5, Status: domain.StatusConfirmed},
		}

		result := applyOccupancy(slots, 10, shifts)

		for _, slot := range result {
			assert.Equal(t, 10, slot.Availables)
		}
	})

	t.Run("only the first duplicate slot is decremented", func(t *testing.T) {
		dup := []types.TimeString{mustTime(t, "10:00"), mustTime(t, "10:00")}
		shifts := []*domain.Shift{
			{TimeStart: mustTime(t, "10:00"), PeopleQty: 3, Status: domain.StatusPaid},
		}

		result := applyOccupancy(dup, 10, shifts)

		assert.Equal(t, 7, result[0].Availables)
		assert.Equal(t, 10, result[1].Availables)
	})

	t.Run("each reservation lands on the first duplicate independently", func(t *testing.T) {
		dup := []types.TimeString{mustTime(t, "10:00"), mustTime(t, "10:00")}
		shifts := []*domain.Shift{
			{TimeStart: mustTime(t, "10:00"), PeopleQty: 3, Status: domain.StatusPaid},
			{TimeStart: mustTime(t, "10:00"), PeopleQty: 2, Status: domain.StatusConfirmed},
		}

		result := applyOccupancy(dup, 10, shifts)

		assert.Equal(t, 5, result[0].Availables)
		assert.Equal(t, 10, result[1].Availables)
	})
}
