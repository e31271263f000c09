package get_available_shifts

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

// scheduleRange один рабочий интервал дня, полуинтервал [Start, End)
type scheduleRange struct {
	Start types.TimeString
	End   types.TimeString
}

// parseScheduleRanges разбирает строку расписания вида
// "09:00-13:00, 17:00-22:00" в список интервалов.
// Пустая строка означает выходной: ноль интервалов, ноль слотов.
func parseScheduleRanges(schedule string) ([]scheduleRange, error) {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		return []scheduleRange{}, nil
	}

	parts := strings.Split(schedule, ",")
	ranges := make([]scheduleRange, 0, len(parts))

	for _, part := range parts {
		bounds := strings.Split(strings.TrimSpace(part), "-")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("%w: range %q must be start-end", ErrInvalidSchedule, part)
		}

		start, err := types.NewTimeStringFromString(bounds[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}

		end, err := types.NewTimeStringFromString(bounds[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}

		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: range %q start must be before end", ErrInvalidSchedule, part)
		}

		ranges = append(ranges, scheduleRange{Start: start, End: end})
	}

	return ranges, nil
}

// generateSlots генерирует времена начала слотов по расписанию дня.
// Слоты идут с шагом duration от начала каждого интервала, строго до его
// конца: слот ровно на границе End не создаётся. Интервалы обрабатываются
// независимо, в порядке расписания: пересекающиеся интервалы дают
// дублирующиеся времена, и это сохраняется.
func generateSlots(ranges []scheduleRange, duration int) []types.TimeString {
	slots := make([]types.TimeString, 0)

	for _, r := range ranges {
		for cur := r.Start; cur.IsBefore(r.End); cur = cur.AddMinutes(duration) {
			slots = append(slots, cur)
		}
	}

	return slots
}

// applyOccupancy считает остаток мест для каждого слота.
// Каждый слот стартует с полной вместимости точки; каждая неотменённая
// бронь дня вычитает свой peopleQty из ПЕРВОГО слота с тем же временем
// начала. При дублирующихся слотах (пересекающиеся интервалы) второй
// дубликат остаётся нетронутым.
// Брони, чьё время не совпадает ни с одним слотом сетки, не учитываются.
func applyOccupancy(slots []types.TimeString, totalCapacity int, shifts []*domain.Shift) []Slot {
	result := make([]Slot, len(slots))
	for i, slotStart := range slots {
		result[i] = Slot{
			InitialTime: slotStart,
			Availables:  totalCapacity,
		}
	}

	for _, s := range shifts {
		if !s.OccupiesSlot() {
			continue
		}
		for i := range result {
			if result[i].InitialTime.Equal(s.TimeStart) {
				result[i].Availables -= s.PeopleQty
				break
			}
		}
	}

	return result
}
