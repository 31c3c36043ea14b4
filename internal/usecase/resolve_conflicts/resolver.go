package resolve_conflicts

import (
	"fmt"
	"sort"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

// findOverlaps находит все пары пересекающихся бронирований одного дня
// Полный проход: бронирования группируются по дате, внутри дня сортируются
// по времени начала и каждая пара (i, j>i) проверяется на пересечение,
// поэтому непересекающиеся по соседству, но пересекающиеся по факту пары
// тоже попадают в результат
func findOverlaps(bookings []*domain.Booking) []ConflictResolution {
	byDate := make(map[string][]*domain.Booking)
	dates := make([]string, 0)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		key := b.ScheduledDate.Format(domain.DateFormat)
		if _, seen := byDate[key]; !seen {
			dates = append(dates, key)
		}
		byDate[key] = append(byDate[key], b)
	}

	sort.Strings(dates)

	resolutions := make([]ConflictResolution, 0)

	for _, date := range dates {
		group := byDate[date]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].ScheduledTime.IsBefore(group[j].ScheduledTime)
		})

		// n на день мало (единицы бронирований), O(n^2) достаточно
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if !group[i].Interval().Overlaps(group[j].Interval()) {
					continue
				}
				resolutions = append(resolutions, ConflictResolution{
					First:        group[i],
					Second:       group[j],
					Type:         ResolutionReschedule,
					Alternatives: buildAlternatives(group[i]),
					Impact:       buildImpact(group[i], group[j]),
				})
			}
		}
	}

	return resolutions
}

// buildAlternatives генерирует 7 альтернативных дат для переносимого
// бронирования: смещения 1..7 дней от даты первого бронирования, всегда 08:00
func buildAlternatives(first *domain.Booking) []AlternativeSlot {
	alternatives := make([]AlternativeSlot, 0, domain.ConflictAlternativeCount)

	for offset := 1; offset <= domain.ConflictAlternativeCount; offset++ {
		alternatives = append(alternatives, AlternativeSlot{
			Date: domain.DateOnly(first.ScheduledDate).AddDate(0, 0, offset),
			Time: types.TimeString(domain.ConflictAlternativeTime),
			Justification: fmt.Sprintf("تجنب التعارض مع حجز %s المجدول مسبقاً",
				domain.DisplayName(first.ServiceType)),
		})
	}

	return alternatives
}

// buildImpact строит описательную сводку конфликта: суммарная оценочная
// стоимость и названия затронутых услуг. Только для отображения,
// в принятии решений не участвует
func buildImpact(first, second *domain.Booking) string {
	total := first.EstimatedCost + second.EstimatedCost
	return fmt.Sprintf("تعارض بين %s و %s بتكلفة إجمالية تقديرية %.2f ريال",
		domain.DisplayName(first.ServiceType),
		domain.DisplayName(second.ServiceType),
		total)
}
