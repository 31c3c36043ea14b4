package recommend_scheduling

import (
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
)

// Статические строки погодных заметок
// Реальные погодные данные не запрашиваются
const weatherImpactModerate = "متوسط"

var weatherAdjustments = []string{
	"يفضل البدء في الساعات الباكرة لتجنب ذروة الحرارة",
	"متابعة النشرة الجوية قبل الموعد بيوم واحد",
}

// buildRecommendations строит рекомендованный календарь для типов услуг,
// ещё не имеющих бронирования в проекте
// Жадный однопроходный алгоритм: фиксированный порядок типов, кандидатная
// дата стартует с now+2 дня и после каждой рекомендации сдвигается
// на буфер рекомендованного типа
func buildRecommendations(bookings []*domain.Booking, now time.Time) []Recommendation {
	booked := make(map[domain.ServiceType]bool)
	for _, b := range bookings {
		if b.IsActive() {
			booked[b.ServiceType] = true
		}
	}

	candidateDate := domain.DateOnly(now).AddDate(0, 0, domain.RecommendationLeadDays)

	recommendations := make([]Recommendation, 0)

	for _, serviceType := range domain.RecommendationOrder {
		if booked[serviceType] {
			continue
		}

		spec := domain.ServiceTypeSpecs[serviceType]

		recommendations = append(recommendations, Recommendation{
			ServiceType:   serviceType,
			Date:          candidateDate,
			Time:          spec.OptimalTime,
			Priority:      spec.Priority,
			Justification: spec.Justification,
			DependsOn:     spec.DependsOn,
		})

		candidateDate = candidateDate.AddDate(0, 0, spec.BufferDays)
	}

	return recommendations
}

// buildBenefit вычисляет агрегированные оценки выгоды
// Формулы фиксированы: count*500 SAR, count*0.5 дня, 85% эффективности
func buildBenefit(recommendations []Recommendation) OptimizationBenefit {
	count := float64(len(recommendations))
	return OptimizationBenefit{
		CostSavings:       count * domain.EstimatedSavingsPerRecommendation,
		TimeSavingsDays:   count * domain.EstimatedDaysSavedPerRecommendation,
		EfficiencyPercent: domain.EstimatedEfficiencyPercent,
	}
}

// buildWeatherNotes строит статические погодные заметки
// по одной на каждую рекомендованную услугу
func buildWeatherNotes(recommendations []Recommendation) []WeatherNote {
	notes := make([]WeatherNote, 0, len(recommendations))
	for _, rec := range recommendations {
		notes = append(notes, WeatherNote{
			ServiceType: rec.ServiceType,
			Impact:      weatherImpactModerate,
			Adjustments: weatherAdjustments,
		})
	}
	return notes
}
