package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinDurationHours = 1
	MaxDurationHours = 24

	MinRating = 1
	MaxRating = 5

	MaxInstructionsLength       = 1000
	MaxCancellationReasonLength = 500

	// Начало кандидатного расписания: сегодня + RecommendationLeadDays
	RecommendationLeadDays = 2

	// Количество альтернативных дат, предлагаемых при конфликте
	ConflictAlternativeCount = 7

	// Время, на которое предлагается перенести конфликтующее бронирование
	ConflictAlternativeTime = "08:00"
)

// Placeholder aggregate figures for scheduling recommendations.
// Иллюстративные оценки, не выводятся из самого расписания
const (
	EstimatedSavingsPerRecommendation   = 500.0 // SAR
	EstimatedDaysSavedPerRecommendation = 0.5
	EstimatedEfficiencyPercent          = 85.0
)
