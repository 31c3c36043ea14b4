package recommend_scheduling

import (
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

// Recommendation предложение забронировать ещё не запланированную услугу
type Recommendation struct {
	ServiceType   domain.ServiceType   `json:"serviceType"`
	Date          time.Time            `json:"date"`
	Time          types.TimeString     `json:"time"`
	Priority      domain.Priority      `json:"priority"`
	Justification string               `json:"justification"`
	DependsOn     []domain.ServiceType `json:"dependsOn"` // Типы услуг из таблицы правил
}

// OptimizationBenefit агрегированные оценки выгоды рекомендованного расписания
// Иллюстративные плейсхолдеры, не выводятся из самого расписания
type OptimizationBenefit struct {
	CostSavings       float64 `json:"costSavings"`       // SAR
	TimeSavingsDays   float64 `json:"timeSavingsDays"`   // Дни
	EfficiencyPercent float64 `json:"efficiencyPercent"` // Константа
}

// WeatherNote статическая заметка о влиянии погоды на рекомендованную услугу
type WeatherNote struct {
	ServiceType domain.ServiceType `json:"serviceType"`
	Impact      string             `json:"impact"`
	Adjustments []string           `json:"adjustments"`
}

// Response рекомендованный календарь бронирований проекта
type Response struct {
	ProjectID       string              `json:"projectId"`
	Recommendations []Recommendation    `json:"recommendations"`
	Benefit         OptimizationBenefit `json:"optimizationBenefit"`
	WeatherNotes    []WeatherNote       `json:"weatherConsiderations"`
}
