package recommend_scheduling

import (
	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	recommendScheduling "github.com/mabani-platform/MBN-BookingService/internal/usecase/recommend_scheduling"
)

// RecommendationResponse предложение забронировать недостающую услугу
type RecommendationResponse struct {
	ServiceType   string   `json:"serviceType"`
	Date          string   `json:"date"` // "2025-06-01"
	Time          string   `json:"time"` // "08:00"
	Priority      string   `json:"priority"`
	Justification string   `json:"justification"`
	DependsOn     []string `json:"dependsOn"`
}

// OptimizationBenefitResponse оценки выгоды рекомендованного расписания
type OptimizationBenefitResponse struct {
	CostSavings       float64 `json:"costSavings"`
	TimeSavingsDays   float64 `json:"timeSavingsDays"`
	EfficiencyPercent float64 `json:"efficiencyPercent"`
}

// WeatherNoteResponse заметка о влиянии погоды на рекомендованную услугу
type WeatherNoteResponse struct {
	ServiceType string   `json:"serviceType"`
	Impact      string   `json:"impact"`
	Adjustments []string `json:"adjustments"`
}

// RecommendationsResponse рекомендованный календарь бронирований проекта
type RecommendationsResponse struct {
	ProjectID       string                      `json:"projectId"`
	Recommendations []RecommendationResponse    `json:"recommendations"`
	Benefit         OptimizationBenefitResponse `json:"optimizationBenefit"`
	WeatherNotes    []WeatherNoteResponse       `json:"weatherConsiderations"`
}

// FromUseCaseResponse конвертирует результат usecase в HTTP ответ
func FromUseCaseResponse(resp *recommendScheduling.Response) *RecommendationsResponse {
	recommendations := make([]RecommendationResponse, 0, len(resp.Recommendations))
	for _, rec := range resp.Recommendations {
		dependsOn := make([]string, 0, len(rec.DependsOn))
		for _, dep := range rec.DependsOn {
			dependsOn = append(dependsOn, string(dep))
		}

		recommendations = append(recommendations, RecommendationResponse{
			ServiceType:   string(rec.ServiceType),
			Date:          rec.Date.Format(domain.DateFormat),
			Time:          rec.Time.String(),
			Priority:      string(rec.Priority),
			Justification: rec.Justification,
			DependsOn:     dependsOn,
		})
	}

	weatherNotes := make([]WeatherNoteResponse, 0, len(resp.WeatherNotes))
	for _, note := range resp.WeatherNotes {
		weatherNotes = append(weatherNotes, WeatherNoteResponse{
			ServiceType: string(note.ServiceType),
			Impact:      note.Impact,
			Adjustments: note.Adjustments,
		})
	}

	return &RecommendationsResponse{
		ProjectID:       resp.ProjectID,
		Recommendations: recommendations,
		Benefit: OptimizationBenefitResponse{
			CostSavings:       resp.Benefit.CostSavings,
			TimeSavingsDays:   resp.Benefit.TimeSavingsDays,
			EfficiencyPercent: resp.Benefit.EfficiencyPercent,
		},
		WeatherNotes: weatherNotes,
	}
}
