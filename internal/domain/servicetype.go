package domain

import (
	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

// ServiceType represents the category of a booked construction service
type ServiceType string

const (
	ServiceEquipmentRental ServiceType = "equipment_rental"
	ServiceWasteManagement ServiceType = "waste_management"
	ServiceConcreteSupply  ServiceType = "concrete_supply"
	ServiceDesignOffice    ServiceType = "design_office"
	ServiceInsurance       ServiceType = "insurance"
)

// Priority уровень приоритета услуги в рекомендованном расписании
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ServiceTypeSpec статические правила планирования для одного типа услуги
// Все константные таблицы (длительности, времена, приоритеты, буферы,
// зависимости, цвета) собраны в одном месте, чтобы правила были обозримы
type ServiceTypeSpec struct {
	DisplayName string // Арабское отображаемое имя для календаря и UI
	Color       string // Фиксированный hex-цвет календарного события

	DefaultDurationHours int
	OptimalTime          types.TimeString // Рекомендуемое время начала
	Priority             Priority
	BufferDays           int // Сдвиг даты после рекомендации этой услуги

	// Типы услуг, от которых данная услуга логически зависит
	DependsOn []ServiceType

	// Обоснование рекомендации для пользователя
	Justification string
}

// ServiceTypeSpecs правила по каждому типу услуги
var ServiceTypeSpecs = map[ServiceType]ServiceTypeSpec{
	ServiceDesignOffice: {
		DisplayName:          "مكتب هندسي",
		Color:                "#8B5CF6",
		DefaultDurationHours: 2,
		OptimalTime:          "10:00",
		Priority:             PriorityHigh,
		BufferDays:           7,
		DependsOn:            nil,
		Justification:        "يجب البدء بالتصميم الهندسي قبل أي أعمال إنشائية",
	},
	ServiceEquipmentRental: {
		DisplayName:          "تأجير معدات",
		Color:                "#F59E0B",
		DefaultDurationHours: 8,
		OptimalTime:          "07:00",
		Priority:             PriorityHigh,
		BufferDays:           1,
		DependsOn:            nil,
		Justification:        "تجهيز المعدات مبكراً يضمن سير الأعمال دون توقف",
	},
	ServiceConcreteSupply: {
		DisplayName:          "توريد خرسانة",
		Color:                "#6B7280",
		DefaultDurationHours: 6,
		OptimalTime:          "06:00",
		Priority:             PriorityHigh,
		BufferDays:           2,
		DependsOn:            []ServiceType{ServiceDesignOffice, ServiceEquipmentRental},
		Justification:        "صب الخرسانة في الصباح الباكر يحسن جودة المعالجة",
	},
	ServiceWasteManagement: {
		DisplayName:          "إدارة النفايات",
		Color:                "#10B981",
		DefaultDurationHours: 4,
		OptimalTime:          "14:00",
		Priority:             PriorityMedium,
		BufferDays:           1,
		DependsOn:            []ServiceType{ServiceEquipmentRental, ServiceConcreteSupply},
		Justification:        "إزالة المخلفات بعد اكتمال الأعمال الإنشائية الرئيسية",
	},
	ServiceInsurance: {
		DisplayName:          "تأمين",
		Color:                "#3B82F6",
		DefaultDurationHours: 1,
		OptimalTime:          "09:00",
		Priority:             PriorityLow,
		BufferDays:           0,
		DependsOn:            nil,
		Justification:        "توثيق التأمين قبل انطلاق مرحلة التنفيذ",
	},
}

// RecommendationOrder фиксированный порядок обхода типов услуг
// при построении рекомендованного расписания
var RecommendationOrder = []ServiceType{
	ServiceDesignOffice,
	ServiceEquipmentRental,
	ServiceConcreteSupply,
	ServiceWasteManagement,
	ServiceInsurance,
}

// IsValidServiceType проверяет, что значение является известным типом услуги
func IsValidServiceType(s ServiceType) bool {
	_, ok := ServiceTypeSpecs[s]
	return ok
}

// SpecFor возвращает правила планирования для типа услуги
func SpecFor(s ServiceType) (ServiceTypeSpec, bool) {
	spec, ok := ServiceTypeSpecs[s]
	return spec, ok
}

// DefaultDurationHours возвращает длительность по умолчанию для типа услуги
// Для неизвестного типа возвращает 0
func DefaultDurationHours(s ServiceType) int {
	return ServiceTypeSpecs[s].DefaultDurationHours
}

// DisplayName возвращает арабское отображаемое имя типа услуги
// Для неизвестного типа возвращает сам тег
func DisplayName(s ServiceType) string {
	if spec, ok := ServiceTypeSpecs[s]; ok {
		return spec.DisplayName
	}
	return string(s)
}
