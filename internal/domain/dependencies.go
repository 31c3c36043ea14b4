package domain

// BookingDependencies ребра зависимостей для одного бронирования
type BookingDependencies struct {
	BookingID   string
	ServiceType ServiceType
	DependsOn   []string // ID бронирований, которые логически предшествуют
	Blocks      []string // Обратные ребра не заполняются
}

// CalculateDependencies строит статический граф зависимостей по списку
// бронирований проекта. Правила фиксированы на уровне типа услуги:
//   - concrete_supply зависит от equipment_rental с датой не позже своей
//   - waste_management зависит от equipment_rental и concrete_supply
//     с датой строго раньше своей
//
// Остальные типы зависимостей не имеют. Результат детерминирован:
// порядок ребер повторяет порядок входного списка
func CalculateDependencies(bookings []*Booking) []BookingDependencies {
	result := make([]BookingDependencies, 0, len(bookings))

	for _, b := range bookings {
		deps := BookingDependencies{
			BookingID:   b.ID,
			ServiceType: b.ServiceType,
			DependsOn:   make([]string, 0),
			Blocks:      make([]string, 0),
		}

		switch b.ServiceType {
		case ServiceConcreteSupply:
			for _, other := range bookings {
				if other.ServiceType != ServiceEquipmentRental {
					continue
				}
				if !DateOnly(other.ScheduledDate).After(DateOnly(b.ScheduledDate)) {
					deps.DependsOn = append(deps.DependsOn, other.ID)
				}
			}
		case ServiceWasteManagement:
			for _, other := range bookings {
				if other.ServiceType != ServiceEquipmentRental && other.ServiceType != ServiceConcreteSupply {
					continue
				}
				if DateOnly(other.ScheduledDate).Before(DateOnly(b.ScheduledDate)) {
					deps.DependsOn = append(deps.DependsOn, other.ID)
				}
			}
		}

		result = append(result, deps)
	}

	return result
}
