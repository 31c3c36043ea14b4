package providerservice

// Provider модель поставщика услуг из ProviderService
type Provider struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ServiceType string   `json:"service_type"`
	City        string   `json:"city"`
	Phone       *string  `json:"phone,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	IsActive    bool     `json:"is_active"`
}

// ErrorResponse модель ошибки от ProviderService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
