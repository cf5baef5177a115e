package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	HealthHandler      *HealthHandler
	AuthHandler        *AuthHandler
	RegistryHandler    *RegistryHandler
	CompanyHandler     *CompanyHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	PaymentHandler     *PaymentHandler
	AssistantHandler   *AssistantHandler
	AdminHandler       *AdminHandler
}
