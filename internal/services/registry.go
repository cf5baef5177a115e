package services

import (
	"vagaspg_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService        AuthService
	CompanyService     CompanyService
	JobService         JobService
	ApplicationService ApplicationService
	PaymentService     PaymentService
	AssistantService   AssistantService
	RegistryService    RegistryService
	UploadService      UploadService
	Storage            storage.Storage
}
