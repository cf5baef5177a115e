package testutil

import (
	"fmt"
	"testing"

	"vagaspg_backend/database"
	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewTestDB opens a private in-memory sqlite database with every table migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB: %v", err)
	}
	// One connection keeps the shared in-memory database alive and avoids table locks.
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// CreateProfile inserts a profile with a hashed password.
func CreateProfile(t *testing.T, db *gorm.DB, email, password string, role models.ProfileRole) *models.Profile {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	profile := &models.Profile{Email: email, PasswordHash: hash, Role: role}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create profile %s: %v", email, err)
	}
	return profile
}

// CreateCompany inserts an active company owned by a fresh company profile.
func CreateCompany(t *testing.T, db *gorm.DB, name, city string) *models.Company {
	t.Helper()

	owner := CreateProfile(t, db, uuid.NewString()+"@empresa.test", "secret123", models.ProfileRoleCompany)
	company := &models.Company{
		OwnerID: owner.ID,
		Name:    name,
		City:    city,
		Status:  models.CompanyStatusActive,
	}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create company %s: %v", name, err)
	}
	return company
}

// CreateJob inserts a job for companyID with the given status.
func CreateJob(t *testing.T, db *gorm.DB, companyID, title string, status models.JobStatus) *models.Job {
	t.Helper()

	job := &models.Job{
		CompanyID:    companyID,
		Title:        title,
		Description:  "Descrição da vaga " + title,
		Location:     "Ponta Grossa",
		ContractType: models.ContractTypeCLT,
		WorkMode:     models.WorkModeOnSite,
		Status:       status,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to create job %s: %v", title, err)
	}
	return job
}

// CreateApplication inserts a new application; resumePath may be empty.
func CreateApplication(t *testing.T, db *gorm.DB, jobID, candidateName, resumePath string) *models.Application {
	t.Helper()

	app := &models.Application{
		JobID:          jobID,
		CandidateName:  candidateName,
		CandidateEmail: uuid.NewString() + "@candidato.test",
		CandidatePhone: "42999990000",
		ResumePath:     resumePath,
		Status:         models.ApplicationStatusNew,
	}
	if err := db.Create(app).Error; err != nil {
		t.Fatalf("failed to create application for %s: %v", candidateName, err)
	}
	return app
}

// AdminSession and CompanySession build sessions without going through sign-in.
func AdminSession(profileID string) *auth.Session {
	return auth.NewSession(profileID, "admin@vagaspg.test", models.ProfileRoleAdmin, "")
}

func CompanySession(company *models.Company) *auth.Session {
	return auth.NewSession(company.OwnerID, company.Email, models.ProfileRoleCompany, company.ID)
}

// Count returns the number of rows of model.
func Count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
