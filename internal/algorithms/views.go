package algorithms

import "vagaspg_backend/internal/models"

// JobFilter is the filter state of a job list view.
type JobFilter struct {
	Query        string
	City         string
	ContractType string
	WorkMode     string
	Status       string
}

// ApplicationFilter is the filter state of an application list view.
type ApplicationFilter struct {
	Query  string
	Status string
	JobID  string
}

// CompanyFilter is the filter state of the admin company list.
type CompanyFilter struct {
	Query  string
	Status string
}

// FilterPublicJobs searches title, description, company name and location.
func FilterPublicJobs(jobs []models.Job, f JobFilter) []models.Job {
	return Filter(jobs, Query[models.Job]{
		Text: f.Query,
		TextFields: []func(models.Job) string{
			func(j models.Job) string { return j.Title },
			func(j models.Job) string { return j.Description },
			func(j models.Job) string { return j.CompanyName() },
			func(j models.Job) string { return j.Location },
		},
		Categories: jobCategories(f),
	})
}

// FilterCompanyJobs searches title and description (the dashboard view).
func FilterCompanyJobs(jobs []models.Job, f JobFilter) []models.Job {
	return Filter(jobs, Query[models.Job]{
		Text: f.Query,
		TextFields: []func(models.Job) string{
			func(j models.Job) string { return j.Title },
			func(j models.Job) string { return j.Description },
		},
		Categories: jobCategories(f),
	})
}

// FilterAdminJobs searches title and company name.
func FilterAdminJobs(jobs []models.Job, f JobFilter) []models.Job {
	return Filter(jobs, Query[models.Job]{
		Text: f.Query,
		TextFields: []func(models.Job) string{
			func(j models.Job) string { return j.Title },
			func(j models.Job) string { return j.CompanyName() },
		},
		Categories: jobCategories(f),
	})
}

func jobCategories(f JobFilter) []Category[models.Job] {
	return []Category[models.Job]{
		{
			Value: f.City,
			Match: func(j models.Job, city string) bool {
				return CityMatches(city, j.Location, j.CompanyCity())
			},
		},
		{Value: f.ContractType, Field: func(j models.Job) string { return string(j.ContractType) }},
		{Value: f.WorkMode, Field: func(j models.Job) string { return string(j.WorkMode) }},
		{Value: f.Status, Field: func(j models.Job) string { return string(j.Status) }},
	}
}

// FilterApplications searches candidate name, email and job title.
func FilterApplications(apps []models.Application, f ApplicationFilter) []models.Application {
	return Filter(apps, Query[models.Application]{
		Text: f.Query,
		TextFields: []func(models.Application) string{
			func(a models.Application) string { return a.CandidateName },
			func(a models.Application) string { return a.CandidateEmail },
			func(a models.Application) string { return a.JobTitle() },
		},
		Categories: []Category[models.Application]{
			{Value: f.Status, Field: func(a models.Application) string { return string(a.Status) }},
			{Value: f.JobID, Field: func(a models.Application) string { return a.JobID }},
		},
	})
}

// FilterCompanies searches name, email and registration number.
func FilterCompanies(companies []models.Company, f CompanyFilter) []models.Company {
	return Filter(companies, Query[models.Company]{
		Text: f.Query,
		TextFields: []func(models.Company) string{
			func(c models.Company) string { return c.Name },
			func(c models.Company) string { return c.Email },
			func(c models.Company) string { return c.RegistrationNumber },
		},
		Categories: []Category[models.Company]{
			{Value: f.Status, Field: func(c models.Company) string { return string(c.Status) }},
		},
	})
}
