package algorithms

import (
	"testing"

	"vagaspg_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleJobs() []models.Job {
	pg := &models.Company{Name: "Padaria Central", City: "Ponta Grossa"}
	castro := &models.Company{Name: "Agro Castro", City: "Castro"}

	return []models.Job{
		{Title: "Atendente de Padaria", Description: "Atendimento ao cliente", Company: pg, ContractType: models.ContractTypeCLT, WorkMode: models.WorkModeOnSite, Status: models.JobStatusActive},
		{Title: "Desenvolvedor Go", Description: "APIs em Go", Location: "Remoto", Company: pg, ContractType: models.ContractTypePJ, WorkMode: models.WorkModeRemote, Status: models.JobStatusActive},
		{Title: "Operador de Máquinas", Description: "Colheita", Location: "Zona rural de Castro", Company: castro, ContractType: models.ContractTypeCLT, WorkMode: models.WorkModeOnSite, Status: models.JobStatusPaused},
	}
}

func titles(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	jobs := sampleJobs()

	assert.Equal(t, jobs, FilterPublicJobs(jobs, JobFilter{}))
	assert.Equal(t, jobs, FilterPublicJobs(jobs, JobFilter{Query: "   "}))
}

func TestFilter_EmptyInputGivesEmptyResult(t *testing.T) {
	for name, f := range map[string]JobFilter{
		"no filter":    {},
		"query":        {Query: "padeiro"},
		"category":     {ContractType: "CLT"},
		"query + city": {Query: "padeiro", City: "Castro"},
	} {
		for _, input := range [][]models.Job{nil, {}} {
			got := FilterPublicJobs(input, f)
			assert.NotNil(t, got, name)
			assert.Empty(t, got, name)
		}
	}

	got := FilterApplications(nil, ApplicationFilter{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_QueryMatchesTitlePrefixInAnyCase(t *testing.T) {
	jobs := []models.Job{
		{Title: "Desenvolvedor Full Stack", Status: models.JobStatusActive},
		{Title: "Auxiliar de Cozinha", Status: models.JobStatusActive},
	}

	for _, q := range []string{"desenvolvedor", "DESENVOLVEDOR", "  Desenvolvedor ", "full stack"} {
		assert.Equal(t, []string{"Desenvolvedor Full Stack"}, titles(FilterPublicJobs(jobs, JobFilter{Query: q})), q)
		assert.Equal(t, []string{"Desenvolvedor Full Stack"}, titles(FilterCompanyJobs(jobs, JobFilter{Query: q})), q)
		assert.Equal(t, []string{"Desenvolvedor Full Stack"}, titles(FilterAdminJobs(jobs, JobFilter{Query: q})), q)
	}
}

func TestFilter_TextIsCaseInsensitiveAcrossFields(t *testing.T) {
	jobs := sampleJobs()

	assert.Equal(t, []string{"Desenvolvedor Go"}, titles(FilterPublicJobs(jobs, JobFilter{Query: "apis EM go"})))
	// Company name is searched by the public view only.
	assert.Len(t, FilterPublicJobs(jobs, JobFilter{Query: "padaria central"}), 2)
	assert.Len(t, FilterCompanyJobs(jobs, JobFilter{Query: "padaria central"}), 0)
	assert.Len(t, FilterAdminJobs(jobs, JobFilter{Query: "AGRO"}), 1)
}

func TestFilter_CityMatchesLocationOrCompanyCity(t *testing.T) {
	jobs := sampleJobs()

	got := FilterPublicJobs(jobs, JobFilter{City: "ponta grossa"})
	assert.Equal(t, []string{"Atendente de Padaria", "Desenvolvedor Go"}, titles(got))

	got = FilterPublicJobs(jobs, JobFilter{City: "castro"})
	assert.Equal(t, []string{"Operador de Máquinas"}, titles(got))

	// A job located in a neighbourhood of the city matches even when the
	// company has no city of its own.
	blank := []models.Job{
		{Title: "Caixa", Location: "Centro, Ponta Grossa", Company: &models.Company{Name: "Mercado Sol"}},
		{Title: "Repositor", Location: "Centro, Castro", Company: &models.Company{Name: "Mercado Sol"}},
		{Title: "Entregador", Location: "Centro, Ponta Grossa"},
	}
	assert.Equal(t, []string{"Caixa", "Entregador"}, titles(FilterPublicJobs(blank, JobFilter{City: "ponta grossa"})))
	assert.Equal(t, []string{"Caixa", "Entregador"}, titles(FilterAdminJobs(blank, JobFilter{City: "PONTA GROSSA"})))

	// Every result satisfies the city property.
	for _, j := range FilterAdminJobs(jobs, JobFilter{City: "Grossa"}) {
		assert.True(t, CityMatches("Grossa", j.Location, j.CompanyCity()))
	}
}

func TestFilter_CategoriesCombineWithText(t *testing.T) {
	jobs := sampleJobs()

	got := FilterAdminJobs(jobs, JobFilter{ContractType: "CLT", Status: "active"})
	assert.Equal(t, []string{"Atendente de Padaria"}, titles(got))

	got = FilterAdminJobs(jobs, JobFilter{Query: "desenvolvedor", WorkMode: string(models.WorkModeOnSite)})
	assert.Empty(t, got)
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	jobs := sampleJobs()
	before := titles(jobs)

	_ = FilterPublicJobs(jobs, JobFilter{Query: "go", City: "ponta"})
	assert.Equal(t, before, titles(jobs))
}

func TestFilterApplications(t *testing.T) {
	job := &models.Job{Title: "Caixa"}
	apps := []models.Application{
		{JobID: "j1", Job: job, CandidateName: "Ana Souza", CandidateEmail: "ana@mail.com", Status: models.ApplicationStatusNew},
		{JobID: "j1", Job: job, CandidateName: "Bruno Lima", CandidateEmail: "bruno@mail.com", Status: models.ApplicationStatusRejected},
		{JobID: "j2", CandidateName: "Carla Dias", CandidateEmail: "carla@mail.com", Status: models.ApplicationStatusNew},
	}

	assert.Len(t, FilterApplications(apps, ApplicationFilter{Query: "CAIXA"}), 2)
	assert.Len(t, FilterApplications(apps, ApplicationFilter{Status: "new"}), 2)
	assert.Len(t, FilterApplications(apps, ApplicationFilter{Status: "new", JobID: "j1"}), 1)
	assert.Len(t, FilterApplications(apps, ApplicationFilter{Query: "bruno@"}), 1)
}

func TestFilterCompanies(t *testing.T) {
	companies := []models.Company{
		{Name: "Padaria Central", RegistrationNumber: "11222333000181", Status: models.CompanyStatusActive},
		{Name: "Oficina do Zé", Email: "ze@oficina.com", Status: models.CompanyStatusPending},
	}

	assert.Len(t, FilterCompanies(companies, CompanyFilter{Query: "112223"}), 1)
	assert.Len(t, FilterCompanies(companies, CompanyFilter{Status: "pending"}), 1)
	assert.Len(t, FilterCompanies(companies, CompanyFilter{Query: "oficina", Status: "active"}), 0)
}
