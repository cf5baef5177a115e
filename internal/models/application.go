package models

import "gorm.io/datatypes"

// Application is a candidate's submission to a job. Never edited by the candidate after creation.
type Application struct {
	BaseModel
	JobID           string            `gorm:"type:varchar(36);index;not null" json:"job_id"`
	Job             *Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	CandidateName   string            `gorm:"not null" json:"candidate_name"`
	CandidateEmail  string            `gorm:"not null" json:"candidate_email"`
	CandidatePhone  string            `gorm:"not null" json:"candidate_phone"`
	LinkedInURL     string            `json:"linkedin_url"`
	YearsExperience *int              `json:"years_experience"`
	CurrentPosition string            `json:"current_position"`
	Education       string            `gorm:"type:text" json:"education"`
	Skills          datatypes.JSON    `json:"skills"`
	CoverLetter     string            `gorm:"type:text" json:"cover_letter"`
	ResumeURL       string            `json:"resume_url"`
	ResumePath      string            `json:"-"`
	Status          ApplicationStatus `gorm:"type:varchar(20);not null;index" json:"status"`
}

func (a *Application) GetSkills() []string {
	return decodeList(a.Skills)
}

func (a *Application) SetSkills(skills []string) {
	a.Skills = encodeList(skills)
}

func (a *Application) JobTitle() string {
	if a.Job == nil {
		return ""
	}
	return a.Job.Title
}
