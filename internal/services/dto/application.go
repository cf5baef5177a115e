package dto

import (
	"io"

	"vagaspg_backend/internal/models"
)

// SubmitApplicationRequest holds the multipart text fields of a submission.
// Required fields are checked by the service so every missing one is reported at once.
type SubmitApplicationRequest struct {
	CandidateName   string `form:"candidate_name"`
	CandidateEmail  string `form:"candidate_email"`
	CandidatePhone  string `form:"candidate_phone"`
	LinkedInURL     string `form:"linkedin_url"`
	YearsExperience string `form:"years_experience"`
	CurrentPosition string `form:"current_position"`
	Education       string `form:"education"`
	Skills          string `form:"skills"` // comma separated
	CoverLetter     string `form:"cover_letter"`
}

// ResumeUpload is an attached resume as received from the client.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type ApplicationListQuery struct {
	Query  string `form:"q"`
	Status string `form:"status" validate:"omitempty,is-application-status"`
	JobID  string `form:"job_id"`
}

type ContactLinkQuery struct {
	Name string `form:"name" validate:"omitempty,max=100"`
}

// ContactLinkResponse is the deep link of the direct-contact path.
type ContactLinkResponse struct {
	Method  models.ApplicationMethod `json:"method"`
	URL     string                   `json:"url"`
	Message string                   `json:"message"`
}
