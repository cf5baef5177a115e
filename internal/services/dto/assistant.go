package dto

type ExtractTextRequest struct {
	Text string `json:"text" validate:"required,min=10,max=20000"`
}

type ImproveResumeRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=20,max=20000"`
}

// AssistantTextResponse wraps a free-text assistant reply.
type AssistantTextResponse struct {
	Text string `json:"text"`
}
