package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vagaspg_backend/internal/logger"
	"vagaspg_backend/pkg/apperrors"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const DefaultModel = "gemini-2.5-flash"

// Options configure location defaults for extraction.
type Options struct {
	DefaultCity   string
	CityWhitelist []string
}

// Assistant issues one model request per action. No retries, no streaming.
type Assistant struct {
	model llms.Model
	opts  Options
}

// NewGeminiModel builds the production Gemini backend.
func NewGeminiModel(ctx context.Context, apiKey, model string) (llms.Model, error) {
	if model == "" {
		model = DefaultModel
	}
	m, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return m, nil
}

func New(model llms.Model, opts Options) *Assistant {
	return &Assistant{model: model, opts: opts}
}

// ExtractFromText turns a free-text job post into a JobDraft.
func (a *Assistant) ExtractFromText(ctx context.Context, text string) (*JobDraft, error) {
	prompt := fmt.Sprintf(textExtractionPrompt, text)
	raw, err := a.generate(ctx, "extract_text", []llms.ContentPart{llms.TextPart(prompt)})
	if err != nil {
		return nil, err
	}

	parsed, err := ParseExtraction(raw)
	if err != nil {
		return nil, err
	}

	draft := Normalize(parsed, NormalizeOptions{
		DefaultCity: a.opts.DefaultCity,
		SourceText:  text,
	})
	return &draft, nil
}

// ExtractFromImage sends the image inline and restricts the location to the whitelist.
func (a *Assistant) ExtractFromImage(ctx context.Context, mimeType string, data []byte) (*JobDraft, error) {
	parts := []llms.ContentPart{
		llms.TextPart(imageExtractionPrompt),
		llms.BinaryPart(mimeType, data),
	}
	raw, err := a.generate(ctx, "extract_image", parts)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseExtraction(raw)
	if err != nil {
		return nil, err
	}

	draft := Normalize(parsed, NormalizeOptions{
		DefaultCity:   a.opts.DefaultCity,
		CityWhitelist: a.opts.CityWhitelist,
	})
	return &draft, nil
}

// ImproveResume returns free-text suggestions for the given resume text.
func (a *Assistant) ImproveResume(ctx context.Context, resumeText string) (string, error) {
	prompt := fmt.Sprintf(resumePrompt, resumeText)
	return a.generate(ctx, "improve_resume", []llms.ContentPart{llms.TextPart(prompt)})
}

// JobBrief is what InterviewTips needs to know about a job.
type JobBrief struct {
	Title        string
	Company      string
	Description  string
	Requirements string
}

func (a *Assistant) InterviewTips(ctx context.Context, job JobBrief) (string, error) {
	prompt := fmt.Sprintf(interviewPrompt, job.Title, job.Company, job.Description, job.Requirements)
	return a.generate(ctx, "interview_tips", []llms.ContentPart{llms.TextPart(prompt)})
}

func (a *Assistant) generate(ctx context.Context, op string, parts []llms.ContentPart) (string, error) {
	start := time.Now()
	msgs := []llms.MessageContent{{Role: llms.ChatMessageTypeHuman, Parts: parts}}

	resp, err := a.model.GenerateContent(ctx, msgs)
	if err != nil {
		logger.ExternalCallLog("assistant", op, time.Since(start), err)
		return "", apperrors.ErrAssistantUnavailable(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		logger.ExternalCallLog("assistant", op, time.Since(start), fmt.Errorf("no candidates"))
		return "", apperrors.ErrAssistantUnavailable(nil)
	}

	text := strings.TrimSpace(resp.Choices[0].Content)
	if text == "" {
		logger.ExternalCallLog("assistant", op, time.Since(start), fmt.Errorf("empty content"))
		return "", apperrors.ErrAssistantUnavailable(nil)
	}

	logger.ExternalCallLog("assistant", op, time.Since(start), nil)
	return text, nil
}
