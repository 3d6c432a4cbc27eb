package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/jobtrail/jobtrail/internal/apperr"
	"github.com/jobtrail/jobtrail/internal/config"
	"github.com/jobtrail/jobtrail/internal/resume"
)

const defaultModel = "gpt-4o"

// Extractor turns a raw job description into the field mapping the rest of
// the pipeline consumes. It exists as an interface so the pipeline can be
// exercised without a live chat endpoint.
type Extractor interface {
	Extract(ctx context.Context, jobDescription, model string) (map[string]json.RawMessage, error)
}

// LLMService calls an OpenAI-compatible chat endpoint in JSON mode. One
// attempt per submission; a failed call surfaces to the caller, who must
// re-trigger.
type LLMService struct {
	Client llms.Model
	Cfg    *config.Config
}

func NewLLMService(cfg *config.Config) (*LLMService, error) {
	llm, err := openai.New(openai.WithToken(cfg.OpenAIAPIKey))
	if err != nil {
		return nil, apperr.E(apperr.CodeExtraction, "services.NewLLMService", "create openai client", err)
	}
	return &LLMService{Client: llm, Cfg: cfg}, nil
}

func (s *LLMService) Extract(ctx context.Context, jobDescription, model string) (map[string]json.RawMessage, error) {
	const op = "LLMService.Extract"

	if model == "" {
		model = defaultModel
	}

	resumeText, err := resume.LoadFromDir(s.Cfg.ResumeDir)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.Cfg.LLMTimeout)
	defer cancel()

	system := jobDescriptionPrompt + "\n" + coverLetterPrompt + "\n" + resumeText
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, jobDescription),
	}

	resp, err := s.Client.GenerateContent(ctx, content,
		llms.WithModel(model),
		llms.WithTemperature(s.Cfg.Temperature),
		llms.WithTopP(s.Cfg.TopP),
		llms.WithFrequencyPenalty(s.Cfg.FrequencyPenalty),
		llms.WithPresencePenalty(s.Cfg.PresencePenalty),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, apperr.E(apperr.CodeExtraction, op, "chat call failed", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return nil, apperr.E(apperr.CodeExtraction, op, "empty response from model "+model, nil)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Choices[0].Content)), &raw); err != nil {
		return nil, apperr.E(apperr.CodeExtraction, op, "response is not valid JSON", err)
	}
	return raw, nil
}
