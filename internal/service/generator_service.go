package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/nkritika/prepforge/config"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeneratorService is the collaborator boundary to the generative model. It
// turns a topic into validated question DTOs and inserts them through the
// question bank's all-or-nothing BulkAdd; nothing downstream ever sees raw
// model text. The client is built once per process and injected, never held
// as package state.
type GeneratorService interface {
	GenerateQuestions(ctx context.Context, testID uint, req dto.GenerateQuestionsDTO) (int, error)
}

type generatorService struct {
	client      *genai.Client
	modelName   string
	questionSvc QuestionService
}

func NewGeneratorService(cfg *config.Config, questionSvc QuestionService) (GeneratorService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question generation will be unavailable.")
		return &generatorService{questionSvc: questionSvc}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	available, err := listModelNames(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to list Gemini models: %w", err)
	}
	modelName, err := pickModel(preferredModels, available)
	if err != nil {
		return nil, err
	}
	log.Info().Str("model", modelName).Msg("Generation model selected")

	return &generatorService{client: client, modelName: modelName, questionSvc: questionSvc}, nil
}

func listModelNames(ctx context.Context, client *genai.Client) ([]string, error) {
	var names []string
	it := client.ListModels(ctx)
	for {
		info, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, info.Name)
	}
	return names, nil
}

// generatedQuestion is the JSON shape the model is instructed to emit.
type generatedQuestion struct {
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation"`
}

func buildGenerationPrompt(topic string, count int) string {
	var b strings.Builder
	b.WriteString("You are an exam question writer for a competitive-exam preparation platform.\n")
	fmt.Fprintf(&b, "Write %d multiple-choice questions on the topic: %s.\n\n", count, topic)
	b.WriteString("Rules:\n")
	b.WriteString("- Each question has exactly four options, A through D, all non-empty.\n")
	b.WriteString("- Exactly one option is correct.\n")
	b.WriteString("- Include a one or two sentence explanation of the correct answer.\n\n")
	b.WriteString("Respond with a JSON array only. Each element must have the keys: ")
	b.WriteString(`"question", "option_a", "option_b", "option_c", "option_d", "correct_option", "explanation". `)
	b.WriteString(`"correct_option" is a single letter A, B, C or D.`)
	return b.String()
}

// parseGeneratedQuestions converts model output to question DTOs. Some models
// wrap JSON in code fences even when JSON response mode is requested, so the
// fences are stripped before parsing.
func parseGeneratedQuestions(raw string) ([]dto.QuestionCreateDTO, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var generated []generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &generated); err != nil {
		return nil, fmt.Errorf("model returned unparseable question JSON: %w", err)
	}

	items := make([]dto.QuestionCreateDTO, len(generated))
	for i, g := range generated {
		items[i] = dto.QuestionCreateDTO{
			TextPrimary:   strings.TrimSpace(g.Question),
			OptionA:       strings.TrimSpace(g.OptionA),
			OptionB:       strings.TrimSpace(g.OptionB),
			OptionC:       strings.TrimSpace(g.OptionC),
			OptionD:       strings.TrimSpace(g.OptionD),
			CorrectOption: strings.ToUpper(strings.TrimSpace(g.CorrectOption)),
			Explanation:   strings.TrimSpace(g.Explanation),
		}
	}
	return items, nil
}

func (s *generatorService) GenerateQuestions(ctx context.Context, testID uint, req dto.GenerateQuestionsDTO) (int, error) {
	if s.client == nil {
		return 0, fmt.Errorf("question generation is unavailable: gemini client not configured")
	}

	model := s.client.GenerativeModel(s.modelName)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildGenerationPrompt(req.Topic, req.Count)))
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Gemini generation call failed")
		return 0, fmt.Errorf("generation request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return 0, fmt.Errorf("model returned no content")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}

	items, err := parseGeneratedQuestions(raw.String())
	if err != nil {
		return 0, err
	}

	// BulkAdd revalidates every item; a bad batch from the model is rejected
	// whole rather than trimmed down to the valid subset.
	inserted, err := s.questionSvc.BulkAdd(testID, items)
	if err != nil {
		return 0, err
	}
	log.Info().Uint("test_id", testID).Int("count", inserted).Str("topic", req.Topic).Msg("Generated questions inserted")
	return inserted, nil
}
