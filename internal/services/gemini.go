package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// maxEmbedChars keeps a single input well inside the embedding model's token limit.
const maxEmbedChars = 40000

type Embedder interface {
	EmbedTexts(ctx context.Context, texts ...string) ([][]float32, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

type GeminiService interface {
	Embedder
	Transcriber
}

type geminiService struct {
	client          *genai.Client
	embedModel      string
	transcribeModel string
	promptBuilder   *PromptBuilder
}

func NewGeminiService(ctx context.Context, apiKey, embedModel, transcribeModel string) (GeminiService, error) {
	if apiKey == "" {
		log.Warn().Msg("⚠️  GEMINI_API_KEY is empty, AI calls will fail")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:          client,
		embedModel:      embedModel,
		transcribeModel: transcribeModel,
		promptBuilder:   NewPromptBuilder(),
	}, nil
}

// EmbedTexts embeds all texts in one request and returns vectors in input order.
func (g *geminiService) EmbedTexts(ctx context.Context, texts ...string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.NewContentFromText(truncateUTF8(text, maxEmbedChars), genai.RoleUser))
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("unexpected embedding result for %d inputs", len(texts))
	}

	vectors := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("empty embedding for input %d", i)
		}
		vectors[i] = emb.Values
	}
	return vectors, nil
}

func (g *geminiService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	temperature := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 8192,
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(g.promptBuilder.BuildTranscriptionPrompt()),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.transcribeModel, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no transcription generated (nil response)")
	}

	return strings.TrimSpace(resp.Text()), nil
}

// truncateUTF8 cuts s to at most max bytes without splitting a rune.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	i := max
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return s[:i]
}
