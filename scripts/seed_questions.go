package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"ai-placement-tracker/internal/config"
	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/repositories"
	"ai-placement-tracker/internal/seeds"
	"ai-placement-tracker/internal/services"
)

var errIndexFailures = errors.New("some questions failed to index")

func main() {
	index := flag.Bool("index", false, "embed the seeded questions into Qdrant right away")
	flag.Parse()

	if err := run(*index); err != nil {
		if errors.Is(err, errIndexFailures) {
			log.Warn().Msg("⚠️  Some questions failed to index. The API index worker will retry them.")
		} else {
			log.Error().Err(err).Msg("❌ Seeding failed")
		}
		os.Exit(1)
	}
}

func run(index bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	config.InitLogger(cfg)

	log.Info().Msg("🚀 Seeding question bank...")

	if index && !cfg.Qdrant.Enabled {
		return errors.New("-index requires QDRANT_ENABLED=true")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return err
	}
	questionRepo := repositories.NewQuestionRepository(db)

	var questionIndex services.QuestionIndex
	if cfg.Qdrant.Enabled {
		questionIndex, err = services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, cfg.Qdrant.VectorSize)
		if err != nil {
			return err
		}
		if err := questionIndex.InitCollection(ctx); err != nil {
			return err
		}
	}

	theory := seeds.TheoryQuestions()
	coding := seeds.CodingQuestions()
	if err := services.ReseedQuestionBank(ctx, questionRepo, questionIndex, theory, coding); err != nil {
		return fmt.Errorf("failed to seed questions: %w", err)
	}
	log.Info().Int("theory", len(theory)).Int("coding", len(coding)).Msg("✅ Question bank seeded")

	if !index {
		log.Info().Msg("ℹ️  Skipping indexing, the API index worker picks up new questions")
		return nil
	}

	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.EmbeddingModel, cfg.Gemini.TranscribeModel)
	if err != nil {
		return err
	}

	type entry struct {
		kind models.QuestionKind
		id   uint
		text string
	}
	var entries []entry
	for _, q := range theory {
		entries = append(entries, entry{models.KindTheory, q.ID, q.SearchText()})
	}
	for _, q := range coding {
		entries = append(entries, entry{models.KindCoding, q.ID, q.SearchText()})
	}

	successCount := 0
	failCount := 0

	for _, e := range entries {
		vectors, err := geminiService.EmbedTexts(ctx, e.text)
		if err != nil || len(vectors) != 1 {
			log.Error().Err(err).Str("kind", string(e.kind)).Uint("id", e.id).Msg("❌ Failed to embed question")
			failCount++
			continue
		}
		if err := questionIndex.UpsertQuestion(ctx, e.kind, e.id, e.text, vectors[0]); err != nil {
			log.Error().Err(err).Str("kind", string(e.kind)).Uint("id", e.id).Msg("❌ Failed to store question")
			failCount++
			continue
		}
		if err := questionRepo.MarkIndexed(e.kind, e.id); err != nil {
			log.Warn().Err(err).Uint("id", e.id).Msg("⚠️  Failed to mark question indexed")
		}
		successCount++
	}

	log.Info().Msg(strings.Repeat("=", 60))
	log.Info().Int("successful", successCount).Int("failed", failCount).Msg("📊 Indexing summary")
	log.Info().Msg(strings.Repeat("=", 60))

	if failCount > 0 {
		return errIndexFailures
	}

	log.Info().Msg("✅ All questions indexed successfully!")
	return nil
}
