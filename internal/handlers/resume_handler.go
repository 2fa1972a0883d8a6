package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/services"
)

type ResumeHandler struct {
	storageService services.StorageService
	analyzer       services.ResumeAnalyzer
	maxFileSize    int64
}

func NewResumeHandler(storageService services.StorageService, analyzer services.ResumeAnalyzer, maxFileSize int64) *ResumeHandler {
	return &ResumeHandler{
		storageService: storageService,
		analyzer:       analyzer,
		maxFileSize:    maxFileSize,
	}
}

func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "resume file is required")
	}
	if file.Size > h.maxFileSize {
		return errorJSON(c, fiber.StatusBadRequest, fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	filename, filePath, err := h.storageService.SaveFile(file, "resume", services.PDFExtensions)
	if err != nil {
		if errors.Is(err, services.ErrInvalidExtension) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		return errorJSON(c, fiber.StatusInternalServerError, fmt.Sprintf("failed to save resume: %v", err))
	}
	defer func() {
		if err := h.storageService.DeleteFile(filename); err != nil {
			log.Warn().Err(err).Str("file", filename).Msg("⚠️  Failed to remove temporary resume")
		}
	}()

	resp := models.ResumeResponse{
		Filename:        file.Filename,
		SuggestedTopics: []string{},
	}

	report, err := h.analyzer.Analyze(filePath)
	switch {
	case errors.Is(err, services.ErrNoPDFText):
		// scanned resumes carry no text layer; nothing to suggest
		log.Info().Str("file", file.Filename).Msg("📄 Resume has no extractable text")
	case err != nil:
		log.Error().Err(err).Str("file", file.Filename).Msg("❌ Failed to parse resume")
		return errorJSON(c, fiber.StatusInternalServerError, "failed to parse resume")
	default:
		resp.SuggestedTopics = report.SuggestedTopics
		resp.CharacterCount = services.CharacterCount(report.Text)
	}

	return c.JSON(resp)
}
