package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"ai-placement-tracker/internal/events"
	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/repositories"
	"ai-placement-tracker/internal/services"
)

type InterviewHandler struct {
	evaluator      services.AnswerEvaluator
	audioAnalyzer  services.AudioAnalyzer
	storageService services.StorageService
	userRepo       repositories.UserRepository
	interviewRepo  repositories.InterviewRepository
	publisher      events.Publisher
	maxFileSize    int64
}

func NewInterviewHandler(
	evaluator services.AnswerEvaluator,
	audioAnalyzer services.AudioAnalyzer,
	storageService services.StorageService,
	userRepo repositories.UserRepository,
	interviewRepo repositories.InterviewRepository,
	publisher events.Publisher,
	maxFileSize int64,
) *InterviewHandler {
	return &InterviewHandler{
		evaluator:      evaluator,
		audioAnalyzer:  audioAnalyzer,
		storageService: storageService,
		userRepo:       userRepo,
		interviewRepo:  interviewRepo,
		publisher:      publisher,
		maxFileSize:    maxFileSize,
	}
}

func (h *InterviewHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.AnswerSubmission
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	if req.UserID != nil {
		if ok, err := h.requireUser(c, *req.UserID); !ok {
			return err
		}
	}

	result, err := h.evaluator.Evaluate(c.UserContext(), req.StudentAnswer, req.IdealAnswer)
	if err != nil {
		log.Error().Err(err).Msg("❌ Failed to evaluate answer")
		return errorJSON(c, fiber.StatusInternalServerError, "failed to evaluate answer")
	}

	if req.UserID != nil {
		score := result.Score
		feedback := result.Feedback
		interview := models.MockInterview{
			InterviewType: models.InterviewTheory,
			Score:         &score,
			Feedback:      &feedback,
			UserID:        *req.UserID,
		}
		attempt := models.Attempt{
			UserID:       *req.UserID,
			QuestionKind: models.KindTheory,
			QuestionID:   req.QuestionID,
			Score:        score,
		}
		if err := h.record(c, &interview, &attempt); err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, "failed to save interview")
		}
	}

	return c.JSON(models.AIResponse{
		Score:    result.Score,
		Feedback: result.Feedback,
	})
}

func (h *InterviewHandler) HandleAnalyzeAudio(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "audio file is required")
	}
	if file.Size > h.maxFileSize {
		return errorJSON(c, fiber.StatusBadRequest, fmt.Sprintf("Audio file too large. Max size: %d bytes", h.maxFileSize))
	}

	var userID *uint
	if raw := c.FormValue("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return errorJSON(c, fiber.StatusBadRequest, "invalid user id")
		}
		uid := uint(id)
		if ok, err := h.requireUser(c, uid); !ok {
			return err
		}
		userID = &uid
	}

	filename, filePath, err := h.storageService.SaveFile(file, "audio", services.AudioExtensions)
	if err != nil {
		if errors.Is(err, services.ErrInvalidExtension) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		return errorJSON(c, fiber.StatusInternalServerError, fmt.Sprintf("failed to save audio file: %v", err))
	}
	defer func() {
		if err := h.storageService.DeleteFile(filename); err != nil {
			log.Warn().Err(err).Str("file", filename).Msg("⚠️  Failed to remove temporary audio")
		}
	}()

	report, err := h.audioAnalyzer.Analyze(c.UserContext(), filePath)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedAudio) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		log.Error().Err(err).Msg("❌ Failed to analyze audio")
		return errorJSON(c, fiber.StatusInternalServerError, "failed to analyze audio")
	}

	if userID != nil {
		score := float64(report.FluencyScore)
		transcript := report.Transcript
		details := report.Details
		breakdown, err := json.Marshal(report.Breakdown)
		if err != nil {
			log.Error().Err(err).Msg("❌ Failed to encode filler breakdown")
			return errorJSON(c, fiber.StatusInternalServerError, "failed to save interview")
		}
		interview := models.MockInterview{
			InterviewType: models.InterviewAudio,
			Transcript:    &transcript,
			Score:         &score,
			Feedback:      &details,
			Details:       datatypes.JSON(breakdown),
			UserID:        *userID,
		}
		attempt := models.Attempt{
			UserID:       *userID,
			QuestionKind: models.KindAudio,
			Score:        score,
		}
		if err := h.record(c, &interview, &attempt); err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, "failed to save interview")
		}
	}

	return c.JSON(models.AudioAnalysisResponse{
		Transcript:   report.Transcript,
		FillerCount:  report.FillerCount,
		Details:      report.Details,
		FluencyScore: report.FluencyScore,
	})
}

func (h *InterviewHandler) HandleHistory(c *fiber.Ctx) error {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "invalid user id")
	}
	if ok, err := h.requireUser(c, userID); !ok {
		return err
	}

	interviews, err := h.interviewRepo.FindInterviewsByUserID(userID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	attempts, err := h.interviewRepo.FindAttemptsByUserID(userID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	if interviews == nil {
		interviews = []models.MockInterview{}
	}
	if attempts == nil {
		attempts = []models.Attempt{}
	}

	return c.JSON(models.HistoryResponse{
		Interviews: interviews,
		Attempts:   attempts,
	})
}

// requireUser writes a 404 and reports false when the user does not exist.
func (h *InterviewHandler) requireUser(c *fiber.Ctx, userID uint) (bool, error) {
	exists, err := h.userRepo.Exists(userID)
	if err != nil {
		return false, errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	if !exists {
		return false, errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	return true, nil
}

func (h *InterviewHandler) record(c *fiber.Ctx, interview *models.MockInterview, attempt *models.Attempt) error {
	if err := h.interviewRepo.Record(interview, attempt); err != nil {
		log.Error().Err(err).Uint("user_id", interview.UserID).Msg("❌ Failed to record interview")
		return err
	}

	publish(c, h.publisher, events.Event{
		Type:       events.TypeInterviewScored,
		UserID:     interview.UserID,
		EntityID:   interview.ID,
		OccurredAt: interview.CreatedAt,
		Payload: fiber.Map{
			"interview_type": interview.InterviewType,
			"score":          attempt.Score,
		},
	})
	return nil
}
