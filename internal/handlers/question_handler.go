package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/repositories"
	"ai-placement-tracker/internal/services"
)

type QuestionHandler struct {
	questionRepo repositories.QuestionRepository
	finder       services.QuestionFinder
}

func NewQuestionHandler(questionRepo repositories.QuestionRepository, finder services.QuestionFinder) *QuestionHandler {
	return &QuestionHandler{
		questionRepo: questionRepo,
		finder:       finder,
	}
}

func (h *QuestionHandler) HandleRandomTheory(c *fiber.Ctx) error {
	q, err := h.questionRepo.RandomTheory(c.Query("subject"))
	if err != nil {
		return questionError(c, err)
	}
	return c.JSON(q)
}

func (h *QuestionHandler) HandleRandomCoding(c *fiber.Ctx) error {
	q, err := h.questionRepo.RandomCoding()
	if err != nil {
		return questionError(c, err)
	}
	return c.JSON(q)
}

// HandleSearch finds the question that best matches ?topic=, coding by default.
func (h *QuestionHandler) HandleSearch(c *fiber.Ctx) error {
	topic := c.Query("topic")
	if topic == "" {
		return errorJSON(c, fiber.StatusBadRequest, "topic is required")
	}

	switch models.QuestionKind(c.Query("type", string(models.KindCoding))) {
	case models.KindCoding:
		q, err := h.finder.FindCoding(c.UserContext(), topic)
		if err != nil {
			return questionError(c, err)
		}
		return c.JSON(q)
	case models.KindTheory:
		q, err := h.finder.FindTheory(c.UserContext(), topic)
		if err != nil {
			return questionError(c, err)
		}
		return c.JSON(q)
	default:
		return errorJSON(c, fiber.StatusBadRequest, "type must be coding or theory")
	}
}

func questionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return errorJSON(c, fiber.StatusNotFound, "No questions found")
	}
	return errorJSON(c, fiber.StatusInternalServerError, err.Error())
}
