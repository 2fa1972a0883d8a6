package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"ai-placement-tracker/internal/events"
	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/repositories"
)

type ApplicationHandler struct {
	userRepo  repositories.UserRepository
	appRepo   repositories.ApplicationRepository
	publisher events.Publisher
}

func NewApplicationHandler(
	userRepo repositories.UserRepository,
	appRepo repositories.ApplicationRepository,
	publisher events.Publisher,
) *ApplicationHandler {
	return &ApplicationHandler{
		userRepo:  userRepo,
		appRepo:   appRepo,
		publisher: publisher,
	}
}

func (h *ApplicationHandler) HandleCreateApplication(c *fiber.Ctx) error {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "invalid user id")
	}

	var req models.CreateApplicationRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	exists, err := h.userRepo.Exists(userID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	if !exists {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}

	status := req.Status
	if status == "" {
		status = models.StatusApplied
	}

	app := models.Application{
		CompanyName: req.CompanyName,
		RoleTitle:   req.RoleTitle,
		JobLink:     req.JobLink,
		Status:      status,
		DateApplied: time.Now(),
		UserID:      userID,
	}
	if err := h.appRepo.Create(&app); err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("❌ Failed to create application")
		return errorJSON(c, fiber.StatusInternalServerError, "failed to create application")
	}

	publish(c, h.publisher, events.Event{
		Type:       events.TypeApplicationCreated,
		UserID:     userID,
		EntityID:   app.ID,
		OccurredAt: app.DateApplied,
		Payload: fiber.Map{
			"company_name": app.CompanyName,
			"role_title":   app.RoleTitle,
			"status":       app.Status,
		},
	})

	return c.JSON(models.NewApplicationResponse(app))
}

func (h *ApplicationHandler) HandleListApplications(c *fiber.Ctx) error {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "invalid user id")
	}

	apps, err := h.appRepo.FindByUserID(userID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]models.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, models.NewApplicationResponse(app))
	}

	return c.JSON(out)
}

// publish never fails the request; broker errors are only logged.
func publish(c *fiber.Ctx, publisher events.Publisher, event events.Event) {
	if err := publisher.Publish(c.UserContext(), event); err != nil {
		log.Warn().Err(err).Str("event", event.Key()).Msg("⚠️  Failed to publish event")
	}
}
