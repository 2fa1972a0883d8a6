package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/repositories"
)

type UserHandler struct {
	userRepo   repositories.UserRepository
	bcryptCost int
}

func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo:   userRepo,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	_, err := h.userRepo.FindByEmail(req.Email)
	switch {
	case err == nil:
		return errorJSON(c, fiber.StatusBadRequest, "Email already registered")
	case !errors.Is(err, repositories.ErrNotFound):
		log.Error().Err(err).Msg("❌ Failed to look up user by email")
		return errorJSON(c, fiber.StatusInternalServerError, "failed to create user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: string(hashed),
	}
	if err := h.userRepo.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return errorJSON(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Error().Err(err).Msg("❌ Failed to create user")
		return errorJSON(c, fiber.StatusInternalServerError, "failed to create user")
	}

	log.Info().Uint("user_id", user.ID).Msg("👤 User created")
	return c.JSON(models.NewUserResponse(user))
}

func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	id, ok := uintParam(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := h.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "User not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.NewUserResponse(*user))
}
