package api

import (
	"errors"
	"strings"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type registerRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	WalletAddress string `json:"wallet_address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if req.Name == "" || email == "" || len(req.Password) < 8 {
		return apiError(c, fiber.StatusBadRequest, "name, email and a password of at least 8 characters are required")
	}

	if _, err := handler.repositories.Users.FindByNormalizedEmail(email); err == nil {
		return apiError(c, fiber.StatusConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}

	user := models.User{
		Name:          req.Name,
		Email:         email,
		PasswordHash:  string(hash),
		WalletAddress: strings.TrimSpace(req.WalletAddress),
		CreatedAt:     handler.now(),
	}
	if err := handler.repositories.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already registered")
	}

	token, err := handler.buildAuthToken(user.ID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.Status(fiber.StatusCreated).JSON(authResponse{Token: token, User: user})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.repositories.Users.FindByNormalizedEmail(normalizeEmail(req.Email))
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := handler.buildAuthToken(user.ID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(authResponse{Token: token, User: user})
}
