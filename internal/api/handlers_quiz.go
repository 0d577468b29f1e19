package api

import (
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

func quizLevelParams(c *fiber.Ctx) (string, int, bool) {
	topic := c.Params("topic")
	level, err := c.ParamsInt("level")
	if err != nil || level < 1 {
		return "", 0, false
	}
	return topic, level, true
}

func (handler *Handler) GetQuiz(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	topic, level, ok := quizLevelParams(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "level must be a positive number")
	}

	quizLevel, found := services.FindQuizLevel(topic, level)
	if !found {
		return serviceError(c, services.ErrQuizLevelNotFound)
	}
	return c.JSON(fiber.Map{
		"quiz":        quizLevel,
		"in_progress": handler.quizService.InProgress(user.ID, topic, level),
	})
}

func (handler *Handler) StartQuiz(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	topic, level, ok := quizLevelParams(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "level must be a positive number")
	}

	quizLevel, err := handler.quizService.Start(user.ID, topic, level, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"quiz": quizLevel})
}

type quizSubmitRequest struct {
	Answers map[string]string `json:"answers"`
}

func (handler *Handler) SubmitQuiz(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	topic, level, ok := quizLevelParams(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "level must be a positive number")
	}

	var req quizSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := handler.quizService.Submit(user.ID, topic, level, req.Answers, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}
