package api

import (
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListArticles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"articles": services.DefaultArticles()})
}

func (handler *Handler) MarkArticleRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	article, found := services.FindArticle(c.Params("id"))
	if !found {
		return apiError(c, fiber.StatusNotFound, "article not found")
	}

	awarded, err := handler.ledgerService.RecordArticleRead(user.ID, article.ID, handler.now())
	if err != nil {
		return serviceError(c, err)
	}

	balance, err := handler.ledgerService.Balance(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"points_awarded": awarded, "balance": balance})
}
