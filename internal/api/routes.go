package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	days := api.Group("/days", handler.AuthRequired)
	days.Get("", handler.GetRecentDays)
	days.Get("/range", handler.GetDaysRange)
	days.Get("/:date", handler.GetDay)
	days.Post("/:date", handler.UpsertDay)

	cycle := api.Group("/cycle", handler.AuthRequired)
	cycle.Get("/today", handler.CycleToday)
	cycle.Get("/:date", handler.CycleForDate)

	quiz := api.Group("/quiz", handler.AuthRequired)
	quiz.Get("/:topic/:level", handler.GetQuiz)
	quiz.Post("/:topic/:level/start", handler.StartQuiz)
	quiz.Post("/:topic/:level/submit", handler.SubmitQuiz)

	challenges := api.Group("/challenges", handler.AuthRequired)
	challenges.Get("/today", handler.TodayChallenges)
	challenges.Post("/:id/complete", handler.CompleteChallenge)

	articles := api.Group("/articles", handler.AuthRequired)
	articles.Get("", handler.ListArticles)
	articles.Post("/:id/read", handler.MarkArticleRead)

	api.Get("/progress", handler.AuthRequired, handler.GetProgress)
	api.Post("/rewards/redeem", handler.AuthRequired, handler.RedeemPoints)

	donations := api.Group("/donations")
	donations.Post("", handler.AuthRequired, handler.SubmitDonation)
	donations.Get("/mine", handler.AuthRequired, handler.ListMyDonations)
	donations.Get("", handler.AdminRequired, handler.ListDonations)
	donations.Post("/:id/approve", handler.AdminRequired, handler.ApproveDonation)
	donations.Post("/:id/reject", handler.AdminRequired, handler.RejectDonation)

	badges := api.Group("/badges", handler.AuthRequired)
	badges.Post("/mint", handler.MintBadge)
	badges.Get("/:wallet", handler.ListBadges)

	mint := api.Group("/mint")
	mint.Post("", handler.AdminRequired, handler.CreatePointsMint)
	mint.Get("/:address", handler.AuthRequired, handler.LookupPointsMint)

	proposals := api.Group("/proposals", handler.AuthRequired)
	proposals.Post("", handler.CreateProposal)
	proposals.Get("", handler.ListProposals)
	proposals.Post("/:id/vote", handler.VoteProposal)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
