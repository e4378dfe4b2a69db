package handlers

import (
	"fish-tracker-system/middleware"
	"fish-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupChallengeRoutes(app *fiber.App, challengeService *services.ChallengeService) {
	secured := app.Group("/challenges", middleware.UserContextMiddleware())

	// GET /challenges — today's challenges joined with the caller's progress
	secured.Get("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		challenges, err := challengeService.GetUserProgress(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch challenges",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"challenges": challenges})
	})

	// POST /challenges/regenerate — destructive: rolls a fresh global set
	// for today and forgets everyone's progress on the old one.
	secured.Post("/regenerate", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		if _, err := challengeService.RegenerateTodaysChallenges(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to regenerate challenges",
				"cause": err.Error(),
			})
		}

		challenges, err := challengeService.GetUserProgress(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch regenerated challenges",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"challenges": challenges})
	})
}
