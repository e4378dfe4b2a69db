package handlers

import (
	"errors"

	"fish-tracker-system/middleware"
	"fish-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupBattleRoutes(app *fiber.App, battleService *services.BattleService) {
	secured := app.Group("/battle", middleware.UserContextMiddleware())

	// POST /battle/simulate — run a full fight between two dex entries.
	// Passing a non-zero seed reproduces the same fight exactly.
	secured.Post("/simulate", func(c *fiber.Ctx) error {
		type Req struct {
			FishDexID1 string `json:"fishDexId1"`
			FishDexID2 string `json:"fishDexId2"`
			Seed       int64  `json:"seed,omitempty"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.FishDexID1 == "" || req.FishDexID2 == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "fishDexId1 and fishDexId2 are required",
			})
		}

		result, err := battleService.Simulate(req.FishDexID1, req.FishDexID2, req.Seed)
		if err != nil {
			if errors.Is(err, services.ErrDexEntryNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "battle simulation failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(result)
	})
}
