package handlers

import (
	"errors"

	"fish-tracker-system/middleware"
	"fish-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupFishRoutes(app *fiber.App, fishService *services.FishService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	// GET /fish — the catalog mirror with latest sightings
	secured.Get("/fish", func(c *fiber.Ctx) error {
		fishes, err := fishService.ListFish()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch fish",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"fish": fishes})
	})

	// GET /fish/:fishId/insights — deterministic pseudo-insights
	secured.Get("/fish/:fishId/insights", func(c *fiber.Ctx) error {
		fish, err := fishService.GetFish(c.Params("fishId"))
		if err != nil {
			if errors.Is(err, services.ErrFishNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "fish not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch fish",
				"cause": err.Error(),
			})
		}

		var lat, lng float64
		if fish.LatestSightingLatitude != nil {
			lat = *fish.LatestSightingLatitude
		}
		if fish.LatestSightingLongitude != nil {
			lng = *fish.LatestSightingLongitude
		}

		insights := services.GenerateFishInsights(fish.Name, fish.Rarity, lat, lng)
		return c.JSON(fiber.Map{"insights": insights})
	})

	// POST /fish-sightings — forward a sighting to the external API and
	// refresh the local mirror row
	secured.Post("/fish-sightings", func(c *fiber.Ctx) error {
		var report services.SightingReport
		if err := c.BodyParser(&report); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if report.FishID == "" || report.Timestamp == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "missing required fields: fishId, latitude, longitude, timestamp",
			})
		}

		if err := fishService.ReportSighting(report); err != nil {
			if errors.Is(err, services.ErrOutsideDivingArea) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "sighting is outside the diving center radius"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create sighting",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"success": true})
	})

	// GET /diving-centers — seeded dive locations
	secured.Get("/diving-centers", func(c *fiber.Ctx) error {
		centers, err := fishService.ListDivingCenters()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch diving centers",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"divingCenters": centers})
	})
}
