package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"fish-tracker-system/middleware"
	"fish-tracker-system/services"
	"fish-tracker-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupFishDexRoutes(app *fiber.App, dexService *services.FishDexService) {
	secured := app.Group("/fishdex", middleware.UserContextMiddleware())

	// GET /fishdex — the caller's collection
	secured.Get("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		entries, err := dexService.ListDex(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch fish dex",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"fishDex": entries})
	})

	// POST /fishdex — record a successful catch. CP is computed server-side
	// from the attempt count.
	secured.Post("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		type Req struct {
			FishID        string `json:"fishId"`
			CatchAttempts int    `json:"catchAttempts"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.FishID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "fishId is required",
			})
		}

		entry, err := dexService.AddCatch(userID, req.FishID, req.CatchAttempts)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrFishNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "fish not found"})
			case errors.Is(err, services.ErrAlreadyInDex):
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "fish already in dex"})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "failed to add fish to dex",
					"cause": err.Error(),
				})
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"entry": entry,
			"tier":  services.CPTier(entry.CPScore),
		})
	})

	// DELETE /fishdex/:fishId — remove a fish from the collection
	secured.Delete("/:fishId", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		fishID := c.Params("fishId")

		if err := dexService.RemoveEntry(userID, fishID); err != nil {
			if errors.Is(err, services.ErrNotInDex) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "fish not found in dex"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to delete fish from dex",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"success": true, "deleted": true})
	})

	// POST /fishdex/:dexId/photo — attach a catch photo, stored in R2
	secured.Post("/:dexId/photo", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		dexID := c.Params("dexId")

		if _, err := dexService.GetEntry(userID, dexID); err != nil {
			if errors.Is(err, services.ErrNotInDex) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "dex entry not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load dex entry",
				"cause": err.Error(),
			})
		}

		fileHeader, err := c.FormFile("photo")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "photo file is required",
			})
		}

		key := fmt.Sprintf("catches/%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))
		url, err := utils.UploadCatchPhoto(fileHeader, key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to upload photo",
				"cause": err.Error(),
			})
		}

		if err := dexService.SetPhoto(userID, dexID, url); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save photo URL",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"photo_url": url})
	})
}
