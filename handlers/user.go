package handlers

import (
	"errors"

	"fish-tracker-system/middleware"
	"fish-tracker-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	secured := app.Group("/user", middleware.UserContextMiddleware())

	// GET /user — the caller's profile including the coin balance
	secured.Get("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		var user models.User
		if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch user",
				"cause": err.Error(),
			})
		}

		return c.JSON(fiber.Map{"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"image": user.Image,
			"coins": user.Coins,
		}})
	})
}
