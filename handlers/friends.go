package handlers

import (
	"errors"

	"fish-tracker-system/middleware"
	"fish-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupFriendRoutes(app *fiber.App, friendService *services.FriendService, dexService *services.FishDexService) {
	secured := app.Group("/friends", middleware.UserContextMiddleware())

	// GET /friends — friendships from both directions, flattened
	secured.Get("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		friends, err := friendService.ListFriends(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch friends",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"friends": friends})
	})

	// POST /friends — add a friend by user id
	secured.Post("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		type Req struct {
			FriendID string `json:"friendId"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil || req.FriendID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "friendId is required",
			})
		}

		friendship, err := friendService.AddFriend(userID, req.FriendID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSelfFriend):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot add yourself as a friend"})
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
			case errors.Is(err, services.ErrAlreadyFriends):
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "friendship already exists"})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "failed to add friend",
					"cause": err.Error(),
				})
			}
		}
		return c.Status(fiber.StatusCreated).JSON(friendship)
	})

	// DELETE /friends/:friendshipId
	secured.Delete("/:friendshipId", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		if err := friendService.RemoveFriend(userID, c.Params("friendshipId")); err != nil {
			if errors.Is(err, services.ErrFriendNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "friendship not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to remove friend",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"success": true})
	})

	// GET /friends/:friendId/fishdex — a friend's collection, friends only
	secured.Get("/:friendId/fishdex", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		entries, err := dexService.FriendDex(userID, c.Params("friendId"))
		if err != nil {
			if errors.Is(err, services.ErrNotFriends) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "user is not your friend"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch friend's fish dex",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"fishes": entries})
	})
}
