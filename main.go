package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fish-tracker-system/handlers"
	"fish-tracker-system/models"
	"fish-tracker-system/services"
	"fish-tracker-system/utils"
	"fish-tracker-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // catch photos
	})

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOrigins = "http://localhost:3000"
	}
	origins := strings.Split(allowedOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, X-User-ID",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	// TranslateError maps driver duplicate-key errors onto
	// gorm.ErrDuplicatedKey, which the challenge and dex services rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Fish{},
		&models.FishDexEntry{},
		&models.DailyChallenge{},
		&models.ChallengeProgress{},
		&models.Friendship{},
		&models.DivingCenter{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := services.SeedDivingCenters(db); err != nil {
		log.Fatal("failed to seed diving centers:", err)
	}

	challengeService := services.NewChallengeService(db)
	dexService := services.NewFishDexService(db, challengeService)
	battleService := services.NewBattleService(db)
	friendService := services.NewFriendService(db)
	fishService := services.NewFishService(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fishSyncClient := workers.NewFishSyncClient(db)
	go workers.PollFishCatalog(ctx, fishSyncClient, 5*time.Minute)

	challengeService.StartDailyChallengeScheduler()

	handlers.SetupChallengeRoutes(app, challengeService)
	handlers.SetupFishDexRoutes(app, dexService)
	handlers.SetupBattleRoutes(app, battleService)
	handlers.SetupFriendRoutes(app, friendService, dexService)
	handlers.SetupFishRoutes(app, fishService)
	handlers.SetupUserRoutes(app, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Fish catalog polling running (every 5m)")
	log.Println("✅ Daily challenge scheduler running")

	<-ctx.Done()
	log.Println("Shutting down server...")
}
