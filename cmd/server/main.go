package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Rashed1879/talk-trove-server/config"
	"github.com/Rashed1879/talk-trove-server/internal/auth"
	"github.com/Rashed1879/talk-trove-server/internal/classes"
	"github.com/Rashed1879/talk-trove-server/internal/health"
	"github.com/Rashed1879/talk-trove-server/internal/infrastructure/database"
	"github.com/Rashed1879/talk-trove-server/internal/middleware"
	"github.com/Rashed1879/talk-trove-server/internal/users"
	"github.com/gin-gonic/gin"
)

func main() {
	// 0. Load Config
	env := os.Getenv("APP_ENV")
	cfg, err := config.Load(env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 1. Setup
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.CORS())

	// 2. Database
	ctx := context.Background()
	client, err := database.NewMongoClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Failed to disconnect from database: %v", err)
		}
	}()

	db := client.Database(cfg.DB.Name)
	userRepo := users.NewRepository(db.Collection("users"))
	classRepo := classes.NewRepository(db.Collection("classes"))

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// 3. Services & Middleware
	jwtService := auth.NewJWTService(cfg.JWT.Secret, time.Hour)
	authenticated := middleware.Authenticate(jwtService)
	adminOnly := middleware.RequireRole(userRepo, users.RoleAdmin)
	instructorOnly := middleware.RequireRole(userRepo, users.RoleInstructor)

	// Dev UX: Print a valid token for testing
	if cfg.Server.Mode == "debug" {
		devToken, _ := jwtService.GenerateToken("admin@talktrove.dev")
		log.Printf("[DEV MODE] Access Token: %s", devToken)
	}

	// 4. Handlers
	authHandler := auth.NewHandler(jwtService)
	userHandler := users.NewHandler(userRepo)
	classHandler := classes.NewHandler(classRepo)
	healthHandler := health.NewHealthHandler()

	// 5. Routes
	// Public
	r.GET("/", func(c *gin.Context) {
		c.String(200, "Server is Running")
	})
	r.GET("/health", healthHandler.Check)
	r.POST("/jwt", authHandler.Issue)
	r.POST("/users", userHandler.Register)

	// Authenticated
	r.GET("/users/admin/:email", authenticated, userHandler.CheckAdmin)
	r.GET("/users/instructor/:email", authenticated, userHandler.CheckInstructor)

	// Admin
	r.GET("/users", authenticated, adminOnly, userHandler.List)
	r.PATCH("/users/admin/:id", authenticated, adminOnly, userHandler.PromoteAdmin)
	r.PATCH("/users/instructor/:id", authenticated, adminOnly, userHandler.PromoteInstructor)
	r.GET("/classes", authenticated, adminOnly, classHandler.List)
	r.PATCH("/classes/approve/:id", authenticated, adminOnly, classHandler.Approve)
	r.PATCH("/classes/deny/:id", authenticated, adminOnly, classHandler.Deny)
	r.PATCH("/classes/feedback/:id", authenticated, adminOnly, classHandler.Feedback)

	// Instructor
	r.GET("/classes/:email", authenticated, instructorOnly, classHandler.ListByInstructor)
	r.POST("/classes", authenticated, instructorOnly, classHandler.Create)

	// 6. Run
	addr := ":" + cfg.Server.Port
	log.Printf("Starting TalkTrove server on %s (env: %s)", addr, env)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
