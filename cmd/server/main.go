package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"gamewish/internal/config"
	"gamewish/internal/database"
	"gamewish/internal/handler"
	"gamewish/internal/repository"
	"gamewish/internal/service"
	"gamewish/internal/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.EnsureAdmin(db, cfg, logger); err != nil {
		log.Fatalf("admin bootstrap: %v", err)
	}

	store, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	gameRepo := repository.NewGameRepo(db)
	priorityRepo := repository.NewPriorityRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(gameRepo, categoryRepo, ratingRepo)
	gameService := service.NewGameService(gameRepo, commentRepo, ratingRepo, priorityRepo)
	wishlistService := service.NewWishlistService(userRepo, priorityRepo, ratingRepo)
	userService := service.NewUserService(userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, store, cfg.SessionTTL)
	gameHandler := handler.NewGameHandler(catalogService, gameService)
	profileHandler := handler.NewProfileHandler(wishlistService, userService)

	r := handler.NewRouter(store, authHandler, gameHandler, profileHandler)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
