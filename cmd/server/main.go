package main

import (
	"context"
	"greenify/internal/app"
	"greenify/internal/catalog"
	"greenify/internal/config"
	"greenify/internal/game"
	"greenify/internal/i18n"
	"greenify/internal/logging"
	"greenify/internal/server"
	"greenify/internal/service"
	"greenify/internal/transport/rest"
	"greenify/internal/transport/ws"
	"math/rand"
	"net/http"
	"os"
	"time"
)

//	@title						Greenify API
//	@version					1.0
//	@description				Eco tasks, points, levels and learning games.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	logger := logging.NewLogger("greenify")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	if err := catalog.Validate(); err != nil {
		logger.Error("invalid catalog", "error", err)
		os.Exit(1)
	}
	levels, err := game.NewClassifier(catalog.GameLevels())
	if err != nil {
		logger.Error("invalid level table", "error", err)
		os.Exit(1)
	}
	defaultLang, _ := i18n.Parse(cfg.DefaultLang)

	stores, err := app.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("connect stores", "error", err)
		os.Exit(1)
	}
	defer stores.Close(ctx)

	// Initialize WebSocket hub
	wsHub := ws.NewHub(logger)
	defer wsHub.Close()

	// Initialize services
	authSvc := service.NewAuthService(stores.Users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.BcryptCost)
	progressSvc := service.NewProgressService(stores.State, stores.Leaderboard, levels, catalog.SeedTasks(), logger)
	quizSvc := service.NewQuizService(stores.QuizAttempts, progressSvc, catalog.GameQuestions, logger)
	sortingSvc := service.NewSortingService(progressSvc, catalog.WastePool(), cfg.Games.SortingTick,
		rand.New(rand.NewSource(time.Now().UnixNano())), logger)
	defer sortingSvc.Close()
	profileSvc := service.NewProfileService(stores.Users, progressSvc, stores.Leaderboard, logger)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	progressSvc.SetBroadcaster(wsHub)
	sortingSvc.SetBroadcaster(wsHub)

	container := &rest.Container{
		AuthService:     authSvc,
		ProgressService: progressSvc,
		QuizService:     quizSvc,
		SortingService:  sortingSvc,
		ProfileService:  profileSvc,
		WSHub:           wsHub,
		Languages:       i18n.NewResolver(defaultLang),
		CORS:            cfg.CORS,
		Logger:          logger,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           rest.NewRouter(container),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := server.Run(ctx, srv, cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("server stopped", "error", err)
		return
	}
	logger.Info("server exited")
}
