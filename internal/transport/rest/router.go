package rest

import (
	"greenify/docs"
	"greenify/internal/config"
	"greenify/internal/i18n"
	"greenify/internal/service"
	"greenify/internal/transport/rest/handler"
	"greenify/internal/transport/rest/middleware"
	"greenify/internal/transport/ws"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	ProgressService *service.ProgressService
	QuizService     *service.QuizService
	SortingService  *service.SortingService
	ProfileService  *service.ProfileService
	WSHub           *ws.Hub
	Languages       *i18n.Resolver
	CORS            config.CORSConfig
	Logger          *slog.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService, c.Logger)
	progressHandler := handler.NewProgressHandler(c.ProgressService, c.Logger)
	quizHandler := handler.NewQuizHandler(c.QuizService, c.Logger)
	sortingHandler := handler.NewSortingHandler(c.SortingService, c.Logger)
	profileHandler := handler.NewProfileHandler(c.ProfileService, c.Logger)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORS))
	r.Use(middleware.RequestLogger(c.Logger))
	r.Use(middleware.Language(c.Languages))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(docs.SwaggerInfo.ReadDoc()))
	}).Methods("GET")

	// Public auth routes
	r.HandleFunc("/register", authHandler.Register).Methods("POST", "OPTIONS")
	r.HandleFunc("/login", authHandler.Login).Methods("POST", "OPTIONS")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public catalog routes
	v1.HandleFunc("/levels", progressHandler.Levels).Methods("GET", "OPTIONS")
	v1.HandleFunc("/quiz/questions", quizHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sorting/bins", sortingHandler.Bins).Methods("GET", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws", wsHandler.Events).Methods("GET")

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/tasks", progressHandler.Tasks).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/tasks/{id}/toggle", progressHandler.Toggle).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/progress", progressHandler.Progress).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/quiz/attempts", quizHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/quiz/attempts/current", quizHandler.Current).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/quiz/attempts/current", quizHandler.Discard).Methods("DELETE", "OPTIONS")
	userRoutes.HandleFunc("/quiz/attempts/current/answers", quizHandler.Answer).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/quiz/attempts/current/submit", quizHandler.Submit).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/sorting/sessions", sortingHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/sorting/sessions/current", sortingHandler.Current).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/sorting/sessions/current", sortingHandler.Reset).Methods("DELETE", "OPTIONS")
	userRoutes.HandleFunc("/sorting/sessions/current/placements", sortingHandler.Place).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/profile", profileHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/leaderboard", profileHandler.Leaderboard).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
