package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"comitefd/cmd/app"
	"comitefd/internal/config"
	handlers "comitefd/internal/handler"
	"comitefd/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)

	router.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts", handler.UpdatePost).Methods(http.MethodPatch)
	router.HandleFunc("/api/posts", handler.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{slug}", handler.GetPost).Methods(http.MethodGet)

	router.HandleFunc("/api/committee", handler.GetMembers).Methods(http.MethodGet)
	router.HandleFunc("/api/committee", handler.CreateMember).Methods(http.MethodPost)
	router.HandleFunc("/api/committee", handler.UpdateMember).Methods(http.MethodPatch)
	router.HandleFunc("/api/committee", handler.DeleteMember).Methods(http.MethodDelete)

	router.HandleFunc("/api/events", handler.GetEvents).Methods(http.MethodGet)
	router.HandleFunc("/api/events", handler.CreateEvent).Methods(http.MethodPost)
	router.HandleFunc("/api/events", handler.UpdateEvent).Methods(http.MethodPatch)
	router.HandleFunc("/api/events", handler.DeleteEvent).Methods(http.MethodDelete)

	router.HandleFunc("/api/carousel", handler.GetCarousel).Methods(http.MethodGet)
	router.HandleFunc("/api/carousel", handler.CreateCarouselImage).Methods(http.MethodPost)
	router.HandleFunc("/api/carousel", handler.UpdateCarouselImage).Methods(http.MethodPatch)
	router.HandleFunc("/api/carousel", handler.DeleteCarouselImage).Methods(http.MethodDelete)

	router.HandleFunc("/api/sponsors", handler.GetSponsors).Methods(http.MethodGet)
	router.HandleFunc("/api/sponsors", handler.CreateSponsorImage).Methods(http.MethodPost)
	router.HandleFunc("/api/sponsors", handler.UpdateSponsorImage).Methods(http.MethodPatch)
	router.HandleFunc("/api/sponsors", handler.DeleteSponsorImage).Methods(http.MethodDelete)
	router.HandleFunc("/api/sponsors", handler.ReorderSponsors).Methods(http.MethodPut)

	router.HandleFunc("/api/podcast", handler.GetEpisodes).Methods(http.MethodGet)
	router.HandleFunc("/api/podcast", handler.CreateEpisode).Methods(http.MethodPost)
	router.HandleFunc("/api/podcast", handler.UpdateEpisode).Methods(http.MethodPatch)
	router.HandleFunc("/api/podcast", handler.DeleteEpisode).Methods(http.MethodDelete)

	router.HandleFunc("/api/settings", handler.GetSettings).Methods(http.MethodGet)
	router.HandleFunc("/api/settings", handler.UpsertSetting).Methods(http.MethodPatch)

	router.HandleFunc("/api/upload", handler.Upload).Methods(http.MethodPost)
	router.HandleFunc("/api/contact", handler.Contact).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.AdminPageGuard,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthContext(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s (database: %s)", addr, cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
