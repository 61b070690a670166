package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"comitefd/internal/config"
	"comitefd/internal/database"
	"comitefd/internal/middleware"
	"comitefd/internal/repository"
	"comitefd/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	PostService     service.PostService
	PostRepo        repository.PostRepository
	MemberService   service.MemberService
	MemberRepo      repository.MemberRepository
	EventService    service.EventService
	EventRepo       repository.EventRepository
	CarouselService service.GalleryService
	CarouselRepo    repository.GalleryRepository
	SponsorService  service.GalleryService
	SponsorRepo     repository.GalleryRepository
	PodcastService  service.PodcastService
	PodcastRepo     repository.PodcastRepository
	SettingsService service.SettingsService
	UploadService   service.UploadService
	ContactService  service.ContactService
	DB              *database.DB
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		PostService:     services.Post,
		PostRepo:        repo.Post,
		MemberService:   services.Member,
		MemberRepo:      repo.Member,
		EventService:    services.Event,
		EventRepo:       repo.Event,
		CarouselService: services.Carousel,
		CarouselRepo:    repo.Carousel,
		SponsorService:  services.Sponsor,
		SponsorRepo:     repo.Sponsor,
		PodcastService:  services.Podcast,
		PodcastRepo:     repo.Podcast,
		SettingsService: services.Settings,
		UploadService:   services.Upload,
		ContactService:  services.Contact,
		DB:              db,
		Cfg:             cfg,
		Validate:        validator.New(),
	}
}

// requireAdmin rejects the request with 401 unless a valid session was
// placed in the context by the auth middleware. Reads are public;
// every mutating handler starts with this check.
func (h *Handlers) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, _, ok := middleware.AdminFromContext(r.Context()); ok {
		return true
	}
	WriteError(w, "Non autorisé", http.StatusUnauthorized)
	return false
}

func (h *Handlers) isAuthenticated(r *http.Request) bool {
	_, _, ok := middleware.AdminFromContext(r.Context())
	return ok
}
