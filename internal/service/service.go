package service

import (
	"errors"

	"comitefd/internal/config"
	"comitefd/internal/mailer"
	"comitefd/internal/repository"
	"comitefd/internal/storage"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRegistrationClosed is returned once an admin account exists.
	ErrRegistrationClosed = errors.New("registration closed")

	// ErrNotConfigured is returned when a required external credential
	// is missing from the environment. Handlers map it to 503.
	ErrNotConfigured = errors.New("service not configured")
)

type Service struct {
	Auth     AuthService
	Post     PostService
	Member   MemberService
	Event    EventService
	Carousel GalleryService
	Sponsor  GalleryService
	Podcast  PodcastService
	Settings SettingsService
	Upload   UploadService
	Contact  ContactService
}

func NewService(rep *repository.Repository, cfg *config.Config, store storage.Storage, mail mailer.Mailer) *Service {
	return &Service{
		Auth:     NewAuthService(rep.Admin, cfg),
		Post:     NewPostService(rep.Post),
		Member:   NewMemberService(rep.Member),
		Event:    NewEventService(rep.Event),
		Carousel: NewGalleryService(rep.Carousel),
		Sponsor:  NewGalleryService(rep.Sponsor),
		Podcast:  NewPodcastService(rep.Podcast),
		Settings: NewSettingsService(rep.Settings),
		Upload:   NewUploadService(store, cfg),
		Contact:  NewContactService(mail, cfg),
	}
}
