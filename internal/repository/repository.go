package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"comitefd/internal/models"
)

// ErrNotFound is returned when the referenced row does not exist.
// Handlers map it to 404.
var ErrNotFound = errors.New("not found")

type AdminRepository interface {
	CreateAdmin(ctx context.Context, email, password string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	CountAdmins(ctx context.Context) (int, error)
	UpdatePassword(ctx context.Context, email, password string) error
}

type PostRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, req models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, postID string) error
}

type MemberRepository interface {
	List(ctx context.Context) ([]models.CommitteeMember, error)
	GetByID(ctx context.Context, memberID string) (*models.CommitteeMember, error)
	MaxOrder(ctx context.Context) (int, error)
	Create(ctx context.Context, member *models.CommitteeMember) error
	Update(ctx context.Context, req models.UpdateMemberRequest) (*models.CommitteeMember, error)
	Delete(ctx context.Context, memberID string) error
}

type EventRepository interface {
	List(ctx context.Context, from, to *time.Time) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, req models.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, eventID string) error
}

type GalleryRepository interface {
	List(ctx context.Context) ([]models.GalleryImage, error)
	MaxOrder(ctx context.Context) (int, error)
	Create(ctx context.Context, image *models.GalleryImage) error
	Update(ctx context.Context, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error)
	Delete(ctx context.Context, imageID string) error
	Reorder(ctx context.Context, entries []models.OrderEntry) error
}

type PodcastRepository interface {
	List(ctx context.Context) ([]models.PodcastEpisode, error)
	MaxOrder(ctx context.Context) (int, error)
	Create(ctx context.Context, episode *models.PodcastEpisode) error
	Update(ctx context.Context, req models.UpdateEpisodeRequest) (*models.PodcastEpisode, error)
	Delete(ctx context.Context, episodeID string) error
}

type SettingsRepository interface {
	GetAll(ctx context.Context) ([]models.SiteSetting, error)
	Upsert(ctx context.Context, key, value string) error
}

type Repository struct {
	Admin    AdminRepository
	Post     PostRepository
	Member   MemberRepository
	Event    EventRepository
	Carousel GalleryRepository
	Sponsor  GalleryRepository
	Podcast  PodcastRepository
	Settings SettingsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Admin:    NewAdminRepository(db),
		Post:     NewPostRepository(db),
		Member:   NewMemberRepository(db),
		Event:    NewEventRepository(db),
		Carousel: NewGalleryRepository(db, "carousel_images"),
		Sponsor:  NewGalleryRepository(db, "sponsor_images"),
		Podcast:  NewPodcastRepository(db),
		Settings: NewSettingsRepository(db),
	}
}

// updateBuilder collects SET clauses for a partial update so only the
// fields present in the request touch the row.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func (b *updateBuilder) add(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

func joinClauses(sets []string) string {
	return strings.Join(sets, ", ")
}
