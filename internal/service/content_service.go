package service

import (
	"context"
	"strings"

	"comitefd/internal/models"
	"comitefd/internal/repository"
)

// The content services front the list-like entities. Creation appends
// at max(order)+1 when the caller does not pick a position; an empty
// table yields order 0.

type MemberService interface {
	CreateMember(ctx context.Context, req models.CreateMemberRequest) (*models.CommitteeMember, error)
	UpdateMember(ctx context.Context, req models.UpdateMemberRequest) (*models.CommitteeMember, error)
	DeleteMember(ctx context.Context, memberID string) error
}

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) CreateMember(ctx context.Context, req models.CreateMemberRequest) (*models.CommitteeMember, error) {
	order, err := nextOrder(ctx, req.Order, s.memberRepo.MaxOrder)
	if err != nil {
		return nil, err
	}

	member := &models.CommitteeMember{
		ImageURL: strings.TrimSpace(req.ImageURL),
		Name:     strings.TrimSpace(req.Name),
		Title:    strings.TrimSpace(req.Title),
		Order:    order,
	}

	err = s.memberRepo.Create(ctx, member)
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (s *memberService) UpdateMember(ctx context.Context, req models.UpdateMemberRequest) (*models.CommitteeMember, error) {
	return s.memberRepo.Update(ctx, req)
}

func (s *memberService) DeleteMember(ctx context.Context, memberID string) error {
	return s.memberRepo.Delete(ctx, memberID)
}

type EventService interface {
	CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, req models.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type eventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: trimPtr(req.Description),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, req models.UpdateEventRequest) (*models.Event, error) {
	return s.eventRepo.Update(ctx, req)
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	return s.eventRepo.Delete(ctx, eventID)
}

type GalleryService interface {
	CreateImage(ctx context.Context, req models.CreateGalleryImageRequest) (*models.GalleryImage, error)
	UpdateImage(ctx context.Context, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error)
	DeleteImage(ctx context.Context, imageID string) error
	Reorder(ctx context.Context, entries []models.OrderEntry) error
}

type galleryService struct {
	galleryRepo repository.GalleryRepository
}

func NewGalleryService(galleryRepo repository.GalleryRepository) GalleryService {
	return &galleryService{galleryRepo: galleryRepo}
}

func (s *galleryService) CreateImage(ctx context.Context, req models.CreateGalleryImageRequest) (*models.GalleryImage, error) {
	order, err := nextOrder(ctx, req.Order, s.galleryRepo.MaxOrder)
	if err != nil {
		return nil, err
	}

	image := &models.GalleryImage{
		ImageURL: req.ImageURL,
		Order:    order,
	}

	err = s.galleryRepo.Create(ctx, image)
	if err != nil {
		return nil, err
	}

	return image, nil
}

func (s *galleryService) UpdateImage(ctx context.Context, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error) {
	return s.galleryRepo.Update(ctx, req)
}

func (s *galleryService) DeleteImage(ctx context.Context, imageID string) error {
	return s.galleryRepo.Delete(ctx, imageID)
}

func (s *galleryService) Reorder(ctx context.Context, entries []models.OrderEntry) error {
	return s.galleryRepo.Reorder(ctx, entries)
}

type PodcastService interface {
	CreateEpisode(ctx context.Context, req models.CreateEpisodeRequest) (*models.PodcastEpisode, error)
	UpdateEpisode(ctx context.Context, req models.UpdateEpisodeRequest) (*models.PodcastEpisode, error)
	DeleteEpisode(ctx context.Context, episodeID string) error
}

type podcastService struct {
	podcastRepo repository.PodcastRepository
}

func NewPodcastService(podcastRepo repository.PodcastRepository) PodcastService {
	return &podcastService{podcastRepo: podcastRepo}
}

func (s *podcastService) CreateEpisode(ctx context.Context, req models.CreateEpisodeRequest) (*models.PodcastEpisode, error) {
	order, err := nextOrder(ctx, req.Order, s.podcastRepo.MaxOrder)
	if err != nil {
		return nil, err
	}

	episode := &models.PodcastEpisode{
		Title:             strings.TrimSpace(req.Title),
		YoutubeURL:        strings.TrimSpace(req.YoutubeURL),
		Description:       strings.TrimSpace(req.Description),
		CoverImageURL:     trimPtr(req.CoverImageURL),
		PublishedAt:       req.PublishedAt,
		CommitteeMemberID: req.CommitteeMemberID,
		Order:             order,
	}

	err = s.podcastRepo.Create(ctx, episode)
	if err != nil {
		return nil, err
	}

	return episode, nil
}

func (s *podcastService) UpdateEpisode(ctx context.Context, req models.UpdateEpisodeRequest) (*models.PodcastEpisode, error) {
	return s.podcastRepo.Update(ctx, req)
}

func (s *podcastService) DeleteEpisode(ctx context.Context, episodeID string) error {
	return s.podcastRepo.Delete(ctx, episodeID)
}

func nextOrder(ctx context.Context, requested *int, maxOrder func(context.Context) (int, error)) (int, error) {
	if requested != nil {
		return *requested, nil
	}

	max, err := maxOrder(ctx)
	if err != nil {
		return 0, err
	}

	return max + 1, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
