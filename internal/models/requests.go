package models

import "time"

type CreatePostRequest struct {
	Title             string     `json:"title"`
	Slug              string     `json:"slug"`
	CoverImageURL     *string    `json:"coverImageUrl"`
	Content           string     `json:"content"`
	CommitteeMemberID *string    `json:"committeeMemberId"`
	PublishedAt       *time.Time `json:"publishedAt"`
}

type UpdatePostRequest struct {
	ID                string              `json:"id"`
	Title             Optional[string]    `json:"title"`
	Slug              Optional[string]    `json:"slug"`
	CoverImageURL     Optional[string]    `json:"coverImageUrl"`
	Content           Optional[string]    `json:"content"`
	CommitteeMemberID Optional[string]    `json:"committeeMemberId"`
	PublishedAt       Optional[time.Time] `json:"publishedAt"`
}

type CreateMemberRequest struct {
	ImageURL string `json:"imageUrl"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Order    *int   `json:"order"`
}

type UpdateMemberRequest struct {
	ID       string           `json:"id"`
	ImageURL Optional[string] `json:"imageUrl"`
	Name     Optional[string] `json:"name"`
	Title    Optional[string] `json:"title"`
	Order    Optional[int]    `json:"order"`
}

type CreateEventRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type UpdateEventRequest struct {
	ID          string              `json:"id"`
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	StartDate   Optional[time.Time] `json:"startDate"`
	EndDate     Optional[time.Time] `json:"endDate"`
}

type CreateGalleryImageRequest struct {
	ImageURL string `json:"imageUrl"`
	Order    *int   `json:"order"`
}

type UpdateGalleryImageRequest struct {
	ID       string           `json:"id"`
	ImageURL Optional[string] `json:"imageUrl"`
	Order    Optional[int]    `json:"order"`
}

type CreateEpisodeRequest struct {
	Title             string     `json:"title"`
	YoutubeURL        string     `json:"youtubeUrl"`
	Description       string     `json:"description"`
	CoverImageURL     *string    `json:"coverImageUrl"`
	PublishedAt       *time.Time `json:"publishedAt"`
	CommitteeMemberID *string    `json:"committeeMemberId"`
	Order             *int       `json:"order"`
}

type UpdateEpisodeRequest struct {
	ID                string              `json:"id"`
	Title             Optional[string]    `json:"title"`
	YoutubeURL        Optional[string]    `json:"youtubeUrl"`
	Description       Optional[string]    `json:"description"`
	CoverImageURL     Optional[string]    `json:"coverImageUrl"`
	PublishedAt       Optional[time.Time] `json:"publishedAt"`
	CommitteeMemberID Optional[string]    `json:"committeeMemberId"`
	Order             Optional[int]       `json:"order"`
}

type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Message   string `json:"message" validate:"required"`
}
