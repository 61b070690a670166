package models

import (
	"time"
)

type Admin struct {
	AdminID      string `json:"adminId" db:"admin_id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type CommitteeMember struct {
	MemberID string `json:"id" db:"member_id"`
	ImageURL string `json:"imageUrl" db:"image_url"`
	Name     string `json:"name" db:"name"`
	Title    string `json:"title" db:"title"`
	Order    int    `json:"order" db:"display_order"`
}

type Post struct {
	PostID            string     `json:"id" db:"post_id"`
	Title             string     `json:"title" db:"title"`
	Slug              string     `json:"slug" db:"slug"`
	CoverImageURL     *string    `json:"coverImageUrl" db:"cover_image_url"`
	Content           string     `json:"content" db:"content"`
	CommitteeMemberID *string    `json:"committeeMemberId" db:"committee_member_id"`
	PublishedAt       *time.Time `json:"publishedAt" db:"published_at"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`

	CommitteeMember *CommitteeMember `json:"committeeMember,omitempty" db:"-"`
}

type Event struct {
	EventID     string     `json:"id" db:"event_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate" db:"end_date"`
}

// GalleryImage backs both the home carousel and the sponsor strip,
// which share the same shape and ordering semantics.
type GalleryImage struct {
	ImageID  string `json:"id" db:"image_id"`
	ImageURL string `json:"imageUrl" db:"image_url"`
	Order    int    `json:"order" db:"display_order"`
}

type PodcastEpisode struct {
	EpisodeID         string     `json:"id" db:"episode_id"`
	Title             string     `json:"title" db:"title"`
	YoutubeURL        string     `json:"youtubeUrl" db:"youtube_url"`
	Description       string     `json:"description" db:"description"`
	CoverImageURL     *string    `json:"coverImageUrl" db:"cover_image_url"`
	PublishedAt       *time.Time `json:"publishedAt" db:"published_at"`
	CommitteeMemberID *string    `json:"committeeMemberId" db:"committee_member_id"`
	Order             int        `json:"order" db:"display_order"`

	CommitteeMember *CommitteeMember `json:"committeeMember,omitempty" db:"-"`
}

type SiteSetting struct {
	Key   string `json:"key" db:"key"`
	Value string `json:"value" db:"value"`
}

// OrderEntry is one element of a bulk reorder request.
type OrderEntry struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}
