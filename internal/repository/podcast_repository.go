package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"comitefd/internal/models"
)

type podcastRepository struct {
	db *sqlx.DB
}

func NewPodcastRepository(db *sqlx.DB) PodcastRepository {
	return &podcastRepository{db: db}
}

type episodeRow struct {
	models.PodcastEpisode
	MemberID    *string `db:"m_member_id"`
	MemberImage *string `db:"m_image_url"`
	MemberName  *string `db:"m_name"`
	MemberTitle *string `db:"m_title"`
	MemberOrder *int    `db:"m_display_order"`
}

const episodeSelect = `
		SELECT e.*,
		       m.member_id AS m_member_id,
		       m.image_url AS m_image_url,
		       m.name AS m_name,
		       m.title AS m_title,
		       m.display_order AS m_display_order
		FROM podcast_episodes e
		LEFT JOIN committee_members m ON m.member_id = e.committee_member_id`

func (row *episodeRow) toEpisode() models.PodcastEpisode {
	episode := row.PodcastEpisode
	if row.MemberID != nil {
		episode.CommitteeMember = &models.CommitteeMember{
			MemberID: *row.MemberID,
			ImageURL: *row.MemberImage,
			Name:     *row.MemberName,
			Title:    *row.MemberTitle,
			Order:    *row.MemberOrder,
		}
	}
	return episode
}

func (r *podcastRepository) List(ctx context.Context) ([]models.PodcastEpisode, error) {
	query := episodeSelect + `
		ORDER BY e.display_order ASC`

	var rows []episodeRow
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("could not list podcast episodes: %w", err)
	}

	episodes := make([]models.PodcastEpisode, 0, len(rows))
	for i := range rows {
		episodes = append(episodes, rows[i].toEpisode())
	}

	return episodes, nil
}

func (r *podcastRepository) getByID(ctx context.Context, episodeID string) (*models.PodcastEpisode, error) {
	query := episodeSelect + `
		WHERE e.episode_id = $1`

	var row episodeRow
	err := r.db.GetContext(ctx, &row, query, episodeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("podcast episode %s: %w", episodeID, ErrNotFound)
		}
		return nil, fmt.Errorf("could not fetch podcast episode: %w", err)
	}

	episode := row.toEpisode()
	return &episode, nil
}

func (r *podcastRepository) MaxOrder(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(display_order), -1) FROM podcast_episodes`

	var max int
	err := r.db.GetContext(ctx, &max, query)
	if err != nil {
		return 0, fmt.Errorf("could not fetch max order: %w", err)
	}

	return max, nil
}

func (r *podcastRepository) Create(ctx context.Context, episode *models.PodcastEpisode) error {
	if episode.EpisodeID == "" {
		episode.EpisodeID = uuid.New().String()
	}

	query := `
		INSERT INTO podcast_episodes
		(episode_id, title, youtube_url, description, cover_image_url, published_at, committee_member_id, display_order)
		VALUES
		(:episode_id, :title, :youtube_url, :description, :cover_image_url, :published_at, :committee_member_id, :display_order)
	`

	_, err := r.db.NamedExecContext(ctx, query, episode)
	if err != nil {
		return fmt.Errorf("could not create podcast episode: %w", err)
	}

	return nil
}

func (r *podcastRepository) Update(ctx context.Context, req models.UpdateEpisodeRequest) (*models.PodcastEpisode, error) {
	var b updateBuilder
	if req.Title.Set {
		b.add("title", req.Title.Value)
	}
	if req.YoutubeURL.Set {
		b.add("youtube_url", req.YoutubeURL.Value)
	}
	if req.Description.Set {
		b.add("description", req.Description.Value)
	}
	if req.CoverImageURL.Set {
		b.add("cover_image_url", req.CoverImageURL.Ptr())
	}
	if req.PublishedAt.Set {
		b.add("published_at", req.PublishedAt.Ptr())
	}
	if req.CommitteeMemberID.Set {
		b.add("committee_member_id", req.CommitteeMemberID.Ptr())
	}
	if req.Order.Set {
		b.add("display_order", req.Order.Value)
	}

	if b.empty() {
		return r.getByID(ctx, req.ID)
	}

	b.args = append(b.args, req.ID)
	query := fmt.Sprintf("UPDATE podcast_episodes SET %s WHERE episode_id = $%d",
		joinClauses(b.sets), len(b.args))

	result, err := r.db.ExecContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("could not update podcast episode: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("podcast episode %s: %w", req.ID, ErrNotFound)
	}

	return r.getByID(ctx, req.ID)
}

func (r *podcastRepository) Delete(ctx context.Context, episodeID string) error {
	query := `DELETE FROM podcast_episodes WHERE episode_id = $1`

	result, err := r.db.ExecContext(ctx, query, episodeID)
	if err != nil {
		return fmt.Errorf("could not delete podcast episode: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("podcast episode %s: %w", episodeID, ErrNotFound)
	}

	return nil
}
