package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"comitefd/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// postRow carries the post columns plus the left-joined committee member.
type postRow struct {
	models.Post
	MemberID    *string `db:"m_member_id"`
	MemberImage *string `db:"m_image_url"`
	MemberName  *string `db:"m_name"`
	MemberTitle *string `db:"m_title"`
	MemberOrder *int    `db:"m_display_order"`
}

const postSelect = `
		SELECT p.*,
		       m.member_id AS m_member_id,
		       m.image_url AS m_image_url,
		       m.name AS m_name,
		       m.title AS m_title,
		       m.display_order AS m_display_order
		FROM posts p
		LEFT JOIN committee_members m ON m.member_id = p.committee_member_id`

func (row *postRow) toPost() models.Post {
	post := row.Post
	if row.MemberID != nil {
		post.CommitteeMember = &models.CommitteeMember{
			MemberID: *row.MemberID,
			ImageURL: *row.MemberImage,
			Name:     *row.MemberName,
			Title:    *row.MemberTitle,
			Order:    *row.MemberOrder,
		}
	}
	return post
}

func (r *postRepository) List(ctx context.Context, publishedOnly bool) ([]models.Post, error) {
	query := postSelect
	if publishedOnly {
		query += `
		WHERE p.published_at IS NOT NULL`
	}
	query += `
		ORDER BY p.created_at DESC`

	var rows []postRow
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("could not list posts: %w", err)
	}

	posts := make([]models.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].toPost())
	}

	return posts, nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query := postSelect + `
		WHERE p.slug = $1`

	var row postRow
	err := r.db.GetContext(ctx, &row, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("could not fetch post: %w", err)
	}

	post := row.toPost()
	return &post, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := postSelect + `
		WHERE p.post_id = $1`

	var row postRow
	err := r.db.GetContext(ctx, &row, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("could not fetch post: %w", err)
	}

	post := row.toPost()
	return &post, nil
}

func (r *postRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT COUNT(*) FROM posts WHERE slug = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, slug)
	if err != nil {
		return false, fmt.Errorf("could not check slug: %w", err)
	}

	return count > 0, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO posts
		(post_id, title, slug, cover_image_url, content, committee_member_id, published_at, created_at, updated_at)
		VALUES
		(:post_id, :title, :slug, :cover_image_url, :content, :committee_member_id, :published_at, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("could not create post: %w", err)
	}

	return nil
}

func (r *postRepository) Update(ctx context.Context, req models.UpdatePostRequest) (*models.Post, error) {
	var b updateBuilder
	if req.Title.Set {
		b.add("title", req.Title.Value)
	}
	if req.Slug.Set {
		b.add("slug", req.Slug.Value)
	}
	if req.CoverImageURL.Set {
		b.add("cover_image_url", req.CoverImageURL.Ptr())
	}
	if req.Content.Set {
		b.add("content", req.Content.Value)
	}
	if req.CommitteeMemberID.Set {
		b.add("committee_member_id", req.CommitteeMemberID.Ptr())
	}
	if req.PublishedAt.Set {
		b.add("published_at", req.PublishedAt.Ptr())
	}

	if b.empty() {
		return r.GetByID(ctx, req.ID)
	}

	b.add("updated_at", time.Now())

	b.args = append(b.args, req.ID)
	query := fmt.Sprintf("UPDATE posts SET %s WHERE post_id = $%d",
		joinClauses(b.sets), len(b.args))

	result, err := r.db.ExecContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("post %s: %w", req.ID, ErrNotFound)
	}

	return r.GetByID(ctx, req.ID)
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}

	return nil
}
