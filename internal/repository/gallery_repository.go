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

// galleryRepository serves both ordered image tables (home carousel and
// sponsor strip); they differ only in table name.
type galleryRepository struct {
	db    *sqlx.DB
	table string
}

func NewGalleryRepository(db *sqlx.DB, table string) GalleryRepository {
	return &galleryRepository{db: db, table: table}
}

func (r *galleryRepository) List(ctx context.Context) ([]models.GalleryImage, error) {
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY display_order ASC`, r.table)

	var images []models.GalleryImage
	err := r.db.SelectContext(ctx, &images, query)
	if err != nil {
		return nil, fmt.Errorf("could not list %s: %w", r.table, err)
	}

	return images, nil
}

func (r *galleryRepository) getByID(ctx context.Context, imageID string) (*models.GalleryImage, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE image_id = $1`, r.table)

	var image models.GalleryImage
	err := r.db.GetContext(ctx, &image, query, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("image %s: %w", imageID, ErrNotFound)
		}
		return nil, fmt.Errorf("could not fetch image: %w", err)
	}

	return &image, nil
}

func (r *galleryRepository) MaxOrder(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COALESCE(MAX(display_order), -1) FROM %s`, r.table)

	var max int
	err := r.db.GetContext(ctx, &max, query)
	if err != nil {
		return 0, fmt.Errorf("could not fetch max order: %w", err)
	}

	return max, nil
}

func (r *galleryRepository) Create(ctx context.Context, image *models.GalleryImage) error {
	if image.ImageID == "" {
		image.ImageID = uuid.New().String()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (image_id, image_url, display_order)
		VALUES (:image_id, :image_url, :display_order)
	`, r.table)

	_, err := r.db.NamedExecContext(ctx, query, image)
	if err != nil {
		return fmt.Errorf("could not create image: %w", err)
	}

	return nil
}

func (r *galleryRepository) Update(ctx context.Context, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error) {
	var b updateBuilder
	if req.ImageURL.Set {
		b.add("image_url", req.ImageURL.Value)
	}
	if req.Order.Set {
		b.add("display_order", req.Order.Value)
	}

	if b.empty() {
		return r.getByID(ctx, req.ID)
	}

	b.args = append(b.args, req.ID)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE image_id = $%d",
		r.table, joinClauses(b.sets), len(b.args))

	result, err := r.db.ExecContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("could not update image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("image %s: %w", req.ID, ErrNotFound)
	}

	return r.getByID(ctx, req.ID)
}

func (r *galleryRepository) Delete(ctx context.Context, imageID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE image_id = $1`, r.table)

	result, err := r.db.ExecContext(ctx, query, imageID)
	if err != nil {
		return fmt.Errorf("could not delete image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("image %s: %w", imageID, ErrNotFound)
	}

	return nil
}

// Reorder applies all order updates in one transaction. Any unknown id
// rolls the whole batch back so readers never see a partial ordering.
func (r *galleryRepository) Reorder(ctx context.Context, entries []models.OrderEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	query := fmt.Sprintf(`UPDATE %s SET display_order = $1 WHERE image_id = $2`, r.table)

	for _, entry := range entries {
		result, err := tx.ExecContext(ctx, query, entry.Order, entry.ID)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("could not reorder image %s: %w", entry.ID, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("could not check updated rows: %w", err)
		}

		if rowsAffected == 0 {
			tx.Rollback()
			return fmt.Errorf("image %s: %w", entry.ID, ErrNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit reorder: %w", err)
	}

	return nil
}
