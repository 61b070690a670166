package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comitefd/internal/models"
)

func newMockGalleryRepo(t *testing.T, table string) (GalleryRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewGalleryRepository(sqlxDB, table), mock, func() { db.Close() }
}

func TestGalleryRepository_MaxOrder(t *testing.T) {
	repo, mock, close := newMockGalleryRepo(t, "sponsor_images")
	defer close()

	ctx := context.Background()

	t.Run("empty table reports -1", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE(MAX(display_order), -1) FROM sponsor_images`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(-1))

		max, err := repo.MaxOrder(ctx)

		require.NoError(t, err)
		assert.Equal(t, -1, max)
	})

	t.Run("populated table", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE(MAX(display_order), -1) FROM sponsor_images`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4))

		max, err := repo.MaxOrder(ctx)

		require.NoError(t, err)
		assert.Equal(t, 4, max)
	})
}

func TestGalleryRepository_Create(t *testing.T) {
	repo, mock, close := newMockGalleryRepo(t, "carousel_images")
	defer close()

	ctx := context.Background()

	image := &models.GalleryImage{
		ImageURL: "https://img.example/banniere.jpg",
		Order:    0,
	}

	mock.ExpectExec(`INSERT INTO carousel_images (image_id, image_url, display_order) VALUES (?, ?, ?)`).
		WithArgs(sqlmock.AnyArg(), image.ImageURL, image.Order).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(ctx, image)

	require.NoError(t, err)
	assert.NotEmpty(t, image.ImageID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepository_Reorder(t *testing.T) {
	ctx := context.Background()
	query := `UPDATE sponsor_images SET display_order = $1 WHERE image_id = $2`

	t.Run("all rows updated in one transaction", func(t *testing.T) {
		repo, mock, close := newMockGalleryRepo(t, "sponsor_images")
		defer close()

		first := uuid.New().String()
		second := uuid.New().String()

		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(0, first).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(query).
			WithArgs(1, second).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Reorder(ctx, []models.OrderEntry{
			{ID: first, Order: 0},
			{ID: second, Order: 1},
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id rolls the batch back", func(t *testing.T) {
		repo, mock, close := newMockGalleryRepo(t, "sponsor_images")
		defer close()

		first := uuid.New().String()
		missing := uuid.New().String()

		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(0, first).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(query).
			WithArgs(1, missing).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Reorder(ctx, []models.OrderEntry{
			{ID: first, Order: 0},
			{ID: missing, Order: 1},
		})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGalleryRepository_Update(t *testing.T) {
	repo, mock, close := newMockGalleryRepo(t, "sponsor_images")
	defer close()

	ctx := context.Background()
	imageID := uuid.New().String()

	var req models.UpdateGalleryImageRequest
	req.ID = imageID
	req.Order.Set = true
	req.Order.Valid = true
	req.Order.Value = 3

	mock.ExpectExec(`UPDATE sponsor_images SET display_order = $1 WHERE image_id = $2`).
		WithArgs(3, imageID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT * FROM sponsor_images WHERE image_id = $1`).
		WithArgs(imageID).
		WillReturnRows(sqlmock.NewRows([]string{"image_id", "image_url", "display_order"}).
			AddRow(imageID, "https://img.example/logo.png", 3))

	image, err := repo.Update(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, 3, image.Order)
	assert.NoError(t, mock.ExpectationsWereMet())
}
