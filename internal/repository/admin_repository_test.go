package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newMockAdminRepo(t *testing.T) (AdminRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewAdminRepository(sqlxDB), mock, func() { db.Close() }
}

func TestAdminRepository_CreateAdmin(t *testing.T) {
	repo, mock, close := newMockAdminRepo(t)
	defer close()

	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO admins (admin_id, email, password_hash) VALUES (?, ?, ?)`).
		WithArgs(sqlmock.AnyArg(), "admin@comite.example", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	admin, err := repo.CreateAdmin(ctx, "admin@comite.example", "motdepasse123")

	require.NoError(t, err)
	assert.NotEmpty(t, admin.AdminID)
	assert.Equal(t, "admin@comite.example", admin.Email)

	// stored value must be a bcrypt hash, never the password itself
	assert.NotEqual(t, "motdepasse123", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("motdepasse123")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_CountAdmins(t *testing.T) {
	repo, mock, close := newMockAdminRepo(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT(*) FROM admins`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountAdmins(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAdminRepository_GetByEmail(t *testing.T) {
	repo, mock, close := newMockAdminRepo(t)
	defer close()

	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM admins WHERE email = $1`).
			WithArgs("inconnu@comite.example").
			WillReturnRows(sqlmock.NewRows([]string{"admin_id", "email", "password_hash"}))

		admin, err := repo.GetByEmail(ctx, "inconnu@comite.example")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, admin)
	})
}
