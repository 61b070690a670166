package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"comitefd/internal/models"
)

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateAdmin(ctx context.Context, email, password string) (*models.Admin, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}

	admin := &models.Admin{
		AdminID:      uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	query := `
		INSERT INTO admins (admin_id, email, password_hash)
		VALUES (:admin_id, :email, :password_hash)
	`

	_, err = r.db.NamedExecContext(ctx, query, admin)
	if err != nil {
		return nil, fmt.Errorf("could not create admin: %w", err)
	}

	return admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin

	query := `SELECT * FROM admins WHERE email = $1`

	err := r.db.GetContext(ctx, &admin, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("could not fetch admin: %w", err)
	}

	return &admin, nil
}

func (r *adminRepository) CountAdmins(ctx context.Context) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM admins`

	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("could not count admins: %w", err)
	}

	return count, nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	query := `UPDATE admins SET password_hash = $1 WHERE email = $2`

	result, err := r.db.ExecContext(ctx, query, string(hashedPassword), email)
	if err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("admin %s: %w", email, ErrNotFound)
	}

	return nil
}
