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

type memberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) List(ctx context.Context) ([]models.CommitteeMember, error) {
	query := `SELECT * FROM committee_members ORDER BY display_order ASC`

	var members []models.CommitteeMember
	err := r.db.SelectContext(ctx, &members, query)
	if err != nil {
		return nil, fmt.Errorf("could not list committee members: %w", err)
	}

	return members, nil
}

func (r *memberRepository) GetByID(ctx context.Context, memberID string) (*models.CommitteeMember, error) {
	query := `SELECT * FROM committee_members WHERE member_id = $1`

	var member models.CommitteeMember
	err := r.db.GetContext(ctx, &member, query, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("committee member %s: %w", memberID, ErrNotFound)
		}
		return nil, fmt.Errorf("could not fetch committee member: %w", err)
	}

	return &member, nil
}

func (r *memberRepository) MaxOrder(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(display_order), -1) FROM committee_members`

	var max int
	err := r.db.GetContext(ctx, &max, query)
	if err != nil {
		return 0, fmt.Errorf("could not fetch max order: %w", err)
	}

	return max, nil
}

func (r *memberRepository) Create(ctx context.Context, member *models.CommitteeMember) error {
	if member.MemberID == "" {
		member.MemberID = uuid.New().String()
	}

	query := `
		INSERT INTO committee_members (member_id, image_url, name, title, display_order)
		VALUES (:member_id, :image_url, :name, :title, :display_order)
	`

	_, err := r.db.NamedExecContext(ctx, query, member)
	if err != nil {
		return fmt.Errorf("could not create committee member: %w", err)
	}

	return nil
}

func (r *memberRepository) Update(ctx context.Context, req models.UpdateMemberRequest) (*models.CommitteeMember, error) {
	var b updateBuilder
	if req.ImageURL.Set {
		b.add("image_url", req.ImageURL.Value)
	}
	if req.Name.Set {
		b.add("name", req.Name.Value)
	}
	if req.Title.Set {
		b.add("title", req.Title.Value)
	}
	if req.Order.Set {
		b.add("display_order", req.Order.Value)
	}

	if b.empty() {
		return r.GetByID(ctx, req.ID)
	}

	b.args = append(b.args, req.ID)
	query := fmt.Sprintf("UPDATE committee_members SET %s WHERE member_id = $%d",
		joinClauses(b.sets), len(b.args))

	result, err := r.db.ExecContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("could not update committee member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("committee member %s: %w", req.ID, ErrNotFound)
	}

	return r.GetByID(ctx, req.ID)
}

func (r *memberRepository) Delete(ctx context.Context, memberID string) error {
	query := `DELETE FROM committee_members WHERE member_id = $1`

	result, err := r.db.ExecContext(ctx, query, memberID)
	if err != nil {
		return fmt.Errorf("could not delete committee member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("committee member %s: %w", memberID, ErrNotFound)
	}

	return nil
}
