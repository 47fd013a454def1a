package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/serenity-spa/payout-backend-go/internal/domain/payout"
	"github.com/serenity-spa/payout-backend-go/internal/pkg/database"
)

type payoutRepository struct {
	db *database.DB
}

func NewPayoutRepository(db *database.DB) payout.PayoutRepository {
	return &payoutRepository{db: db}
}

const payoutColumns = `
	id, staff_id, payout_date, foot_amount, body_amount, staff_amount,
	extra_amount, incentive_amount, treatment_amount, product_amount,
	guarantee_amount, total_amount, status, created_by, created_at,
	modified_by, modified_at
`

func (r *payoutRepository) GetActive(ctx context.Context, staffID string, payoutDate time.Time) (payout.Payout, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payoutColumns + `
		FROM payouts
		WHERE staff_id = $1 AND payout_date = $2 AND status = $3
	`

	var p payout.Payout
	err := q.QueryRow(ctx, query, staffID, payoutDate, payout.StatusActive).Scan(
		&p.ID, &p.StaffID, &p.PayoutDate, &p.FootAmount, &p.BodyAmount, &p.StaffAmount,
		&p.ExtraAmount, &p.IncentiveAmount, &p.TreatmentAmount, &p.ProductAmount,
		&p.GuaranteeAmount, &p.TotalAmount, &p.Status, &p.CreatedBy, &p.CreatedAt,
		&p.ModifiedBy, &p.ModifiedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payout.Payout{}, payout.ErrPayoutNotFound
		}
		return payout.Payout{}, fmt.Errorf("failed to get payout: %w", err)
	}

	return p, nil
}

func (r *payoutRepository) DeactivateForDate(ctx context.Context, staffID string, payoutDate time.Time, modifiedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payouts
		SET status = $1, modified_by = $2, modified_at = NOW()
		WHERE staff_id = $3 AND payout_date = $4 AND status = $5
	`

	_, err := q.Exec(ctx, query, payout.StatusSuperseded, modifiedBy, staffID, payoutDate, payout.StatusActive)
	if err != nil {
		return fmt.Errorf("failed to deactivate payouts: %w", err)
	}
	return nil
}

func (r *payoutRepository) Insert(ctx context.Context, p payout.Payout) (payout.Payout, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payouts (
			id, staff_id, payout_date, foot_amount, body_amount, staff_amount,
			extra_amount, incentive_amount, treatment_amount, product_amount,
			guarantee_amount, total_amount, status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + payoutColumns + `
	`

	var out payout.Payout
	err := q.QueryRow(ctx, query,
		p.ID, p.StaffID, p.PayoutDate, p.FootAmount, p.BodyAmount, p.StaffAmount,
		p.ExtraAmount, p.IncentiveAmount, p.TreatmentAmount, p.ProductAmount,
		p.GuaranteeAmount, p.TotalAmount, p.Status, p.CreatedBy,
	).Scan(
		&out.ID, &out.StaffID, &out.PayoutDate, &out.FootAmount, &out.BodyAmount, &out.StaffAmount,
		&out.ExtraAmount, &out.IncentiveAmount, &out.TreatmentAmount, &out.ProductAmount,
		&out.GuaranteeAmount, &out.TotalAmount, &out.Status, &out.CreatedBy, &out.CreatedAt,
		&out.ModifiedBy, &out.ModifiedAt,
	)
	if err != nil {
		return payout.Payout{}, fmt.Errorf("failed to insert payout: %w", err)
	}

	return out, nil
}
