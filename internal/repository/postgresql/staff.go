package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
	"github.com/serenity-spa/payout-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, role, employment_type, is_active, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var st staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&st.ID, &st.Code, &st.Name, &st.Role, &st.EmploymentType,
		&st.IsActive, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}

	return st, nil
}

func (r *staffRepository) ListActiveFullTime(ctx context.Context, role staff.Role) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, role, employment_type, is_active, created_at, updated_at
		FROM staff
		WHERE role = $1 AND employment_type = $2 AND is_active = true
		ORDER BY code
	`

	rows, err := q.Query(ctx, query, role, staff.EmploymentFullTime)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		var st staff.Staff
		err := rows.Scan(
			&st.ID, &st.Code, &st.Name, &st.Role, &st.EmploymentType,
			&st.IsActive, &st.CreatedAt, &st.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read staff rows: %w", err)
	}

	return result, nil
}

func (r *staffRepository) GetCompensationConfig(ctx context.Context, staffID string) (staff.CompensationConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, is_rate, is_commission_percentage, is_guarantee_income,
			   foot_rate_per_hour, body_rate_per_hour, commission_percent,
			   guarantee_income, created_at, updated_at
		FROM compensation_configs
		WHERE staff_id = $1
	`

	var cfg staff.CompensationConfig
	err := q.QueryRow(ctx, query, staffID).Scan(
		&cfg.ID, &cfg.StaffID, &cfg.IsRate, &cfg.IsCommissionPercentage, &cfg.IsGuaranteeIncome,
		&cfg.FootRatePerHour, &cfg.BodyRatePerHour, &cfg.CommissionPercent,
		&cfg.GuaranteeIncome, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.CompensationConfig{}, staff.ErrCompensationConfigNotFound
		}
		return staff.CompensationConfig{}, fmt.Errorf("failed to get compensation config: %w", err)
	}

	return cfg, nil
}
