package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/serenity-spa/payout-backend-go/internal/domain/sales"
	"github.com/serenity-spa/payout-backend-go/internal/pkg/database"
)

type salesRepository struct {
	db *database.DB
}

func NewSalesRepository(db *database.DB) sales.SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) FetchSales(ctx context.Context, staffID string, activeOnly bool, dateStart, dateEnd *time.Time) ([]sales.SaleLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.staff_id, m.code, m.category, s.sale_date,
			   m.foot_minutes, m.body_minutes, s.price,
			   s.staff_commission, s.extra_commission, s.is_active
		FROM sales s
		JOIN menu_items m ON m.id = s.menu_item_id
		WHERE s.staff_id = $1
	`
	args := []interface{}{staffID}

	if activeOnly {
		query += " AND s.is_active = true"
	}
	if dateStart != nil {
		args = append(args, *dateStart)
		query += fmt.Sprintf(" AND s.sale_date >= $%d", len(args))
	}
	if dateEnd != nil {
		// dateEnd is inclusive: everything before the next day counts.
		args = append(args, dateEnd.AddDate(0, 0, 1))
		query += fmt.Sprintf(" AND s.sale_date < $%d", len(args))
	}
	query += " ORDER BY s.sale_date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}
	defer rows.Close()

	var result []sales.SaleLine
	for rows.Next() {
		var line sales.SaleLine
		var category string
		err := rows.Scan(
			&line.ID, &line.StaffID, &line.MenuCode, &category, &line.SaleDate,
			&line.FootMinutes, &line.BodyMinutes, &line.Price,
			&line.StaffCommission, &line.ExtraCommission, &line.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale line: %w", err)
		}
		line.MenuCategory = sales.ParseCategory(category)
		result = append(result, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sales rows: %w", err)
	}

	return result, nil
}
