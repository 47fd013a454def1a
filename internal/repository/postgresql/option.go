package postgresql

import (
	"context"
	"fmt"

	"github.com/serenity-spa/payout-backend-go/internal/domain/option"
	"github.com/serenity-spa/payout-backend-go/internal/pkg/database"
)

type optionRepository struct {
	db *database.DB
}

func NewOptionRepository(db *database.DB) option.Repository {
	return &optionRepository{db: db}
}

func (r *optionRepository) FetchValues(ctx context.Context, categories []string) ([]option.Value, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT category, value
		FROM option_values
		WHERE category = ANY($1)
	`

	rows, err := q.Query(ctx, query, categories)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch option values: %w", err)
	}
	defer rows.Close()

	var result []option.Value
	for rows.Next() {
		var v option.Value
		if err := rows.Scan(&v.Category, &v.Value); err != nil {
			return nil, fmt.Errorf("failed to scan option value: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read option value rows: %w", err)
	}

	return result, nil
}
