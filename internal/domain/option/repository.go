package option

import "context"

type Repository interface {
	FetchValues(ctx context.Context, categories []string) ([]Value, error)
}
