package staff

import "context"

type StaffRepository interface {
	GetByID(ctx context.Context, id string) (Staff, error)
	ListActiveFullTime(ctx context.Context, role Role) ([]Staff, error)
	GetCompensationConfig(ctx context.Context, staffID string) (CompensationConfig, error)
}
