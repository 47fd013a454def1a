package commission

import "context"

type CommissionService interface {
	// Compute runs the live commission calculation. A staff member without a
	// compensation config yields a zeroed report, not an error.
	Compute(ctx context.Context, req ComputeRequest) (Report, error)
}
