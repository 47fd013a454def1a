package staff

import "errors"

var (
	ErrStaffNotFound              = errors.New("staff not found")
	ErrCompensationConfigNotFound = errors.New("compensation config not found")
)
