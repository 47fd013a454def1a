package option

import "errors"

var ErrOptionValueNotFound = errors.New("option value not found")
