package scoring

import "errors"

// ErrMissingCatalog is returned when scoring is attempted without a
// catalog. This is a caller configuration error and is never swallowed.
var ErrMissingCatalog = errors.New("question catalog is missing or empty")
