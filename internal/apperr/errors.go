package apperr

import "errors"

var (
	ErrMalformedFragment = errors.New("malformed fragment")
	ErrMissingMetadata   = errors.New("missing note metadata")
)
