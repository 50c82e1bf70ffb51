package facerec

import "errors"

var (
	ErrServiceUnavailable = errors.New("face encodings service unavailable")
	ErrInvalidResponse    = errors.New("invalid response from face encodings service")
	ErrBadDimension       = errors.New("unexpected embedding dimension in response")
)
