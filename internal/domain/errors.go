package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrBadCredentials = errors.New("bad credentials")
	ErrMissingImage   = errors.New("missing image")
	ErrDecodeImage    = errors.New("image decode failed")
)

// GenerationError reports a failed round trip to the image provider. The
// underlying message is surfaced to the user for that interaction only.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	switch {
	case e.Message != "":
		return "generation failed: " + e.Message
	case e.Err != nil:
		return "generation failed: " + e.Err.Error()
	default:
		return "generation failed"
	}
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Reason returns the provider-supplied message when present, falling back to
// the wrapped error text.
func (e *GenerationError) Reason() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}
