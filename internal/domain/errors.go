package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSport      = errors.New("unknown sport")
	ErrCacheMiss         = errors.New("no cached record for sport")
	ErrNetwork           = errors.New("upstream network error")
	ErrMalformedResponse = errors.New("malformed upstream response")
	ErrUpstreamFetch     = errors.New("upstream fetch failed")
	ErrUnsupportedSport  = errors.New("unsupported sport")
	ErrShapeMismatch     = errors.New("raw document shape mismatch")
)

// ShapeMismatchError reports the first expected field missing from (or mistyped in) a raw document.
type ShapeMismatchError struct {
	Sport Sport
	Field string
	Err   error
}

func (e *ShapeMismatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s feed: field %q: %v", e.Sport, e.Field, e.Err)
	}
	return fmt.Sprintf("%s feed: missing field %q", e.Sport, e.Field)
}

func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func (e *ShapeMismatchError) Unwrap() error {
	return e.Err
}
