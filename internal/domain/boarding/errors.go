package boarding

import (
	"errors"
	"fmt"
)

var ErrUpstream = errors.New("upstream failure")

// UpstreamError: falló el almacenamiento. El registro en memoria no se tocó,
// pero el store pudo quedar a medias; el llamador decide si recarga.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

func upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}
