package engine

import (
	errs "errors"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument reports a bad caller input such as a negative round count.
	ErrInvalidArgument = errs.New("invalid argument")
	// ErrNotFound reports a sampled label with no catalog entry.
	ErrNotFound = errs.New("not found")
	// ErrConfiguration reports a catalog or weight table that fails validation.
	ErrConfiguration = errs.New("configuration error")
)

func configErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}
