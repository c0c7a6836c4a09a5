package infra

import (
	"errors"

	"lead-exchange/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict     RepositoryErrorKind = "CONFLICT"
	KindLockTimeout  RepositoryErrorKind = "LOCK_TIMEOUT"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	Err  error
}

func (e *RepositoryError) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// WrapRepoErr classifies a storage error. The first kind is the default when
// no finer classification applies.
func WrapRepoErr(msg string, err error, kind RepositoryErrorKind) error {
	if err == nil {
		return nil
	}
	return &RepositoryError{Kind: kind, Err: errs.Wrap(err, msg)}
}

func NewRepoErr(msg string, kind RepositoryErrorKind) error {
	return &RepositoryError{Kind: kind, Err: errs.New(msg)}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Kind == kind
	}
	return false
}
