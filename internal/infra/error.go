package infra

import (
	"context"
	"errors"
	"log/slog"

	"asset-factory/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs storage failures at error level. Expected kinds such as
// NOT_FOUND are logged at debug since the engine turns them into rejections.
func WrapRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	level := slog.LevelDebug
	if kind == KindDBFailure || kind == KindDecodeFailure {
		level = slog.LevelError
	}
	logArgs := []any{slog.String("kind", string(kind))}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	slog.Log(context.Background(), level, "repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound      RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure     RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey  RepositoryErrorKind = "DUPLICATE_KEY"
	KindDecodeFailure RepositoryErrorKind = "DECODE_FAILURE"
	KindWrongKind     RepositoryErrorKind = "WRONG_KIND"
)
