package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is also matches marks set with Mark.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

type rejection struct {
	code  *ProgramError
	cause error
}

func (r *rejection) Error() string {
	if r.cause == nil {
		return r.code.Message
	}
	return r.code.Message + ": " + r.cause.Error()
}

func (r *rejection) Unwrap() error        { return r.cause }
func (r *rejection) Is(target error) bool { return target == r.code }

// Reject attaches context to a program error while keeping it matchable with errors.Is.
func Reject(code *ProgramError, format string, args ...any) error {
	return &rejection{code: code, cause: cr.Newf(format, args...)}
}

// RejectCause tags cause with a program error. errors.Is matches both.
func RejectCause(code *ProgramError, cause error) error {
	return &rejection{code: code, cause: cause}
}

// CodeOf returns the program error carried by err, if any.
func CodeOf(err error) (*ProgramError, bool) {
	if err == nil {
		return nil, false
	}
	var rej *rejection
	if errors.As(err, &rej) {
		return rej.code, true
	}
	var pe *ProgramError
	if errors.As(err, &pe) {
		return pe, true
	}
	for _, code := range registry {
		if cr.Is(err, code) {
			return code, true
		}
	}
	return nil, false
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
