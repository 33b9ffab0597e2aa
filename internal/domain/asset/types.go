package asset

import "errors"

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusCompleted:
		return true
	default:
		return false
	}
}

const (
	MaxNameLength      = 32
	MaxURILength       = 200
	MaxAttributes      = 16
	MaxAttributeLength = 64
)

var (
	ErrEmptyName         = errors.New("asset name cannot be empty")
	ErrNameTooLong       = errors.New("asset name exceeds maximum length")
	ErrURITooLong        = errors.New("asset uri exceeds maximum length")
	ErrTooManyAttributes = errors.New("too many attributes")
	ErrInvalidAttribute  = errors.New("attribute key must be non-empty and within length limits")
	ErrInvalidBuyer      = errors.New("buyer cannot be empty")
	ErrInvalidStatus     = errors.New("invalid asset status")
)

type Attribute struct {
	Key   string
	Value string
}
