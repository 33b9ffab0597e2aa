package admin

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"asset-factory/internal/pkg/address"
)

const MaxUsernameLength = 5

var (
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrUsernameTooLong = errors.New("username exceeds maximum length")
	ErrInvalidIdentity = errors.New("admin identity cannot be empty")
)

type Admin struct {
	identity  address.Address
	username  string
	createdAt time.Time
	deposit   uint64
}

func NewAdmin(identity address.Address, username string, now time.Time, deposit uint64) (*Admin, error) {
	if identity.IsZero() {
		return nil, ErrInvalidIdentity
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, ErrUsernameTooLong
	}
	return &Admin{
		identity:  identity,
		username:  username,
		createdAt: now,
		deposit:   deposit,
	}, nil
}

func ReconstructAdmin(identity address.Address, username string, createdAt time.Time, deposit uint64) *Admin {
	return &Admin{
		identity:  identity,
		username:  username,
		createdAt: createdAt,
		deposit:   deposit,
	}
}

// ActiveAt reports whether the admin may exercise authority at now.
// A zero cooldown activates the admin immediately.
func (a *Admin) ActiveAt(now time.Time, cooldown time.Duration) bool {
	if cooldown <= 0 {
		return true
	}
	return !now.Before(a.createdAt.Add(cooldown))
}

func (a *Admin) Identity() address.Address { return a.identity }
func (a *Admin) Username() string          { return a.username }
func (a *Admin) CreatedAt() time.Time      { return a.createdAt }
func (a *Admin) Deposit() uint64           { return a.deposit }
