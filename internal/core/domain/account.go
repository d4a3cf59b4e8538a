package domain

import (
	"errors"
	"time"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Account models the single class of authenticated principal. Every
// authenticated caller has the same privileges.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity returns the claims embedded into a token issued for the account.
func (a *Account) Identity() Identity {
	return Identity{AccountID: a.ID, Name: a.Name, Email: a.Email}
}

// Identity is the decoded subject of a verified token. Name and Email are
// denormalised for display only; AccountID is the sole authority.
type Identity struct {
	AccountID string
	Name      string
	Email     string
}
