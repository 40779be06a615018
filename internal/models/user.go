package models

import (
	"strings"

	"github.com/dmitrijs2005/studentdesk/internal/common"
)

const minUsernameLength = 3

// User is one login credential. The password is stored verbatim; see the
// services package for the credential-verification seam.
type User struct {
	ID       int64
	Username string
	Password string
}

// NewUser validates the username and returns a User. The password is not
// validated.
func NewUser(username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &common.ValidationError{Field: "username", Message: "Username cannot be empty"}
	}
	if len(username) < minUsernameLength {
		return nil, &common.ValidationError{
			Field:   "username",
			Message: "Username must be at least 3 characters long",
		}
	}
	return &User{Username: username, Password: password}, nil
}
