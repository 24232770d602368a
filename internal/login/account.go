// Package login implements the login screen shown at startup and the
// credential check behind it.
package login

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingCredential reports a credential that was never provided, as
// opposed to one that is present but wrong.
var ErrMissingCredential = errors.New("credential not provided")

// validCredential is what both fields are matched against,
// case-insensitively.
const validCredential = "root"

// initialLevel is the account level granted on login.
const initialLevel = 1

// Account is a logged-in player.
type Account struct {
	Username string
	Password string
	Level    int
}

// NewAccount creates an account at the given level.
func NewAccount(username, password string, level int) *Account {
	return &Account{
		Username: username,
		Password: password,
		Level:    level,
	}
}

// CheckCredentials matches each field independently against the expected
// credential, ignoring case, so callers can tell a wrong password apart
// from wrong credentials. A nil field is an error rather than a failed
// match; empty strings simply fail to match.
func CheckCredentials(username, password *string) (usernameOK, passwordOK bool, err error) {
	if username == nil {
		return false, false, fmt.Errorf("username: %w", ErrMissingCredential)
	}
	if password == nil {
		return false, false, fmt.Errorf("password: %w", ErrMissingCredential)
	}
	return strings.EqualFold(*username, validCredential),
		strings.EqualFold(*password, validCredential),
		nil
}
