package user

import (
	"fmt"
	"regexp"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{3,32}$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasNumber       = regexp.MustCompile(`[0-9]`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if len(pw) > 72 {
		return fmt.Errorf("password must be at most 72 bytes long")
	}
	if !hasLetter.MatchString(pw) {
		return fmt.Errorf("password must include at least one letter")
	}
	if !hasNumber.MatchString(pw) {
		return fmt.Errorf("password must include at least one number")
	}
	return nil
}

// PasswordError wraps a complexity failure so handlers can report it as a 400.
type PasswordError struct {
	Err error
}

func (e PasswordError) Error() string { return e.Err.Error() }

func (e PasswordError) Unwrap() error { return e.Err }
