package validators

import "errors"

var (
	ErrPasswordEmpty    = errors.New("Email and password are required")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters long")
	ErrPasswordTooLong  = errors.New("Password is too long")
)

func PasswordValidator(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if len(p) < 6 {
		return ErrPasswordTooShort
	}

	if len(p) > 255 {
		return ErrPasswordTooLong
	}

	return nil
}
