// Package validators contains validators found throughout the application
// that have been abstracted away from the main code
package validators

import (
	"errors"
	"strings"
)

var (
	ErrEmailEmpty   = errors.New("Email and password are required")
	ErrEmailInvalid = errors.New("Invalid email format")
)

// NormalizeEmail lowercases and trims an address. All storage and
// comparison happens on the normalized form, so Test@X.com and
// " test@x.com " are the same account.
func NormalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// EmailValidator deliberately checks only for an "@": clients that
// registered against the previous system were accepted on that rule,
// and tightening it would lock some of them out.
func EmailValidator(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	if !strings.Contains(e, "@") {
		return ErrEmailInvalid
	}

	return nil
}
