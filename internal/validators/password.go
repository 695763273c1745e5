package validators

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the minimum number of characters of a password.
const MinPasswordLength = 10

// SpecialCharacters lists the characters that satisfy the special
// character rule.
const SpecialCharacters = `!@#$%^&*()_+{}[]:;<>,.?~\`

// ValidatePassword checks password against the policy. Rules are evaluated
// in order and the first failing rule is returned:
//  1. at least MinPasswordLength characters
//  2. a lowercase letter
//  3. an uppercase letter
//  4. a digit
//  5. a character from SpecialCharacters
//
// Every returned error matches both ErrWeakPassword and the specific rule.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return weak(ErrPasswordTooShort)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(SpecialCharacters, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasLower:
		return weak(ErrPasswordNoLowercase)
	case !hasUpper:
		return weak(ErrPasswordNoUppercase)
	case !hasDigit:
		return weak(ErrPasswordNoDigit)
	case !hasSpecial:
		return weak(ErrPasswordNoSpecial)
	}

	return nil
}

func weak(rule error) error {
	return fmt.Errorf("%w: %w", ErrWeakPassword, rule)
}
