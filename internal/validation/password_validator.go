package validation

import "unicode"

type PasswordValidator interface {
	ValidatePassword(password string) bool
}

type DefaultPasswordValidator struct{}

func NewDefaultPasswordValidator() *DefaultPasswordValidator {
	return &DefaultPasswordValidator{}
}

// ValidatePassword wants at least 8 characters, one of them a letter.
func (v *DefaultPasswordValidator) ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	for _, c := range password {
		if unicode.IsLetter(c) {
			return true
		}
	}
	return false
}
