package utils

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/uiforge/uiforge-backend/internal/repos"
	"github.com/uiforge/uiforge-backend/internal/types"
)

// ParseInputString is the canonical normalization for all user-supplied
// string fields: trim surrounding whitespace, nothing else.
func ParseInputString(s string) string {
	return strings.TrimSpace(s)
}

func NormalizeUserFields(user *types.User) {
	user.Email = strings.ToLower(ParseInputString(user.Email))
	user.Password = ParseInputString(user.Password)
	user.FirstName = ParseInputString(user.FirstName)
	user.LastName = ParseInputString(user.LastName)
}

func ValidateRegistrationInput(ctx context.Context, userRepo repos.UserRepo, user *types.User) error {
	if user == nil {
		return fmt.Errorf("no user given, cannot proceed with registration")
	}
	if user.Email == "" {
		return fmt.Errorf("an email is required to register")
	}
	if user.Password == "" {
		return fmt.Errorf("a password is required to register")
	}
	if user.FirstName == "" {
		return fmt.Errorf("a first name is required to register")
	}
	if user.LastName == "" {
		return fmt.Errorf("a last name is required to register")
	}
	emailExists, err := userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return fmt.Errorf("failed to check user email: %w", err)
	}
	if emailExists {
		return fmt.Errorf("email is already in use")
	}
	return nil
}

func ValidateLoginInput(email, password string) error {
	if email == "" {
		return fmt.Errorf("email is required to login")
	}
	if password == "" {
		return fmt.Errorf("password is required to login")
	}
	return nil
}

func HashPassword(user *types.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	return nil
}
