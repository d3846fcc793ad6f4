package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/uiforge/uiforge-backend/internal/types"
)

type fakeUserRepo struct {
	emailTaken bool
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	return users, nil
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	return f.emailTaken, nil
}

func TestNormalizeUserFields(t *testing.T) {
	u := &types.User{
		Email:     "  Jane.Doe@Example.COM ",
		Password:  " secret ",
		FirstName: "  Jane ",
		LastName:  " Doe  ",
	}
	NormalizeUserFields(u)
	if u.Email != "jane.doe@example.com" {
		t.Fatalf("unexpected email: %q", u.Email)
	}
	if u.Password != "secret" || u.FirstName != "Jane" || u.LastName != "Doe" {
		t.Fatalf("unexpected normalized fields: %+v", u)
	}
}

func TestValidateRegistrationInput(t *testing.T) {
	valid := func() *types.User {
		return &types.User{
			Email:     "jane@example.com",
			Password:  "secret",
			FirstName: "Jane",
			LastName:  "Doe",
		}
	}

	if err := ValidateRegistrationInput(context.Background(), &fakeUserRepo{}, valid()); err != nil {
		t.Fatalf("unexpected error for valid input: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*types.User)
		taken  bool
	}{
		{"missing email", func(u *types.User) { u.Email = "" }, false},
		{"missing password", func(u *types.User) { u.Password = "" }, false},
		{"missing first name", func(u *types.User) { u.FirstName = "" }, false},
		{"missing last name", func(u *types.User) { u.LastName = "" }, false},
		{"email taken", func(u *types.User) {}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := valid()
			tc.mutate(u)
			err := ValidateRegistrationInput(context.Background(), &fakeUserRepo{emailTaken: tc.taken}, u)
			if err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("jane@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateLoginInput("", "secret"); err == nil {
		t.Fatalf("expected error for missing email")
	}
	if err := ValidateLoginInput("jane@example.com", ""); err == nil {
		t.Fatalf("expected error for missing password")
	}
}

func TestHashPassword_RoundTrips(t *testing.T) {
	u := &types.User{Password: "secret"}
	if err := HashPassword(u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Password == "secret" {
		t.Fatalf("password was not hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("wrong")); err == nil {
		t.Fatalf("hash verified wrong password")
	}
}
