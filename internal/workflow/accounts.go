package workflow

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/openhire/openhire/pkg/models"
)

// SignupInput is the registration form.
type SignupInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Mobile          string `validate:"required,len=10,numeric"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// Signup registers an account in the role's user table. Passwords are
// stored as bcrypt hashes.
func (s *Service) Signup(role models.Role, in SignupInput) (models.UserAccount, error) {
	if !role.Valid() {
		return models.UserAccount{}, fmt.Errorf("unknown role %q", role)
	}
	if err := checkStruct(in); err != nil {
		return models.UserAccount{}, err
	}
	if err := checkPassword("password", in.Password); err != nil {
		return models.UserAccount{}, err
	}

	accounts := s.Accounts(role)
	if _, exists := accounts.FindByEmail(in.Email); exists {
		return models.UserAccount{}, &ValidationError{
			Field:   "email",
			Message: "Email already registered for this role",
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserAccount{}, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := models.UserAccount{
		Name:         in.Name,
		Email:        in.Email,
		Mobile:       in.Mobile,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := accounts.Add(acct); err != nil {
		return models.UserAccount{}, err
	}
	return acct, nil
}

// Login checks the credentials and records the session pointer. Recruiter
// logins also snapshot the display profile read at render time.
func (s *Service) Login(role models.Role, email, password string) (models.UserAccount, error) {
	acct, ok := s.Accounts(role).FindByEmail(email)
	if !ok {
		return models.UserAccount{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return models.UserAccount{}, ErrInvalidCredentials
	}

	if err := s.Session(role).Set(acct); err != nil {
		return models.UserAccount{}, err
	}
	if role == models.RoleRecruiter {
		rp := models.RecruiterProfile{Name: acct.Name, Email: acct.Email}
		if err := s.settings.SetRecruiterProfile(rp); err != nil {
			return models.UserAccount{}, err
		}
	}
	return acct, nil
}

// SocialLogin is a stub for third-party providers. It always
// fails with a descriptive message; no provider is wired up.
func (s *Service) SocialLogin(provider string) error {
	return fmt.Errorf("%s login is %w", provider, ErrNotConfigured)
}

// Logout clears the role's session pointer.
func (s *Service) Logout(role models.Role) error {
	if err := s.Session(role).Clear(); err != nil {
		return err
	}
	if role == models.RoleRecruiter {
		return s.settings.ClearRecruiterProfile()
	}
	return nil
}

// ChangePasswordInput is the password change form.
type ChangePasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
	// LogoutAll additionally clears the session, forcing a fresh login.
	LogoutAll bool
}

// ChangePassword validates the form against the logged-in account and
// rewrites the stored hash. Every precondition is checked before any
// write, so a failure leaves the account and session untouched.
func (s *Service) ChangePassword(role models.Role, in ChangePasswordInput) error {
	if in.OldPassword == "" || in.NewPassword == "" || in.ConfirmPassword == "" {
		return &ValidationError{Field: "password", Message: "All fields are required."}
	}
	if in.NewPassword != in.ConfirmPassword {
		return &ValidationError{Field: "confirmPassword", Message: "New passwords do not match."}
	}
	if err := checkPassword("newPassword", in.NewPassword); err != nil {
		return err
	}

	session := s.Session(role)
	current, ok := session.Get()
	if !ok {
		return ErrNotLoggedIn
	}

	accounts := s.Accounts(role)
	acct, ok := accounts.FindByEmail(current.Email)
	if !ok {
		return &ValidationError{Field: "email", Message: "Could not find user data. Please log in again."}
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(in.OldPassword)) != nil {
		return &ValidationError{Field: "oldPassword", Message: "Your old password is not correct."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	acct.PasswordHash = string(hash)

	if err := accounts.Update(acct); err != nil {
		return err
	}
	if in.LogoutAll {
		return s.Logout(role)
	}
	return session.Set(acct)
}

// DeleteAccount removes the logged-in account and clears everything keyed
// to the role: session pointer and notification settings.
func (s *Service) DeleteAccount(role models.Role) error {
	current, ok := s.Session(role).Get()
	if !ok {
		return ErrNotLoggedIn
	}

	if err := s.Accounts(role).RemoveByEmail(current.Email); err != nil {
		return err
	}
	if err := s.Session(role).Clear(); err != nil {
		return err
	}
	if err := s.settings.ClearRole(role); err != nil {
		return err
	}
	if role == models.RoleRecruiter {
		return s.settings.ClearRecruiterProfile()
	}
	return nil
}
