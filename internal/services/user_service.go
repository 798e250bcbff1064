package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	ErrInvalidRole     = errors.New("role must be admin, manager or employee")
)

// UserService manages user accounts.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents the form fields of a new user.
type CreateUserInput struct {
	UserName string
	Name     string
	Email    string
	Password string
	Role     models.Role
}

// CreateUser hashes the password and inserts the user. Admin only.
func (s *UserService) CreateUser(ctx context.Context, actor Actor, input CreateUserInput) (*models.User, error) {
	if err := authorize(actor, OpCreateUser); err != nil {
		return nil, err
	}
	return s.create(ctx, input)
}

// EnsureAdmin seeds input as an admin account unless an admin already exists.
// It reports whether a user was created.
func (s *UserService) EnsureAdmin(ctx context.Context, input CreateUserInput) (bool, error) {
	count, err := s.userRepo.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	input.Role = models.RoleAdmin
	if _, err := s.create(ctx, input); err != nil {
		return false, err
	}
	return true, nil
}

// ListNames returns the user lookup table of the task form.
func (s *UserService) ListNames(ctx context.Context, actor Actor) ([]repository.NameRef, error) {
	if err := authorize(actor, OpLookupNames); err != nil {
		return nil, err
	}

	refs, err := s.userRepo.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return refs, nil
}

func (s *UserService) create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	userName := strings.TrimSpace(input.UserName)
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	switch {
	case userName == "":
		return nil, invalid("user_name", ErrFieldRequired)
	case name == "":
		return nil, invalid("name", ErrFieldRequired)
	case email == "":
		return nil, invalid("email", ErrFieldRequired)
	case !input.Role.Valid():
		return nil, invalid("role", ErrInvalidRole)
	case input.Password == "":
		return nil, invalid("password", ErrFieldRequired)
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, invalid("password", ErrPasswordTooLong)
		}
		return nil, err
	}

	user := &models.User{
		UserName:     userName,
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         input.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, writeError("create user", err)
	}

	return user, nil
}
