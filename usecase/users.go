package usecase

import (
	"context"
	"fmt"
	"time"

	"main/model"
	"main/repository"
	"main/services"

	"github.com/google/uuid"
)

// UserService covers registration and login lookups. Request field
// validation lives in the binding tags; this layer only enforces the rules
// the database has to arbitrate, like username uniqueness.
type UserService struct {
	Users *repository.UserRepo
}

// CreateUser registers a new user with a hashed password
func (s *UserService) CreateUser(ctx context.Context, user *model.User) error {
	existing, err := s.Users.FindUserByUsername(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return ErrDuplicateUser
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		return validationError("%v", err)
	}

	user.UserID = uuid.New().String()
	user.Password = hashed
	user.CreatedAt = time.Now()

	if _, err := s.Users.AddUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Authenticate checks a username/password pair and returns the user on
// success. Wrong username and wrong password both come back as ErrNotFound
// so responses cannot be used to probe for registered usernames.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.Users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		return nil, ErrNotFound
	}
	return user, nil
}
