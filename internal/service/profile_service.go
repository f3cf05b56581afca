package service

import (
	"strings"

	"github.com/expenso/expenso-backend/internal/domain"
	"github.com/expenso/expenso-backend/internal/util"
	"github.com/google/uuid"
)

// ProfileService handles user profile operations
type ProfileService struct {
	userRepo domain.UserRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo domain.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// GetProfile retrieves the user's profile
func (s *ProfileService) GetProfile(userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(userID)
}

// UpdateProfileInput contains the updatable profile fields. Empty fields
// keep their current value.
type UpdateProfileInput struct {
	Username string
	Email    string
}

// UpdateProfile updates the user's username and email
func (s *ProfileService) UpdateProfile(userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if username := strings.TrimSpace(input.Username); username != "" {
		user.Username = username
	}
	if email := strings.ToLower(strings.TrimSpace(input.Email)); email != "" {
		user.Email = email
	}

	return s.userRepo.Update(user)
}

// ChangePassword replaces the user's password with a freshly hashed one
func (s *ProfileService) ChangePassword(userID uuid.UUID, newPassword string) error {
	if newPassword == "" {
		return domain.ErrPasswordRequired
	}
	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(userID, hash)
}
