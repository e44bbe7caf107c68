// Package service implements the application's domain operations on top of
// the repository layer.
package service

import (
	"context"

	"newsroom/internal/models"
	"newsroom/internal/repository"
	"newsroom/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService implements account operations.
type UserService struct {
	userRepo repository.UserRepository
}

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	ProfilePic string
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account with a derived password hash. Uniqueness of
// username and email is enforced by the store's constraints at commit time.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	email := validation.NormalizeEmail(in.Email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	pic := in.ProfilePic
	if pic == "" {
		pic = models.DefaultProfilePic
	}

	user := &models.User{
		Username:   in.Username,
		Email:      email,
		Password:   string(hash),
		ProfilePic: pic,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CheckPassword reports whether raw verifies against the user's stored hash.
func (s *UserService) CheckPassword(user *models.User, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(raw)) == nil
}

// SetPassword replaces the stored hash with one derived from raw.
func (s *UserService) SetPassword(ctx context.Context, userID uint, raw string) error {
	if err := validation.ValidatePassword(raw); err != nil {
		return models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	user.Password = string(hash)
	return s.userRepo.Update(ctx, user)
}

// ChangePassword verifies the old password before replacing it.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.CheckPassword(user, oldPassword) {
		return models.NewUnauthorizedError("Current password is incorrect")
	}

	return s.SetPassword(ctx, userID, newPassword)
}

// UpdateEmail normalizes and validates the address, leaving state unchanged
// on invalid input. Uniqueness is re-checked by the store at commit.
func (s *UserService) UpdateEmail(ctx context.Context, userID uint, newEmail string) (*models.User, error) {
	email := validation.NormalizeEmail(newEmail)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Email = email
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfilePicture rejects an empty reference and commits any other value.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userID uint, ref string) (*models.User, error) {
	if ref == "" {
		return nil, models.NewValidationError("Profile picture reference must not be empty")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ProfilePic = ref
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID fetches a single user.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers pages through all users.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}
