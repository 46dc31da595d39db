package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"invencost/internal/dto"
	"invencost/internal/model"
	"invencost/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService covers the profile surface of the authenticated user.
type UserService interface {
	Profile(ctx context.Context, userID uint) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	ChangePassword(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Profile(ctx context.Context, userID uint) (*dto.ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Email != nil && !strings.EqualFold(*req.Email, user.Email) {
		taken, err := s.repo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: el email ya está registrado", ErrDuplicate)
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = req.ProfilePicture
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error {
	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return fmt.Errorf("%w: la contraseña actual es incorrecta", ErrInvalidCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), 12)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.repo.Update(ctx, user)
}

func toProfile(u *model.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Phone:          u.Phone,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		Roles:          u.Roles,
	}
}
