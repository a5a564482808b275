package services

import (
	"context"
	"errors"
	"strings"

	"kin-backend/internal/apperrors"
	"kin-backend/internal/auth"
	"kin-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on login with a wrong email or password
var ErrInvalidCredentials = errors.New("invalid email or password")

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePhotoURL(ctx context.Context, id, photoURL string) error
}

type UserService struct {
	repo   UserStore
	jwt    *auth.JWTManager
	photos PhotoUploader
}

func NewUserService(repo UserStore, jwt *auth.JWTManager, photos PhotoUploader) *UserService {
	return &UserService{repo: repo, jwt: jwt, photos: photos}
}

// Register creates an account and signs the first token
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidation("email", "geçerli bir e-posta girin")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.NewValidation("password", "şifre en az 6 karakter olmalı")
	}

	if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.NewValidation("email", "bu e-posta zaten kayıtlı")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwt.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login exchanges credentials for a token
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.repo.Get(ctx, userID)
}

// UpdateProfile patches the display fields; empty request fields are kept
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(req.FirstName); v != "" {
		user.FirstName = v
	}
	if v := strings.TrimSpace(req.LastName); v != "" {
		user.LastName = v
	}
	if req.BirthDate != "" {
		user.BirthDate = req.BirthDate
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfilePhoto uploads to the fixed per-user key then patches the URL
func (s *UserService) UpdateProfilePhoto(ctx context.Context, userID string, photo []byte) (*models.User, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.photos.UploadProfilePhoto(ctx, userID, photo)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePhotoURL(ctx, userID, url); err != nil {
		return nil, err
	}
	user.PhotoURL = url
	return user, nil
}
