package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"aqarBack/internal/models"
	"aqarBack/internal/repositories"
	"aqarBack/utils"
)

const (
	accessTokenTTL  = 120 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.SignUpResponse, error) {
	existingByEmail, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	if existingByEmail.Email != "" {
		return models.SignUpResponse{}, models.ErrDuplicateEmail
	}

	existingByPhone, err := s.UserRepo.GetUserByPhone(ctx, user.Phone)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	if existingByPhone.Phone != "" {
		return models.SignUpResponse{}, models.ErrDuplicatePhone
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	user.Password = string(hashed)
	// Admins are promoted manually, never self-registered.
	user.IsAdmin = false

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, created)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	return models.SignUpResponse{User: created, Tokens: tokens}, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignUpResponse, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	if user.Email == "" {
		return models.SignUpResponse{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.SignUpResponse{}, models.ErrInvalidCredentials
	}
	user.Password = ""

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	return models.SignUpResponse{User: user, Tokens: tokens}, nil
}

func (s *UserService) SignOut(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSession(ctx, userID)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return s.UserRepo.UpdateUser(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserRepo.DeleteUser(ctx, id)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	role := "user"
	if user.IsAdmin {
		role = "admin"
	}

	accessToken, err := s.TokenManager.NewJWT(user.ID, role, accessTokenTTL)
	if err != nil {
		return models.Tokens{}, err
	}

	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         role,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.SetSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}

	return models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
