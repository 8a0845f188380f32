package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/auth"
	"github.com/whvsdan/theboardroom/internal/config"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

var errInvalidCredentials = apperrors.New(
	apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401,
)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	Me(db *gorm.DB, userID string) (*dto.AdminUserInfo, error)
}

type authService struct {
	userRepo  repositories.AdminUserRepository
	tokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(
	userRepo repositories.AdminUserRepository,
	tokenRepo repositories.RefreshTokenRepository,
) AuthService {
	return &authService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminUserNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}

	return s.issueTokens(db, user)
}

func (s *authService) Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	rt, err := s.tokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	if time.Now().After(rt.ExpiresAt) {
		_ = s.tokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.New(apperrors.CodeTokenExpired, "auth", "Refresh token expired", 401)
	}

	user, err := s.userRepo.FindByID(db, rt.AdminUserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	// Rotate: the presented token is spent either way.
	if err := s.tokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

func (s *authService) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.tokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) Me(db *gorm.DB, userID string) (*dto.AdminUserInfo, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("User not found")
	}
	return &dto.AdminUserInfo{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	}, nil
}

func (s *authService) issueTokens(db *gorm.DB, user *models.AdminUser) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	refresh := &models.RefreshToken{
		Token:       generateRandomToken(),
		AdminUserID: user.ID,
		ExpiresAt:   time.Now().AddDate(0, 0, cfg.JWT.RefreshTTLDay),
	}
	if err := s.tokenRepo.Create(db, refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User: dto.AdminUserInfo{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}

func generateRandomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
