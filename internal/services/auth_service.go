package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ecogauge/back/internal/models"
	"github.com/ecogauge/back/internal/repositories"
	"github.com/ecogauge/back/internal/utils"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	now         func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	// ユーザー取得
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return &models.LoginResponse{
			Success: false,
			Error:   "Invalid username or password",
		}, nil
	}

	// パスワード検証
	if !s.verifyPassword(req.Password, user.PasswordHash) {
		return &models.LoginResponse{
			Success: false,
			Error:   "Invalid username or password",
		}, nil
	}

	// トークン生成
	token, err := s.generateToken()
	if err != nil {
		return &models.LoginResponse{
			Success: false,
			Error:   "Failed to generate session token",
		}, nil
	}

	// セッション作成（TTLは固定1時間、アクセスしても延長されない）
	now := s.now()
	session := &models.Session{
		ID:        token,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(models.SessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return &models.LoginResponse{
			Success: false,
			Error:   "Failed to create session",
		}, nil
	}

	return &models.LoginResponse{
		Success: true,
		Token:   token,
	}, nil
}

func (s *authService) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	// セッション取得
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("invalid token")
	}

	// 有効期限チェック（遅延削除）
	if s.now().After(session.ExpiresAt) {
		s.sessionRepo.Delete(ctx, token) // 期限切れセッションを削除
		return nil, fmt.Errorf("token expired")
	}

	// セッションに保存されたユーザー名でユーザーを取得
	user, err := s.userRepo.GetByUsername(ctx, session.Username)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

// generateToken generates a random token
func (s *authService) generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// verifyPassword verifies the password using bcrypt
func (s *authService) verifyPassword(password, hash string) bool {
	return utils.VerifyPassword(password, hash)
}
