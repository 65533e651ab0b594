package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"media-orbit/core/storage"
	"media-orbit/feature/catalog/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service errors surfaced to the handler.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service implements account management: registration, login, token
// issuance and avatar storage.
type Service struct {
	db       *gorm.DB
	store    storage.Client
	storeCfg storage.Config
	secret   string
	tokenTTL time.Duration
	logger   *zap.Logger
}

// NewService creates the auth service.
func NewService(db *gorm.DB, store storage.Client, storeCfg storage.Config,
	secret string, tokenTTLHours int, logger *zap.Logger) *Service {
	if tokenTTLHours <= 0 {
		tokenTTLHours = 168
	}
	return &Service{
		db:       db,
		store:    store,
		storeCfg: storeCfg,
		secret:   secret,
		tokenTTL: time.Duration(tokenTTLHours) * time.Hour,
		logger:   logger,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(name, email, password string) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("User registered", zap.Uint("user_id", user.ID))
	return &user, nil
}

// Login verifies the credentials and returns the matching user.
func (s *Service) Login(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// IssueToken mints an HS256 token for the user.
func (s *Service) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Me loads a user by ID.
func (s *Service) Me(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveAvatar uploads the avatar to object storage and updates the user's
// avatar URL. A previous avatar stored under a different object name is
// removed afterwards.
func (s *Service) SaveAvatar(ctx context.Context, userID uint, filename, contentType string, r io.Reader, size int64) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return "", fmt.Errorf("unsupported avatar format %q", ext)
	}

	user, err := s.Me(userID)
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	objectName := fmt.Sprintf("avatars/%d%s", userID, ext)
	_, err = s.store.PutObject(ctx, s.storeCfg.Bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	url := s.avatarURL(objectName)
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Update("avatar_url", url).Error; err != nil {
		return "", fmt.Errorf("save avatar url: %w", err)
	}

	if old := avatarObjectName(user.AvatarURL); old != "" && old != objectName {
		err := s.store.RemoveObject(ctx, s.storeCfg.Bucket, old, minio.RemoveObjectOptions{})
		if err != nil {
			s.logger.Warn("Stale avatar cleanup failed",
				zap.Uint("user_id", userID), zap.String("object", old), zap.Error(err))
		}
	}

	s.logger.Info("Avatar updated", zap.Uint("user_id", userID), zap.String("object", objectName))
	return url, nil
}

// avatarObjectName recovers the object key from a previously issued avatar
// URL.
func avatarObjectName(avatarURL *string) string {
	if avatarURL == nil {
		return ""
	}
	idx := strings.Index(*avatarURL, "/avatars/")
	if idx < 0 {
		return ""
	}
	return (*avatarURL)[idx+1:]
}

func (s *Service) avatarURL(objectName string) string {
	base := strings.TrimSuffix(s.storeCfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if s.storeCfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + s.storeCfg.Endpoint
	}
	return fmt.Sprintf("%s/%s/%s", base, s.storeCfg.Bucket, objectName)
}
