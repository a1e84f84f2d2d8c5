package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Identity - результат проверки токена запроса. Ровно два состояния:
// Anonymous == false и валидный UserID, либо Anonymous == true.
// Отсутствие или невалидность токена не является ошибкой - запрос
// просто продолжается как гостевой.
type Identity struct {
	UserID    int64
	Anonymous bool
}

// AnonymousIdentity возвращает гостевую идентичность
func AnonymousIdentity() Identity {
	return Identity{Anonymous: true}
}

// GoogleProfile - профиль пользователя, присланный клиентом после логина
// у внешнего провайдера
type GoogleProfile struct {
	ID    string
	Email string
	Name  string
}

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
}

// AuthService определяет контракт сессионных токенов и логина
type AuthService interface {
	Login(ctx context.Context, provider string, profile GoogleProfile) (string, *models.User, error)
	IssueToken(userID int64, googleID string) (string, error)
	Verify(tokenString string) Identity
}

// Claims - структура утверждений токена: стандартные утверждения плюс
// идентификаторы пользователя
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"id"`
	GoogleID string `json:"google_id"`
}

type authService struct {
	users  UserRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(users UserRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		users:  users,
		logger: logger,
		cfg:    cfg,
	}
}

// Login создает или обновляет пользователя по внешнему идентификатору и
// выпускает для него сессионный токен. Проверка токена провайдера -
// заглушка: реальной валидации у Google нет, пустые поля профиля
// заменяются мок-значениями.
func (s *authService) Login(ctx context.Context, provider string, profile GoogleProfile) (string, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"provider": provider,
	})
	log.Info("Attempting user login")

	googleID := profile.ID
	if googleID == "" {
		googleID = fmt.Sprintf("mock_google_id_%d", time.Now().UnixMilli())
	}
	email := profile.Email
	if email == "" {
		email = "mock@example.com"
	}
	name := profile.Name
	if name == "" {
		name = "Mock User"
	}

	user := &models.User{
		GoogleID: googleID,
		Email:    email,
		Name:     name,
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		log.WithError(err).Error("Failed to upsert user in repository")
		return "", nil, fmt.Errorf("service: could not upsert user: %w", err)
	}

	token, err := s.IssueToken(user.ID, user.GoogleID)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		return "", nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return token, user, nil
}

// IssueToken выпускает подписанный HS256 токен с ограниченным сроком жизни
func (s *authService) IssueToken(userID int64, googleID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   userID,
		GoogleID: googleID,
	})

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify проверяет токен запроса. Любая проблема с токеном (подпись,
// срок жизни, формат) тихо понижает запрос до гостевого - это штатное
// поведение, а не ошибка.
func (s *authService) Verify(tokenString string) Identity {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		s.logger.WithError(err).Debug("Invalid session token, treating request as anonymous")
		return AnonymousIdentity()
	}

	return Identity{UserID: claims.UserID}
}
