package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/shenikar/incident_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthService — вспомогательная функция для создания сервиса авторизации с моками
func newTestAuthService(t *testing.T, cfg *config.Config) (service.AuthService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if cfg == nil {
		cfg = &config.Config{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		}
	}

	svc := service.NewAuthService(usersMock, logger, cfg)
	return svc, usersMock
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	// Подготовка
	svc, usersMock := newTestAuthService(t, nil)
	ctx := context.Background()

	usersMock.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			// Симулируем, что БД присвоила id
			user.ID = 42
			return nil
		}).Times(1)

	// Действие
	token, user, err := svc.Login(ctx, "google", service.GoogleProfile{
		ID:    "g1",
		Email: "a@x.com",
		Name:  "A",
	})

	// Проверки: токен валиден и несет id пользователя
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "A", user.Name)

	identity := svc.Verify(token)
	assert.False(t, identity.Anonymous)
	assert.Equal(t, int64(42), identity.UserID)
}

func TestLogin_UpsertKeepsInternalID(t *testing.T) {
	// Подготовка: повторный логин с новым именем обновляет запись,
	// но внутренний id остается прежним
	svc, usersMock := newTestAuthService(t, nil)
	ctx := context.Background()

	usersMock.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "g1", user.GoogleID)
			user.ID = 7
			return nil
		}).Times(2)

	// Действие
	_, first, err := svc.Login(ctx, "google", service.GoogleProfile{ID: "g1", Email: "a@x.com", Name: "A"})
	require.NoError(t, err)

	_, second, err := svc.Login(ctx, "google", service.GoogleProfile{ID: "g1", Email: "a@x.com", Name: "B"})
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "B", second.Name)
}

func TestLogin_EmptyProfileFallsBackToMockValues(t *testing.T) {
	// Подготовка
	svc, usersMock := newTestAuthService(t, nil)
	ctx := context.Background()

	var saved models.User
	usersMock.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			user.ID = 1
			saved = *user
			return nil
		}).Times(1)

	// Действие
	_, _, err := svc.Login(ctx, "google", service.GoogleProfile{})

	// Проверки: пустые поля профиля заменены мок-значениями
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(saved.GoogleID, "mock_google_id_"))
	assert.Equal(t, "mock@example.com", saved.Email)
	assert.Equal(t, "Mock User", saved.Name)
}

func TestLogin_RepositoryError(t *testing.T) {
	// Подготовка
	svc, usersMock := newTestAuthService(t, nil)
	ctx := context.Background()

	usersMock.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("db down")).Times(1)

	// Действие
	token, user, err := svc.Login(ctx, "google", service.GoogleProfile{ID: "g1"})

	// Проверки
	require.Error(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.ErrorContains(t, err, "could not upsert user")
}

func TestVerify_GarbageTokenIsAnonymous(t *testing.T) {
	svc, _ := newTestAuthService(t, nil)

	identity := svc.Verify("not-a-token")

	assert.True(t, identity.Anonymous)
}

func TestVerify_WrongSecretIsAnonymous(t *testing.T) {
	// Подготовка: токен подписан другим секретом
	issuer, _ := newTestAuthService(t, &config.Config{JWTSecret: "other-secret", TokenTTL: time.Hour})
	verifier, _ := newTestAuthService(t, nil)

	token, err := issuer.IssueToken(42, "g1")
	require.NoError(t, err)

	// Действие
	identity := verifier.Verify(token)

	// Проверки: подпись не сошлась, запрос гостевой
	assert.True(t, identity.Anonymous)
}

func TestVerify_ExpiredTokenIsAnonymous(t *testing.T) {
	// Подготовка: отрицательный TTL дает уже просроченный токен
	svc, _ := newTestAuthService(t, &config.Config{JWTSecret: "test-secret", TokenTTL: -time.Minute})

	token, err := svc.IssueToken(42, "g1")
	require.NoError(t, err)

	// Действие
	identity := svc.Verify(token)

	// Проверки
	assert.True(t, identity.Anonymous)
}
