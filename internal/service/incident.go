package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	ListSince(ctx context.Context, since time.Time) ([]*models.Incident, error)
}

// SubmitIncidentInput - входные данные подачи репорта. Координаты
// приходят как указатели, чтобы отличать отсутствующее поле от нулевого
// значения (экватор и нулевой меридиан - валидные координаты).
type SubmitIncidentInput struct {
	Lat         *float64
	Long        *float64
	Description string
	IsAnonymous bool
}

// IncidentService определяет контракт бизнес-логики репортов
type IncidentService interface {
	SubmitIncident(ctx context.Context, identity Identity, input SubmitIncidentInput) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter TimeWindowFilter) ([]*models.Incident, error)
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, publisher webhook.Publisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// SubmitIncident валидирует и сохраняет репорт.
//
// Политика доверия: репорт авторизованного пользователя всегда verified
// и не анонимный, независимо от флага is_anonymous в запросе. Гость
// обязан явно запросить анонимную подачу, иначе запрос отклоняется.
func (s *incidentService) SubmitIncident(ctx context.Context, identity Identity, input SubmitIncidentInput) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "SubmitIncident",
		"anonymous": identity.Anonymous,
	})
	log.Info("Attempting to submit a new incident report")

	if input.Lat == nil {
		return nil, NewValidationError("lat", "is required")
	}
	if input.Long == nil {
		return nil, NewValidationError("long", "is required")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, NewValidationError("description", "must be a non-empty string")
	}

	if identity.Anonymous && !input.IsAnonymous {
		log.Warn("Guest submission without explicit anonymous flag rejected")
		return nil, ErrUnauthorized
	}

	incident := &models.Incident{
		Lat:         *input.Lat,
		Long:        *input.Long,
		Description: description,
		Verified:    !identity.Anonymous,
		IsAnonymous: identity.Anonymous,
	}
	if !identity.Anonymous {
		userID := identity.UserID
		incident.UserID = &userID
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	// Событие о новом репорте публикуется best-effort: сбой очереди не
	// должен ломать уже состоявшуюся подачу.
	if err := s.publisher.Publish(ctx, webhook.NewIncidentEvent(incident)); err != nil {
		log.WithError(err).Warn("Failed to publish incident created event")
	}

	log.WithField("incident_id", incident.ID).Info("Incident report submitted successfully")
	return incident, nil
}

// ListIncidents возвращает репорты внутри окна времени, новые первыми
func (s *incidentService) ListIncidents(ctx context.Context, filter TimeWindowFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	since, err := ResolveTimeWindow(filter, time.Now())
	if err != nil {
		log.WithError(err).Warn("Invalid time window filter")
		return nil, err
	}

	incidents, err := s.repo.ListSince(ctx, since)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}
