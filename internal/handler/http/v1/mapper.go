package v1

import (
	"time"

	"github.com/shenikar/incident_reporting_system/internal/models"
)

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		UserID:      model.UserID,
		Lat:         model.Lat,
		Long:        model.Long,
		Description: model.Description,
		Timestamp:   model.Timestamp.Format(time.RFC3339),
		Verified:    boolToFlag(model.Verified),
		IsAnonymous: boolToFlag(model.IsAnonymous),
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToUserResponse преобразует модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) UserResponse {
	return UserResponse{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
	}
}

func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
