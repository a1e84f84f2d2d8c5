package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService     service.AuthService
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(authService service.AuthService, incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		authService:     authService,
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Login via external provider
// @Description Upsert the user by external identity and issue a session token. Provider token verification is mocked.
// @Tags Auth
// @Accept json
// @Produce json
// @Param provider path string true "External provider name" default(google)
// @Param credentials body AuthRequest true "Provider token and user profile"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Token missing or invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/{provider} [post]
func (h *Handler) login(c *gin.Context) {
	provider := c.Param("provider")
	log := h.logger.WithField("method", "login").WithField("provider", provider)

	var input AuthRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if input.Token == "" {
		log.Warn("Provider token missing from login request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "token required"})
		return
	}

	profile := service.GoogleProfile{
		ID:    input.UserInfo.ID,
		Email: input.UserInfo.Email,
		Name:  input.UserInfo.Name,
	}

	token, user, err := h.authService.Login(c.Request.Context(), provider, profile)
	if err != nil {
		log.WithError(err).Error("Failed to login in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  ModelToUserResponse(user),
	})
}

// @Summary Submit an incident report
// @Description Submit a geotagged incident report. A bearer token makes the report verified and owned; a guest must set is_anonymous.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer session token"
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 200 {object} CreateIncidentResponse
// @Failure 400 {object} map[string]string "Missing lat, long or description"
// @Failure 401 {object} map[string]string "Guest submission without explicit anonymous flag"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := identityFromContext(c)
	incident, err := h.incidentService.SubmitIncident(c.Request.Context(), identity, service.SubmitIncidentInput{
		Lat:         input.Lat,
		Long:        input.Long,
		Description: input.Description,
		IsAnonymous: input.IsAnonymous,
	})
	if err != nil {
		h.renderIncidentError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, CreateIncidentResponse{
		Message: "Incident reported successfully",
		ID:      incident.ID,
	})
}

// @Summary List incidents within a time window
// @Description List incidents newer than now minus the requested window, newest first. Precedence of keys: hours > days > weeks > months; no keys means one month back.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param hours query int false "Window size in hours"
// @Param days query int false "Window size in days"
// @Param weeks query int false "Window size in weeks (n*7 days)"
// @Param months query int false "Window size in calendar months"
// @Success 200 {object} ListIncidentsResponse
// @Failure 400 {object} map[string]string "Window value is not a positive integer"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	filter, err := parseTimeWindowFilter(c)
	if err != nil {
		log.WithError(err).Warn("Invalid time window query parameter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		h.renderIncidentError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ListIncidentsResponse{
		Incidents: ModelsToIncidentResponses(incidents),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// renderIncidentError транслирует ошибки сервиса в HTTP статусы:
// валидация - 400, отказ в авторизации - 401, остальное - 500.
func (h *Handler) renderIncidentError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case service.IsValidationError(err):
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		log.WithError(err).Warn("Unauthorized submission rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseTimeWindowFilter собирает фильтр окна времени из query-параметров
func parseTimeWindowFilter(c *gin.Context) (service.TimeWindowFilter, error) {
	var filter service.TimeWindowFilter
	var err error
	if filter.Hours, err = intQueryParam(c, "hours"); err != nil {
		return filter, err
	}
	if filter.Days, err = intQueryParam(c, "days"); err != nil {
		return filter, err
	}
	if filter.Weeks, err = intQueryParam(c, "weeks"); err != nil {
		return filter, err
	}
	if filter.Months, err = intQueryParam(c, "months"); err != nil {
		return filter, err
	}
	return filter, nil
}

// intQueryParam читает опциональный целочисленный query-параметр.
// Отсутствие параметра - не ошибка, нечисловое значение - ошибка.
func intQueryParam(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, service.NewValidationError(name, "must be a positive integer")
	}
	return &n, nil
}
