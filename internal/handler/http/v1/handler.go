package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/fire_dashboard/internal/config"
	"github.com/shenikar/fire_dashboard/internal/lifecycle"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/shenikar/fire_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

const defaultSeriesDays = 14

type Handler struct {
	departmentService service.DepartmentService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(departmentService service.DepartmentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		departmentService: departmentService,
		logger:            logger,
		validate:          models.Validator(),
		cfg:               cfg,
	}
}

// logFor возвращает запись лога, привязанную к запросу
func (h *Handler) logFor(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
}

// respondError переводит ошибки сервиса в коды ответа
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFound string) {
	var (
		illegal      *lifecycle.IllegalTransitionError
		invalidDraft *lifecycle.InvalidIncidentDraftError
		invalid      *service.ValidationError
	)
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Record not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFound})
	case errors.As(err, &illegal):
		log.WithError(err).Warn("Illegal status transition")
		c.JSON(http.StatusConflict, ErrorResponse{Error: illegal.Error()})
	case errors.As(err, &invalidDraft):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidDraft.Error()})
	case errors.As(err, &invalid):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalid.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// @Summary API greeting
// @Tags System
// @Produce json
// @Success 200 {object} HelloResponse
// @Router /hello [get]
func (h *Handler) hello(c *gin.Context) {
	c.JSON(http.StatusOK, HelloResponse{Message: "Welcome to the Fire Department API"})
}

// @Summary Get department statistics
// @Description Current statistics snapshot. Cached until the next incident change.
// @Tags Stats
// @Produce json
// @Success 200 {object} models.StatsSnapshot
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logFor(c, "getStats")

	stats, err := h.departmentService.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get calls per day
// @Description Incident counts per UTC day over the last N days. Days without calls are omitted.
// @Tags Stats
// @Produce json
// @Param days query int false "Window in days" default(14)
// @Success 200 {object} SeriesResponse
// @Failure 400 {object} ErrorResponse "Invalid window"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /metrics/calls_by_day [get]
func (h *Handler) getCallsByDay(c *gin.Context) {
	log := h.logFor(c, "getCallsByDay")

	days := defaultSeriesDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be an integer"})
			return
		}
		days = n
	}

	points, err := h.departmentService.CallsByDay(c.Request.Context(), days)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, SeriesResponse{Series: points})
}

// @Summary List incidents
// @Description List incidents, optionally filtered by status and severity
// @Tags Incidents
// @Produce json
// @Param status query string false "Active or Cleared"
// @Param severity query string false "Low, Moderate, High or Critical"
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter value"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logFor(c, "listIncidents")

	filters, err := query.Parse(c.Request.URL.RawQuery)
	if err != nil {
		log.WithError(err).Warn("Invalid filter")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	incidents, err := h.departmentService.ListIncidents(c.Request.Context(), filters)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, IncidentListResponse{Incidents: incidents})
}

// @Summary Get incident by ID
// @Description Get a single incident together with its station
// @Tags Incidents
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} models.IncidentDetail
// @Failure 400 {object} ErrorResponse "Invalid incident ID"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid incident ID"})
		return
	}
	log := h.logFor(c, "getIncident").WithField("id", id)

	detail, err := h.departmentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Report a new incident
// @Description Create an active incident. The backend assigns id and reported_at.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logFor(c, "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	draft, err := RequestToIncidentDraft(input)
	if err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	incident, err := h.departmentService.CreateIncident(c.Request.Context(), draft)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusCreated, IncidentResponse{Incident: *incident})
}

// @Summary Update an incident
// @Description Partial update. Only Active -> Cleared is a legal status change.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Param patch body PatchIncidentRequest true "Fields to change"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid incident ID or request body"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 409 {object} ErrorResponse "Illegal status transition"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [patch]
func (h *Handler) patchIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid incident ID"})
		return
	}
	log := h.logFor(c, "patchIncident").WithField("id", id)

	var input PatchIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	patch, err := RequestToIncidentPatch(input)
	if err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	incident, err := h.departmentService.PatchIncident(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, IncidentResponse{Incident: *incident})
}

// @Summary List stations
// @Tags Stations
// @Produce json
// @Success 200 {object} StationListResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /stations [get]
func (h *Handler) listStations(c *gin.Context) {
	log := h.logFor(c, "listStations")

	stations, err := h.departmentService.ListStations(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, StationListResponse{Stations: stations})
}

// @Summary Get station by ID
// @Description Station with its incidents, newest first
// @Tags Stations
// @Produce json
// @Param id path int true "Station ID"
// @Success 200 {object} models.StationDetail
// @Failure 400 {object} ErrorResponse "Invalid station ID"
// @Failure 404 {object} ErrorResponse "Station not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /stations/{id} [get]
func (h *Handler) getStation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid station ID"})
		return
	}
	log := h.logFor(c, "getStation").WithField("id", id)

	detail, err := h.departmentService.GetStation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "station not found")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary List firefighters
// @Tags Firefighters
// @Produce json
// @Success 200 {object} FirefighterListResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /firefighters [get]
func (h *Handler) listFirefighters(c *gin.Context) {
	log := h.logFor(c, "listFirefighters")

	firefighters, err := h.departmentService.ListFirefighters(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, FirefighterListResponse{Firefighters: firefighters})
}

// @Summary Add a firefighter
// @Tags Firefighters
// @Accept json
// @Produce json
// @Param firefighter body CreateFirefighterRequest true "Firefighter"
// @Success 201 {object} FirefighterResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /firefighters [post]
func (h *Handler) createFirefighter(c *gin.Context) {
	var input CreateFirefighterRequest
	log := h.logFor(c, "createFirefighter")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	firefighter, err := h.departmentService.CreateFirefighter(c.Request.Context(), RequestToFirefighterDraft(input))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusCreated, FirefighterResponse{Firefighter: *firefighter})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
