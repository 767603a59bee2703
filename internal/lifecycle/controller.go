// Package lifecycle контролирует каждую смену статуса инцидента и проверяет
// сообщения об инцидентах до отправки в backend.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentGateway - часть удаленного шлюза, через которую пишет контроллер
type IncidentGateway interface {
	CreateIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error)
	PatchIncident(ctx context.Context, id int64, patch models.IncidentPatch) (*models.Incident, error)
}

// IllegalTransitionError - запрещённый переход статуса
type IllegalTransitionError struct {
	ID   int64
	From models.Status
	To   models.Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("incident %d: illegal transition %s -> %s", e.ID, e.From, e.To)
}

// InvalidIncidentDraftError перечисляет json-имена всех непрошедших полей
type InvalidIncidentDraftError struct {
	Fields []string
}

func (e *InvalidIncidentDraftError) Error() string {
	return "invalid incident draft: " + strings.Join(e.Fields, ", ")
}

// CanTransition сообщает, допустим ли переход from -> to. Единственный
// допустимый переход Active -> Cleared, Cleared конечный.
func CanTransition(from, to models.Status) bool {
	return from == models.StatusActive && to == models.StatusCleared
}

// ClearPatch строит частичный патч для закрытия инцидента в указанном
// статусе.
func ClearPatch(id int64, from models.Status) (models.IncidentPatch, error) {
	if !CanTransition(from, models.StatusCleared) {
		return models.IncidentPatch{}, &IllegalTransitionError{ID: id, From: from, To: models.StatusCleared}
	}
	cleared := models.StatusCleared
	return models.IncidentPatch{Status: &cleared}, nil
}

type Controller struct {
	gateway IncidentGateway
	logger  *logrus.Logger
}

func NewController(gateway IncidentGateway, logger *logrus.Logger) *Controller {
	return &Controller{
		gateway: gateway,
		logger:  logger,
	}
}

// Clear переводит активный инцидент в Cleared. Возвращается инцидент
// в том виде, в каком его вернул backend после патча.
func (c *Controller) Clear(ctx context.Context, incident *models.Incident) (*models.Incident, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component":   "lifecycle",
		"method":      "Clear",
		"incident_id": incident.ID,
		"status":      incident.Status,
	})

	patch, err := ClearPatch(incident.ID, incident.Status)
	if err != nil {
		log.WithError(err).Warn("Rejected status transition")
		return nil, err
	}

	updated, err := c.gateway.PatchIncident(ctx, incident.ID, patch)
	if err != nil {
		log.WithError(err).Error("Failed to send clear patch")
		return nil, fmt.Errorf("lifecycle: could not clear incident %d: %w", incident.ID, err)
	}

	log.Info("Incident cleared")
	return updated, nil
}

// ReportIncident проверяет черновик и создает инцидент. id и reported_at
// результата назначает backend.
func (c *Controller) ReportIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error) {
	draft = draft.Normalized()
	log := c.logger.WithFields(logrus.Fields{
		"component":  "lifecycle",
		"method":     "ReportIncident",
		"type":       draft.Type,
		"station_id": draft.StationID,
	})

	if err := ValidateDraft(draft); err != nil {
		log.WithError(err).Warn("Incident draft rejected")
		return nil, err
	}

	created, err := c.gateway.CreateIncident(ctx, draft)
	if err != nil {
		log.WithError(err).Error("Failed to report incident")
		return nil, fmt.Errorf("lifecycle: could not report incident: %w", err)
	}

	log.WithField("incident_id", created.ID).Info("Incident reported")
	return created, nil
}

// ValidateDraft проверяет уже нормализованный черновик
func ValidateDraft(draft models.IncidentDraft) error {
	err := models.Validator().Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate incident draft: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if strings.HasPrefix(name, "units_responding") {
			name = "units_responding"
		}
		if !seen[name] {
			seen[name] = true
			fields = append(fields, name)
		}
	}
	return &InvalidIncidentDraftError{Fields: fields}
}
