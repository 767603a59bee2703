// Package dashboard собирает слой данных в представления дашборда: обзор,
// доску инцидентов, карточку инцидента и состав. Представления держат свои
// снимки и ходят в backend только через Gateway.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/fire_dashboard/internal/lifecycle"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/sirupsen/logrus"
)

var (
	// ErrStaleResult - ответ пришёл после смены фильтров, очистки или закрытия
	ErrStaleResult = errors.New("dashboard: stale result discarded")
	// ErrViewClosed - представление уже закрыто
	ErrViewClosed = errors.New("dashboard: view closed")
)

// Gateway - удаленный шлюз данных с точки зрения представлений
type Gateway interface {
	GetStats(ctx context.Context) (*models.StatsSnapshot, error)
	GetCallsByDay(ctx context.Context, days int) ([]models.TimeSeriesPoint, error)
	ListIncidents(ctx context.Context, filters query.Filters) ([]models.Incident, error)
	GetIncident(ctx context.Context, id int64) (*models.IncidentDetail, error)
	CreateIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error)
	PatchIncident(ctx context.Context, id int64, patch models.IncidentPatch) (*models.Incident, error)
	ListStations(ctx context.Context) ([]models.Station, error)
	GetStation(ctx context.Context, id int64) (*models.StationDetail, error)
	ListFirefighters(ctx context.Context) ([]models.Firefighter, error)
	CreateFirefighter(ctx context.Context, draft models.FirefighterDraft) (*models.Firefighter, error)
}

// InvalidFirefighterDraftError перечисляет json-имена всех непрошедших полей
type InvalidFirefighterDraftError struct {
	Fields []string
}

func (e *InvalidFirefighterDraftError) Error() string {
	return "invalid firefighter draft: " + strings.Join(e.Fields, ", ")
}

type Dashboard struct {
	gateway    Gateway
	controller *lifecycle.Controller
	logger     *logrus.Logger
}

func New(gateway Gateway, logger *logrus.Logger) *Dashboard {
	return &Dashboard{
		gateway:    gateway,
		controller: lifecycle.NewController(gateway, logger),
		logger:     logger,
	}
}

// ReportIncident проверяет черновик локально и создает инцидент
func (d *Dashboard) ReportIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error) {
	return d.controller.ReportIncident(ctx, draft)
}

// IncidentDetail загружает инцидент вместе с его станцией
func (d *Dashboard) IncidentDetail(ctx context.Context, id int64) (*models.IncidentDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("dashboard: invalid incident id %d", id)
	}
	detail, err := d.gateway.GetIncident(ctx, id)
	if err != nil {
		d.logger.WithFields(logrus.Fields{
			"component":   "dashboard",
			"method":      "IncidentDetail",
			"incident_id": id,
		}).WithError(err).Error("Failed to load incident")
		return nil, err
	}
	return detail, nil
}

// StationDetail загружает станцию с ее последними инцидентами
func (d *Dashboard) StationDetail(ctx context.Context, id int64) (*models.StationDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("dashboard: invalid station id %d", id)
	}
	return d.gateway.GetStation(ctx, id)
}
