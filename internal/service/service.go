package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shenikar/fire_dashboard/internal/config"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/observability"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/sirupsen/logrus"
)

// ErrNotFound - запись с таким id не существует
var ErrNotFound = errors.New("not found")

// ValidationError перечисляет json-имена отклоненных полей запроса
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Fields, ", ")
}

// StatusConflictError - статус инцидента изменился между чтением и записью
type StatusConflictError struct {
	ID       int64
	Expected models.Status
	Current  models.Status
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("incident %d: status is %s, expected %s", e.ID, e.Current, e.Expected)
}

// IncidentRepository определяет контракт хранилища инцидентов
type IncidentRepository interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	// UpdateIncidentStatus меняет статус, только если текущий равен from.
	// Иначе возвращает *StatusConflictError.
	UpdateIncidentStatus(ctx context.Context, id int64, from, to models.Status) (*models.Incident, error)
	ListIncidents(ctx context.Context, filters query.Filters) ([]models.Incident, error)
	ListIncidentsByStation(ctx context.Context, stationID int64) ([]models.Incident, error)
}

// RosterRepository определяет контракт хранилища станций и личного состава
type RosterRepository interface {
	ListStations(ctx context.Context) ([]models.Station, error)
	GetStation(ctx context.Context, id int64) (*models.Station, error)
	ListFirefighters(ctx context.Context) ([]models.Firefighter, error)
	CreateFirefighter(ctx context.Context, firefighter *models.Firefighter) error
}

type Repository interface {
	IncidentRepository
	RosterRepository
}

// StatsCache хранит последний рассчитанный снимок статистики.
// При промахе GetStats возвращает nil, nil.
type StatsCache interface {
	GetStats(ctx context.Context) (*models.StatsSnapshot, error)
	SetStats(ctx context.Context, stats *models.StatsSnapshot) error
	InvalidateStats(ctx context.Context) error
}

// DepartmentService определяет контракт бизнес-логики дашборда
type DepartmentService interface {
	Stats(ctx context.Context) (*models.StatsSnapshot, error)
	CallsByDay(ctx context.Context, days int) ([]models.TimeSeriesPoint, error)

	ListIncidents(ctx context.Context, filters query.Filters) ([]models.Incident, error)
	GetIncident(ctx context.Context, id int64) (*models.IncidentDetail, error)
	CreateIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error)
	PatchIncident(ctx context.Context, id int64, patch models.IncidentPatch) (*models.Incident, error)

	ListStations(ctx context.Context) ([]models.Station, error)
	GetStation(ctx context.Context, id int64) (*models.StationDetail, error)
	ListFirefighters(ctx context.Context) ([]models.Firefighter, error)
	CreateFirefighter(ctx context.Context, draft models.FirefighterDraft) (*models.Firefighter, error)
}

type departmentService struct {
	repo      Repository
	cache     StatsCache
	clock     clockwork.Clock
	logger    *logrus.Logger
	metrics   *observability.Metrics
	cfg       *config.Config
	sanitizer *bluemonday.Policy

	// statsGen растет при каждой мутации инцидентов
	statsGen atomic.Uint64
}

func NewDepartmentService(
	repo Repository,
	cache StatsCache,
	clock clockwork.Clock,
	logger *logrus.Logger,
	metrics *observability.Metrics,
	cfg *config.Config,
) DepartmentService {
	return &departmentService{
		repo:      repo,
		cache:     cache,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
		cfg:       cfg,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// clean вычищает разметку из свободного текста: браузерный дашборд выводит его как есть.
// Сущности декодируются с обеих сторон, чтобы "I-5 S & Exit 163" не менялся.
func (s *departmentService) clean(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(html.UnescapeString(text))))
}

// invalidateStats сбрасывает кеш статистики после мутации. Ошибка только
// логируется: снимок истечет сам по TTL.
func (s *departmentService) invalidateStats(ctx context.Context, log *logrus.Entry) {
	s.statsGen.Add(1)
	if err := s.cache.InvalidateStats(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate stats cache")
	}
}
