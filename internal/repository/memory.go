package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/shenikar/fire_dashboard/internal/service"
)

// MemoryRepository хранит данные дашборда в памяти процесса.
// Записи отдаются копиями, срезы хранилища наружу не попадают.
type MemoryRepository struct {
	mu           sync.RWMutex
	stations     []models.Station
	incidents    []models.Incident
	firefighters []models.Firefighter

	nextIncidentID    int64
	nextFirefighterID int64
}

func NewMemoryRepository() service.Repository {
	return newMemoryRepository()
}

func newMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextIncidentID:    1,
		nextFirefighterID: 1,
	}
}

// CreateIncident сохраняет инцидент и присваивает ему id
func (r *MemoryRepository) CreateIncident(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	incident.ID = r.nextIncidentID
	r.nextIncidentID++
	r.incidents = append(r.incidents, cloneIncident(*incident))
	return nil
}

// GetIncident возвращает инцидент по id
func (r *MemoryRepository) GetIncident(_ context.Context, id int64) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.incidents {
		if r.incidents[i].ID == id {
			inc := cloneIncident(r.incidents[i])
			return &inc, nil
		}
	}
	return nil, fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
}

// UpdateIncidentStatus меняет статус под одной блокировкой с проверкой
// текущего значения (compare-and-set)
func (r *MemoryRepository) UpdateIncidentStatus(_ context.Context, id int64, from, to models.Status) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.incidents {
		if r.incidents[i].ID != id {
			continue
		}
		if r.incidents[i].Status != from {
			return nil, &service.StatusConflictError{ID: id, Expected: from, Current: r.incidents[i].Status}
		}
		r.incidents[i].Status = to
		inc := cloneIncident(r.incidents[i])
		return &inc, nil
	}
	return nil, fmt.Errorf("incident with id %d not found for update: %w", id, service.ErrNotFound)
}

// ListIncidents возвращает инциденты в порядке добавления
func (r *MemoryRepository) ListIncidents(_ context.Context, filters query.Filters) ([]models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Incident, 0, len(r.incidents))
	for i := range r.incidents {
		if filters.Matches(&r.incidents[i]) {
			out = append(out, cloneIncident(r.incidents[i]))
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListIncidentsByStation(_ context.Context, stationID int64) ([]models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Incident, 0)
	for i := range r.incidents {
		if r.incidents[i].StationID == stationID {
			out = append(out, cloneIncident(r.incidents[i]))
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListStations(_ context.Context) ([]models.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Station, len(r.stations))
	copy(out, r.stations)
	return out, nil
}

func (r *MemoryRepository) GetStation(_ context.Context, id int64) (*models.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.stations {
		if r.stations[i].ID == id {
			st := r.stations[i]
			return &st, nil
		}
	}
	return nil, fmt.Errorf("station with id %d: %w", id, service.ErrNotFound)
}

func (r *MemoryRepository) ListFirefighters(_ context.Context) ([]models.Firefighter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Firefighter, len(r.firefighters))
	copy(out, r.firefighters)
	return out, nil
}

// CreateFirefighter сохраняет пожарного и присваивает ему id
func (r *MemoryRepository) CreateFirefighter(_ context.Context, firefighter *models.Firefighter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	firefighter.ID = r.nextFirefighterID
	r.nextFirefighterID++
	r.firefighters = append(r.firefighters, *firefighter)
	return nil
}

func cloneIncident(inc models.Incident) models.Incident {
	if inc.UnitsResponding != nil {
		units := make([]string, len(inc.UnitsResponding))
		copy(units, inc.UnitsResponding)
		inc.UnitsResponding = units
	}
	return inc
}
