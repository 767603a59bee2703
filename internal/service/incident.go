package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/fire_dashboard/internal/lifecycle"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/sirupsen/logrus"
)

// ListIncidents возвращает инциденты, подходящие под фильтры
func (s *departmentService) ListIncidents(ctx context.Context, filters query.Filters) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "department",
		"method":  "ListIncidents",
		"filters": filters.String(),
	})

	incidents, err := s.repo.ListIncidents(ctx, filters)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// GetIncident получает инцидент по ID вместе с его станцией
func (s *departmentService) GetIncident(ctx context.Context, id int64) (*models.IncidentDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "department",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.repo.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	detail := &models.IncidentDetail{Incident: *incident}
	station, err := s.repo.GetStation(ctx, incident.StationID)
	switch {
	case err == nil:
		detail.Station = station
	case errors.Is(err, ErrNotFound):
		// станцию могли удалить, инцидент все равно показываем
	default:
		log.WithError(err).Error("Failed to get station of incident")
		return nil, fmt.Errorf("service: could not get station of incident: %w", err)
	}
	return detail, nil
}

// CreateIncident создает активный инцидент из черновика
func (s *departmentService) CreateIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error) {
	draft = draft.Normalized()
	draft.Type = s.clean(draft.Type)
	draft.Address = s.clean(draft.Address)
	for i, unit := range draft.UnitsResponding {
		draft.UnitsResponding[i] = s.clean(unit)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "department",
		"method":     "CreateIncident",
		"type":       draft.Type,
		"station_id": draft.StationID,
	})
	log.Info("Attempting to create a new incident")

	if err := lifecycle.ValidateDraft(draft); err != nil {
		log.WithError(err).Warn("Incident draft rejected")
		return nil, err
	}

	if _, err := s.repo.GetStation(ctx, draft.StationID); err != nil {
		if errors.Is(err, ErrNotFound) {
			err := &ValidationError{Fields: []string{"station_id"}}
			log.WithError(err).Warn("Incident assigned to unknown station")
			return nil, err
		}
		log.WithError(err).Error("Failed to get station from repository")
		return nil, fmt.Errorf("service: could not get station: %w", err)
	}

	incident := &models.Incident{
		Type:            draft.Type,
		Severity:        draft.Severity,
		Status:          models.StatusActive,
		Address:         draft.Address,
		StationID:       draft.StationID,
		UnitsResponding: draft.UnitsResponding,
		ReportedAt:      s.clock.Now().UTC(),
	}
	if err := s.repo.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	s.invalidateStats(ctx, log)
	s.metrics.IncidentsReported.Inc()
	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return incident, nil
}

// PatchIncident применяет частичное обновление. Статус меняется только по
// правилам жизненного цикла, запись идет через compare-and-set.
func (s *departmentService) PatchIncident(ctx context.Context, id int64, patch models.IncidentPatch) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "department",
		"method":      "PatchIncident",
		"incident_id": id,
	})

	if patch.IsEmpty() || !patch.Status.Valid() {
		err := &ValidationError{Fields: []string{"status"}}
		log.WithError(err).Warn("Patch rejected")
		return nil, err
	}

	existing, err := s.repo.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to patch a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %d not found for patch: %w", id, err)
	}

	to := *patch.Status
	if !lifecycle.CanTransition(existing.Status, to) {
		err := &lifecycle.IllegalTransitionError{ID: id, From: existing.Status, To: to}
		log.WithError(err).Warn("Rejected status transition")
		return nil, err
	}

	updated, err := s.repo.UpdateIncidentStatus(ctx, id, existing.Status, to)
	if err != nil {
		var conflict *StatusConflictError
		if errors.As(err, &conflict) {
			// Другой запрос успел сменить статус
			err := &lifecycle.IllegalTransitionError{ID: id, From: conflict.Current, To: to}
			log.WithError(err).Warn("Rejected status transition after concurrent update")
			return nil, err
		}
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	s.invalidateStats(ctx, log)
	if to == models.StatusCleared {
		s.metrics.IncidentsCleared.Inc()
	}
	log.WithField("status", to).Info("Incident updated successfully")
	return updated, nil
}
