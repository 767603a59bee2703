package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

func (s *departmentService) ListStations(ctx context.Context) ([]models.Station, error) {
	stations, err := s.repo.ListStations(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "department",
			"method":  "ListStations",
		}).WithError(err).Error("Failed to list stations from repository")
		return nil, fmt.Errorf("service: could not list stations: %w", err)
	}
	return stations, nil
}

// GetStation возвращает станцию и её инциденты, новые первыми
func (s *departmentService) GetStation(ctx context.Context, id int64) (*models.StationDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "department",
		"method":     "GetStation",
		"station_id": id,
	})

	station, err := s.repo.GetStation(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get station from repository")
		return nil, fmt.Errorf("service: could not get station: %w", err)
	}

	incidents, err := s.repo.ListIncidentsByStation(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list station incidents")
		return nil, fmt.Errorf("service: could not list station incidents: %w", err)
	}
	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].ReportedAt.After(incidents[j].ReportedAt)
	})

	return &models.StationDetail{Station: *station, RecentIncidents: incidents}, nil
}

func (s *departmentService) ListFirefighters(ctx context.Context) ([]models.Firefighter, error) {
	firefighters, err := s.repo.ListFirefighters(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "department",
			"method":  "ListFirefighters",
		}).WithError(err).Error("Failed to list firefighters from repository")
		return nil, fmt.Errorf("service: could not list firefighters: %w", err)
	}
	return firefighters, nil
}

// CreateFirefighter добавляет пожарного в состав существующей станции
func (s *departmentService) CreateFirefighter(ctx context.Context, draft models.FirefighterDraft) (*models.Firefighter, error) {
	draft = draft.Normalized()
	draft.Name = s.clean(draft.Name)
	draft.Rank = s.clean(draft.Rank)

	log := s.logger.WithFields(logrus.Fields{
		"service":    "department",
		"method":     "CreateFirefighter",
		"station_id": draft.StationID,
	})

	if err := validateFirefighter(draft); err != nil {
		log.WithError(err).Warn("Firefighter draft rejected")
		return nil, err
	}

	if _, err := s.repo.GetStation(ctx, draft.StationID); err != nil {
		if errors.Is(err, ErrNotFound) {
			err := &ValidationError{Fields: []string{"station_id"}}
			log.WithError(err).Warn("Firefighter assigned to unknown station")
			return nil, err
		}
		log.WithError(err).Error("Failed to get station from repository")
		return nil, fmt.Errorf("service: could not get station: %w", err)
	}

	firefighter := &models.Firefighter{
		Name:      draft.Name,
		Rank:      draft.Rank,
		StationID: draft.StationID,
		OnDuty:    draft.OnDuty,
	}
	if err := s.repo.CreateFirefighter(ctx, firefighter); err != nil {
		log.WithError(err).Error("Failed to create firefighter in repository")
		return nil, fmt.Errorf("service: could not create firefighter: %w", err)
	}

	s.metrics.FirefightersAdded.Inc()
	log.WithField("firefighter_id", firefighter.ID).Info("Firefighter created successfully")
	return firefighter, nil
}

func validateFirefighter(draft models.FirefighterDraft) error {
	err := models.Validator().Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate firefighter: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}
