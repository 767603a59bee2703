package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RosterData - станции и личный состав
type RosterData struct {
	Stations     []models.Station
	Firefighters []models.Firefighter
}

// OnDuty считает пожарных, находящихся на дежурстве
func (r *RosterData) OnDuty() int {
	n := 0
	for _, ff := range r.Firefighters {
		if ff.OnDuty {
			n++
		}
	}
	return n
}

// StationName возвращает название станции по id или "", если такой станции
// в составе нет.
func (r *RosterData) StationName(id int64) string {
	for _, st := range r.Stations {
		if st.ID == id {
			return st.Name
		}
	}
	return ""
}

func (d *Dashboard) Roster(ctx context.Context) (*RosterData, error) {
	var roster RosterData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster.Stations, err = d.gateway.ListStations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		roster.Firefighters, err = d.gateway.ListFirefighters(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		d.logger.WithFields(logrus.Fields{
			"component": "dashboard",
			"method":    "Roster",
		}).WithError(err).Error("Failed to load roster")
		return nil, err
	}
	return &roster, nil
}

// AddFirefighter проверяет черновик локально до отправки. Отклоненный
// черновик до шлюза не доходит.
func (d *Dashboard) AddFirefighter(ctx context.Context, draft models.FirefighterDraft) (*models.Firefighter, error) {
	draft = draft.Normalized()
	log := d.logger.WithFields(logrus.Fields{
		"component":  "dashboard",
		"method":     "AddFirefighter",
		"station_id": draft.StationID,
	})

	if err := validateFirefighterDraft(draft); err != nil {
		log.WithError(err).Warn("Firefighter draft rejected")
		return nil, err
	}

	created, err := d.gateway.CreateFirefighter(ctx, draft)
	if err != nil {
		log.WithError(err).Error("Failed to add firefighter")
		return nil, fmt.Errorf("dashboard: could not add firefighter: %w", err)
	}
	log.WithField("firefighter_id", created.ID).Info("Firefighter added")
	return created, nil
}

func validateFirefighterDraft(draft models.FirefighterDraft) error {
	err := models.Validator().Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate firefighter draft: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &InvalidFirefighterDraftError{Fields: fields}
}
