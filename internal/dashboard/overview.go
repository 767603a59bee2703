package dashboard

import (
	"context"
	"fmt"

	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/series"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// OverviewData - статистика и ряд вызовов по дням под одним состоянием загрузки
type OverviewData struct {
	Days   int
	Stats  models.StatsSnapshot
	Series series.Series
	Chart  series.Chart
}

// Overview параллельно загружает статистику и ряд вызовов по дням. Ошибка
// любой из загрузок проваливает весь обзор.
func (d *Dashboard) Overview(ctx context.Context, days int) (*OverviewData, error) {
	if days <= 0 {
		return nil, fmt.Errorf("dashboard: days must be positive, got %d", days)
	}
	log := d.logger.WithFields(logrus.Fields{
		"component": "dashboard",
		"method":    "Overview",
		"days":      days,
	})

	var (
		stats   *models.StatsSnapshot
		samples []models.TimeSeriesPoint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = d.gateway.GetStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		samples, err = d.gateway.GetCallsByDay(gctx, days)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to load overview")
		return nil, err
	}

	s, err := series.Normalize(samples)
	if err != nil {
		log.WithError(err).Error("Rejected calls-by-day series")
		return nil, err
	}

	return &OverviewData{
		Days:   days,
		Stats:  *stats,
		Series: s,
		Chart:  s.Chart(),
	}, nil
}
