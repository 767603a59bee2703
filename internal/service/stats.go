package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/sirupsen/logrus"
)

// mockAvgResponseTimeMin - время реагирования пока не измеряется
const mockAvgResponseTimeMin = 5.7

// Stats возвращает снимок статистики, из кеша если он есть
func (s *departmentService) Stats(ctx context.Context) (*models.StatsSnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "department",
		"method":  "Stats",
	})

	cached, err := s.cache.GetStats(ctx)
	switch {
	case err != nil:
		s.metrics.StatsCache.WithLabelValues("error").Inc()
		log.WithError(err).Warn("Failed to read stats cache")
	case cached != nil:
		s.metrics.StatsCache.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		s.metrics.StatsCache.WithLabelValues("miss").Inc()
	}

	// Снимок, посчитанный во время мутации, может быть устаревшим:
	// такой снимок отдается, но не кешируется
	gen := s.statsGen.Load()
	stats, err := s.computeStats(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to compute stats")
		return nil, fmt.Errorf("service: could not compute stats: %w", err)
	}
	if s.statsGen.Load() != gen {
		log.Debug("Incidents changed during computation, snapshot not cached")
		return stats, nil
	}

	if err := s.cache.SetStats(ctx, stats); err != nil {
		log.WithError(err).Warn("Failed to write stats cache")
		return stats, nil
	}
	// Мутация между проверкой и записью: ее сброс кеша мог пройти раньше SetStats
	if s.statsGen.Load() != gen {
		if err := s.cache.InvalidateStats(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate stats cache")
		}
	}
	return stats, nil
}

func (s *departmentService) computeStats(ctx context.Context) (*models.StatsSnapshot, error) {
	incidents, err := s.repo.ListIncidents(ctx, query.Filters{})
	if err != nil {
		return nil, err
	}
	stations, err := s.repo.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	today := truncateDay(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats := &models.StatsSnapshot{
		AvgResponseTimeMin: mockAvgResponseTimeMin,
		Stations:           len(stations),
		LastUpdated:        now,
	}
	for i := range incidents {
		reported := incidents[i].ReportedAt.UTC()
		if truncateDay(reported).Equal(today) {
			stats.CallsToday++
		}
		if !reported.Before(monthStart) {
			stats.CallsThisMonth++
		}
		if incidents[i].Status == models.StatusActive {
			stats.ActiveIncidents++
		}
	}
	for _, st := range stations {
		stats.FirefightersOnDuty += st.OnDutyCount
	}
	return stats, nil
}

// CallsByDay группирует инциденты по дню (UTC) за последние days дней,
// включая сегодняшний. Дни без вызовов не возвращаются.
func (s *departmentService) CallsByDay(ctx context.Context, days int) ([]models.TimeSeriesPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "department",
		"method":  "CallsByDay",
		"days":    days,
	})

	if days < 1 || days > s.cfg.SeriesMaxDays {
		err := &ValidationError{Fields: []string{"days"}}
		log.WithError(err).Warn("Series window rejected")
		return nil, err
	}

	incidents, err := s.repo.ListIncidents(ctx, query.Filters{})
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	today := truncateDay(s.clock.Now().UTC())
	from := today.AddDate(0, 0, -(days - 1))

	counts := make(map[time.Time]int)
	for i := range incidents {
		day := truncateDay(incidents[i].ReportedAt.UTC())
		if day.Before(from) || day.After(today) {
			continue
		}
		counts[day]++
	}

	points := make([]models.TimeSeriesPoint, 0, len(counts))
	for day, n := range counts {
		points = append(points, models.TimeSeriesPoint{Date: day.Format(models.DateLayout), Count: n})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
