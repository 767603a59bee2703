package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/shenikar/fire_dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestSeededRepository_SampleData(t *testing.T) {
	repo := NewSeededRepository(seedNow)
	ctx := context.Background()

	stations, err := repo.ListStations(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, 3)
	require.NoError(t, models.ValidateBatch("station", stations))

	incidents, err := repo.ListIncidents(ctx, query.Filters{})
	require.NoError(t, err)
	require.Len(t, incidents, 4)
	require.NoError(t, models.ValidateBatch("incident", incidents))
	assert.Equal(t, seedNow.Add(-12*time.Minute), incidents[0].ReportedAt)

	firefighters, err := repo.ListFirefighters(ctx)
	require.NoError(t, err)
	require.NoError(t, models.ValidateBatch("firefighter", firefighters))
}

func TestMemoryRepository_ListIncidentsFiltered(t *testing.T) {
	repo := NewSeededRepository(seedNow)
	ctx := context.Background()

	active, err := repo.ListIncidents(ctx, query.Filters{}.WithStatus(models.StatusActive))
	require.NoError(t, err)
	ids := make([]int64, 0, len(active))
	for _, inc := range active {
		ids = append(ids, inc.ID)
	}
	assert.Equal(t, []int64{101, 103}, ids)

	lowCleared, err := repo.ListIncidents(ctx, query.Filters{}.WithStatus(models.StatusCleared).WithSeverity(models.SeverityLow))
	require.NoError(t, err)
	require.Len(t, lowCleared, 1)
	assert.Equal(t, int64(104), lowCleared[0].ID)
}

func TestMemoryRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewSeededRepository(seedNow)
	ctx := context.Background()

	first := &models.Incident{Type: "Brush Fire", Severity: models.SeverityLow, Status: models.StatusActive, Address: "Ridge Trail", StationID: 3, ReportedAt: seedNow}
	second := &models.Incident{Type: "Gas Leak", Severity: models.SeverityHigh, Status: models.StatusActive, Address: "9 Oak St", StationID: 1, ReportedAt: seedNow}
	require.NoError(t, repo.CreateIncident(ctx, first))
	require.NoError(t, repo.CreateIncident(ctx, second))

	assert.Equal(t, int64(105), first.ID)
	assert.Equal(t, int64(106), second.ID)

	got, err := repo.GetIncident(ctx, 106)
	require.NoError(t, err)
	assert.Equal(t, "Gas Leak", got.Type)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewSeededRepository(seedNow)
	ctx := context.Background()

	inc, err := repo.GetIncident(ctx, 101)
	require.NoError(t, err)
	inc.UnitsResponding[0] = "X9"
	inc.Status = models.StatusCleared

	again, err := repo.GetIncident(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "E1", again.UnitsResponding[0])
	assert.Equal(t, models.StatusActive, again.Status)
}

func TestMemoryRepository_UpdateStatusAndNotFound(t *testing.T) {
	repo := NewSeededRepository(seedNow)
	ctx := context.Background()

	updated, err := repo.UpdateIncidentStatus(ctx, 103, models.StatusActive, models.StatusCleared)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCleared, updated.Status)

	stored, err := repo.GetIncident(ctx, 103)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCleared, stored.Status)

	_, err = repo.GetIncident(ctx, 999)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = repo.UpdateIncidentStatus(ctx, 999, models.StatusActive, models.StatusCleared)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = repo.GetStation(ctx, 9)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestMemoryRepository_UpdateStatusConflict(t *testing.T) {
	repo := NewSeededRepository(seedNow)

	// 102 уже закрыт
	_, err := repo.UpdateIncidentStatus(context.Background(), 102, models.StatusActive, models.StatusCleared)

	var conflict *service.StatusConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, models.StatusCleared, conflict.Current)
	assert.Equal(t, models.StatusActive, conflict.Expected)
}

func TestMemoryRepository_ConcurrentClearSucceedsOnce(t *testing.T) {
	repo := NewSeededRepository(seedNow)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	start := make(chan struct{})
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := repo.UpdateIncidentStatus(ctx, 101, models.StatusActive, models.StatusCleared)
			var conflict *service.StatusConflictError

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.As(err, &conflict):
				conflicts++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
}

func TestMemoryRepository_ListIncidentsByStation(t *testing.T) {
	repo := NewSeededRepository(seedNow)

	incidents, err := repo.ListIncidentsByStation(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, incidents, 2)

	none, err := repo.ListIncidentsByStation(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryRepository_EmptyStore(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	incidents, err := repo.ListIncidents(ctx, query.Filters{})
	require.NoError(t, err)
	assert.NotNil(t, incidents)
	assert.Empty(t, incidents)

	ff := &models.Firefighter{Name: "Alex Rivera", StationID: 1}
	require.NoError(t, repo.CreateFirefighter(ctx, ff))
	assert.Equal(t, int64(1), ff.ID)
}

func TestMemoryRepository_ConcurrentCreate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.CreateIncident(ctx, &models.Incident{Type: "Alarm Bell", Severity: models.SeverityLow, Status: models.StatusActive, Address: "x", StationID: 1})
		}()
	}
	wg.Wait()

	incidents, err := repo.ListIncidents(ctx, query.Filters{})
	require.NoError(t, err)
	assert.Len(t, incidents, 50)
	seen := make(map[int64]bool)
	for _, inc := range incidents {
		assert.False(t, seen[inc.ID], "duplicate id %d", inc.ID)
		seen[inc.ID] = true
	}
}
