package dashboard

import (
	"context"
	"sync"

	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/sirupsen/logrus"
)

// IncidentBoard хранит отфильтрованный список инцидентов страницы инцидентов.
//
// Любое изменение, из-за которого текущая загрузка списка устаревает (новые
// фильтры, закрытие инцидента, Close), увеличивает поколение и отменяет эту
// загрузку. Результат применяется, только если поколение не сменилось.
type IncidentBoard struct {
	dash *Dashboard

	mu         sync.Mutex
	filters    query.Filters
	incidents  []models.Incident
	generation uint64
	genCtx     context.Context
	genCancel  context.CancelFunc
	closed     bool
}

func (d *Dashboard) NewIncidentBoard(filters query.Filters) *IncidentBoard {
	b := &IncidentBoard{
		dash:    d,
		filters: filters,
	}
	b.genCtx, b.genCancel = context.WithCancel(context.Background())
	return b
}

// bump вызывается под mu
func (b *IncidentBoard) bump() {
	b.genCancel()
	b.generation++
	b.genCtx, b.genCancel = context.WithCancel(context.Background())
}

func (b *IncidentBoard) Filters() query.Filters {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filters
}

// SetFilters заменяет фильтры. Текущий список хранится до следующего
// Refresh, загрузки со старыми фильтрами устаревают.
func (b *IncidentBoard) SetFilters(filters query.Filters) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrViewClosed
	}
	b.filters = filters
	b.bump()
	return nil
}

// Refresh загружает список по текущим фильтрам и сохраняет его. Если доска
// изменилась во время загрузки, возвращается ErrStaleResult.
func (b *IncidentBoard) Refresh(ctx context.Context) ([]models.Incident, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrViewClosed
	}
	gen := b.generation
	filters := b.filters
	fetchCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(b.genCtx, cancel)
	b.mu.Unlock()
	defer stop()
	defer cancel()

	incidents, err := b.dash.gateway.ListIncidents(fetchCtx, filters)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrViewClosed
	}
	if gen != b.generation {
		b.dash.logger.WithFields(logrus.Fields{
			"component": "dashboard",
			"method":    "Refresh",
			"filters":   filters.String(),
		}).Debug("Discarded stale incident list")
		return nil, ErrStaleResult
	}
	if err != nil {
		return nil, err
	}
	b.incidents = incidents
	return b.snapshot(), nil
}

// Incidents возвращает копию текущего списка
func (b *IncidentBoard) Incidents() []models.Incident {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

func (b *IncidentBoard) snapshot() []models.Incident {
	out := make([]models.Incident, len(b.incidents))
	copy(out, b.incidents)
	return out
}

// ActiveCount считает активные инциденты в текущем списке
func (b *IncidentBoard) ActiveCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for i := range b.incidents {
		if b.incidents[i].Status == models.StatusActive {
			n++
		}
	}
	return n
}

// Clear закрывает инцидент с указанным id. Статус берется из текущего
// списка или загружается, если инцидента на доске нет. При успехе список
// обновляется на месте, а инцидент, переставший подходить под фильтры,
// из него убирается.
func (b *IncidentBoard) Clear(ctx context.Context, id int64) (*models.Incident, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrViewClosed
	}
	current, found := b.find(id)
	b.mu.Unlock()

	if !found {
		detail, err := b.dash.gateway.GetIncident(ctx, id)
		if err != nil {
			return nil, err
		}
		current = detail.Incident
	}

	updated, err := b.dash.controller.Clear(ctx, &current)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return updated, nil
	}
	b.bump()
	b.replace(*updated)
	return updated, nil
}

func (b *IncidentBoard) find(id int64) (models.Incident, bool) {
	for i := range b.incidents {
		if b.incidents[i].ID == id {
			return b.incidents[i], true
		}
	}
	return models.Incident{}, false
}

func (b *IncidentBoard) replace(updated models.Incident) {
	out := b.incidents[:0:0]
	for _, inc := range b.incidents {
		if inc.ID == updated.ID {
			if !b.filters.Matches(&updated) {
				continue
			}
			inc = updated
		}
		out = append(out, inc)
	}
	b.incidents = out
}

// Close закрывает доску. Незавершенные загрузки отменяются, их результаты
// отбрасываются. Все последующие вызовы возвращают ErrViewClosed.
func (b *IncidentBoard) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.genCancel()
	b.incidents = nil
}
