// Package gateway - единственный код, который ходит в backend пожарной части.
// Каждый ответ декодируется и проверяется до возврата. Ответ хотя бы с одной
// битой записью отклоняется целиком. Повторов запросов нет.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader связывает строки логов клиента и сервера
const RequestIDHeader = "X-Request-ID"

const maxErrorBody = 4 << 10

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает шлюз к backend по адресу baseURL. Нулевой timeout
// оставляет таймаут транспорта по умолчанию.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetStats получает текущий снимок статистики
func (c *Client) GetStats(ctx context.Context) (*models.StatsSnapshot, error) {
	var stats models.StatsSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/stats", "", nil, &stats, "stats"); err != nil {
		return nil, err
	}
	if err := models.ValidateRecord("stats", &stats); err != nil {
		return nil, c.rejected("GetStats", err)
	}
	return &stats, nil
}

// GetCallsByDay получает сырые точки вызовов по дням за последние days дней
func (c *Client) GetCallsByDay(ctx context.Context, days int) ([]models.TimeSeriesPoint, error) {
	if days <= 0 {
		return nil, fmt.Errorf("gateway: days must be positive, got %d", days)
	}
	var resp struct {
		Series *[]models.TimeSeriesPoint `json:"series"`
	}
	rawQuery := "days=" + strconv.Itoa(days)
	if err := c.do(ctx, http.MethodGet, "/api/metrics/calls_by_day", rawQuery, nil, &resp, "series"); err != nil {
		return nil, err
	}
	if resp.Series == nil {
		return nil, c.rejected("GetCallsByDay", missingEnvelope("series"))
	}
	if err := models.ValidateBatch("series point", *resp.Series); err != nil {
		return nil, c.rejected("GetCallsByDay", err)
	}
	return *resp.Series, nil
}

// ListIncidents получает инциденты, подходящие под фильтры
func (c *Client) ListIncidents(ctx context.Context, filters query.Filters) ([]models.Incident, error) {
	var resp struct {
		Incidents *[]models.Incident `json:"incidents"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/incidents", query.Build(filters), nil, &resp, "incidents"); err != nil {
		return nil, err
	}
	if resp.Incidents == nil {
		return nil, c.rejected("ListIncidents", missingEnvelope("incidents"))
	}
	if err := models.ValidateBatch("incident", *resp.Incidents); err != nil {
		return nil, c.rejected("ListIncidents", err)
	}
	return *resp.Incidents, nil
}

// GetIncident получает инцидент вместе со станцией. Отсутствующий инцидент
// возвращается как HTTPError со статусом 404.
func (c *Client) GetIncident(ctx context.Context, id int64) (*models.IncidentDetail, error) {
	var resp models.IncidentDetail
	if err := c.do(ctx, http.MethodGet, incidentPath(id), "", nil, &resp, "incident"); err != nil {
		return nil, err
	}
	if err := models.ValidateRecord("incident", &resp.Incident); err != nil {
		return nil, c.rejected("GetIncident", err)
	}
	if resp.Station != nil {
		if err := models.ValidateRecord("station", resp.Station); err != nil {
			return nil, c.rejected("GetIncident", err)
		}
	}
	return &resp, nil
}

// CreateIncident отправляет проверенный черновик и возвращает сохраненный инцидент
func (c *Client) CreateIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error) {
	return c.incidentEnvelope(ctx, "CreateIncident", http.MethodPost, "/api/incidents", draft)
}

// PatchIncident отправляет частичное обновление. В тело попадают только заданные поля.
func (c *Client) PatchIncident(ctx context.Context, id int64, patch models.IncidentPatch) (*models.Incident, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("gateway: empty patch for incident %d", id)
	}
	return c.incidentEnvelope(ctx, "PatchIncident", http.MethodPatch, incidentPath(id), patch)
}

func (c *Client) incidentEnvelope(ctx context.Context, op, method, path string, body any) (*models.Incident, error) {
	var resp struct {
		Incident *models.Incident `json:"incident"`
	}
	if err := c.do(ctx, method, path, "", body, &resp, "incident"); err != nil {
		return nil, err
	}
	if resp.Incident == nil {
		return nil, c.rejected(op, missingEnvelope("incident"))
	}
	if err := models.ValidateRecord("incident", resp.Incident); err != nil {
		return nil, c.rejected(op, err)
	}
	return resp.Incident, nil
}

func (c *Client) ListStations(ctx context.Context) ([]models.Station, error) {
	var resp struct {
		Stations *[]models.Station `json:"stations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/stations", "", nil, &resp, "stations"); err != nil {
		return nil, err
	}
	if resp.Stations == nil {
		return nil, c.rejected("ListStations", missingEnvelope("stations"))
	}
	if err := models.ValidateBatch("station", *resp.Stations); err != nil {
		return nil, c.rejected("ListStations", err)
	}
	return *resp.Stations, nil
}

// GetStation получает станцию с ее последними инцидентами
func (c *Client) GetStation(ctx context.Context, id int64) (*models.StationDetail, error) {
	var resp models.StationDetail
	path := "/api/stations/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp, "station"); err != nil {
		return nil, err
	}
	if err := models.ValidateRecord("station", &resp.Station); err != nil {
		return nil, c.rejected("GetStation", err)
	}
	if err := models.ValidateBatch("incident", resp.RecentIncidents); err != nil {
		return nil, c.rejected("GetStation", err)
	}
	return &resp, nil
}

func (c *Client) ListFirefighters(ctx context.Context) ([]models.Firefighter, error) {
	var resp struct {
		Firefighters *[]models.Firefighter `json:"firefighters"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/firefighters", "", nil, &resp, "firefighters"); err != nil {
		return nil, err
	}
	if resp.Firefighters == nil {
		return nil, c.rejected("ListFirefighters", missingEnvelope("firefighters"))
	}
	if err := models.ValidateBatch("firefighter", *resp.Firefighters); err != nil {
		return nil, c.rejected("ListFirefighters", err)
	}
	return *resp.Firefighters, nil
}

func (c *Client) CreateFirefighter(ctx context.Context, draft models.FirefighterDraft) (*models.Firefighter, error) {
	var resp struct {
		Firefighter *models.Firefighter `json:"firefighter"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/firefighters", "", draft, &resp, "firefighter"); err != nil {
		return nil, err
	}
	if resp.Firefighter == nil {
		return nil, c.rejected("CreateFirefighter", missingEnvelope("firefighter"))
	}
	if err := models.ValidateRecord("firefighter", resp.Firefighter); err != nil {
		return nil, c.rejected("CreateFirefighter", err)
	}
	return resp.Firefighter, nil
}

// do выполняет один запрос и декодирует тело 2xx-ответа в out
func (c *Client) do(ctx context.Context, method, path, rawQuery string, body, out any, kind string) error {
	op := method + " " + path
	requestID := uuid.NewString()
	log := c.logger.WithFields(logrus.Fields{
		"component":  "gateway",
		"op":         op,
		"request_id": requestID,
	})

	u := c.baseURL + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode %s body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("gateway: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Request failed")
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{Op: op, Status: resp.StatusCode, Message: errorMessage(resp.Body)}
		log.WithError(httpErr).Warn("Backend returned an error status")
		return httpErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return &NetworkError{Op: op, Err: err}
		}
		return c.rejected(op, decodeError(kind, err))
	}

	log.Debug("Request completed")
	return nil
}

// rejected логирует причину отказа от ответа и возвращает err без изменений
func (c *Client) rejected(op string, err error) error {
	c.logger.WithFields(logrus.Fields{
		"component": "gateway",
		"op":        op,
	}).WithError(err).Error("Rejected malformed response")
	return err
}

func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}
	return strings.TrimSpace(string(raw))
}

func missingEnvelope(key string) error {
	return &models.MalformedRecordError{Kind: key + " response", Index: -1, Field: key, Reason: "is required"}
}

func incidentPath(id int64) string {
	return "/api/incidents/" + strconv.FormatInt(id, 10)
}
