package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/fire_dashboard/internal/config"
	"github.com/shenikar/fire_dashboard/internal/lifecycle"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/observability"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/shenikar/fire_dashboard/internal/service"
	"github.com/shenikar/fire_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает роутер с мокированным сервисом
func newTestHandler(t *testing.T) (*mocks.MockDepartmentService, *gin.Engine, *observability.Metrics) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDepartmentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{SeriesMaxDays: 365}
	metrics := observability.NewMetricsForTesting()

	gin.SetMode(gin.TestMode)
	router := NewRouter(NewHandler(mockService, logger, cfg), metrics)

	return mockService, router, metrics
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func testIncident(id int64, status models.Status) *models.Incident {
	return &models.Incident{
		ID:              id,
		Type:            "Structure Fire",
		Severity:        models.SeverityCritical,
		Status:          status,
		Address:         "742 Evergreen Terrace",
		StationID:       1,
		UnitsResponding: []string{"E1", "T1"},
		ReportedAt:      time.Date(2024, 3, 1, 9, 48, 0, 0, time.UTC),
	}
}

func TestHello(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/hello", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to the Fire Department API"}`, w.Body.String())
}

func TestGetStats_Success(t *testing.T) {
	mockService, router, _ := newTestHandler(t)
	stats := &models.StatsSnapshot{CallsToday: 2, AvgResponseTimeMin: 5.7, Stations: 3, LastUpdated: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}

	mockService.EXPECT().Stats(gomock.Any()).Return(stats, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.StatsSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 2, got.CallsToday)
	assert.Equal(t, 5.7, got.AvgResponseTimeMin)
	assert.Contains(t, w.Body.String(), `"last_updated":"2024-03-01T10:00:00Z"`)
}

func TestGetStats_ServiceError(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w))
}

func TestGetCallsByDay_DefaultWindow(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().CallsByDay(gomock.Any(), 14).Return([]models.TimeSeriesPoint{{Date: "2024-03-01", Count: 4}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/metrics/calls_by_day", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"series":[{"date":"2024-03-01","count":4}]}`, w.Body.String())
}

func TestGetCallsByDay_InvalidWindow(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/metrics/calls_by_day?days=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.EXPECT().CallsByDay(gomock.Any(), 0).Return(nil, &service.ValidationError{Fields: []string{"days"}})
	w = makeRequest(router, http.MethodGet, "/api/metrics/calls_by_day?days=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIncidents_ParsesFilters(t *testing.T) {
	mockService, router, _ := newTestHandler(t)
	expected := query.Filters{}.WithStatus(models.StatusActive).WithSeverity(models.SeverityCritical)

	mockService.EXPECT().
		ListIncidents(gomock.Any(), expected).
		Return([]models.Incident{*testIncident(101, models.StatusActive)}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/incidents?status=active&severity=Critical", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Incidents, 1)
	assert.Equal(t, int64(101), body.Incidents[0].ID)
}

func TestListIncidents_InvalidFilter(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/incidents?severity=Urgent", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w), "Urgent")
}

func TestListIncidents_MalformedEscape(t *testing.T) {
	mockService, router, _ := newTestHandler(t)
	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/incidents?status=%zz", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `invalid status filter value "%zz"`, decodeError(t, w))
}

func TestListIncidents_EmptyListIsArray(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), query.Filters{}).Return([]models.Incident{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"incidents":[]}`, w.Body.String())
}

func TestGetIncident_Success(t *testing.T) {
	mockService, router, _ := newTestHandler(t)
	detail := &models.IncidentDetail{
		Incident: *testIncident(101, models.StatusActive),
		Station:  &models.Station{ID: 1, Name: "Station 1 - Central"},
	}

	mockService.EXPECT().GetIncident(gomock.Any(), int64(101)).Return(detail, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/incidents/101", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body models.IncidentDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Station 1 - Central", body.Station.Name)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, router, _ := newTestHandler(t)

	for _, id := range []string{"abc", "0", "-3"} {
		w := makeRequest(router, http.MethodGet, "/api/incidents/"+id, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestGetIncident_NotFound(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().
		GetIncident(gomock.Any(), int64(999)).
		Return(nil, fmt.Errorf("service: could not get incident: %w", service.ErrNotFound))

	w := makeRequest(router, http.MethodGet, "/api/incidents/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "incident not found", decodeError(t, w))
}

func TestCreateIncident_Success(t *testing.T) {
	mockService, router, _ := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Type:            "Structure Fire",
		Severity:        "critical",
		Address:         "742 Evergreen Terrace",
		StationID:       1,
		UnitsResponding: []string{"E1", "T1"},
	}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), models.IncidentDraft{
			Type:            "Structure Fire",
			Severity:        models.SeverityCritical,
			Address:         "742 Evergreen Terrace",
			StationID:       1,
			UnitsResponding: []string{"E1", "T1"},
		}).
		Return(testIncident(105, models.StatusActive), nil).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/incidents", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(105), resp.Incident.ID)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/incidents", strings.NewReader(`{"type":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", decodeError(t, w))
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/incidents", strings.NewReader(`{"type":"","address":"x","station_id":0}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/incidents", strings.NewReader(`{"type":"Fire","severity":"Urgent","address":"x","station_id":1}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w), "Urgent")
}

func TestCreateIncident_ServiceRejectsDraft(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(nil, &lifecycle.InvalidIncidentDraftError{Fields: []string{"type"}})

	w := makeRequest(router, http.MethodPost, "/api/incidents",
		strings.NewReader(`{"type":"<script></script>","address":"x","station_id":1}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIncident_UnknownStation(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(nil, &service.ValidationError{Fields: []string{"station_id"}})

	w := makeRequest(router, http.MethodPost, "/api/incidents",
		strings.NewReader(`{"type":"Vehicle Fire","severity":"High","address":"x","station_id":9}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid input: station_id", decodeError(t, w))
}

func TestPatchIncident_Clear(t *testing.T) {
	mockService, router, _ := newTestHandler(t)
	cleared := models.StatusCleared

	mockService.EXPECT().
		PatchIncident(gomock.Any(), int64(101), models.IncidentPatch{Status: &cleared}).
		Return(testIncident(101, models.StatusCleared), nil).
		Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/incidents/101", strings.NewReader(`{"status":"Cleared"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusCleared, resp.Incident.Status)
}

func TestPatchIncident_IllegalTransition(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().
		PatchIncident(gomock.Any(), int64(102), gomock.Any()).
		Return(nil, &lifecycle.IllegalTransitionError{ID: 102, From: models.StatusCleared, To: models.StatusActive})

	w := makeRequest(router, http.MethodPatch, "/api/incidents/102", strings.NewReader(`{"status":"Active"}`))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPatchIncident_BadBody(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodPatch, "/api/incidents/101", strings.NewReader(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodPatch, "/api/incidents/101", strings.NewReader(`{"status":"Closed"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchIncident_NotFound(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().
		PatchIncident(gomock.Any(), int64(999), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", service.ErrNotFound))

	w := makeRequest(router, http.MethodPatch, "/api/incidents/999", strings.NewReader(`{"status":"Cleared"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListStations_Success(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().ListStations(gomock.Any()).Return([]models.Station{{ID: 1, Name: "Station 1 - Central"}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/stations", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body StationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Stations, 1)
}

func TestGetStation_NotFound(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().GetStation(gomock.Any(), int64(9)).Return(nil, fmt.Errorf("service: %w", service.ErrNotFound))

	w := makeRequest(router, http.MethodGet, "/api/stations/9", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "station not found", decodeError(t, w))
}

func TestGetStation_Success(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().GetStation(gomock.Any(), int64(2)).Return(&models.StationDetail{
		Station:         models.Station{ID: 2, Name: "Station 2 - North"},
		RecentIncidents: []models.Incident{*testIncident(102, models.StatusCleared)},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/stations/2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recent_incidents"`)
}

func TestFirefighters_ListAndCreate(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().ListFirefighters(gomock.Any()).Return([]models.Firefighter{{ID: 1, Name: "Alex Rivera", StationID: 1, OnDuty: true}}, nil)
	mockService.EXPECT().
		CreateFirefighter(gomock.Any(), models.FirefighterDraft{Name: "Jordan Lee", Rank: "Lieutenant", StationID: 2}).
		Return(&models.Firefighter{ID: 6, Name: "Jordan Lee", Rank: "Lieutenant", StationID: 2}, nil)

	w := makeRequest(router, http.MethodGet, "/api/firefighters", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/firefighters",
		strings.NewReader(`{"name":"Jordan Lee","rank":"Lieutenant","station_id":2}`))
	assert.Equal(t, http.StatusCreated, w.Code)
	var resp FirefighterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(6), resp.Firefighter.ID)
}

func TestCreateFirefighter_ValidationError(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/firefighters", strings.NewReader(`{"name":"","station_id":0}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRequestIDMiddleware(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/system/health", nil)
	_, err := uuid.Parse(w.Header().Get(requestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	w = makeRequest(router, http.MethodGet, "/system/health", nil, map[string]string{requestIDHeader: id})
	assert.Equal(t, id, w.Header().Get(requestIDHeader))

	w = makeRequest(router, http.MethodGet, "/system/health", nil, map[string]string{requestIDHeader: "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(requestIDHeader))
}

func TestMetricsMiddleware_CountsByRoute(t *testing.T) {
	mockService, router, metrics := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("x: %w", service.ErrNotFound)).Times(2)

	makeRequest(router, http.MethodGet, "/api/incidents/1", nil)
	makeRequest(router, http.MethodGet, "/api/incidents/2", nil)
	makeRequest(router, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/api/incidents/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
