package lifecycle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/fire_dashboard/internal/lifecycle/mocks"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestController(t *testing.T) (*Controller, *mocks.MockIncidentGateway) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockIncidentGateway(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewController(gw, logger), gw
}

func activeIncident(id int64) *models.Incident {
	return &models.Incident{
		ID:              id,
		Type:            "Structure Fire",
		Severity:        models.SeverityCritical,
		Status:          models.StatusActive,
		Address:         "742 Evergreen Terrace",
		StationID:       1,
		UnitsResponding: []string{"E1", "T1", "B1", "M3"},
		ReportedAt:      time.Date(2024, 3, 1, 9, 48, 0, 0, time.UTC),
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(models.StatusActive, models.StatusCleared))
	assert.False(t, CanTransition(models.StatusCleared, models.StatusActive))
	assert.False(t, CanTransition(models.StatusCleared, models.StatusCleared))
	assert.False(t, CanTransition(models.StatusActive, models.StatusActive))
}

func TestClear_SendsOnlyStatusPatch(t *testing.T) {
	controller, gw := newTestController(t)
	ctx := context.Background()
	incident := activeIncident(42)
	cleared := *incident
	cleared.Status = models.StatusCleared

	gw.EXPECT().
		PatchIncident(ctx, int64(42), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, patch models.IncidentPatch) (*models.Incident, error) {
			body, err := json.Marshal(patch)
			require.NoError(t, err)
			assert.JSONEq(t, `{"status":"Cleared"}`, string(body))
			return &cleared, nil
		}).Times(1)

	updated, err := controller.Clear(ctx, incident)

	require.NoError(t, err)
	assert.Equal(t, models.StatusCleared, updated.Status)
	// Копия вызывающего не меняется, источник истины только ответ backend
	assert.Equal(t, models.StatusActive, incident.Status)
}

func TestClear_AlreadyClearedIsRejectedWithoutNetworkCall(t *testing.T) {
	controller, gw := newTestController(t)
	incident := activeIncident(42)
	incident.Status = models.StatusCleared

	gw.EXPECT().PatchIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	updated, err := controller.Clear(context.Background(), incident)

	require.Error(t, err)
	assert.Nil(t, updated)
	var illegal *IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, IllegalTransitionError{ID: 42, From: models.StatusCleared, To: models.StatusCleared}, *illegal)
}

func TestClear_GatewayErrorIsWrapped(t *testing.T) {
	controller, gw := newTestController(t)
	gwErr := errors.New("connection refused")

	gw.EXPECT().PatchIncident(gomock.Any(), int64(7), gomock.Any()).Return(nil, gwErr).Times(1)

	_, err := controller.Clear(context.Background(), activeIncident(7))

	require.Error(t, err)
	assert.ErrorIs(t, err, gwErr)
	assert.ErrorContains(t, err, "could not clear incident 7")
}

func TestReportIncident_EmptyTypeIsRejected(t *testing.T) {
	controller, gw := newTestController(t)

	gw.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	_, err := controller.ReportIncident(context.Background(), models.IncidentDraft{
		Type:      "",
		Address:   "123 Main",
		StationID: 1,
	})

	var invalid *InvalidIncidentDraftError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"type"}, invalid.Fields)
}

func TestReportIncident_CollectsEveryFailingField(t *testing.T) {
	controller, gw := newTestController(t)

	gw.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	_, err := controller.ReportIncident(context.Background(), models.IncidentDraft{
		Type:            "   ",
		Severity:        "Extreme",
		Address:         "",
		StationID:       0,
		UnitsResponding: []string{"E1", " "},
	})

	var invalid *InvalidIncidentDraftError
	require.ErrorAs(t, err, &invalid)
	assert.ElementsMatch(t, []string{"type", "severity", "address", "station_id", "units_responding"}, invalid.Fields)
	assert.Contains(t, err.Error(), "invalid incident draft")
}

func TestReportIncident_NegativeStationID(t *testing.T) {
	controller, gw := newTestController(t)

	gw.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	_, err := controller.ReportIncident(context.Background(), models.IncidentDraft{
		Type:      "Medical Aid",
		Address:   "88 Lakeview Rd",
		StationID: -3,
	})

	var invalid *InvalidIncidentDraftError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"station_id"}, invalid.Fields)
}

func TestReportIncident_AdoptsServerAssignedFields(t *testing.T) {
	controller, gw := newTestController(t)
	ctx := context.Background()
	reportedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	gw.EXPECT().
		CreateIncident(ctx, models.IncidentDraft{
			Type:            "Vehicle Accident",
			Severity:        models.SeverityLow,
			Address:         "I-5 S & Exit 163",
			StationID:       3,
			UnitsResponding: []string{"E3"},
		}).
		Return(&models.Incident{
			ID:              105,
			Type:            "Vehicle Accident",
			Severity:        models.SeverityLow,
			Status:          models.StatusActive,
			Address:         "I-5 S & Exit 163",
			StationID:       3,
			UnitsResponding: []string{"E3"},
			ReportedAt:      reportedAt,
		}, nil).Times(1)

	created, err := controller.ReportIncident(ctx, models.IncidentDraft{
		Type:            " Vehicle Accident ",
		Address:         "I-5 S & Exit 163",
		StationID:       3,
		UnitsResponding: []string{"E3"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(105), created.ID)
	assert.Equal(t, reportedAt, created.ReportedAt)
	assert.Equal(t, models.StatusActive, created.Status)
}

func TestReportIncident_GatewayError(t *testing.T) {
	controller, gw := newTestController(t)
	gwErr := errors.New("boom")

	gw.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(nil, gwErr).Times(1)

	_, err := controller.ReportIncident(context.Background(), models.IncidentDraft{
		Type:      "Alarm Bell",
		Address:   "55 Commerce Park",
		StationID: 2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, gwErr)
}
