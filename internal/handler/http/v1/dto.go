package v1

import "github.com/shenikar/fire_dashboard/internal/models"

// CreateIncidentRequest DTO для регистрации инцидента
// @Description DTO для регистрации инцидента. Пустая severity означает Low.
type CreateIncidentRequest struct {
	Type            string   `json:"type" validate:"required,max=120"`
	Severity        string   `json:"severity,omitempty" validate:"max=16"`
	Address         string   `json:"address" validate:"required,max=255"`
	StationID       int64    `json:"station_id" validate:"gt=0"`
	UnitsResponding []string `json:"units_responding" validate:"max=32,dive,required,max=16"`
}

// PatchIncidentRequest DTO для частичного обновления инцидента
// @Description Только переданные поля изменяются
type PatchIncidentRequest struct {
	Status *string `json:"status" validate:"required"`
}

// CreateFirefighterRequest DTO для добавления пожарного
// @Description DTO для добавления пожарного
type CreateFirefighterRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Rank      string `json:"rank,omitempty" validate:"max=60"`
	StationID int64  `json:"station_id" validate:"gt=0"`
	OnDuty    bool   `json:"on_duty"`
}

// IncidentResponse DTO для ответа с одним инцидентом
type IncidentResponse struct {
	Incident models.Incident `json:"incident"`
}

// IncidentListResponse DTO для списка инцидентов
type IncidentListResponse struct {
	Incidents []models.Incident `json:"incidents"`
}

// StationListResponse DTO для списка станций
type StationListResponse struct {
	Stations []models.Station `json:"stations"`
}

// FirefighterResponse DTO для ответа с одним пожарным
type FirefighterResponse struct {
	Firefighter models.Firefighter `json:"firefighter"`
}

// FirefighterListResponse DTO для списка пожарных
type FirefighterListResponse struct {
	Firefighters []models.Firefighter `json:"firefighters"`
}

// SeriesResponse DTO для ряда вызовов по дням
type SeriesResponse struct {
	Series []models.TimeSeriesPoint `json:"series"`
}

// HelloResponse DTO приветствия API
type HelloResponse struct {
	Message string `json:"message"`
}

// ErrorResponse - тело любого ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
