package models

import "strings"

type Station struct {
	ID             int64    `json:"id" validate:"gt=0"`
	Name           string   `json:"name" validate:"required"`
	Address        string   `json:"address"`
	ApparatusCount int      `json:"apparatus_count" validate:"min=0"`
	OnDutyCount    int      `json:"on_duty_count" validate:"min=0"`
	Lat            *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng            *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
}

type Firefighter struct {
	ID        int64  `json:"id" validate:"gt=0"`
	Name      string `json:"name" validate:"required"`
	Rank      string `json:"rank,omitempty"`
	StationID int64  `json:"station_id" validate:"gt=0"`
	OnDuty    bool   `json:"on_duty"`
}

// FirefighterDraft - тело запроса на добавление пожарного
type FirefighterDraft struct {
	Name      string `json:"name" validate:"required"`
	Rank      string `json:"rank,omitempty"`
	StationID int64  `json:"station_id" validate:"gt=0"`
	OnDuty    bool   `json:"on_duty"`
}

func (d FirefighterDraft) Normalized() FirefighterDraft {
	d.Name = strings.TrimSpace(d.Name)
	d.Rank = strings.TrimSpace(d.Rank)
	return d
}

// StationDetail - станция и её последние инциденты (GET /api/stations/{id})
type StationDetail struct {
	Station         Station    `json:"station"`
	RecentIncidents []Incident `json:"recent_incidents"`
}
