package models

import (
	"strings"
	"time"
)

// Severity - уровень срочности инцидента
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityModerate Severity = "Moderate"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Severities - все уровни серьезности по возрастанию срочности
var Severities = []Severity{SeverityLow, SeverityModerate, SeverityHigh, SeverityCritical}

// Rank возвращает порядок срочности s (0 для Low) или -1 для неизвестного значения
func (s Severity) Rank() int {
	for i, v := range Severities {
		if v == s {
			return i
		}
	}
	return -1
}

func (s Severity) Valid() bool { return s.Rank() >= 0 }

// ParseSeverity принимает любой регистр и возвращает каноническое значение
func ParseSeverity(raw string) (Severity, bool) {
	for _, v := range Severities {
		if strings.EqualFold(string(v), strings.TrimSpace(raw)) {
			return v, true
		}
	}
	return "", false
}

// Status - состояние инцидента в жизненном цикле
type Status string

const (
	StatusActive  Status = "Active"
	StatusCleared Status = "Cleared"
)

var Statuses = []Status{StatusActive, StatusCleared}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// ParseStatus принимает любой регистр и возвращает каноническое значение
func ParseStatus(raw string) (Status, bool) {
	for _, v := range Statuses {
		if strings.EqualFold(string(v), strings.TrimSpace(raw)) {
			return v, true
		}
	}
	return "", false
}

type Incident struct {
	ID              int64     `json:"id" validate:"gt=0"`
	Type            string    `json:"type" validate:"required"`
	Severity        Severity  `json:"severity" validate:"required,oneof=Low Moderate High Critical"`
	Status          Status    `json:"status" validate:"required,oneof=Active Cleared"`
	Address         string    `json:"address" validate:"required"`
	StationID       int64     `json:"station_id" validate:"gt=0"`
	UnitsResponding []string  `json:"units_responding" validate:"dive,required"`
	ReportedAt      time.Time `json:"reported_at" validate:"required"`
}

// IncidentDraft - тело запроса на создание инцидента
type IncidentDraft struct {
	Type            string   `json:"type" validate:"required"`
	Severity        Severity `json:"severity" validate:"required,oneof=Low Moderate High Critical"`
	Address         string   `json:"address" validate:"required"`
	StationID       int64    `json:"station_id" validate:"gt=0"`
	UnitsResponding []string `json:"units_responding" validate:"dive,required"`
}

// Normalized обрезает пробелы в текстовых полях и подставляет умолчания формы
func (d IncidentDraft) Normalized() IncidentDraft {
	d.Type = strings.TrimSpace(d.Type)
	d.Address = strings.TrimSpace(d.Address)
	if strings.TrimSpace(string(d.Severity)) == "" {
		d.Severity = SeverityLow
	} else if sev, ok := ParseSeverity(string(d.Severity)); ok {
		d.Severity = sev
	}
	units := make([]string, 0, len(d.UnitsResponding))
	for _, u := range d.UnitsResponding {
		units = append(units, strings.TrimSpace(u))
	}
	d.UnitsResponding = units
	return d
}

// IncidentPatch содержит только изменяемые поля. nil-поля не отправляются.
type IncidentPatch struct {
	Status *Status `json:"status,omitempty"`
}

// IsEmpty сообщает, что патч ничего не меняет
func (p IncidentPatch) IsEmpty() bool {
	return p.Status == nil
}

// IncidentDetail - инцидент вместе с его станцией (GET /api/incidents/{id})
type IncidentDetail struct {
	Incident Incident `json:"incident"`
	Station  *Station `json:"station"`
}
