package models

import "time"

// StatsSnapshot формирует backend, клиент его не изменяет
type StatsSnapshot struct {
	CallsToday         int       `json:"calls_today" validate:"min=0"`
	CallsThisMonth     int       `json:"calls_this_month" validate:"min=0"`
	AvgResponseTimeMin float64   `json:"avg_response_time_min" validate:"min=0"`
	ActiveIncidents    int       `json:"active_incidents" validate:"min=0"`
	FirefightersOnDuty int       `json:"firefighters_on_duty" validate:"min=0"`
	Stations           int       `json:"stations" validate:"min=0"`
	LastUpdated        time.Time `json:"last_updated" validate:"required"`
}

// DateLayout - формат календарного дня ISO для точек ряда
const DateLayout = "2006-01-02"

// TimeSeriesPoint - количество вызовов за календарный день.
// Count проверяется в пакете series, а не здесь.
type TimeSeriesPoint struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Count int    `json:"count"`
}
