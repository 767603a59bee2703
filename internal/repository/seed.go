package repository

import (
	"time"

	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/service"
)

func coord(v float64) *float64 { return &v }

// NewSeededRepository возвращает хранилище с демо-данными части:
// три станции, четыре инцидента относительно now и небольшой состав.
func NewSeededRepository(now time.Time) service.Repository {
	r := newMemoryRepository()
	r.seed(now.UTC())
	return r
}

func (r *MemoryRepository) seed(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stations = []models.Station{
		{ID: 1, Name: "Station 1 - Central", Address: "100 Main St", ApparatusCount: 4, OnDutyCount: 12, Lat: coord(47.6062), Lng: coord(-122.3321)},
		{ID: 2, Name: "Station 2 - North", Address: "220 North Ave", ApparatusCount: 3, OnDutyCount: 9, Lat: coord(47.6756), Lng: coord(-122.2711)},
		{ID: 3, Name: "Station 3 - South", Address: "450 South Blvd", ApparatusCount: 3, OnDutyCount: 8, Lat: coord(47.5233), Lng: coord(-122.3550)},
	}

	r.incidents = []models.Incident{
		{
			ID: 101, Type: "Structure Fire", Severity: models.SeverityCritical, Status: models.StatusActive,
			Address: "742 Evergreen Terrace", StationID: 1,
			UnitsResponding: []string{"E1", "T1", "B1", "M3"},
			ReportedAt:      now.Add(-12 * time.Minute),
		},
		{
			ID: 102, Type: "Medical Aid", Severity: models.SeverityModerate, Status: models.StatusCleared,
			Address: "88 Lakeview Rd", StationID: 2,
			UnitsResponding: []string{"M2"},
			ReportedAt:      now.Add(-3*time.Hour - 5*time.Minute),
		},
		{
			ID: 103, Type: "Vehicle Accident", Severity: models.SeverityHigh, Status: models.StatusActive,
			Address: "I-5 S & Exit 163", StationID: 3,
			UnitsResponding: []string{"E3", "M4", "B2"},
			ReportedAt:      now.Add(-34 * time.Minute),
		},
		{
			ID: 104, Type: "Alarm Bell", Severity: models.SeverityLow, Status: models.StatusCleared,
			Address: "55 Commerce Park", StationID: 2,
			UnitsResponding: []string{"E2"},
			ReportedAt:      now.Add(-15 * time.Hour),
		},
	}
	r.nextIncidentID = 105

	r.firefighters = []models.Firefighter{
		{ID: 1, Name: "Alex Rivera", Rank: "Captain", StationID: 1, OnDuty: true},
		{ID: 2, Name: "Morgan Chen", Rank: "Engineer", StationID: 1, OnDuty: true},
		{ID: 3, Name: "Sam Patel", Rank: "Lieutenant", StationID: 2, OnDuty: true},
		{ID: 4, Name: "Jamie Okafor", Rank: "Firefighter", StationID: 2, OnDuty: false},
		{ID: 5, Name: "Riley Novak", Rank: "Paramedic", StationID: 3, OnDuty: true},
	}
	r.nextFirefighterID = 6
}
