package v1

import (
	"fmt"
	"strings"

	"github.com/shenikar/fire_dashboard/internal/models"
)

// RequestToIncidentDraft преобразует DTO в черновик инцидента.
// Severity сравнивается без учета регистра, пустое значение остается
// для умолчаний черновика.
func RequestToIncidentDraft(req CreateIncidentRequest) (models.IncidentDraft, error) {
	draft := models.IncidentDraft{
		Type:            req.Type,
		Address:         req.Address,
		StationID:       req.StationID,
		UnitsResponding: req.UnitsResponding,
	}
	if strings.TrimSpace(req.Severity) != "" {
		sev, ok := models.ParseSeverity(req.Severity)
		if !ok {
			return models.IncidentDraft{}, fmt.Errorf("unknown severity %q", req.Severity)
		}
		draft.Severity = sev
	}
	if draft.UnitsResponding == nil {
		draft.UnitsResponding = []string{}
	}
	return draft, nil
}

// RequestToIncidentPatch преобразует DTO в частичный патч
func RequestToIncidentPatch(req PatchIncidentRequest) (models.IncidentPatch, error) {
	if req.Status == nil {
		return models.IncidentPatch{}, nil
	}
	status, ok := models.ParseStatus(*req.Status)
	if !ok {
		return models.IncidentPatch{}, fmt.Errorf("unknown status %q", *req.Status)
	}
	return models.IncidentPatch{Status: &status}, nil
}

func RequestToFirefighterDraft(req CreateFirefighterRequest) models.FirefighterDraft {
	return models.FirefighterDraft{
		Name:      req.Name,
		Rank:      req.Rank,
		StationID: req.StationID,
		OnDuty:    req.OnDuty,
	}
}
