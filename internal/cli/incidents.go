package cli

import (
	"fmt"
	"strconv"

	"github.com/shenikar/fire_dashboard/internal/gateway"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/query"
	"github.com/spf13/cobra"
)

func parseID(kind, raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, raw)
	}
	return v, nil
}

func notFound(kind string, v int64, err error) error {
	if gateway.IsNotFound(err) {
		return fmt.Errorf("%s %d not found", kind, v)
	}
	return err
}

func (a *app) incidentsCommand() *cobra.Command {
	var status, severity string
	cmd := &cobra.Command{
		Use:   "incidents",
		Short: "List incidents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := query.FromSelection(status, severity)
			if err != nil {
				return err
			}

			board := a.dash.NewIncidentBoard(filters)
			defer board.Close()

			incidents, err := board.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("load incidents: %w", err)
			}

			out := cmd.OutOrStdout()
			if err := renderIncidents(out, incidents); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "\n%d incidents, %d active (filter: %s)\n",
				len(incidents), board.ActiveCount(), filters)
			return err
		},
	}
	cmd.Flags().StringVar(&status, "status", query.SelectAll, "Active, Cleared or all")
	cmd.Flags().StringVar(&severity, "severity", query.SelectAll, "Low, Moderate, High, Critical or all")
	return cmd
}

func (a *app) incidentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "incident <id>",
		Short: "Show one incident with its station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			incidentID, err := parseID("incident", args[0])
			if err != nil {
				return err
			}
			detail, err := a.dash.IncidentDetail(cmd.Context(), incidentID)
			if err != nil {
				return notFound("incident", incidentID, err)
			}
			return renderIncidentDetail(cmd.OutOrStdout(), detail)
		},
	}
}

func (a *app) clearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <id>",
		Short: "Mark an active incident as cleared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			incidentID, err := parseID("incident", args[0])
			if err != nil {
				return err
			}

			board := a.dash.NewIncidentBoard(query.Filters{})
			defer board.Close()

			updated, err := board.Clear(cmd.Context(), incidentID)
			if err != nil {
				return notFound("incident", incidentID, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Incident %d is %s\n", updated.ID, updated.Status)
			return err
		},
	}
}

func (a *app) reportCommand() *cobra.Command {
	var draft models.IncidentDraft
	var severity string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report a new incident",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft.Severity = models.Severity(severity)
			created, err := a.dash.ReportIncident(cmd.Context(), draft)
			if err != nil {
				return fmt.Errorf("report incident: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Reported incident %d: %s (%s) at %s\n",
				created.ID, created.Type, created.Severity, created.Address)
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&draft.Type, "type", "", "incident type")
	flags.StringVar(&severity, "severity", "", "Low, Moderate, High or Critical (default Low)")
	flags.StringVar(&draft.Address, "address", "", "incident address")
	flags.Int64Var(&draft.StationID, "station", 0, "responding station id")
	flags.StringSliceVar(&draft.UnitsResponding, "unit", nil, "responding unit, repeatable")
	return cmd
}
