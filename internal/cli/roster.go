package cli

import (
	"fmt"

	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/spf13/cobra"
)

func (a *app) stationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roster, err := a.dash.Roster(cmd.Context())
			if err != nil {
				return fmt.Errorf("load stations: %w", err)
			}
			return renderStations(cmd.OutOrStdout(), roster)
		},
	}
}

func (a *app) stationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "station <id>",
		Short: "Show one station with its recent incidents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stationID, err := parseID("station", args[0])
			if err != nil {
				return err
			}
			detail, err := a.dash.StationDetail(cmd.Context(), stationID)
			if err != nil {
				return notFound("station", stationID, err)
			}
			return renderStationDetail(cmd.OutOrStdout(), detail)
		},
	}
}

func (a *app) rosterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "List firefighters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roster, err := a.dash.Roster(cmd.Context())
			if err != nil {
				return fmt.Errorf("load roster: %w", err)
			}
			return renderRoster(cmd.OutOrStdout(), roster)
		},
	}
}

func (a *app) addFirefighterCommand() *cobra.Command {
	var draft models.FirefighterDraft
	cmd := &cobra.Command{
		Use:   "add-firefighter",
		Short: "Add a firefighter to a station",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := a.dash.AddFirefighter(cmd.Context(), draft)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added firefighter %d: %s, station %d, on duty: %s\n",
				created.ID, created.Name, created.StationID, yesNo(created.OnDuty))
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&draft.Name, "name", "", "full name")
	flags.StringVar(&draft.Rank, "rank", "", "rank")
	flags.Int64Var(&draft.StationID, "station", 0, "station id")
	flags.BoolVar(&draft.OnDuty, "on-duty", false, "currently on duty")
	return cmd
}
