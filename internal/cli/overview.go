package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *app) overviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show department statistics and calls per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			days := a.v.GetInt(keyDays)
			if days < 1 {
				return fmt.Errorf("days must be positive, got %d", days)
			}

			data, err := a.dash.Overview(cmd.Context(), days)
			if err != nil {
				return fmt.Errorf("load overview: %w", err)
			}

			out := cmd.OutOrStdout()
			if err := renderStats(out, data.Stats); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nCalls by day (last %d days)\n", data.Days)
			// Окно заканчивается днём бэкенда, а не локальным днём терминала
			today := data.Stats.LastUpdated.UTC().Truncate(24 * time.Hour)
			return renderSeries(out, data.Series, data.Days, today)
		},
	}
	cmd.Flags().Int("days", 14, "window in days")
	mustBind(a.v, keyDays, cmd.Flags().Lookup("days"))
	return cmd
}
