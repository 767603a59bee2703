package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shenikar/fire_dashboard/internal/dashboard"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/series"
)

const timeLayout = "2006-01-02 15:04 MST"

// noData выводится для дня, по которому сервер ничего не вернул. Такой день
// никогда не рисуется как ноль.
const noData = "no data"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func row(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func units(u []string) string {
	if len(u) == 0 {
		return "-"
	}
	return strings.Join(u, ",")
}

func renderStats(w io.Writer, s models.StatsSnapshot) error {
	tw := newTable(w)
	row(tw, "Calls today", strconv.Itoa(s.CallsToday))
	row(tw, "Calls this month", strconv.Itoa(s.CallsThisMonth))
	row(tw, "Avg response", fmt.Sprintf("%.1f min", s.AvgResponseTimeMin))
	row(tw, "Active incidents", strconv.Itoa(s.ActiveIncidents))
	row(tw, "On duty", strconv.Itoa(s.FirefightersOnDuty))
	row(tw, "Stations", strconv.Itoa(s.Stations))
	row(tw, "Updated", s.LastUpdated.UTC().Format(timeLayout))
	return tw.Flush()
}

// maxBarWidth - предел длины полоски в символах. Если максимум окна больше,
// полоски масштабируются пропорционально.
const maxBarWidth = 40

// renderSeries печатает каждый день окна, заканчивающегося today, от старых к новым
func renderSeries(w io.Writer, s series.Series, days int, today time.Time) error {
	start := today.AddDate(0, 0, -(days - 1))
	peak := 0
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		if count, ok := s.Lookup(day); ok && count > peak {
			peak = count
		}
	}

	tw := newTable(w)
	row(tw, "DATE", "CALLS", "")
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		count, ok := s.Lookup(day)
		if !ok {
			row(tw, series.ShortLabel(day), noData, "")
			continue
		}
		row(tw, series.ShortLabel(day), strconv.Itoa(count), bar(count, peak))
	}
	row(tw, "Total", strconv.Itoa(s.Total()), "")
	return tw.Flush()
}

func bar(count, peak int) string {
	if count <= 0 {
		return ""
	}
	width := count
	if peak > maxBarWidth {
		width = int(int64(count) * maxBarWidth / int64(peak))
		// ненулевой день не должен выглядеть как пустой
		width = max(width, 1)
	}
	return strings.Repeat("#", width)
}

func renderIncidents(w io.Writer, incidents []models.Incident) error {
	tw := newTable(w)
	row(tw, "ID", "TYPE", "SEVERITY", "STATUS", "ADDRESS", "STATION", "UNITS", "REPORTED")
	for _, inc := range incidents {
		row(tw,
			id(inc.ID),
			inc.Type,
			string(inc.Severity),
			string(inc.Status),
			inc.Address,
			id(inc.StationID),
			units(inc.UnitsResponding),
			inc.ReportedAt.UTC().Format(timeLayout),
		)
	}
	return tw.Flush()
}

func renderIncidentDetail(w io.Writer, d *models.IncidentDetail) error {
	tw := newTable(w)
	inc := d.Incident
	row(tw, "Incident", id(inc.ID))
	row(tw, "Type", inc.Type)
	row(tw, "Severity", string(inc.Severity))
	row(tw, "Status", string(inc.Status))
	row(tw, "Address", inc.Address)
	if d.Station != nil {
		row(tw, "Station", fmt.Sprintf("%s (#%d)", d.Station.Name, d.Station.ID))
	} else {
		row(tw, "Station", fmt.Sprintf("#%d (unknown)", inc.StationID))
	}
	row(tw, "Units", units(inc.UnitsResponding))
	row(tw, "Reported", inc.ReportedAt.UTC().Format(timeLayout))
	return tw.Flush()
}

func renderStations(w io.Writer, r *dashboard.RosterData) error {
	crew := make(map[int64]int, len(r.Stations))
	for _, ff := range r.Firefighters {
		crew[ff.StationID]++
	}

	tw := newTable(w)
	row(tw, "ID", "NAME", "ADDRESS", "APPARATUS", "ON DUTY", "CREW")
	for _, st := range r.Stations {
		row(tw,
			id(st.ID),
			st.Name,
			st.Address,
			strconv.Itoa(st.ApparatusCount),
			strconv.Itoa(st.OnDutyCount),
			strconv.Itoa(crew[st.ID]),
		)
	}
	return tw.Flush()
}

func renderStationDetail(w io.Writer, d *models.StationDetail) error {
	tw := newTable(w)
	st := d.Station
	row(tw, "Station", fmt.Sprintf("%s (#%d)", st.Name, st.ID))
	row(tw, "Address", st.Address)
	row(tw, "Apparatus", strconv.Itoa(st.ApparatusCount))
	row(tw, "On duty", strconv.Itoa(st.OnDutyCount))
	if st.Lat != nil && st.Lng != nil {
		row(tw, "Location", fmt.Sprintf("%.4f, %.4f", *st.Lat, *st.Lng))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nRecent incidents (%d)\n", len(d.RecentIncidents))
	return renderIncidents(w, d.RecentIncidents)
}

func renderRoster(w io.Writer, r *dashboard.RosterData) error {
	tw := newTable(w)
	row(tw, "ID", "NAME", "RANK", "STATION", "ON DUTY")
	for _, ff := range r.Firefighters {
		station := r.StationName(ff.StationID)
		if station == "" {
			station = "#" + id(ff.StationID)
		}
		rank := ff.Rank
		if rank == "" {
			rank = "-"
		}
		row(tw, id(ff.ID), ff.Name, rank, station, yesNo(ff.OnDuty))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d of %d on duty\n", r.OnDuty(), len(r.Firefighters))
	return err
}
