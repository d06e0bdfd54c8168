package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/verdant/internal/ports/primary"
)

// DashboardAdapter translates CLI operations to DashboardService calls.
type DashboardAdapter struct {
	service primary.DashboardService
	out     io.Writer
}

// NewDashboardAdapter creates a new DashboardAdapter with the given service.
func NewDashboardAdapter(service primary.DashboardService, out io.Writer) *DashboardAdapter {
	return &DashboardAdapter{
		service: service,
		out:     out,
	}
}

// Show renders the dashboard: stats, the attention set and one page of
// the full list.
func (a *DashboardAdapter) Show(ctx context.Context, userID string, q primary.DashboardQuery) (*primary.Dashboard, error) {
	dash, err := a.service.GetDashboard(ctx, userID, q)
	if err != nil {
		return nil, opaqueFault("show dashboard", "", err)
	}

	fmt.Fprintf(a.out, "Plants: %d total, %s, %s\n",
		dash.Stats.Total,
		urgentLabel(fmt.Sprintf("%d urgent", dash.Stats.Urgent)),
		warningLabel(fmt.Sprintf("%d due today", dash.Stats.Warning)),
	)

	if len(dash.RequiresAttention) > 0 {
		fmt.Fprintln(a.out, "\nNeeds attention:")
		w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
		for _, p := range dash.RequiresAttention {
			note := ""
			if p.FertilizingDisabled {
				note = "(fertilizing off this season)"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				p.Name,
				priorityLabel(p.Priority),
				orDash(p.NextWateringAt),
				note,
			)
		}
		w.Flush()
	}

	if len(dash.AllPlants) > 0 {
		fmt.Fprintln(a.out, "\nAll plants:")
		w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "  ID\tNAME\tURGENCY\tNEXT WATERING\tNEXT FERTILIZING")
		for _, p := range dash.AllPlants {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				p.ID,
				p.Name,
				priorityLabel(p.Priority),
				orDash(p.NextWateringAt),
				orDash(p.NextFertilizingAt),
			)
		}
		w.Flush()
	}

	pg := dash.Pagination
	if pg.TotalPages > 1 {
		fmt.Fprintf(a.out, "\nPage %d of %d\n", pg.Page, pg.TotalPages)
	}

	return dash, nil
}
