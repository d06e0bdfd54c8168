package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/verdant/internal/ports/primary"
)

// ScheduleAdapter translates CLI operations to ScheduleService calls.
type ScheduleAdapter struct {
	service primary.ScheduleService
	out     io.Writer
}

// NewScheduleAdapter creates a new ScheduleAdapter with the given service.
func NewScheduleAdapter(service primary.ScheduleService, out io.Writer) *ScheduleAdapter {
	return &ScheduleAdapter{
		service: service,
		out:     out,
	}
}

// Show prints the plant's schedule set in season order.
func (a *ScheduleAdapter) Show(ctx context.Context, userID, plantID string) ([]primary.ScheduleEntry, error) {
	entries, err := a.service.GetPlantSchedules(ctx, userID, plantID)
	if err != nil {
		return nil, opaqueFault("show schedules", plantID, err)
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SEASON\tWATERING\tFERTILIZING")
	fmt.Fprintln(w, "------\t--------\t-----------")
	for _, e := range entries {
		fert := fmt.Sprintf("every %d day(s)", e.FertilizingInterval)
		if e.FertilizingInterval == 0 {
			fert = "disabled"
		}
		fmt.Fprintf(w, "%s\tevery %d day(s)\t%s\n", e.Season, e.WateringInterval, fert)
	}
	w.Flush()

	return entries, nil
}

// Set upserts schedule entries and prints the resulting set.
func (a *ScheduleAdapter) Set(ctx context.Context, userID, plantID string, inputs []primary.ScheduleEntryInput) ([]primary.ScheduleEntry, error) {
	entries, err := a.service.UpdatePlantSchedules(ctx, userID, plantID, inputs)
	if err != nil {
		return nil, opaqueFault("set schedules", plantID, err)
	}

	fmt.Fprintf(a.out, "✓ Updated schedules for plant %s\n", plantID)
	fmt.Fprintln(a.out)

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SEASON\tWATERING\tFERTILIZING")
	for _, e := range entries {
		fert := fmt.Sprintf("%d", e.FertilizingInterval)
		if e.FertilizingInterval == 0 {
			fert = "disabled"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.Season, e.WateringInterval, fert)
	}
	w.Flush()

	return entries, nil
}
