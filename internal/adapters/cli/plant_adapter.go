// Package cli contains thin adapters that translate CLI operations to
// service calls and render the results. Adapters depend only on the
// primary port interfaces, enabling easy testing with mocks.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/verdant/internal/ports/primary"
)

// Urgency rendering shared by the plant and dashboard adapters.
var (
	urgentLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	warningLabel = color.New(color.FgYellow).SprintFunc()
	okLabel      = color.New(color.FgGreen).SprintFunc()
)

func priorityLabel(p int) string {
	switch p {
	case 0:
		return urgentLabel("urgent")
	case 1:
		return warningLabel("due today")
	default:
		return okLabel("ok")
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PlantAdapter translates CLI operations to PlantService calls.
type PlantAdapter struct {
	service primary.PlantService
	out     io.Writer
}

// NewPlantAdapter creates a new PlantAdapter with the given service.
func NewPlantAdapter(service primary.PlantService, out io.Writer) *PlantAdapter {
	return &PlantAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a plant and prints a summary.
func (a *PlantAdapter) Create(ctx context.Context, userID string, req primary.CreatePlantRequest) (*primary.PlantDetail, error) {
	detail, err := a.service.CreatePlant(ctx, userID, req)
	if err != nil {
		return nil, opaqueFault("create plant", "", err)
	}

	fmt.Fprintf(a.out, "✓ Created plant %s: %s\n", detail.Plant.ID, detail.Plant.Name)
	if len(detail.Schedules) > 0 {
		fmt.Fprintf(a.out, "  Schedules: %d season(s)\n", len(detail.Schedules))
	} else {
		fmt.Fprintln(a.out, "  No schedules yet. Add one with:")
		fmt.Fprintf(a.out, "    verdant schedule set %s --season summer --watering 3 --fertilizing 14\n", detail.Plant.ID)
	}

	return detail, nil
}

// Show displays details for a single plant.
func (a *PlantAdapter) Show(ctx context.Context, userID, plantID string) (*primary.PlantDetail, error) {
	detail, err := a.service.GetPlant(ctx, userID, plantID)
	if err != nil {
		return nil, opaqueFault("show plant", plantID, err)
	}

	p := detail.Plant
	fmt.Fprintf(a.out, "\nPlant: %s\n", p.ID)
	fmt.Fprintf(a.out, "Name:       %s\n", p.Name)
	if p.Difficulty != "" {
		fmt.Fprintf(a.out, "Difficulty: %s\n", p.Difficulty)
	}
	fmt.Fprintf(a.out, "Urgency:    %s\n", priorityLabel(p.Priority))
	fmt.Fprintf(a.out, "Watering:   last %s, next %s\n", orDash(p.LastWateredAt), orDash(p.NextWateringAt))
	fmt.Fprintf(a.out, "Fertilizing: last %s, next %s\n", orDash(p.LastFertilizedAt), orDash(p.NextFertilizingAt))
	if detail.Position != "" {
		fmt.Fprintf(a.out, "Position:   %s\n", detail.Position)
	}
	if detail.Notes != "" {
		fmt.Fprintf(a.out, "Notes:      %s\n", detail.Notes)
	}

	if len(detail.Schedules) > 0 {
		fmt.Fprintln(a.out, "\nSchedules:")
		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  SEASON\tWATERING\tFERTILIZING")
		for _, s := range detail.Schedules {
			fert := fmt.Sprintf("every %d day(s)", s.FertilizingInterval)
			if s.FertilizingInterval == 0 {
				fert = "disabled"
			}
			fmt.Fprintf(w, "  %s\tevery %d day(s)\t%s\n", s.Season, s.WateringInterval, fert)
		}
		w.Flush()
	}

	if len(detail.RecentCareLog) > 0 {
		fmt.Fprintln(a.out, "\nRecent care:")
		for _, e := range detail.RecentCareLog {
			fmt.Fprintf(a.out, "  %s  %s\n", e.PerformedAt, e.ActionType)
		}
	}
	fmt.Fprintln(a.out)

	return detail, nil
}

// List lists plants with search, sort and paging.
func (a *PlantAdapter) List(ctx context.Context, userID string, q primary.PlantListQuery) (*primary.PlantListResult, error) {
	result, err := a.service.ListPlants(ctx, userID, q)
	if err != nil {
		return nil, opaqueFault("list plants", "", err)
	}

	if len(result.Items) == 0 {
		fmt.Fprintln(a.out, "No plants found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Add your first plant:")
		fmt.Fprintln(a.out, "  verdant plant create \"Monstera\"")
		return result, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tURGENCY\tNEXT WATERING\tNEXT FERTILIZING")
	fmt.Fprintln(w, "--\t----\t-------\t-------------\t----------------")
	for _, p := range result.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.Name,
			priorityLabel(p.Priority),
			orDash(p.NextWateringAt),
			orDash(p.NextFertilizingAt),
		)
	}
	w.Flush()

	pg := result.Pagination
	if pg.TotalPages > 1 {
		fmt.Fprintf(a.out, "\nPage %d of %d (%d plants)\n", pg.Page, pg.TotalPages, pg.Total)
	}

	return result, nil
}

// Update updates plant fields and prints a summary.
func (a *PlantAdapter) Update(ctx context.Context, userID, plantID string, req primary.UpdatePlantRequest) (*primary.PlantDetail, error) {
	detail, err := a.service.UpdatePlant(ctx, userID, plantID, req)
	if err != nil {
		return nil, opaqueFault("update plant", plantID, err)
	}

	fmt.Fprintf(a.out, "✓ Updated plant %s: %s\n", detail.Plant.ID, detail.Plant.Name)
	return detail, nil
}

// Delete removes a plant.
func (a *PlantAdapter) Delete(ctx context.Context, userID, plantID string) error {
	if err := a.service.DeletePlant(ctx, userID, plantID); err != nil {
		return opaqueFault("delete plant", plantID, err)
	}

	fmt.Fprintf(a.out, "✓ Deleted plant %s (schedules and care history removed)\n", plantID)
	return nil
}
