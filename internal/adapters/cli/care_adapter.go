package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/verdant/internal/ports/primary"
)

// CareAdapter translates CLI operations to CareActionService calls.
type CareAdapter struct {
	service primary.CareActionService
	out     io.Writer
}

// NewCareAdapter creates a new CareAdapter with the given service.
func NewCareAdapter(service primary.CareActionService, out io.Writer) *CareAdapter {
	return &CareAdapter{
		service: service,
		out:     out,
	}
}

// Record records a care action and prints the updated care state.
func (a *CareAdapter) Record(ctx context.Context, userID string, req primary.RecordCareActionRequest) (*primary.RecordCareActionResult, error) {
	result, err := a.service.RecordCareAction(ctx, userID, req)
	if err != nil {
		return nil, opaqueFault("record care action", req.PlantID, err)
	}

	fmt.Fprintf(a.out, "✓ Recorded %s for %s on %s\n", result.Entry.ActionType, result.Plant.Name, result.Entry.PerformedAt)
	switch result.Entry.ActionType {
	case "watering":
		fmt.Fprintf(a.out, "  Next watering: %s\n", orDash(result.Plant.NextWateringAt))
	case "fertilizing":
		fmt.Fprintf(a.out, "  Next fertilizing: %s\n", orDash(result.Plant.NextFertilizingAt))
	}

	return result, nil
}

// History prints the plant's care history, newest first.
func (a *CareAdapter) History(ctx context.Context, userID string, q primary.CareActionsQuery) ([]primary.CareLogEntry, error) {
	entries, err := a.service.ListCareActions(ctx, userID, q)
	if err != nil {
		return nil, opaqueFault("list care history", q.PlantID, err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No care history yet.")
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DATE\tACTION")
	fmt.Fprintln(w, "----\t------")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.PerformedAt, e.ActionType)
	}
	w.Flush()

	return entries, nil
}
