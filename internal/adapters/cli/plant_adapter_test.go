package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/verdant/internal/ports/primary"
)

// mockPlantService implements primary.PlantService for testing
type mockPlantService struct {
	createPlantFn func(ctx context.Context, userID string, req primary.CreatePlantRequest) (*primary.PlantDetail, error)
	getPlantFn    func(ctx context.Context, userID, plantID string) (*primary.PlantDetail, error)
	listPlantsFn  func(ctx context.Context, userID string, q primary.PlantListQuery) (*primary.PlantListResult, error)
	deletePlantFn func(ctx context.Context, userID, plantID string) error
}

func (m *mockPlantService) CreatePlant(ctx context.Context, userID string, req primary.CreatePlantRequest) (*primary.PlantDetail, error) {
	if m.createPlantFn != nil {
		return m.createPlantFn(ctx, userID, req)
	}
	return &primary.PlantDetail{Plant: primary.Plant{ID: "plant-001", Name: req.Name, Priority: 2}}, nil
}

func (m *mockPlantService) GetPlant(ctx context.Context, userID, plantID string) (*primary.PlantDetail, error) {
	if m.getPlantFn != nil {
		return m.getPlantFn(ctx, userID, plantID)
	}
	return &primary.PlantDetail{Plant: primary.Plant{ID: plantID, Name: "Monstera", Priority: 2}}, nil
}

func (m *mockPlantService) UpdatePlant(ctx context.Context, userID, plantID string, req primary.UpdatePlantRequest) (*primary.PlantDetail, error) {
	return &primary.PlantDetail{Plant: primary.Plant{ID: plantID, Name: "Monstera"}}, nil
}

func (m *mockPlantService) DeletePlant(ctx context.Context, userID, plantID string) error {
	if m.deletePlantFn != nil {
		return m.deletePlantFn(ctx, userID, plantID)
	}
	return nil
}

func (m *mockPlantService) ListPlants(ctx context.Context, userID string, q primary.PlantListQuery) (*primary.PlantListResult, error) {
	if m.listPlantsFn != nil {
		return m.listPlantsFn(ctx, userID, q)
	}
	return &primary.PlantListResult{}, nil
}

func TestPlantAdapterListEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewPlantAdapter(&mockPlantService{}, &buf)

	_, err := adapter.List(context.Background(), "user-001", primary.PlantListQuery{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No plants found") {
		t.Errorf("expected empty-state hint, got %q", buf.String())
	}
}

func TestPlantAdapterListRendersRows(t *testing.T) {
	var buf bytes.Buffer
	service := &mockPlantService{
		listPlantsFn: func(ctx context.Context, userID string, q primary.PlantListQuery) (*primary.PlantListResult, error) {
			return &primary.PlantListResult{
				Items: []*primary.Plant{
					{ID: "plant-001", Name: "Monstera", Priority: 0, NextWateringAt: "2025-06-10"},
					{ID: "plant-002", Name: "Aloe", Priority: 2},
				},
				Pagination: primary.Pagination{Page: 1, Limit: 20, Total: 2, TotalPages: 1},
			}, nil
		},
	}
	adapter := NewPlantAdapter(service, &buf)

	result, err := adapter.List(context.Background(), "user-001", primary.PlantListQuery{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}

	out := buf.String()
	if !strings.Contains(out, "Monstera") || !strings.Contains(out, "Aloe") {
		t.Errorf("expected both plant names in output, got %q", out)
	}
	if !strings.Contains(out, "2025-06-10") {
		t.Errorf("expected next watering date in output, got %q", out)
	}
}

func TestPlantAdapterShowIncludesSchedulesAndHistory(t *testing.T) {
	var buf bytes.Buffer
	service := &mockPlantService{
		getPlantFn: func(ctx context.Context, userID, plantID string) (*primary.PlantDetail, error) {
			return &primary.PlantDetail{
				Plant: primary.Plant{ID: plantID, Name: "Monstera", Priority: 1},
				Schedules: []primary.ScheduleEntry{
					{Season: "summer", WateringInterval: 2, FertilizingInterval: 0},
				},
				RecentCareLog: []primary.CareLogEntry{
					{PerformedAt: "2025-06-10", ActionType: "watering"},
				},
			}, nil
		},
	}
	adapter := NewPlantAdapter(service, &buf)

	_, err := adapter.Show(context.Background(), "user-001", "plant-001")
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "summer") || !strings.Contains(out, "disabled") {
		t.Errorf("expected schedule with disabled fertilizing, got %q", out)
	}
	if !strings.Contains(out, "2025-06-10  watering") {
		t.Errorf("expected care history line, got %q", out)
	}
}

func TestPlantAdapterDeletePropagatesError(t *testing.T) {
	var buf bytes.Buffer
	service := &mockPlantService{
		deletePlantFn: func(ctx context.Context, userID, plantID string) error {
			return primary.ErrNotFound
		},
	}
	adapter := NewPlantAdapter(service, &buf)

	err := adapter.Delete(context.Background(), "user-001", "missing")
	if !errors.Is(err, primary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on failure, got %q", buf.String())
	}
}
