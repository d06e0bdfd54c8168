package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/example/verdant/internal/eventbus"
	"github.com/example/verdant/internal/ports/primary"
	"github.com/example/verdant/internal/ports/secondary"
)

type dashboardFixture struct {
	service   *DashboardServiceImpl
	plants    *mockPlantRepository
	schedules *mockScheduleRepository
	bus       *eventbus.Bus
}

func newDashboardFixture() *dashboardFixture {
	plants := newMockPlantRepository()
	schedules := newMockScheduleRepository()
	bus := eventbus.New()
	clock := fixedClock{now: testNow}
	cache := NewScheduleCache(schedules, clock, bus)
	return &dashboardFixture{
		service:   NewDashboardService(plants, cache, clock),
		plants:    plants,
		schedules: schedules,
		bus:       bus,
	}
}

func TestGetDashboardStatsSpanFilteredSet(t *testing.T) {
	f := newDashboardFixture()
	ctx := context.Background()

	f.plants.Create(ctx, &secondary.PlantRecord{ID: "p1", UserID: "u1", Name: "Overdue", NextWateringAt: "2025-06-01"})
	f.plants.Create(ctx, &secondary.PlantRecord{ID: "p2", UserID: "u1", Name: "Today", NextWateringAt: "2025-06-15"})
	f.plants.Create(ctx, &secondary.PlantRecord{ID: "p3", UserID: "u1", Name: "Later", NextWateringAt: "2025-07-01"})

	dash, err := f.service.GetDashboard(ctx, "u1", primary.DashboardQuery{Limit: 1})
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}

	// Stats cover all three plants even though the page holds one.
	if dash.Stats.Total != 3 || dash.Stats.Urgent != 1 || dash.Stats.Warning != 1 {
		t.Errorf("unexpected stats: %+v", dash.Stats)
	}
	if len(dash.AllPlants) != 1 {
		t.Errorf("expected 1 plant on the page, got %d", len(dash.AllPlants))
	}
	if dash.Pagination.Total != 3 {
		t.Errorf("expected pagination total 3, got %d", dash.Pagination.Total)
	}
}

func TestGetDashboardAttentionSetOrderAndCap(t *testing.T) {
	f := newDashboardFixture()
	ctx := context.Background()

	// 25 overdue plants; the attention set caps at 20.
	for i := 0; i < 25; i++ {
		f.plants.Create(ctx, &secondary.PlantRecord{
			ID:             fmt.Sprintf("p%02d", i),
			UserID:         "u1",
			Name:           fmt.Sprintf("Plant %02d", i),
			NextWateringAt: "2025-06-01",
		})
	}
	// One due-today plant sorts after every overdue one.
	f.plants.Create(ctx, &secondary.PlantRecord{ID: "pw", UserID: "u1", Name: "Aaa Warning", NextWateringAt: "2025-06-15"})

	dash, err := f.service.GetDashboard(ctx, "u1", primary.DashboardQuery{})
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	if len(dash.RequiresAttention) != 20 {
		t.Fatalf("expected attention set capped at 20, got %d", len(dash.RequiresAttention))
	}
	for _, p := range dash.RequiresAttention {
		if p.Priority != 0 {
			t.Errorf("expected only urgent plants inside the cap, got %s with priority %d", p.Name, p.Priority)
		}
	}
}

func TestGetDashboardAttentionRespectsSmallerLimit(t *testing.T) {
	f := newDashboardFixture()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		f.plants.Create(ctx, &secondary.PlantRecord{
			ID:             fmt.Sprintf("p%d", i),
			UserID:         "u1",
			Name:           fmt.Sprintf("Plant %d", i),
			NextWateringAt: "2025-06-01",
		})
	}

	dash, err := f.service.GetDashboard(ctx, "u1", primary.DashboardQuery{Limit: 3})
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	if len(dash.RequiresAttention) != 3 {
		t.Errorf("expected attention set capped at the limit, got %d", len(dash.RequiresAttention))
	}
}

func TestGetDashboardFertilizingDisabledAnnotation(t *testing.T) {
	f := newDashboardFixture()
	ctx := context.Background()

	f.plants.Create(ctx, &secondary.PlantRecord{ID: "p1", UserID: "u1", Name: "Disabled"})
	f.plants.Create(ctx, &secondary.PlantRecord{ID: "p2", UserID: "u1", Name: "Enabled"})
	f.plants.Create(ctx, &secondary.PlantRecord{ID: "p3", UserID: "u1", Name: "NoSchedule"})

	// Today is summer; p1 has the zero sentinel there.
	f.schedules.setFullYear("p1", 2, 14)
	f.schedules.set("p1", "summer", 2, 0)
	f.schedules.setFullYear("p2", 2, 14)

	dash, err := f.service.GetDashboard(ctx, "u1", primary.DashboardQuery{Sort: "name"})
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}

	byName := map[string]*primary.DashboardPlant{}
	for _, p := range dash.AllPlants {
		byName[p.Name] = p
	}
	if !byName["Disabled"].FertilizingDisabled {
		t.Error("expected Disabled to be annotated")
	}
	if byName["Enabled"].FertilizingDisabled {
		t.Error("expected Enabled not to be annotated")
	}
	// Missing schedules degrade to not-disabled.
	if byName["NoSchedule"].FertilizingDisabled {
		t.Error("expected NoSchedule not to be annotated")
	}
}

func TestGetDashboardSearchFilters(t *testing.T) {
	f := newDashboardFixture()
	ctx := context.Background()

	f.plants.Create(ctx, &secondary.PlantRecord{ID: "p1", UserID: "u1", Name: "Aloe Vera", NextWateringAt: "2025-06-01"})
	f.plants.Create(ctx, &secondary.PlantRecord{ID: "p2", UserID: "u1", Name: "Monstera", NextWateringAt: "2025-06-01"})

	dash, err := f.service.GetDashboard(ctx, "u1", primary.DashboardQuery{Search: "aloe"})
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	if dash.Stats.Total != 1 || dash.Stats.Urgent != 1 {
		t.Errorf("expected stats over the filtered set, got %+v", dash.Stats)
	}
	if len(dash.RequiresAttention) != 1 || dash.RequiresAttention[0].Name != "Aloe Vera" {
		t.Errorf("expected the attention set to honor the filter, got %v", dash.RequiresAttention)
	}
}
