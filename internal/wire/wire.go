// Package wire provides dependency injection for the verdant application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/verdant/internal/adapters/cli"
	"github.com/example/verdant/internal/adapters/sqlite"
	"github.com/example/verdant/internal/app"
	"github.com/example/verdant/internal/config"
	"github.com/example/verdant/internal/db"
	"github.com/example/verdant/internal/eventbus"
	"github.com/example/verdant/internal/ports/primary"
)

// DefaultUserID is used when no config file exists yet. `verdant init`
// writes a per-installation user id.
const DefaultUserID = "local"

var (
	plantService      primary.PlantService
	scheduleService   primary.ScheduleService
	careActionService primary.CareActionService
	dashboardService  primary.DashboardService
	once              sync.Once
)

// PlantService returns the singleton PlantService instance.
func PlantService() primary.PlantService {
	once.Do(initServices)
	return plantService
}

// ScheduleService returns the singleton ScheduleService instance.
func ScheduleService() primary.ScheduleService {
	once.Do(initServices)
	return scheduleService
}

// CareActionService returns the singleton CareActionService instance.
func CareActionService() primary.CareActionService {
	once.Do(initServices)
	return careActionService
}

// DashboardService returns the singleton DashboardService instance.
func DashboardService() primary.DashboardService {
	once.Do(initServices)
	return dashboardService
}

// CurrentUserID returns the user id from the config file, falling back
// to DefaultUserID when no config has been written yet.
func CurrentUserID() string {
	cfg, err := config.Load()
	if err != nil || cfg.UserID == "" {
		return DefaultUserID
	}
	return cfg.UserID
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dbPath := ""
	if cfg, err := config.Load(); err == nil {
		dbPath = cfg.DBPath
	}

	database, err := db.GetDBAt(dbPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	plantRepo := sqlite.NewPlantRepository(database)
	scheduleRepo := sqlite.NewScheduleRepository(database)
	careLogRepo := sqlite.NewCareLogRepository(database)

	bus := eventbus.New()
	clock := app.SystemClock{}
	locks := app.NewPlantLocks()
	cache := app.NewScheduleCache(scheduleRepo, clock, bus)

	// Create services (primary ports implementation)
	plantService = app.NewPlantService(plantRepo, scheduleRepo, careLogRepo, clock, bus, locks)
	scheduleService = app.NewScheduleService(plantRepo, scheduleRepo, bus, locks)
	careActionService = app.NewCareActionService(plantRepo, scheduleRepo, careLogRepo, clock, locks)
	dashboardService = app.NewDashboardService(plantRepo, cache, clock)
}

// PlantAdapter returns a new PlantAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func PlantAdapter() *cliadapter.PlantAdapter {
	return PlantAdapterWithOutput(os.Stdout)
}

// PlantAdapterWithOutput returns a new PlantAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func PlantAdapterWithOutput(out io.Writer) *cliadapter.PlantAdapter {
	once.Do(initServices)
	return cliadapter.NewPlantAdapter(plantService, out)
}

// ScheduleAdapter returns a new ScheduleAdapter writing to stdout.
func ScheduleAdapter() *cliadapter.ScheduleAdapter {
	return ScheduleAdapterWithOutput(os.Stdout)
}

// ScheduleAdapterWithOutput returns a new ScheduleAdapter writing to the given output.
func ScheduleAdapterWithOutput(out io.Writer) *cliadapter.ScheduleAdapter {
	once.Do(initServices)
	return cliadapter.NewScheduleAdapter(scheduleService, out)
}

// CareAdapter returns a new CareAdapter writing to stdout.
func CareAdapter() *cliadapter.CareAdapter {
	return CareAdapterWithOutput(os.Stdout)
}

// CareAdapterWithOutput returns a new CareAdapter writing to the given output.
func CareAdapterWithOutput(out io.Writer) *cliadapter.CareAdapter {
	once.Do(initServices)
	return cliadapter.NewCareAdapter(careActionService, out)
}

// DashboardAdapter returns a new DashboardAdapter writing to stdout.
func DashboardAdapter() *cliadapter.DashboardAdapter {
	return DashboardAdapterWithOutput(os.Stdout)
}

// DashboardAdapterWithOutput returns a new DashboardAdapter writing to the given output.
func DashboardAdapterWithOutput(out io.Writer) *cliadapter.DashboardAdapter {
	once.Do(initServices)
	return cliadapter.NewDashboardAdapter(dashboardService, out)
}
