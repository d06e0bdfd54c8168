package app

import "sync"

// PlantLocks serializes writes per plant. Schedule updates and care
// actions read derived state, recompute and write it back; interleaving
// two such sequences for the same plant would persist a stale
// recomputation. Different plants never contend.
type PlantLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPlantLocks() *PlantLocks {
	return &PlantLocks{locks: map[string]*sync.Mutex{}}
}

// Lock acquires the mutex for the plant, creating it on first use, and
// returns the unlock func.
func (p *PlantLocks) Lock(plantID string) (unlock func()) {
	p.mu.Lock()
	m, ok := p.locks[plantID]
	if !ok {
		m = &sync.Mutex{}
		p.locks[plantID] = m
	}
	p.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Forget drops the mutex for a deleted plant.
func (p *PlantLocks) Forget(plantID string) {
	p.mu.Lock()
	delete(p.locks, plantID)
	p.mu.Unlock()
}
