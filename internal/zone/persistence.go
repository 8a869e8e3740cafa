package zone

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"

	"github.com/samdwyer/wayfarer/internal/entity"
	"github.com/samdwyer/wayfarer/internal/world"
)

// PersistenceManager writes the zone being left back into the repository.
// It must run before the destination zone is resolved and made active, or
// every edit made while playing the zone is lost.
type PersistenceManager struct {
	repo *Repository

	// fingerprints of the last write-back per key, to skip no-op writes
	fingerprints map[world.ZoneKey]uint64
}

// NewPersistenceManager creates a manager over the given repository.
func NewPersistenceManager(repo *Repository) *PersistenceManager {
	return &PersistenceManager{
		repo:         repo,
		fingerprints: make(map[world.ZoneKey]uint64),
	}
}

// Snapshot serializes the live grid and the living enemy roster into the
// repository under key. The grid is deep-copied since the live grid is about
// to be swapped out. Fields the live zone does not carry (spawn metadata,
// return links, decorative layers) are preserved from the stored snapshot.
// Returns true if anything was written.
func (m *PersistenceManager) Snapshot(key world.ZoneKey, liveGrid world.Grid, liveEnemies []*entity.Enemy) bool {
	enemies := make([]world.EnemySnapshot, 0, len(liveEnemies))
	for _, e := range liveEnemies {
		if e.IsAlive() {
			enemies = append(enemies, e.Snapshot())
		}
	}

	fp := fingerprint(liveGrid, enemies)
	if prev, ok := m.fingerprints[key]; ok && prev == fp && m.repo.Has(key) {
		return false
	}

	snap := &world.ZoneSnapshot{
		Grid:    liveGrid.Clone(),
		Enemies: enemies,
	}
	if prior := m.repo.Get(key); prior != nil {
		snap.PlayerSpawn = prior.PlayerSpawn
		snap.ReturnToSurface = prior.ReturnToSurface
		snap.ReturnToInterior = prior.ReturnToInterior
		snap.Decor = prior.Decor
	}

	m.repo.Put(key, snap)
	m.fingerprints[key] = fp
	return true
}

// fingerprint hashes the persistable portion of the live zone. A matching
// fingerprint means the last write-back already holds identical content.
func fingerprint(grid world.Grid, enemies []world.EnemySnapshot) uint64 {
	h := xxhash.New()
	enc := json.NewEncoder(h)
	// Encoding cannot fail for these types; errors here are ignored.
	_ = enc.Encode(grid)
	_ = enc.Encode(enemies)
	return h.Sum64()
}
