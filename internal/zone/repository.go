// Package zone stores generated-or-loaded zone snapshots and writes the
// active zone back before it is swapped out.
package zone

import (
	"github.com/samdwyer/wayfarer/internal/world"
)

// Repository is a keyed write-through cache of zone snapshots. The world is
// sparse and mostly never explored, so zones are generated on first miss and
// retained indefinitely; pruning is an external policy.
type Repository struct {
	zones map[world.ZoneKey]*world.ZoneSnapshot
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{zones: make(map[world.ZoneKey]*world.ZoneSnapshot)}
}

// Has returns true if a snapshot is stored under the key.
func (r *Repository) Has(key world.ZoneKey) bool {
	_, ok := r.zones[key]
	return ok
}

// Get returns the stored snapshot for the key, or nil. The returned value is
// the repository's own copy; callers who need a mutable zone use Checkout.
func (r *Repository) Get(key world.ZoneKey) *world.ZoneSnapshot {
	return r.zones[key]
}

// Checkout returns a deep copy of the stored snapshot for mutation during
// play, or nil if the key has never been stored.
func (r *Repository) Checkout(key world.ZoneKey) *world.ZoneSnapshot {
	return r.zones[key].Clone()
}

// Put stores a snapshot under the key, replacing any previous one.
func (r *Repository) Put(key world.ZoneKey, snap *world.ZoneSnapshot) {
	r.zones[key] = snap
}

// Len returns the number of stored zones.
func (r *Repository) Len() int {
	return len(r.zones)
}

// Keys returns every stored zone key, for persistence sweeps.
func (r *Repository) Keys() []world.ZoneKey {
	keys := make([]world.ZoneKey, 0, len(r.zones))
	for k := range r.zones {
		keys = append(keys, k)
	}
	return keys
}
