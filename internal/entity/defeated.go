package entity

// DefeatedRegistry records enemies that were permanently killed. Ids in the
// registry are filtered out of every roster rehydration, so a permanently
// defeated enemy never respawns no matter how the zone is re-entered.
type DefeatedRegistry struct {
	ids map[string]struct{}
}

// NewDefeatedRegistry creates an empty registry.
func NewDefeatedRegistry() *DefeatedRegistry {
	return &DefeatedRegistry{ids: make(map[string]struct{})}
}

// Record marks an enemy id as permanently defeated.
func (r *DefeatedRegistry) Record(id string) {
	r.ids[id] = struct{}{}
}

// Contains returns true if the id was recorded as defeated.
func (r *DefeatedRegistry) Contains(id string) bool {
	_, ok := r.ids[id]
	return ok
}

// IDs returns the recorded ids, for persistence.
func (r *DefeatedRegistry) IDs() []string {
	out := make([]string, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	return out
}

// Restore re-adds previously persisted ids.
func (r *DefeatedRegistry) Restore(ids []string) {
	for _, id := range ids {
		r.ids[id] = struct{}{}
	}
}
