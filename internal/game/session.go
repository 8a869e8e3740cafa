package game

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/samdwyer/wayfarer/internal/board"
	"github.com/samdwyer/wayfarer/internal/entity"
	"github.com/samdwyer/wayfarer/internal/event"
	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/storage"
	"github.com/samdwyer/wayfarer/internal/transition"
	"github.com/samdwyer/wayfarer/internal/world"
	"github.com/samdwyer/wayfarer/internal/worldgen"
	"github.com/samdwyer/wayfarer/internal/zone"
)

const sessionKey = "session"

// Session owns the single live zone and the player's place in the world, and
// exposes the transition entry point used by input handling. At most one
// transition runs at a time; input is gated while one does.
type Session struct {
	cfg      Config
	repo     *zone.Repository
	persist  *zone.PersistenceManager
	coord    *transition.Coordinator
	bus      *event.Bus
	store    storage.Store
	defeated *entity.DefeatedRegistry

	state   transition.PlayerState
	player  *entity.Player
	live    *world.ZoneSnapshot
	enemies []*entity.Enemy

	// pitfallTurnsLeft gates the emergence port after a pitfall; ports are
	// refused while it is positive.
	pitfallTurnsLeft int
}

// NewSession wires a full session: repository, generator, board loader,
// transition pipeline, and storage. store may be nil for an ephemeral
// session with no save hook.
func NewSession(cfg Config, store storage.Store) (*Session, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	registry, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load enemy registry: %w", err)
	}
	foods, err := gamedata.LoadFoods()
	if err != nil {
		return nil, fmt.Errorf("load food assets: %w", err)
	}
	boards, err := board.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load boards: %w", err)
	}

	repo := zone.NewRepository()
	persist := zone.NewPersistenceManager(repo)
	defeated := entity.NewDefeatedRegistry()
	bus := event.NewBus()

	gen := worldgen.New(cfg.Seed, registry)
	orch := transition.NewOrchestrator(repo, gen, boards, transition.Connections{}, foods, registry, defeated)
	resolver := transition.NewIntentResolver(repo)
	placer := transition.NewPlacer(repo)

	s := &Session{
		cfg:      cfg,
		repo:     repo,
		persist:  persist,
		bus:      bus,
		store:    store,
		defeated: defeated,
		player:   entity.NewPlayer(0, 0),
	}

	var hook transition.SaveHook
	if store != nil {
		hook = s.saveSession
	}
	fin := transition.NewFinalizer(bus, hook)
	s.coord = transition.NewCoordinator(resolver, persist, orch, placer, fin, s.apply)

	return s, nil
}

// Start makes the configured starting surface zone active and places the
// player at its recorded spawn, or the zone center when none exists.
func (s *Session) Start(ctx context.Context) {
	s.state = transition.PlayerState{
		ZoneX:     s.cfg.StartX,
		ZoneY:     s.cfg.StartY,
		Dimension: world.Surface,
	}
	s.coord.Teleport(ctx, s.state, nil, nil, s.state.Key())

	// First entry prefers the zone's own spawn point over the teleport center
	if s.live.PlayerSpawn != nil {
		s.player.MoveTo(s.live.PlayerSpawn.X, s.live.PlayerSpawn.Y)
	}
}

// IntentKind classifies a transition intent from the input layer.
type IntentKind int

const (
	// IntentPort is an explicit activation of the tile under the player.
	IntentPort IntentKind = iota
	// IntentEdge is walking off a zone edge.
	IntentEdge
	// IntentPitfall is an involuntary fall through a collapsing tile.
	IntentPitfall
	// IntentTeleport is a scripted relocation to an arbitrary zone.
	IntentTeleport
)

// Intent is the transition request produced by input handling. How gestures
// become intents is not this package's concern.
type Intent struct {
	Kind   IntentKind
	X, Y   int             // tile coordinates of the activation
	Side   transition.Side // for IntentEdge
	Target world.ZoneKey   // for IntentTeleport
}

// RequestTransition runs one transition to completion. A non-nil rejection
// means nothing changed and carries the message and cue to surface to the
// player. Transitions never fail otherwise; the worst outcome is an
// imperfect spawn position.
func (s *Session) RequestTransition(ctx context.Context, intent Intent) *transition.Rejection {
	switch intent.Kind {
	case IntentEdge:
		s.coord.EdgeExit(ctx, s.state, s.live.Grid, s.enemies, intent.Side, intent.X, intent.Y)

	case IntentPitfall:
		s.coord.Pitfall(ctx, s.state, s.live.Grid, s.enemies, intent.X, intent.Y)
		s.pitfallTurnsLeft = s.cfg.PitfallSurvivalTurns

	case IntentTeleport:
		s.coord.Teleport(ctx, s.state, s.live.Grid, s.enemies, intent.Target)

	default:
		if _, rejection := s.coord.Port(ctx, s.state, s.live.Grid, s.enemies, intent.X, intent.Y, s.pitfallTurnsLeft > 0); rejection != nil {
			return rejection
		}
		s.pitfallTurnsLeft = 0
	}
	return nil
}

// TurnElapsed advances turn-based counters; the pitfall survival gate opens
// once enough turns pass.
func (s *Session) TurnElapsed() {
	if s.pitfallTurnsLeft > 0 {
		s.pitfallTurnsLeft--
	}
}

// ForceSaveCurrentZone writes the active zone back to the repository without
// a transition, for non-transition save points.
func (s *Session) ForceSaveCurrentZone() {
	if s.live == nil {
		return
	}
	s.persist.Snapshot(s.state.Key(), s.live.Grid, s.enemies)
}

// RecordDefeat permanently retires an enemy: it is dropped from the live
// roster and never rehydrated again in any zone.
func (s *Session) RecordDefeat(id string) {
	s.defeated.Record(id)
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.enemies = kept
}

// State returns the player's current zone state.
func (s *Session) State() transition.PlayerState {
	return s.state
}

// Player returns the player avatar.
func (s *Session) Player() *entity.Player {
	return s.player
}

// ActiveZone returns the checked-out snapshot of the live zone.
func (s *Session) ActiveZone() *world.ZoneSnapshot {
	return s.live
}

// Enemies returns the live roster of the active zone.
func (s *Session) Enemies() []*entity.Enemy {
	return s.enemies
}

// Bus returns the notification bus for UI and minimap subscribers.
func (s *Session) Bus() *event.Bus {
	return s.bus
}

// apply installs a transition outcome as the new session state. The swap is
// wholesale: state, live zone, roster, and player position change together.
func (s *Session) apply(outcome *transition.Outcome) {
	s.state = outcome.State
	s.live = outcome.Snapshot
	s.enemies = outcome.Enemies
	s.player.MoveTo(outcome.Landing.X, outcome.Landing.Y)
}

// sessionBlob is the persisted session summary.
type sessionBlob struct {
	ZoneX     int      `json:"zoneX"`
	ZoneY     int      `json:"zoneY"`
	Dimension string   `json:"dimension"`
	Depth     int      `json:"depth"`
	PlayerX   int      `json:"playerX"`
	PlayerY   int      `json:"playerY"`
	Defeated  []string `json:"defeated,omitempty"`
}

// saveSession is the finalizer's save hook: a small checkpoint blob written
// with retry. Zone content itself stays in the repository.
func (s *Session) saveSession(ctx context.Context) error {
	blob, err := json.Marshal(sessionBlob{
		ZoneX:     s.state.ZoneX,
		ZoneY:     s.state.ZoneY,
		Dimension: s.state.Dimension.String(),
		Depth:     s.state.Depth,
		PlayerX:   s.player.X,
		PlayerY:   s.player.Y,
		Defeated:  s.defeated.IDs(),
	})
	if err != nil {
		return err
	}
	return storage.SaveWithRetry(ctx, s.store, sessionKey, blob)
}
