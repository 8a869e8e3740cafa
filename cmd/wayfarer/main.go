// Package main is the entry point for Wayfarer's world-navigation core.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/wayfarer/internal/event"
	"github.com/samdwyer/wayfarer/internal/game"
	"github.com/samdwyer/wayfarer/internal/storage"
	"github.com/samdwyer/wayfarer/internal/telemetry"
	"github.com/samdwyer/wayfarer/internal/transition"
	"github.com/samdwyer/wayfarer/internal/world"
)

func main() {
	// Load .env for local development; env vars may also be set directly
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	configPath := flag.String("config", "wayfarer.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	// Telemetry is optional: the core runs fine without an OTLP endpoint
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.OpenSQLite(cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to open session storage: %v", err)
	}
	defer store.Close()

	session, err := game.NewSession(cfg, store)
	if err != nil {
		log.Fatalf("Failed to initialize session: %v", err)
	}

	session.Bus().SubscribeZoneChanged(func(ev event.ZoneChanged) {
		log.Printf("zone changed: (%d,%d) %s depth=%d", ev.X, ev.Y, ev.Dimension, ev.Depth)
	})
	session.Bus().SubscribePlayerMoved(func(ev event.PlayerMoved) {
		log.Printf("player moved: (%d,%d)", ev.X, ev.Y)
	})

	session.Start(ctx)
	runDemoWalk(ctx, session)
}

// runDemoWalk exercises the transition pipeline end to end: a door round
// trip, a stair descent and ascent, and an edge crossing.
func runDemoWalk(ctx context.Context, session *game.Session) {
	px, py := session.Player().Position()

	// Surface -> interior through a door, then straight back out
	step(session.RequestTransition(ctx, game.Intent{Kind: game.IntentPort, X: px, Y: py}))
	px, py = session.Player().Position()
	step(session.RequestTransition(ctx, game.Intent{Kind: game.IntentPort, X: px, Y: py}))

	// Two levels down, two levels up
	for i := 0; i < 2; i++ {
		px, py = session.Player().Position()
		descendAt(ctx, session, px, py)
	}
	for i := 0; i < 2; i++ {
		px, py = session.Player().Position()
		step(session.RequestTransition(ctx, game.Intent{Kind: game.IntentPort, X: px, Y: py}))
	}

	// Cross the southern edge
	px, py = session.Player().Position()
	step(session.RequestTransition(ctx, game.Intent{
		Kind: game.IntentEdge,
		Side: transition.South,
		X:    px,
		Y:    py,
	}))

	session.ForceSaveCurrentZone()
	state := session.State()
	log.Printf("demo walk finished at zone (%d,%d) %s depth=%d",
		state.ZoneX, state.ZoneY, state.Dimension, state.Depth)
}

// descendAt forces a stairdown under the player so the walk always has a way
// down, then takes it.
func descendAt(ctx context.Context, session *game.Session, x, y int) {
	session.ActiveZone().Grid.ForcePort(x, y, world.PortStairDown)
	step(session.RequestTransition(ctx, game.Intent{Kind: game.IntentPort, X: x, Y: y}))
}

// step logs a rejected transition; rejections leave all state untouched.
func step(rejection *transition.Rejection) {
	if rejection != nil {
		log.Printf("transition refused: %s", rejection.Message)
	}
}
