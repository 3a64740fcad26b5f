// Package engine provides the core simulation logic for the Nardis
// rail-trading game.
//
// The engine package implements the game mechanics including:
//   - Turn orchestration and computer-opponent delegation
//   - Route purchasing, queuing, and per-turn route economics
//   - The upgrade-discounted pricing model for tracks and trains
//   - Per-player finance ledgers and stock valuation
//   - Snapshot deconstruction and reconstruction for persistence
//
// Core Types:
//
// Game is the turn orchestrator and the authoritative aggregate of all
// state. Player carries routes, upgrades, a Finance ledger, and a pending
// route queue; computer players act through a pluggable Policy. StaticData
// is the read-only catalog of cities, resources, trains, and upgrades.
//
// Usage:
//
//	game, err := engine.NewGame(data, players, seed)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game.StartTurn()
//	// ... human commands via AddRouteToQueue, AddUpgradeToPlayer, ...
//	if err := game.EndTurn(); err != nil {
//		log.Fatal(err)
//	}
//
// Turn Cycle:
//
// StartTurn broadcasts the turn payload to cities, then resources, then the
// current player; that order is load-bearing. The human player acts through
// the orchestrator's public operations, then EndTurn gives every computer
// player a pass, revalues all stocks, advances the turn counter, and hands
// the snapshot to the attached persistence sink. The whole cycle is
// single-threaded and synchronous; every operation either fully applies its
// effects or applies none.
package engine
