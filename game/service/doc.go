// Package service provides the business logic layer for Nardis.
//
// The service package implements:
//   - Multi-session game management
//   - Configuration management and loading
//   - Turn flow and purchase validation
//   - Session lifecycle management
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own game aggregate
// with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic", "alice")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Buy a route, then end the turn
//	result, err := gameService.BuyRoute(ctx, sessionInfo.ID, req)
//	turn, err := gameService.EndTurn(ctx, sessionInfo.ID)
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time and last access time for
// cleanup and analytics.
package service
