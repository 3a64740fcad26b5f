// Package websocket provides real-time state broadcasting for Nardis.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting after purchases and turn ends
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded Message values carrying the full game
// state after each change. Clients are spectators; incoming frames are only
// used to keep the connection alive. Mutations go through the REST API.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=ab12) when
// establishing the connection. State updates are broadcast only to clients
// connected to the same session, so several browsers can watch one game.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// inside an HTTP handler
//	hub.ServeWS(w, r, sessionID)
package websocket
