// Package api provides the HTTP REST API for Nardis.
//
// The api package implements:
//   - RESTful endpoints for turn flow and purchases
//   - Session management endpoints
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (config_id, player_name)
//   - GET /api/sessions - List all sessions
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Turn Flow:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/end-turn - Finish the turn; opponents act
//   - POST /api/sessions/{id}/save - Force a persistence pass
//
// Planning and Purchases:
//   - GET /api/sessions/{id}/routes/possible?origin={cityId} - Reachable routes
//   - GET /api/sessions/{id}/trains - Train catalog at the player's prices
//   - POST /api/sessions/{id}/routes - Buy a route (from, to, train)
//   - DELETE /api/sessions/{id}/routes/{routeId}?train={trainId} - Cancel queued route
//   - POST /api/sessions/{id}/upgrades - Buy an upgrade (upgrade_id)
//   - POST /api/sessions/{id}/stocks/buy - Buy one share (player_id)
//   - POST /api/sessions/{id}/stocks/sell - Sell one share (player_id)
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - GET /api/configs/{name} - Fetch one configuration
//   - POST /api/configs - Save a configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Purchase endpoints return a
// TradeResult whose success flag distinguishes a rejected trade (insufficient
// gold, out of range) from a transport error; rejected trades still return
// HTTP 200 with the unchanged game state.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
