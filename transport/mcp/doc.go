// Package mcp provides the Model Context Protocol interface for Nardis.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for every game operation
//   - Session-aware command execution
//   - Stdio transport via the shared mcp-go server
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Full game view (players, routes, market, cities)
//   - end_turn: Finish the turn; opponents act and routes pay out
//   - possible_routes: Buildable routes from an origin with priced costs
//   - adjusted_trains: Train catalog at the player's discounted prices
//   - buy_route: Purchase a route with a chosen train
//   - remove_route: Cancel a queued route for a refund
//   - buy_upgrade: Purchase a company upgrade
//   - buy_stock / sell_stock: Trade one share of a company
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available game configurations
//   - game_instructions: Comprehensive rules and strategy notes
//
// Architecture:
//
// The client is deliberately thin: every tool call is proxied to the REST
// API, so the MCP surface and the HTTP surface can never drift apart. Tool
// results are formatted as plain text summaries an agent can read directly.
//
// Session Management:
//
// All game tools take a session_id parameter. AI agents can manage multiple
// concurrent game sessions independently.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously play the game against computer opponents
//   - Compare route economics before spending gold
//   - Trade stock on rival companies
//   - Manage multiple game sessions
package mcp
