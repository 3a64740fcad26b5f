package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/nardisgame/nardis/game/engine"
	"github.com/nardisgame/nardis/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Nardis",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Nardis Rail Trading Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Build rail routes between cities, haul goods for income, and be the first
company to reach the victory gold threshold.

AVAILABLE TOOLS:
- game_state: Get current game state (players, cities, market, routes)
- end_turn: Finish your turn; computer opponents act, routes pay out
- possible_routes: List buildable routes from an origin city with costs
- adjusted_trains: Train catalog at your discounted prices
- buy_route: Purchase a route (from, to, train) - requires intent explanation
- remove_route: Cancel a queued route for a refund
- buy_upgrade: Purchase a company upgrade
- buy_stock / sell_stock: Trade one share of a company
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on buy_route serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the config to use (optional)",
				},
				"player_name": map[string]interface{}{
					"type":        "string",
					"description": "Name for the human player's company (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "end_turn",
		Description: "End the current turn. Computer opponents take their turns, routes pay out, queued routes advance, and the market drifts.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleEndTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "possible_routes",
		Description: "List the routes buildable from an origin city, with distance, gold cost, and build turns at your current discounts",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"origin": map[string]interface{}{
					"type":        "string",
					"description": "Origin city ID",
				},
			},
			Required: []string{"session_id", "origin"},
		},
	}, c.handlePossibleRoutes)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "adjusted_trains",
		Description: "Train catalog with the prices you would actually pay after upgrades",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleAdjustedTrains)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "buy_route",
		Description: "Purchase a route between two cities with a chosen train - requires intent explanation",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"from_city_id": map[string]interface{}{
					"type":        "string",
					"description": "Origin city ID",
				},
				"to_city_id": map[string]interface{}{
					"type":        "string",
					"description": "Destination city ID",
				},
				"train_id": map[string]interface{}{
					"type":        "string",
					"description": "Train to run on the route",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this purchase (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "from_city_id", "to_city_id", "train_id"},
		},
	}, c.handleBuyRoute)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "remove_route",
		Description: "Cancel a queued route still under construction and refund its cost",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"route_id": map[string]interface{}{
					"type":        "string",
					"description": "Queued route ID",
				},
				"train_id": map[string]interface{}{
					"type":        "string",
					"description": "Train on the queued route",
				},
			},
			Required: []string{"session_id", "route_id", "train_id"},
		},
	}, c.handleRemoveRoute)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "buy_upgrade",
		Description: "Purchase a company upgrade (track discounts, train discounts, faster builds, cheaper upkeep, longer range)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"upgrade_id": map[string]interface{}{
					"type":        "string",
					"description": "Upgrade to purchase",
				},
			},
			Required: []string{"session_id", "upgrade_id"},
		},
	}, c.handleBuyUpgrade)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "buy_stock",
		Description: "Buy one share of a company at its current price",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the company whose stock to buy",
				},
			},
			Required: []string{"session_id", "player_id"},
		},
	}, c.handleBuyStock)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "sell_stock",
		Description: "Sell one held share of a company at its current price",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the company whose stock to sell",
				},
			},
			Required: []string{"session_id", "player_id"},
		},
	}, c.handleSellStock)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)
	playerName, _ := args["player_name"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}
	if playerName != "" {
		body["player_name"] = playerName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\nPlayer: %s\n", session.ID, session.ConfigName, session.PlayerName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Player: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.PlayerName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state service.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.TurnResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/end-turn", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTurnResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handlePossibleRoutes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	origin, _ := args["origin"].(string)

	var response struct {
		Origin string                   `json:"origin"`
		Routes []*engine.PotentialRoute `json:"routes"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/routes/possible?origin=%s", sessionID, origin), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatPossibleRoutes(response.Origin, response.Routes)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleAdjustedTrains(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Trains []*engine.AdjustedTrain `json:"trains"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/trains", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatAdjustedTrains(response.Trains)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleBuyRoute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	fromCityID, _ := args["from_city_id"].(string)
	toCityID, _ := args["to_city_id"].(string)
	trainID, _ := args["train_id"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"from_city_id": fromCityID,
		"to_city_id":   toCityID,
		"train_id":     trainID,
	}

	var result service.TradeResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/routes", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTradeResult("Route purchase", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleRemoveRoute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	routeID, _ := args["route_id"].(string)
	trainID, _ := args["train_id"].(string)

	var result service.TradeResult
	err := c.apiCall("DELETE",
		fmt.Sprintf("/api/sessions/%s/routes/%s?train=%s", sessionID, routeID, trainID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTradeResult("Route removal", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBuyUpgrade(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	upgradeID, _ := args["upgrade_id"].(string)

	body := map[string]string{"upgrade_id": upgradeID}

	var result service.TradeResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/upgrades", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTradeResult("Upgrade purchase", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBuyStock(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.handleStockTrade(request, "buy")
}

func (c *Client) handleSellStock(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.handleStockTrade(request, "sell")
}

func (c *Client) handleStockTrade(request mcp.CallToolRequest, action string) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	playerID, _ := args["player_id"].(string)

	body := map[string]string{"player_id": playerID}

	var result service.TradeResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/stocks/%s", sessionID, action), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTradeResult("Stock "+action, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Map: %dx%d, Cities: %d, Opponents: %d, Victory: %d gold\n\n",
			config.Name, config.ConfigID, config.Description,
			config.MapSize, config.MapSize, config.Cities, config.Opponents, config.VictoryGold)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🚂 Nardis Rail Trading Game - Complete Instructions

GAME OBJECTIVE:
Grow your rail company's gold to the victory threshold before any opponent.
Gold comes from hauling goods over the routes you build between cities.

GAME MECHANICS:
• Routes: Pay gold up front, wait out the build turns, then earn every turn
• Cargo: A route hauls goods the origin supplies and the destination demands
• Trains: Each route needs a train; bigger trains haul more but cost upkeep
• Upgrades: One-time purchases that discount tracks, trains, builds, upkeep,
  or extend your route range
• Stocks: Every company has shares priced at net worth / 20; trade them for
  speculative income
• Victory: First player whose gold reaches the victory threshold wins

TURN FLOW:
1. Inspect the state: your gold, routes, the market, opponents
2. Spend: buy routes, upgrades, or stock while it is your turn
3. End the turn: computer opponents act, queued routes advance, active
   routes pay out, city supply regenerates, resource prices drift

🤖 AI AGENTS - SUCCESS STRATEGIES:

💰 ROUTE ECONOMICS (THE CORE DECISION):
- A route is profitable when its per-turn cargo income beats the train's
  upkeep by enough to repay the build cost
- possible_routes shows gold cost and build turns from any origin; compare
  several origins before committing
- Short routes are cheap and fast to build; long routes haul farther but
  tie up gold for more turns
- Check what the origin actually supplies and the destination actually
  demands - a route with an empty cargo plan earns nothing

🛤️ RANGE DISCIPLINE:
- You can only build routes up to your range; range_increase upgrades
  unlock longer, richer connections
- Out-of-range purchases are rejected with your gold untouched

📈 UPGRADE TIMING:
- Track and train discounts pay for themselves only if you still have many
  purchases ahead; buy them early or not at all
- turn_cost_cheaper compresses build time, which matters most on long routes

📊 STOCK PLAY:
- Share prices track net worth, which grows as companies build
- Buying a rival's stock early and selling after they expand is a viable
  secondary income
- Selling requires actually holding a share; short selling is rejected

🚨 PITFALLS TO AVOID:
- ❌ Spending all gold on one long route and stalling for its whole build
- ❌ Buying trains bigger than the cargo the route can actually carry
- ❌ Ignoring upkeep: every owned train charges you every turn
- ❌ Ending the turn with idle gold when profitable short routes exist

PURCHASE RESULTS:
All purchase tools return success or a rejection message. A rejection
(insufficient gold, out of range, unknown ID) leaves the game unchanged -
read the message, adjust, and retry.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state and configuration
- Use session-specific tools for multi-game management

Remember: the engine never hides information. Every price, distance, and
cargo plan is visible through game_state, possible_routes, and
adjusted_trains before you spend a single gold piece.

Good luck building your rail empire! 🚂💰`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nPlayer: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName, session.PlayerName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *service.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Turn: %d | Current player: %s\n\n",
		state.Turn, state.CurrentPlayerID))

	result.WriteString("Players:\n")
	for _, p := range state.Players {
		marker := " "
		if p.ID == state.CurrentPlayerID {
			marker = ">"
		}
		result.WriteString(fmt.Sprintf("%s %s (%s, %s) gold=%d net_worth=%d range=%d stock=%d routes=%d queued=%d upgrades=%d\n",
			marker, p.Name, p.ID, p.Kind, p.Gold, p.NetWorth, p.Range, p.StockPrice,
			len(p.Routes), len(p.QueuedRoutes), len(p.Upgrades)))

		for _, r := range p.Routes {
			result.WriteString(fmt.Sprintf("    route %s: %s -> %s (%s, dist %d)\n",
				r.ID, r.From.Name, r.To.Name, r.Train.Name, r.Distance))
		}
		for _, q := range p.QueuedRoutes {
			result.WriteString(fmt.Sprintf("    queued %s: %s -> %s (%d turns left)\n",
				q.Route.ID, q.Route.From.Name, q.Route.To.Name, q.TurnsLeft))
		}
		if len(p.Holdings) > 0 {
			result.WriteString("    holdings:")
			for companyID, shares := range p.Holdings {
				result.WriteString(fmt.Sprintf(" %s=%d", companyID, shares))
			}
			result.WriteString("\n")
		}
	}

	result.WriteString("\nMarket:\n")
	for _, r := range state.Resources {
		result.WriteString(fmt.Sprintf("  %s (%s): %d gold [%d-%d]\n",
			r.Name, r.ID, r.Value, r.MinValue, r.MaxValue))
	}

	result.WriteString(fmt.Sprintf("\nCities: %d\n", len(state.Cities)))
	for _, city := range state.Cities {
		result.WriteString(fmt.Sprintf("  %s (%s) at (%d,%d)\n",
			city.Name, city.ID, city.Pos.X, city.Pos.Y))
	}

	if state.GameOver {
		if state.WinnerID != "" {
			result.WriteString(fmt.Sprintf("\n🎉 GAME OVER - winner: %s", state.WinnerID))
		} else {
			result.WriteString("\n💀 GAME OVER")
		}
	}

	return result.String()
}

func formatTurnResult(result *service.TurnResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Turn %d complete\n", result.Turn))

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	if result.GameOver {
		b.WriteString(fmt.Sprintf("\n🎉 GAME OVER - winner: %s\n", result.WinnerID))
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatTradeResult(action string, result *service.TradeResult) string {
	response := ""
	if result.Success {
		response = fmt.Sprintf("✓ %s successful\n", action)
	} else {
		response = fmt.Sprintf("✗ %s rejected\n", action)
	}

	if result.Message != "" {
		response += fmt.Sprintf("Message: %s\n", result.Message)
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatPossibleRoutes(origin string, routes []*engine.PotentialRoute) string {
	if len(routes) == 0 {
		return fmt.Sprintf("No buildable routes from %s (check range and city IDs)", origin)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Buildable routes from %s (%d):\n\n", origin, len(routes)))
	for _, r := range routes {
		b.WriteString(fmt.Sprintf("- %s -> %s: distance %d, %d gold, %d build turns\n",
			r.From.Name, r.To.Name, r.Distance, r.GoldCost, r.TurnCost))
	}
	return b.String()
}

func formatAdjustedTrains(trains []*engine.AdjustedTrain) string {
	var b strings.Builder
	b.WriteString("Train catalog (your prices):\n\n")
	for _, at := range trains {
		line := fmt.Sprintf("- %s (%s): %d gold, upkeep %d, speed %d, cargo %d",
			at.Train.Name, at.Train.ID, at.Cost, at.Train.Upkeep, at.Train.Speed, at.Train.CargoSpace)
		if at.Cost < at.Train.Cost {
			line += fmt.Sprintf(" (list %d)", at.Train.Cost)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
