package service

import (
	"time"

	"github.com/nardisgame/nardis/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	PlayerName     string             `json:"player_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *GameState         `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// GameState is the full view of a game returned to clients.
type GameState struct {
	Turn            int                `json:"turn"`
	CurrentPlayerID string             `json:"current_player_id"`
	GameOver        bool               `json:"game_over"`
	WinnerID        string             `json:"winner_id,omitempty"`
	Players         []*PlayerInfo      `json:"players"`
	Cities          []*engine.City     `json:"cities"`
	Resources       []*engine.Resource `json:"resources"`
	Trains          []*engine.Train    `json:"trains"`
	Upgrades        []*engine.Upgrade  `json:"upgrades"`
}

// PlayerInfo is one player's public state, including the ledger and the
// stock book for their company.
type PlayerInfo struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Kind         engine.PlayerKind     `json:"kind"`
	Gold         int                   `json:"gold"`
	NetWorth     int                   `json:"net_worth"`
	Range        int                   `json:"range"`
	HomeCityID   string                `json:"home_city_id"`
	Routes       []*engine.Route       `json:"routes"`
	QueuedRoutes []*QueuedRouteInfo    `json:"queued_routes"`
	Upgrades     []*engine.Upgrade     `json:"upgrades"`
	StockPrice   int                   `json:"stock_price"`
	Holdings     map[string]int        `json:"holdings,omitempty"`
	Expenses     []engine.FinanceEntry `json:"expenses"`
	Incomes      []engine.FinanceEntry `json:"incomes"`
}

// QueuedRouteInfo is a route still under construction.
type QueuedRouteInfo struct {
	Route     *engine.Route `json:"route"`
	TurnsLeft int           `json:"turns_left"`
}

// TurnResult contains the result of ending a turn
type TurnResult struct {
	Turn      int         `json:"turn"`
	GameState *GameState  `json:"game_state"`
	GameOver  bool        `json:"game_over"`
	WinnerID  string      `json:"winner_id,omitempty"`
	Events    []GameEvent `json:"events,omitempty"`
}

// TradeResult contains the result of a purchase or sale. Failed trades are
// not errors: Success is false and the message explains the rejection.
type TradeResult struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	GameState *GameState `json:"game_state"`
}

// BuyRouteRequest names the pieces of a route purchase; the service prices
// it for the buying player.
type BuyRouteRequest struct {
	FromCityID string `json:"from_city_id"`
	ToCityID   string `json:"to_city_id"`
	TrainID    string `json:"train_id"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "turn_ended", "route_activated", "victory"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	MapSize     int    `json:"map_size"`
	Cities      int    `json:"cities"`
	Opponents   int    `json:"opponents"`
	VictoryGold int    `json:"victory_gold"`
}
