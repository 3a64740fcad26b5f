package service

import (
	"context"
	"time"

	"github.com/nardisgame/nardis/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName, playerName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Turn Flow
	EndTurn(ctx context.Context, sessionID string) (*TurnResult, error)
	GetGameState(ctx context.Context, sessionID string) (*GameState, error)

	// Planning
	PossibleRoutes(ctx context.Context, sessionID, originCityID string) ([]*engine.PotentialRoute, error)
	AdjustedTrains(ctx context.Context, sessionID string) ([]*engine.AdjustedTrain, error)

	// Purchases
	BuyRoute(ctx context.Context, sessionID string, req *BuyRouteRequest) (*TradeResult, error)
	RemoveQueuedRoute(ctx context.Context, sessionID, routeID, trainID string) (*TradeResult, error)
	BuyUpgrade(ctx context.Context, sessionID, upgradeID string) (*TradeResult, error)
	BuyStock(ctx context.Context, sessionID, playerID string) (*TradeResult, error)
	SellStock(ctx context.Context, sessionID, playerID string) (*TradeResult, error)

	// Persistence
	SaveSession(ctx context.Context, sessionID string) error

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, playerName string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Game           *engine.Game
	Config         *engine.GameConfig
	PlayerName     string
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
