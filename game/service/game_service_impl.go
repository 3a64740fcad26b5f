package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nardisgame/nardis/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName, playerName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	if playerName == "" {
		playerName = "Player"
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", playerName, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return s.sessionInfo(session, configID), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session, s.getConfigID(session.Config.Name)), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess, s.getConfigID(sess.Config.Name)))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// EndTurn finishes the human player's turn: computer opponents act, stocks
// revalue, the turn advances, and the next turn's world tick runs.
func (s *gameServiceImpl) EndTurn(ctx context.Context, sessionID string) (*TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	endedTurn := sess.Game.CurrentTurn()
	if err := sess.Game.EndTurn(); err != nil {
		return nil, fmt.Errorf("failed to persist turn: %w", err)
	}
	sess.Game.StartTurn()

	result := &TurnResult{
		Turn:      sess.Game.CurrentTurn(),
		GameState: buildGameState(sess.Game),
		Events: []GameEvent{{
			Type:      "turn_ended",
			Message:   fmt.Sprintf("Turn %d complete", endedTurn),
			Timestamp: time.Now(),
		}},
	}
	if winner, over := sess.Game.Winner(); over {
		result.GameOver = true
		result.WinnerID = winner.ID
		result.Events = append(result.Events, GameEvent{
			Type:      "victory",
			Message:   fmt.Sprintf("%s has won the game", winner.Name),
			Timestamp: time.Now(),
		})
	}
	return result, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return buildGameState(sess.Game), nil
}

// PossibleRoutes lists destinations reachable from the origin city at the
// current player's prices.
func (s *gameServiceImpl) PossibleRoutes(ctx context.Context, sessionID, originCityID string) ([]*engine.PotentialRoute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	origin := sess.Game.Data().CityByID(originCityID)
	if origin == nil {
		return nil, fmt.Errorf("unknown city: %s", originCityID)
	}

	routes := sess.Game.PossibleRoutes(origin)
	if routes == nil {
		routes = []*engine.PotentialRoute{}
	}
	return routes, nil
}

// AdjustedTrains lists the train catalog at the current player's prices.
func (s *gameServiceImpl) AdjustedTrains(ctx context.Context, sessionID string) ([]*engine.AdjustedTrain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	return sess.Game.AdjustedTrains(), nil
}

// BuyRoute prices a route proposal for the current player and queues it.
func (s *gameServiceImpl) BuyRoute(ctx context.Context, sessionID string, req *BuyRouteRequest) (*TradeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if req == nil {
		return nil, errors.New("missing route request")
	}

	data := sess.Game.Data()
	from := data.CityByID(req.FromCityID)
	to := data.CityByID(req.ToCityID)
	train := data.TrainByID(req.TrainID)
	if from == nil || to == nil || train == nil {
		return nil, fmt.Errorf("unknown city or train in route request")
	}

	player := sess.Game.CurrentPlayer()
	distance := from.DistanceTo(to)
	if distance <= 0 {
		return s.tradeFailure(sess, "a route needs two distinct cities"), nil
	}
	if distance > player.Range() {
		return s.tradeFailure(sess, fmt.Sprintf("destination is out of range (%d > %d)", distance, player.Range())), nil
	}

	goldCost, turnCost := sess.Game.RouteCost(distance)
	proposal := &engine.BuyableRoute{
		From:      from,
		To:        to,
		Train:     train,
		TrainCost: engine.AdjustedTrainCost(train, player.Upgrades()),
		Cargo:     engine.BuildCargoPlan(from, to, train),
		Distance:  distance,
		GoldCost:  goldCost,
		TurnCost:  turnCost,
	}

	if !sess.Game.AddRouteToQueue(proposal) {
		return s.tradeFailure(sess, "not enough gold for the route"), nil
	}
	return s.tradeSuccess(sess, sessionID, fmt.Sprintf("route to %s queued, ready in %d turns", to.Name, turnCost)), nil
}

// RemoveQueuedRoute cancels a route still under construction and refunds it.
func (s *gameServiceImpl) RemoveQueuedRoute(ctx context.Context, sessionID, routeID, trainID string) (*TradeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if !sess.Game.RemoveRouteFromQueue(routeID, trainID) {
		return s.tradeFailure(sess, "route is not in the construction queue"), nil
	}
	return s.tradeSuccess(sess, sessionID, "route cancelled and refunded"), nil
}

// BuyUpgrade grants a catalog upgrade to the current player.
func (s *gameServiceImpl) BuyUpgrade(ctx context.Context, sessionID, upgradeID string) (*TradeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if !sess.Game.AddUpgradeToPlayer(upgradeID) {
		return s.tradeFailure(sess, "upgrade unknown or not affordable"), nil
	}
	return s.tradeSuccess(sess, sessionID, "upgrade purchased"), nil
}

// BuyStock buys one share of another player's company.
func (s *gameServiceImpl) BuyStock(ctx context.Context, sessionID, playerID string) (*TradeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if !sess.Game.BuyStock(playerID) {
		return s.tradeFailure(sess, "stock unknown or not affordable"), nil
	}
	return s.tradeSuccess(sess, sessionID, "share purchased"), nil
}

// SellStock sells one held share back at the current price.
func (s *gameServiceImpl) SellStock(ctx context.Context, sessionID, playerID string) (*TradeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if !sess.Game.SellStock(playerID) {
		return s.tradeFailure(sess, "no shares held in that company"), nil
	}
	return s.tradeSuccess(sess, sessionID, "share sold"), nil
}

// SaveSession forces a persistence pass for the session.
func (s *gameServiceImpl) SaveSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Save(sessionID)
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

func (s *gameServiceImpl) sessionInfo(sess *Session, configID string) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		PlayerName:     sess.PlayerName,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      buildGameState(sess.Game),
		GameConfig:     sess.Config,
	}
}

func (s *gameServiceImpl) tradeFailure(sess *Session, message string) *TradeResult {
	return &TradeResult{
		Success:   false,
		Message:   message,
		GameState: buildGameState(sess.Game),
	}
}

func (s *gameServiceImpl) tradeSuccess(sess *Session, sessionID, message string) *TradeResult {
	// Auto-save after a successful mutation
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s: %v\n", sessionID, err)
	}
	return &TradeResult{
		Success:   true,
		Message:   message,
		GameState: buildGameState(sess.Game),
	}
}

// buildGameState projects the engine aggregate into the client view.
func buildGameState(game *engine.Game) *GameState {
	data := game.Data()
	state := &GameState{
		Turn:            game.CurrentTurn(),
		CurrentPlayerID: game.CurrentPlayer().ID,
		Players:         make([]*PlayerInfo, 0, len(game.Players())),
		Cities:          data.Cities,
		Resources:       data.Resources,
		Trains:          data.Trains,
		Upgrades:        data.Upgrades,
	}
	if winner, over := game.Winner(); over {
		state.GameOver = true
		state.WinnerID = winner.ID
	}

	for _, p := range game.Players() {
		info := &PlayerInfo{
			ID:       p.ID,
			Name:     p.Name,
			Kind:     p.Kind,
			Gold:     p.Gold,
			NetWorth: p.NetWorth,
			Range:    p.Range(),
			Routes:   p.Routes(),
			Upgrades: p.Upgrades(),
			Expenses: p.Finance().Expenses(),
			Incomes:  p.Finance().Incomes(),
		}
		if p.HomeCity != nil {
			info.HomeCityID = p.HomeCity.ID
		}
		if info.Routes == nil {
			info.Routes = []*engine.Route{}
		}
		for _, q := range p.QueuedRoutes() {
			info.QueuedRoutes = append(info.QueuedRoutes, &QueuedRouteInfo{
				Route:     q.Route,
				TurnsLeft: q.TurnsLeft,
			})
		}
		if info.QueuedRoutes == nil {
			info.QueuedRoutes = []*QueuedRouteInfo{}
		}
		if s := game.StockFor(p.ID); s != nil {
			info.StockPrice = s.Price
		}
		// Holdings are what this player owns across all companies.
		for _, other := range game.Players() {
			if s := game.StockFor(other.ID); s != nil {
				if units := s.HeldBy(p.ID); units > 0 {
					if info.Holdings == nil {
						info.Holdings = make(map[string]int)
					}
					info.Holdings[other.ID] = units
				}
			}
		}
		state.Players = append(state.Players, info)
	}
	return state
}
