package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nardisgame/nardis/game/engine"
	"github.com/nardisgame/nardis/game/generator"
	"github.com/nardisgame/nardis/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
	saves    int
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id, playerName string, config *engine.GameConfig) (*service.Session, error) {
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	game, err := generator.NewGame(playerName, config)
	if err != nil {
		return nil, err
	}
	game.StartTurn()

	session := &service.Session{
		ID:             id,
		Game:           game,
		Config:         config,
		PlayerName:     playerName,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	session, exists := m.sessions[id]
	if !exists {
		return errors.New("session not found")
	}
	session.LastAccessedAt = time.Now()
	return nil
}

func (m *MockSessionManager) Save(id string) error {
	m.saves++
	return nil
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"classic": testGameConfig(),
		},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, errors.New("configuration not found")
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	var infos []*service.ConfigInfo
	for id, cfg := range m.configs {
		infos = append(infos, &service.ConfigInfo{
			Filename:    id + ".json",
			ConfigID:    id,
			Name:        cfg.Name,
			Description: cfg.Description,
			MapSize:     cfg.MapSize,
			Cities:      cfg.Cities,
			Opponents:   cfg.Opponents,
			VictoryGold: cfg.VictoryGold,
		})
	}
	return infos, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["classic"]
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	m.configs[name] = config
	return nil
}

func testGameConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:          "Classic",
		MapSize:       100,
		Cities:        12,
		SupplyPerCity: 2,
		DemandPerCity: 2,
		StartingGold:  1000,
		StartingRange: 120, // generous range so any city pair is buildable in tests
		Opponents:     1,
		VictoryGold:   10000,
		Seed:          11,
	}
}

func newTestService(t *testing.T) (service.GameService, *MockSessionManager) {
	t.Helper()
	sessions := NewMockSessionManager()
	return service.NewGameService(sessions, NewMockConfigManager()), sessions
}

func createTestSession(t *testing.T, svc service.GameService) *service.SessionInfo {
	t.Helper()
	info, err := svc.CreateSession(context.Background(), "classic", "alice")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return info
}

func TestCreateSession(t *testing.T) {
	svc, _ := newTestService(t)

	info := createTestSession(t, svc)
	if info.ID == "" {
		t.Error("Expected a session id")
	}
	if info.ConfigName != "classic" {
		t.Errorf("Expected config id 'classic', got %q", info.ConfigName)
	}
	if info.PlayerName != "alice" {
		t.Errorf("Expected player name 'alice', got %q", info.PlayerName)
	}
	if info.GameState == nil || info.GameState.Turn != 1 {
		t.Fatalf("Expected game at turn 1, got %+v", info.GameState)
	}
	if len(info.GameState.Players) != 2 {
		t.Errorf("Expected 2 players (human + 1 opponent), got %d", len(info.GameState.Players))
	}
}

func TestCreateSession_UnknownConfig(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateSession(context.Background(), "missing", "alice"); err == nil {
		t.Fatal("Expected an error for an unknown config")
	}
}

func TestEndTurn(t *testing.T) {
	svc, _ := newTestService(t)
	info := createTestSession(t, svc)

	result, err := svc.EndTurn(context.Background(), info.ID)
	if err != nil {
		t.Fatalf("EndTurn failed: %v", err)
	}
	if result.Turn != 2 {
		t.Errorf("Expected turn 2, got %d", result.Turn)
	}
	if len(result.Events) == 0 || result.Events[0].Type != "turn_ended" {
		t.Errorf("Expected a turn_ended event, got %+v", result.Events)
	}
	if result.GameOver {
		t.Error("Nobody should win on turn 1")
	}
}

func TestEndTurn_UnknownSession(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.EndTurn(context.Background(), "nope"); err == nil {
		t.Fatal("Expected an error for an unknown session")
	}
}

func TestPossibleRoutesAndBuyRoute(t *testing.T) {
	svc, sessions := newTestService(t)
	info := createTestSession(t, svc)

	human := info.GameState.Players[0]
	routes, err := svc.PossibleRoutes(context.Background(), info.ID, human.HomeCityID)
	if err != nil {
		t.Fatalf("PossibleRoutes failed: %v", err)
	}
	if len(routes) == 0 {
		t.Fatal("Expected reachable destinations from home")
	}

	trains, err := svc.AdjustedTrains(context.Background(), info.ID)
	if err != nil || len(trains) == 0 {
		t.Fatalf("AdjustedTrains failed: %v", err)
	}

	// Pick the cheapest combination the starting gold can cover.
	var pick *engine.PotentialRoute
	for _, r := range routes {
		if pick == nil || r.GoldCost < pick.GoldCost {
			pick = r
		}
	}
	cheapTrain := trains[0]
	for _, tr := range trains {
		if tr.Cost < cheapTrain.Cost {
			cheapTrain = tr
		}
	}

	savesBefore := sessions.saves
	result, err := svc.BuyRoute(context.Background(), info.ID, &service.BuyRouteRequest{
		FromCityID: pick.From.ID,
		ToCityID:   pick.To.ID,
		TrainID:    cheapTrain.Train.ID,
	})
	if err != nil {
		t.Fatalf("BuyRoute failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected purchase to succeed: %s", result.Message)
	}
	if sessions.saves != savesBefore+1 {
		t.Error("Expected an auto-save after a successful purchase")
	}

	buyer := result.GameState.Players[0]
	if len(buyer.QueuedRoutes) != 1 {
		t.Fatalf("Expected 1 queued route, got %d", len(buyer.QueuedRoutes))
	}
	wantGold := testGameConfig().StartingGold - pick.GoldCost - cheapTrain.Cost
	if buyer.Gold != wantGold {
		t.Errorf("Expected gold %d after purchase, got %d", wantGold, buyer.Gold)
	}
}

func TestBuyRoute_UnknownCity(t *testing.T) {
	svc, _ := newTestService(t)
	info := createTestSession(t, svc)

	_, err := svc.BuyRoute(context.Background(), info.ID, &service.BuyRouteRequest{
		FromCityID: "nowhere",
		ToCityID:   "city-1",
		TrainID:    "train-ironhorse",
	})
	if err == nil {
		t.Fatal("Expected an error for an unknown city")
	}
}

func TestBuyRoute_InsufficientGold(t *testing.T) {
	svc, sessions := newTestService(t)
	info := createTestSession(t, svc)

	sess, _ := sessions.Get(info.ID)
	sess.Game.CurrentPlayer().Gold = 0

	state, _ := svc.GetGameState(context.Background(), info.ID)
	human := state.Players[0]
	routes, _ := svc.PossibleRoutes(context.Background(), info.ID, human.HomeCityID)
	if len(routes) == 0 {
		t.Skip("no reachable destinations in this layout")
	}

	result, err := svc.BuyRoute(context.Background(), info.ID, &service.BuyRouteRequest{
		FromCityID: routes[0].From.ID,
		ToCityID:   routes[0].To.ID,
		TrainID:    "train-ironhorse",
	})
	if err != nil {
		t.Fatalf("BuyRoute errored instead of failing softly: %v", err)
	}
	if result.Success {
		t.Error("Expected the purchase rejected with no gold")
	}
}

func TestRemoveQueuedRoute(t *testing.T) {
	svc, _ := newTestService(t)
	info := createTestSession(t, svc)

	state, _ := svc.GetGameState(context.Background(), info.ID)
	human := state.Players[0]
	routes, _ := svc.PossibleRoutes(context.Background(), info.ID, human.HomeCityID)
	buy, err := svc.BuyRoute(context.Background(), info.ID, &service.BuyRouteRequest{
		FromCityID: routes[0].From.ID,
		ToCityID:   routes[0].To.ID,
		TrainID:    "train-ironhorse",
	})
	if err != nil || !buy.Success {
		t.Fatalf("Setup purchase failed: %v %+v", err, buy)
	}

	queued := buy.GameState.Players[0].QueuedRoutes[0]
	result, err := svc.RemoveQueuedRoute(context.Background(), info.ID, queued.Route.ID, queued.Route.Train.ID)
	if err != nil {
		t.Fatalf("RemoveQueuedRoute failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected removal to succeed: %s", result.Message)
	}
	if got := result.GameState.Players[0].Gold; got != testGameConfig().StartingGold {
		t.Errorf("Expected full refund to %d, got %d", testGameConfig().StartingGold, got)
	}

	again, _ := svc.RemoveQueuedRoute(context.Background(), info.ID, queued.Route.ID, queued.Route.Train.ID)
	if again.Success {
		t.Error("Expected double removal to fail softly")
	}
}

func TestBuyAndSellStock(t *testing.T) {
	svc, _ := newTestService(t)
	info := createTestSession(t, svc)

	opponent := info.GameState.Players[1]
	buy, err := svc.BuyStock(context.Background(), info.ID, opponent.ID)
	if err != nil {
		t.Fatalf("BuyStock failed: %v", err)
	}
	if !buy.Success {
		t.Fatalf("Expected stock purchase to succeed: %s", buy.Message)
	}
	human := buy.GameState.Players[0]
	if human.Holdings[opponent.ID] != 1 {
		t.Errorf("Expected 1 share held, got %d", human.Holdings[opponent.ID])
	}

	sell, err := svc.SellStock(context.Background(), info.ID, opponent.ID)
	if err != nil {
		t.Fatalf("SellStock failed: %v", err)
	}
	if !sell.Success {
		t.Fatalf("Expected sale to succeed: %s", sell.Message)
	}

	// Second sale has no position left.
	again, _ := svc.SellStock(context.Background(), info.ID, opponent.ID)
	if again.Success {
		t.Error("Expected sale with no position to fail softly")
	}
}

func TestBuyUpgrade(t *testing.T) {
	svc, _ := newTestService(t)
	info := createTestSession(t, svc)

	upgrade := info.GameState.Upgrades[0]
	result, err := svc.BuyUpgrade(context.Background(), info.ID, upgrade.ID)
	if err != nil {
		t.Fatalf("BuyUpgrade failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected upgrade purchase to succeed: %s", result.Message)
	}
	if len(result.GameState.Players[0].Upgrades) != 1 {
		t.Error("Expected the upgrade on the player")
	}

	bogus, _ := svc.BuyUpgrade(context.Background(), info.ID, "upgrade-nope")
	if bogus.Success {
		t.Error("Expected unknown upgrade to fail softly")
	}
}

func TestListAndDeleteSessions(t *testing.T) {
	svc, _ := newTestService(t)
	info := createTestSession(t, svc)

	list, err := svc.ListSessions(context.Background())
	if err != nil || len(list) != 1 {
		t.Fatalf("Expected 1 session, got %d (%v)", len(list), err)
	}

	if err := svc.DeleteSession(context.Background(), info.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	list, _ = svc.ListSessions(context.Background())
	if len(list) != 0 {
		t.Errorf("Expected no sessions after delete, got %d", len(list))
	}
}

func TestListConfigs(t *testing.T) {
	svc, _ := newTestService(t)

	configs, err := svc.ListConfigs(context.Background())
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}
	if len(configs) != 1 || configs[0].ConfigID != "classic" {
		t.Errorf("Expected the classic config, got %+v", configs)
	}
}
