package generator

import (
	"math/rand"
	"testing"

	"github.com/nardisgame/nardis/game/engine"
)

func testConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:          "test",
		MapSize:       100,
		Cities:        12,
		SupplyPerCity: 2,
		DemandPerCity: 2,
		StartingGold:  1000,
		StartingRange: 30,
		Opponents:     3,
		VictoryGold:   10000,
		Seed:          42,
	}
}

func TestNewCatalog(t *testing.T) {
	cfg := testConfig()
	data := NewCatalog(cfg, rand.New(rand.NewSource(cfg.Seed)))

	if len(data.Cities) != cfg.Cities {
		t.Fatalf("Expected %d cities, got %d", cfg.Cities, len(data.Cities))
	}
	if len(data.Resources) == 0 || len(data.Trains) == 0 || len(data.Upgrades) == 0 {
		t.Fatal("Expected a populated catalog")
	}

	seen := make(map[string]bool)
	for _, c := range data.Cities {
		if seen[c.ID] {
			t.Errorf("Duplicate city id %s", c.ID)
		}
		seen[c.ID] = true
		if c.Pos.X < 0 || c.Pos.X >= cfg.MapSize || c.Pos.Y < 0 || c.Pos.Y >= cfg.MapSize {
			t.Errorf("City %s placed off-map at %+v", c.ID, c.Pos)
		}
		if len(c.Supply) != cfg.SupplyPerCity {
			t.Errorf("City %s has %d supplied resources, want %d", c.ID, len(c.Supply), cfg.SupplyPerCity)
		}
		if len(c.Demand) != cfg.DemandPerCity {
			t.Errorf("City %s has %d demanded resources, want %d", c.ID, len(c.Demand), cfg.DemandPerCity)
		}
	}
}

func TestNewCatalog_CoversAllUpgradeKinds(t *testing.T) {
	data := NewCatalog(testConfig(), rand.New(rand.NewSource(1)))

	kinds := make(map[engine.UpgradeKind]bool)
	for _, u := range data.Upgrades {
		kinds[u.Kind] = true
	}
	for _, kind := range []engine.UpgradeKind{
		engine.TrackValueCheaper, engine.TrainValueCheaper, engine.TurnCostCheaper,
		engine.TrainUpkeepCheaper, engine.RangeIncrease,
	} {
		if !kinds[kind] {
			t.Errorf("Upgrade shop missing kind %s", kind)
		}
	}
}

func TestNewPlayers(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(cfg.Seed))
	data := NewCatalog(cfg, rng)

	players := NewPlayers("alice", cfg, data, rng)
	if len(players) != cfg.Opponents+1 {
		t.Fatalf("Expected %d players, got %d", cfg.Opponents+1, len(players))
	}
	if players[0].Name != "alice" || players[0].Kind != engine.Human {
		t.Errorf("Expected the human first, got %s (%s)", players[0].Name, players[0].Kind)
	}
	for _, p := range players[1:] {
		if p.Kind != engine.Computer {
			t.Errorf("Expected opponent %s to be a computer", p.Name)
		}
	}
	for _, p := range players {
		if p.Gold != cfg.StartingGold || p.BaseRange != cfg.StartingRange {
			t.Errorf("Player %s not set up from config: gold=%d range=%d", p.Name, p.Gold, p.BaseRange)
		}
		if p.HomeCity == nil || data.CityByID(p.HomeCity.ID) == nil {
			t.Errorf("Player %s home city not from the catalog", p.Name)
		}
	}

	// Fewer players than cities: everyone gets a distinct home.
	homes := make(map[string]bool)
	for _, p := range players {
		if homes[p.HomeCity.ID] {
			t.Errorf("Home city %s assigned twice", p.HomeCity.ID)
		}
		homes[p.HomeCity.ID] = true
	}
}

func TestNewGame_Deterministic(t *testing.T) {
	cfg := testConfig()

	a, err := NewGame("alice", cfg)
	if err != nil {
		t.Fatalf("Failed to generate game: %v", err)
	}
	b, err := NewGame("alice", cfg)
	if err != nil {
		t.Fatalf("Failed to generate game: %v", err)
	}

	for i, city := range a.Data().Cities {
		other := b.Data().Cities[i]
		if city.Name != other.Name || city.Pos != other.Pos {
			t.Errorf("City %d differs between identically seeded games", i)
		}
	}
	if a.Players()[1].HomeCity.ID != b.Players()[1].HomeCity.ID {
		t.Error("Opponent homes differ between identically seeded games")
	}
}

func TestNewGame_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Cities = 0

	if _, err := NewGame("alice", cfg); err == nil {
		t.Fatal("Expected an error for an invalid config")
	}
}

func TestNameAt_CyclesWithSuffix(t *testing.T) {
	pool := []string{"A", "B"}
	if got := nameAt(pool, 1); got != "B" {
		t.Errorf("Expected B, got %s", got)
	}
	if got := nameAt(pool, 2); got != "A 2" {
		t.Errorf("Expected A 2, got %s", got)
	}
	if got := nameAt(pool, 5); got != "B 3" {
		t.Errorf("Expected B 3, got %s", got)
	}
}
