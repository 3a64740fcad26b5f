package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/nardisgame/nardis/game/engine"
)

type upgradeSpec struct {
	name  string
	kind  engine.UpgradeKind
	value float64
	cost  int
}

// Two tiers per formula keep the late game interesting without making any
// single upgrade dominant.
var upgradeSpecs = []upgradeSpec{
	{"Discount Surveying", engine.TrackValueCheaper, 0.10, 300},
	{"Land Grant Charter", engine.TrackValueCheaper, 0.15, 650},
	{"Standardized Parts", engine.TrainValueCheaper, 0.10, 250},
	{"Rolling Stock Auction", engine.TrainValueCheaper, 0.15, 550},
	{"Prefab Bridges", engine.TurnCostCheaper, 1, 200},
	{"Dynamite Crews", engine.TurnCostCheaper, 1, 500},
	{"Efficient Boilers", engine.TrainUpkeepCheaper, 0.25, 350},
	{"Long Haul Charter", engine.RangeIncrease, 25, 400},
	{"Transcontinental Permit", engine.RangeIncrease, 40, 800},
}

// NewGame builds a fully generated game from a balance configuration. The
// config's seed pins the world layout; a zero seed falls back to the clock.
func NewGame(playerName string, cfg *engine.GameConfig) (*engine.Game, error) {
	if err := engine.ValidateGameConfig(cfg); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	data := NewCatalog(cfg, rng)
	players := NewPlayers(playerName, cfg, data, rng)

	game, err := engine.NewGame(data, players, seed)
	if err != nil {
		return nil, err
	}
	game.SetVictoryGold(cfg.VictoryGold)
	return game, nil
}

// NewCatalog generates the static world: cities scattered on the map, the
// resource market, the train roster, and the upgrade shop.
func NewCatalog(cfg *engine.GameConfig, rng *rand.Rand) *engine.StaticData {
	data := &engine.StaticData{
		Resources: newResources(),
		Trains:    newTrains(),
		Upgrades:  newUpgrades(),
	}
	data.Cities = newCities(cfg, data.Resources, rng)
	return data
}

// NewPlayers builds the human player plus the configured number of computer
// opponents. Home cities are dealt from a shuffle so players start spread out.
func NewPlayers(playerName string, cfg *engine.GameConfig, data *engine.StaticData, rng *rand.Rand) []*engine.Player {
	homes := rng.Perm(len(data.Cities))

	players := make([]*engine.Player, 0, cfg.Opponents+1)
	players = append(players, engine.NewPlayer(
		playerName, engine.Human, cfg.StartingGold, cfg.StartingRange,
		data.Cities[homes[0]],
	))
	for i := 0; i < cfg.Opponents; i++ {
		players = append(players, engine.NewPlayer(
			nameAt(opponentNames, i), engine.Computer,
			cfg.StartingGold, cfg.StartingRange,
			data.Cities[homes[(i+1)%len(homes)]],
		))
	}
	return players
}

func newResources() []*engine.Resource {
	resources := make([]*engine.Resource, 0, len(resourceSpecs))
	for _, spec := range resourceSpecs {
		resources = append(resources, &engine.Resource{
			ID:         slug(spec.name),
			Name:       spec.name,
			Value:      spec.value,
			MinValue:   spec.minValue,
			MaxValue:   spec.maxValue,
			Volatility: spec.volatility,
		})
	}
	return resources
}

func newTrains() []*engine.Train {
	trains := make([]*engine.Train, 0, len(trainSpecs))
	for _, spec := range trainSpecs {
		trains = append(trains, &engine.Train{
			ID:         "train-" + slug(spec.name),
			Name:       spec.name,
			Cost:       spec.cost,
			Upkeep:     spec.upkeep,
			Speed:      spec.speed,
			CargoSpace: spec.cargoSpace,
		})
	}
	return trains
}

func newUpgrades() []*engine.Upgrade {
	upgrades := make([]*engine.Upgrade, 0, len(upgradeSpecs))
	for _, spec := range upgradeSpecs {
		upgrades = append(upgrades, &engine.Upgrade{
			ID:    "upgrade-" + slug(spec.name),
			Name:  spec.name,
			Kind:  spec.kind,
			Value: spec.value,
			Cost:  spec.cost,
		})
	}
	return upgrades
}

func newCities(cfg *engine.GameConfig, resources []*engine.Resource, rng *rand.Rand) []*engine.City {
	cities := make([]*engine.City, 0, cfg.Cities)
	taken := make(map[engine.Position]bool, cfg.Cities)

	for i := 0; i < cfg.Cities; i++ {
		pos := engine.Position{X: rng.Intn(cfg.MapSize), Y: rng.Intn(cfg.MapSize)}
		for taken[pos] {
			pos = engine.Position{X: rng.Intn(cfg.MapSize), Y: rng.Intn(cfg.MapSize)}
		}
		taken[pos] = true

		supply, demand := dealResources(cfg, resources, rng)
		cities = append(cities, &engine.City{
			ID:     fmt.Sprintf("city-%d", i+1),
			Name:   nameAt(cityNames, i),
			Pos:    pos,
			Supply: supply,
			Demand: demand,
		})
	}
	return cities
}

// dealResources draws a city's supplied and demanded resources from a single
// shuffle, so a city never demands what it supplies unless the pool is too
// small to avoid it.
func dealResources(cfg *engine.GameConfig, resources []*engine.Resource, rng *rand.Rand) (supply, demand []engine.CityResource) {
	order := rng.Perm(len(resources))

	nSupply := cfg.SupplyPerCity
	if nSupply > len(resources) {
		nSupply = len(resources)
	}
	nDemand := cfg.DemandPerCity
	if nDemand > len(resources) {
		nDemand = len(resources)
	}

	for i := 0; i < nSupply; i++ {
		maxAmount := 20 + rng.Intn(30)
		supply = append(supply, engine.CityResource{
			Resource:  resources[order[i]],
			Amount:    maxAmount,
			MaxAmount: maxAmount,
			Regen:     1 + rng.Intn(4),
		})
	}
	for i := 0; i < nDemand; i++ {
		demand = append(demand, engine.CityResource{
			Resource: resources[order[(nSupply+i)%len(order)]],
		})
	}
	return supply, demand
}

// nameAt cycles the pool, suffixing repeats so ids and labels stay unique.
func nameAt(pool []string, i int) string {
	name := pool[i%len(pool)]
	if i >= len(pool) {
		name = fmt.Sprintf("%s %d", name, i/len(pool)+1)
	}
	return name
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
