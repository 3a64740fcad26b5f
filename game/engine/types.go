package engine

import (
	"math"
	"math/rand"
)

// Balance constants shared by the pricing and win-condition logic.
const (
	// GoldCostPerDistance is the base track cost per unit of distance.
	GoldCostPerDistance = 2

	// MinRouteGold is the lowest gold cost a route can ever have,
	// regardless of how many discounts apply.
	MinRouteGold = 10

	// MinTurnCostDuringDiscounts is the clamp applied inside the
	// TurnCostCheaper loop; MinTurnCost is the final floor.
	MinTurnCostDuringDiscounts = 2
	MinTurnCost                = 1

	// DefaultVictoryGold is the gold threshold that ends the game.
	DefaultVictoryGold = 10000

	// StockPriceDivisor converts a player's net worth into a share price.
	StockPriceDivisor = 20
)

// Position represents x,y coordinates on the game map.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo returns the rounded euclidean distance to another position.
func (p Position) DistanceTo(o Position) int {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return int(math.Round(math.Hypot(dx, dy)))
}

// Resource is a tradeable good with a market value that drifts each turn.
type Resource struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Value      int    `json:"value"`
	MinValue   int    `json:"min_value"`
	MaxValue   int    `json:"max_value"`
	Volatility int    `json:"volatility"`
}

// HandleTurn drifts the resource value within its [min,max] band.
func (r *Resource) HandleTurn(info *TurnInfo, rng *rand.Rand) {
	if r.Volatility <= 0 || rng == nil {
		return
	}
	r.Value += rng.Intn(2*r.Volatility+1) - r.Volatility
	if r.Value < r.MinValue {
		r.Value = r.MinValue
	}
	if r.Value > r.MaxValue {
		r.Value = r.MaxValue
	}
}

// CityResource is a resource a city supplies or demands, with the amount
// currently available and the ceiling it regenerates toward.
type CityResource struct {
	Resource  *Resource `json:"resource"`
	Amount    int       `json:"amount"`
	MaxAmount int       `json:"max_amount"`
	Regen     int       `json:"regen"`
}

// City is a static map location that produces and demands resources.
// Player actions never mutate a city directly; only the turn tick does.
type City struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Pos    Position       `json:"pos"`
	Supply []CityResource `json:"supply"`
	Demand []CityResource `json:"demand"`
}

// DistanceTo returns the distance between two cities.
func (c *City) DistanceTo(o *City) int {
	return c.Pos.DistanceTo(o.Pos)
}

// Demands reports whether the city demands the given resource.
func (c *City) Demands(resourceID string) bool {
	for _, d := range c.Demand {
		if d.Resource != nil && d.Resource.ID == resourceID {
			return true
		}
	}
	return false
}

// Supplies returns the supply entry for the given resource, or nil.
func (c *City) Supplies(resourceID string) *CityResource {
	for i := range c.Supply {
		if c.Supply[i].Resource != nil && c.Supply[i].Resource.ID == resourceID {
			return &c.Supply[i]
		}
	}
	return nil
}

// HandleTurn replenishes the city's supplied resources toward their maximums.
// Cities tick before resources so that supply reflects pre-drift values.
func (c *City) HandleTurn(info *TurnInfo) {
	for i := range c.Supply {
		s := &c.Supply[i]
		s.Amount += s.Regen
		if s.Amount > s.MaxAmount {
			s.Amount = s.MaxAmount
		}
	}
}

// Train is an immutable catalog entry; players reference trains, never own
// mutated copies.
type Train struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Cost       int    `json:"cost"`
	Upkeep     int    `json:"upkeep"`
	Speed      int    `json:"speed"`
	CargoSpace int    `json:"cargo_space"`
}

// AdjustedTrain pairs a catalog train with the price a specific player pays
// for it after TrainValueCheaper discounts.
type AdjustedTrain struct {
	Train *Train `json:"train"`
	Cost  int    `json:"cost"`
}

// StaticData is the read-only catalog consumed by the core: all cities,
// resources, trains, and purchasable upgrades.
type StaticData struct {
	Cities    []*City     `json:"cities"`
	Resources []*Resource `json:"resources"`
	Trains    []*Train    `json:"trains"`
	Upgrades  []*Upgrade  `json:"upgrades"`
}

// CityByID returns the city with the given id, or nil.
func (d *StaticData) CityByID(id string) *City {
	for _, c := range d.Cities {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// TrainByID returns the train with the given id, or nil.
func (d *StaticData) TrainByID(id string) *Train {
	for _, t := range d.Trains {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ResourceByID returns the resource with the given id, or nil.
func (d *StaticData) ResourceByID(id string) *Resource {
	for _, r := range d.Resources {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// UpgradeByID returns the catalog upgrade with the given id, or nil.
func (d *StaticData) UpgradeByID(id string) *Upgrade {
	for _, u := range d.Upgrades {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// TurnInfo is the payload broadcast at the start of every turn pass. It
// carries the turn number, the full catalog, and the acting player's routes
// and upgrades, so turn handlers never reach into shared mutable context.
type TurnInfo struct {
	Turn     int
	Data     *StaticData
	Routes   []*Route
	Upgrades []*Upgrade
}
